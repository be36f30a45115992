package config

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/recordemit/internal/domain"
)

// apply overlays parsed values on cfg. Empty values keep the default.
func apply(path string, cfg domain.Config, y yamlConfig) (domain.Config, error) {
	rc := y.RecordEmit

	if rc.OutputDir != "" {
		if strings.TrimSpace(rc.OutputDir) == "" {
			return cfg, invalidField(path, "output_dir", "must not be blank")
		}
		cfg.OutputDir = rc.OutputDir
	}

	files := []struct {
		field string
		value string
		dst   *string
	}{
		{"files.names", rc.Files.Names, &cfg.Files.Names},
		{"files.people", rc.Files.People, &cfg.Files.People},
		{"files.sales", rc.Files.Sales, &cfg.Files.Sales},
		{"files.sales_report", rc.Files.SalesReport, &cfg.Files.SalesReport},
		{"files.orders", rc.Files.Orders, &cfg.Files.Orders},
	}
	for _, f := range files {
		if f.value == "" {
			continue
		}
		if err := validateFileName(f.value); err != nil {
			return cfg, invalidField(path, f.field, err.Error())
		}
		*f.dst = f.value
	}

	return cfg, nil
}

func validateFileName(name string) error {
	trimmed := strings.TrimSpace(name)
	switch {
	case trimmed == "":
		return fmt.Errorf("must not be blank")
	case trimmed == "." || trimmed == "..":
		return fmt.Errorf("%q is a directory, not a file name", name)
	case strings.HasSuffix(trimmed, "/"):
		return fmt.Errorf("%q ends with a path separator", name)
	}
	return nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
