package config

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/recordemit/internal/domain"
)

// DefaultFileName is the config file looked up in the working directory.
const DefaultFileName = "recordemit.yaml"

// Load reads the config at path and applies it on top of the defaults.
//
// When optional is true a missing file is not an error and the defaults are returned.
// An explicitly requested file that does not exist is reported as not found.
func Load(path string, optional bool) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return apply(path, cfg, y)
}
