package cli

import (
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/recordemit/internal/domain"
	"github.com/aalvaropc/recordemit/internal/infra/config"
	"github.com/aalvaropc/recordemit/internal/infra/filesink"
)

// appCtx holds what the subcommands share: global flags, the lazily loaded
// config, the logger and the output adapter.
type appCtx struct {
	configPath string
	dir        string
	debug      bool
	logFile    string

	cfg     *domain.Config
	log     *slog.Logger
	sink    *filesink.Writer
	cleanup func() error
}

func newAppCtx() *appCtx {
	return &appCtx{
		log:  slog.New(slog.NewJSONHandler(io.Discard, nil)),
		sink: filesink.New(),
	}
}

// config loads recordemit.yaml once. Without --config a missing file means defaults.
func (a *appCtx) config() (domain.Config, error) {
	if a.cfg != nil {
		return *a.cfg, nil
	}

	path := strings.TrimSpace(a.configPath)
	optional := path == ""
	if optional {
		path = config.DefaultFileName
	}

	cfg, err := config.Load(path, optional)
	if err != nil {
		return cfg, err
	}
	a.log.Debug("config.loaded", "path", path, "output_dir", cfg.OutputDir)
	a.cfg = &cfg
	return cfg, nil
}

// outputPath resolves the destination of an emitter.
// An absolute --out is used as is; anything else is joined to the output directory.
func (a *appCtx) outputPath(override, name string) (string, error) {
	cfg, err := a.config()
	if err != nil {
		return "", err
	}

	file := name
	if o := strings.TrimSpace(override); o != "" {
		file = o
	}
	if filepath.IsAbs(file) {
		return file, nil
	}

	dir := cfg.OutputDir
	if d := strings.TrimSpace(a.dir); d != "" {
		dir = d
	}
	return filepath.Join(dir, file), nil
}

func (a *appCtx) close() error {
	if a.cleanup == nil {
		return nil
	}
	err := a.cleanup()
	a.cleanup = nil
	return err
}
