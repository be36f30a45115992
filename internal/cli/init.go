package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/recordemit/internal/domain"
	"github.com/aalvaropc/recordemit/internal/infra/fsworkspace"
)

func initCmd(app *appCtx) *cobra.Command {
	var (
		path  string
		force bool
	)

	c := &cobra.Command{
		Use:   "init",
		Short: "Write a starter recordemit.yaml and ignore the emitted files in git",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root := strings.TrimSpace(path)
			if root == "" {
				root = "."
			}

			cfg, err := app.config()
			if err != nil {
				return err
			}
			if d := strings.TrimSpace(app.dir); d != "" {
				cfg.OutputDir = d
			}

			written, err := fsworkspace.NewInitializer(cfg).
				Init(domain.WorkspaceSpec{Root: root}, force)
			if err != nil {
				return err
			}
			app.log.Info("workspace.init", "root", root, "written", len(written))

			rep := newReporter(cmd.OutOrStdout())
			if len(written) == 0 {
				rep.Info(fmt.Sprintf("Nothing to do in %s (use --force to overwrite)", root))
				return nil
			}
			for _, p := range written {
				rep.Success(fmt.Sprintf("Wrote %s", p))
			}
			return nil
		},
	}

	c.Flags().StringVar(&path, "path", ".", "Directory to initialize")
	c.Flags().BoolVar(&force, "force", false, "Overwrite an existing recordemit.yaml")
	return c
}
