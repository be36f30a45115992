package cli

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/aalvaropc/recordemit/internal/infra/logger"
)

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one command line and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	app := newAppCtx()
	cmd := newRootCmd(app)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	_ = app.close()
	if err != nil {
		return 1
	}
	return 0
}

func newRootCmd(app *appCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "recordemit",
		Short:        "recordemit: emit sample record sets as text, JSON and CSV files",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cleanup, err := logger.Setup(logger.Config{
				File:   app.logFile,
				Debug:  app.debug,
				Stderr: cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			app.cleanup = cleanup
			app.log = logger.L().With("run_id", uuid.NewString(), "command", cmd.Name())
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&app.configPath, "config", "", "Config file (default: ./recordemit.yaml when present)")
	cmd.PersistentFlags().StringVar(&app.dir, "dir", "", "Output directory (overrides output_dir from config)")
	cmd.PersistentFlags().BoolVar(&app.debug, "debug", false, "enable verbose JSON logging to stderr (or --log-file)")
	cmd.PersistentFlags().StringVar(&app.logFile, "log-file", "", "append JSON logs to this file")

	cmd.AddCommand(
		namesCmd(app),
		peopleCmd(app),
		salesCmd(app),
		salesReportCmd(app),
		ordersCmd(app),
		phoneCmd(),
		initCmd(app),
		inspectCmd(),
		verifyCmd(),
		versionCmd(),
	)
	return cmd
}
