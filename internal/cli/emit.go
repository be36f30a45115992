package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/recordemit/internal/domain"
	"github.com/aalvaropc/recordemit/internal/usecase"
)

func namesCmd(app *appCtx) *cobra.Command {
	var out string

	c := &cobra.Command{
		Use:   "names",
		Short: "Upper-case the sample names and write them one per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := app.config()
			if err != nil {
				return err
			}
			path, err := app.outputPath(out, cfg.Files.Names)
			if err != nil {
				return err
			}

			uc := usecase.NewEmitNames(app.sink, newReporter(cmd.OutOrStdout()), usecase.WithLogger(app.log))
			_, err = uc.Execute(cmd.Context(), domain.DefaultNames(), path)
			return err
		},
	}

	c.Flags().StringVarP(&out, "out", "o", "", "Output file (default: output.txt)")
	return c
}

func peopleCmd(app *appCtx) *cobra.Command {
	var out string

	c := &cobra.Command{
		Use:   "people",
		Short: "Write the sample people as a pretty-printed JSON document and report their average age",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := app.config()
			if err != nil {
				return err
			}
			path, err := app.outputPath(out, cfg.Files.People)
			if err != nil {
				return err
			}

			uc := usecase.NewEmitPeople(app.sink, newReporter(cmd.OutOrStdout()), usecase.WithLogger(app.log))
			_, err = uc.Execute(cmd.Context(), domain.DefaultPeople(), path)
			return err
		},
	}

	c.Flags().StringVarP(&out, "out", "o", "", "Output file (default: output.json)")
	return c
}

func salesCmd(app *appCtx) *cobra.Command {
	return salesTableCmd(app, "sales",
		"Write the electronics sales table with revenue and report the total",
		"sales_output.csv",
		func(f domain.FilesConfig) string { return f.Sales },
		domain.ElectronicsSales)
}

func salesReportCmd(app *appCtx) *cobra.Command {
	return salesTableCmd(app, "sales-report",
		"Write the widget sales report with revenue and report the total",
		"sales_report.csv",
		func(f domain.FilesConfig) string { return f.SalesReport },
		domain.WidgetSales)
}

func salesTableCmd(app *appCtx, use, short, defName string, file func(domain.FilesConfig) string, fixture func() []domain.SaleLine) *cobra.Command {
	var out string

	c := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := app.config()
			if err != nil {
				return err
			}
			path, err := app.outputPath(out, file(cfg.Files))
			if err != nil {
				return err
			}

			uc := usecase.NewEmitSales(app.sink, newReporter(cmd.OutOrStdout()), usecase.WithLogger(app.log))
			_, err = uc.Execute(cmd.Context(), fixture(), path)
			return err
		},
	}

	c.Flags().StringVarP(&out, "out", "o", "", "Output file (default: "+defName+")")
	return c
}

func ordersCmd(app *appCtx) *cobra.Command {
	var out string

	c := &cobra.Command{
		Use:   "orders",
		Short: "Write the sample orders table and report the order total",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := app.config()
			if err != nil {
				return err
			}
			path, err := app.outputPath(out, cfg.Files.Orders)
			if err != nil {
				return err
			}

			uc := usecase.NewEmitOrders(app.sink, newReporter(cmd.OutOrStdout()), usecase.WithLogger(app.log))
			_, err = uc.Execute(cmd.Context(), domain.DefaultOrders(), path)
			return err
		},
	}

	c.Flags().StringVarP(&out, "out", "o", "", "Output file (default: orders_output.csv)")
	return c
}
