package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/raykavin/launchboard"
	"github.com/raykavin/launchboard/internal/config"
	"github.com/raykavin/launchboard/internal/report"
	"github.com/raykavin/launchboard/pkg/dataset"
	"github.com/raykavin/launchboard/pkg/plot"
	"github.com/raykavin/launchboard/pkg/view"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Command line flags
var (
	configPath string

	// summary flags
	site string
	low  float64
	high float64
)

func main() {
	if err := newRootCmd(config.New()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "launchboard",
		Short:         "Interactive dashboard for launch records",
		Version:       launchboard.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (yaml, json or toml)")
	rootCmd.PersistentFlags().StringP("dataset", "d", config.DefaultDatasetPath, "Launch dataset (.csv or .xlsx)")
	_ = v.BindPFlag("dataset", rootCmd.PersistentFlags().Lookup("dataset"))

	rootCmd.AddCommand(buildServeCmd(v), buildSummaryCmd(v))

	return rootCmd
}

func buildServeCmd(v *viper.Viper) *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the dashboard web server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), v)
		},
	}

	serveCmd.Flags().IntP("port", "p", config.DefaultPort, "HTTP port")
	serveCmd.Flags().Bool("debug", false, "Serve unminified assets and log every request")
	_ = v.BindPFlag("port", serveCmd.Flags().Lookup("port"))
	_ = v.BindPFlag("debug", serveCmd.Flags().Lookup("debug"))

	return serveCmd
}

func buildSummaryCmd(v *viper.Viper) *cobra.Command {
	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Print per-site statistics and a payload histogram",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSummary(cmd, v)
		},
	}

	summaryCmd.Flags().StringVarP(&site, "site", "s", view.AllSites, "Launch site, or ALL")
	summaryCmd.Flags().Float64Var(&low, "low", 0, "Lower payload bound in kg (exclusive, defaults to the dataset minimum)")
	summaryCmd.Flags().Float64Var(&high, "high", 0, "Upper payload bound in kg (exclusive, defaults to the dataset maximum)")

	return summaryCmd
}

// loadDataset reads the configuration and the dataset it points to
func loadDataset(v *viper.Viper) (*config.AppConfig, *dataset.Dataset, error) {
	cfg, err := config.Load(v, configPath)
	if err != nil {
		return nil, nil, err
	}

	ds, err := dataset.Load(cfg.Dataset)
	if err != nil {
		return nil, nil, err
	}

	launchboard.DefaultLog.WithFields(map[string]any{
		"path":    cfg.Dataset,
		"records": ds.Len(),
		"sites":   len(ds.Sites()),
	}).Info("Dataset loaded")

	return cfg, ds, nil
}

func runServe(ctx context.Context, v *viper.Viper) error {
	cfg, ds, err := loadDataset(v)
	if err != nil {
		return err
	}

	options := []plot.Option{
		plot.WithPort(cfg.Port),
		plot.WithRangeControl(cfg.Slider.Min, cfg.Slider.Max, cfg.Slider.Step),
		plot.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout),
	}
	if cfg.Debug {
		options = append(options, plot.WithDebug())
	}

	dashboard, err := plot.NewDashboard(ds, launchboard.DefaultLog, options...)
	if err != nil {
		return err
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return dashboard.Start(ctx)
}

func runSummary(cmd *cobra.Command, v *viper.Viper) error {
	cfg, ds, err := loadDataset(v)
	if err != nil {
		return err
	}

	sel := view.Default(ds.Summary())
	sel.Site = site
	if cmd.Flags().Changed("low") {
		sel.Range.Low = low
	}
	if cmd.Flags().Changed("high") {
		sel.Range.High = high
	}
	sel = sel.Normalize(view.Domain(cfg.Slider.Min, cfg.Slider.Max, ds.Summary()))

	return report.Write(cmd.OutOrStdout(), ds, sel)
}
