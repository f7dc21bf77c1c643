package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	service "github.com/okian/blade/internal/app"
	"github.com/okian/blade/internal/config"
	"github.com/okian/blade/internal/render"
	"github.com/okian/blade/pkg/logger"
	"github.com/okian/blade/pkg/metrics"
)

var version = "0.1.0"

type rootFlags struct {
	roster      string
	top         int
	sanctions   bool
	logLevel    string
	format      string
	metricsFile string
}

func newRootCmd() *cobra.Command {
	f := &rootFlags{}

	root := &cobra.Command{
		Use:           "blade",
		Short:         "Score tournament match histories and rank the competitors",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&f.roster, "roster", "", "Roster YAML file (default: built-in sample roster)")
	flags.IntVar(&f.top, "top", 0, "Show only the best N standings (0 shows all)")
	flags.BoolVar(&f.sanctions, "sanctions", false, "Apply disqualifications and penalty points when ranking")
	flags.StringVar(&f.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	flags.StringVar(&f.metricsFile, "metrics-file", "", "Write a Prometheus text snapshot of the ranking metrics to this file")

	rank := &cobra.Command{
		Use:   "rank",
		Short: "Print the full tournament ranking and its champion",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRank(cmd, f)
		},
	}
	rank.Flags().StringVar(&f.format, "format", "table", "Output format: table or json")

	root.AddCommand(
		rank,
		&cobra.Command{
			Use:   "champion",
			Short: "Print only the tournament champion",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runChampion(cmd, f)
			},
		},
	)

	return root
}

// setup loads configuration, applies explicitly set flags on top of it and
// builds the service.
func setup(cmd *cobra.Command, f *rootFlags) (context.Context, *config.Config, *service.Service, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, nil, nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("roster") {
		cfg.Roster = f.roster
	}
	if flags.Changed("top") {
		cfg.Top = f.top
	}
	if flags.Changed("sanctions") {
		cfg.ApplySanctions = f.sanctions
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile = f.metricsFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, nil, err
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		return nil, nil, nil, err
	}

	svc := service.New(
		service.WithLogger(logger.Named("blade")),
		service.WithTop(cfg.Top),
		service.WithSanctions(cfg.ApplySanctions),
	)
	return ctx, cfg, svc, nil
}

func runRank(cmd *cobra.Command, f *rootFlags) error {
	ctx, cfg, svc, err := setup(cmd, f)
	if err != nil {
		return err
	}

	competitors, err := svc.Competitors(ctx, cfg.Roster)
	if err != nil {
		return err
	}
	report, err := svc.Report(ctx, competitors)
	if err != nil {
		return err
	}
	if err := exportMetrics(cfg); err != nil {
		return err
	}

	var out string
	switch f.format {
	case "table":
		out = render.Standings(report.Standings, report.Champion, report.Total)
	case "json":
		if out, err = render.JSON(report.Standings, report.Champion, report.Total); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q (want table or json)", f.format)
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}

func runChampion(cmd *cobra.Command, f *rootFlags) error {
	ctx, cfg, svc, err := setup(cmd, f)
	if err != nil {
		return err
	}

	competitors, err := svc.Competitors(ctx, cfg.Roster)
	if err != nil {
		return err
	}
	champion, err := svc.Champion(ctx, competitors)
	if err != nil {
		return err
	}
	if err := exportMetrics(cfg); err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), render.Champion(champion))
	return err
}

// exportMetrics writes the metrics snapshot when a metrics file is configured.
func exportMetrics(cfg *config.Config) error {
	if cfg.MetricsFile == "" {
		return nil
	}
	return metrics.WriteTextfile(cfg.MetricsFile)
}
