// Package cmd - compute command
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	charthcl "shadbala/adapters/chart/hcl"
	"shadbala/core/engine"
	"shadbala/core/output"
	"shadbala/internal/config"
	"shadbala/internal/logging"
)

var (
	outputFormat  string
	showBreakdown bool
	obliquity     float64
	warOrb        float64
	yuddhaName    string
)

// computeCmd represents the compute command
var computeCmd = &cobra.Command{
	Use:   "compute [chart file]",
	Short: "Compute Shadbala for a chart",
	Long: `Compute the six-fold planetary strength for a chart definition.

The chart file is an HCL document carrying the birth context, the
planetary positions and the divisional placements.

Examples:
  shadbala compute chart.hcl
  shadbala compute --format json chart.hcl
  shadbala compute --breakdown --yuddha-strategy declination chart.hcl`,
	Args: cobra.ExactArgs(1),
	RunE: runCompute,
}

func init() {
	computeCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (table, json)")
	computeCmd.Flags().BoolVarP(&showBreakdown, "breakdown", "b", false, "show per-component sub-terms")
	computeCmd.Flags().Float64Var(&obliquity, "obliquity", 0, "ecliptic obliquity in degrees")
	computeCmd.Flags().Float64Var(&warOrb, "war-orb", 0, "planetary war orb in degrees")
	computeCmd.Flags().StringVar(&yuddhaName, "yuddha-strategy", "", "war winner strategy (latitude, declination)")
}

func runCompute(cmd *cobra.Command, args []string) error {
	report, err := computeReport(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	cfg := config.Get()
	format := cfg.Output.DefaultFormat
	if outputFormat != "" {
		format = outputFormat
	}
	formatter, err := output.ByFormat(output.Format(format))
	if err != nil {
		return err
	}
	return formatter.Render(os.Stdout, report, output.Options{
		ShowBreakdown: showBreakdown || cfg.Output.ShowBreakdown,
	})
}

func computeReport(ctx context.Context, path string) (*engine.Report, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("chart file does not exist: %s", path)
	}

	bundle, err := charthcl.NewLoader().Load(path)
	if err != nil {
		return nil, err
	}
	logging.Info("chart definition loaded")

	cfg := config.Get()
	opts := engine.Options{
		Obliquity:     cfg.Calculation.ObliquityDegrees,
		WarOrbDegrees: cfg.Calculation.WarOrbDegrees,
	}
	if obliquity != 0 {
		opts.Obliquity = obliquity
	}
	if warOrb != 0 {
		opts.WarOrbDegrees = warOrb
	}
	strategy := cfg.Calculation.YuddhaStrategy
	if yuddhaName != "" {
		strategy = yuddhaName
	}
	if strategy != "" {
		if opts.Winner, err = engine.StrategyByName(strategy); err != nil {
			return nil, err
		}
	}

	eng := engine.New(bundle, bundle, bundle, opts)
	chart := bundle.Context
	if ctx == nil {
		ctx = context.Background()
	}
	return eng.Compute(ctx, chart.JulianDay, chart.GeoLat, chart.GeoLon)
}
