// Package cmd provides the CLI commands for shadbala.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"shadbala/internal/config"
	"shadbala/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "shadbala",
	Short: "Compute six-fold planetary strength for a Vedic chart",
	Long: `shadbala computes the classical six-fold strength of the seven
planets from a chart definition file, with the full per-component
breakdown, planetary-war corrections and the Ishta/Kashta potentials.

Examples:
  shadbala compute chart.hcl
  shadbala compute --format json --breakdown chart.hcl
  shadbala aspects chart.hcl`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.shadbala.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(computeCmd)
	rootCmd.AddCommand(aspectsCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	path := cfgFile
	explicit := path != ""
	if !explicit {
		path = config.DefaultPath()
	}
	if cfg, err := config.Load(path); err == nil {
		config.Set(cfg)
	} else if explicit {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("shadbala version 0.1.0")
	},
}
