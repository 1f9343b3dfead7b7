package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hkaya/timelineheat/internal/config"
	"github.com/hkaya/timelineheat/pkg/logger"
	"github.com/hkaya/timelineheat/pkg/validator"
)

const version = "1.0.0"

var (
	// Global flags
	verbose bool

	cfg       *config.Config
	appLogger logger.Logger
	val       validator.Validator
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "timelineheat",
	Short: "Convert a Google Maps Timeline export into a privacy-adjusted heatmap",
	Long: `timelineheat is a single-pass batch converter for location history.

It reads a Google Maps Timeline JSON export, extracts every coordinate,
adds uniform random jitter, aggregates the points into capacity-capped
grid cells, and renders the result as an interactive Leaflet heatmap in
a standalone HTML file.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		env := cfg.Env
		level := cfg.Monitoring.LogLevel
		if verbose {
			env = "development"
			level = "debug"
		}
		appLogger = logger.NewLogger(env, level)
	},
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the timelineheat version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("timelineheat %s\n", version)
	},
}

func main() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	val = validator.NewValidator()

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(generateCmd, serveCmd, versionCmd)

	setupGenerateFlags()
	setupServeFlags()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
