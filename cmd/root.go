package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgPath string
	outPath string
	format  string
)

var rootCmd = &cobra.Command{
	Use:   "solar-battery-sim",
	Short: "Monte Carlo estimator for off-grid battery survival",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "scenario.yaml", "scenario file")
	rootCmd.PersistentFlags().StringVarP(&outPath, "out", "o", "", "write results to file instead of stdout")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "csv", "output format: csv or json")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }
