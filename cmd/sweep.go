package cmd

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/CjMullins87/solar-battery-sim/app"
	"github.com/CjMullins87/solar-battery-sim/config"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Sweep the first battery's capacity over the configured range",
	RunE:  runSweep,
}

func init() {
	rootCmd.AddCommand(sweepCmd)
}

func runSweep(cmd *cobra.Command, args []string) error {
	return withService(func(ctx context.Context, _ *config.Config, svc *app.Service, out io.Writer) error {
		return svc.Sweep(ctx, out, format)
	})
}
