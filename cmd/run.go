package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/CjMullins87/solar-battery-sim/app"
	"github.com/CjMullins87/solar-battery-sim/config"
	"github.com/CjMullins87/solar-battery-sim/infra/logger"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the configured scenario",
	RunE:  runScenario,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runScenario(cmd *cobra.Command, args []string) error {
	return withService(func(ctx context.Context, cfg *config.Config, svc *app.Service, out io.Writer) error {
		var outcomes io.Writer
		if cfg.Scenario.CaptureRaw && (format == "csv" || format == "") && outPath != "" {
			f, err := os.Create(outcomesPath(outPath))
			if err != nil {
				return fmt.Errorf("create outcomes output: %w", err)
			}
			defer f.Close()
			outcomes = f
		}
		return svc.Run(ctx, out, outcomes, format)
	})
}

// outcomesPath derives the sibling file holding captured per-trial
// outcomes, e.g. results.csv -> results_outcomes.csv.
func outcomesPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + "_outcomes.csv"
}

// withService loads the config, assembles the service and the output writer
// and hands them to fn with a signal-aware context.
func withService(fn func(context.Context, *config.Config, *app.Service, io.Writer) error) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.New("main").Errorf("service close: %v", err)
		}
	}()

	var out io.Writer = os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}
	return fn(ctx, cfg, svc, out)
}
