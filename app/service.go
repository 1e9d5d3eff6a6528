package app

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/CjMullins87/solar-battery-sim/config"
	coremetrics "github.com/CjMullins87/solar-battery-sim/core/metrics"
	"github.com/CjMullins87/solar-battery-sim/core/model"
	"github.com/CjMullins87/solar-battery-sim/core/sim"
	"github.com/CjMullins87/solar-battery-sim/infra/logger"
	"github.com/CjMullins87/solar-battery-sim/infra/metrics"
	"github.com/CjMullins87/solar-battery-sim/pkg/export"
)

// Service turns a scenario config into engine runs and exported results.
type Service struct {
	cfg      *config.Config
	log      logger.Logger
	recorder coremetrics.RunRecorder
	influx   *metrics.InfluxSink
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.NewZerologLogger("service", cfg.Logging.Level)

	var sinks []coremetrics.RunRecorder
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink()
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	s := &Service{cfg: cfg, log: logg}
	if cfg.Metrics.InfluxEnabled {
		in := cfg.Metrics.Influx
		sink := metrics.NewInfluxSinkWithFallback(in.URL, in.Token, in.Org, in.Bucket)
		if is, ok := sink.(*metrics.InfluxSink); ok {
			s.influx = is
		}
		sinks = append(sinks, sink)
	}
	switch len(sinks) {
	case 0:
		s.recorder = coremetrics.NopRecorder{}
	case 1:
		s.recorder = sinks[0]
	default:
		s.recorder = metrics.NewMultiSink(sinks...)
	}
	return s, nil
}

// Close releases sink resources.
func (s *Service) Close() error {
	if s.influx != nil {
		s.influx.Close()
	}
	return nil
}

// Run executes the configured scenario and writes the report to out in the
// requested format ("csv" or "json"). When raw capture is on and outcomes is
// non-nil, the per-trial outcomes are additionally written there as CSV;
// the JSON report carries them inline either way. Cancellation stops
// between years.
func (s *Service) Run(ctx context.Context, out, outcomes io.Writer, format string) error {
	s.startPromServer(ctx)

	engine, err := s.buildEngine(s.cfg.Scenario.Label, s.cfg.Batteries)
	if err != nil {
		return err
	}
	sc := s.cfg.Scenario
	s.log.Infof("running %q: %d trials x %d days over %d year(s)",
		sc.Label, sc.Trials, sc.WindowDays, sc.Years)
	results, err := engine.RunMultiYear(ctx, sc.Years, sc.CaptureRaw, sc.Reset)
	if err != nil {
		return err
	}
	rep := export.Report{RunID: engine.RunID(), Label: sc.Label, Results: results}
	if err := writeReport(out, format, rep); err != nil {
		return err
	}
	if sc.CaptureRaw && outcomes != nil {
		return export.WriteOutcomesCSV(outcomes, rep)
	}
	return nil
}

func (s *Service) buildEngine(label string, batteryCfgs []config.BatteryConfig) (*sim.Engine, error) {
	batteries := make([]*model.Battery, 0, len(batteryCfgs))
	for i, bc := range batteryCfgs {
		b, err := model.NewBattery(bc.CapacityKWh, bc.ReservePct, bc.DegradationSchedule)
		if err != nil {
			return nil, fmt.Errorf("battery %d: %w", i, err)
		}
		batteries = append(batteries, b)
	}
	pc := s.cfg.Profile
	profile, err := model.NewConsumptionProfile(pc.AvgNetKWh, pc.StdevNetKWh, pc.DegradationSchedule)
	if err != nil {
		return nil, fmt.Errorf("profile: %w", err)
	}

	sc := s.cfg.Scenario
	opts := []sim.Option{
		sim.WithLogger(s.log),
		sim.WithRecorder(s.recorder),
		sim.WithWorkers(sc.Workers),
	}
	if sc.Seed != 0 {
		opts = append(opts, sim.WithRandSource(rand.NewPCG(sc.Seed, sc.Seed)))
	}
	return sim.New(label, sc.Trials, sc.WindowDays, batteries, profile, opts...)
}

func (s *Service) startPromServer(ctx context.Context) {
	if !s.cfg.Metrics.PrometheusEnabled {
		return
	}
	addr := s.cfg.Metrics.PrometheusAddr
	go func() {
		if err := metrics.StartPromServer(ctx, addr); err != nil {
			s.log.Errorf("prom server: %v", err)
		}
	}()
}

func writeReport(out io.Writer, format string, rep export.Report) error {
	switch format {
	case "json":
		return export.WriteJSON(out, rep)
	case "csv", "":
		return export.WriteCSV(out, rep)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
