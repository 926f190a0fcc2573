// Command tisim simulates a narrow impulse observed by a single base-rate
// sampler and by a bank of time-interleaved samplers.
//
// Usage:
//
//	tisim [flags]
//
// Flags override values loaded from a scenario file.
//
// Examples:
//
//	tisim
//	tisim -t 1.20
//	tisim -t 1.23 -plot sampling.png
//	tisim -config scenario.yaml -v
//	tisim -sweep 1000 -sim-rate 100 -workers 8
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/cwbudde/algo-tisample/internal/scenario"
	"github.com/cwbudde/algo-tisample/report"
	"github.com/cwbudde/algo-tisample/sim"
	"gonum.org/v1/plot/vg"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("tisim", flag.ContinueOnError)
	fs.SetOutput(stderr)

	def := scenario.Default()
	configPath := fs.String("config", "", "YAML scenario file")
	impulse := fs.Float64("t", def.ImpulseTime, "impulse time in seconds")
	duration := fs.Float64("duration", def.Duration, "simulated duration in seconds")
	simRate := fs.Float64("sim-rate", def.SimulationRate, "simulation rate in Hz")
	baseRate := fs.Float64("base-rate", def.BaseRate, "single sampler rate in Hz")
	branches := fs.Int("branches", def.InterleaveFactor, "number of interleaved samplers")
	plotPath := fs.String("plot", "", "write the comparison figure to this file (png, svg, pdf)")
	trials := fs.Int("sweep", 0, "run this many impulse times spread over the duration instead of a single run")
	workers := fs.Int("workers", def.Sweep.Workers, "concurrent trials during a sweep")
	verbose := fs.Bool("v", false, "debug logging")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: tisim [flags]\n\n")
		fmt.Fprintf(stderr, "Compares a single base-rate sampler with time-interleaved samplers\n")
		fmt.Fprintf(stderr, "on a unit impulse.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	sc := def
	if *configPath != "" {
		loaded, err := scenario.Load(*configPath)
		if err != nil {
			return err
		}
		sc = loaded
		logger.Debug("scenario loaded", "path", *configPath)
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t":
			sc.ImpulseTime = *impulse
		case "duration":
			sc.Duration = *duration
		case "sim-rate":
			sc.SimulationRate = *simRate
		case "base-rate":
			sc.BaseRate = *baseRate
		case "branches":
			sc.InterleaveFactor = *branches
		case "plot":
			sc.Plot.Output = *plotPath
		case "sweep":
			sc.Sweep.Trials = *trials
		case "workers":
			sc.Sweep.Workers = *workers
		}
	})

	opts := []sim.Option{
		sim.WithSampling(sc.SamplingOptions()...),
		sim.WithLogger(logger),
	}

	if sc.Sweep.Trials > 0 {
		return sweep(ctx, sc, opts, stdout, logger)
	}

	reporters := []sim.Reporter{report.NewText(stdout)}
	if sc.Plot.Output != "" {
		reporters = append(reporters, report.NewPlot(sc.Plot.Output,
			report.WithSize(vg.Length(sc.Plot.WidthCM)*vg.Centimeter, vg.Length(sc.Plot.HeightCM)*vg.Centimeter)))
	}
	opts = append(opts, sim.WithReporter(report.Multi(reporters...)))

	res, err := sim.Run(sc.ImpulseTime, opts...)
	if err != nil {
		return err
	}
	if sc.Plot.Output != "" {
		logger.Info("plot written", "path", sc.Plot.Output)
	}
	logger.Debug("run complete",
		"single_hit", res.Single.Detection.Hit,
		"interleaved_hit", res.Interleaved.Detection.Hit)
	return nil
}

func sweep(ctx context.Context, sc scenario.Scenario, opts []sim.Option, stdout io.Writer, logger *slog.Logger) error {
	cfg := sc.SamplingConfig()
	times := sim.UniformTimes(cfg.Duration, sc.Sweep.Trials)
	logger.Info("sweep started", "trials", len(times), "workers", sc.Sweep.Workers)

	results, err := sim.Sweep(ctx, times, sc.Sweep.Workers, opts...)
	if err != nil {
		return err
	}
	return report.SweepTable(stdout, results)
}
