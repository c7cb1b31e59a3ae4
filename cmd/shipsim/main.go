// cmd/shipsim/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/opd-ai/go-shipsim/pkg/config"
	"github.com/opd-ai/go-shipsim/pkg/craft"
	"github.com/opd-ai/go-shipsim/pkg/event"
	"github.com/opd-ai/go-shipsim/pkg/logging"
	"github.com/opd-ai/go-shipsim/pkg/render"
	"github.com/opd-ai/go-shipsim/pkg/salvage"
	"github.com/opd-ai/go-shipsim/pkg/sim"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		logging.NewLogger().Error(ctx, "Simulation failed", err)
		os.Exit(1)
	}
}

// run parses args, assembles the default craft and flies it, writing the
// summary and telemetry to out.
func run(ctx context.Context, args []string, out io.Writer) error {
	flags := flag.NewFlagSet("shipsim", flag.ContinueOnError)
	configPath := flags.String("config", "", "Path to configuration file (JSON, YAML or TOML)")
	createDefault := flags.Bool("default", false, "Write the default configuration to --config and exit")
	duration := flags.Float64("duration", 0, "Seconds to simulate")
	dt := flags.Float64("dt", 0, "Integration step size")
	takeoff := flags.Float64("takeoff", 0, "Seconds before full throttle")
	plot := flags.Bool("plot", false, "Draw an ASCII plot of the trajectory")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if *createDefault {
		if *configPath == "" {
			return fmt.Errorf("--default needs --config")
		}
		if err := config.SaveConfig(config.DefaultConfig(), *configPath); err != nil {
			return err
		}
		fmt.Fprintf(out, "Created default configuration file %s\n", *configPath)
		return nil
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		return err
	}

	// flags given on the command line win over file and environment
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "duration":
			cfg.Duration = *duration
		case "dt":
			cfg.DT = *dt
		case "takeoff":
			cfg.Takeoff = *takeoff
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.NewLoggerTo(os.Stderr, logging.ParseLevel(cfg.LogLevel))
	ctx = logging.WithRunID(ctx, "")

	bus := event.NewEventBus()
	depleted := bus.Subscribe(event.TankDepleted, func(e event.Event) {
		if fe, ok := e.(*event.FuelEvent); ok {
			logger.Warn(ctx, "Fuel tank ran dry", "tank", fe.TankName, "fuel_remaining", fe.Remaining)
		}
	})
	defer depleted.Cancel()
	exhausted := bus.Subscribe(event.FuelExhausted, func(event.Event) {
		logger.Warn(ctx, "All fuel exhausted")
	})
	defer exhausted.Cancel()

	ship, err := salvage.NewField(nil).SpawnDefaultShip(craft.WithEventBus(bus), craft.WithLogger(logger))
	if err != nil {
		return err
	}
	fmt.Fprintln(out, ship.Summary())
	fmt.Fprintln(out, "\nSimulating...")

	simulation, err := sim.New(ship, cfg.Duration, cfg.DT, sim.WithEventBus(bus), sim.WithLogger(logger))
	if err != nil {
		return err
	}
	profile, err := sim.MakeProfile(cfg.Duration, cfg.DT, cfg.Takeoff)
	if err != nil {
		return err
	}
	samples, runErr := simulation.Run(ctx, profile)
	if err := render.WriteTimeline(out, samples); err != nil {
		return logging.WrapError(err, "write timeline")
	}
	if runErr != nil {
		return runErr
	}

	var renderer render.Renderer = render.NewNullRenderer(logger)
	if *plot {
		fmt.Fprintln(out)
		renderer = render.NewTerminalRenderer(cfg.PlotWidth, cfg.PlotHeight, 1)
	}
	return logging.WrapError(render.DrawTrajectory(renderer, out, samples), "draw trajectory")
}
