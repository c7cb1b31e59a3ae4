// Package sim drives a craft through a throttle profile at a fixed time step
// and records its flight timeline.
package sim

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/EngoEngine/ecs"

	"github.com/opd-ai/go-shipsim/pkg/craft"
	"github.com/opd-ai/go-shipsim/pkg/event"
	"github.com/opd-ai/go-shipsim/pkg/logging"
	"github.com/opd-ai/go-shipsim/pkg/validation"
)

// ErrEmptyProfile is returned by Run when there is nothing to simulate
var ErrEmptyProfile = errors.New("empty throttle profile")

// Simulation owns the ecs world a craft flies in
type Simulation struct {
	ship     *craft.Spaceship
	world    *ecs.World
	flight   *FlightSystem
	duration float64
	dt       float64
	bus      *event.Bus
	logger   *logging.Logger
}

// Option configures a Simulation
type Option func(*Simulation)

// WithEventBus publishes run events on bus
func WithEventBus(bus *event.Bus) Option {
	return func(s *Simulation) { s.bus = bus }
}

// WithLogger sets the logger used for run start and end
func WithLogger(logger *logging.Logger) Option {
	return func(s *Simulation) { s.logger = logger }
}

// New creates a simulation that flies ship for duration seconds in steps of dt
func New(ship *craft.Spaceship, duration, dt float64, opts ...Option) (*Simulation, error) {
	if ship == nil {
		return nil, fmt.Errorf("%w: nil craft", validation.ErrInvalidInput)
	}
	if !(dt > 0) || math.IsInf(dt, 0) {
		return nil, fmt.Errorf("%w: dt must be positive, got %v", validation.ErrInvalidInput, dt)
	}
	if err := validation.Finite("duration", duration); err != nil {
		return nil, err
	}

	s := &Simulation{
		ship:     ship,
		world:    &ecs.World{},
		flight:   NewFlightSystem(ship, dt),
		duration: duration,
		dt:       dt,
		logger:   logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.world.AddSystem(s.flight)
	return s, nil
}

// Run flies the craft through profile, one tick per entry, and stops early
// once the simulated time reaches the duration. It returns the timeline
// recorded so far along with any error, including cancellation of ctx.
// Each call starts a fresh clock and timeline from the craft's current state.
func (s *Simulation) Run(ctx context.Context, profile []float64) ([]Sample, error) {
	if len(profile) == 0 {
		return nil, ErrEmptyProfile
	}
	s.flight.Reset()
	if logging.GetRunID(ctx) == "" {
		ctx = logging.WithRunID(ctx, "")
	}

	s.logger.Info(ctx, "Simulation started",
		"craft_id", s.ship.ID(),
		"duration", s.duration,
		"dt", s.dt,
		"ticks", len(profile),
	)
	s.publish(event.NewRunEvent(event.RunStarted, s, 0, 0))

	steps, err := s.loop(ctx, profile)
	if err != nil {
		s.logger.Error(ctx, "Simulation aborted", err, "steps", steps, "elapsed", s.flight.Time())
	} else {
		s.logger.Info(ctx, "Simulation finished",
			"steps", steps,
			"elapsed", s.flight.Time(),
			"fuel_remaining", s.ship.FuelRemaining(),
		)
	}
	s.publish(event.NewRunEvent(event.RunFinished, s, steps, s.flight.Time()))

	return s.flight.Samples(), err
}

func (s *Simulation) loop(ctx context.Context, profile []float64) (int, error) {
	steps := 0
	for _, throttle := range profile {
		if err := ctx.Err(); err != nil {
			return steps, logging.WrapError(err, "run interrupted after %d steps", steps)
		}

		s.flight.SetThrottle(throttle)
		s.world.Update(float32(s.dt))
		if err := s.flight.Err(); err != nil {
			return steps, logging.WrapError(err, "tick %d", steps)
		}
		steps++

		if s.flight.Time() >= s.duration {
			break
		}
	}
	return steps, nil
}

// Detach removes the craft from the world. Later runs record nothing.
func (s *Simulation) Detach() {
	s.world.RemoveEntity(s.ship.BasicEntity)
}

// Craft returns the simulated craft
func (s *Simulation) Craft() *craft.Spaceship { return s.ship }

func (s *Simulation) publish(e event.Event) {
	if s.bus != nil {
		s.bus.Publish(e)
	}
}
