// Package craft assembles parts into a single rigid body and advances it
// one fixed step at a time under thrust, aerodynamic forces and gravity.
package craft

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/EngoEngine/ecs"

	"github.com/opd-ai/go-shipsim/pkg/component"
	"github.com/opd-ai/go-shipsim/pkg/event"
	"github.com/opd-ai/go-shipsim/pkg/forces"
	"github.com/opd-ai/go-shipsim/pkg/logging"
	"github.com/opd-ai/go-shipsim/pkg/physics"
	"github.com/opd-ai/go-shipsim/pkg/validation"
)

// DefaultOrientation points the nose straight up
const DefaultOrientation = math.Pi / 2

// ErrAlreadyAttached is returned when a part is attached twice
var ErrAlreadyAttached = errors.New("part already attached")

// StepReport holds the forces computed during the most recent step
type StepReport struct {
	Propulsion forces.PropulsionResult
	Aero       forces.ForceResult
	Weight     physics.Vector2D
	Force      physics.Vector2D
	Torque     float64
}

// Spaceship is a craft assembled from parts. Mass, center of mass and
// moment of inertia are computed from the attached parts on every call.
// A Spaceship is not safe for concurrent use.
type Spaceship struct {
	ecs.BasicEntity

	components []component.Part
	engines    []*component.Engine
	tanks      []*component.FuelTank
	wings      []*component.Wing
	attached   map[uint64]bool

	state physics.State
	last  StepReport

	bus    *event.Bus
	logger *logging.Logger
}

// Option configures a Spaceship
type Option func(*Spaceship)

// WithEventBus publishes attach and fuel events to bus
func WithEventBus(bus *event.Bus) Option {
	return func(s *Spaceship) { s.bus = bus }
}

// WithLogger sets the logger used for debug output
func WithLogger(logger *logging.Logger) Option {
	return func(s *Spaceship) { s.logger = logger }
}

// WithState sets the initial kinematic state
func WithState(state physics.State) Option {
	return func(s *Spaceship) { s.state = state }
}

// New creates an empty craft at rest at the origin, nose up
func New(opts ...Option) *Spaceship {
	s := &Spaceship{
		BasicEntity: ecs.NewBasic(),
		attached:    make(map[uint64]bool),
		state:       physics.State{Orientation: DefaultOrientation},
		logger:      logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Attach validates p and files it under engines, fuel tanks, wings or
// generic components. Attach order within each group is kept; for tanks it
// is the drain order.
func (s *Spaceship) Attach(p component.Part) error {
	if err := validation.ValidatePart(p); err != nil {
		return fmt.Errorf("attach: %w", err)
	}
	id := p.Base().ID()
	if s.attached[id] {
		return fmt.Errorf("attach %q: %w", p.Base().Name, ErrAlreadyAttached)
	}

	switch v := p.(type) {
	case *component.Engine:
		s.engines = append(s.engines, v)
	case *component.FuelTank:
		s.tanks = append(s.tanks, v)
	case *component.Wing:
		s.wings = append(s.wings, v)
	default:
		s.components = append(s.components, p)
	}
	s.attached[id] = true

	s.logger.Debug(context.Background(), "Part attached",
		"craft_id", s.ID(),
		"part", p.Base().Name,
		"kind", p.Kind().String(),
	)
	if s.bus != nil {
		s.bus.Publish(event.NewPartEvent(s, s.ID(), id, p.Base().Name, p.Kind().String()))
	}
	return nil
}

// Components returns the generic parts (hull sections, cockpits, ...)
func (s *Spaceship) Components() []component.Part { return s.components }

// Engines returns the attached engines in attach order
func (s *Spaceship) Engines() []*component.Engine { return s.engines }

// FuelTanks returns the attached tanks in drain order
func (s *Spaceship) FuelTanks() []*component.FuelTank { return s.tanks }

// Wings returns the attached wings in attach order
func (s *Spaceship) Wings() []*component.Wing { return s.wings }

// Parts returns every attached part: generic components, then engines,
// tanks and wings
func (s *Spaceship) Parts() []component.Part {
	parts := make([]component.Part, 0, len(s.components)+len(s.engines)+len(s.tanks)+len(s.wings))
	parts = append(parts, s.components...)
	for _, e := range s.engines {
		parts = append(parts, e)
	}
	for _, t := range s.tanks {
		parts = append(parts, t)
	}
	for _, w := range s.wings {
		parts = append(parts, w)
	}
	return parts
}

// Mass is the total mass of all parts including fuel
func (s *Spaceship) Mass() float64 {
	total := 0.0
	for _, p := range s.Parts() {
		total += p.Mass()
	}
	return total
}

// CenterOfMass is the mass-weighted mean part position in the body frame.
// A massless craft reports the origin.
func (s *Spaceship) CenterOfMass() physics.Vector2D {
	total := s.Mass()
	if total == 0 {
		return physics.Vector2D{}
	}
	var weighted physics.Vector2D
	for _, p := range s.Parts() {
		weighted = weighted.Add(p.Base().Position.Scale(p.Mass()))
	}
	return weighted.Scale(1.0 / total)
}

// MomentOfInertia sums each part's own inertia and its parallel axis term
// about the center of mass
func (s *Spaceship) MomentOfInertia() float64 {
	com := s.CenterOfMass()
	inertia := 0.0
	for _, p := range s.Parts() {
		r := p.Base().Position.Sub(com)
		inertia += p.Inertia() + p.Mass()*r.LengthSquared()
	}
	return inertia
}

// TotalDragArea sums the drag area of every part
func (s *Spaceship) TotalDragArea() float64 {
	area := 0.0
	for _, p := range s.Parts() {
		area += p.Base().DragArea
	}
	return area
}

// FuelRemaining sums the fuel left in every tank
func (s *Spaceship) FuelRemaining() float64 {
	fuel := 0.0
	for _, t := range s.tanks {
		fuel += t.FuelLevel
	}
	return fuel
}

// FuelCapacity sums the capacity of every tank
func (s *Spaceship) FuelCapacity() float64 {
	capacity := 0.0
	for _, t := range s.tanks {
		capacity += t.FuelCapacity
	}
	return capacity
}

// State returns the current kinematic state
func (s *Spaceship) State() physics.State { return s.state }

// Position in the world frame
func (s *Spaceship) Position() physics.Vector2D { return s.state.Position }

// Velocity in the world frame
func (s *Spaceship) Velocity() physics.Vector2D { return s.state.Velocity }

// Orientation in radians
func (s *Spaceship) Orientation() float64 { return s.state.Orientation }

// AngularVelocity in rad/s
func (s *Spaceship) AngularVelocity() float64 { return s.state.AngularVelocity }

// LastStep returns the forces from the most recent successful step
func (s *Spaceship) LastStep() StepReport { return s.last }
