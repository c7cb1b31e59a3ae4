package craft

import (
	"context"
	"fmt"

	"github.com/opd-ai/go-shipsim/pkg/event"
	"github.com/opd-ai/go-shipsim/pkg/forces"
	"github.com/opd-ai/go-shipsim/pkg/physics"
	"github.com/opd-ai/go-shipsim/pkg/validation"
)

// SimulateStep advances the craft by dt seconds at the given throttle.
// Throttle is clamped to [0, 1]. controlSurfaces is accepted for future
// control models and currently has no effect; it may be nil.
//
// The step drains fuel from the tanks and replaces the kinematic state. It
// fails only for non-finite inputs or a non-positive dt, in which case
// nothing is changed.
func (s *Spaceship) SimulateStep(throttle, dt float64, controlSurfaces map[string]float64) error {
	if err := validation.ValidateStep(throttle, dt, controlSurfaces); err != nil {
		return fmt.Errorf("simulate step: %w", err)
	}

	fueled := s.fueledTanks()
	com := s.CenterOfMass()

	propulsion := forces.ComputePropulsion(s.engines, s.tanks, throttle, s.state.Orientation, com)
	aero := forces.ComputeAero(s.Parts(), s.wings, s.state.Velocity, s.state.AngularVelocity, s.state.Orientation, com)

	// Weight acts at the center of mass and adds no torque.
	mass := s.Mass()
	weight := physics.Vector2D{X: 0, Y: -mass * physics.EarthGravity}

	force := propulsion.Force.Add(aero.Linear).Add(weight)
	torque := propulsion.Torque + aero.Torque
	inertia := max(s.MomentOfInertia(), physics.MinInertia)

	s.state = physics.Integrate(s.state, force, torque, mass, inertia, dt)
	s.last = StepReport{
		Propulsion: propulsion,
		Aero:       aero,
		Weight:     weight,
		Force:      force,
		Torque:     torque,
	}

	s.reportFuel(propulsion, fueled)
	return nil
}

func (s *Spaceship) fueledTanks() []bool {
	fueled := make([]bool, len(s.tanks))
	for i, t := range s.tanks {
		fueled[i] = !t.Empty()
	}
	return fueled
}

// reportFuel logs and publishes starvation and tanks that ran dry this step
func (s *Spaceship) reportFuel(propulsion forces.PropulsionResult, fueled []bool) {
	ctx := context.Background()
	remaining := s.FuelRemaining()

	if propulsion.Starved() {
		s.logger.Debug(ctx, "Engines fuel starved",
			"craft_id", s.ID(),
			"fuel_requested", propulsion.FuelRequested,
			"fuel_used", propulsion.FuelUsed,
		)
		s.publish(event.NewFuelEvent(event.FuelStarvation, s, s.ID(), "",
			propulsion.FuelRequested, propulsion.FuelUsed, remaining))
	}

	depleted := false
	for i, t := range s.tanks {
		if fueled[i] && t.Empty() {
			depleted = true
			s.logger.Debug(ctx, "Fuel tank depleted", "craft_id", s.ID(), "tank", t.Name)
			s.publish(event.NewFuelEvent(event.TankDepleted, s, s.ID(), t.Name,
				propulsion.FuelRequested, propulsion.FuelUsed, remaining))
		}
	}

	if depleted && remaining <= 0 {
		s.publish(event.NewFuelEvent(event.FuelExhausted, s, s.ID(), "",
			propulsion.FuelRequested, propulsion.FuelUsed, 0))
	}
}

func (s *Spaceship) publish(e event.Event) {
	if s.bus != nil {
		s.bus.Publish(e)
	}
}
