// Package forces turns engine, fuel tank and airframe state into the world
// frame force and torque acting on a craft for one tick.
package forces

import (
	"github.com/opd-ai/go-shipsim/pkg/component"
	"github.com/opd-ai/go-shipsim/pkg/physics"
)

// PropulsionResult is the thrust produced during one tick
type PropulsionResult struct {
	Force  physics.Vector2D // world frame
	Torque float64          // about the center of mass
	// FuelUsed is the fuel mass drained from the tanks this tick
	FuelUsed float64
	// FuelRequested is what the engines asked for before derating
	FuelRequested float64
}

// Starved reports whether the engines asked for more fuel than was available
func (r PropulsionResult) Starved() bool {
	return r.FuelUsed < r.FuelRequested
}

// ClampThrottle saturates a throttle command to [0, 1]
func ClampThrottle(throttle float64) float64 {
	return max(0.0, min(1.0, throttle))
}

// ComputePropulsion sums the thrust of every engine and drains the fuel it
// burns from tanks, in order. The drain is a side effect on tanks and is
// applied before this function returns.
//
// Each engine burns FuelConsumption*throttle per call. When the tanks hold
// less than that, force and torque are scaled by available/requested so all
// engines lose thrust in proportion.
func ComputePropulsion(engines []*component.Engine, tanks []*component.FuelTank, throttle, orientation float64, com physics.Vector2D) PropulsionResult {
	throttle = ClampThrottle(throttle)

	var result PropulsionResult
	for _, engine := range engines {
		direction := engine.Direction.Rotate(orientation)
		force := direction.Scale(engine.Thrust * throttle)
		lever := engine.Position.Sub(com)

		result.Force = result.Force.Add(force)
		result.Torque += lever.Cross(force)
		result.FuelRequested += engine.FuelConsumption * throttle
	}

	available := 0.0
	for _, tank := range tanks {
		available += tank.FuelLevel
	}

	result.FuelUsed = min(available, result.FuelRequested)
	if result.FuelRequested > 0 && result.FuelUsed < result.FuelRequested {
		scale := result.FuelUsed / result.FuelRequested
		result.Force = result.Force.Scale(scale)
		result.Torque *= scale
	}

	drainTanks(tanks, result.FuelUsed)
	return result
}

// drainTanks takes amount from the tanks front to back
func drainTanks(tanks []*component.FuelTank, amount float64) {
	for _, tank := range tanks {
		if amount <= 0 {
			return
		}
		amount -= tank.Drain(amount)
	}
}
