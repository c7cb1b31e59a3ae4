package component

import "github.com/opd-ai/go-shipsim/pkg/physics"

// Engine produces thrust along Direction, rotated with the craft
type Engine struct {
	Component
	Thrust float64 // N at full throttle
	// FuelConsumption is the fuel mass drawn per tick at full throttle
	FuelConsumption float64
	// GimbalLimit is reported but not yet consumed by the force model
	GimbalLimit float64
	// Direction is a unit vector in the engine's unrotated frame
	Direction physics.Vector2D
}

// NewEngine creates an engine firing along +X of the body frame
func NewEngine(c Component, thrust, fuelConsumption float64) *Engine {
	return &Engine{
		Component:       c.withIdentity(),
		Thrust:          thrust,
		FuelConsumption: fuelConsumption,
		Direction:       physics.Vector2D{X: 1, Y: 0},
	}
}

// Kind implements Part
func (e *Engine) Kind() Kind { return KindEngine }

// Translated implements Part
func (e *Engine) Translated(offset physics.Vector2D) Part {
	moved := *e
	moved.Component = e.translated(offset)
	return &moved
}
