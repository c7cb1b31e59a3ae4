package component

import "github.com/opd-ai/go-shipsim/pkg/physics"

// FuelTank stores fuel. FuelLevel stays within [0, FuelCapacity].
type FuelTank struct {
	Component
	FuelCapacity float64
	FuelLevel    float64
}

// NewFuelTank creates a tank holding level units of fuel
func NewFuelTank(c Component, capacity, level float64) *FuelTank {
	return &FuelTank{
		Component:    c.withIdentity(),
		FuelCapacity: capacity,
		FuelLevel:    level,
	}
}

// Kind implements Part
func (t *FuelTank) Kind() Kind { return KindFuelTank }

// Mass includes the fuel currently in the tank
func (t *FuelTank) Mass() float64 { return t.DryMass + t.FuelLevel }

// Inertia uses the wet mass
func (t *FuelTank) Inertia() float64 { return t.inertiaFor(t.Mass()) }

// Drain removes up to amount fuel from the tank and returns what was taken.
// The level never goes below zero.
func (t *FuelTank) Drain(amount float64) float64 {
	if amount <= 0 || t.FuelLevel <= 0 {
		return 0
	}
	taken := min(t.FuelLevel, amount)
	t.FuelLevel -= taken
	return taken
}

// Empty reports whether the tank has no fuel left
func (t *FuelTank) Empty() bool { return t.FuelLevel <= 0 }

// Translated implements Part
func (t *FuelTank) Translated(offset physics.Vector2D) Part {
	moved := *t
	moved.Component = t.translated(offset)
	return &moved
}
