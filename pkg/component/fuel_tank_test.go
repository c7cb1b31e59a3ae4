package component

import (
	"math"
	"testing"

	"github.com/opd-ai/go-shipsim/pkg/physics"
)

func TestFuelTank_Drain(t *testing.T) {
	tests := []struct {
		name          string
		level         float64
		request       float64
		expectedTaken float64
		expectedLevel float64
	}{
		{name: "partial drain", level: 10, request: 4, expectedTaken: 4, expectedLevel: 6},
		{name: "exact drain", level: 10, request: 10, expectedTaken: 10, expectedLevel: 0},
		{name: "over drain", level: 5, request: 10, expectedTaken: 5, expectedLevel: 0},
		{name: "empty tank", level: 0, request: 3, expectedTaken: 0, expectedLevel: 0},
		{name: "zero request", level: 10, request: 0, expectedTaken: 0, expectedLevel: 10},
		{name: "negative request", level: 10, request: -2, expectedTaken: 0, expectedLevel: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tank := NewFuelTank(New("tank", 100, physics.Vector2D{}, Size{}, 0.5), 10, tt.level)

			taken := tank.Drain(tt.request)

			if math.Abs(taken-tt.expectedTaken) > 1e-9 {
				t.Errorf("Drain() = %v, expected %v", taken, tt.expectedTaken)
			}
			if math.Abs(tank.FuelLevel-tt.expectedLevel) > 1e-9 {
				t.Errorf("FuelLevel = %v, expected %v", tank.FuelLevel, tt.expectedLevel)
			}
			if tank.FuelLevel < 0 || tank.FuelLevel > tank.FuelCapacity {
				t.Errorf("FuelLevel %v outside [0, %v]", tank.FuelLevel, tank.FuelCapacity)
			}
			if tank.Empty() != (tank.FuelLevel == 0) {
				t.Errorf("Empty() = %v with level %v", tank.Empty(), tank.FuelLevel)
			}
		})
	}
}

func TestFuelTank_WetMass(t *testing.T) {
	tank := NewFuelTank(New("tank", 350, physics.Vector2D{}, Size{Width: 1.8, Height: 1.2}, 0.6), 400, 300)

	if tank.Mass() != 650 {
		t.Errorf("Expected wet mass 650, got %v", tank.Mass())
	}

	full := tank.Inertia()
	tank.Drain(300)

	if tank.Mass() != 350 {
		t.Errorf("Expected dry mass 350 after draining, got %v", tank.Mass())
	}
	if tank.Inertia() >= full {
		t.Errorf("Expected inertia to drop with fuel, got %v >= %v", tank.Inertia(), full)
	}
	if math.Abs(tank.Inertia()-PlateInertia(350, tank.Size)) > 1e-9 {
		t.Errorf("Expected dry inertia %v, got %v", PlateInertia(350, tank.Size), tank.Inertia())
	}
}
