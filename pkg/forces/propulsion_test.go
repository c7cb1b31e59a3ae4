package forces

import (
	"math"
	"testing"

	"github.com/opd-ai/go-shipsim/pkg/component"
	"github.com/opd-ai/go-shipsim/pkg/physics"
)

func newEngine(position physics.Vector2D, thrust, consumption float64) *component.Engine {
	return component.NewEngine(
		component.New("engine", 100, position, component.Size{Width: 1, Height: 1}, 0.5),
		thrust, consumption,
	)
}

func newTank(name string, capacity, level float64) *component.FuelTank {
	return component.NewFuelTank(
		component.New(name, 50, physics.Vector2D{}, component.Size{Width: 1, Height: 1}, 0.3),
		capacity, level,
	)
}

func totalFuel(tanks []*component.FuelTank) float64 {
	sum := 0.0
	for _, tank := range tanks {
		sum += tank.FuelLevel
	}
	return sum
}

func TestClampThrottle(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{-1.0, 0.0},
		{0.0, 0.0},
		{0.4, 0.4},
		{1.0, 1.0},
		{2.0, 1.0},
	}

	for _, tt := range tests {
		if got := ClampThrottle(tt.input); got != tt.expected {
			t.Errorf("ClampThrottle(%v) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}

func TestComputePropulsion_ThrottleClamping(t *testing.T) {
	tests := []struct {
		name      string
		throttle  float64
		reference float64
	}{
		{name: "over full throttle", throttle: 2.0, reference: 1.0},
		{name: "reverse throttle", throttle: -1.0, reference: 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run := func(throttle float64) (PropulsionResult, float64) {
				engines := []*component.Engine{newEngine(physics.Vector2D{X: 1.5, Y: 0.5}, 1000, 4)}
				tanks := []*component.FuelTank{newTank("tank", 100, 100)}
				result := ComputePropulsion(engines, tanks, throttle, math.Pi/3, physics.Vector2D{X: 0.2})
				return result, tanks[0].FuelLevel
			}

			got, gotLevel := run(tt.throttle)
			want, wantLevel := run(tt.reference)

			if got != want {
				t.Errorf("throttle %v = %+v, expected same as throttle %v = %+v", tt.throttle, got, tt.reference, want)
			}
			if gotLevel != wantLevel {
				t.Errorf("tank level %v, expected %v", gotLevel, wantLevel)
			}
		})
	}
}

func TestComputePropulsion_Starvation(t *testing.T) {
	engines := []*component.Engine{newEngine(physics.Vector2D{X: 0, Y: -2}, 1000, 10)}
	tanks := []*component.FuelTank{newTank("tank", 5, 5)}
	com := physics.Vector2D{}

	nominal := ComputePropulsion(engines, []*component.FuelTank{newTank("full", 10, 10)}, 1.0, 0, com)
	result := ComputePropulsion(engines, tanks, 1.0, 0, com)

	if math.Abs(result.FuelUsed-5) > 1e-9 {
		t.Errorf("Expected fuel used 5, got %f", result.FuelUsed)
	}
	if math.Abs(result.FuelRequested-10) > 1e-9 {
		t.Errorf("Expected fuel requested 10, got %f", result.FuelRequested)
	}
	if !result.Starved() {
		t.Error("Expected starved result")
	}
	if nominal.Starved() {
		t.Error("Expected nominal result to be fully fueled")
	}
	if math.Abs(result.Force.X-0.5*nominal.Force.X) > 1e-9 || math.Abs(result.Force.Y-0.5*nominal.Force.Y) > 1e-9 {
		t.Errorf("Expected force %v, got %v", nominal.Force.Scale(0.5), result.Force)
	}
	if math.Abs(result.Torque-0.5*nominal.Torque) > 1e-9 {
		t.Errorf("Expected torque %f, got %f", 0.5*nominal.Torque, result.Torque)
	}
	if nominal.Torque == 0 {
		t.Error("Expected offset engine to produce torque")
	}
	if tanks[0].FuelLevel != 0 {
		t.Errorf("Expected empty tank, got %f", tanks[0].FuelLevel)
	}
}

func TestComputePropulsion_DrainOrder(t *testing.T) {
	tests := []struct {
		name           string
		levels         []float64
		consumption    float64
		expectedLevels []float64
	}{
		{
			name:           "first tank covers demand",
			levels:         []float64{20, 20},
			consumption:    8,
			expectedLevels: []float64{12, 20},
		},
		{
			name:           "spills into second tank",
			levels:         []float64{5, 20},
			consumption:    8,
			expectedLevels: []float64{0, 17},
		},
		{
			name:           "skips empty tank",
			levels:         []float64{0, 3, 10},
			consumption:    8,
			expectedLevels: []float64{0, 0, 5},
		},
		{
			name:           "all tanks exhausted",
			levels:         []float64{1, 2},
			consumption:    8,
			expectedLevels: []float64{0, 0},
		},
		{
			name:           "no tanks",
			levels:         nil,
			consumption:    8,
			expectedLevels: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tanks []*component.FuelTank
			for _, level := range tt.levels {
				tanks = append(tanks, newTank("tank", 20, level))
			}
			before := totalFuel(tanks)

			result := ComputePropulsion([]*component.Engine{newEngine(physics.Vector2D{}, 500, tt.consumption)}, tanks, 1.0, 0, physics.Vector2D{})

			if math.Abs((before-totalFuel(tanks))-result.FuelUsed) > 1e-9 {
				t.Errorf("Fuel not conserved: drained %f, reported %f", before-totalFuel(tanks), result.FuelUsed)
			}
			for i, tank := range tanks {
				if math.Abs(tank.FuelLevel-tt.expectedLevels[i]) > 1e-9 {
					t.Errorf("tank %d level = %f, expected %f", i, tank.FuelLevel, tt.expectedLevels[i])
				}
				if tank.FuelLevel < 0 || tank.FuelLevel > tank.FuelCapacity {
					t.Errorf("tank %d level %f outside [0, %f]", i, tank.FuelLevel, tank.FuelCapacity)
				}
			}
		})
	}
}

func TestComputePropulsion_NoFuelNoThrust(t *testing.T) {
	result := ComputePropulsion(
		[]*component.Engine{newEngine(physics.Vector2D{X: 3}, 5000, 2)},
		[]*component.FuelTank{newTank("dry", 10, 0)},
		1.0, 0, physics.Vector2D{},
	)

	if result.Force != (physics.Vector2D{}) || result.Torque != 0 || result.FuelUsed != 0 {
		t.Errorf("Expected no thrust without fuel, got %+v", result)
	}
}

func TestComputePropulsion_DirectionAndTorque(t *testing.T) {
	// Engine 2 m aft of the center of mass pushing along body +X, craft
	// pointing up: world force is +Y and the lever (-2, 0) gives negative torque.
	engine := newEngine(physics.Vector2D{X: -2, Y: 0}, 100, 0)
	result := ComputePropulsion([]*component.Engine{engine}, nil, 1.0, math.Pi/2, physics.Vector2D{})

	if math.Abs(result.Force.X) > 1e-9 || math.Abs(result.Force.Y-100) > 1e-9 {
		t.Errorf("Expected force (0, 100), got %v", result.Force)
	}
	if math.Abs(result.Torque+200) > 1e-9 {
		t.Errorf("Expected torque -200, got %f", result.Torque)
	}
	if result.Starved() {
		t.Error("Engine without consumption should never starve")
	}
}

func BenchmarkComputePropulsion(b *testing.B) {
	engines := []*component.Engine{
		newEngine(physics.Vector2D{X: 1.8}, 32000, 8),
		newEngine(physics.Vector2D{Y: -1.5}, 2000, 1.5),
	}
	for i := 0; i < b.N; i++ {
		tanks := []*component.FuelTank{newTank("a", 1e9, 1e9)}
		_ = ComputePropulsion(engines, tanks, 0.7, math.Pi/2, physics.Vector2D{})
	}
}
