package sim

import (
	"math"

	"github.com/EngoEngine/ecs"

	"github.com/opd-ai/go-shipsim/pkg/craft"
	"github.com/opd-ai/go-shipsim/pkg/physics"
)

// Sample is one entry of the flight timeline, recorded after each tick
type Sample struct {
	Time        float64
	Position    physics.Vector2D
	Velocity    physics.Vector2D
	Speed       float64
	Altitude    float64
	Orientation float64 // degrees
}

// FlightSystem steps a single craft each time the world updates. The world
// passes a float32 delta; the system ignores it and uses its own float64 dt
// so trajectories stay bit-identical across runs.
type FlightSystem struct {
	ship     *craft.Spaceship
	dt       float64
	throttle float64
	time     float64
	samples  []Sample
	err      error
}

// NewFlightSystem creates a system stepping ship by dt per update
func NewFlightSystem(ship *craft.Spaceship, dt float64) *FlightSystem {
	return &FlightSystem{ship: ship, dt: dt}
}

// SetThrottle sets the throttle used by the next update
func (fs *FlightSystem) SetThrottle(throttle float64) { fs.throttle = throttle }

// Update satisfies the ecs.System interface
func (fs *FlightSystem) Update(float32) {
	if fs.ship == nil || fs.err != nil {
		return
	}
	if err := fs.ship.SimulateStep(fs.throttle, fs.dt, nil); err != nil {
		fs.err = err
		return
	}

	fs.time += fs.dt
	state := fs.ship.State()
	fs.samples = append(fs.samples, Sample{
		Time:        fs.time,
		Position:    state.Position,
		Velocity:    state.Velocity,
		Speed:       state.Velocity.Length(),
		Altitude:    state.Position.Y,
		Orientation: state.Orientation * 180 / math.Pi,
	})
}

// Remove satisfies the ecs.System interface
func (fs *FlightSystem) Remove(basic ecs.BasicEntity) {
	if fs.ship != nil && fs.ship.ID() == basic.ID() {
		fs.ship = nil
	}
}

// Reset clears the clock, timeline and stored error. The craft keeps its
// state.
func (fs *FlightSystem) Reset() {
	fs.time = 0
	fs.samples = nil
	fs.err = nil
}

// Time returns the simulated seconds elapsed
func (fs *FlightSystem) Time() float64 { return fs.time }

// Samples returns the recorded timeline
func (fs *FlightSystem) Samples() []Sample { return fs.samples }

// Err returns the error that stopped the system, if any
func (fs *FlightSystem) Err() error { return fs.err }
