package physics

// Physical constants shared by the force models.
const (
	EarthGravity    = 9.80665 // m/s^2
	AirDensity      = 1.225   // kg/m^3 at sea level
	DragCoefficient = 0.7

	// MinInertia floors the moment of inertia handed to Integrate so a
	// craft with (almost) no rotational inertia cannot spin up without bound.
	MinInertia = 1e-3
)

// State is the kinematic state of a rigid body in the world frame
type State struct {
	Position        Vector2D
	Velocity        Vector2D
	Orientation     float64 // radians
	AngularVelocity float64 // rad/s
}

// Integrate advances state by dt with a semi-implicit Euler step.
// Velocities are updated first and the updated values move the body, so
// swapping in the pre-update velocities changes the trajectory.
// A non-positive mass or inertia yields zero acceleration on that axis.
func Integrate(state State, force Vector2D, torque, mass, inertia, dt float64) State {
	var acceleration Vector2D
	if mass > 0 {
		acceleration = force.Scale(1.0 / mass)
	}
	state.Velocity = state.Velocity.Add(acceleration.Scale(dt))
	state.Position = state.Position.Add(state.Velocity.Scale(dt))

	angularAcceleration := 0.0
	if inertia > 0 {
		angularAcceleration = torque / inertia
	}
	state.AngularVelocity += angularAcceleration * dt
	state.Orientation += state.AngularVelocity * dt

	return state
}
