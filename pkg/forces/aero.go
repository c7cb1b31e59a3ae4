package forces

import (
	"math"

	"github.com/opd-ai/go-shipsim/pkg/component"
	"github.com/opd-ai/go-shipsim/pkg/physics"
)

// ForceResult is an aggregate force and the torque it applies about the
// center of mass
type ForceResult struct {
	Linear physics.Vector2D // world frame
	Torque float64
}

// Add accumulates a force applied at lever (relative to the center of mass)
func (r *ForceResult) Add(lever, force physics.Vector2D) {
	r.Linear = r.Linear.Add(force)
	r.Torque += lever.Cross(force)
}

// Drag returns the drag force on a body moving at velocity. It points
// against the velocity and is zero when the body is at rest.
func Drag(velocity physics.Vector2D, area float64) physics.Vector2D {
	speed := velocity.Length()
	if speed == 0 {
		return physics.Vector2D{}
	}
	magnitude := 0.5 * physics.AirDensity * physics.DragCoefficient * area * speed * speed
	return velocity.Scale(-1).Normalize().Scale(magnitude)
}

// Lift returns the body frame lift of wing given the body frame airflow
// velocity. The angle of attack is clamped to the stall angle. Lift always
// acts along the body +Y axis; only its magnitude follows the angle of attack.
func Lift(wing *component.Wing, bodyVelocity physics.Vector2D) physics.Vector2D {
	speed := bodyVelocity.Length()
	if speed == 0 {
		return physics.Vector2D{}
	}
	angle := bodyVelocity.Angle() * 180 / math.Pi
	alpha := max(min(-angle, wing.StallAngle), -wing.StallAngle)
	coefficient := wing.LiftCurve * alpha * math.Pi / 180
	dynamicPressure := 0.5 * physics.AirDensity * speed * speed
	return physics.Vector2D{X: 0, Y: coefficient * dynamicPressure * wing.Area}
}

// PointVelocity is the world velocity of a point on a rigid body moving at
// velocity and spinning at angularVelocity about com
func PointVelocity(velocity physics.Vector2D, angularVelocity float64, point, com physics.Vector2D) physics.Vector2D {
	return velocity.Add(physics.Vector2D{
		X: -angularVelocity * (point.Y - com.Y),
		Y: angularVelocity * (point.X - com.X),
	})
}

// ComputeAero sums drag over parts and lift over wings. Each is evaluated
// from the local airflow at the part's position in the body frame and
// rotated back into the world frame before it is accumulated.
func ComputeAero(parts []component.Part, wings []*component.Wing, velocity physics.Vector2D, angularVelocity, orientation float64, com physics.Vector2D) ForceResult {
	var result ForceResult

	for _, p := range parts {
		c := p.Base()
		local := PointVelocity(velocity, angularVelocity, c.Position, com)
		dragBody := Drag(local.Rotate(-orientation), c.DragArea)
		result.Add(c.Position.Sub(com), dragBody.Rotate(orientation))
	}

	for _, wing := range wings {
		local := PointVelocity(velocity, angularVelocity, wing.Position, com)
		liftBody := Lift(wing, local.Rotate(-orientation))
		result.Add(wing.Position.Sub(com), liftBody.Rotate(orientation))
	}

	return result
}
