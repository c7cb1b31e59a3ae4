// Package validation checks caller-supplied numbers and parts before they
// reach the force models and integrator.
package validation

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/opd-ai/go-shipsim/pkg/component"
)

// Limits for part names and run length
const (
	MaxPartNameLen = 64
	MaxSteps       = 1_000_000
)

// ErrInvalidInput is wrapped by every error returned from this package
var ErrInvalidInput = errors.New("invalid input")

// StepCount returns int(duration/dt), the number of ticks in a run. duration
// and dt must be finite and positive and the count may not exceed MaxSteps.
func StepCount(duration, dt float64) (int, error) {
	if err := Finite("duration", duration); err != nil {
		return 0, err
	}
	if err := Finite("dt", dt); err != nil {
		return 0, err
	}
	if duration <= 0 || dt <= 0 {
		return 0, fmt.Errorf("%w: duration and dt must be positive, got %v and %v", ErrInvalidInput, duration, dt)
	}
	ratio := duration / dt
	if ratio > MaxSteps {
		return 0, fmt.Errorf("%w: %.0f steps exceeds the limit of %d", ErrInvalidInput, ratio, MaxSteps)
	}
	return int(ratio), nil
}

// Finite returns an error if value is NaN or infinite
func Finite(name string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidInput, name, value)
	}
	return nil
}

// NonNegative returns an error if value is not a finite number >= 0
func NonNegative(name string, value float64) error {
	if err := Finite(name, value); err != nil {
		return err
	}
	if value < 0 {
		return fmt.Errorf("%w: %s cannot be negative: %v", ErrInvalidInput, name, value)
	}
	return nil
}

// ValidateStep checks the inputs of one simulation tick. Throttle may be
// any finite value since it is clamped downstream; dt must be positive.
func ValidateStep(throttle, dt float64, controlSurfaces map[string]float64) error {
	if err := Finite("throttle", throttle); err != nil {
		return err
	}
	if err := Finite("dt", dt); err != nil {
		return err
	}
	if dt <= 0 {
		return fmt.Errorf("%w: dt must be positive, got %v", ErrInvalidInput, dt)
	}
	for surface, deflection := range controlSurfaces {
		if err := Finite("control surface "+surface, deflection); err != nil {
			return err
		}
	}
	return nil
}

// ValidatePart checks the physical attributes of a part before attachment
func ValidatePart(p component.Part) error {
	if p == nil {
		return fmt.Errorf("%w: part is nil", ErrInvalidInput)
	}
	c := p.Base()

	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: part name cannot be empty", ErrInvalidInput)
	}
	if len(c.Name) > MaxPartNameLen {
		return fmt.Errorf("%w: part name too long: %d characters (max %d)", ErrInvalidInput, len(c.Name), MaxPartNameLen)
	}
	if err := NonNegative(c.Name+" mass", c.DryMass); err != nil {
		return err
	}
	if !c.Position.IsFinite() {
		return fmt.Errorf("%w: %s position must be finite, got %v", ErrInvalidInput, c.Name, c.Position)
	}
	if err := NonNegative(c.Name+" width", c.Size.Width); err != nil {
		return err
	}
	if err := NonNegative(c.Name+" height", c.Size.Height); err != nil {
		return err
	}
	if err := NonNegative(c.Name+" drag area", c.DragArea); err != nil {
		return err
	}
	if c.InertiaOverride != nil {
		if err := NonNegative(c.Name+" inertia", *c.InertiaOverride); err != nil {
			return err
		}
	}

	switch v := p.(type) {
	case *component.Engine:
		return validateEngine(v)
	case *component.FuelTank:
		return validateFuelTank(v)
	case *component.Wing:
		return validateWing(v)
	}
	return nil
}

func validateEngine(e *component.Engine) error {
	if err := NonNegative(e.Name+" thrust", e.Thrust); err != nil {
		return err
	}
	if err := NonNegative(e.Name+" fuel consumption", e.FuelConsumption); err != nil {
		return err
	}
	if err := Finite(e.Name+" gimbal limit", e.GimbalLimit); err != nil {
		return err
	}
	if !e.Direction.IsFinite() {
		return fmt.Errorf("%w: %s direction must be finite, got %v", ErrInvalidInput, e.Name, e.Direction)
	}
	return nil
}

func validateFuelTank(t *component.FuelTank) error {
	if err := NonNegative(t.Name+" fuel capacity", t.FuelCapacity); err != nil {
		return err
	}
	if err := NonNegative(t.Name+" fuel level", t.FuelLevel); err != nil {
		return err
	}
	if t.FuelLevel > t.FuelCapacity {
		return fmt.Errorf("%w: %s fuel level %v exceeds capacity %v", ErrInvalidInput, t.Name, t.FuelLevel, t.FuelCapacity)
	}
	return nil
}

func validateWing(w *component.Wing) error {
	if err := NonNegative(w.Name+" wing area", w.Area); err != nil {
		return err
	}
	if err := Finite(w.Name+" lift curve", w.LiftCurve); err != nil {
		return err
	}
	return NonNegative(w.Name+" stall angle", w.StallAngle)
}
