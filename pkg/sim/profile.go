package sim

import (
	"github.com/opd-ai/go-shipsim/pkg/logging"
	"github.com/opd-ai/go-shipsim/pkg/validation"
)

// Profile throttle levels
const (
	IdleThrottle  = 0.4
	ClimbThrottle = 0.7
	FullThrottle  = 1.0
	ClimbDuration = 2.0 // seconds at climb throttle after takeoff
)

// MakeProfile builds a throttle schedule of int(duration/dt) ticks. The
// craft idles before takeoff, climbs for ClimbDuration seconds, then runs at
// full throttle. Durations and steps that are not positive and finite, or
// that would need more than validation.MaxSteps ticks, are rejected.
func MakeProfile(duration, dt, takeoff float64) ([]float64, error) {
	steps, err := validation.StepCount(duration, dt)
	if err != nil {
		return nil, logging.WrapError(err, "make profile")
	}

	profile := make([]float64, steps)
	for i := range profile {
		t := float64(i) * dt
		switch {
		case t < takeoff:
			profile[i] = IdleThrottle
		case t < takeoff+ClimbDuration:
			profile[i] = ClimbThrottle
		default:
			profile[i] = FullThrottle
		}
	}
	return profile, nil
}
