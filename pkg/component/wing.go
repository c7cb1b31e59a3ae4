package component

import "github.com/opd-ai/go-shipsim/pkg/physics"

// Default aerodynamic coefficients for a wing
const (
	DefaultLiftCurve  = 5.0
	DefaultStallAngle = 15.0 // degrees
)

// Wing generates lift in addition to drag
type Wing struct {
	Component
	Area       float64 // lifting area, m^2
	LiftCurve  float64 // lift coefficient per radian
	StallAngle float64 // degrees
}

// NewWing creates a wing with the default lift curve and stall angle
func NewWing(c Component, area float64) *Wing {
	return &Wing{
		Component:  c.withIdentity(),
		Area:       area,
		LiftCurve:  DefaultLiftCurve,
		StallAngle: DefaultStallAngle,
	}
}

// Kind implements Part
func (w *Wing) Kind() Kind { return KindWing }

// Translated implements Part
func (w *Wing) Translated(offset physics.Vector2D) Part {
	moved := *w
	moved.Component = w.translated(offset)
	return &moved
}
