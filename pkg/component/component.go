// pkg/component/component.go
package component

import (
	"github.com/EngoEngine/ecs"

	"github.com/opd-ai/go-shipsim/pkg/physics"
)

// Kind identifies which variant a part is. The set is closed.
type Kind int

const (
	KindGeneric Kind = iota
	KindHull
	KindCockpit
	KindEngine
	KindFuelTank
	KindWing
)

// String returns the lower-case name of the kind
func (k Kind) String() string {
	switch k {
	case KindGeneric:
		return "generic"
	case KindHull:
		return "hull"
	case KindCockpit:
		return "cockpit"
	case KindEngine:
		return "engine"
	case KindFuelTank:
		return "tank"
	case KindWing:
		return "wing"
	default:
		return "unknown"
	}
}

// Size is the bounding rectangle of a part in meters
type Size struct {
	Width  float64
	Height float64
}

// Part is implemented by every attachable component variant. The unexported
// method keeps the set of variants closed to this package.
type Part interface {
	Base() *Component
	Kind() Kind
	Mass() float64
	Inertia() float64
	Translated(offset physics.Vector2D) Part
	part()
}

// Component holds the physical attributes every part shares. Used on its
// own it is a generic hull component with no extra behavior.
type Component struct {
	ecs.BasicEntity
	Name string
	// DryMass excludes any fuel the part carries, in kg
	DryMass  float64
	Position physics.Vector2D // body frame
	Size     Size
	DragArea float64 // m^2
	// InertiaOverride replaces the rectangular plate estimate when set
	InertiaOverride *float64
}

// New creates a generic component with a fresh entity identity
func New(name string, mass float64, position physics.Vector2D, size Size, dragArea float64) Component {
	return Component{
		BasicEntity: ecs.NewBasic(),
		Name:        name,
		DryMass:     mass,
		Position:    position,
		Size:        size,
		DragArea:    dragArea,
	}
}

// WithInertia returns a copy of c that reports inertia instead of the
// plate estimate
func (c Component) WithInertia(inertia float64) Component {
	c.InertiaOverride = &inertia
	return c
}

// withIdentity returns c with a fresh entity id, so every variant built from
// the same Component value is a distinct entity
func (c Component) withIdentity() Component {
	c.BasicEntity = ecs.NewBasic()
	return c
}

// Base returns the shared attributes
func (c *Component) Base() *Component { return c }

// Kind implements Part
func (c *Component) Kind() Kind { return KindGeneric }

// Mass implements Part
func (c *Component) Mass() float64 { return c.DryMass }

// Inertia returns the moment of inertia about the part's own center
func (c *Component) Inertia() float64 {
	return c.inertiaFor(c.DryMass)
}

// Translated returns a copy shifted by offset with a new identity
func (c *Component) Translated(offset physics.Vector2D) Part {
	moved := c.translated(offset)
	return &moved
}

func (c *Component) part() {}

func (c *Component) inertiaFor(mass float64) float64 {
	if c.InertiaOverride != nil {
		return *c.InertiaOverride
	}
	return PlateInertia(mass, c.Size)
}

func (c *Component) translated(offset physics.Vector2D) Component {
	moved := *c
	moved.BasicEntity = ecs.NewBasic()
	moved.Position = c.Position.Add(offset)
	if c.InertiaOverride != nil {
		inertia := *c.InertiaOverride
		moved.InertiaOverride = &inertia
	}
	return moved
}

// PlateInertia approximates a part as a thin rectangular plate rotating
// about its center: m * (w^2 + h^2) / 12
func PlateInertia(mass float64, size Size) float64 {
	return mass * (size.Width*size.Width + size.Height*size.Height) / 12.0
}
