package component

import "github.com/opd-ai/go-shipsim/pkg/physics"

// Hull is a structural section. StructuralIntegrity is carried for callers
// and ignored by the physics.
type Hull struct {
	Component
	StructuralIntegrity float64
}

// NewHull creates a hull section
func NewHull(c Component, integrity float64) *Hull {
	return &Hull{Component: c.withIdentity(), StructuralIntegrity: integrity}
}

// Kind implements Part
func (h *Hull) Kind() Kind { return KindHull }

// Translated implements Part
func (h *Hull) Translated(offset physics.Vector2D) Part {
	moved := *h
	moved.Component = h.translated(offset)
	return &moved
}

// Cockpit carries crew
type Cockpit struct {
	Component
	CrewCapacity int
}

// NewCockpit creates a cockpit
func NewCockpit(c Component, crew int) *Cockpit {
	return &Cockpit{Component: c.withIdentity(), CrewCapacity: crew}
}

// Kind implements Part
func (c *Cockpit) Kind() Kind { return KindCockpit }

// Translated implements Part
func (c *Cockpit) Translated(offset physics.Vector2D) Part {
	moved := *c
	moved.Component = c.translated(offset)
	return &moved
}
