// Package salvage holds a field of loose parts that can be collected and
// bolted onto a craft.
package salvage

import (
	"errors"
	"fmt"
	"sort"

	"github.com/opd-ai/go-shipsim/pkg/component"
	"github.com/opd-ai/go-shipsim/pkg/craft"
	"github.com/opd-ai/go-shipsim/pkg/physics"
)

// Inventory categories
const (
	Cockpits = "cockpit"
	Hulls    = "hull"
	Tanks    = "tank"
	Engines  = "engine"
	Wings    = "wing"
)

// ErrNotFound is returned when a category or part name is not in the field
var ErrNotFound = errors.New("component not found")

// Field is an inventory of parts grouped by category
type Field struct {
	inventory map[string][]component.Part
}

// NewField creates a field. With no parts it is stocked with the default
// survey craft kit.
func NewField(inventory map[string][]component.Part) *Field {
	if len(inventory) == 0 {
		inventory = defaultInventory()
	}
	return &Field{inventory: inventory}
}

// List returns the part names in each category in inventory order
func (f *Field) List() map[string][]string {
	names := make(map[string][]string, len(f.inventory))
	for category, parts := range f.inventory {
		list := make([]string, 0, len(parts))
		for _, p := range parts {
			list = append(list, p.Base().Name)
		}
		names[category] = list
	}
	return names
}

// Categories returns the category names in sorted order
func (f *Field) Categories() []string {
	categories := make([]string, 0, len(f.inventory))
	for category := range f.inventory {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}

// Take removes the named part from category and returns it
func (f *Field) Take(category, name string) (component.Part, error) {
	parts := f.inventory[category]
	for i, p := range parts {
		if p.Base().Name == name {
			f.inventory[category] = append(parts[:i:i], parts[i+1:]...)
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %q in category %q", ErrNotFound, name, category)
}

type pick struct {
	category string
	name     string
}

var defaultShip = []pick{
	{Cockpits, "Survey Cockpit"},
	{Hulls, "Forward Hull"},
	{Hulls, "Aft Hull"},
	{Tanks, "Primary Tank"},
	{Tanks, "Aux Tank"},
	{Engines, "Twin Thruster"},
	{Engines, "Vernier Thruster"},
	{Wings, "Port Wing"},
	{Wings, "Starboard Wing"},
	{Wings, "Tail Plane"},
}

// SpawnDefaultShip takes the survey craft kit out of the field and
// assembles it. It fails if any part has already been taken.
func (f *Field) SpawnDefaultShip(opts ...craft.Option) (*craft.Spaceship, error) {
	ship := craft.New(opts...)
	for _, want := range defaultShip {
		p, err := f.Take(want.category, want.name)
		if err != nil {
			return nil, fmt.Errorf("spawn default ship: %w", err)
		}
		if err := ship.Attach(p); err != nil {
			return nil, fmt.Errorf("spawn default ship: %w", err)
		}
	}
	return ship, nil
}

func at(x, y float64) physics.Vector2D { return physics.Vector2D{X: x, Y: y} }

func size(w, h float64) component.Size { return component.Size{Width: w, Height: h} }

func defaultInventory() map[string][]component.Part {
	vernier := component.NewEngine(component.New("Vernier Thruster", 80, at(0, -1.5), size(0.5, 0.5), 0.2), 2000, 1.5)
	vernier.Direction = at(0, 1)

	wing := func(name string, mass float64, pos physics.Vector2D, sz component.Size, drag, area, liftCurve, stall float64) *component.Wing {
		w := component.NewWing(component.New(name, mass, pos, sz, drag), area)
		w.LiftCurve = liftCurve
		w.StallAngle = stall
		return w
	}

	return map[string][]component.Part{
		Cockpits: {
			component.NewCockpit(component.New("Survey Cockpit", 900, at(-1.5, 0), size(2.0, 1.8), 1.6), 2),
		},
		Hulls: {
			component.NewHull(component.New("Forward Hull", 500, at(-1.0, 0), size(2.5, 1.5), 1.0), 1.2),
			component.NewHull(component.New("Aft Hull", 400, at(1.0, 0), size(2.5, 1.5), 1.0), 1.2),
		},
		Tanks: {
			component.NewFuelTank(component.New("Primary Tank", 350, at(0, -0.5), size(1.8, 1.2), 0.6), 400, 300),
			component.NewFuelTank(component.New("Aux Tank", 200, at(0.5, -0.5), size(1.5, 1.0), 0.4), 150, 120),
		},
		Engines: {
			component.NewEngine(component.New("Twin Thruster", 220, at(1.8, 0), size(1.0, 0.8), 0.5), 32000, 8),
			vernier,
		},
		Wings: {
			wing("Port Wing", 180, at(-0.5, -2.5), size(2.5, 0.3), 0.4, 8.5, 4.6, 14),
			wing("Starboard Wing", 180, at(-0.5, 2.5), size(2.5, 0.3), 0.4, 8.5, 4.6, 14),
			wing("Tail Plane", 90, at(2.2, 0), size(1.5, 0.2), 0.2, 3.0, 3.5, 12),
		},
	}
}
