package craft

import (
	"fmt"
	"strings"
)

// Summary renders a human readable report of the craft's derived
// properties and parts
func (s *Spaceship) Summary() string {
	com := s.CenterOfMass()

	var b strings.Builder
	b.WriteString("Spaceship summary:\n")
	fmt.Fprintf(&b, "  Mass: %.1f kg\n", s.Mass())
	fmt.Fprintf(&b, "  Center of mass: (%.2f, %.2f)\n", com.X, com.Y)
	fmt.Fprintf(&b, "  Moment of inertia: %.1f kg*m^2\n", s.MomentOfInertia())
	fmt.Fprintf(&b, "  Drag area: %.2f m^2\n", s.TotalDragArea())

	b.WriteString("  Engines:\n")
	for _, e := range s.engines {
		fmt.Fprintf(&b, "    %s: thrust=%g N, gimbal=%g\n", e.Name, e.Thrust, e.GimbalLimit)
	}
	b.WriteString("  Fuel tanks:\n")
	for _, t := range s.tanks {
		fmt.Fprintf(&b, "    %s: %.1f/%g kg\n", t.Name, t.FuelLevel, t.FuelCapacity)
	}
	b.WriteString("  Wings:\n")
	for _, w := range s.wings {
		fmt.Fprintf(&b, "    %s: area=%g m^2\n", w.Name, w.Area)
	}

	return strings.TrimSuffix(b.String(), "\n")
}
