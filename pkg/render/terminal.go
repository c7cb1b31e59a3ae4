package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/opd-ai/go-shipsim/pkg/physics"
)

// Plot symbols
const (
	PathSymbol  = '.'
	StartSymbol = 'o'
	CraftSymbol = '^'
)

// TerminalRenderer draws world positions into an ASCII buffer. Screen rows
// grow downward, so world +Y maps to the top of the buffer.
type TerminalRenderer struct {
	width     int
	height    int
	buffer    [][]rune
	scale     float64
	centerPos physics.Vector2D
}

// NewTerminalRenderer creates a new terminal renderer with the specified
// dimensions and world meters per cell
func NewTerminalRenderer(width, height int, scale float64) *TerminalRenderer {
	width = max(width, 1)
	height = max(height, 1)
	if !(scale > 0) || math.IsInf(scale, 0) {
		scale = 1
	}

	buffer := make([][]rune, height)
	for i := range buffer {
		buffer[i] = make([]rune, width)
	}

	r := &TerminalRenderer{
		width:  width,
		height: height,
		buffer: buffer,
		scale:  scale,
	}
	r.Clear()
	return r
}

// SetCenter sets the world position shown in the middle of the view
func (r *TerminalRenderer) SetCenter(pos physics.Vector2D) {
	r.centerPos = pos
}

// Fit centers the view on the bounding box of positions and picks the
// smallest scale that keeps every one of them on screen.
func (r *TerminalRenderer) Fit(positions []physics.Vector2D) {
	if len(positions) == 0 {
		return
	}

	lo, hi := positions[0], positions[0]
	for _, p := range positions[1:] {
		lo = physics.Vector2D{X: math.Min(lo.X, p.X), Y: math.Min(lo.Y, p.Y)}
		hi = physics.Vector2D{X: math.Max(hi.X, p.X), Y: math.Max(hi.Y, p.Y)}
	}

	r.SetCenter(lo.Add(hi).Scale(0.5))
	scale := 0.0
	if r.width > 1 {
		scale = (hi.X - lo.X) / float64(r.width-1)
	}
	if r.height > 1 {
		scale = math.Max(scale, (hi.Y-lo.Y)/float64(r.height-1))
	}
	if !(scale > 0) || math.IsInf(scale, 0) {
		scale = 1
	}
	r.scale = scale
}

// worldToScreen converts world coordinates to screen coordinates
func (r *TerminalRenderer) worldToScreen(pos physics.Vector2D) (int, int) {
	screenX := math.Round((pos.X-r.centerPos.X)/r.scale + float64(r.width-1)/2)
	screenY := math.Round(float64(r.height-1)/2 - (pos.Y-r.centerPos.Y)/r.scale)
	return int(screenX), int(screenY)
}

// Clear implements Renderer
func (r *TerminalRenderer) Clear() {
	for y := range r.buffer {
		for x := range r.buffer[y] {
			r.buffer[y][x] = ' '
		}
	}
}

// Plot implements Renderer. Positions off screen are dropped.
func (r *TerminalRenderer) Plot(pos physics.Vector2D, symbol rune) {
	if !pos.IsFinite() {
		return
	}
	x, y := r.worldToScreen(pos)
	if x >= 0 && x < r.width && y >= 0 && y < r.height {
		r.buffer[y][x] = symbol
	}
}

// Present implements Renderer. It writes the buffer inside a border.
func (r *TerminalRenderer) Present(w io.Writer) error {
	var b strings.Builder
	border := "+" + strings.Repeat("-", r.width) + "+\n"

	b.WriteString(border)
	for y := range r.buffer {
		b.WriteByte('|')
		b.WriteString(string(r.buffer[y]))
		b.WriteString("|\n")
	}
	b.WriteString(border)
	fmt.Fprintf(&b, "scale: %.2f m/cell, center: (%.1f, %.1f)\n", r.scale, r.centerPos.X, r.centerPos.Y)

	_, err := io.WriteString(w, b.String())
	return err
}
