package render

import (
	"context"
	"io"

	"github.com/opd-ai/go-shipsim/pkg/logging"
	"github.com/opd-ai/go-shipsim/pkg/physics"
	"github.com/opd-ai/go-shipsim/pkg/sim"
)

// Renderer draws positions on some surface and flushes it to a writer
type Renderer interface {
	Clear()
	Plot(pos physics.Vector2D, symbol rune)
	Present(w io.Writer) error
}

// DrawTrajectory plots the path of a flight timeline, marking its start and
// the final craft position, and presents the result.
func DrawTrajectory(r Renderer, w io.Writer, samples []sim.Sample) error {
	r.Clear()
	if fitter, ok := r.(interface{ Fit([]physics.Vector2D) }); ok {
		positions := make([]physics.Vector2D, 0, len(samples)+1)
		positions = append(positions, physics.Vector2D{})
		for _, s := range samples {
			positions = append(positions, s.Position)
		}
		fitter.Fit(positions)
	}

	r.Plot(physics.Vector2D{}, StartSymbol)
	for i, s := range samples {
		symbol := PathSymbol
		if i == len(samples)-1 {
			symbol = CraftSymbol
		}
		r.Plot(s.Position, symbol)
	}
	return r.Present(w)
}

// NullRenderer logs every call at Debug and draws nothing
type NullRenderer struct {
	logger *logging.Logger
}

// NewNullRenderer creates a NullRenderer logging to logger
func NewNullRenderer(logger *logging.Logger) *NullRenderer {
	if logger == nil {
		logger = logging.Discard()
	}
	return &NullRenderer{logger: logger}
}

// Clear implements Renderer
func (d *NullRenderer) Clear() {
	d.logger.Debug(context.Background(), "Clear called")
}

// Plot implements Renderer
func (d *NullRenderer) Plot(pos physics.Vector2D, symbol rune) {
	d.logger.Debug(context.Background(), "Plot called",
		"x", pos.X,
		"y", pos.Y,
		"symbol", string(symbol),
	)
}

// Present implements Renderer
func (d *NullRenderer) Present(io.Writer) error {
	d.logger.Debug(context.Background(), "Present called")
	return nil
}
