// Package render formats flight timelines for the terminal: one telemetry
// line per sample and an ASCII plot of the trajectory.
package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/opd-ai/go-shipsim/pkg/sim"
)

// FormatSample renders one timeline entry as a telemetry line
func FormatSample(s sim.Sample) string {
	return fmt.Sprintf("t=%4.1fs | alt=%6.1f m | speed=%6.1f m/s | pitch=%6.1f°",
		s.Time, s.Altitude, s.Speed, s.Orientation)
}

// WriteTimeline writes one telemetry line per sample
func WriteTimeline(w io.Writer, samples []sim.Sample) error {
	bw := bufio.NewWriter(w)
	for _, s := range samples {
		if _, err := fmt.Fprintln(bw, FormatSample(s)); err != nil {
			return err
		}
	}
	return bw.Flush()
}
