// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package termplot presents plotstarter charts as text in a terminal.
package termplot

import (
	"fmt"
	"image/color"
	"io"

	"charm.land/lipgloss/v2"
	"cogentcore.org/core/colors"
	"cogentcore.org/plotstarter"
	"github.com/guptarohit/asciigraph"
	"github.com/muesli/termenv"
)

// Surface is a [plotstarter.Surface] that writes the lines as an
// ASCII chart. Only the y values are drawn, one column per point,
// resampled to Width.
type Surface struct {

	// W is where the chart is written.
	W io.Writer

	// Width and Height are the chart size in characters.
	Width, Height int

	// Caption is written above the chart, if set.
	Caption string

	// Color enables ANSI colors for the lines and caption.
	Color bool

	lines []plotstarter.Line
}

// New returns a new [Surface] writing to w, with colors
// enabled if the terminal supports them.
func New(w io.Writer) *Surface {
	return &Surface{W: w, Width: 80, Height: 20, Color: termenv.EnvColorProfile() != termenv.Ascii}
}

func (s *Surface) Line(ln plotstarter.Line) {
	s.lines = append(s.lines, ln)
}

// Run writes the chart. Nothing is written if no line has points.
func (s *Surface) Run() error {
	var series [][]float64
	var sc []asciigraph.AnsiColor
	for _, ln := range s.lines {
		if len(ln.Points) == 0 {
			continue
		}
		ys := make([]float64, len(ln.Points))
		for i, pt := range ln.Points {
			ys[i] = pt.Y
		}
		series = append(series, ys)
		sc = append(sc, ansiColor(ln.Color))
	}
	if len(series) == 0 {
		return nil
	}
	opts := []asciigraph.Option{asciigraph.Width(s.Width), asciigraph.Height(s.Height)}
	if s.Color {
		opts = append(opts, asciigraph.SeriesColors(sc...))
	}
	if s.Caption != "" {
		caption := s.Caption
		if s.Color {
			caption = captionStyle.Render(caption)
		}
		if _, err := fmt.Fprintln(s.W, caption); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(s.W, asciigraph.PlotMany(series, opts...))
	return err
}

var captionStyle = lipgloss.NewStyle().Bold(true).Underline(true)

// palette is the set of terminal colors lines are mapped to.
var palette = []struct {
	rgba color.RGBA
	ansi asciigraph.AnsiColor
}{
	{colors.Black, asciigraph.Black},
	{colors.White, asciigraph.White},
	{colors.Gray, asciigraph.Gray},
	{colors.Red, asciigraph.Red},
	{colors.Green, asciigraph.Green},
	{colors.Blue, asciigraph.Blue},
	{colors.Yellow, asciigraph.Yellow},
	{colors.Orange, asciigraph.Orange},
	{colors.Purple, asciigraph.Purple},
}

// ansiColor returns the palette color closest to c.
// Transparent colors use the terminal default.
func ansiColor(c color.RGBA) asciigraph.AnsiColor {
	if c.A == 0 {
		return asciigraph.Default
	}
	best, bestDist := asciigraph.Default, -1
	for _, p := range palette {
		dr := int(c.R) - int(p.rgba.R)
		dg := int(c.G) - int(p.rgba.G)
		db := int(c.B) - int(p.rgba.B)
		d := dr*dr + dg*dg + db*db
		if bestDist < 0 || d < bestDist {
			best, bestDist = p.ansi, d
		}
	}
	return best
}
