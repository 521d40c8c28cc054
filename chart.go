// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotstarter

import (
	"image/color"
	"iter"
)

// Chart is a handle to one chart of a [Plotter]. Its methods write into
// the plotter and return the same Chart, so calls can be chained.
// A Chart has no state of its own beyond its id.
type Chart struct {
	id      int
	plotter *Plotter
}

// NewChart adds a new chart to the given plotter.
func NewChart(p *Plotter) *Chart {
	return &Chart{id: p.nextID(), plotter: p}
}

// ID returns the id of the chart within its plotter.
func (ch *Chart) ID() int {
	return ch.id
}

// Data sets the points of the chart, replacing any previous data.
func (ch *Chart) Data(pts []Point) *Chart {
	ch.plotter.setData(ch.id, pts)
	return ch
}

// DataSeq sets the points of the chart from a sequence of (x, y) pairs.
func (ch *Chart) DataSeq(seq iter.Seq2[float64, float64]) *Chart {
	var pts []Point
	for x, y := range seq {
		pts = append(pts, Point{x, y})
	}
	return ch.Data(pts)
}

// XY sets the points of the chart from separate x and y slices.
// Extra values in the longer slice are ignored.
func (ch *Chart) XY(xs, ys []float64) *Chart {
	n := min(len(xs), len(ys))
	pts := make([]Point, n)
	for i := range n {
		pts[i] = Point{xs[i], ys[i]}
	}
	return ch.Data(pts)
}

// TimeSeries sets the points of the chart to (x, f(x)) for
// each x in [Arange] of start, end and step.
func (ch *Chart) TimeSeries(step, start, end float64, f func(x float64) float64) *Chart {
	var pts []Point
	for x := range Arange(start, end, step) {
		pts = append(pts, Point{x, f(x)})
	}
	return ch.Data(pts)
}

// Color sets the line color of the chart.
func (ch *Chart) Color(c color.RGBA) *Chart {
	ch.plotter.setColor(ch.id, c)
	return ch
}
