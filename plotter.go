// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotstarter

import (
	"image/color"
	"log/slog"
	"slices"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/colors"
)

// ErrPresented is returned when a [Plotter] is presented more than once.
var ErrPresented = errors.New("plotstarter: plotter has already been presented")

// Point is one (x, y) sample of a chart.
type Point struct {
	X, Y float64
}

// ChartData is the data and color of one chart held by a [Plotter].
type ChartData struct {

	// Points are the line vertices, in order.
	Points []Point

	// Color is the line color. It is [colors.Transparent] unless set.
	Color color.RGBA
}

// Plotter collects charts until they are presented.
// It is not safe for concurrent use.
type Plotter struct {
	lastID    int
	charts    map[int]*ChartData
	presented bool
}

// New returns a new empty [Plotter].
func New() *Plotter {
	return &Plotter{charts: map[int]*ChartData{}}
}

// Len returns the number of charts that have data or a color set.
func (p *Plotter) Len() int {
	return len(p.charts)
}

// nextID returns a new chart id, counting up from zero.
func (p *Plotter) nextID() int {
	id := p.lastID
	p.lastID++
	return id
}

// chart returns the entry for id, creating it with defaults if needed.
// It returns nil once the plotter has been presented.
func (p *Plotter) chart(id int) *ChartData {
	if p.presented {
		slog.Warn("plotstarter: ignoring chart update after Present", "id", id)
		return nil
	}
	cd, ok := p.charts[id]
	if !ok {
		cd = &ChartData{Color: colors.Transparent}
		p.charts[id] = cd
	}
	return cd
}

func (p *Plotter) setData(id int, pts []Point) {
	if cd := p.chart(id); cd != nil {
		cd.Points = slices.Clone(pts)
	}
}

func (p *Plotter) setColor(id int, c color.RGBA) {
	if cd := p.chart(id); cd != nil {
		cd.Color = c
	}
}

// take hands over all charts, leaving the plotter empty and unusable.
func (p *Plotter) take() (map[int]*ChartData, error) {
	if p.presented {
		return nil, ErrPresented
	}
	p.presented = true
	charts := p.charts
	p.charts = nil
	return charts, nil
}
