// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotstarter

import (
	"fmt"
	"image/color"
	"maps"
	"slices"
)

// Line is one polyline draw instruction given to a [Surface].
type Line struct {
	// ID is the id of the chart the line comes from.
	ID int

	Points []Point

	Color color.RGBA
}

// Surface is where the charts of a [Plotter] are presented,
// such as a window, an image file or a terminal.
type Surface interface {

	// Line adds one line to be drawn.
	Line(ln Line)

	// Run shows the lines added so far. For a window this
	// blocks until the window is closed.
	Run() error
}

// PresentOn hands all charts to the given surface, one [Line] per chart
// in order of chart id, and then runs the surface.
// The plotter can only be presented once; later calls return [ErrPresented].
func (p *Plotter) PresentOn(s Surface) error {
	charts, err := p.take()
	if err != nil {
		return err
	}
	for _, id := range slices.Sorted(maps.Keys(charts)) {
		cd := charts[id]
		s.Line(Line{ID: id, Points: cd.Points, Color: cd.Color})
	}
	if err := s.Run(); err != nil {
		return fmt.Errorf("plotstarter: present: %w", err)
	}
	return nil
}
