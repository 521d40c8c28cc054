// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render draws plotstarter lines with gonum/plot,
// either to an in-memory image or to a file.
package render

import (
	"fmt"
	"image"
	"log/slog"

	"cogentcore.org/plotstarter"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// dpi is the resolution used to convert pixel sizes to plot lengths.
const dpi = 96

// Plot returns a new plot with one line per given line, in order.
// Lines without points are skipped.
func Plot(lines []plotstarter.Line, title string) (*plot.Plot, error) {
	plt := plot.New()
	plt.Title.Text = title
	for _, ln := range lines {
		if len(ln.Points) == 0 {
			slog.Debug("render: skipping line without points", "id", ln.ID)
			continue
		}
		xys := make(plotter.XYs, len(ln.Points))
		for i, pt := range ln.Points {
			xys[i].X, xys[i].Y = pt.X, pt.Y
		}
		l, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("render: line %d: %w", ln.ID, err)
		}
		l.LineStyle.Color = ln.Color
		plt.Add(l)
	}
	return plt, nil
}

// Image rasterizes the plot to an image of the given size in pixels.
func Image(plt *plot.Plot, width, height int) image.Image {
	c := vgimg.NewWith(vgimg.UseWH(pixels(width), pixels(height)), vgimg.UseDPI(dpi))
	plt.Draw(draw.New(c))
	return c.Image()
}

// pixels returns the plot length of n pixels.
func pixels(n int) vg.Length {
	return vg.Length(n) * vg.Inch / dpi
}
