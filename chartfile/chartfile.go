// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chartfile reads chart descriptions from TOML and YAML files
// and adds the described charts to a [plotstarter.Plotter].
package chartfile

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/colors"
	"cogentcore.org/plotstarter"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a chart file.
type Format int32

const (
	// TOML is the format of .toml files.
	TOML Format = iota

	// YAML is the format of .yaml and .yml files.
	YAML
)

// File is a set of charts to plot together.
type File struct {

	// Title is the plot title.
	Title string `toml:"title" yaml:"title"`

	// Width and Height are the plot size in pixels, if set.
	Width  int `toml:"width" yaml:"width"`
	Height int `toml:"height" yaml:"height"`

	// Charts are the charts to plot.
	Charts []Chart `toml:"chart" yaml:"chart"`
}

// Chart describes one chart. If Points is set it is used as the data,
// otherwise if Func is set the data is Offset + Scale*Func(x) for x from
// Start to End in increments of Step, which must be positive.
// A zero Scale is taken as 1. A chart with neither has no data,
// only a color.
type Chart struct {

	// Color is a color name or hex value, as accepted by [colors.FromString].
	// An empty color is transparent.
	Color string `toml:"color" yaml:"color"`

	// Func is the name of the function to plot; see [Funcs].
	Func string `toml:"func" yaml:"func"`

	Start float64 `toml:"start" yaml:"start"`
	End   float64 `toml:"end" yaml:"end"`
	Step  float64 `toml:"step" yaml:"step"`

	Scale  float64 `toml:"scale" yaml:"scale"`
	Offset float64 `toml:"offset" yaml:"offset"`

	// Points are explicit (x, y) data points.
	Points [][2]float64 `toml:"points" yaml:"points"`
}

// Funcs are the functions that can be named in [Chart.Func].
var Funcs = map[string]func(float64) float64{
	"sin":      math.Sin,
	"cos":      math.Cos,
	"tan":      math.Tan,
	"exp":      math.Exp,
	"log":      math.Log,
	"sqrt":     math.Sqrt,
	"abs":      math.Abs,
	"square":   func(x float64) float64 { return x * x },
	"cube":     func(x float64) float64 { return x * x * x },
	"identity": func(x float64) float64 { return x },
}

// FormatOf returns the format for the extension of the given file name.
func FormatOf(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return 0, fmt.Errorf("chartfile: unsupported file type %q", filepath.Ext(filename))
}

// Open reads the chart file with the given name.
func Open(filename string) (*File, error) {
	ft, err := FormatOf(filename)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	f, err := Parse(b, ft)
	if err != nil {
		return nil, fmt.Errorf("chartfile: %s: %w", filename, err)
	}
	return f, nil
}

// Parse decodes a chart file in the given format.
func Parse(b []byte, ft Format) (*File, error) {
	f := &File{}
	var err error
	switch ft {
	case TOML:
		err = toml.Unmarshal(b, f)
	case YAML:
		err = yaml.Unmarshal(b, f)
	default:
		err = fmt.Errorf("unknown format %d", ft)
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

// checked is a validated [Chart].
type checked struct {
	color color.RGBA
	fn    func(float64) float64
	chart *Chart
}

// Apply adds one chart per [Chart] to the given plotter.
// All charts are checked first, so nothing is added if any
// of them has an unknown function, a step that is not positive
// or an invalid color.
func (f *File) Apply(p *plotstarter.Plotter) error {
	charts := make([]checked, len(f.Charts))
	var errs []error
	for i := range f.Charts {
		sp := &f.Charts[i]
		ch := checked{chart: sp, color: colors.Transparent}
		if sp.Color != "" {
			c, err := colors.FromString(sp.Color, colors.Black)
			if err != nil {
				errs = append(errs, fmt.Errorf("chart %d: %w", i, err))
			}
			ch.color = c
		}
		if len(sp.Points) == 0 && sp.Func != "" {
			fn, ok := Funcs[sp.Func]
			if !ok {
				errs = append(errs, fmt.Errorf("chart %d: unknown function %q", i, sp.Func))
			}
			if !(sp.Step > 0) {
				errs = append(errs, fmt.Errorf("chart %d: step must be positive for function %q, got %g", i, sp.Func, sp.Step))
			}
			ch.fn = fn
		}
		charts[i] = ch
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}
	for _, ch := range charts {
		c := plotstarter.NewChart(p).Color(ch.color)
		sp := ch.chart
		if ch.fn == nil {
			if len(sp.Points) == 0 {
				continue
			}
			pts := make([]plotstarter.Point, len(sp.Points))
			for i, xy := range sp.Points {
				pts[i] = plotstarter.Point{X: xy[0], Y: xy[1]}
			}
			c.Data(pts)
			continue
		}
		scale := sp.Scale
		if scale == 0 {
			scale = 1
		}
		c.TimeSeries(sp.Step, sp.Start, sp.End, func(x float64) float64 {
			return sp.Offset + scale*ch.fn(x)
		})
	}
	return nil
}
