// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command plotstarter plots the line charts described in a TOML or YAML
// chart file in a window, in the terminal or to an image file.
package main

import (
	"context"
	"io"
	"math"
	"os"
	"os/signal"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/cli"
	"cogentcore.org/core/colors"
	"cogentcore.org/plotstarter"
	"cogentcore.org/plotstarter/chartfile"
	"cogentcore.org/plotstarter/render"
	"cogentcore.org/plotstarter/termplot"
	"cogentcore.org/plotstarter/window"
	"github.com/mitchellh/go-homedir"
)

// Config is the configuration information for the plotstarter cli.
type Config struct {

	// Input is the chart file to plot. If it is not set,
	// a demo plot of two sine waves is shown.
	Input string `posarg:"0" required:"-"`

	// Output is an image file to save the plot to instead of
	// showing it. The format is chosen by the file extension.
	Output string `flag:"o,output"`

	// Terminal plots the charts as text on standard output.
	Terminal bool `flag:"t,terminal"`

	// Watch re-plots the Input file in the terminal every time it changes.
	// It implies Terminal, and Output is not used.
	Watch bool `flag:"w,watch"`

	// Title is the plot and window title, unless set in the Input file.
	Title string `default:"plotstarter"`

	// Width is the plot width in pixels, unless set in the Input file.
	Width int `default:"1280"`

	// Height is the plot height in pixels, unless set in the Input file.
	Height int `default:"800"`
}

// stdout is where terminal plots are written.
var stdout io.Writer = os.Stdout

func main() { //types:skip
	opts := cli.DefaultOptions("plotstarter", "Plotstarter plots line charts from TOML and YAML chart files.")
	cli.Run(opts, &Config{}, Show)
}

// Show plots the Input chart file, or the demo if there is none.
func Show(c *Config) error { //cli:cmd -root
	if err := c.expand(); err != nil {
		return err
	}
	if c.Watch {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return c.watch(ctx)
	}
	f := &chartfile.File{}
	p := plotstarter.New()
	if c.Input == "" {
		demo(p)
	} else {
		var err error
		f, err = chartfile.Open(c.Input)
		if err != nil {
			return err
		}
		if err := f.Apply(p); err != nil {
			return err
		}
	}
	return p.PresentOn(c.surface(f))
}

// expand expands a leading ~ in the file names.
func (c *Config) expand() error {
	var err error
	if c.Input, err = homedir.Expand(c.Input); err != nil {
		return err
	}
	c.Output, err = homedir.Expand(c.Output)
	return err
}

// settings returns the title and size to use for the given file.
func (c *Config) settings(f *chartfile.File) (title string, width, height int) {
	title, width, height = c.Title, c.Width, c.Height
	if f.Title != "" {
		title = f.Title
	}
	if f.Width > 0 {
		width = f.Width
	}
	if f.Height > 0 {
		height = f.Height
	}
	return
}

// surface returns the surface selected by the config.
func (c *Config) surface(f *chartfile.File) plotstarter.Surface {
	title, width, height := c.settings(f)
	switch {
	case c.Output != "":
		rf := render.NewFile(c.Output, width, height)
		rf.Title = title
		return rf
	case c.Terminal:
		return c.terminal(f)
	}
	return window.New(window.Title(title), window.Size(width, height))
}

// terminal returns a terminal surface for the given file.
func (c *Config) terminal(f *chartfile.File) *termplot.Surface {
	title, _, _ := c.settings(f)
	ts := termplot.New(stdout)
	ts.Caption = title
	return ts
}

// watch plots the Input file in the terminal each time it changes,
// until ctx is done.
func (c *Config) watch(ctx context.Context) error {
	if c.Input == "" {
		return errors.New("plotstarter: watch needs an input file")
	}
	return chartfile.Watch(ctx, c.Input, func(f *chartfile.File, err error) {
		if errors.Log(err) != nil {
			return
		}
		p := plotstarter.New()
		if errors.Log(f.Apply(p)) != nil {
			return
		}
		errors.Log(p.PresentOn(c.terminal(f)))
	})
}

// demo adds two sine waves to the plotter.
func demo(p *plotstarter.Plotter) {
	plotstarter.NewChart(p).
		TimeSeries(0.1, -10, 10, math.Sin).
		Color(colors.Red)

	plotstarter.NewChart(p).
		DataSeq(func(yield func(x, y float64) bool) {
			for x := range plotstarter.Arange(-10, 10, 0.1) {
				if !yield(x, 3+math.Sin(x)) {
					return
				}
			}
		}).
		Color(colors.Orange)
}
