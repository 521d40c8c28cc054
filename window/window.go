// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package window presents plotstarter charts in a native Cogent Core window.
//
// The window is opened by a separate viewer process (the plotstarter-window
// command, see package viewer). Cogent Core initializes its system driver
// when package core is imported and exits the process if that fails, so the
// window cannot be opened in-process without making every program that
// links this package fatal on hosts without a window system. Running the
// viewer as a child process turns such failures into errors from [Present].
package window

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/exec"
	"cogentcore.org/plotstarter"
	"cogentcore.org/plotstarter/render"
)

// ErrNoDisplay is returned when there is no display to open a window on.
var ErrNoDisplay = errors.New("window: no display available")

// DefaultViewer is the command run to show the window.
const DefaultViewer = "plotstarter-window"

// Surface is a [plotstarter.Surface] that shows the lines
// in a native window. Use [New] to make one.
//
// The plot is drawn once, as an image of Width by Height pixels;
// it does not follow later changes of the window size.
type Surface struct {

	// Title is the window title.
	Title string

	// Width and Height are the size of the plot in pixels.
	Width, Height int

	// Viewer is the command that opens the window. It is called with
	// the plot image file and the title as arguments, and must block
	// until the window is closed.
	Viewer string

	lines []plotstarter.Line
}

// Option configures a [Surface].
type Option func(s *Surface)

// Title sets the window title.
func Title(title string) Option {
	return func(s *Surface) { s.Title = title }
}

// Size sets the size of the plot in pixels.
func Size(width, height int) Option {
	return func(s *Surface) { s.Width, s.Height = width, height }
}

// Viewer sets the command that opens the window.
func Viewer(cmd string) Option {
	return func(s *Surface) { s.Viewer = cmd }
}

// New returns a new window [Surface] with the given options
// applied on top of the defaults.
func New(opts ...Option) *Surface {
	s := &Surface{Title: "plotstarter", Width: 1280, Height: 800, Viewer: DefaultViewer}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Present shows all charts of the given plotter in a new window,
// blocking until the window is closed. See [plotstarter.Plotter.PresentOn].
func Present(p *plotstarter.Plotter, opts ...Option) error {
	return p.PresentOn(New(opts...))
}

func (s *Surface) Line(ln plotstarter.Line) {
	s.lines = append(s.lines, ln)
}

// Run draws the plot and runs the viewer on it until the window is closed.
// It returns [ErrNoDisplay] if there is no display, and an error if the
// viewer cannot be started or fails, including when its window system
// cannot be initialized.
func (s *Surface) Run() error {
	if !hasDisplay(os.Getenv) {
		return ErrNoDisplay
	}
	dir, err := os.MkdirTemp("", "plotstarter")
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)

	fn := filepath.Join(dir, "plot.png")
	rf := render.NewFile(fn, s.Width, s.Height)
	for _, ln := range s.lines {
		rf.Line(ln)
	}
	if err := rf.Run(); err != nil {
		return err
	}
	if err := exec.Run(s.Viewer, fn, s.Title); err != nil {
		return fmt.Errorf("window: running %s: %w", s.Viewer, err)
	}
	return nil
}

// hasDisplay reports whether a window can be opened, based on
// the display environment variables on X11 and Wayland systems.
func hasDisplay(getenv func(string) string) bool {
	switch runtime.GOOS {
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly":
		return getenv("DISPLAY") != "" || getenv("WAYLAND_DISPLAY") != ""
	}
	return true
}
