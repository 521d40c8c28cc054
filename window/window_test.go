// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package window

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"cogentcore.org/core/base/iox/imagex"
	"cogentcore.org/core/colors"
	"cogentcore.org/plotstarter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPlotter() *plotstarter.Plotter {
	p := plotstarter.New()
	plotstarter.NewChart(p).TimeSeries(0.5, 0, 2, func(x float64) float64 { return x }).Color(colors.Red)
	return p
}

// withDisplay skips the test on systems without display variables,
// and otherwise sets DISPLAY to the given value.
func withDisplay(t *testing.T, display string) {
	if runtime.GOOS != "linux" {
		t.Skip("display variables only apply to X11 and Wayland")
	}
	t.Setenv("DISPLAY", display)
	t.Setenv("WAYLAND_DISPLAY", "")
}

func TestNew(t *testing.T) {
	s := New()
	assert.Equal(t, "plotstarter", s.Title)
	assert.Equal(t, 1280, s.Width)
	assert.Equal(t, 800, s.Height)
	assert.Equal(t, DefaultViewer, s.Viewer)

	s = New(Title("waves"), Size(640, 480), Viewer("show"))
	assert.Equal(t, "waves", s.Title)
	assert.Equal(t, 640, s.Width)
	assert.Equal(t, 480, s.Height)
	assert.Equal(t, "show", s.Viewer)
}

func TestHasDisplay(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("display variables only apply to X11 and Wayland")
	}
	env := map[string]string{}
	getenv := func(k string) string { return env[k] }
	assert.False(t, hasDisplay(getenv))
	env["WAYLAND_DISPLAY"] = "wayland-0"
	assert.True(t, hasDisplay(getenv))
	env = map[string]string{"DISPLAY": ":0"}
	assert.True(t, hasDisplay(getenv))
}

func TestPresentNoDisplay(t *testing.T) {
	withDisplay(t, "")
	p := testPlotter()
	assert.ErrorIs(t, Present(p), ErrNoDisplay)
	assert.ErrorIs(t, Present(p), plotstarter.ErrPresented)
}

func TestPresentViewer(t *testing.T) {
	withDisplay(t, ":0")

	// the viewer copies the plot image so it can be checked
	// after the temporary file is removed
	out := filepath.Join(t.TempDir(), "shown.png")
	viewer := filepath.Join(t.TempDir(), "viewer.sh")
	require.NoError(t, os.WriteFile(viewer, []byte("#!/bin/sh\ncp \"$1\" "+out+"\n[ \"$2\" = waves ]\n"), 0755))

	require.NoError(t, Present(testPlotter(), Title("waves"), Size(640, 480), Viewer(viewer)))

	// the image is drawn once at the configured size
	img, _, err := imagex.Open(out)
	require.NoError(t, err)
	assert.InDelta(t, 640, img.Bounds().Dx(), 1)
	assert.InDelta(t, 480, img.Bounds().Dy(), 1)
}

func TestPresentViewerFails(t *testing.T) {
	withDisplay(t, ":0")
	viewer := filepath.Join(t.TempDir(), "viewer.sh")
	require.NoError(t, os.WriteFile(viewer, []byte("#!/bin/sh\necho 'failed to initialize glfw' >&2\nexit 1\n"), 0755))

	assert.Error(t, Present(testPlotter(), Viewer(viewer)))
	assert.Error(t, Present(testPlotter(), Viewer(filepath.Join(t.TempDir(), "missing"))))
}
