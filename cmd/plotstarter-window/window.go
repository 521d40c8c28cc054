// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command plotstarter-window shows a plot image in a native window.
// It is run by the plotstarter window package.
package main

import (
	"cogentcore.org/core/cli"
	"cogentcore.org/plotstarter/viewer"
)

// Config is the configuration information for the plotstarter-window cli.
type Config struct {

	// Image is the image file to show.
	Image string `posarg:"0"`

	// Title is the window title.
	Title string `posarg:"1" required:"-" default:"plotstarter"`
}

func main() { //types:skip
	opts := cli.DefaultOptions("plotstarter-window", "Plotstarter-window shows a plot image in a native window.")
	cli.Run(opts, &Config{}, Show)
}

// Show shows the Image in a window until it is closed.
func Show(c *Config) error { //cli:cmd -root
	return viewer.Show(c.Image, c.Title)
}
