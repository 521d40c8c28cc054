// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package viewer shows a plot image in a Cogent Core window.
//
// Importing this package initializes the Cogent Core system driver,
// which exits the process if the window system cannot be initialized.
// It is only meant to be imported by the plotstarter-window command,
// which package window runs as a child process.
package viewer

import (
	"image"

	"cogentcore.org/core/base/iox/imagex"
	"cogentcore.org/core/core"
)

// NewBody returns a new body with the given title showing the given image.
func NewBody(title string, img image.Image) *core.Body {
	b := core.NewBody(title)
	core.NewImage(b).SetImage(img)
	return b
}

// Show opens the given image file in a new window with the given
// title, and blocks until the window is closed.
func Show(filename, title string) error {
	img, _, err := imagex.Open(filename)
	if err != nil {
		return err
	}
	NewBody(title, img).RunMainWindow()
	return nil
}
