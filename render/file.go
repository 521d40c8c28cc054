// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"

	"cogentcore.org/plotstarter"
)

// File is a [plotstarter.Surface] that saves the plot to a file.
// The format is chosen from the file extension by gonum/plot
// (eps, jpg, jpeg, pdf, png, svg, tex, tif, tiff).
type File struct {

	// Filename is the file to write.
	Filename string

	// Title is the plot title, if any.
	Title string

	// Width and Height are the size of the plot in pixels.
	Width, Height int

	lines []plotstarter.Line
}

// NewFile returns a new [File] surface of the given size in pixels.
func NewFile(filename string, width, height int) *File {
	return &File{Filename: filename, Width: width, Height: height}
}

func (f *File) Line(ln plotstarter.Line) {
	f.lines = append(f.lines, ln)
}

// Run saves the plot to the file.
func (f *File) Run() error {
	plt, err := Plot(f.lines, f.Title)
	if err != nil {
		return err
	}
	if err := plt.Save(pixels(f.Width), pixels(f.Height), f.Filename); err != nil {
		return fmt.Errorf("render: saving %q: %w", f.Filename, err)
	}
	return nil
}
