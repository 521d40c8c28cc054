// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plotstarter provides a minimal API to quickly plot line charts.
//
// A [Plotter] collects charts, each created with [NewChart] and configured
// by chaining [Chart.Data] (or [Chart.TimeSeries]) and [Chart.Color].
// The collected charts are then handed to a [Surface] exactly once with
// [Plotter.PresentOn]; the window package presents them in a native window:
//
//	p := plotstarter.New()
//	plotstarter.NewChart(p).
//		TimeSeries(0.1, -10, 10, math.Sin).
//		Color(colors.Red)
//	window.Present(p)
package plotstarter
