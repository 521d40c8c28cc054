// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotstarter

import (
	"testing"

	"cogentcore.org/core/colors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder is a Surface that records the lines it is given.
type recorder struct {
	lines []Line
	runs  int
	err   error
}

func (r *recorder) Line(ln Line) { r.lines = append(r.lines, ln) }

func (r *recorder) Run() error {
	r.runs++
	return r.err
}

func TestNewChartIDs(t *testing.T) {
	p := New()
	for i := range 5 {
		assert.Equal(t, i, NewChart(p).ID())
	}
	assert.Equal(t, 0, p.Len(), "charts without data or color are not entries")
}

func TestDataColorOrder(t *testing.T) {
	pts := []Point{{0, 0}, {1, 2}}
	p := New()
	a := NewChart(p).Data(pts).Color(colors.Red)
	b := NewChart(p).Color(colors.Red).Data(pts)
	assert.Equal(t, ChartData{Points: pts, Color: colors.Red}, *p.charts[a.ID()])
	assert.Equal(t, ChartData{Points: pts, Color: colors.Red}, *p.charts[b.ID()])
}

func TestDefaults(t *testing.T) {
	p := New()
	a := NewChart(p).Data([]Point{{1, 1}})
	b := NewChart(p).Color(colors.Blue)
	assert.Equal(t, colors.Transparent, p.charts[a.ID()].Color)
	assert.Empty(t, p.charts[b.ID()].Points)
	assert.Equal(t, 2, p.Len())
}

func TestLastWriteWins(t *testing.T) {
	p := New()
	ch := NewChart(p).Data([]Point{{0, 0}}).Color(colors.Red)
	ch.Data([]Point{{5, 5}, {6, 6}}).Color(colors.Green)
	assert.Equal(t, []Point{{5, 5}, {6, 6}}, p.charts[ch.ID()].Points)
	assert.Equal(t, colors.Green, p.charts[ch.ID()].Color)
	assert.Equal(t, 1, p.Len())
}

func TestDataIsCopied(t *testing.T) {
	pts := []Point{{0, 0}, {1, 1}}
	p := New()
	ch := NewChart(p).Data(pts)
	pts[0] = Point{9, 9}
	assert.Equal(t, Point{0, 0}, p.charts[ch.ID()].Points[0])
}

func TestDataSeqAndXY(t *testing.T) {
	p := New()
	a := NewChart(p).DataSeq(func(yield func(float64, float64) bool) {
		for i := range 3 {
			if !yield(float64(i), float64(i*i)) {
				return
			}
		}
	})
	b := NewChart(p).XY([]float64{0, 1, 2}, []float64{4, 5})
	assert.Equal(t, []Point{{0, 0}, {1, 1}, {2, 4}}, p.charts[a.ID()].Points)
	assert.Equal(t, []Point{{0, 4}, {1, 5}}, p.charts[b.ID()].Points)
}

func TestTimeSeries(t *testing.T) {
	p := New()
	ch := NewChart(p).TimeSeries(0.5, 0, 1, func(x float64) float64 { return 2 * x })
	assert.Equal(t, []Point{{0, 0}, {0.5, 1}, {1, 2}}, p.charts[ch.ID()].Points)
}

func TestPresentOn(t *testing.T) {
	p := New()
	a := []Point{{0, 0}, {1, 1}}
	b := []Point{{0, 1}, {1, 0}}
	NewChart(p).Data(a).Color(colors.Red)
	NewChart(p).Data(b)

	r := &recorder{}
	require.NoError(t, p.PresentOn(r))
	assert.Equal(t, 1, r.runs)
	assert.Equal(t, []Line{
		{ID: 0, Points: a, Color: colors.Red},
		{ID: 1, Points: b, Color: colors.Transparent},
	}, r.lines)
}

func TestPresentOnce(t *testing.T) {
	p := New()
	ch := NewChart(p).Data([]Point{{0, 0}})
	require.NoError(t, p.PresentOn(&recorder{}))

	r := &recorder{}
	assert.ErrorIs(t, p.PresentOn(r), ErrPresented)
	assert.Zero(t, r.runs)
	assert.Empty(t, r.lines)

	// writes after presenting are dropped
	ch.Color(colors.Red)
	NewChart(p).Data([]Point{{1, 1}})
	assert.Equal(t, 0, p.Len())
}

func TestPresentOnError(t *testing.T) {
	p := New()
	r := &recorder{err: assert.AnError}
	err := p.PresentOn(r)
	assert.ErrorIs(t, err, assert.AnError)
	assert.ErrorIs(t, p.PresentOn(r), ErrPresented)
}
