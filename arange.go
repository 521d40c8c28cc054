// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotstarter

import (
	"iter"
	"math"
)

// Arange returns the values start, start+step, start+2*step, ...
// up to and including end. Values are computed as start + i*step,
// so rounding errors do not accumulate. The sequence is empty if step
// is not positive, if start > end, or if any argument is NaN or infinite.
func Arange(start, end, step float64) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		if !(step > 0) || start > end || !finite(start, end, step) {
			return
		}
		for i := 0; ; i++ {
			x := start + float64(i)*step
			if x > end || !yield(x) {
				return
			}
		}
	}
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
