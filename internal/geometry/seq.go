/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package geometry

import (
	"iter"
	"math"
)

// first returns the first point of seq, or the sentinel if it is empty.
func first(seq iter.Seq[PointF]) PointF {
	for p := range seq {
		return p
	}
	return InvalidPointF
}

func filter(seq iter.Seq[PointF], keep func(PointF) bool) iter.Seq[PointF] {
	return func(yield func(PointF) bool) {
		for p := range seq {
			if keep(p) && !yield(p) {
				return
			}
		}
	}
}

// quadRoots solves a·u² + b·u + c = 0 for real u. A tangent (double
// root) is reported once. Roots come back in ascending order of |u|, so
// the root nearest the parametrization origin is first.
// Only a zero leading coefficient, from a zero-length direction, is
// degenerate: callers may scale the coefficients down by large radii.
func quadRoots(a, b, c float64) (roots [2]float64, n int) {
	if a == 0 {
		return roots, 0
	}
	disc := b*b - 4*a*c
	switch {
	case disc < -Epsilon*(b*b+math.Abs(4*a*c)):
		return roots, 0
	case disc <= Epsilon*(b*b+math.Abs(4*a*c)):
		roots[0] = -b / (2 * a)
		return roots, 1
	}
	// Avoids cancellation when b is large compared to a·c.
	q := -0.5 * (b + math.Copysign(math.Sqrt(disc), b))
	u1, u2 := q/a, c/q
	if math.Abs(u2) < math.Abs(u1) {
		u1, u2 = u2, u1
	}
	roots[0], roots[1] = u1, u2
	return roots, 2
}

// lineParamSeq yields p1 + u·(p2-p1) for every root u of the quadratic,
// skipping roots outside [0, 1] when isSegment is set.
func lineParamSeq(p1, p2 PointF, isSegment bool, a, b, c float64) iter.Seq[PointF] {
	return func(yield func(PointF) bool) {
		roots, n := quadRoots(a, b, c)
		for _, u := range roots[:n] {
			if isSegment && !inUnitRange(u) {
				continue
			}
			if !yield(Lerp(p1, p2, u)) {
				return
			}
		}
	}
}
