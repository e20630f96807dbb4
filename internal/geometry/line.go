/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package geometry

import "math"

// LineFormula is a line in general form A·x + B·y + C = 0. Unlike
// slope-intercept form it represents vertical lines without special cases.
type LineFormula struct{ A, B, C float64 }

// LineFormulaFromPoints returns the line through p1 and p2.
func LineFormulaFromPoints(p1, p2 PointF) LineFormula {
	a := -(p2.Y - p1.Y)
	b := p2.X - p1.X
	return LineFormula{A: a, B: b, C: -a*p1.X - b*p1.Y}
}

// Eval returns A·x + B·y + C for p: zero on the line, with the sign
// telling the side.
func (l LineFormula) Eval(p PointF) float64 { return l.A*p.X + l.B*p.Y + l.C }

// Intersect solves the two line equations with Cramer's rule. Parallel
// lines have no solution and yield the sentinel.
func (l LineFormula) Intersect(o LineFormula) PointF {
	det := l.A*o.B - o.A*l.B
	if math.Abs(det) <= Epsilon*math.Hypot(l.A, l.B)*math.Hypot(o.A, o.B) {
		return InvalidPointF
	}
	return PointF{
		X: (l.B*o.C - o.B*l.C) / det,
		Y: (o.A*l.C - l.A*o.C) / det,
	}
}

// IntersectLines returns the intersection of the infinite lines a1→a2 and
// b1→b2, or InvalidPointF when they are parallel.
//
// Anti-parallel coincident lines, i.e. lines on top of each other whose
// direction vectors are exact opposites, are deliberately treated as
// intersecting and yield a shared point. Coincident lines running the same
// way do not. Rectangle and polygon tests rely on this when they walk
// edges against segments given in the opposite direction.
func IntersectLines(a1, a2, b1, b2 PointF) PointF {
	return intersectLinear(a1, a2, false, b1, b2, false)
}

// IntersectLineWithSegment returns the intersection of the infinite line
// l1→l2 with the segment s1→s2.
func IntersectLineWithSegment(l1, l2, s1, s2 PointF) PointF {
	return intersectLinear(l1, l2, false, s1, s2, true)
}

// IntersectSegments returns the intersection of the segments a1→a2 and
// b1→b2.
func IntersectSegments(a1, a2, b1, b2 PointF) PointF {
	return intersectLinear(a1, a2, true, b1, b2, true)
}

func LinesIntersect(a1, a2, b1, b2 PointF) bool {
	return IntersectLines(a1, a2, b1, b2) != InvalidPointF
}

func LineIntersectsSegment(l1, l2, s1, s2 PointF) bool {
	return IntersectLineWithSegment(l1, l2, s1, s2) != InvalidPointF
}

func SegmentsIntersect(a1, a2, b1, b2 PointF) bool {
	return IntersectSegments(a1, a2, b1, b2) != InvalidPointF
}

// intersectLinear intersects two lines, each optionally bounded to the
// segment between its points.
func intersectLinear(a1, a2 PointF, aSeg bool, b1, b2 PointF, bSeg bool) PointF {
	la, lb := LineFormulaFromPoints(a1, a2), LineFormulaFromPoints(b1, b2)
	p := la.Intersect(lb)
	if p == InvalidPointF {
		if antiParallelCoincident(a1, a2, b1, b2) {
			return sharedPoint(a1, a2, aSeg, b1, b2, bSeg)
		}
		return InvalidPointF
	}
	if aSeg && !inUnitRange(segmentParam(p, a1, a2)) {
		return InvalidPointF
	}
	if bSeg && !inUnitRange(segmentParam(p, b1, b2)) {
		return InvalidPointF
	}
	return p
}

func antiParallelCoincident(a1, a2, b1, b2 PointF) bool {
	da, db := a2.Sub(a1), b2.Sub(b1)
	if da == (PointF{}) || !pointsNearlyEqual(da, db.Neg()) {
		return false
	}
	d, err := SignedDistancePointLine(b1, a1, a2)
	return err == nil && nearlyZero(d)
}

// sharedPoint picks a point common to two coincident lines, honoring
// segment bounds.
func sharedPoint(a1, a2 PointF, aSeg bool, b1, b2 PointF, bSeg bool) PointF {
	for _, p := range [...]PointF{a1, a2, b1, b2} {
		if aSeg && !inUnitRange(segmentParam(p, a1, a2)) {
			continue
		}
		if bSeg && !inUnitRange(segmentParam(p, b1, b2)) {
			continue
		}
		return p
	}
	return InvalidPointF
}

// segmentParam returns t such that p = s1 + t·(s2-s1) for a point p on
// the line through s1 and s2.
func segmentParam(p, s1, s2 PointF) float64 {
	v := s2.Sub(s1)
	l := Dot(v, v)
	if l == 0 {
		if p == s1 {
			return 0
		}
		return math.NaN()
	}
	return Dot(p.Sub(s1), v) / l
}
