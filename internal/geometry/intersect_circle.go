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

// CircleLineIntersections yields the points where the line p1→p2 crosses
// the circle, nearest to p1 first. With isSegment only points between p1
// and p2 are produced. The points are computed when the sequence is
// ranged over.
func CircleLineIntersections(center PointF, radius float64, p1, p2 PointF, isSegment bool) iter.Seq[PointF] {
	// Substituting p1 + u·d into |x - center|² = r² gives a quadratic in u.
	d, f := p2.Sub(p1), p1.Sub(center)
	a := Dot(d, d)
	b := 2 * Dot(f, d)
	c := Dot(f, f) - radius*radius
	return lineParamSeq(p1, p2, isSegment, a, b, c)
}

// IntersectCircleWithLine returns the intersection nearest to p1, or
// InvalidPointF.
func IntersectCircleWithLine(center PointF, radius float64, p1, p2 PointF, isSegment bool) PointF {
	return first(CircleLineIntersections(center, radius, p1, p2, isSegment))
}

func CircleIntersectsLine(center PointF, radius float64, p1, p2 PointF, isSegment bool) bool {
	return IntersectCircleWithLine(center, radius, p1, p2, isSegment) != InvalidPointF
}

// CircleCircleIntersections yields the points where the outlines of two
// circles cross. Subtracting the circle equations leaves the radical axis,
// a line through both intersections, which is then cut with the first
// circle. Identical circles yield a single representative point;
// concentric circles with different radii yield nothing.
func CircleCircleIntersections(c1 PointF, r1 float64, c2 PointF, r2 float64) iter.Seq[PointF] {
	return func(yield func(PointF) bool) {
		// Work relative to c1 to keep the magnitudes small.
		d := c2.Sub(c1)
		if pointsNearlyEqual(d, PointF{}) {
			if nearlyEqualRel(r1, r2) {
				yield(PointF{X: c1.X + r1, Y: c1.Y})
			}
			return
		}
		axis := LineFormula{A: 2 * d.X, B: 2 * d.Y, C: r2*r2 - r1*r1 - Dot(d, d)}
		n := axis.A*axis.A + axis.B*axis.B
		p0 := PointF{X: -axis.A * axis.C / n, Y: -axis.B * axis.C / n}
		p1 := p0.Add(PointF{X: -axis.B, Y: axis.A})
		for p := range CircleLineIntersections(PointF{}, r1, p0, p1, false) {
			if !yield(p.Add(c1)) {
				return
			}
		}
	}
}

// IntersectCircles returns one point shared by both circle outlines, or
// InvalidPointF.
func IntersectCircles(c1 PointF, r1 float64, c2 PointF, r2 float64) PointF {
	return first(CircleCircleIntersections(c1, r1, c2, r2))
}

func CirclesIntersect(c1 PointF, r1 float64, c2 PointF, r2 float64) bool {
	return IntersectCircles(c1, r1, c2, r2) != InvalidPointF
}

// IntersectCircleWithRectangle returns the point of the rectangle area
// nearest to the circle's center if it lies within the circle, which
// proves the two areas overlap, or InvalidPointF. The rectangle is
// rotated by deg about its center.
func IntersectCircleWithRectangle(r RectF, deg float64, center PointF, radius float64) PointF {
	if !r.IsValid() {
		return InvalidPointF
	}
	rc := r.Center()
	return fromLocal(intersectCircleWithAxisRect(r, toLocal(center, rc, deg), radius), rc, deg)
}

func CircleIntersectsRectangle(r RectF, deg float64, center PointF, radius float64) bool {
	return IntersectCircleWithRectangle(r, deg, center, radius) != InvalidPointF
}

func intersectCircleWithAxisRect(r RectF, center PointF, radius float64) PointF {
	// With the center moved to the origin, the rectangle falls into one
	// of nine regions per axis pair: left of, across or right of the
	// center horizontally, and above, across or below vertically. The
	// nearest rectangle point follows from the region.
	left, top := r.X-center.X, r.Y-center.Y
	right, bottom := left+r.W, top+r.H

	var nx, ny float64
	switch {
	case left > 0:
		nx = left
	case right < 0:
		nx = right
	}
	switch {
	case top > 0:
		ny = top
	case bottom < 0:
		ny = bottom
	}
	if math.Hypot(nx, ny) > radius+Epsilon {
		return InvalidPointF
	}
	return PointF{X: center.X + nx, Y: center.Y + ny}
}

// EllipseLineIntersections yields the points where the line p1→p2 crosses
// the outline of the ellipse with the given center and axis lengths,
// rotated by deg about its center. Points nearest to p1 come first.
func EllipseLineIntersections(center PointF, width, height, deg float64, p1, p2 PointF, isSegment bool) iter.Seq[PointF] {
	return func(yield func(PointF) bool) {
		rx, ry := width/2, height/2
		if rx <= 0 || ry <= 0 {
			return
		}
		q1 := toLocal(p1, center, deg).Sub(center)
		q2 := toLocal(p2, center, deg).Sub(center)
		d := q2.Sub(q1)
		rx2, ry2 := rx*rx, ry*ry
		a := d.X*d.X/rx2 + d.Y*d.Y/ry2
		b := 2 * (q1.X*d.X/rx2 + q1.Y*d.Y/ry2)
		c := q1.X*q1.X/rx2 + q1.Y*q1.Y/ry2 - 1
		for p := range lineParamSeq(q1, q2, isSegment, a, b, c) {
			if !yield(fromLocal(p.Add(center), center, deg)) {
				return
			}
		}
	}
}

// IntersectEllipseWithLine returns the intersection nearest to p1, or
// InvalidPointF.
func IntersectEllipseWithLine(center PointF, width, height, deg float64, p1, p2 PointF, isSegment bool) PointF {
	return first(EllipseLineIntersections(center, width, height, deg, p1, p2, isSegment))
}

func EllipseIntersectsLine(center PointF, width, height, deg float64, p1, p2 PointF, isSegment bool) bool {
	return IntersectEllipseWithLine(center, width, height, deg, p1, p2, isSegment) != InvalidPointF
}
