/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package geometry

// IntersectRectangleWithLine returns a point where the line p1→p2 meets
// the area of r, rotated by deg about its center, or InvalidPointF. For a
// segment with an endpoint inside the rectangle that endpoint is returned;
// otherwise it is the outline crossing nearest to p1.
func IntersectRectangleWithLine(r RectF, deg float64, p1, p2 PointF, isSegment bool) PointF {
	if !r.IsValid() {
		return InvalidPointF
	}
	c := r.Center()
	q1, q2 := toLocal(p1, c, deg), toLocal(p2, c, deg)
	return fromLocal(intersectAxisRectWithLine(r, q1, q2, isSegment), c, deg)
}

func RectangleIntersectsLine(r RectF, deg float64, p1, p2 PointF, isSegment bool) bool {
	return IntersectRectangleWithLine(r, deg, p1, p2, isSegment) != InvalidPointF
}

func intersectAxisRectWithLine(r RectF, p1, p2 PointF, isSegment bool) PointF {
	if isSegment {
		switch {
		case p1.X < r.X && p2.X < r.X,
			p1.X > r.Right() && p2.X > r.Right(),
			p1.Y < r.Y && p2.Y < r.Y,
			p1.Y > r.Bottom() && p2.Y > r.Bottom():
			return InvalidPointF
		case r.Contains(p1):
			return p1
		case r.Contains(p2):
			return p2
		}
	}
	corners := r.Corners()
	result, best := InvalidPointF, 0.0
	for i, e1 := range corners {
		e2 := corners[(i+1)%len(corners)]
		p := intersectLinear(p1, p2, isSegment, e1, e2, true)
		if p == InvalidPointF {
			continue
		}
		if d := DistanceSquared(p1, p); result == InvalidPointF || d < best {
			result, best = p, d
		}
	}
	return result
}

// IntersectRectangles returns the overlap of two axis-aligned rectangles,
// or InvalidRectF when they are disjoint. Rectangles that only touch
// overlap in a zero-width or zero-height rectangle.
func IntersectRectangles(a, b RectF) RectF {
	if !a.IsValid() || !b.IsValid() {
		return InvalidRectF
	}
	amin, amax, bmin, bmax := a.Min(), a.Max(), b.Min(), b.Max()
	x0, y0 := max(amin.X, bmin.X), max(amin.Y, bmin.Y)
	x1, y1 := min(amax.X, bmax.X), min(amax.Y, bmax.Y)
	if x1 < x0 || y1 < y0 {
		return InvalidRectF
	}
	return RectF{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

func RectanglesIntersect(a, b RectF) bool {
	return IntersectRectangles(a, b) != InvalidRectF
}

// IntersectPolygonWithRectangle returns a point shared by the convex
// polygon poly and the rectangle r rotated by deg, or InvalidPointF. Edges
// are tested first; a rectangle wholly inside the polygon yields its
// center.
func IntersectPolygonWithRectangle(poly []PointF, r RectF, deg float64) PointF {
	if len(poly) == 0 || !r.IsValid() {
		return InvalidPointF
	}
	for i, a := range poly {
		b := poly[(i+1)%len(poly)]
		if p := IntersectRectangleWithLine(r, deg, a, b, true); p != InvalidPointF {
			return p
		}
	}
	if c := r.Center(); ConvexPolygonContainsPoint(poly, c) {
		return c
	}
	return InvalidPointF
}

func PolygonIntersectsRectangle(poly []PointF, r RectF, deg float64) bool {
	return IntersectPolygonWithRectangle(poly, r, deg) != InvalidPointF
}

// IntersectPolygonWithEllipse returns a point shared by the convex polygon
// poly and the ellipse, or InvalidPointF. Edges are tested against the
// outline first; then a polygon wholly inside the ellipse yields its first
// vertex and an ellipse wholly inside the polygon yields its center.
func IntersectPolygonWithEllipse(poly []PointF, center PointF, width, height, deg float64) PointF {
	if len(poly) == 0 {
		return InvalidPointF
	}
	for i, a := range poly {
		b := poly[(i+1)%len(poly)]
		if p := IntersectEllipseWithLine(center, width, height, deg, a, b, true); p != InvalidPointF {
			return p
		}
	}
	switch {
	case EllipseContainsPoint(center, width, height, deg, poly[0]):
		return poly[0]
	case ConvexPolygonContainsPoint(poly, center):
		return center
	}
	return InvalidPointF
}

func PolygonIntersectsEllipse(poly []PointF, center PointF, width, height, deg float64) bool {
	return IntersectPolygonWithEllipse(poly, center, width, height, deg) != InvalidPointF
}
