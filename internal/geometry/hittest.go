/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package geometry

// Point-in-shape tests. All of them include the boundary unless the
// function says otherwise.

// TriangleContainsPoint reports whether p lies inside the triangle a, b, c.
func TriangleContainsPoint[T Number](a, b, c, p Point[T]) bool {
	return ConvexPolygonContainsPoint([]Point[T]{a, b, c}, p)
}

// QuadrangleContainsPoint reports whether p lies inside the convex
// quadrangle a, b, c, d. The vertices must be given in a consistent
// winding order; a self-intersecting vertex order gives wrong answers.
func QuadrangleContainsPoint[T Number](a, b, c, d, p Point[T]) bool {
	return ConvexPolygonContainsPoint([]Point[T]{a, b, c, d}, p)
}

// ConvexPolygonContainsPoint reports whether p lies inside the convex
// polygon poly: p is inside when it lies on the same side of every edge.
// The vertex order is taken as given; no winding correction happens.
// Polygons with fewer than three vertices contain nothing. A polygon whose
// vertices are all collinear contains only the points of its extent on
// that line.
func ConvexPolygonContainsPoint[T Number](poly []Point[T], p Point[T]) bool {
	if len(poly) < 3 {
		return false
	}
	var pos, neg bool
	for i, a := range poly {
		b := poly[(i+1)%len(poly)]
		switch c := Cross(a, b, p); {
		case c > 0:
			pos = true
		case c < 0:
			neg = true
		}
		if pos && neg {
			return false
		}
	}
	if !pos && !neg {
		b := BoundsOf(poly...)
		return p.X >= b.X && p.Y >= b.Y && p.X <= b.Right() && p.Y <= b.Bottom()
	}
	return true
}

// RectangleContainsPoint reports whether p lies inside r after r has been
// rotated by deg about its center. With inclusive unset, points on the
// boundary are outside.
func RectangleContainsPoint[T Number](r Rect[T], deg float64, p Point[T], inclusive bool) bool {
	if !r.IsValid() {
		return false
	}
	q := toLocal(p.Float(), r.Center(), deg)
	f := r.Float()
	if inclusive {
		return q.X >= f.X && q.Y >= f.Y && q.X <= f.Right() && q.Y <= f.Bottom()
	}
	return q.X > f.X && q.Y > f.Y && q.X < f.Right() && q.Y < f.Bottom()
}

// CircleContainsPoint reports whether p lies within radius+tolerance of
// center.
func CircleContainsPoint[T Number](center Point[T], radius float64, p Point[T], tolerance float64) bool {
	return Distance(center, p) <= radius+tolerance
}

// EllipseContainsPoint reports whether p lies inside the ellipse with the
// given center and axis lengths, rotated by deg about its center.
func EllipseContainsPoint[T Number](center Point[T], width, height T, deg float64, p Point[T]) bool {
	c := center.Float()
	q := toLocal(p.Float(), c, deg)
	rx, ry := float64(width)/2, float64(height)/2
	if rx == 0 || ry == 0 {
		return false
	}
	dx, dy := (q.X-c.X)/rx, (q.Y-c.Y)/ry
	return dx*dx+dy*dy <= 1+Epsilon
}
