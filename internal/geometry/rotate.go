/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package geometry

// Positive angles rotate clockwise on screen, where y grows downwards.

// RotatePoint rotates p about center by deg degrees.
//
// For integer points each axis is rounded independently after rotating.
// Repeated rotations of integer points therefore drift; callers that
// rotate the same shape many times should keep the original coordinates
// and rotate by the accumulated angle instead.
func RotatePoint[T Number](p, center Point[T], deg float64) Point[T] {
	sin, cos := SinCos(deg)
	return fromRotated[T](rotateSinCos(p.Float(), center.Float(), sin, cos))
}

// RotateLine rotates both endpoints of the line a→b about center.
func RotateLine[T Number](a, b, center Point[T], deg float64) (Point[T], Point[T]) {
	sin, cos := SinCos(deg)
	c := center.Float()
	return fromRotated[T](rotateSinCos(a.Float(), c, sin, cos)),
		fromRotated[T](rotateSinCos(b.Float(), c, sin, cos))
}

// RotateRect rotates the corners of r about center and returns them in
// the order of Rect.Corners.
func RotateRect[T Number](r Rect[T], center PointF, deg float64) [4]Point[T] {
	sin, cos := SinCos(deg)
	corners := r.Corners()
	for i, p := range corners {
		corners[i] = fromRotated[T](rotateSinCos(p.Float(), center, sin, cos))
	}
	return corners
}

// RotatePoints rotates pts about center in place.
func RotatePoints[T Number](pts []Point[T], center Point[T], deg float64) {
	TransformPoints(RotateAbout(center.Float(), deg), pts)
}

// RotatedBounds returns the axis-aligned bounds of r rotated by deg about
// its own center.
func RotatedBounds(r RectF, deg float64) RectF {
	if !r.IsValid() {
		return InvalidRectF
	}
	c := RotateRect(r, r.Center(), deg)
	return BoundsOf(c[:]...)
}

func rotateSinCos(p, center PointF, sin, cos float64) PointF {
	dx, dy := p.X-center.X, p.Y-center.Y
	return PointF{
		X: center.X + dx*cos - dy*sin,
		Y: center.Y + dx*sin + dy*cos,
	}
}

// toLocal maps p into the unrotated frame of a shape rotated by deg
// about center.
func toLocal(p, center PointF, deg float64) PointF {
	if deg == 0 {
		return p
	}
	sin, cos := SinCos(-deg)
	return rotateSinCos(p, center, sin, cos)
}

// fromLocal is the inverse of toLocal. The sentinel passes through.
func fromLocal(p, center PointF, deg float64) PointF {
	if deg == 0 || p == InvalidPointF {
		return p
	}
	sin, cos := SinCos(deg)
	return rotateSinCos(p, center, sin, cos)
}

func fromRotated[T Number](p PointF) Point[T] {
	return Point[T]{X: fromFloat[T](p.X), Y: fromFloat[T](p.Y)}
}

// rotateVector rotates a free vector (no center) by the given sine and
// cosine.
func rotateVector(v PointF, sin, cos float64) PointF {
	return PointF{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos}
}
