/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package geometry

// Dot returns the dot product of the vectors a and b.
func Dot[T Number](a, b Point[T]) float64 {
	return float64(a.X)*float64(b.X) + float64(a.Y)*float64(b.Y)
}

// DotAt returns the dot product of the vectors a→b and b→c.
func DotAt[T Number](a, b, c Point[T]) float64 {
	return Dot(b.Sub(a), c.Sub(b))
}

// Cross returns the signed twice-area of the triangle a, b, c. It is
// positive when c lies to the left of a→b in math orientation (y up),
// which is to the right on screen (y down), and zero when the points are
// collinear.
func Cross[T Number](a, b, c Point[T]) float64 {
	return CrossVec(b.Sub(a), c.Sub(a))
}

// CrossVec returns the z component of the cross product of a and b.
func CrossVec[T Number](a, b Point[T]) float64 {
	return float64(a.X)*float64(b.Y) - float64(a.Y)*float64(b.X)
}

// Lerp interpolates linearly between a (t=0) and b (t=1). Integer
// coordinates are rounded to nearest.
func Lerp[T Number](a, b Point[T], t float64) Point[T] {
	return Point[T]{
		X: fromFloat[T](float64(a.X) + (float64(b.X)-float64(a.X))*t),
		Y: fromFloat[T](float64(a.Y) + (float64(b.Y)-float64(a.Y))*t),
	}
}

// Length returns the magnitude of the vector v.
func Length[T Number](v Point[T]) float64 {
	return Distance(Point[T]{}, v)
}
