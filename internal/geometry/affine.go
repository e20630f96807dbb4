/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package geometry

import "fmt"

// Affine represents a 2D affine transform as matrix:
// | a c e |
// | b d f |
// | 0 0 1 |
//
// Affine is a value type. Batch transforms build their matrix per call,
// so there is no scratch matrix shared between goroutines.
type Affine struct{ A, B, C, D, E, F float64 }

var Identity = Affine{A: 1, D: 1}

// Mul returns m·n, which applies n first and then m.
func (m Affine) Mul(n Affine) Affine {
	return Affine{
		A: m.A*n.A + m.C*n.B,
		B: m.B*n.A + m.D*n.B,
		C: m.A*n.C + m.C*n.D,
		D: m.B*n.C + m.D*n.D,
		E: m.A*n.E + m.C*n.F + m.E,
		F: m.B*n.E + m.D*n.F + m.F,
	}
}

func (m Affine) Apply(p PointF) PointF {
	return PointF{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// Invert returns the inverse transform. A singular matrix (one that
// collapses the plane onto a line or point) has none.
func (m Affine) Invert() (Affine, error) {
	det := m.A*m.D - m.B*m.C
	if nearlyZero(det) {
		return Identity, fmt.Errorf("%w: singular transform", ErrDegenerateGeometry)
	}
	inv := 1 / det
	return Affine{
		A: m.D * inv,
		B: -m.B * inv,
		C: -m.C * inv,
		D: m.A * inv,
		E: (m.C*m.F - m.D*m.E) * inv,
		F: (m.B*m.E - m.A*m.F) * inv,
	}, nil
}

func Translate(tx, ty float64) Affine { return Affine{A: 1, D: 1, E: tx, F: ty} }
func Scale(sx, sy float64) Affine     { return Affine{A: sx, D: sy} }

// Rotate returns a rotation by deg degrees about the origin.
func Rotate(deg float64) Affine {
	s, c := SinCos(deg)
	return Affine{A: c, B: s, C: -s, D: c}
}

// RotateAbout returns a rotation by deg degrees about center.
func RotateAbout(center PointF, deg float64) Affine {
	return Translate(center.X, center.Y).Mul(Rotate(deg)).Mul(Translate(-center.X, -center.Y))
}

// TransformPoints applies m to every point of pts in place. Integer points
// are rounded per axis.
func TransformPoints[T Number](m Affine, pts []Point[T]) {
	for i, p := range pts {
		pts[i] = fromRotated[T](m.Apply(p.Float()))
	}
}
