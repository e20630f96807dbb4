/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package geometry

import (
	"fmt"
	"math"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Number is the set of coordinate types the engine works with. Integer
// instantiations round to nearest wherever a computation produces a
// fractional value.
type Number interface {
	constraints.Signed | constraints.Float
}

// Point is a 2D point or vector.
type Point[T Number] struct{ X, Y T }

type (
	PointI = Point[int]
	PointF = Point[float64]
)

// Pt is shorthand for Point[T]{X: x, Y: y}.
func Pt[T Number](x, y T) Point[T] { return Point[T]{X: x, Y: y} }

// Sentinels for "no result". They sit at the minimum representable
// coordinate so no valid result can collide with them. Compare with ==.
var (
	InvalidPointI = InvalidPoint[int]()
	InvalidPointF = InvalidPoint[float64]()
)

// InvalidPoint returns the "no result" sentinel for T.
func InvalidPoint[T Number]() Point[T] {
	m := minValue[T]()
	return Point[T]{X: m, Y: m}
}

func (p Point[T]) Add(q Point[T]) Point[T] { return Point[T]{X: p.X + q.X, Y: p.Y + q.Y} }
func (p Point[T]) Sub(q Point[T]) Point[T] { return Point[T]{X: p.X - q.X, Y: p.Y - q.Y} }
func (p Point[T]) Neg() Point[T]           { return Point[T]{X: -p.X, Y: -p.Y} }

// Scale multiplies both coordinates by f.
func (p Point[T]) Scale(f float64) Point[T] {
	return Point[T]{X: fromFloat[T](float64(p.X) * f), Y: fromFloat[T](float64(p.Y) * f)}
}

// Float converts p to floating-point coordinates.
func (p Point[T]) Float() PointF { return PointF{X: float64(p.X), Y: float64(p.Y)} }

// IsValid reports whether p is not the Invalid sentinel.
func (p Point[T]) IsValid() bool { return p != InvalidPoint[T]() }

func (p Point[T]) String() string {
	if !p.IsValid() {
		return "(invalid)"
	}
	return fmt.Sprintf("(%v,%v)", p.X, p.Y)
}

// Round converts a floating-point point to integer coordinates, rounding
// each axis to nearest. The sentinel maps to the integer sentinel.
func Round(p PointF) PointI {
	if p == InvalidPointF {
		return InvalidPointI
	}
	return PointI{X: int(math.Round(p.X)), Y: int(math.Round(p.Y))}
}

// PointAs converts p to another coordinate type, rounding when U is an
// integer type.
func PointAs[U, T Number](p Point[T]) Point[U] {
	if !p.IsValid() {
		return InvalidPoint[U]()
	}
	return Point[U]{X: fromFloat[U](float64(p.X)), Y: fromFloat[U](float64(p.Y))}
}

func isInteger[T Number]() bool {
	half := 0.5
	return T(half) == 0
}

// fromFloat converts v to T, rounding to nearest for integer types.
func fromFloat[T Number](v float64) T {
	if isInteger[T]() {
		return T(math.Round(v))
	}
	return T(v)
}

func minValue[T Number]() T {
	var zero T
	switch any(zero).(type) {
	case int:
		i := int64(math.MinInt)
		return T(i)
	case float64:
		f := -math.MaxFloat64
		return T(f)
	}
	var i int64
	switch reflect.TypeOf(zero).Kind() {
	case reflect.Int8:
		i = math.MinInt8
	case reflect.Int16:
		i = math.MinInt16
	case reflect.Int32:
		i = math.MinInt32
	case reflect.Int:
		i = math.MinInt
	case reflect.Int64:
		i = math.MinInt64
	case reflect.Float32:
		f := -math.MaxFloat32
		return T(f)
	default:
		f := -math.MaxFloat64
		return T(f)
	}
	return T(i)
}
