/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package geometry

import "fmt"

// Rect is an axis-aligned rectangle defined by its top-left corner and size.
// W and H are never negative except for the InvalidRect sentinel.
type Rect[T Number] struct {
	X, Y T
	W, H T
}

type (
	RectI = Rect[int]
	RectF = Rect[float64]
)

// R builds a rectangle without validation. Use NewRect for untrusted input.
func R[T Number](x, y, w, h T) Rect[T] { return Rect[T]{X: x, Y: y, W: w, H: h} }

var (
	InvalidRectI = InvalidRect[int]()
	InvalidRectF = InvalidRect[float64]()
)

// InvalidRect returns the "no result" rectangle sentinel for T. It is the
// only rectangle allowed to have negative dimensions.
func InvalidRect[T Number]() Rect[T] {
	m := minValue[T]()
	return Rect[T]{X: m, Y: m, W: -1, H: -1}
}

// NewRect builds a rectangle, rejecting negative dimensions unless they
// describe the sentinel.
func NewRect[T Number](x, y, w, h T) (Rect[T], error) {
	r := Rect[T]{X: x, Y: y, W: w, H: h}
	if w == -1 && h == -1 {
		return InvalidRect[T](), nil
	}
	if err := checkRect(r); err != nil {
		return Rect[T]{}, err
	}
	return r, nil
}

func checkRect[T Number](r Rect[T]) error {
	if r == InvalidRect[T]() {
		return nil
	}
	if r.W < 0 || r.H < 0 {
		return fmt.Errorf("%w: rectangle %vx%v has negative dimensions", ErrInvalidArgument, r.W, r.H)
	}
	return nil
}

// IsValid reports whether r is not the Invalid sentinel.
func (r Rect[T]) IsValid() bool { return r != InvalidRect[T]() }

func (r Rect[T]) Left() T   { return r.X }
func (r Rect[T]) Top() T    { return r.Y }
func (r Rect[T]) Right() T  { return r.X + r.W }
func (r Rect[T]) Bottom() T { return r.Y + r.H }

func (r Rect[T]) Min() Point[T] { return Point[T]{r.X, r.Y} }
func (r Rect[T]) Max() Point[T] { return Point[T]{r.X + r.W, r.Y + r.H} }

// Center returns the exact center; integer rectangles may have a
// fractional center.
func (r Rect[T]) Center() PointF {
	return PointF{X: float64(r.X) + float64(r.W)/2, Y: float64(r.Y) + float64(r.H)/2}
}

// Corners returns top-left, top-right, bottom-right and bottom-left, a
// clockwise order on screen (y pointing down).
func (r Rect[T]) Corners() [4]Point[T] {
	return [4]Point[T]{
		{r.X, r.Y},
		{r.X + r.W, r.Y},
		{r.X + r.W, r.Y + r.H},
		{r.X, r.Y + r.H},
	}
}

// Contains reports whether p lies inside r or on its boundary.
func (r Rect[T]) Contains(p Point[T]) bool {
	return p.X >= r.X && p.Y >= r.Y && p.X <= r.X+r.W && p.Y <= r.Y+r.H
}

// Inset returns a rectangle inset by dx,dy on all sides (negative grows).
func (r Rect[T]) Inset(dx, dy T) Rect[T] {
	return Rect[T]{X: r.X + dx, Y: r.Y + dy, W: r.W - 2*dx, H: r.H - 2*dy}
}

// Translate moves r by d.
func (r Rect[T]) Translate(d Point[T]) Rect[T] {
	return Rect[T]{X: r.X + d.X, Y: r.Y + d.Y, W: r.W, H: r.H}
}

// Float converts r to floating-point coordinates.
func (r Rect[T]) Float() RectF {
	if !r.IsValid() {
		return InvalidRectF
	}
	return RectF{X: float64(r.X), Y: float64(r.Y), W: float64(r.W), H: float64(r.H)}
}

// UnionRect returns the minimal rectangle containing both a and b. The
// sentinel acts as the empty rectangle. Other rectangles with negative
// dimensions are rejected.
func UnionRect[T Number](a, b Rect[T]) (Rect[T], error) {
	if err := checkRect(a); err != nil {
		return InvalidRect[T](), err
	}
	if err := checkRect(b); err != nil {
		return InvalidRect[T](), err
	}
	switch {
	case !a.IsValid():
		return b, nil
	case !b.IsValid():
		return a, nil
	}
	minX, minY := min(a.X, b.X), min(a.Y, b.Y)
	maxX, maxY := max(a.Right(), b.Right()), max(a.Bottom(), b.Bottom())
	return Rect[T]{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}, nil
}

// BoundsOf returns the bounding rectangle of pts, or the sentinel for an
// empty set.
func BoundsOf[T Number](pts ...Point[T]) Rect[T] {
	if len(pts) == 0 {
		return InvalidRect[T]()
	}
	lo, hi := pts[0], pts[0]
	for _, p := range pts[1:] {
		lo.X, lo.Y = min(lo.X, p.X), min(lo.Y, p.Y)
		hi.X, hi.Y = max(hi.X, p.X), max(hi.Y, p.Y)
	}
	return Rect[T]{X: lo.X, Y: lo.Y, W: hi.X - lo.X, H: hi.Y - lo.Y}
}
