/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package geometry

// Snapping helpers for pointer tools: grid snapping, snapping to the
// nearest of a set of connection points, and edge/center alignment of a
// dragged rectangle against others.

import (
	"fmt"
	"math"
)

// DefaultSnapThreshold is used when SnapOptions.Threshold is not positive.
const DefaultSnapThreshold = 6.0

// SnapToGrid rounds p to the nearest intersection of a square grid with
// the given spacing anchored at the origin.
func SnapToGrid[T Number](p Point[T], gridSize T) (Point[T], error) {
	if gridSize <= 0 {
		return p, fmt.Errorf("%w: grid size %v must be positive", ErrInvalidArgument, gridSize)
	}
	g := float64(gridSize)
	return Point[T]{
		X: fromFloat[T](math.Round(float64(p.X)/g) * g),
		Y: fromFloat[T](math.Round(float64(p.Y)/g) * g),
	}, nil
}

// SnapToNearest returns the candidate nearest to p if it lies within
// threshold. Otherwise p is returned unchanged with false.
func SnapToNearest[T Number](p Point[T], candidates []Point[T], threshold float64) (Point[T], bool) {
	n := Nearest(p, candidates)
	if n == InvalidPoint[T]() || Distance(p, n) > threshold {
		return p, false
	}
	return n, true
}

// SnapOptions select the features AlignToAnchors aligns.
type SnapOptions struct {
	// Threshold is the largest distance that still snaps.
	Threshold float64
	Edges     bool
	Centers   bool
}

// Anchor is a fixed rectangle to align against. A higher Weight wins
// among candidates at similar distance; use 1 when unsure.
type Anchor struct {
	Rect   RectF
	Weight float64
}

type Orientation uint8

const (
	Vertical Orientation = iota
	Horizontal
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

type GuideKind uint8

const (
	GuideEdge GuideKind = iota
	GuideCenter
)

func (k GuideKind) String() string {
	if k == GuideCenter {
		return "center"
	}
	return "edge"
}

// Guide is an alignment line to show while snapping. Position is the x of
// a vertical guide or the y of a horizontal one; From and To span both
// aligned rectangles.
type Guide struct {
	Orientation Orientation
	Kind        GuideKind
	Position    float64
	From, To    PointF
}

// axisSnap tracks the best candidate offset along one axis.
type axisSnap struct {
	threshold float64
	found     bool
	delta     float64
	score     float64
	guide     Guide
}

func (s *axisSnap) consider(delta, weight float64, g Guide) {
	dist := math.Abs(delta)
	if dist > s.threshold {
		return
	}
	score := dist / max(1, weight)
	if !s.found || score < s.score {
		s.found, s.delta, s.score, s.guide = true, delta, score, g
	}
}

// features returns the near edge, the center and the far edge of a
// rectangle along one axis.
func features(pos, size float64) (lo, mid, hi float64) {
	return pos, pos + size/2, pos + size
}

// AlignToAnchors moves the rectangle so that its edges or center line up
// with those of the nearest anchor within the threshold. Each axis snaps
// on its own. The guides for the applied snaps are returned with the
// moved rectangle.
func AlignToAnchors(moving RectF, anchors []Anchor, opts SnapOptions) (RectF, []Guide) {
	if opts.Threshold <= 0 {
		opts.Threshold = DefaultSnapThreshold
	}
	sx := axisSnap{threshold: opts.Threshold}
	sy := axisSnap{threshold: opts.Threshold}

	mL, mCX, mR := features(moving.X, moving.W)
	mT, mCY, mB := features(moving.Y, moving.H)
	for _, a := range anchors {
		aL, aCX, aR := features(a.Rect.X, a.Rect.W)
		aT, aCY, aB := features(a.Rect.Y, a.Rect.H)
		if opts.Edges {
			// Flush alignment plus abutting on either side.
			for _, c := range [...][2]float64{{mL, aL}, {mR, aR}, {mL, aR}, {mR, aL}} {
				sx.consider(c[0]-c[1], a.Weight, verticalGuide(c[1], moving, a.Rect, GuideEdge))
			}
			for _, c := range [...][2]float64{{mT, aT}, {mB, aB}, {mT, aB}, {mB, aT}} {
				sy.consider(c[0]-c[1], a.Weight, horizontalGuide(c[1], moving, a.Rect, GuideEdge))
			}
		}
		if opts.Centers {
			sx.consider(mCX-aCX, a.Weight, verticalGuide(aCX, moving, a.Rect, GuideCenter))
			sy.consider(mCY-aCY, a.Weight, horizontalGuide(aCY, moving, a.Rect, GuideCenter))
		}
	}

	var guides []Guide
	snapped := moving
	if sx.found {
		snapped.X -= sx.delta
		guides = append(guides, sx.guide)
	}
	if sy.found {
		snapped.Y -= sy.delta
		guides = append(guides, sy.guide)
	}
	return snapped, guides
}

func verticalGuide(x float64, a, b RectF, kind GuideKind) Guide {
	return Guide{
		Orientation: Vertical,
		Kind:        kind,
		Position:    x,
		From:        PointF{X: x, Y: min(a.Y, b.Y)},
		To:          PointF{X: x, Y: max(a.Bottom(), b.Bottom())},
	}
}

func horizontalGuide(y float64, a, b RectF, kind GuideKind) Guide {
	return Guide{
		Orientation: Horizontal,
		Kind:        kind,
		Position:    y,
		From:        PointF{X: min(a.X, b.X), Y: y},
		To:          PointF{X: max(a.Right(), b.Right()), Y: y},
	}
}
