/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package geometry

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertNear(t *testing.T, want, got PointF, msgAndArgs ...any) {
	t.Helper()
	require.True(t, got.IsValid(), msgAndArgs...)
	assert.InDelta(t, want.X, got.X, 1e-6, msgAndArgs...)
	assert.InDelta(t, want.Y, got.Y, 1e-6, msgAndArgs...)
}

func TestLineFormula(t *testing.T) {
	l := LineFormulaFromPoints(Pt(0.0, 0.0), Pt(10.0, 10.0))
	assert.Zero(t, l.Eval(Pt(3.0, 3.0)))
	assert.NotZero(t, l.Eval(Pt(3.0, 4.0)))

	vertical := LineFormulaFromPoints(Pt(5.0, 0.0), Pt(5.0, 1.0))
	assertNear(t, Pt(5.0, 5.0), l.Intersect(vertical))
}

func TestIntersectLines(t *testing.T) {
	assertNear(t, Pt(5.0, 5.0), IntersectLines(Pt(0.0, 0.0), Pt(1.0, 1.0), Pt(0.0, 10.0), Pt(1.0, 9.0)))

	// Parallel lines never meet.
	assert.Equal(t, InvalidPointF, IntersectLines(Pt(0.0, 0.0), Pt(1.0, 0.0), Pt(0.0, 1.0), Pt(1.0, 1.0)))
	assert.False(t, LinesIntersect(Pt(0.0, 0.0), Pt(1.0, 0.0), Pt(0.0, 1.0), Pt(1.0, 1.0)))

	// Coincident lines running the same way are treated as parallel.
	assert.Equal(t, InvalidPointF, IntersectLines(Pt(0.0, 0.0), Pt(10.0, 0.0), Pt(2.0, 0.0), Pt(12.0, 0.0)))

	// Anti-parallel coincident lines share a point.
	p := IntersectLines(Pt(0.0, 0.0), Pt(10.0, 0.0), Pt(10.0, 0.0), Pt(0.0, 0.0))
	require.True(t, p.IsValid())
	assert.Zero(t, p.Y)
}

func TestLinesIntersectIsSymmetric(t *testing.T) {
	tests := []struct {
		name           string
		a1, a2, b1, b2 PointF
		want           bool
	}{
		{"crossing", Pt(0.0, 0.0), Pt(1.0, 1.0), Pt(0.0, 10.0), Pt(1.0, 9.0), true},
		{"parallel", Pt(0.0, 0.0), Pt(1.0, 0.0), Pt(0.0, 1.0), Pt(1.0, 1.0), false},
		{"coincident same direction", Pt(0.0, 0.0), Pt(10.0, 0.0), Pt(2.0, 0.0), Pt(12.0, 0.0), false},
		{"anti-parallel coincident", Pt(0.0, 0.0), Pt(10.0, 0.0), Pt(10.0, 0.0), Pt(0.0, 0.0), true},
		{"anti-parallel apart", Pt(0.0, 0.0), Pt(10.0, 0.0), Pt(10.0, 1.0), Pt(0.0, 1.0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LinesIntersect(tt.a1, tt.a2, tt.b1, tt.b2))
			assert.Equal(t, tt.want, LinesIntersect(tt.b1, tt.b2, tt.a1, tt.a2), "swapped")
		})
	}
}

func TestIntersectSegments(t *testing.T) {
	tests := []struct {
		name           string
		a1, a2, b1, b2 PointF
		want           PointF
	}{
		{"crossing", Pt(0.0, 0.0), Pt(10.0, 10.0), Pt(0.0, 10.0), Pt(10.0, 0.0), Pt(5.0, 5.0)},
		{"touching at end", Pt(0.0, 0.0), Pt(5.0, 5.0), Pt(5.0, 5.0), Pt(10.0, 0.0), Pt(5.0, 5.0)},
		{"lines cross outside segments", Pt(0.0, 0.0), Pt(1.0, 1.0), Pt(0.0, 10.0), Pt(1.0, 9.0), InvalidPointF},
		{"parallel", Pt(0.0, 0.0), Pt(10.0, 0.0), Pt(0.0, 1.0), Pt(10.0, 1.0), InvalidPointF},
		{"anti-parallel overlapping", Pt(0.0, 0.0), Pt(10.0, 0.0), Pt(12.0, 0.0), Pt(2.0, 0.0), Pt(10.0, 0.0)},
		{"anti-parallel disjoint", Pt(0.0, 0.0), Pt(10.0, 0.0), Pt(30.0, 0.0), Pt(20.0, 0.0), InvalidPointF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IntersectSegments(tt.a1, tt.a2, tt.b1, tt.b2)
			if tt.want == InvalidPointF {
				assert.Equal(t, InvalidPointF, got)
			} else {
				assertNear(t, tt.want, got)
			}
			assert.Equal(t, got.IsValid(), SegmentsIntersect(tt.a1, tt.a2, tt.b1, tt.b2))
			// Swapping the operands does not change the verdict.
			assert.Equal(t, SegmentsIntersect(tt.a1, tt.a2, tt.b1, tt.b2), SegmentsIntersect(tt.b1, tt.b2, tt.a1, tt.a2))
		})
	}
}

func TestIntersectLineWithSegment(t *testing.T) {
	assertNear(t, Pt(5.0, 0.0), IntersectLineWithSegment(Pt(5.0, 100.0), Pt(5.0, 99.0), Pt(0.0, 0.0), Pt(10.0, 0.0)))
	assert.False(t, LineIntersectsSegment(Pt(20.0, 100.0), Pt(20.0, 99.0), Pt(0.0, 0.0), Pt(10.0, 0.0)))
}

func TestCircleLineIntersections(t *testing.T) {
	c := Pt(0.0, 0.0)
	pts := slices.Collect(CircleLineIntersections(c, 5, Pt(-10.0, 0.0), Pt(10.0, 0.0), true))
	require.Len(t, pts, 2)
	assertNear(t, Pt(-5.0, 0.0), pts[0], "nearest to p1 comes first")
	assertNear(t, Pt(5.0, 0.0), pts[1])

	assertNear(t, Pt(-5.0, 0.0), IntersectCircleWithLine(c, 5, Pt(-10.0, 0.0), Pt(10.0, 0.0), true))

	// Tangent is reported once.
	pts = slices.Collect(CircleLineIntersections(c, 5, Pt(-10.0, 5.0), Pt(10.0, 5.0), false))
	require.Len(t, pts, 1)
	assertNear(t, Pt(0.0, 5.0), pts[0])

	// Segment entirely inside the circle.
	assert.False(t, CircleIntersectsLine(c, 5, Pt(-1.0, 0.0), Pt(1.0, 0.0), true))
	assert.True(t, CircleIntersectsLine(c, 5, Pt(-1.0, 0.0), Pt(1.0, 0.0), false))
	assert.False(t, CircleIntersectsLine(c, 5, Pt(-10.0, 6.0), Pt(10.0, 6.0), false))
	// Zero-length lines have no direction.
	assert.False(t, CircleIntersectsLine(c, 5, Pt(5.0, 0.0), Pt(5.0, 0.0), false))
}

func TestCircleCircleIntersections(t *testing.T) {
	pts := slices.Collect(CircleCircleIntersections(Pt(0.0, 0.0), 5, Pt(8.0, 0.0), 5))
	require.Len(t, pts, 2)
	slices.SortFunc(pts, func(a, b PointF) int { return int(math.Copysign(1, a.Y-b.Y)) })
	assertNear(t, Pt(4.0, -3.0), pts[0])
	assertNear(t, Pt(4.0, 3.0), pts[1])

	tangent := slices.Collect(CircleCircleIntersections(Pt(0.0, 0.0), 5, Pt(10.0, 0.0), 5))
	require.Len(t, tangent, 1)
	assertNear(t, Pt(5.0, 0.0), tangent[0])

	assert.False(t, CirclesIntersect(Pt(0.0, 0.0), 5, Pt(20.0, 0.0), 5), "apart")
	assert.False(t, CirclesIntersect(Pt(0.0, 0.0), 5, Pt(1.0, 0.0), 1), "nested")
	assert.False(t, CirclesIntersect(Pt(0.0, 0.0), 5, Pt(0.0, 0.0), 3), "concentric")
	assert.True(t, CirclesIntersect(Pt(2.0, 2.0), 5, Pt(2.0, 2.0), 5), "identical")

	// Symmetric in its operands.
	assert.Equal(t,
		CirclesIntersect(Pt(0.0, 0.0), 5, Pt(8.0, 1.0), 4),
		CirclesIntersect(Pt(8.0, 1.0), 4, Pt(0.0, 0.0), 5))
}

func TestCircleRectangle(t *testing.T) {
	c := Pt(0.0, 0.0)
	assert.False(t, CircleIntersectsRectangle(R(10.0, 10.0, 5.0, 5.0), 0, c, 5))
	assert.True(t, CircleIntersectsRectangle(R(-2.0, -2.0, 4.0, 4.0), 0, c, 5))
	assert.True(t, CircleIntersectsRectangle(R(4.0, -1.0, 5.0, 2.0), 0, c, 5))
	assertNear(t, Pt(4.0, 0.0), IntersectCircleWithRectangle(R(4.0, -1.0, 5.0, 2.0), 0, c, 5))
	assert.False(t, CircleIntersectsRectangle(R(4.0, 4.0, 5.0, 5.0), 0, c, 5), "corner region")
	assert.False(t, CircleIntersectsRectangle(InvalidRectF, 0, c, 5))

	// The corner (4,4) is 4√2 from the origin. Rotated by 45 degrees the
	// square turns an edge towards the origin, 5√2-1 away.
	sq := R(4.0, 4.0, 2.0, 2.0)
	assert.True(t, CircleIntersectsRectangle(sq, 0, c, 5.8))
	assert.False(t, CircleIntersectsRectangle(sq, 45, c, 5.8))
}

func TestEllipseLine(t *testing.T) {
	c := Pt(0.0, 0.0)
	pts := slices.Collect(EllipseLineIntersections(c, 10, 4, 0, Pt(-10.0, 0.0), Pt(10.0, 0.0), true))
	require.Len(t, pts, 2)
	assertNear(t, Pt(-5.0, 0.0), pts[0])
	assertNear(t, Pt(5.0, 0.0), pts[1])

	// Rotated upright the long axis is vertical.
	assertNear(t, Pt(0.0, -5.0), IntersectEllipseWithLine(c, 10, 4, 90, Pt(0.0, -10.0), Pt(0.0, 10.0), true))
	assert.False(t, EllipseIntersectsLine(c, 10, 4, 0, Pt(-10.0, 3.0), Pt(10.0, 3.0), false))
	assert.False(t, EllipseIntersectsLine(c, 0, 4, 0, Pt(-10.0, 0.0), Pt(10.0, 0.0), false))
}

func TestEllipseLineLargeRadius(t *testing.T) {
	// A one pixel segment across the outline of a huge ellipse scales the
	// quadratic's leading coefficient far below Epsilon.
	p1, p2 := Pt(99999.5, 0.0), Pt(100000.5, 0.0)
	circle := slices.Collect(CircleLineIntersections(Pt(0.0, 0.0), 1e5, p1, p2, true))
	ellipse := slices.Collect(EllipseLineIntersections(Pt(0.0, 0.0), 2e5, 2e5, 0, p1, p2, true))
	require.Len(t, circle, 1)
	require.Len(t, ellipse, 1)
	assert.InDelta(t, 1e5, ellipse[0].X, 1e-4)
	assert.InDelta(t, circle[0].X, ellipse[0].X, 1e-4)

	// A zero-length segment still has no intersections.
	assert.Empty(t, slices.Collect(EllipseLineIntersections(Pt(0.0, 0.0), 2e5, 2e5, 0, p1, p1, false)))
}

func TestRectangleLine(t *testing.T) {
	r := R(0.0, 0.0, 10.0, 10.0)
	assertNear(t, Pt(0.0, 5.0), IntersectRectangleWithLine(r, 0, Pt(-5.0, 5.0), Pt(15.0, 5.0), true))
	assertNear(t, Pt(2.0, 2.0), IntersectRectangleWithLine(r, 0, Pt(2.0, 2.0), Pt(20.0, 2.0), true), "endpoint inside")
	assert.False(t, RectangleIntersectsLine(r, 0, Pt(-5.0, 20.0), Pt(15.0, 20.0), true))
	assert.False(t, RectangleIntersectsLine(r, 0, Pt(-5.0, 5.0), Pt(-1.0, 5.0), true))
	assert.True(t, RectangleIntersectsLine(r, 0, Pt(-5.0, 5.0), Pt(-1.0, 5.0), false))

	// Rotated by 45 degrees the left corner reaches 5-5√2.
	assertNear(t, Pt(5-5*math.Sqrt2, 5.0), IntersectRectangleWithLine(r, 45, Pt(-5.0, 5.0), Pt(15.0, 5.0), true))
}

func TestIntersectRectangles(t *testing.T) {
	assert.Equal(t, R(5.0, 5.0, 5.0, 5.0), IntersectRectangles(R(0.0, 0.0, 10.0, 10.0), R(5.0, 5.0, 10.0, 10.0)))
	assert.Equal(t, R(10.0, 0.0, 0.0, 10.0), IntersectRectangles(R(0.0, 0.0, 10.0, 10.0), R(10.0, 0.0, 5.0, 10.0)), "touching")
	assert.Equal(t, InvalidRectF, IntersectRectangles(R(0.0, 0.0, 10.0, 10.0), R(11.0, 0.0, 5.0, 10.0)))
	assert.False(t, RectanglesIntersect(InvalidRectF, R(0.0, 0.0, 1.0, 1.0)))
}

func TestRectanglesIntersectIsSymmetric(t *testing.T) {
	base := R(0.0, 0.0, 10.0, 10.0)
	tests := []struct {
		name  string
		other RectF
		want  bool
	}{
		{"overlapping", R(5.0, 5.0, 10.0, 10.0), true},
		{"touching", R(10.0, 0.0, 5.0, 10.0), true},
		{"touching corner", R(10.0, 10.0, 5.0, 5.0), true},
		{"contained", R(2.0, 2.0, 1.0, 1.0), true},
		{"disjoint", R(11.0, 0.0, 5.0, 10.0), false},
		{"invalid", InvalidRectF, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RectanglesIntersect(base, tt.other))
			assert.Equal(t, tt.want, RectanglesIntersect(tt.other, base), "swapped")
			assert.Equal(t, IntersectRectangles(base, tt.other), IntersectRectangles(tt.other, base))
		})
	}
}

func TestPolygonIntersections(t *testing.T) {
	tri := []PointF{{0, 0}, {10, 0}, {0, 10}}

	assertNear(t, Pt(2.5, 2.5), IntersectPolygonWithRectangle(tri, R(2.0, 2.0, 1.0, 1.0), 0), "rectangle inside")
	assert.True(t, PolygonIntersectsRectangle(tri, R(-1.0, 4.0, 2.0, 2.0), 0), "edge crossing")
	assert.False(t, PolygonIntersectsRectangle(tri, R(8.0, 8.0, 2.0, 2.0), 0))
	assert.False(t, PolygonIntersectsRectangle(nil, R(0.0, 0.0, 1.0, 1.0), 0))

	assert.True(t, PolygonIntersectsEllipse(tri, Pt(3.0, 3.0), 2, 2, 0), "ellipse inside polygon")
	assert.True(t, PolygonIntersectsEllipse([]PointF{{-1, -1}, {1, -1}, {0, 1}}, Pt(0.0, 0.0), 40, 40, 0), "polygon inside ellipse")
	assert.True(t, PolygonIntersectsEllipse(tri, Pt(0.0, 5.0), 4, 4, 0), "edge crossing")
	assert.False(t, PolygonIntersectsEllipse(tri, Pt(20.0, 20.0), 4, 4, 0))
}
