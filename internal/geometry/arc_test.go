/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package geometry

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// halfArc runs from (0,0) through (5,5) to (10,0): the lower half (on
// screen) of the circle around (5,0) with radius 5.
func halfArc(t *testing.T) Arc {
	t.Helper()
	a, err := NewArc(Pt(0.0, 0.0), Pt(5.0, 5.0), Pt(10.0, 0.0))
	require.NoError(t, err)
	return a
}

func TestArcCenterAndRadius(t *testing.T) {
	c, r, err := ArcCenterAndRadius(Pt(0.0, 0.0), Pt(5.0, 5.0), Pt(10.0, 0.0))
	require.NoError(t, err)
	assertNear(t, Pt(5.0, 0.0), c)
	assert.InDelta(t, 5, r, 1e-9)

	_, _, err = ArcCenterAndRadius(Pt(0.0, 0.0), Pt(5.0, 0.0), Pt(10.0, 0.0))
	assert.ErrorIs(t, err, ErrDegenerateGeometry, "collinear")
	_, _, err = ArcCenterAndRadius(Pt(0.0, 0.0), Pt(0.0, 0.0), Pt(10.0, 0.0))
	assert.ErrorIs(t, err, ErrDegenerateGeometry, "coincident")
	_, err = NewArc(Pt(1.0, 1.0), Pt(2.0, 2.0), Pt(1.0, 1.0))
	assert.ErrorIs(t, err, ErrDegenerateGeometry, "start equals end")
}

func TestArcContainsPoint(t *testing.T) {
	a := halfArc(t)
	assert.True(t, a.ContainsPoint(Pt(5.0, 5.0), DefaultHitTolerance))
	assert.False(t, a.ContainsPoint(Pt(5.0, -5.0), DefaultHitTolerance), "opposite half of the circle")
	assert.True(t, a.ContainsPoint(Pt(0.0, 0.0), DefaultHitTolerance), "endpoint")
	assert.True(t, a.ContainsPoint(Pt(5.0, 5.3), DefaultHitTolerance), "within tolerance")
	assert.False(t, a.ContainsPoint(Pt(5.0, 6.0), DefaultHitTolerance))

	// The same points in the other order describe the same arc.
	b, err := NewArc(Pt(10.0, 0.0), Pt(5.0, 5.0), Pt(0.0, 0.0))
	require.NoError(t, err)
	assert.True(t, b.ContainsPoint(Pt(5.0, 5.0), DefaultHitTolerance))
	assert.False(t, b.ContainsPoint(Pt(5.0, -5.0), DefaultHitTolerance))
}

func TestArcAcrossSeam(t *testing.T) {
	// Right half of the circle around the origin: sweeps through angle 0.
	a, err := NewArc(Pt(0.0, -5.0), Pt(5.0, 0.0), Pt(0.0, 5.0))
	require.NoError(t, err)
	assert.True(t, a.ContainsPoint(Pt(5.0, 0.0), DefaultHitTolerance))
	assert.True(t, a.ContainsPoint(Pt(3.0, 4.0), DefaultHitTolerance))
	assert.True(t, a.ContainsPoint(Pt(3.0, -4.0), DefaultHitTolerance))
	assert.False(t, a.ContainsPoint(Pt(-5.0, 0.0), DefaultHitTolerance))
	assert.InDelta(t, 180, a.SweepAngle(), 1e-9)

	// Upper half on screen, starting exactly at angle 0: points a hair
	// outside either endpoint stay within the angular tolerance.
	b, err := NewArc(Pt(10.0, 0.0), Pt(0.0, 10.0), Pt(-10.0, 0.0))
	require.NoError(t, err)
	assert.True(t, b.ContainsPoint(Pt(10.0, -1e-12), DefaultHitTolerance), "before the start at the seam")
	assert.True(t, b.ContainsPoint(Pt(-10.0, -1e-12), DefaultHitTolerance), "past the end")
	assert.False(t, b.ContainsPoint(Pt(0.0, -10.0), DefaultHitTolerance))
	assert.False(t, b.ContainsPoint(Pt(10.0, -0.1), 0.5), "beyond the tolerance band")
}

func TestArcAngles(t *testing.T) {
	a := halfArc(t)
	assert.InDelta(t, 180, a.StartAngle(), 1e-9)
	assert.InDelta(t, -180, a.SweepAngle(), 1e-9)

	b := a.Bounds()
	assert.InDelta(t, 0, b.X, 1e-9)
	assert.InDelta(t, 0, b.Y, 1e-9)
	assert.InDelta(t, 10, b.W, 1e-9)
	assert.InDelta(t, 5, b.H, 1e-9)
}

func TestArcNearestPoint(t *testing.T) {
	a := halfArc(t)
	assertNear(t, Pt(5.0, 5.0), a.NearestPoint(Pt(5.0, 20.0)))
	assertNear(t, Pt(10.0, 0.0), a.NearestPoint(Pt(9.0, -20.0)), "outside the sweep snaps to an endpoint")
}

func TestArcTangentPoint(t *testing.T) {
	a := halfArc(t)
	p := Pt(5.0, 10.0)
	tp := a.TangentPoint(p)
	require.True(t, tp.IsValid())
	assert.InDelta(t, a.Radius, Distance(a.Center, tp), 1e-9)
	// The radius is perpendicular to the tangent.
	assert.InDelta(t, 0, Dot(tp.Sub(a.Center), tp.Sub(p)), 1e-9)
	assert.True(t, a.ContainsPoint(tp, 1e-6))

	// Both tangent points lie on the other half: fall back to the nearer
	// endpoint.
	assert.Equal(t, Pt(10.0, 0.0), a.TangentPoint(Pt(6.0, -10.0)))

	// A point on the circle is its own tangent point.
	assertNear(t, Pt(5.0, 5.0), a.TangentPoint(Pt(5.0, 5.0)))

	assert.Equal(t, InvalidPointF, a.TangentPoint(Pt(5.0, 1.0)), "inside the circle")
}

func TestArcIntersections(t *testing.T) {
	a := halfArc(t)

	pts := slices.Collect(a.LineIntersections(Pt(5.0, -10.0), Pt(5.0, 10.0), true))
	require.Len(t, pts, 1)
	assertNear(t, Pt(5.0, 5.0), pts[0])
	assert.False(t, a.IntersectsLine(Pt(-10.0, -3.0), Pt(20.0, -3.0), false))

	assert.True(t, a.IntersectsCircle(Pt(5.0, 8.0), 4))
	assert.False(t, a.IntersectsCircle(Pt(5.0, -8.0), 4))

	other, err := NewArc(Pt(5.0, 0.0), Pt(10.0, 5.0), Pt(15.0, 0.0))
	require.NoError(t, err)
	shared := slices.Collect(a.ArcIntersections(other))
	require.Len(t, shared, 1)
	assertNear(t, Pt(7.5, 5*0.8660254037844386), shared[0])
}

func TestArcIntersectRectangle(t *testing.T) {
	a := halfArc(t)
	assert.Equal(t, Pt(5.0, 5.0), a.IntersectRectangle(R(4.0, 4.0, 2.0, 2.0), 0), "defining point inside")
	assert.False(t, a.IntersectsRectangle(R(4.0, -1.0, 2.0, 2.0), 0), "inside the circle")
	assert.False(t, a.IntersectsRectangle(R(-1.0, -6.0, 12.0, 2.0), 0), "crosses only the other half")
	assert.True(t, a.IntersectsRectangle(R(-1.0, 3.0, 3.0, 1.0), 0), "crosses the arc")
	assert.False(t, a.IntersectsRectangle(R(20.0, 20.0, 2.0, 2.0), 0))
	assert.False(t, a.IntersectsRectangle(InvalidRectF, 0))
}
