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
	"iter"
	"math"
)

// ArcCenterAndRadius reconstructs the circle through start, radiusPoint
// and end by intersecting the perpendicular bisectors of the chords
// start–radiusPoint and end–radiusPoint. Collinear or coincident points
// have no such circle and fail with ErrDegenerateGeometry.
func ArcCenterAndRadius(start, radiusPoint, end PointF) (PointF, float64, error) {
	ls, le := Distance(start, radiusPoint), Distance(end, radiusPoint)
	if nearlyZero(ls) || nearlyZero(le) || pointsNearlyEqual(start, end) {
		return InvalidPointF, 0, fmt.Errorf("%w: arc points %v %v %v coincide", ErrDegenerateGeometry, start, radiusPoint, end)
	}
	if math.Abs(Cross(start, radiusPoint, end)) <= Epsilon*ls*le {
		return InvalidPointF, 0, fmt.Errorf("%w: arc points %v %v %v are collinear", ErrDegenerateGeometry, start, radiusPoint, end)
	}
	m1, n1 := bisector(start, radiusPoint)
	m2, n2 := bisector(end, radiusPoint)
	center := IntersectLines(m1, n1, m2, n2)
	if center == InvalidPointF {
		return InvalidPointF, 0, fmt.Errorf("%w: arc bisectors are parallel", ErrDegenerateGeometry)
	}
	return center, Distance(center, start), nil
}

// bisector returns two points on the perpendicular bisector of a–b.
func bisector(a, b PointF) (PointF, PointF) {
	m := Lerp(a, b, 0.5)
	d := b.Sub(a)
	return m, m.Add(PointF{X: -d.Y, Y: d.X})
}

// Arc is the circular arc from Start to End that passes through
// RadiusPoint. Center and Radius are derived by NewArc.
type Arc struct {
	Start, RadiusPoint, End PointF

	Center PointF
	Radius float64
}

// NewArc builds the arc through the three points.
func NewArc(start, radiusPoint, end PointF) (Arc, error) {
	c, r, err := ArcCenterAndRadius(start, radiusPoint, end)
	if err != nil {
		return Arc{}, err
	}
	return Arc{Start: start, RadiusPoint: radiusPoint, End: end, Center: c, Radius: r}, nil
}

// increasing reports whether the arc runs from Start to End in the
// direction of increasing angle.
func (a Arc) increasing() bool {
	s := AngleOf(a.Center, a.Start)
	span := NormalizeRadians(AngleOf(a.Center, a.End) - s)
	return NormalizeRadians(AngleOf(a.Center, a.RadiusPoint)-s) <= span
}

// containsAngle reports whether the direction ang (radians, [0, 2π))
// from the center falls within the arc's sweep.
func (a Arc) containsAngle(ang float64) bool {
	from, to := AngleOf(a.Center, a.Start), AngleOf(a.Center, a.End)
	if !a.increasing() {
		from, to = to, from
	}
	// Offsets from the sweep start wrap at the 0/2π seam, including the
	// tolerance band just before the start.
	return NormalizeRadians(ang-from+Epsilon) <= NormalizeRadians(to-from)+2*Epsilon
}

// ContainsPoint reports whether p lies on the arc: within tolerance of
// the circle and inside the angular sweep through RadiusPoint.
func (a Arc) ContainsPoint(p PointF, tolerance float64) bool {
	if math.Abs(Distance(a.Center, p)-a.Radius) > tolerance {
		return false
	}
	return a.containsAngle(AngleOf(a.Center, p))
}

// StartAngle returns the direction of Start from the center in degrees,
// in [0, 360).
func (a Arc) StartAngle() float64 { return RadiansToDegrees(AngleOf(a.Center, a.Start)) }

// SweepAngle returns the signed sweep from Start to End in degrees:
// positive in the direction of increasing angle (clockwise on screen).
func (a Arc) SweepAngle() float64 {
	s, e := AngleOf(a.Center, a.Start), AngleOf(a.Center, a.End)
	if a.increasing() {
		return RadiansToDegrees(NormalizeRadians(e - s))
	}
	return -RadiansToDegrees(NormalizeRadians(s - e))
}

// Bounds returns the axis-aligned bounds of the arc: its endpoints plus
// every quadrant extreme of the circle the sweep passes.
func (a Arc) Bounds() RectF {
	pts := []PointF{a.Start, a.End}
	for i := range 4 {
		ang := float64(i) * math.Pi / 2
		if a.containsAngle(ang) {
			s, c := math.Sincos(ang)
			pts = append(pts, PointF{X: a.Center.X + a.Radius*c, Y: a.Center.Y + a.Radius*s})
		}
	}
	return BoundsOf(pts...)
}

// NearestPoint returns the point of the arc nearest to p.
func (a Arc) NearestPoint(p PointF) PointF {
	d := Distance(a.Center, p)
	if !nearlyZero(d) && a.containsAngle(AngleOf(a.Center, p)) {
		return a.Center.Add(p.Sub(a.Center).Scale(a.Radius / d))
	}
	if DistanceSquared(p, a.End) < DistanceSquared(p, a.Start) {
		return a.End
	}
	return a.Start
}

// TangentPoint returns a point of the arc whose tangent passes through p.
// The tangent points are where the arc's circle meets the circle over the
// diameter from the center to p (Thales). When neither lies on the arc
// the endpoint nearer to p is returned. Points inside the circle have no
// tangent and yield InvalidPointF.
func (a Arc) TangentPoint(p PointF) PointF {
	d := Distance(a.Center, p)
	if d < a.Radius-Epsilon {
		return InvalidPointF
	}
	if t := first(filter(a.tangentCandidates(p, d), a.onSweep)); t != InvalidPointF {
		return t
	}
	if DistanceSquared(p, a.End) < DistanceSquared(p, a.Start) {
		return a.End
	}
	return a.Start
}

func (a Arc) tangentCandidates(p PointF, d float64) iter.Seq[PointF] {
	if nearlyEqualRel(d, a.Radius) {
		return func(yield func(PointF) bool) { yield(p) }
	}
	return CircleCircleIntersections(a.Center, a.Radius, Lerp(a.Center, p, 0.5), d/2)
}

func (a Arc) onSweep(p PointF) bool { return a.containsAngle(AngleOf(a.Center, p)) }

// CircleIntersections yields the points where the arc crosses the
// outline of the given circle.
func (a Arc) CircleIntersections(center PointF, radius float64) iter.Seq[PointF] {
	return filter(CircleCircleIntersections(a.Center, a.Radius, center, radius), a.onSweep)
}

// LineIntersections yields the points where the line p1→p2 crosses the
// arc, nearest to p1 first.
func (a Arc) LineIntersections(p1, p2 PointF, isSegment bool) iter.Seq[PointF] {
	return filter(CircleLineIntersections(a.Center, a.Radius, p1, p2, isSegment), a.onSweep)
}

// ArcIntersections yields the points shared by two arcs.
func (a Arc) ArcIntersections(o Arc) iter.Seq[PointF] {
	return filter(a.CircleIntersections(o.Center, o.Radius), o.onSweep)
}

func (a Arc) IntersectsCircle(center PointF, radius float64) bool {
	return first(a.CircleIntersections(center, radius)) != InvalidPointF
}

func (a Arc) IntersectsLine(p1, p2 PointF, isSegment bool) bool {
	return first(a.LineIntersections(p1, p2, isSegment)) != InvalidPointF
}

// IntersectRectangle returns a point of the arc inside or on the
// rectangle r rotated by deg, or InvalidPointF.
func (a Arc) IntersectRectangle(r RectF, deg float64) PointF {
	if !r.IsValid() {
		return InvalidPointF
	}
	for _, p := range [...]PointF{a.Start, a.RadiusPoint, a.End} {
		if RectangleContainsPoint(r, deg, p, true) {
			return p
		}
	}
	// The arc lies on its circle, so a rectangle clear of the circle, or
	// one wholly inside it, cannot touch the arc.
	if !CircleIntersectsRectangle(r, deg, a.Center, a.Radius) {
		return InvalidPointF
	}
	corners := RotateRect(r, r.Center(), deg)
	inside := true
	for _, c := range corners {
		if Distance(a.Center, c) >= a.Radius-Epsilon {
			inside = false
			break
		}
	}
	if inside {
		return InvalidPointF
	}
	for i, e1 := range corners {
		e2 := corners[(i+1)%len(corners)]
		if p := first(a.LineIntersections(e1, e2, true)); p != InvalidPointF {
			return p
		}
	}
	return InvalidPointF
}

func (a Arc) IntersectsRectangle(r RectF, deg float64) bool {
	return a.IntersectRectangle(r, deg) != InvalidPointF
}
