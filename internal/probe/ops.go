/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package probe

import (
	"fmt"
	"iter"
	"math"
	"slices"

	"godiagram/internal/geometry"
)

type opFunc func(q Query, o Options) (any, error)

// Ops lists the supported operation names in a stable order.
func Ops() []string {
	names := make([]string, 0, len(ops))
	for name := range ops {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

var ops = map[string]opFunc{
	"dot":                    opDot,
	"cross":                  opCross,
	"lerp":                   opLerp,
	"rotate":                 opRotate,
	"angle_convert":          opAngleConvert,
	"distance":               opDistance,
	"point_line_distance":    opPointLineDistance,
	"nearest":                opNearest,
	"furthest":               opFurthest,
	"contains_triangle":      opContainsTriangle,
	"contains_quad":          opContainsQuad,
	"contains_rect":          opContainsRect,
	"contains_circle":        opContainsCircle,
	"contains_ellipse":       opContainsEllipse,
	"contains_polygon":       opContainsPolygon,
	"intersect_lines":        opIntersectLines,
	"intersect_segments":     opIntersectSegments,
	"intersect_circle_line":  opIntersectCircleLine,
	"intersect_circles":      opIntersectCircles,
	"intersect_circle_rect":  opIntersectCircleRect,
	"intersect_rect_line":    opIntersectRectLine,
	"intersect_ellipse_line": opIntersectEllipseLine,
	"intersect_rects":        opIntersectRects,
	"arc":                    opArc,
	"arc_contains":           opArcContains,
	"arc_tangent":            opArcTangent,
	"arc_intersect_line":     opArcIntersectLine,
	"resize":                 opResize,
	"move_arrow":             opMoveArrow,
	"snap_grid":              opSnapGrid,
	"snap_nearest":           opSnapNearest,
	"align":                  opAlign,
}

func badQuery(q Query, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrBadQuery, q.Op, fmt.Sprintf(format, args...))
}

// points converts the query points, requiring exactly n of them (at least
// n when atLeast is set).
func points(q Query, n int, atLeast bool) ([]geometry.PointF, error) {
	if len(q.Points) < n || (!atLeast && len(q.Points) != n) {
		qual := "exactly"
		if atLeast {
			qual = "at least"
		}
		return nil, badQuery(q, "needs %s %d points, got %d", qual, n, len(q.Points))
	}
	out := make([]geometry.PointF, len(q.Points))
	for i, v := range q.Points {
		out[i] = v.F()
	}
	return out, nil
}

func center(q Query) (geometry.PointF, error) {
	if q.Center == nil {
		return geometry.PointF{}, badQuery(q, "missing center")
	}
	return q.Center.F(), nil
}

func size(q Query) (w, h float64, err error) {
	if q.Size == nil {
		return 0, 0, badQuery(q, "missing size")
	}
	return q.Size[0], q.Size[1], nil
}

func box(q Query) (geometry.RectF, float64, error) {
	if q.Rect == nil {
		return geometry.InvalidRectF, 0, badQuery(q, "missing rect")
	}
	return q.Rect.Rect(), q.Rect.Angle, nil
}

func tolerance(q Query, o Options) float64 {
	if q.Tolerance != nil {
		return *q.Tolerance
	}
	return o.HitTolerance
}

// hits collects an intersection sequence; no intersection is an empty list.
func hits(seq iter.Seq[geometry.PointF]) []geometry.PointF {
	out := slices.Collect(seq)
	if out == nil {
		out = []geometry.PointF{}
	}
	return out
}

// single turns a sentinel-or-point answer into a list of zero or one point.
func single(p geometry.PointF) []geometry.PointF {
	if !p.IsValid() {
		return []geometry.PointF{}
	}
	return []geometry.PointF{p}
}

func opDot(q Query, _ Options) (any, error) {
	p, err := points(q, 2, false)
	if err != nil {
		return nil, err
	}
	return geometry.Dot(p[0], p[1]), nil
}

func opCross(q Query, _ Options) (any, error) {
	p, err := points(q, 3, false)
	if err != nil {
		return nil, err
	}
	return geometry.Cross(p[0], p[1], p[2]), nil
}

func opLerp(q Query, _ Options) (any, error) {
	p, err := points(q, 2, false)
	if err != nil {
		return nil, err
	}
	return geometry.Lerp(p[0], p[1], q.T), nil
}

func opRotate(q Query, _ Options) (any, error) {
	p, err := points(q, 1, true)
	if err != nil {
		return nil, err
	}
	c, err := center(q)
	if err != nil {
		return nil, err
	}
	geometry.RotatePoints(p, c, q.Angle)
	return p, nil
}

func toDegrees(v float64, unit string) (float64, bool) {
	switch unit {
	case "", "deg":
		return v, true
	case "rad":
		return geometry.RadiansToDegrees(v), true
	case "tenths":
		return geometry.TenthsToDegrees(int(math.Round(v))), true
	}
	return 0, false
}

func fromDegrees(deg float64, unit string) (float64, bool) {
	switch unit {
	case "", "deg":
		return deg, true
	case "rad":
		return geometry.DegreesToRadians(deg), true
	case "tenths":
		return float64(geometry.DegreesToTenths(deg)), true
	}
	return 0, false
}

func opAngleConvert(q Query, _ Options) (any, error) {
	deg, ok := toDegrees(q.Value, q.From)
	if !ok {
		return nil, badQuery(q, "unknown unit %q", q.From)
	}
	v, ok := fromDegrees(deg, q.To)
	if !ok {
		return nil, badQuery(q, "unknown unit %q", q.To)
	}
	return v, nil
}

func opDistance(q Query, _ Options) (any, error) {
	p, err := points(q, 2, false)
	if err != nil {
		return nil, err
	}
	return geometry.Distance(p[0], p[1]), nil
}

func opPointLineDistance(q Query, _ Options) (any, error) {
	p, err := points(q, 3, false)
	if err != nil {
		return nil, err
	}
	return geometry.DistancePointLine(p[0], p[1], p[2], q.Segment)
}

func opNearest(q Query, _ Options) (any, error) {
	p, err := points(q, 2, true)
	if err != nil {
		return nil, err
	}
	return geometry.Nearest(p[0], p[1:]), nil
}

func opFurthest(q Query, _ Options) (any, error) {
	p, err := points(q, 2, true)
	if err != nil {
		return nil, err
	}
	return geometry.Furthest(p[0], p[1:]), nil
}

func opContainsTriangle(q Query, _ Options) (any, error) {
	p, err := points(q, 4, false)
	if err != nil {
		return nil, err
	}
	return geometry.TriangleContainsPoint(p[0], p[1], p[2], p[3]), nil
}

func opContainsQuad(q Query, _ Options) (any, error) {
	p, err := points(q, 5, false)
	if err != nil {
		return nil, err
	}
	return geometry.QuadrangleContainsPoint(p[0], p[1], p[2], p[3], p[4]), nil
}

func opContainsRect(q Query, _ Options) (any, error) {
	r, deg, err := box(q)
	if err != nil {
		return nil, err
	}
	p, err := points(q, 1, false)
	if err != nil {
		return nil, err
	}
	return geometry.RectangleContainsPoint(r, deg, p[0], q.Inclusive), nil
}

func opContainsCircle(q Query, o Options) (any, error) {
	c, err := center(q)
	if err != nil {
		return nil, err
	}
	p, err := points(q, 1, false)
	if err != nil {
		return nil, err
	}
	return geometry.CircleContainsPoint(c, q.Radius, p[0], tolerance(q, o)), nil
}

func opContainsEllipse(q Query, _ Options) (any, error) {
	c, err := center(q)
	if err != nil {
		return nil, err
	}
	w, h, err := size(q)
	if err != nil {
		return nil, err
	}
	p, err := points(q, 1, false)
	if err != nil {
		return nil, err
	}
	return geometry.EllipseContainsPoint(c, w, h, q.Angle, p[0]), nil
}

// contains_polygon takes the polygon vertices followed by the probe point.
func opContainsPolygon(q Query, _ Options) (any, error) {
	p, err := points(q, 4, true)
	if err != nil {
		return nil, err
	}
	n := len(p) - 1
	return geometry.ConvexPolygonContainsPoint(p[:n], p[n]), nil
}

func opIntersectLines(q Query, _ Options) (any, error) {
	p, err := points(q, 4, false)
	if err != nil {
		return nil, err
	}
	return single(geometry.IntersectLines(p[0], p[1], p[2], p[3])), nil
}

func opIntersectSegments(q Query, _ Options) (any, error) {
	p, err := points(q, 4, false)
	if err != nil {
		return nil, err
	}
	return single(geometry.IntersectSegments(p[0], p[1], p[2], p[3])), nil
}

func opIntersectCircleLine(q Query, _ Options) (any, error) {
	c, err := center(q)
	if err != nil {
		return nil, err
	}
	p, err := points(q, 2, false)
	if err != nil {
		return nil, err
	}
	return hits(geometry.CircleLineIntersections(c, q.Radius, p[0], p[1], q.Segment)), nil
}

func opIntersectCircles(q Query, _ Options) (any, error) {
	if len(q.Circles) != 2 {
		return nil, badQuery(q, "needs exactly 2 circles, got %d", len(q.Circles))
	}
	a, b := q.Circles[0], q.Circles[1]
	return hits(geometry.CircleCircleIntersections(a.Center.F(), a.Radius, b.Center.F(), b.Radius)), nil
}

func opIntersectCircleRect(q Query, _ Options) (any, error) {
	r, deg, err := box(q)
	if err != nil {
		return nil, err
	}
	c, err := center(q)
	if err != nil {
		return nil, err
	}
	return single(geometry.IntersectCircleWithRectangle(r, deg, c, q.Radius)), nil
}

func opIntersectRectLine(q Query, _ Options) (any, error) {
	r, deg, err := box(q)
	if err != nil {
		return nil, err
	}
	p, err := points(q, 2, false)
	if err != nil {
		return nil, err
	}
	return single(geometry.IntersectRectangleWithLine(r, deg, p[0], p[1], q.Segment)), nil
}

func opIntersectEllipseLine(q Query, _ Options) (any, error) {
	c, err := center(q)
	if err != nil {
		return nil, err
	}
	w, h, err := size(q)
	if err != nil {
		return nil, err
	}
	p, err := points(q, 2, false)
	if err != nil {
		return nil, err
	}
	return hits(geometry.EllipseLineIntersections(c, w, h, q.Angle, p[0], p[1], q.Segment)), nil
}

func opIntersectRects(q Query, _ Options) (any, error) {
	if len(q.Rects) != 2 {
		return nil, badQuery(q, "needs exactly 2 rects, got %d", len(q.Rects))
	}
	r := geometry.IntersectRectangles(q.Rects[0].Rect(), q.Rects[1].Rect())
	if !r.IsValid() {
		return []geometry.RectF{}, nil
	}
	return []geometry.RectF{r}, nil
}

type arcInfo struct {
	Center     geometry.PointF `yaml:"center"`
	Radius     float64         `yaml:"radius"`
	StartAngle float64         `yaml:"start_angle"`
	SweepAngle float64         `yaml:"sweep_angle"`
	Bounds     geometry.RectF  `yaml:"bounds"`
}

// arc reads the start, radius point and end of an arc from the first three
// points and returns the remaining ones.
func arc(q Query, rest int) (geometry.Arc, []geometry.PointF, error) {
	p, err := points(q, 3+rest, false)
	if err != nil {
		return geometry.Arc{}, nil, err
	}
	a, err := geometry.NewArc(p[0], p[1], p[2])
	if err != nil {
		return geometry.Arc{}, nil, err
	}
	return a, p[3:], nil
}

func opArc(q Query, _ Options) (any, error) {
	a, _, err := arc(q, 0)
	if err != nil {
		return nil, err
	}
	return arcInfo{Center: a.Center, Radius: a.Radius, StartAngle: a.StartAngle(), SweepAngle: a.SweepAngle(), Bounds: a.Bounds()}, nil
}

func opArcContains(q Query, o Options) (any, error) {
	a, p, err := arc(q, 1)
	if err != nil {
		return nil, err
	}
	return a.ContainsPoint(p[0], tolerance(q, o)), nil
}

func opArcTangent(q Query, _ Options) (any, error) {
	a, p, err := arc(q, 1)
	if err != nil {
		return nil, err
	}
	return single(a.TangentPoint(p[0])), nil
}

func opArcIntersectLine(q Query, _ Options) (any, error) {
	a, p, err := arc(q, 2)
	if err != nil {
		return nil, err
	}
	return hits(a.LineIntersections(p[0], p[1], q.Segment)), nil
}

var edgeNames = map[string]geometry.Edges{
	"top":    geometry.EdgeTop,
	"bottom": geometry.EdgeBottom,
	"left":   geometry.EdgeLeft,
	"right":  geometry.EdgeRight,
}

type resizeOut struct {
	Width        int             `yaml:"width"`
	Height       int             `yaml:"height"`
	CenterOffset geometry.PointI `yaml:"center_offset"`
	Clamped      bool            `yaml:"clamped"`
}

func opResize(q Query, o Options) (any, error) {
	s := q.Resize
	if s == nil {
		return nil, badQuery(q, "missing resize")
	}
	var edges geometry.Edges
	for _, name := range s.Edges {
		e, ok := edgeNames[name]
		if !ok {
			return nil, badQuery(q, "unknown edge %q", name)
		}
		edges |= e
	}
	var mods geometry.ResizeModifiers
	if s.MaintainAspect {
		mods |= geometry.MaintainAspect
	}
	if s.Mirrored {
		mods |= geometry.MirroredResize
	}
	p := geometry.ResizeParams{
		Width:     s.Width,
		Height:    s.Height,
		MinWidth:  o.MinWidth,
		MinHeight: o.MinHeight,
		Modifiers: mods,
	}
	if s.MinWidth > 0 {
		p.MinWidth = s.MinWidth
	}
	if s.MinHeight > 0 {
		p.MinHeight = s.MinHeight
	}
	p.Sin, p.Cos = geometry.SinCos(s.Angle)
	res, ok := geometry.ResizeEdges(p, s.Delta.I(), edges)
	return resizeOut{Width: res.Width, Height: res.Height, CenterOffset: res.CenterOffset, Clamped: !ok}, nil
}

type arrowOut struct {
	Head         geometry.PointI `yaml:"head"`
	Length       int             `yaml:"length"`
	Angle        float64         `yaml:"angle"`
	CenterOffset geometry.PointI `yaml:"center_offset"`
	Clamped      bool            `yaml:"clamped"`
}

func opMoveArrow(q Query, _ Options) (any, error) {
	s := q.Arrow
	if s == nil {
		return nil, badQuery(q, "missing arrow")
	}
	res, ok := geometry.MoveArrowHead(geometry.ArrowParams{Tail: s.Tail.I(), Head: s.Head.I(), MinLength: s.MinLength}, s.NewHead.I())
	return arrowOut{Head: res.Head, Length: res.Length, Angle: res.Angle, CenterOffset: res.CenterOffset, Clamped: !ok}, nil
}

func opSnapGrid(q Query, o Options) (any, error) {
	p, err := points(q, 1, false)
	if err != nil {
		return nil, err
	}
	grid := q.Grid
	if grid == 0 {
		grid = o.GridSize
	}
	return geometry.SnapToGrid(p[0], grid)
}

func threshold(q Query, o Options) float64 {
	if q.Threshold != nil {
		return *q.Threshold
	}
	return o.SnapThreshold
}

type snapOut struct {
	Point   geometry.PointF `yaml:"point"`
	Snapped bool            `yaml:"snapped"`
}

// snap_nearest takes the point to snap followed by the candidates.
func opSnapNearest(q Query, o Options) (any, error) {
	p, err := points(q, 2, true)
	if err != nil {
		return nil, err
	}
	got, ok := geometry.SnapToNearest(p[0], p[1:], threshold(q, o))
	return snapOut{Point: got, Snapped: ok}, nil
}

type guideOut struct {
	Orientation string          `yaml:"orientation"`
	Kind        string          `yaml:"kind"`
	Position    float64         `yaml:"position"`
	From        geometry.PointF `yaml:"from"`
	To          geometry.PointF `yaml:"to"`
}

type alignOut struct {
	Rect   geometry.RectF `yaml:"rect"`
	Guides []guideOut     `yaml:"guides"`
}

// align moves rect against the anchor rects. Guides selects edge and/or
// center alignment; both are used when it is empty.
func opAlign(q Query, o Options) (any, error) {
	moving, _, err := box(q)
	if err != nil {
		return nil, err
	}
	if len(q.Rects) == 0 {
		return nil, badQuery(q, "needs at least 1 anchor rect")
	}
	opts := geometry.SnapOptions{Threshold: threshold(q, o), Edges: len(q.Guides) == 0, Centers: len(q.Guides) == 0}
	for _, g := range q.Guides {
		switch g {
		case "edges":
			opts.Edges = true
		case "centers":
			opts.Centers = true
		default:
			return nil, badQuery(q, "unknown guide %q", g)
		}
	}
	anchors := make([]geometry.Anchor, len(q.Rects))
	for i, r := range q.Rects {
		anchors[i] = geometry.Anchor{Rect: r.Rect(), Weight: 1}
	}
	snapped, guides := geometry.AlignToAnchors(moving, anchors, opts)
	out := alignOut{Rect: snapped, Guides: make([]guideOut, len(guides))}
	for i, g := range guides {
		out.Guides[i] = guideOut{Orientation: g.Orientation.String(), Kind: g.Kind.String(), Position: g.Position, From: g.From, To: g.To}
	}
	return out, nil
}
