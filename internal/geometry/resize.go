/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package geometry

import "math"

// ResizeModifiers alter how a drag changes a shape's size.
type ResizeModifiers uint8

const (
	// MaintainAspect keeps the width:height ratio.
	MaintainAspect ResizeModifiers = 1 << iota
	// MirroredResize moves the opposite side by the same amount so the
	// center stays put.
	MirroredResize
)

func (m ResizeModifiers) Has(f ResizeModifiers) bool { return m&f != 0 }

// Edges is a bitmask naming the sides of a rectangle being dragged.
type Edges uint32

const (
	EdgeNone Edges = 0
	EdgeTop  Edges = 1 << (iota - 1)
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// ResizeParams describe the shape being resized. Cos and Sin are those
// of the shape's rotation angle.
type ResizeParams struct {
	Width, Height       int
	MinWidth, MinHeight int
	Cos, Sin            float64
	Modifiers           ResizeModifiers
}

// ResizeResult holds the new size and the amount the shape's center has
// to move, in parent coordinates, for the fixed sides to stay in place.
type ResizeResult struct {
	Width, Height int
	CenterOffset  PointI
}

// sideSign returns +1 when the drag moves the far side of an axis (right
// or bottom), -1 for the near side and 0 when the axis is not dragged.
func sideSign(edges, near, far Edges) int {
	switch {
	case edges&far != 0 && edges&near == 0:
		return 1
	case edges&near != 0 && edges&far == 0:
		return -1
	}
	return 0
}

// ResizeEdges applies the drag delta, given in parent coordinates, to the
// named edges. The second return value is false when a minimum size
// capped the change; the result is still usable.
func ResizeEdges(p ResizeParams, delta PointI, edges Edges) (ResizeResult, bool) {
	sx := sideSign(edges, EdgeLeft, EdgeRight)
	sy := sideSign(edges, EdgeTop, EdgeBottom)

	// Bring the delta into the shape's own frame.
	local := rotateVector(delta.Float(), -p.Sin, p.Cos)
	ldx, ldy := local.X, local.Y

	mirrored := p.Modifiers.Has(MirroredResize)
	factor := 1.0
	if mirrored {
		factor = 2
	}
	dw := int(math.Round(float64(sx) * ldx * factor))
	dh := int(math.Round(float64(sy) * ldy * factor))

	minW, minH := max(p.MinWidth, 0), max(p.MinHeight, 0)
	var ok bool
	if p.Modifiers.Has(MaintainAspect) && p.Width > 0 && p.Height > 0 {
		dw, dh, ok = aspectDelta(p.Width, p.Height, minW, minH, dw, dh, sx, sy)
	} else {
		var okW, okH bool
		dw, okW = clampDelta(p.Width, minW, dw)
		dh, okH = clampDelta(p.Height, minH, dh)
		ok = okW && okH
	}

	res := ResizeResult{Width: p.Width + dw, Height: p.Height + dh}
	if !mirrored {
		// The dragged side moves by the full change and the opposite one
		// stays, so the center moves by half the change.
		shift := PointF{X: float64(sx*dw) / 2, Y: float64(sy*dh) / 2}
		res.CenterOffset = Round(rotateVector(shift, p.Sin, p.Cos))
	}
	return res, ok
}

// clampDelta caps a size change so size+delta does not drop below min.
func clampDelta(size, minSize, delta int) (int, bool) {
	if size+delta < minSize {
		return minSize - size, false
	}
	return delta, true
}

// aspectDelta turns the requested size changes into whole multiples of the
// smallest step that keeps the ratio exact: (w/g, h/g) with g the greatest
// common factor of w and h. Equal sides give a step of (1, 1), i.e. plain
// proportional change. A non-zero request moves at least one step.
func aspectDelta(w, h, minW, minH, dw, dh, sx, sy int) (int, int, bool) {
	g := gcf(w, h)
	stepW, stepH := w/g, h/g

	var req float64
	switch {
	case sx != 0 && sy == 0:
		req = float64(dw) / float64(stepW)
	case sy != 0 && sx == 0:
		req = float64(dh) / float64(stepH)
	case abs(dw)*h >= abs(dh)*w:
		// Corner drag: the axis with the larger relative change leads.
		req = float64(dw) / float64(stepW)
	default:
		req = float64(dh) / float64(stepH)
	}
	n := int(math.Round(req))
	if n == 0 && req != 0 {
		n = int(math.Copysign(1, req))
	}

	nMin := max(ceilDiv(minW-w, stepW), ceilDiv(minH-h, stepH))
	ok := true
	if n < nMin {
		n, ok = nMin, false
	}
	return n * stepW, n * stepH, ok
}

func gcf(a, b int) int {
	a, b = abs(a), abs(b)
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

func ceilDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a > 0) == (b > 0) {
		q++
	}
	return q
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func ResizeTop(p ResizeParams, delta PointI) (ResizeResult, bool) {
	return ResizeEdges(p, delta, EdgeTop)
}

func ResizeBottom(p ResizeParams, delta PointI) (ResizeResult, bool) {
	return ResizeEdges(p, delta, EdgeBottom)
}

func ResizeLeft(p ResizeParams, delta PointI) (ResizeResult, bool) {
	return ResizeEdges(p, delta, EdgeLeft)
}

func ResizeRight(p ResizeParams, delta PointI) (ResizeResult, bool) {
	return ResizeEdges(p, delta, EdgeRight)
}

func ResizeTopLeft(p ResizeParams, delta PointI) (ResizeResult, bool) {
	return ResizeEdges(p, delta, EdgeTop|EdgeLeft)
}

func ResizeTopRight(p ResizeParams, delta PointI) (ResizeResult, bool) {
	return ResizeEdges(p, delta, EdgeTop|EdgeRight)
}

func ResizeBottomLeft(p ResizeParams, delta PointI) (ResizeResult, bool) {
	return ResizeEdges(p, delta, EdgeBottom|EdgeLeft)
}

func ResizeBottomRight(p ResizeParams, delta PointI) (ResizeResult, bool) {
	return ResizeEdges(p, delta, EdgeBottom|EdgeRight)
}

// ResizeSquare resizes a shape whose width and height are always equal.
// The returned result has Width == Height.
func ResizeSquare(size, minSize int, delta PointI, cos, sin float64, edges Edges, modifiers ResizeModifiers) (ResizeResult, bool) {
	return ResizeEdges(ResizeParams{
		Width:     size,
		Height:    size,
		MinWidth:  minSize,
		MinHeight: minSize,
		Cos:       cos,
		Sin:       sin,
		Modifiers: modifiers | MaintainAspect,
	}, delta, edges)
}

// ArrowParams describe a directed line-like shape by its fixed tail and
// its movable head.
type ArrowParams struct {
	Tail, Head PointI
	MinLength  int
}

// ArrowResult is the arrow after its head moved. Angle is in degrees,
// measured from the tail, in [0, 360).
type ArrowResult struct {
	Head         PointI
	Length       int
	Angle        float64
	CenterOffset PointI
}

// MoveArrowHead moves the head of the arrow to newHead. Heads closer to
// the tail than MinLength are pushed out along the requested direction
// and false is returned.
func MoveArrowHead(p ArrowParams, newHead PointI) (ArrowResult, bool) {
	tail := p.Tail.Float()
	head := newHead.Float()
	ok := true
	length := Distance(tail, head)
	if minLen := float64(max(p.MinLength, 0)); length < minLen {
		dir := head.Sub(tail)
		if nearlyZero(length) {
			// Keep the old direction for a head dropped onto the tail.
			dir = p.Head.Float().Sub(tail)
		}
		if l := Length(dir); !nearlyZero(l) {
			head = tail.Add(dir.Scale(minLen / l))
		}
		length, ok = minLen, false
	}

	h := Round(head)
	oldCenter := Lerp(tail, p.Head.Float(), 0.5)
	newCenter := Lerp(tail, head, 0.5)
	angle := 0.0
	if h != p.Tail {
		angle = RadiansToDegrees(AngleOf(tail, head))
	}
	return ArrowResult{
		Head:         h,
		Length:       int(math.Round(length)),
		Angle:        angle,
		CenterOffset: Round(newCenter.Sub(oldCenter)),
	}, ok
}
