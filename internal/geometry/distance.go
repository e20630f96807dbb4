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
)

// Distance returns the Euclidean distance between a and b.
func Distance[T Number](a, b Point[T]) float64 {
	return math.Sqrt(DistanceSquared(a, b))
}

func DistanceSquared[T Number](a, b Point[T]) float64 {
	dx, dy := float64(b.X)-float64(a.X), float64(b.Y)-float64(a.Y)
	return dx*dx + dy*dy
}

// SignedDistancePointLine returns the distance of p from the infinite line
// through a and b. The sign tells the side: it follows Cross(a, b, p) and
// is zero on the line.
func SignedDistancePointLine[T Number](p, a, b Point[T]) (float64, error) {
	if a == b {
		return 0, fmt.Errorf("%w: line through coincident points %v", ErrDegenerateGeometry, a)
	}
	return Cross(a, b, p) / Distance(a, b), nil
}

// DistancePointLine returns the unsigned distance of p from the line a→b.
// With isSegment, the distance is measured to the nearer endpoint when the
// foot of the perpendicular falls outside [a, b].
func DistancePointLine[T Number](p, a, b Point[T], isSegment bool) (float64, error) {
	d, err := SignedDistancePointLine(p, a, b)
	if err != nil {
		return 0, err
	}
	if isSegment {
		// The foot lies beyond b when a→b and b→p point the same way, and
		// before a when b→a and a→p do.
		if DotAt(a, b, p) > 0 {
			return Distance(b, p), nil
		}
		if DotAt(b, a, p) > 0 {
			return Distance(a, p), nil
		}
	}
	return math.Abs(d), nil
}

// ClosestPointOnLine returns the point of the line a→b nearest to p,
// clamped to the endpoints when isSegment is set.
func ClosestPointOnLine[T Number](p, a, b Point[T], isSegment bool) (PointF, error) {
	if a == b {
		return InvalidPointF, fmt.Errorf("%w: line through coincident points %v", ErrDegenerateGeometry, a)
	}
	af, v := a.Float(), b.Float().Sub(a.Float())
	t := Dot(p.Float().Sub(af), v) / Dot(v, v)
	if isSegment {
		t = math.Max(0, math.Min(1, t))
	}
	return Lerp(af, b.Float(), t), nil
}

// Nearest returns the candidate nearest to p. Ties go to the candidate
// encountered first. An empty set yields the Invalid sentinel.
func Nearest[T Number](p Point[T], candidates []Point[T]) Point[T] {
	result, best := InvalidPoint[T](), math.Inf(1)
	for _, c := range candidates {
		if d := DistanceSquared(p, c); d < best {
			result, best = c, d
		}
	}
	return result
}

// Furthest returns the candidate furthest from p. Ties go to the candidate
// encountered first. An empty set yields the Invalid sentinel.
func Furthest[T Number](p Point[T], candidates []Point[T]) Point[T] {
	result, best := InvalidPoint[T](), math.Inf(-1)
	for _, c := range candidates {
		if d := DistanceSquared(p, c); d > best {
			result, best = c, d
		}
	}
	return result
}
