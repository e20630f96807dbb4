/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package geometry

import "math"

// Angles come in three units. Degrees are the engine's working unit,
// radians feed the math package, and tenths of a degree are what callers
// persist as integers.

const (
	radiansPerDegree = math.Pi / 180
	degreesPerRadian = 180 / math.Pi
	twoPi            = 2 * math.Pi
)

func DegreesToRadians(deg float64) float64 { return deg * radiansPerDegree }

func RadiansToDegrees(rad float64) float64 { return rad * degreesPerRadian }

// DegreesToTenths converts degrees to integer tenths of a degree, rounding
// to nearest.
func DegreesToTenths(deg float64) int { return int(math.Round(deg * 10)) }

func TenthsToDegrees(tenths int) float64 { return float64(tenths) / 10 }

func RadiansToTenths(rad float64) int { return DegreesToTenths(RadiansToDegrees(rad)) }

func TenthsToRadians(tenths int) float64 { return DegreesToRadians(TenthsToDegrees(tenths)) }

// NormalizeDegrees maps deg into [0, 360).
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg = 0
	}
	return deg
}

// NormalizeRadians maps rad into [0, 2π).
func NormalizeRadians(rad float64) float64 {
	rad = math.Mod(rad, twoPi)
	if rad < 0 {
		rad += twoPi
	}
	if rad >= twoPi {
		rad = 0
	}
	return rad
}

// AngleOf returns the direction of the vector from → to in radians,
// normalized into [0, 2π).
func AngleOf[T Number](from, to Point[T]) float64 {
	return NormalizeRadians(math.Atan2(float64(to.Y)-float64(from.Y), float64(to.X)-float64(from.X)))
}

// SinCos returns sine and cosine of deg, exact for multiples of 90 degrees
// so that quarter turns of integer points do not pick up rounding noise.
func SinCos(deg float64) (sin, cos float64) {
	switch NormalizeDegrees(deg) {
	case 0:
		return 0, 1
	case 90:
		return 1, 0
	case 180:
		return 0, -1
	case 270:
		return -1, 0
	}
	return math.Sincos(DegreesToRadians(deg))
}
