/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package geometry

import "gonum.org/v1/gonum/floats/scalar"

// Epsilon is the absolute tolerance used for floating-point comparisons
// inside the engine (parameter ranges, determinants, angle spans).
const Epsilon = 1e-9

// DefaultHitTolerance is the distance within which a point counts as lying
// on an outline (circle, arc) when callers have no tolerance of their own.
const DefaultHitTolerance = 0.5

func nearlyEqual(a, b float64) bool { return scalar.EqualWithinAbs(a, b, Epsilon) }

func nearlyZero(a float64) bool { return scalar.EqualWithinAbs(a, 0, Epsilon) }

// nearlyEqualRel compares values whose magnitude depends on the input
// coordinates, such as squared lengths.
func nearlyEqualRel(a, b float64) bool { return scalar.EqualWithinAbsOrRel(a, b, Epsilon, Epsilon) }

func pointsNearlyEqual(a, b PointF) bool { return nearlyEqual(a.X, b.X) && nearlyEqual(a.Y, b.Y) }

// inUnitRange reports whether t lies in [0, 1] within tolerance.
func inUnitRange(t float64) bool { return t >= -Epsilon && t <= 1+Epsilon }
