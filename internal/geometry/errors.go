/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package geometry

import "errors"

var (
	// ErrInvalidArgument reports malformed input such as a rectangle with
	// negative dimensions that is not the InvalidRect sentinel.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDegenerateGeometry reports input where a line, vector or circle
	// is not well-defined, e.g. coincident points passed as a line or
	// collinear points passed as an arc. It is a caller error and distinct
	// from "no intersection found", which is reported by sentinels.
	ErrDegenerateGeometry = errors.New("degenerate geometry")
)
