/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package geometry is the computational-geometry engine behind the diagram
// editor's interactive tools: hit tests, drag-resize and drag-rotate
// transforms, connection snapping and intersection queries.
//
// Every function is a pure mapping from its arguments to its results and is
// safe for concurrent use. Functions that may not find a result return the
// Invalid sentinels ([InvalidPointF], [InvalidRectF], ...) rather than an
// error; callers compare against them with ==. Errors are reserved for
// malformed input ([ErrInvalidArgument]) and degenerate geometry
// ([ErrDegenerateGeometry]).
//
// Angles are in degrees unless a function name says otherwise. Persisted
// angles in tenths of a degree must be converted with [TenthsToDegrees].
package geometry
