/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package geometry

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Batch transforms run concurrently must not interfere; run with -race.
func TestRotatePointsConcurrent(t *testing.T) {
	const workers = 16
	want := []PointI{{0, 10}, {-10, 0}, {0, -10}, {10, 0}}

	var wg sync.WaitGroup
	results := make([][]PointI, workers)
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pts := []PointI{{10, 0}, {0, 10}, {-10, 0}, {0, -10}}
			// Mix angles so a shared matrix would corrupt the result.
			RotatePoints(pts, Pt(0, 0), float64(90*(i%4)))
			RotatePoints(pts, Pt(0, 0), float64(90-90*(i%4)))
			results[i] = pts
		}()
	}
	wg.Wait()
	for i, got := range results {
		assert.Equal(t, want, got, "worker %d", i)
	}
}

func TestIntersectionSequencesRestart(t *testing.T) {
	seq := CircleLineIntersections(Pt(0.0, 0.0), 5, Pt(-10.0, 0.0), Pt(10.0, 0.0), false)
	var run1, run2 []PointF
	for p := range seq {
		run1 = append(run1, p)
	}
	for p := range seq {
		run2 = append(run2, p)
	}
	assert.Len(t, run1, 2)
	assert.Equal(t, run1, run2)
}
