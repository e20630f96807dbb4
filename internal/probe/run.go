/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package probe

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"godiagram/internal/geometry"
	applog "godiagram/internal/log"

	"deedles.dev/xiter"
)

// Options tune evaluation. Zero values fall back to the engine defaults.
type Options struct {
	HitTolerance float64
	MinWidth     int
	MinHeight    int
	GridSize      float64
	SnapThreshold float64
	Logger        *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.HitTolerance <= 0 {
		o.HitTolerance = geometry.DefaultHitTolerance
	}
	o.MinWidth = max(o.MinWidth, 1)
	o.MinHeight = max(o.MinHeight, 1)
	if o.GridSize <= 0 {
		o.GridSize = 10
	}
	if o.SnapThreshold <= 0 {
		o.SnapThreshold = geometry.DefaultSnapThreshold
	}
	if o.Logger == nil {
		o.Logger = applog.WithComponent("probe")
	}
	return o
}

// Result is the outcome of one query. Err is set instead of Value when the
// query could not be evaluated.
type Result struct {
	Index int
	Name  string
	Op    string
	Value any
	Err   error
}

// MarshalYAML renders Err as text.
func (r Result) MarshalYAML() (any, error) {
	out := struct {
		Index int    `yaml:"index"`
		Name  string `yaml:"name,omitempty"`
		Op    string `yaml:"op"`
		Value any    `yaml:"value,omitempty"`
		Error string `yaml:"error,omitempty"`
	}{Index: r.Index, Name: r.Name, Op: r.Op, Value: r.Value}
	if r.Err != nil {
		out.Error = r.Err.Error()
	}
	return out, nil
}

// Run evaluates every query of doc in order. A failing query does not stop
// the run; once ctx is done the remaining queries report ctx.Err().
func Run(ctx context.Context, doc Document, opts Options) []Result {
	opts = opts.withDefaults()
	results := make([]Result, 0, len(doc.Queries))
	for i, q := range xiter.Enumerate(slices.Values(doc.Queries)) {
		res := Result{Index: i, Name: q.Name, Op: q.Op}
		qctx := applog.ContextWith(ctx, slog.Int("query", i), slog.String("op", q.Op))
		if err := ctx.Err(); err != nil {
			res.Err = err
			results = append(results, res)
			continue
		}
		res.Value, res.Err = Eval(q, opts)
		if res.Err != nil {
			res.Value = nil
			opts.Logger.WarnContext(qctx, "query failed", slog.Any("err", res.Err))
		} else {
			opts.Logger.DebugContext(qctx, "query evaluated")
		}
		results = append(results, res)
	}
	return results
}

// Eval evaluates a single query.
func Eval(q Query, opts Options) (any, error) {
	op, ok := ops[q.Op]
	if !ok {
		return nil, fmt.Errorf("%w: unknown op %q", ErrBadQuery, q.Op)
	}
	return op(q, opts.withDefaults())
}
