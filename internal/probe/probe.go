/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package probe evaluates batches of geometry queries described in YAML or
// JSON documents. It is the scripted surface of the geometry engine, used by
// the CLI and for reproducing interaction bugs without a canvas.
package probe

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"godiagram/internal/geometry"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var schemaBytes []byte

var schema = mustSchema()

func mustSchema() *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaBytes))
	if err != nil {
		panic(fmt.Sprintf("probe: embedded schema: %v", err))
	}
	return s
}

var (
	// ErrInvalidDocument is returned when a document does not decode or
	// does not match the probe schema.
	ErrInvalidDocument = errors.New("probe: invalid document")
	// ErrBadQuery marks a query whose inputs do not fit its operation.
	ErrBadQuery = errors.New("probe: bad query")
)

// Format names a document encoding.
type Format string

const (
	YAML Format = "yaml"
	JSON Format = "json"
)

// FormatFromPath picks the format from the file extension; anything but
// .json is read as YAML.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return JSON
	}
	return YAML
}

// Vec is a point written as [x, y].
type Vec [2]float64

func (v Vec) F() geometry.PointF { return geometry.Pt(v[0], v[1]) }
func (v Vec) I() geometry.PointI { return geometry.Round(v.F()) }

// Box is a rectangle with an optional rotation about its center.
type Box struct {
	X     float64 `yaml:"x" json:"x"`
	Y     float64 `yaml:"y" json:"y"`
	W     float64 `yaml:"w" json:"w"`
	H     float64 `yaml:"h" json:"h"`
	Angle float64 `yaml:"angle,omitempty" json:"angle,omitempty"`
}

func (b Box) Rect() geometry.RectF { return geometry.R(b.X, b.Y, b.W, b.H) }

type Circle struct {
	Center Vec     `yaml:"center" json:"center"`
	Radius float64 `yaml:"radius" json:"radius"`
}

type ResizeSpec struct {
	Width          int      `yaml:"width" json:"width"`
	Height         int      `yaml:"height" json:"height"`
	MinWidth       int      `yaml:"min_width,omitempty" json:"min_width,omitempty"`
	MinHeight      int      `yaml:"min_height,omitempty" json:"min_height,omitempty"`
	Angle          float64  `yaml:"angle,omitempty" json:"angle,omitempty"`
	Delta          Vec      `yaml:"delta" json:"delta"`
	Edges          []string `yaml:"edges" json:"edges"`
	MaintainAspect bool     `yaml:"maintain_aspect,omitempty" json:"maintain_aspect,omitempty"`
	Mirrored       bool     `yaml:"mirrored,omitempty" json:"mirrored,omitempty"`
}

type ArrowSpec struct {
	Tail      Vec `yaml:"tail" json:"tail"`
	Head      Vec `yaml:"head" json:"head"`
	NewHead   Vec `yaml:"new_head" json:"new_head"`
	MinLength int `yaml:"min_length,omitempty" json:"min_length,omitempty"`
}

// Query is one operation with its inputs. Which fields are read depends
// on Op.
type Query struct {
	Op        string      `yaml:"op" json:"op"`
	Name      string      `yaml:"name,omitempty" json:"name,omitempty"`
	Points    []Vec       `yaml:"points,omitempty" json:"points,omitempty"`
	Center    *Vec        `yaml:"center,omitempty" json:"center,omitempty"`
	Size      *Vec        `yaml:"size,omitempty" json:"size,omitempty"`
	Radius    float64     `yaml:"radius,omitempty" json:"radius,omitempty"`
	Circles   []Circle    `yaml:"circles,omitempty" json:"circles,omitempty"`
	Rects     []Box       `yaml:"rects,omitempty" json:"rects,omitempty"`
	Rect      *Box        `yaml:"rect,omitempty" json:"rect,omitempty"`
	Angle     float64     `yaml:"angle,omitempty" json:"angle,omitempty"`
	T         float64     `yaml:"t,omitempty" json:"t,omitempty"`
	Segment   bool        `yaml:"segment,omitempty" json:"segment,omitempty"`
	Inclusive bool        `yaml:"inclusive,omitempty" json:"inclusive,omitempty"`
	Tolerance *float64    `yaml:"tolerance,omitempty" json:"tolerance,omitempty"`
	Value     float64     `yaml:"value,omitempty" json:"value,omitempty"`
	From      string      `yaml:"from,omitempty" json:"from,omitempty"`
	To        string      `yaml:"to,omitempty" json:"to,omitempty"`
	Grid      float64     `yaml:"grid,omitempty" json:"grid,omitempty"`
	Threshold *float64    `yaml:"threshold,omitempty" json:"threshold,omitempty"`
	Guides    []string    `yaml:"guides,omitempty" json:"guides,omitempty"`
	Resize    *ResizeSpec `yaml:"resize,omitempty" json:"resize,omitempty"`
	Arrow     *ArrowSpec  `yaml:"arrow,omitempty" json:"arrow,omitempty"`
}

// Document is a decoded probe file.
type Document struct {
	Version int     `yaml:"version,omitempty" json:"version,omitempty"`
	Queries []Query `yaml:"queries" json:"queries"`
}

// Parse decodes data in the given format, validates it against the probe
// schema and returns the document.
func Parse(data []byte, format Format) (Document, error) {
	var (
		tree any
		doc  Document
		err  error
	)
	switch format {
	case JSON:
		if err = json.Unmarshal(data, &tree); err == nil {
			err = json.Unmarshal(data, &doc)
		}
	case YAML, "":
		if err = yaml.Unmarshal(data, &tree); err == nil {
			err = yaml.Unmarshal(data, &doc)
		}
	default:
		return Document{}, fmt.Errorf("%w: unknown format %q", ErrInvalidDocument, format)
	}
	if err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if err := validate(tree); err != nil {
		return Document{}, err
	}
	return doc, nil
}

func validate(tree any) error {
	if tree == nil {
		return fmt.Errorf("%w: empty document", ErrInvalidDocument)
	}
	res, err := schema.Validate(gojsonschema.NewGoLoader(tree))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidDocument, strings.Join(msgs, "; "))
}
