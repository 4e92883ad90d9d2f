/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rulego/signalql/types"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// Manifest describes how to assemble a Frame. It is read from YAML or JSON:
//
//	interval: 100ms
//	start: 2024-05-01T08:00:00Z
//	source:
//	  format: mebo
//	  path: drive.mebo
//	  columns: [speed, gear]
//	columns:
//	  - name: brake
//	    type: uint8
//	    values: [0, 0, 1, 1]
//	derived:
//	  - name: speed_kmh
//	    expr: speed * 3.6
type Manifest struct {
	Interval string        `yaml:"interval" json:"interval"`
	Start    string        `yaml:"start" json:"start"`
	Source   *SourceSpec   `yaml:"source" json:"source"`
	Columns  []ColumnSpec  `yaml:"columns" json:"columns"`
	Derived  []DerivedSpec `yaml:"derived" json:"derived"`

	// dir resolves relative source paths.
	dir string
}

// SourceSpec points at a stored blob.
type SourceSpec struct {
	Format  string   `yaml:"format" json:"format"`
	Path    string   `yaml:"path" json:"path"`
	Columns []string `yaml:"columns" json:"columns"`
}

// ColumnSpec is an inline column. Type is one of uint8, int32, uint32 and
// float64 (the default).
type ColumnSpec struct {
	Name   string `yaml:"name" json:"name"`
	Type   string `yaml:"type" json:"type"`
	Values []any  `yaml:"values" json:"values"`
}

// DerivedSpec is a column computed with Frame.Derive.
type DerivedSpec struct {
	Name string `yaml:"name" json:"name"`
	Expr string `yaml:"expr" json:"expr"`
}

// ParseManifest decodes a manifest document. Relative source paths resolve
// against the working directory.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &m, nil
}

// LoadManifest reads a manifest file. Relative source paths resolve against
// the manifest's directory.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load manifest: %w", err)
	}
	m, err := ParseManifest(data)
	if err != nil {
		return nil, err
	}
	m.dir = filepath.Dir(path)
	return m, nil
}

// LoadFrame reads a manifest file and builds its frame.
func LoadFrame(path string) (*Frame, error) {
	m, err := LoadManifest(path)
	if err != nil {
		return nil, err
	}
	return m.Build()
}

// SamplingInterval returns the parsed interval, or
// types.DefaultSamplingInterval when none is set.
func (m *Manifest) SamplingInterval() (time.Duration, error) {
	if m.Interval == "" {
		return types.DefaultSamplingInterval, nil
	}
	d, err := time.ParseDuration(m.Interval)
	if err != nil {
		return 0, fmt.Errorf("manifest interval: %w", err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("manifest interval: %w: %s", types.ErrInvalidInterval, d)
	}
	return d, nil
}

// StartTime returns the parsed start, or the Unix epoch when none is set.
func (m *Manifest) StartTime() (time.Time, error) {
	if m.Start == "" {
		return time.Unix(0, 0).UTC(), nil
	}
	t, err := time.Parse(time.RFC3339Nano, m.Start)
	if err != nil {
		return time.Time{}, fmt.Errorf("manifest start: %w", err)
	}
	return t, nil
}

// Build assembles the frame: stored columns first, then inline columns,
// then derived columns in the listed order. A stored blob carries its own
// start time.
func (m *Manifest) Build() (*Frame, error) {
	interval, err := m.SamplingInterval()
	if err != nil {
		return nil, err
	}
	start, err := m.StartTime()
	if err != nil {
		return nil, err
	}

	var frame *Frame
	if m.Source != nil {
		// without an explicit interval the blob's timestamps decide
		if m.Interval == "" {
			interval = 0
		}
		if frame, err = m.loadSource(interval); err != nil {
			return nil, err
		}
	} else {
		rows := 0
		if len(m.Columns) > 0 {
			rows = len(m.Columns[0].Values)
		}
		if frame, err = NewFrameRows(start, rows, interval); err != nil {
			return nil, err
		}
	}

	for _, c := range m.Columns {
		if err := addSpec(frame, c); err != nil {
			return nil, err
		}
	}
	for _, d := range m.Derived {
		if err := frame.Derive(d.Name, d.Expr); err != nil {
			return nil, err
		}
	}
	return frame, nil
}

func (m *Manifest) loadSource(interval time.Duration) (*Frame, error) {
	if m.Source.Format != "" && m.Source.Format != "mebo" {
		return nil, fmt.Errorf("manifest source: unsupported format %q", m.Source.Format)
	}
	path := m.Source.Path
	if !filepath.IsAbs(path) && m.dir != "" {
		path = filepath.Join(m.dir, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest source: %w", err)
	}
	return DecodeMebo(data, m.Source.Columns, interval)
}

func addSpec(f *Frame, c ColumnSpec) error {
	switch c.Type {
	case "uint8":
		return addConverted(f, c, cast.ToUint8E)
	case "int32":
		return addConverted(f, c, cast.ToInt32E)
	case "uint32":
		return addConverted(f, c, cast.ToUint32E)
	case "", "float64":
		return addConverted(f, c, cast.ToFloat64E)
	default:
		return fmt.Errorf("column %q: unsupported type %q", c.Name, c.Type)
	}
}

func addConverted[T Number](f *Frame, c ColumnSpec, conv func(any) (T, error)) error {
	values := make([]T, len(c.Values))
	for i, raw := range c.Values {
		v, err := conv(raw)
		if err != nil {
			return fmt.Errorf("column %q row %d: %w", c.Name, i, err)
		}
		values[i] = v
	}
	return AddColumn(f, c.Name, values)
}
