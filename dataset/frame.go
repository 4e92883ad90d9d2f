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
	"slices"
	"sync"
	"time"

	"github.com/rulego/signalql/types"
)

// Number lists the column element types a Frame accepts.
type Number interface {
	~uint8 | ~int32 | ~uint32 | ~float64
}

// Frame is an in-memory column store on a regular time axis. All columns
// have RowCount samples. Columns are stored as float64.
type Frame struct {
	mu       sync.RWMutex
	start    time.Time
	interval time.Duration
	rows     int
	names    []string
	columns  map[string][]float64
}

// NewFrame creates a frame with one row per interval step in [start, end).
func NewFrame(start, end time.Time, interval time.Duration) (*Frame, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("%w: %s", types.ErrInvalidInterval, interval)
	}
	rows := 0
	if span := end.Sub(start); span > 0 {
		rows = int((span + interval - 1) / interval)
	}
	return newFrame(start, rows, interval), nil
}

// NewFrameRows creates a frame holding rows samples starting at start.
func NewFrameRows(start time.Time, rows int, interval time.Duration) (*Frame, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("%w: %s", types.ErrInvalidInterval, interval)
	}
	if rows < 0 {
		return nil, fmt.Errorf("row count must not be negative, got %d", rows)
	}
	return newFrame(start, rows, interval), nil
}

func newFrame(start time.Time, rows int, interval time.Duration) *Frame {
	return &Frame{
		start:    start,
		interval: interval,
		rows:     rows,
		columns:  make(map[string][]float64),
	}
}

// AddColumn converts values to float64 and stores them under name. The name
// must be new and values must have one entry per row.
func AddColumn[T Number](f *Frame, name string, values []T) error {
	if name == "" {
		return fmt.Errorf("column name must not be empty")
	}
	if len(values) != f.rows {
		return fmt.Errorf("%w: column %q has %d samples, frame has %d rows",
			types.ErrLengthMismatch, name, len(values), f.rows)
	}
	col := make([]float64, len(values))
	for i, v := range values {
		col[i] = float64(v)
	}
	return f.put(name, col)
}

func (f *Frame) put(name string, col []float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.columns[name]; exists {
		return fmt.Errorf("column %q already exists", name)
	}
	f.columns[name] = col
	f.names = append(f.names, name)
	return nil
}

func (f *Frame) RowCount() int {
	return f.rows
}

func (f *Frame) SamplingInterval() time.Duration {
	return f.interval
}

// StartTime returns the timestamp of the first row.
func (f *Frame) StartTime() time.Time {
	return f.start
}

// Timestamps returns the time of every row.
func (f *Frame) Timestamps() []time.Time {
	ts := make([]time.Time, f.rows)
	for i := range ts {
		ts[i] = f.start.Add(time.Duration(i) * f.interval)
	}
	return ts
}

// Columns returns the column names in insertion order.
func (f *Frame) Columns() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return slices.Clone(f.names)
}

// Column returns a copy of the named column.
func (f *Frame) Column(name string) ([]float64, error) {
	f.mu.RLock()
	col, ok := f.columns[name]
	f.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", types.ErrColumnNotFound, name)
	}
	return slices.Clone(col), nil
}

// column returns the stored slice without copying; callers must not modify it.
func (f *Frame) column(name string) ([]float64, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	col, ok := f.columns[name]
	return col, ok
}
