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
	"time"

	"github.com/arloliu/mebo"
	"github.com/rulego/signalql/types"
)

// EncodeMebo writes every column of f as one metric of a mebo numeric blob.
// Timestamps are stored in microseconds. mebo keeps metric names only as
// hashes, so readers must know the column names.
func EncodeMebo(f *Frame) ([]byte, error) {
	names := f.Columns()
	if len(names) == 0 {
		return nil, fmt.Errorf("encode mebo: frame has no columns")
	}
	enc, err := mebo.NewDefaultNumericEncoder(f.StartTime())
	if err != nil {
		return nil, fmt.Errorf("encode mebo: %w", err)
	}

	ts := make([]int64, f.rows)
	for i, t := range f.Timestamps() {
		ts[i] = t.UnixMicro()
	}
	for _, name := range names {
		col, _ := f.column(name)
		if err := enc.StartMetricName(name, f.rows); err != nil {
			return nil, fmt.Errorf("encode mebo: column %q: %w", name, err)
		}
		if err := enc.AddDataPoints(ts, col, nil); err != nil {
			return nil, fmt.Errorf("encode mebo: column %q: %w", name, err)
		}
		if err := enc.EndMetric(); err != nil {
			return nil, fmt.Errorf("encode mebo: column %q: %w", name, err)
		}
	}
	return enc.Finish()
}

// DecodeMebo reads the named columns of a mebo numeric blob into a Frame.
// When interval is not positive it is taken from the first two timestamps,
// falling back to types.DefaultSamplingInterval for single-row blobs.
func DecodeMebo(data []byte, columns []string, interval time.Duration) (*Frame, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("decode mebo: no column names given")
	}
	dec, err := mebo.NewNumericDecoder(data)
	if err != nil {
		return nil, fmt.Errorf("decode mebo: %w", err)
	}
	blob, err := dec.Decode()
	if err != nil {
		return nil, fmt.Errorf("decode mebo: %w", err)
	}

	for _, name := range columns {
		if !blob.HasMetricName(name) {
			return nil, fmt.Errorf("decode mebo: %w: %q", types.ErrColumnNotFound, name)
		}
	}

	rows := blob.LenByName(columns[0])
	ts := slices.Collect(blob.AllTimestampsByName(columns[0]))
	start := blob.StartTime()
	if len(ts) > 0 {
		start = time.UnixMicro(ts[0]).UTC()
	}
	if interval <= 0 {
		interval = types.DefaultSamplingInterval
		if len(ts) > 1 {
			interval = time.Duration(ts[1]-ts[0]) * time.Microsecond
		}
	}

	frame, err := NewFrameRows(start, rows, interval)
	if err != nil {
		return nil, fmt.Errorf("decode mebo: %w", err)
	}
	for _, name := range columns {
		values := slices.Collect(blob.AllValuesByName(name))
		if err := AddColumn(frame, name, values); err != nil {
			return nil, fmt.Errorf("decode mebo: %w", err)
		}
	}
	return frame, nil
}
