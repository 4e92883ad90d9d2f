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
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rulego/signalql/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

func TestNewFrame(t *testing.T) {
	tests := []struct {
		name string
		end  time.Time
		rows int
	}{
		{"exact span", t0.Add(time.Second), 10},
		{"partial step counts", t0.Add(1050 * time.Millisecond), 11},
		{"empty span", t0, 0},
		{"end before start", t0.Add(-time.Second), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewFrame(t0, tt.end, 100*time.Millisecond)
			require.NoError(t, err)
			assert.Equal(t, tt.rows, f.RowCount())
			assert.Equal(t, 100*time.Millisecond, f.SamplingInterval())
			assert.Len(t, f.Timestamps(), tt.rows)
		})
	}

	_, err := NewFrame(t0, t0.Add(time.Second), 0)
	assert.True(t, errors.Is(err, types.ErrInvalidInterval))

	_, err = NewFrameRows(t0, -1, time.Second)
	assert.Error(t, err)
}

func TestFrameTimestamps(t *testing.T) {
	f, err := NewFrameRows(t0, 3, 100*time.Millisecond)
	require.NoError(t, err)
	ts := f.Timestamps()
	assert.Equal(t, t0, ts[0])
	assert.Equal(t, t0.Add(200*time.Millisecond), ts[2])
	assert.Equal(t, t0, f.StartTime())
}

func TestAddColumn(t *testing.T) {
	f, err := NewFrameRows(t0, 4, 100*time.Millisecond)
	require.NoError(t, err)

	require.NoError(t, AddColumn(f, "flag", []uint8{0, 1, 1, 0}))
	require.NoError(t, AddColumn(f, "delta", []int32{-2, -1, 0, 1}))
	require.NoError(t, AddColumn(f, "count", []uint32{7, 8, 9, 10}))
	require.NoError(t, AddColumn(f, "speed", []float64{0.5, 1.5, 2.5, 3.5}))

	assert.Equal(t, []string{"flag", "delta", "count", "speed"}, f.Columns())

	col, err := f.Column("delta")
	require.NoError(t, err)
	assert.Equal(t, []float64{-2, -1, 0, 1}, col)

	err = AddColumn(f, "speed", []float64{1, 2, 3, 4})
	assert.ErrorContains(t, err, "already exists")

	err = AddColumn(f, "short", []float64{1, 2})
	assert.True(t, errors.Is(err, types.ErrLengthMismatch))

	err = AddColumn(f, "", []float64{1, 2, 3, 4})
	assert.Error(t, err)
}

func TestColumn_ReturnsCopy(t *testing.T) {
	f, err := NewFrameRows(t0, 2, time.Second)
	require.NoError(t, err)
	require.NoError(t, AddColumn(f, "a", []float64{1, 2}))

	col, err := f.Column("a")
	require.NoError(t, err)
	col[0] = 99

	again, err := f.Column("a")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, again)

	_, err = f.Column("b")
	assert.True(t, errors.Is(err, types.ErrColumnNotFound))
}

func TestFrame_ConcurrentReads(t *testing.T) {
	f, err := NewFrameRows(t0, 100, 10*time.Millisecond)
	require.NoError(t, err)
	values := make([]float64, 100)
	for i := range values {
		values[i] = float64(i)
	}
	require.NoError(t, AddColumn(f, "x", values))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			col, err := f.Column("x")
			assert.NoError(t, err)
			assert.Equal(t, values, col)
		}()
	}
	wg.Wait()
}

func TestDerive(t *testing.T) {
	f, err := NewFrameRows(t0, 4, 100*time.Millisecond)
	require.NoError(t, err)
	require.NoError(t, AddColumn(f, "speed", []float64{0, 10, 20, 30}))
	require.NoError(t, AddColumn(f, "gear", []uint8{1, 2, 3, 3}))

	require.NoError(t, f.Derive("kmh", "speed * 3.6"))
	col, err := f.Column("kmh")
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 36, 72, 108}, col, 1e-9)

	require.NoError(t, f.Derive("high", "gear >= 3 ? 1 : 0"))
	col, err = f.Column("high")
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 1, 1}, col)

	require.NoError(t, f.Derive("scaled", "kmh + gear"))
	col, err = f.Column("scaled")
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 38, 75, 111}, col, 1e-9)
}

func TestDerive_Errors(t *testing.T) {
	f, err := NewFrameRows(t0, 2, 100*time.Millisecond)
	require.NoError(t, err)
	require.NoError(t, AddColumn(f, "speed", []float64{1, 2}))

	assert.Error(t, f.Derive("x", "unknown_column + 1"))
	assert.Error(t, f.Derive("x", "speed +"))
	assert.Error(t, f.Derive("x", `"text"`))
	assert.Error(t, f.Derive("speed", "speed * 2"))
}
