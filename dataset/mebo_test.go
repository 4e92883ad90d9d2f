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
	"testing"
	"time"

	"github.com/rulego/signalql/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFrame(t *testing.T) *Frame {
	t.Helper()
	f, err := NewFrameRows(t0, 5, 100*time.Millisecond)
	require.NoError(t, err)
	require.NoError(t, AddColumn(f, "speed", []float64{0, 1.5, 3.25, 3.25, -2}))
	require.NoError(t, AddColumn(f, "gear", []uint8{1, 1, 2, 2, 3}))
	return f
}

func TestMebo(t *testing.T) {
	data, err := EncodeMebo(testFrame(t))
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := DecodeMebo(data, []string{"gear", "speed"}, 0)
	require.NoError(t, err)
	assert.Equal(t, 5, f.RowCount())
	assert.Equal(t, 100*time.Millisecond, f.SamplingInterval())
	assert.True(t, t0.Equal(f.StartTime()))
	assert.Equal(t, []string{"gear", "speed"}, f.Columns())

	speed, err := f.Column("speed")
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1.5, 3.25, 3.25, -2}, speed)

	gear, err := f.Column("gear")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 2, 2, 3}, gear)
}

func TestDecodeMebo_ExplicitIntervalAndSubset(t *testing.T) {
	data, err := EncodeMebo(testFrame(t))
	require.NoError(t, err)

	f, err := DecodeMebo(data, []string{"speed"}, time.Second)
	require.NoError(t, err)
	assert.Equal(t, time.Second, f.SamplingInterval())
	assert.Equal(t, []string{"speed"}, f.Columns())
}

func TestMebo_Errors(t *testing.T) {
	data, err := EncodeMebo(testFrame(t))
	require.NoError(t, err)

	_, err = DecodeMebo(data, []string{"rpm"}, 0)
	assert.True(t, errors.Is(err, types.ErrColumnNotFound))

	_, err = DecodeMebo(data, nil, 0)
	assert.Error(t, err)

	_, err = DecodeMebo([]byte("not a blob"), []string{"speed"}, 0)
	assert.Error(t, err)

	empty, err := NewFrameRows(t0, 3, time.Second)
	require.NoError(t, err)
	_, err = EncodeMebo(empty)
	assert.Error(t, err)
}
