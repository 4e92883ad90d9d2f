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

package table

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	data := []map[string]interface{}{
		{"row": 0, "value": 1.5},
		{"row": 1, "value": true},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, data, []string{"row", "value"}))
	expected := "" +
		"+------+-------+\n" +
		"| row  | value |\n" +
		"+------+-------+\n" +
		"| 0    | 1.5   |\n" +
		"| 1    | true  |\n" +
		"+------+-------+\n" +
		"(2 rows)\n"
	assert.Equal(t, expected, buf.String())
}

func TestWrite_ColumnOrder(t *testing.T) {
	data := []map[string]interface{}{
		{"b": 1, "a": 2, "time": "08:00"},
		{"c": 3},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, data, []string{"time", "missing"}))
	lines := bytes.Split(buf.Bytes(), []byte("\n"))
	assert.Equal(t, "| time  | a    | b    | c    |", string(lines[1]))
	assert.Equal(t, "|       |      |      | 3    |", string(lines[4]))
}

func TestWrite_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil, nil))
	assert.Equal(t, "(0 rows)\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestWrite_WriterError(t *testing.T) {
	err := Write(failingWriter{}, []map[string]interface{}{{"a": 1}}, nil)
	assert.EqualError(t, err, "closed")
}
