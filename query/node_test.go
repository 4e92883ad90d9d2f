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

package query

import (
	"errors"
	"testing"

	"github.com/rulego/signalql/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	n, err := Parse([]byte(`{"type":"operation","operation":"gt","left":{"type":"value","value":1},"right":2}`))
	require.NoError(t, err)

	typ, err := n.Type()
	require.NoError(t, err)
	assert.Equal(t, TypeOperation, typ)

	name, err := n.Operation()
	require.NoError(t, err)
	assert.Equal(t, "GT", name)

	left, err := n.Operand(FieldLeft)
	require.NoError(t, err)
	v, err := left.Literal()
	require.NoError(t, err)
	assert.Equal(t, types.Numeric(1), v)

	right, err := n.Operand(FieldRight)
	require.NoError(t, err)
	v, err = right.Literal()
	require.NoError(t, err)
	assert.Equal(t, types.Numeric(2), v)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not json", `{"type":`},
		{"array document", `[1,2]`},
		{"null document", `null`},
		{"second document", `{"type":"value","value":1} {"junk":true}`},
		{"trailing bracket", `{"type":"value","value":1}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			require.Error(t, err)
			assert.Equal(t, types.ErrKindStructural, types.KindOf(err))
		})
	}
}

func TestParse_TrailingData(t *testing.T) {
	_, err := Parse([]byte(`{"type":"value","value":1} {"junk":true}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrInvalidLiteral))
	assert.Contains(t, err.Error(), "trailing data")

	n, err := Parse([]byte("{\"type\":\"value\",\"value\":1}\n\t "))
	require.NoError(t, err)
	v, err := n.Literal()
	require.NoError(t, err)
	assert.Equal(t, types.Numeric(1), v)
}

func TestParseYAML(t *testing.T) {
	doc := `
type: operation
operation: HOLD
value:
  type: value
  value: [1, 2, 1]
from: {type: value, value: [1]}
to: {type: value, value: []}
duration: 0.2
`
	n, err := ParseYAML([]byte(doc))
	require.NoError(t, err)

	value, err := n.Operand(FieldValue)
	require.NoError(t, err)
	v, err := value.Literal()
	require.NoError(t, err)
	assert.Equal(t, types.NumericVector{1, 2, 1}, v)

	to, err := n.Operand(FieldTo)
	require.NoError(t, err)
	v, err = to.Literal()
	require.NoError(t, err)
	assert.Equal(t, types.NumericVector{}, v)

	d, err := n.Operand(FieldDuration)
	require.NoError(t, err)
	v, err = d.Literal()
	require.NoError(t, err)
	assert.Equal(t, types.Numeric(0.2), v)

	_, err = ParseYAML([]byte("type: [\n"))
	assert.Error(t, err)
	_, err = ParseYAML([]byte(""))
	assert.True(t, errors.Is(err, types.ErrMissingField))
}

func TestNodeType_Missing(t *testing.T) {
	n := NewNode(map[string]any{"value": 1.0})
	_, err := n.Type()
	assert.True(t, errors.Is(err, types.ErrMissingField))

	_, err = n.Operation()
	assert.True(t, errors.Is(err, types.ErrMissingField))

	n = NewNode(map[string]any{"type": "operation", "operation": ""})
	_, err = n.Operation()
	assert.True(t, errors.Is(err, types.ErrUnknownOperation))
}

func TestLiteral(t *testing.T) {
	tests := []struct {
		name     string
		raw      any
		expected types.Value
		wantErr  bool
	}{
		{"float", 2.5, types.Numeric(2.5), false},
		{"yaml int", 3, types.Numeric(3), false},
		{"array", []any{1.0, 2, 3.5}, types.NumericVector{1, 2, 3.5}, false},
		{"empty array", []any{}, types.NumericVector{}, false},
		{"typed array", []float64{4, 5}, types.NumericVector{4, 5}, false},
		{"bool", true, nil, true},
		{"string", "speed", nil, true},
		{"numeric string", "1.5", nil, true},
		{"object", map[string]any{"a": 1.0}, nil, true},
		{"mixed array", []any{1.0, "x"}, nil, true},
		{"null", nil, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := NewNode(map[string]any{"type": "value", "value": tt.raw}).Literal()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, types.ErrInvalidLiteral))
				assert.Equal(t, types.ErrKindStructural, types.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestLiteral_DoesNotAlias(t *testing.T) {
	src := []float64{1, 2, 3}
	v, err := NewNode(map[string]any{"type": "value", "value": src}).Literal()
	require.NoError(t, err)
	vec := v.(types.NumericVector)
	vec[0] = 42
	assert.Equal(t, 1.0, src[0])
}

func TestOperand(t *testing.T) {
	n := NewNode(map[string]any{
		"type":      "operation",
		"operation": "COUNT",
		"unit":      0.1,
		"value":     map[string]any{"type": "value", "value": []any{1.0}},
		"bad":       true,
	})

	unit, err := n.Operand(FieldUnit)
	require.NoError(t, err)
	typ, err := unit.Type()
	require.NoError(t, err)
	assert.Equal(t, TypeValue, typ)

	_, err = n.Operand(FieldInitialValue)
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrMissingField))
	assert.Contains(t, err.Error(), "COUNT.initialValue")

	_, err = n.Operand("bad")
	assert.True(t, errors.Is(err, types.ErrInvalidLiteral))
}

func TestOperand_StringIsNotANode(t *testing.T) {
	n := NewNode(map[string]any{
		"type":      "operation",
		"operation": "HOLD",
		"from":      `{"type":"value","value":1}`,
		"operands":  []any{`{"type":"value","value":1}`},
	})

	_, err := n.Operand(FieldFrom)
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrInvalidLiteral))
	assert.Contains(t, err.Error(), "HOLD.from")

	_, err = n.Operands(FieldOperands)
	assert.True(t, errors.Is(err, types.ErrInvalidLiteral))
}

func TestOperands(t *testing.T) {
	n := NewNode(map[string]any{
		"type":      "operation",
		"operation": "AND",
		"operands": []any{
			map[string]any{"type": "value", "value": 1.0},
			map[string]any{"type": "value", "value": 2.0},
		},
	})
	ops, err := n.Operands(FieldOperands)
	require.NoError(t, err)
	assert.Len(t, ops, 2)

	_, err = NewNode(map[string]any{"operation": "OR"}).Operands(FieldOperands)
	assert.True(t, errors.Is(err, types.ErrMissingField))

	_, err = NewNode(map[string]any{"operands": "x"}).Operands(FieldOperands)
	assert.True(t, errors.Is(err, types.ErrInvalidLiteral))
}

func TestStringField(t *testing.T) {
	n := NewNode(map[string]any{"value": "speed", "n": 1.0})
	s, err := n.StringField(FieldValue)
	require.NoError(t, err)
	assert.Equal(t, "speed", s)

	_, err = n.StringField("n")
	assert.True(t, errors.Is(err, types.ErrInvalidLiteral))
	_, err = n.StringField("missing")
	assert.True(t, errors.Is(err, types.ErrMissingField))
}

func TestNodeJSONRoundTrip(t *testing.T) {
	q := Op("abs", Fields{FieldValue: Value([]float64{-1, 2})})
	data, err := q.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"operation","operation":"ABS","value":{"type":"value","value":[-1,2]}}`, string(data))

	var back Node
	require.NoError(t, back.UnmarshalJSON(data))
	inner, err := back.Operand(FieldValue)
	require.NoError(t, err)
	v, err := inner.Literal()
	require.NoError(t, err)
	assert.Equal(t, types.NumericVector{-1, 2}, v)

	data, err = Node{}.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
	assert.True(t, Node{}.IsZero())
}
