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

func TestBuilders(t *testing.T) {
	q := Op("count", Fields{
		FieldValue:        Op("GT", Fields{FieldLeft: Select("speed"), FieldRight: Value(30)}),
		FieldInitialValue: Value(0.1),
		FieldUnit:         0,
	})

	name, err := q.Operation()
	require.NoError(t, err)
	assert.Equal(t, "COUNT", name)

	gt, err := q.Operand(FieldValue)
	require.NoError(t, err)
	sel, err := gt.Operand(FieldLeft)
	require.NoError(t, err)
	name, err = sel.Operation()
	require.NoError(t, err)
	assert.Equal(t, "SELECT", name)

	col, err := sel.Operand(FieldValue)
	require.NoError(t, err)
	s, err := col.StringField(FieldValue)
	require.NoError(t, err)
	assert.Equal(t, "speed", s)

	andNode := Op("AND", Fields{FieldOperands: []Node{Value(1), Value(2)}})
	ops, err := andNode.Operands(FieldOperands)
	require.NoError(t, err)
	assert.Len(t, ops, 2)
}

func TestSubstitute(t *testing.T) {
	moving := Op("GT", Fields{FieldLeft: Select("speed"), FieldRight: Value(0)})
	fast := Op("AND", Fields{FieldOperands: []Node{Variable("moving"), Op("GT", Fields{FieldLeft: Select("speed"), FieldRight: Value(30)})}})
	q := Op("COUNT", Fields{
		FieldValue:        Variable("fast"),
		FieldInitialValue: Value(0.1),
		FieldUnit:         Value(0),
	})

	out, err := Substitute(q, map[string]Node{"moving": moving, "fast": fast})
	require.NoError(t, err)

	value, err := out.Operand(FieldValue)
	require.NoError(t, err)
	name, err := value.Operation()
	require.NoError(t, err)
	assert.Equal(t, "AND", name)

	ops, err := value.Operands(FieldOperands)
	require.NoError(t, err)
	first, err := ops[0].Operation()
	require.NoError(t, err)
	assert.Equal(t, "GT", first)

	// the input tree still holds the variable
	orig, err := q.Operand(FieldValue)
	require.NoError(t, err)
	typ, err := orig.Type()
	require.NoError(t, err)
	assert.Equal(t, TypeVariable, typ)
}

func TestSubstitute_Errors(t *testing.T) {
	_, err := Substitute(Op("ABS", Fields{FieldValue: Variable("x")}), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrUnknownVariable))
	assert.Equal(t, types.ErrKindStructural, types.KindOf(err))

	loop := map[string]Node{
		"a": Op("ABS", Fields{FieldValue: Variable("b")}),
		"b": Op("ABS", Fields{FieldValue: Variable("a")}),
	}
	_, err = Substitute(Variable("a"), loop)
	assert.True(t, errors.Is(err, types.ErrUnknownVariable))

	bad := NewNode(map[string]any{"type": "variable", "value": 3.0})
	_, err = Substitute(bad, nil)
	assert.True(t, errors.Is(err, types.ErrUnknownVariable))
}

func TestSubstitute_SharedVariableTwice(t *testing.T) {
	x := Value([]float64{1, 2})
	q := Op("ADD", Fields{FieldLeft: Variable("x"), FieldRight: Variable("x")})
	out, err := Substitute(q, map[string]Node{"x": x})
	require.NoError(t, err)
	for _, f := range []string{FieldLeft, FieldRight} {
		n, err := out.Operand(f)
		require.NoError(t, err)
		v, err := n.Literal()
		require.NoError(t, err)
		assert.Equal(t, types.NumericVector{1, 2}, v)
	}
}
