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

package operator

import (
	"github.com/rulego/signalql/types"
)

var logicalFuncs = map[string]func(a, b bool) bool{
	"AND": func(a, b bool) bool { return a && b },
	"OR":  func(a, b bool) bool { return a || b },
}

// Logical folds AND or OR over operands from left to right, seeded with the
// first operand. Operands must be all Bool or all BoolVector of one length.
func Logical(op string, operands []types.Value) (types.Value, error) {
	fn, ok := logicalFuncs[op]
	if !ok {
		return nil, types.Errorf(op, "", types.ErrUnknownOperation, "not a logical operator")
	}
	if len(operands) == 0 {
		return nil, types.Errorf(op, "operands", types.ErrEmptyOperands, "at least one operand is required")
	}

	switch first := operands[0].(type) {
	case types.Bool:
		if !types.IsSameKind(operands, types.KindBool) {
			return nil, mixedOperands(op, operands, types.KindBool)
		}
		acc := bool(first)
		for _, v := range operands[1:] {
			acc = fn(acc, bool(v.(types.Bool)))
		}
		return types.Bool(acc), nil
	case types.BoolVector:
		if !types.IsSameKind(operands, types.KindBoolVector) {
			return nil, mixedOperands(op, operands, types.KindBoolVector)
		}
		if same, _ := types.IsSameLength(operands); !same {
			return nil, types.Errorf(op, "operands", types.ErrLengthMismatch, "operands must have the same length")
		}
		acc := make(types.BoolVector, len(first))
		copy(acc, first)
		for _, v := range operands[1:] {
			vec := v.(types.BoolVector)
			for i := range acc {
				acc[i] = fn(acc[i], vec[i])
			}
		}
		return acc, nil
	default:
		return nil, types.TypeError(op, "operands", operands[0], types.KindBool, types.KindBoolVector)
	}
}

func mixedOperands(op string, operands []types.Value, want types.Kind) error {
	for _, v := range operands {
		if v == nil || v.Kind() != want {
			return types.TypeError(op, "operands", v, want)
		}
	}
	return nil
}
