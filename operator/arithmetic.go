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
	"math"

	"github.com/rulego/signalql/types"
)

// Division by zero and math.Pow domain cases yield Inf or NaN, never an
// error.
var arithmeticFuncs = map[string]func(a, b float64) float64{
	"ADD": func(a, b float64) float64 { return a + b },
	"SUB": func(a, b float64) float64 { return a - b },
	"MUL": func(a, b float64) float64 { return a * b },
	"DIV": func(a, b float64) float64 { return a / b },
	"POW": math.Pow,
}

// Arithmetic applies one of ADD, SUB, MUL, DIV, POW with the broadcast rule.
func Arithmetic(op string, left, right types.Value) (types.Value, error) {
	fn, ok := arithmeticFuncs[op]
	if !ok {
		return nil, types.Errorf(op, "", types.ErrUnknownOperation, "not an arithmetic operator")
	}
	return types.BroadcastNumeric(op, left, right, fn)
}

// Abs returns the absolute value of a Numeric or of every sample of a
// NumericVector.
func Abs(v types.Value) (types.Value, error) {
	switch x := v.(type) {
	case types.Numeric:
		return types.Numeric(math.Abs(float64(x))), nil
	case types.NumericVector:
		out := make(types.NumericVector, len(x))
		for i, f := range x {
			out[i] = math.Abs(f)
		}
		return out, nil
	default:
		return nil, types.TypeError("ABS", "value", v, types.KindNumeric, types.KindNumericVector)
	}
}
