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
	"github.com/montanaflynn/stats"
	"github.com/rulego/signalql/types"
)

// AggregateFunction reduces a numeric vector to one value.
type AggregateFunction struct {
	Name string
	Func func(input []float64) (float64, error)
}

// AggregateBuiltins maps operator names to aggregate functions.
var AggregateBuiltins = map[string]*AggregateFunction{}

func init() {
	for _, item := range aggregateBuiltins {
		AggregateBuiltins[item.Name] = item
	}
}

var aggregateBuiltins = []*AggregateFunction{
	{
		Name: "MAX",
		Func: func(input []float64) (float64, error) {
			return stats.Max(input)
		},
	},
	{
		Name: "MIN",
		Func: func(input []float64) (float64, error) {
			return stats.Min(input)
		},
	},
	{
		Name: "AVG",
		Func: func(input []float64) (float64, error) {
			return stats.Mean(input)
		},
	},
}

// Aggregate applies MAX, MIN or AVG to a NumericVector. An empty vector is
// rejected instead of producing NaN.
func Aggregate(op string, v types.Value) (types.Value, error) {
	item, ok := AggregateBuiltins[op]
	if !ok {
		return nil, types.Errorf(op, "", types.ErrUnknownOperation, "not an aggregate")
	}
	vec, ok := v.(types.NumericVector)
	if !ok {
		return nil, types.TypeError(op, "value", v, types.KindNumericVector)
	}
	if len(vec) == 0 {
		return nil, types.Errorf(op, "value", types.ErrEmptyInput, "cannot aggregate an empty vector")
	}
	result, err := item.Func(vec)
	if err != nil {
		return nil, types.NewError(op, "value", err)
	}
	return types.Numeric(result), nil
}
