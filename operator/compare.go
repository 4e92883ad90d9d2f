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

var compareFuncs = map[string]func(a, b float64) bool{
	"EQ": func(a, b float64) bool { return a == b },
	"NE": func(a, b float64) bool { return a != b },
	"LT": func(a, b float64) bool { return a < b },
	"LE": func(a, b float64) bool { return a <= b },
	"GT": func(a, b float64) bool { return a > b },
	"GE": func(a, b float64) bool { return a >= b },
}

// Compare applies one of EQ, NE, LT, LE, GT, GE with the broadcast rule.
// The result is a Bool for two scalars and a BoolVector otherwise.
func Compare(op string, left, right types.Value) (types.Value, error) {
	fn, ok := compareFuncs[op]
	if !ok {
		return nil, types.Errorf(op, "", types.ErrUnknownOperation, "not a comparison")
	}
	return types.BroadcastCompare(op, left, right, fn)
}
