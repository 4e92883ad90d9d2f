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

	"github.com/expr-lang/expr"
	"github.com/spf13/cast"
)

// Derive adds a column computed row by row from an expr-lang expression.
// Every existing column is visible under its own name and holds the sample
// of the current row:
//
//	f.Derive("speed_kmh", "speed * 3.6")
//	f.Derive("moving", "speed > 0.5 ? 1 : 0")
//
// The expression must yield a number.
func (f *Frame) Derive(name, expression string) error {
	names := f.Columns()
	env := make(map[string]any, len(names))
	for _, n := range names {
		env[n] = 0.0
	}

	program, err := expr.Compile(expression, expr.Env(env), expr.AsFloat64())
	if err != nil {
		return fmt.Errorf("derive %q: %w", name, err)
	}

	cols := make([][]float64, len(names))
	for i, n := range names {
		cols[i], _ = f.column(n)
	}

	out := make([]float64, f.rows)
	for row := 0; row < f.rows; row++ {
		for i, n := range names {
			env[n] = cols[i][row]
		}
		result, err := expr.Run(program, env)
		if err != nil {
			return fmt.Errorf("derive %q at row %d: %w", name, row, err)
		}
		if out[row], err = cast.ToFloat64E(result); err != nil {
			return fmt.Errorf("derive %q at row %d: %w", name, row, err)
		}
	}
	return f.put(name, out)
}
