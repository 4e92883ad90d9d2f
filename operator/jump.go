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

// Jump flags one-sample transitions between membership sets:
//
//	from and to set:  prev ∈ from and cur ∈ to
//	from empty:       prev ∉ to and cur ∈ to
//	to empty:         prev ∈ from and cur ∉ from
//
// Sample 0 has no predecessor and is always false.
func Jump(values []float64, from, to MemberSet) ([]bool, error) {
	var match func(prev, cur float64) bool
	switch {
	case from.Empty() && to.Empty():
		return nil, types.Errorf("JUMP", "", types.ErrEmptyMembership, "at least one of from and to must hold a value")
	case from.Empty():
		match = func(prev, cur float64) bool { return !to.Contains(prev) && to.Contains(cur) }
	case to.Empty():
		match = func(prev, cur float64) bool { return from.Contains(prev) && !from.Contains(cur) }
	default:
		match = func(prev, cur float64) bool { return from.Contains(prev) && to.Contains(cur) }
	}

	result := make([]bool, len(values))
	for i := 1; i < len(values); i++ {
		result[i] = match(values[i-1], values[i])
	}
	return result, nil
}
