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

// Count scales the number of true samples: count × initialValue + unit.
// With initialValue set to the sampling interval in seconds it yields the
// total time the condition held.
func Count(values []bool, initialValue, unit float64) float64 {
	n := 0
	for _, v := range values {
		if v {
			n++
		}
	}
	return float64(n)*initialValue + unit
}
