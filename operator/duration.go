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
	"time"
)

// MinDuration clears every run of consecutive true samples that is shorter
// than minDuration seconds, including a run that reaches the last sample.
// The input is not modified. Applying MinDuration to its own output with the
// same minDuration changes nothing.
func MinDuration(values []bool, minDuration float64, interval time.Duration) ([]bool, error) {
	threshold, err := SampleThreshold(minDuration, interval)
	if err != nil {
		return nil, err
	}

	result := make([]bool, len(values))
	copy(result, values)
	start := -1
	for i := 0; i <= len(result); i++ {
		if i < len(result) && result[i] {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 && i-start < threshold {
			clear(result[start:i])
		}
		start = -1
	}
	return result, nil
}
