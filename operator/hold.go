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
	"slices"
	"time"

	"github.com/rulego/signalql/types"
)

// holdRule decides when a hold starts and whether it continues.
type holdRule struct {
	start func(prev, cur float64) bool
	stay  func(cur float64) bool
}

func newHoldRule(from, to MemberSet) (holdRule, error) {
	switch {
	case from.Empty() && to.Empty():
		return holdRule{}, types.Errorf("HOLD", "", types.ErrEmptyMembership, "at least one of from and to must hold a value")
	case to.Empty():
		// leave from, stay anywhere else
		return holdRule{
			start: func(prev, cur float64) bool { return from.Contains(prev) && !from.Contains(cur) },
			stay:  func(cur float64) bool { return !from.Contains(cur) },
		}, nil
	case from.Empty():
		// enter to, stay inside
		return holdRule{
			start: func(prev, cur float64) bool { return !to.Contains(prev) && to.Contains(cur) },
			stay:  to.Contains,
		}, nil
	default:
		return holdRule{
			start: func(prev, cur float64) bool { return from.Contains(prev) && to.Contains(cur) },
			stay:  to.Contains,
		}, nil
	}
}

// Hold flags samples at which the series has left from, entered to, or
// jumped from one into the other, and then stayed there for at least
// duration seconds. The starting sample counts as the first sample of the
// hold but is never flagged itself. A negative duration scans the series
// backwards; the result keeps the original sample order.
func Hold(values []float64, from, to MemberSet, duration float64, interval time.Duration) ([]bool, error) {
	rule, err := newHoldRule(from, to)
	if err != nil {
		return nil, err
	}
	threshold, err := SampleThreshold(duration, interval)
	if err != nil {
		return nil, err
	}

	series := values
	if duration < 0 {
		series = slices.Clone(values)
		slices.Reverse(series)
	}

	result := make([]bool, len(series))
	holding := false
	count := 0
	for i := 1; i < len(series); i++ {
		if !holding {
			if rule.start(series[i-1], series[i]) {
				holding = true
				count = 1
			}
			continue
		}
		if !rule.stay(series[i]) {
			holding = false
			count = 0
			continue
		}
		count++
		result[i] = count >= threshold
	}

	if duration < 0 {
		slices.Reverse(result)
	}
	return result, nil
}
