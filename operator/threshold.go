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
	"time"

	"github.com/rulego/signalql/types"
)

// SampleThreshold converts a duration in seconds into a number of samples
// spaced by interval: round(|seconds| / interval). It is the only place
// durations become sample counts, so every temporal operator agrees on it.
func SampleThreshold(seconds float64, interval time.Duration) (int, error) {
	if interval <= 0 {
		return 0, types.Errorf("", "", types.ErrInvalidInterval, "%s", interval)
	}
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return 0, types.Errorf("", "", types.ErrInvalidDuration, "%v", seconds)
	}
	n := math.Round(math.Abs(seconds) * float64(time.Second) / float64(interval))
	if n > math.MaxInt32 {
		return 0, types.Errorf("", "", types.ErrInvalidDuration, "%v seconds is too long", seconds)
	}
	return int(n), nil
}
