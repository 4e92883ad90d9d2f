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

// afterBand orients the AFTER comparisons. For a descending band the
// comparisons are mirrored.
type afterBand struct {
	from, to   float64
	descending bool
}

// reached reports whether v is at or past edge.
func (b afterBand) reached(v, edge float64) bool {
	if b.descending {
		return v <= edge
	}
	return v >= edge
}

// After detects a two-stage crossing: the series crosses from (rising
// for from < to, falling otherwise), then reaches to and stays at or past it
// for at least duration seconds. Falling back before from cancels the
// detection. Once the series has reached to, retreating between from and to
// also cancels it; the series has to cross from again.
func After(values []float64, from, to, duration float64, interval time.Duration) ([]bool, error) {
	threshold, err := SampleThreshold(duration, interval)
	if err != nil {
		return nil, err
	}
	band := afterBand{from: from, to: to, descending: from >= to}

	result := make([]bool, len(values))
	crossed := false
	sustaining := false
	count := 0
	for i := 1; i < len(values); i++ {
		cur := values[i]
		if !crossed {
			crossed = !band.reached(values[i-1], from) && band.reached(cur, from)
			continue
		}
		switch {
		case !band.reached(cur, from):
			crossed, sustaining, count = false, false, 0
		case !band.reached(cur, to):
			if sustaining {
				crossed, sustaining, count = false, false, 0
			}
		default:
			if !sustaining {
				sustaining = true
				count = 0
			}
			count++
			result[i] = count >= threshold
		}
	}
	return result, nil
}
