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

import "time"

// Source supplies named numeric columns sampled on one fixed interval.
// Implementations must be safe for concurrent reads.
type Source interface {
	// RowCount returns the number of samples in every column.
	RowCount() int
	// SamplingInterval returns the spacing between two samples.
	SamplingInterval() time.Duration
	// Column returns the samples of the named column. The caller may modify
	// the returned slice.
	Column(name string) ([]float64, error)
}
