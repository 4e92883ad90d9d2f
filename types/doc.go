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

/*
Package types defines the value model shared by every signalql package.

# Values

An evaluation yields exactly one of four variants:

	Bool           single boolean
	Numeric        single float64
	BoolVector     one boolean per sample
	NumericVector  one float64 per sample

Value is a sealed interface, so consumers switch over the concrete types:

	switch v := result.(type) {
	case types.Bool:
	case types.Numeric:
	case types.BoolVector:
	case types.NumericVector:
	}

Vectors that meet in one operator call are aligned on the same sample
timeline and must have equal length.

# Broadcasting

BroadcastNumeric and BroadcastCompare implement the shape rule used by the
arithmetic and comparison operators: scalars combine with scalars, a vector
on the left takes a scalar on the right sample by sample, and two vectors
combine elementwise when their lengths match. A scalar on the left of a
vector is a type error.

# Errors

Failures are reported as *EvalError. Its Kind places the failure in one of
four buckets (structural, type, shape, domain) and it wraps one of the
sentinel errors of this package, so callers can use errors.Is:

	if errors.Is(err, types.ErrColumnNotFound) {
		// ...
	}

# Configuration

Config holds the sampling interval fallback, the reserved thread count and
the log level. ParseConfig and LoadConfig read it from YAML.
*/
package types
