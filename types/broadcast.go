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

package types

// broadcast applies fn to two numeric operands following the shape rule
// shared by comparison and arithmetic operators:
//
//	scalar ⊕ scalar -> scalar
//	vector ⊕ scalar -> vector
//	vector ⊕ vector -> vector (lengths must match)
//
// A scalar left operand only combines with a scalar. Every other pairing,
// including boolean operands, is rejected with ErrUnsupportedType.
func broadcast[T any](op string, left, right Value, fn func(a, b float64) T,
	scalar func(T) Value, vector func([]T) Value) (Value, error) {
	switch l := left.(type) {
	case Numeric:
		switch r := right.(type) {
		case Numeric:
			return scalar(fn(float64(l), float64(r))), nil
		default:
			return nil, TypeError(op, "right", right, KindNumeric)
		}
	case NumericVector:
		switch r := right.(type) {
		case Numeric:
			out := make([]T, len(l))
			for i, lv := range l {
				out[i] = fn(lv, float64(r))
			}
			return vector(out), nil
		case NumericVector:
			if len(l) != len(r) {
				return nil, Errorf(op, "", ErrLengthMismatch, "left has %d samples, right has %d", len(l), len(r))
			}
			out := make([]T, len(l))
			for i := range l {
				out[i] = fn(l[i], r[i])
			}
			return vector(out), nil
		default:
			return nil, TypeError(op, "right", right, KindNumeric, KindNumericVector)
		}
	default:
		return nil, TypeError(op, "left", left, KindNumeric, KindNumericVector)
	}
}

// BroadcastNumeric combines two numeric operands into a numeric result.
func BroadcastNumeric(op string, left, right Value, fn func(a, b float64) float64) (Value, error) {
	return broadcast(op, left, right, fn,
		func(f float64) Value { return Numeric(f) },
		func(fs []float64) Value { return NumericVector(fs) })
}

// BroadcastCompare combines two numeric operands into a boolean result.
func BroadcastCompare(op string, left, right Value, fn func(a, b float64) bool) (Value, error) {
	return broadcast(op, left, right, fn,
		func(b bool) Value { return Bool(b) },
		func(bs []bool) Value { return BoolVector(bs) })
}
