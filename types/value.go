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

import (
	"strconv"
	"strings"
)

// Kind enumerates the four result variants an evaluation can produce.
type Kind uint8

const (
	KindBool Kind = iota
	KindNumeric
	KindBoolVector
	KindNumericVector
)

// String returns the name used in error messages and JSON output.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindNumeric:
		return "numeric"
	case KindBoolVector:
		return "bool[]"
	case KindNumericVector:
		return "numeric[]"
	default:
		return "unknown"
	}
}

// IsVector reports whether the kind holds one entry per sample.
func (k Kind) IsVector() bool {
	return k == KindBoolVector || k == KindNumericVector
}

// Value is the result of evaluating a query node.
//
// The interface is sealed: Bool, Numeric, BoolVector and NumericVector are
// the only implementations, so a type switch over them is exhaustive.
type Value interface {
	Kind() Kind
	String() string
	value()
}

// Bool is a single boolean result.
type Bool bool

// Numeric is a single float64 result.
type Numeric float64

// BoolVector holds one boolean per sample.
type BoolVector []bool

// NumericVector holds one numeric sample per row.
type NumericVector []float64

func (Bool) Kind() Kind          { return KindBool }
func (Numeric) Kind() Kind       { return KindNumeric }
func (BoolVector) Kind() Kind    { return KindBoolVector }
func (NumericVector) Kind() Kind { return KindNumericVector }

func (Bool) value()          {}
func (Numeric) value()       {}
func (BoolVector) value()    {}
func (NumericVector) value() {}

func (b Bool) String() string {
	return strconv.FormatBool(bool(b))
}

func (n Numeric) String() string {
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}

// String renders the vector as 0/1 flags, e.g. [0 0 1 0].
func (v BoolVector) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, b := range v {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if b {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	sb.WriteByte(']')
	return sb.String()
}

func (v NumericVector) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, f := range v {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	}
	sb.WriteByte(']')
	return sb.String()
}

// Len returns the number of samples of a vector value and 1 for scalars.
func Len(v Value) int {
	switch x := v.(type) {
	case BoolVector:
		return len(x)
	case NumericVector:
		return len(x)
	default:
		return 1
	}
}

func IsBool(v Value) bool {
	_, ok := v.(Bool)
	return ok
}

func IsNumeric(v Value) bool {
	_, ok := v.(Numeric)
	return ok
}

func IsBoolVector(v Value) bool {
	_, ok := v.(BoolVector)
	return ok
}

func IsNumericVector(v Value) bool {
	_, ok := v.(NumericVector)
	return ok
}

// IsSameKind reports whether every value holds the given kind.
// An empty list is trivially of any kind.
func IsSameKind(values []Value, kind Kind) bool {
	for _, v := range values {
		if v == nil || v.Kind() != kind {
			return false
		}
	}
	return true
}

// IsSameLength reports whether all values are vectors of one kind sharing a
// length. Lists with fewer than two entries are always aligned. A list that
// mixes kinds or holds scalars fails with ErrUnsupportedType.
func IsSameLength(values []Value) (bool, error) {
	if len(values) <= 1 {
		return true, nil
	}
	kind := values[0].Kind()
	if !kind.IsVector() || !IsSameKind(values, kind) {
		return false, ErrUnsupportedType
	}
	size := Len(values[0])
	for _, v := range values[1:] {
		if Len(v) != size {
			return false, nil
		}
	}
	return true, nil
}

// ToInterface converts a value into plain Go data for encoders: bool,
// float64, []bool or []float64.
func ToInterface(v Value) interface{} {
	switch x := v.(type) {
	case Bool:
		return bool(x)
	case Numeric:
		return float64(x)
	case BoolVector:
		return []bool(x)
	case NumericVector:
		return []float64(x)
	default:
		return nil
	}
}
