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

// MemberSet is the exact-value set built from a from/to operand. An empty
// set acts as a wildcard for "any value not in the other set". Membership
// uses float64 equality without tolerance, so NaN is never a member.
type MemberSet map[float64]struct{}

// NewMemberSet builds a set from literal values.
func NewMemberSet(values ...float64) MemberSet {
	s := make(MemberSet, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// MemberSetOf builds a set from an evaluated operand. A Numeric is a set of
// one value; a NumericVector contributes all of its samples.
func MemberSetOf(op, field string, v types.Value) (MemberSet, error) {
	switch x := v.(type) {
	case types.Numeric:
		return NewMemberSet(float64(x)), nil
	case types.NumericVector:
		return NewMemberSet(x...), nil
	default:
		return nil, types.TypeError(op, field, v, types.KindNumeric, types.KindNumericVector)
	}
}

// Contains reports whether v is a member.
func (s MemberSet) Contains(v float64) bool {
	_, ok := s[v]
	return ok
}

// Empty reports whether the set is the wildcard.
func (s MemberSet) Empty() bool {
	return len(s) == 0
}
