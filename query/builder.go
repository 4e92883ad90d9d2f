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

package query

import "strings"

// Fields holds the named operands of an operation built in code. Values may
// be a Node, a slice of Nodes, or a literal (number, []float64, string).
type Fields map[string]any

// Value builds a value node. v is a number, a []float64 or, for SELECT, a
// column name.
func Value(v any) Node {
	return Node{fields: map[string]any{
		FieldType:  string(TypeValue),
		FieldValue: plain(v),
	}}
}

// Op builds an operation node.
func Op(name string, operands Fields) Node {
	fields := make(map[string]any, len(operands)+2)
	for k, v := range operands {
		fields[k] = plain(v)
	}
	fields[FieldType] = string(TypeOperation)
	fields[FieldOperation] = strings.ToUpper(name)
	return Node{fields: fields}
}

// Select builds a SELECT operation reading column.
func Select(column string) Node {
	return Op("SELECT", Fields{FieldValue: Value(column)})
}

// Variable builds a placeholder that Substitute replaces with a declared
// sub-query.
func Variable(name string) Node {
	return Node{fields: map[string]any{
		FieldType:  string(TypeVariable),
		FieldValue: name,
	}}
}

// plain converts builder inputs into the shapes a decoded document has, so
// built and parsed trees are read by the same accessors.
func plain(v any) any {
	switch x := v.(type) {
	case Node:
		return x.fields
	case []Node:
		out := make([]any, len(x))
		for i, n := range x {
			out[i] = n.fields
		}
		return out
	case []float64:
		out := make([]any, len(x))
		for i, f := range x {
			out[i] = f
		}
		return out
	default:
		return v
	}
}
