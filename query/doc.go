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
Package query reads and builds signalql query trees.

A query is a tree of objects. Every object carries a "type" field:

	{"type": "value", "value": 3}
	{"type": "value", "value": [1, 2, 3]}
	{"type": "operation", "operation": "GT",
	 "left":  {"type": "operation", "operation": "SELECT", "value": {"type": "value", "value": "speed"}},
	 "right": {"type": "value", "value": 30}}
	{"type": "variable", "value": "moving"}

Parse and ParseYAML decode documents into a Node. Node exposes typed, read-only
accessors for the fields the evaluator needs; operand fields may hold a bare
number or array instead of a value node.

Value, Op, Select and Variable build the same trees in code:

	q := query.Op("COUNT", query.Fields{
		"value":        query.Op("GT", query.Fields{"left": query.Select("speed"), "right": query.Value(30)}),
		"initialValue": query.Value(0.1),
		"unit":         query.Value(0),
	})

Substitute replaces variable nodes with declared sub-queries before
evaluation.
*/
package query
