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

import (
	"github.com/rulego/signalql/types"
)

// Substitute returns a copy of node in which every variable node is replaced
// by the sub-query declared under its name. Declared sub-queries may refer to
// other variables. An undeclared or self-referencing name fails with
// ErrUnknownVariable. node is not modified.
func Substitute(node Node, vars map[string]Node) (Node, error) {
	out, err := substitute(node.fields, vars, map[string]bool{})
	if err != nil {
		return Node{}, err
	}
	m, _ := out.(map[string]any)
	return Node{fields: m}, nil
}

func substitute(raw any, vars map[string]Node, active map[string]bool) (any, error) {
	switch v := raw.(type) {
	case map[string]any:
		if v[FieldType] == string(TypeVariable) {
			return resolve(v, vars, active)
		}
		out := make(map[string]any, len(v))
		for k, child := range v {
			c, err := substitute(child, vars, active)
			if err != nil {
				return nil, err
			}
			out[k] = c
		}
		return out, nil
	case []any:
		out := make([]any, len(v))
		for i, child := range v {
			c, err := substitute(child, vars, active)
			if err != nil {
				return nil, err
			}
			out[i] = c
		}
		return out, nil
	default:
		return raw, nil
	}
}

func resolve(v map[string]any, vars map[string]Node, active map[string]bool) (any, error) {
	name, ok := v[FieldValue].(string)
	if !ok {
		return nil, types.Errorf("", FieldValue, types.ErrUnknownVariable, "variable name must be a string, got %T", v[FieldValue])
	}
	decl, ok := vars[name]
	if !ok {
		return nil, types.Errorf("", FieldValue, types.ErrUnknownVariable, "%q is not declared", name)
	}
	if active[name] {
		return nil, types.Errorf("", FieldValue, types.ErrUnknownVariable, "%q refers to itself", name)
	}
	active[name] = true
	defer delete(active, name)
	return substitute(decl.fields, vars, active)
}
