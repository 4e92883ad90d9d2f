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
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rulego/signalql/types"
	"github.com/spf13/cast"
)

// NodeType is the value of the "type" field of a query node.
type NodeType string

const (
	TypeValue     NodeType = "value"
	TypeOperation NodeType = "operation"
	TypeVariable  NodeType = "variable"
)

// Field names read by the evaluator.
const (
	FieldType         = "type"
	FieldOperation    = "operation"
	FieldValue        = "value"
	FieldLeft         = "left"
	FieldRight        = "right"
	FieldOperands     = "operands"
	FieldFrom         = "from"
	FieldTo           = "to"
	FieldDuration     = "duration"
	FieldMinDuration  = "minDuration"
	FieldInitialValue = "initialValue"
	FieldUnit         = "unit"
)

// Node is a read-only view of one decoded query object. The zero Node has
// no fields. Accessors never modify the underlying tree.
type Node struct {
	fields map[string]any
}

// NewNode wraps a decoded object. The map must not be modified afterwards.
func NewNode(fields map[string]any) Node {
	return Node{fields: fields}
}

// IsZero reports whether the node holds no fields.
func (n Node) IsZero() bool {
	return len(n.fields) == 0
}

// Has reports whether field is present.
func (n Node) Has(field string) bool {
	_, ok := n.fields[field]
	return ok
}

// Raw returns the undecoded content of field.
func (n Node) Raw(field string) (any, bool) {
	v, ok := n.fields[field]
	return v, ok
}

// Type returns the node kind.
func (n Node) Type() (NodeType, error) {
	raw, ok := n.fields[FieldType]
	if !ok {
		return "", types.Errorf("", FieldType, types.ErrMissingField, "node has no type")
	}
	s, err := cast.ToStringE(raw)
	if err != nil {
		return "", types.Errorf("", FieldType, types.ErrUnknownNodeType, "%v", raw)
	}
	return NodeType(s), nil
}

// Operation returns the upper-cased operator name of an operation node.
func (n Node) Operation() (string, error) {
	raw, ok := n.fields[FieldOperation]
	if !ok {
		return "", types.Errorf("", FieldOperation, types.ErrMissingField, "operation node has no operation name")
	}
	s, err := cast.ToStringE(raw)
	if err != nil || s == "" {
		return "", types.Errorf("", FieldOperation, types.ErrUnknownOperation, "%v", raw)
	}
	return strings.ToUpper(s), nil
}

// name returns the operation name for error messages, or "" for leaves.
func (n Node) name() string {
	s, _ := cast.ToStringE(n.fields[FieldOperation])
	return strings.ToUpper(s)
}

// Operand returns the sub-node stored under field. A bare number or array of
// numbers is accepted in place of a node and wrapped as a value node.
func (n Node) Operand(field string) (Node, error) {
	raw, ok := n.fields[field]
	if !ok || raw == nil {
		return Node{}, types.Errorf(n.name(), field, types.ErrMissingField, "operand is required")
	}
	return toNode(n.name(), field, raw)
}

// Operands returns the list of sub-nodes stored under field.
func (n Node) Operands(field string) ([]Node, error) {
	raw, ok := n.fields[field]
	if !ok || raw == nil {
		return nil, types.Errorf(n.name(), field, types.ErrMissingField, "operand list is required")
	}
	items, err := cast.ToSliceE(raw)
	if err != nil {
		return nil, types.Errorf(n.name(), field, types.ErrInvalidLiteral, "expected a list, got %T", raw)
	}
	nodes := make([]Node, len(items))
	for i, item := range items {
		if nodes[i], err = toNode(n.name(), field, item); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// StringField returns field as a string. Only strings are accepted.
func (n Node) StringField(field string) (string, error) {
	raw, ok := n.fields[field]
	if !ok {
		return "", types.Errorf(n.name(), field, types.ErrMissingField, "string is required")
	}
	s, ok := raw.(string)
	if !ok {
		return "", types.Errorf(n.name(), field, types.ErrInvalidLiteral, "expected a string, got %T", raw)
	}
	return s, nil
}

// Literal decodes the "value" field of a value node: a number becomes
// Numeric, an array of numbers becomes NumericVector. Booleans, strings,
// objects and mixed arrays are rejected.
func (n Node) Literal() (types.Value, error) {
	raw, ok := n.fields[FieldValue]
	if !ok {
		return nil, types.Errorf("", FieldValue, types.ErrMissingField, "value node has no value")
	}
	return literal(raw)
}

// MarshalJSON encodes the node as the object it was built from.
func (n Node) MarshalJSON() ([]byte, error) {
	if n.fields == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(n.fields)
}

// UnmarshalJSON decodes an object into the node.
func (n *Node) UnmarshalJSON(data []byte) error {
	parsed, err := Parse(data)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

func toNode(op, field string, raw any) (Node, error) {
	switch v := raw.(type) {
	case Node:
		return v, nil
	case map[string]any:
		return Node{fields: v}, nil
	case []float64, []any, []int:
		return Node{fields: map[string]any{FieldType: string(TypeValue), FieldValue: v}}, nil
	case string:
		return Node{}, types.Errorf(op, field, types.ErrInvalidLiteral, "expected a node, got string %q", v)
	}
	if isNumber(raw) {
		return Node{fields: map[string]any{FieldType: string(TypeValue), FieldValue: raw}}, nil
	}
	m, err := cast.ToStringMapE(raw)
	if err != nil {
		return Node{}, types.Errorf(op, field, types.ErrInvalidLiteral, "expected a node, got %T", raw)
	}
	return Node{fields: m}, nil
}

func literal(raw any) (types.Value, error) {
	switch v := raw.(type) {
	case []float64:
		out := make(types.NumericVector, len(v))
		copy(out, v)
		return out, nil
	case []int:
		out := make(types.NumericVector, len(v))
		for i, x := range v {
			out[i] = float64(x)
		}
		return out, nil
	case []any:
		out := make(types.NumericVector, len(v))
		for i, item := range v {
			f, err := number(item)
			if err != nil {
				return nil, types.Errorf("", FieldValue, types.ErrInvalidLiteral, "element %d: %v", i, err)
			}
			out[i] = f
		}
		return out, nil
	}
	f, err := number(raw)
	if err != nil {
		return nil, types.Errorf("", FieldValue, types.ErrInvalidLiteral, "%v", err)
	}
	return types.Numeric(f), nil
}

func isNumber(raw any) bool {
	switch raw.(type) {
	case float64, float32, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, json.Number:
		return true
	}
	return false
}

// number converts a decoded JSON/YAML number. cast would also accept bools
// and numeric strings, so the kind is checked first.
func number(raw any) (float64, error) {
	if !isNumber(raw) {
		return 0, fmt.Errorf("unsupported literal %T", raw)
	}
	return cast.ToFloat64E(raw)
}
