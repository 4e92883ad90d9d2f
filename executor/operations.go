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

package executor

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rulego/signalql/operator"
	"github.com/rulego/signalql/query"
	"github.com/rulego/signalql/types"
)

// Category groups operations for listing.
type Category string

const (
	CategoryCompare    Category = "compare"
	CategoryArithmetic Category = "arithmetic"
	CategoryLogical    Category = "logical"
	CategoryAggregate  Category = "aggregate"
	CategoryTemporal   Category = "temporal"
	CategoryData       Category = "data"
)

// handler evaluates one operation node. name is the upper-cased operation
// name the node was dispatched under.
type handler func(e *Executor, node query.Node, name string) (types.Value, error)

// Operation describes one entry of the dispatch table.
type Operation struct {
	Name        string
	Category    Category
	Fields      []string
	Description string

	handler handler
}

// operations is built once and never modified afterwards.
var operations = map[string]*Operation{}

func init() {
	for _, op := range builtinOperations {
		operations[op.Name] = op
	}
}

// Operations lists the supported operations ordered by category and name.
func Operations() []Operation {
	out := make([]Operation, 0, len(operations))
	for _, op := range operations {
		out = append(out, *op)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return categoryRank[out[i].Category] < categoryRank[out[j].Category]
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Lookup returns the operation registered under name.
func Lookup(name string) (Operation, bool) {
	op, ok := operations[name]
	if !ok {
		return Operation{}, false
	}
	return *op, true
}

var categoryRank = map[Category]int{
	CategoryData:       0,
	CategoryCompare:    1,
	CategoryArithmetic: 2,
	CategoryLogical:    3,
	CategoryAggregate:  4,
	CategoryTemporal:   5,
}

var (
	binaryFields   = []string{query.FieldLeft, query.FieldRight}
	valueFields    = []string{query.FieldValue}
	operandsFields = []string{query.FieldOperands}
)

var builtinOperations = []*Operation{
	{Name: "SELECT", Category: CategoryData, Fields: valueFields, Description: "column of the bound data source", handler: selectColumn},

	{Name: "EQ", Category: CategoryCompare, Fields: binaryFields, Description: "left == right", handler: compare},
	{Name: "NE", Category: CategoryCompare, Fields: binaryFields, Description: "left != right", handler: compare},
	{Name: "LT", Category: CategoryCompare, Fields: binaryFields, Description: "left < right", handler: compare},
	{Name: "LE", Category: CategoryCompare, Fields: binaryFields, Description: "left <= right", handler: compare},
	{Name: "GT", Category: CategoryCompare, Fields: binaryFields, Description: "left > right", handler: compare},
	{Name: "GE", Category: CategoryCompare, Fields: binaryFields, Description: "left >= right", handler: compare},

	{Name: "ADD", Category: CategoryArithmetic, Fields: binaryFields, Description: "left + right", handler: arithmetic},
	{Name: "SUB", Category: CategoryArithmetic, Fields: binaryFields, Description: "left - right", handler: arithmetic},
	{Name: "MUL", Category: CategoryArithmetic, Fields: binaryFields, Description: "left * right", handler: arithmetic},
	{Name: "DIV", Category: CategoryArithmetic, Fields: binaryFields, Description: "left / right, IEEE division", handler: arithmetic},
	{Name: "POW", Category: CategoryArithmetic, Fields: binaryFields, Description: "left raised to right", handler: arithmetic},
	{Name: "ABS", Category: CategoryArithmetic, Fields: valueFields, Description: "absolute value", handler: abs},

	{Name: "AND", Category: CategoryLogical, Fields: operandsFields, Description: "true where every operand is true", handler: logical},
	{Name: "OR", Category: CategoryLogical, Fields: operandsFields, Description: "true where any operand is true", handler: logical},

	{Name: "MAX", Category: CategoryAggregate, Fields: valueFields, Description: "largest sample", handler: aggregate},
	{Name: "MIN", Category: CategoryAggregate, Fields: valueFields, Description: "smallest sample", handler: aggregate},
	{Name: "AVG", Category: CategoryAggregate, Fields: valueFields, Description: "arithmetic mean", handler: aggregate},
	{
		Name:        "COUNT",
		Category:    CategoryAggregate,
		Fields:      []string{query.FieldValue, query.FieldInitialValue, query.FieldUnit},
		Description: "true samples * initialValue + unit",
		handler:     count,
	},

	{
		Name:        "JUMP",
		Category:    CategoryTemporal,
		Fields:      []string{query.FieldValue, query.FieldFrom, query.FieldTo},
		Description: "one-sample transition from a value in from to a value in to",
		handler:     jump,
	},
	{
		Name:        "HOLD",
		Category:    CategoryTemporal,
		Fields:      []string{query.FieldValue, query.FieldFrom, query.FieldTo, query.FieldDuration},
		Description: "transition followed by a stay of at least duration seconds; negative duration scans backwards",
		handler:     hold,
	},
	{
		Name:        "AFTER",
		Category:    CategoryTemporal,
		Fields:      []string{query.FieldValue, query.FieldFrom, query.FieldTo, query.FieldDuration},
		Description: "crossing of from, then at or past to for at least duration seconds",
		handler:     after,
	},
	{
		Name:        "DURATION",
		Category:    CategoryTemporal,
		Fields:      []string{query.FieldValue, query.FieldMinDuration},
		Description: "drops true runs shorter than minDuration seconds",
		handler:     minDuration,
	},
	{Name: "BEFORE", Category: CategoryTemporal, Description: "placeholder, always true", handler: before},
}

func compare(e *Executor, node query.Node, name string) (types.Value, error) {
	left, right, err := e.binary(node, name)
	if err != nil {
		return nil, err
	}
	return operator.Compare(name, left, right)
}

func arithmetic(e *Executor, node query.Node, name string) (types.Value, error) {
	left, right, err := e.binary(node, name)
	if err != nil {
		return nil, err
	}
	return operator.Arithmetic(name, left, right)
}

func (e *Executor) binary(node query.Node, name string) (types.Value, types.Value, error) {
	left, err := e.eval(node, name, query.FieldLeft)
	if err != nil {
		return nil, nil, err
	}
	right, err := e.eval(node, name, query.FieldRight)
	if err != nil {
		return nil, nil, err
	}
	return left, right, nil
}

func abs(e *Executor, node query.Node, name string) (types.Value, error) {
	v, err := e.eval(node, name, query.FieldValue)
	if err != nil {
		return nil, err
	}
	return operator.Abs(v)
}

func logical(e *Executor, node query.Node, name string) (types.Value, error) {
	values, err := e.evalAll(node, name, query.FieldOperands)
	if err != nil {
		return nil, err
	}
	return operator.Logical(name, values)
}

func aggregate(e *Executor, node query.Node, name string) (types.Value, error) {
	v, err := e.eval(node, name, query.FieldValue)
	if err != nil {
		return nil, err
	}
	return operator.Aggregate(name, v)
}

func count(e *Executor, node query.Node, name string) (types.Value, error) {
	values, err := e.boolVector(node, name, query.FieldValue)
	if err != nil {
		return nil, err
	}
	initial, err := e.numeric(node, name, query.FieldInitialValue)
	if err != nil {
		return nil, err
	}
	unit, err := e.numeric(node, name, query.FieldUnit)
	if err != nil {
		return nil, err
	}
	return types.Numeric(operator.Count(values, initial, unit)), nil
}

func (e *Executor) memberSets(node query.Node, name string) (from, to operator.MemberSet, err error) {
	fromValue, err := e.eval(node, name, query.FieldFrom)
	if err != nil {
		return nil, nil, err
	}
	if from, err = operator.MemberSetOf(name, query.FieldFrom, fromValue); err != nil {
		return nil, nil, err
	}
	toValue, err := e.eval(node, name, query.FieldTo)
	if err != nil {
		return nil, nil, err
	}
	if to, err = operator.MemberSetOf(name, query.FieldTo, toValue); err != nil {
		return nil, nil, err
	}
	return from, to, nil
}

func jump(e *Executor, node query.Node, name string) (types.Value, error) {
	values, err := e.numericVector(node, name, query.FieldValue)
	if err != nil {
		return nil, err
	}
	from, to, err := e.memberSets(node, name)
	if err != nil {
		return nil, err
	}
	result, err := operator.Jump(values, from, to)
	if err != nil {
		return nil, err
	}
	return types.BoolVector(result), nil
}

func hold(e *Executor, node query.Node, name string) (types.Value, error) {
	values, err := e.numericVector(node, name, query.FieldValue)
	if err != nil {
		return nil, err
	}
	from, to, err := e.memberSets(node, name)
	if err != nil {
		return nil, err
	}
	duration, err := e.numeric(node, name, query.FieldDuration)
	if err != nil {
		return nil, err
	}
	result, err := operator.Hold(values, from, to, duration, e.SamplingInterval())
	if err != nil {
		return nil, withOp(err, name, query.FieldDuration)
	}
	return types.BoolVector(result), nil
}

func after(e *Executor, node query.Node, name string) (types.Value, error) {
	values, err := e.numericVector(node, name, query.FieldValue)
	if err != nil {
		return nil, err
	}
	from, err := e.numeric(node, name, query.FieldFrom)
	if err != nil {
		return nil, err
	}
	to, err := e.numeric(node, name, query.FieldTo)
	if err != nil {
		return nil, err
	}
	duration, err := e.numeric(node, name, query.FieldDuration)
	if err != nil {
		return nil, err
	}
	result, err := operator.After(values, from, to, duration, e.SamplingInterval())
	if err != nil {
		return nil, withOp(err, name, query.FieldDuration)
	}
	return types.BoolVector(result), nil
}

func minDuration(e *Executor, node query.Node, name string) (types.Value, error) {
	values, err := e.boolVector(node, name, query.FieldValue)
	if err != nil {
		return nil, err
	}
	seconds, err := e.numeric(node, name, query.FieldMinDuration)
	if err != nil {
		return nil, err
	}
	result, err := operator.MinDuration(values, seconds, e.SamplingInterval())
	if err != nil {
		return nil, withOp(err, name, query.FieldMinDuration)
	}
	return types.BoolVector(result), nil
}

func before(_ *Executor, _ query.Node, _ string) (types.Value, error) {
	return operator.Before(), nil
}

// selectColumn reads a column named by a bare string or by a value node
// holding a string.
func selectColumn(e *Executor, node query.Node, name string) (types.Value, error) {
	column, err := columnName(node, name)
	if err != nil {
		return nil, err
	}
	if e.source == nil {
		return nil, types.Errorf(name, query.FieldValue, types.ErrNoDataSource, "cannot read column %q", column)
	}
	values, err := e.source.Column(column)
	if err != nil {
		if !errors.Is(err, types.ErrColumnNotFound) {
			err = fmt.Errorf("%w: %q: %v", types.ErrColumnNotFound, column, err)
		}
		return nil, types.NewError(name, query.FieldValue, err)
	}
	return types.NumericVector(values), nil
}

func columnName(node query.Node, name string) (string, error) {
	raw, ok := node.Raw(query.FieldValue)
	if !ok {
		return "", types.Errorf(name, query.FieldValue, types.ErrMissingField, "column name is required")
	}
	if s, ok := raw.(string); ok {
		return s, nil
	}
	child, err := node.Operand(query.FieldValue)
	if err != nil {
		return "", err
	}
	if typ, err := child.Type(); err != nil || typ != query.TypeValue {
		return "", types.Errorf(name, query.FieldValue, types.ErrInvalidLiteral, "column name must be a string or a value node")
	}
	s, err := child.StringField(query.FieldValue)
	if err != nil {
		return "", types.WithPath(err, name+"."+query.FieldValue)
	}
	return s, nil
}

// withOp attributes an error raised below the handler, such as an invalid
// duration, to the operation and field that caused it.
func withOp(err error, name, field string) error {
	var evalErr *types.EvalError
	if errors.As(err, &evalErr) && evalErr.Op == "" {
		evalErr.Op = name
		evalErr.Field = field
		return evalErr
	}
	return err
}
