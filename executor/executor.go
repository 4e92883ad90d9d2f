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
	"fmt"
	"strconv"
	"time"

	"github.com/rulego/signalql/dataset"
	"github.com/rulego/signalql/query"
	"github.com/rulego/signalql/types"
)

// Executor evaluates query trees. It holds no mutable state after New, so
// one Executor may serve concurrent Run calls.
type Executor struct {
	source   dataset.Source
	interval time.Duration
	threads  int
}

// Option configures an Executor.
type Option func(*Executor)

// WithSource binds the data source read by SELECT. Its sampling interval
// takes precedence over WithSamplingInterval.
func WithSource(src dataset.Source) Option {
	return func(e *Executor) {
		e.source = src
	}
}

// WithSamplingInterval sets the interval used to convert durations when no
// source is bound.
func WithSamplingInterval(d time.Duration) Option {
	return func(e *Executor) {
		e.interval = d
	}
}

// WithThreadCount records the requested worker count. Evaluation is
// single-threaded; the value is kept for configuration round trips only.
func WithThreadCount(n int) Option {
	return func(e *Executor) {
		e.threads = n
	}
}

// New creates an Executor.
func New(opts ...Option) *Executor {
	e := &Executor{
		interval: types.DefaultSamplingInterval,
		threads:  1,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Source returns the bound data source, or nil.
func (e *Executor) Source() dataset.Source {
	return e.source
}

// SamplingInterval returns the interval durations are converted with.
func (e *Executor) SamplingInterval() time.Duration {
	if e.source != nil {
		return e.source.SamplingInterval()
	}
	return e.interval
}

// ThreadCount returns the configured thread count.
func (e *Executor) ThreadCount() int {
	return e.threads
}

// Run evaluates node. Value nodes yield their literal; operation nodes are
// dispatched by name and evaluate their own operands. The first error
// aborts the evaluation.
func (e *Executor) Run(node query.Node) (types.Value, error) {
	typ, err := node.Type()
	if err != nil {
		return nil, err
	}
	switch typ {
	case query.TypeValue:
		return node.Literal()
	case query.TypeOperation:
		name, err := node.Operation()
		if err != nil {
			return nil, err
		}
		op, ok := operations[name]
		if !ok {
			return nil, types.Errorf(name, "", types.ErrUnknownOperation, "no operation named %s", name)
		}
		return op.handler(e, node, name)
	case query.TypeVariable:
		return nil, types.Errorf("", query.FieldType, types.ErrUnknownNodeType, "variable %v was not substituted", describe(node))
	default:
		return nil, types.Errorf("", query.FieldType, types.ErrUnknownNodeType, "%q", typ)
	}
}

func describe(node query.Node) string {
	raw, _ := node.Raw(query.FieldValue)
	if s, ok := raw.(string); ok {
		return strconv.Quote(s)
	}
	return fmt.Sprint(raw)
}

// eval evaluates the operand stored under field of an operation node.
func (e *Executor) eval(node query.Node, op, field string) (types.Value, error) {
	child, err := node.Operand(field)
	if err != nil {
		return nil, err
	}
	v, err := e.Run(child)
	if err != nil {
		return nil, types.WithPath(err, op+"."+field)
	}
	return v, nil
}

// evalAll evaluates every node of a list operand in order.
func (e *Executor) evalAll(node query.Node, op, field string) ([]types.Value, error) {
	children, err := node.Operands(field)
	if err != nil {
		return nil, err
	}
	values := make([]types.Value, len(children))
	for i, child := range children {
		v, err := e.Run(child)
		if err != nil {
			return nil, types.WithPath(err, fmt.Sprintf("%s.%s[%d]", op, field, i))
		}
		values[i] = v
	}
	return values, nil
}

func (e *Executor) numeric(node query.Node, op, field string) (float64, error) {
	v, err := e.eval(node, op, field)
	if err != nil {
		return 0, err
	}
	n, ok := v.(types.Numeric)
	if !ok {
		return 0, types.TypeError(op, field, v, types.KindNumeric)
	}
	return float64(n), nil
}

func (e *Executor) numericVector(node query.Node, op, field string) ([]float64, error) {
	v, err := e.eval(node, op, field)
	if err != nil {
		return nil, err
	}
	vec, ok := v.(types.NumericVector)
	if !ok {
		return nil, types.TypeError(op, field, v, types.KindNumericVector)
	}
	return vec, nil
}

func (e *Executor) boolVector(node query.Node, op, field string) ([]bool, error) {
	v, err := e.eval(node, op, field)
	if err != nil {
		return nil, err
	}
	vec, ok := v.(types.BoolVector)
	if !ok {
		return nil, types.TypeError(op, field, v, types.KindBoolVector)
	}
	return vec, nil
}
