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
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies evaluation failures.
type ErrorKind int

const (
	// ErrKindStructural covers malformed nodes, missing fields and unknown
	// operators or literal kinds.
	ErrKindStructural ErrorKind = iota
	// ErrKindType covers operand kinds an operator does not accept.
	ErrKindType
	// ErrKindShape covers vectors of different lengths.
	ErrKindShape
	// ErrKindDomain covers empty inputs, unresolved columns and invalid
	// numeric parameters.
	ErrKindDomain
)

func (k ErrorKind) String() string {
	switch k {
	case ErrKindStructural:
		return "structural"
	case ErrKindType:
		return "type"
	case ErrKindShape:
		return "shape"
	case ErrKindDomain:
		return "domain"
	default:
		return "unknown"
	}
}

var (
	ErrMissingField     = errors.New("missing field")
	ErrUnknownOperation = errors.New("unknown operation")
	ErrUnknownNodeType  = errors.New("unknown node type")
	ErrInvalidLiteral   = errors.New("invalid literal")
	ErrUnknownVariable  = errors.New("unknown variable")

	ErrUnsupportedType = errors.New("unsupported operand type")

	ErrLengthMismatch = errors.New("vector length mismatch")

	ErrEmptyOperands   = errors.New("no operands")
	ErrEmptyInput      = errors.New("empty input")
	ErrEmptyMembership = errors.New("from and to are both empty")
	ErrNoDataSource    = errors.New("no data source bound")
	ErrColumnNotFound  = errors.New("column not found")
	ErrInvalidInterval = errors.New("invalid sampling interval")
	ErrInvalidDuration = errors.New("invalid duration")
)

var sentinelKinds = map[error]ErrorKind{
	ErrMissingField:     ErrKindStructural,
	ErrUnknownOperation: ErrKindStructural,
	ErrUnknownNodeType:  ErrKindStructural,
	ErrInvalidLiteral:   ErrKindStructural,
	ErrUnknownVariable:  ErrKindStructural,
	ErrUnsupportedType:  ErrKindType,
	ErrLengthMismatch:   ErrKindShape,
	ErrEmptyOperands:    ErrKindDomain,
	ErrEmptyInput:       ErrKindDomain,
	ErrEmptyMembership:  ErrKindDomain,
	ErrNoDataSource:     ErrKindDomain,
	ErrColumnNotFound:   ErrKindDomain,
	ErrInvalidInterval:  ErrKindDomain,
	ErrInvalidDuration:  ErrKindDomain,
}

// KindOf returns the taxonomy bucket of err. Errors outside the taxonomy
// are reported as structural.
func KindOf(err error) ErrorKind {
	var evalErr *EvalError
	if errors.As(err, &evalErr) {
		return evalErr.Kind
	}
	for sentinel, kind := range sentinelKinds {
		if errors.Is(err, sentinel) {
			return kind
		}
	}
	return ErrKindStructural
}

// EvalError is returned by every failing evaluation. Path records the
// operation chain from the root to the failing node, e.g. COUNT.value/AND.
type EvalError struct {
	Kind  ErrorKind
	Op    string
	Field string
	Path  []string
	Err   error
}

func (e *EvalError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Kind.String())
	sb.WriteString(" error")
	if len(e.Path) > 0 {
		sb.WriteString(" at ")
		sb.WriteString(strings.Join(e.Path, "/"))
	}
	if e.Op != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Op)
		if e.Field != "" {
			sb.WriteByte('.')
			sb.WriteString(e.Field)
		}
	}
	sb.WriteString(": ")
	sb.WriteString(e.Err.Error())
	return sb.String()
}

func (e *EvalError) Unwrap() error {
	return e.Err
}

// NewError builds an EvalError whose kind is derived from the wrapped
// sentinel.
func NewError(op, field string, err error) *EvalError {
	return &EvalError{Kind: KindOf(err), Op: op, Field: field, Err: err}
}

// Errorf wraps sentinel with a formatted detail message.
func Errorf(op, field string, sentinel error, format string, args ...interface{}) *EvalError {
	return &EvalError{
		Kind:  KindOf(sentinel),
		Op:    op,
		Field: field,
		Err:   fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...)),
	}
}

// TypeError reports an operand kind the operator cannot consume.
func TypeError(op, field string, got Value, want ...Kind) *EvalError {
	names := make([]string, len(want))
	for i, k := range want {
		names[i] = k.String()
	}
	gotName := "nil"
	if got != nil {
		gotName = got.Kind().String()
	}
	return Errorf(op, field, ErrUnsupportedType, "got %s, want %s", gotName, strings.Join(names, " or "))
}

// WithPath prefixes the operation path of an EvalError; other errors are
// converted first.
func WithPath(err error, segment string) error {
	if err == nil {
		return nil
	}
	evalErr, ok := err.(*EvalError)
	if !ok {
		evalErr = NewError("", "", err)
	}
	evalErr.Path = append([]string{segment}, evalErr.Path...)
	return evalErr
}
