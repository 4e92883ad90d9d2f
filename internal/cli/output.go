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

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/rulego/signalql/types"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // successful evaluation
	ExitFailure      = 1 // the query failed to evaluate
	ExitCommandError = 2 // unreadable input: query file, manifest, config
)

// Error codes reported in CLI output.
const (
	ErrCodeStructural = "E001"
	ErrCodeType       = "E002"
	ErrCodeShape      = "E003"
	ErrCodeDomain     = "E004"
	ErrCodeInput      = "E010"
	ErrCodeOutput     = "E011"
)

// ExitError carries the process exit code of a failed command.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter writes command results as text or JSON.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // verbose output, keeps JSON on Writer clean
	Verbose   bool
}

// CLIResponse is the JSON envelope of every command.
type CLIResponse struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data,omitempty"`
	Error  *CLIError   `json:"error,omitempty"`
}

// CLIError is the error part of a CLIResponse.
type CLIError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// ErrorDetails describes an evaluation failure.
type ErrorDetails struct {
	Kind string   `json:"kind"`
	Path []string `json:"path,omitempty"`
}

// Success writes data. Text output prints data with %v.
func (f *OutputFormatter) Success(data interface{}) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   data,
		})
	}
	_, err := fmt.Fprintln(f.Writer, data)
	return err
}

// Error writes an error in the configured format.
func (f *OutputFormatter) Error(code, message string, details interface{}) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    code,
				Message: message,
				Details: details,
			},
		})
	}

	fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
	if f.Verbose && details != nil {
		fmt.Fprintf(f.Writer, "Details: %+v\n", details)
	}
	return nil
}

// VerboseLog writes a line to ErrWriter (or Writer) in verbose mode.
func (f *OutputFormatter) VerboseLog(format string, args ...interface{}) {
	if !f.Verbose {
		return
	}
	fmt.Fprintf(f.GetErrWriter(), format+"\n", args...)
}

// GetErrWriter returns ErrWriter if set, otherwise Writer.
func (f *OutputFormatter) GetErrWriter() io.Writer {
	if f.ErrWriter != nil {
		return f.ErrWriter
	}
	return f.Writer
}

// evalFailure reports an evaluation error and converts it to an ExitError.
func evalFailure(f *OutputFormatter, err error) error {
	details := ErrorDetails{Kind: types.KindOf(err).String()}
	var evalErr *types.EvalError
	if errors.As(err, &evalErr) {
		details.Path = evalErr.Path
	}
	code := errorCode(err)
	_ = f.Error(code, err.Error(), details)
	return WrapExitError(ExitFailure, code, err)
}

// inputFailure reports an unreadable input and converts it to an ExitError.
func inputFailure(f *OutputFormatter, message string, err error) error {
	_ = f.Error(ErrCodeInput, fmt.Sprintf("%s: %v", message, err), nil)
	return WrapExitError(ExitCommandError, message, err)
}

func errorCode(err error) string {
	switch types.KindOf(err) {
	case types.ErrKindType:
		return ErrCodeType
	case types.ErrKindShape:
		return ErrCodeShape
	case types.ErrKindDomain:
		return ErrCodeDomain
	default:
		return ErrCodeStructural
	}
}

// jsonNumber keeps non-finite results representable in JSON.
func jsonNumber(f float64) interface{} {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "+Inf"
	case math.IsInf(f, -1):
		return "-Inf"
	default:
		return f
	}
}

// jsonValue converts an evaluation result into JSON-encodable data.
func jsonValue(v types.Value) interface{} {
	switch x := v.(type) {
	case types.Bool:
		return bool(x)
	case types.Numeric:
		return jsonNumber(float64(x))
	case types.BoolVector:
		return []bool(x)
	case types.NumericVector:
		out := make([]interface{}, len(x))
		for i, f := range x {
			out[i] = jsonNumber(f)
		}
		return out
	default:
		return nil
	}
}
