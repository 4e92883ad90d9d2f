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
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rulego/signalql"
	"github.com/rulego/signalql/dataset"
	"github.com/rulego/signalql/query"
	"github.com/rulego/signalql/types"
	"github.com/rulego/signalql/utils/table"
)

// EvalOptions holds flags for the eval command.
type EvalOptions struct {
	*RootOptions
	Data     string        // dataset manifest
	Query    string        // inline JSON query
	Vars     []string      // name=file declarations
	Interval time.Duration // sampling interval when no data is bound
}

// EvalResult is the JSON payload of a successful evaluation.
type EvalResult struct {
	Kind  string      `json:"kind"`
	Value interface{} `json:"value"`
}

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EvalOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "eval [query-file]",
		Short: "Evaluate a query",
		Long: `Evaluate a JSON or YAML query document.

The query is read from query-file (.yaml/.yml files are parsed as YAML) or
given inline with --query. SELECT reads columns from the dataset manifest
passed with --data.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(opts, args, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Data, "data", "d", "", "dataset manifest (yaml or json)")
	cmd.Flags().StringVarP(&opts.Query, "query", "q", "", "inline JSON query")
	cmd.Flags().StringArrayVar(&opts.Vars, "var", nil, "declare a variable from a query file, name=path (repeatable)")
	cmd.Flags().DurationVar(&opts.Interval, "interval", 0, "sampling interval used when no data is bound")

	return cmd
}

func runEval(opts *EvalOptions, args []string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	node, err := readQuery(opts, args)
	if err != nil {
		return inputFailure(formatter, "read query", err)
	}

	cfg, err := opts.loadConfig()
	if err != nil {
		return inputFailure(formatter, "load config", err)
	}
	engineOpts := opts.engineOptions(cfg, cmd.ErrOrStderr())
	if opts.Interval > 0 {
		engineOpts = append(engineOpts, signalql.WithSamplingInterval(opts.Interval))
	}

	var frame *dataset.Frame
	if opts.Data != "" {
		frame, err = dataset.LoadFrame(opts.Data)
		if err != nil {
			return inputFailure(formatter, "load data", err)
		}
		formatter.VerboseLog("Loaded %d row(s) x %d column(s) from %s", frame.RowCount(), len(frame.Columns()), opts.Data)
		engineOpts = append(engineOpts, signalql.WithSource(frame))
	}

	engine := signalql.New(engineOpts...)
	for _, decl := range opts.Vars {
		name, path, ok := strings.Cut(decl, "=")
		if !ok || name == "" {
			return inputFailure(formatter, "declare variable", fmt.Errorf("expected name=path, got %q", decl))
		}
		sub, err := readQueryFile(path)
		if err != nil {
			return inputFailure(formatter, "declare "+name, err)
		}
		if err := engine.Declare(name, sub); err != nil {
			return inputFailure(formatter, "declare "+name, err)
		}
	}

	result, err := engine.ExecuteNode(node)
	if err != nil {
		return evalFailure(formatter, err)
	}
	formatter.VerboseLog("Run %s finished in %s", result.ID, result.Elapsed)

	if err := writeResult(formatter, result.Value, frame); err != nil {
		_ = formatter.Error(ErrCodeOutput, err.Error(), nil)
		return WrapExitError(ExitCommandError, "write result", err)
	}
	return nil
}

func readQuery(opts *EvalOptions, args []string) (query.Node, error) {
	switch {
	case opts.Query != "" && len(args) > 0:
		return query.Node{}, fmt.Errorf("give either a query file or --query, not both")
	case opts.Query != "":
		return query.Parse([]byte(opts.Query))
	case len(args) == 1:
		return readQueryFile(args[0])
	default:
		return query.Node{}, fmt.Errorf("no query given")
	}
}

func readQueryFile(path string) (query.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return query.Node{}, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return query.ParseYAML(data)
	default:
		return query.Parse(data)
	}
}

func writeResult(f *OutputFormatter, v types.Value, frame *dataset.Frame) error {
	switch f.Format {
	case "json":
		return f.Success(EvalResult{Kind: v.Kind().String(), Value: jsonValue(v)})
	case "table":
		return writeTable(f.Writer, v, frame)
	default:
		return f.Success(v)
	}
}

// writeTable prints one row per sample. The time column is present when the
// result is aligned with the bound frame.
func writeTable(w io.Writer, v types.Value, frame *dataset.Frame) error {
	var cells []interface{}
	switch x := v.(type) {
	case types.BoolVector:
		for _, b := range x {
			cells = append(cells, b)
		}
	case types.NumericVector:
		for _, n := range x {
			cells = append(cells, n)
		}
	default:
		return table.Write(w, []map[string]interface{}{{"value": v}}, nil)
	}

	var timestamps []time.Time
	if frame != nil && frame.RowCount() == len(cells) {
		timestamps = frame.Timestamps()
	}
	rows := make([]map[string]interface{}, len(cells))
	for i, c := range cells {
		row := map[string]interface{}{"row": i, "value": c}
		if timestamps != nil {
			row["time"] = timestamps[i].Format("15:04:05.000")
		}
		rows[i] = row
	}
	return table.Write(w, rows, []string{"row", "time", "value"})
}
