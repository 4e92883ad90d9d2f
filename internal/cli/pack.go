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
	"os"

	"github.com/spf13/cobra"

	"github.com/rulego/signalql/dataset"
)

// PackOptions holds flags for the pack command.
type PackOptions struct {
	*RootOptions
	Data   string
	Output string
}

// PackResult is the JSON payload of the pack command.
type PackResult struct {
	Path    string   `json:"path"`
	Columns []string `json:"columns"`
	Rows    int      `json:"rows"`
	Bytes   int      `json:"bytes"`
}

// NewPackCommand creates the pack command.
func NewPackCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PackOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "pack",
		Short: "Encode a dataset manifest as a mebo blob",
		Long: `Build the frame described by a dataset manifest, including derived
columns, and write it as a mebo numeric blob. The blob can be referenced
from another manifest with source.format: mebo.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPack(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Data, "data", "d", "", "dataset manifest (yaml or json)")
	cmd.Flags().StringVarP(&opts.Output, "out", "o", "", "output blob path")
	_ = cmd.MarkFlagRequired("data")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func runPack(opts *PackOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	frame, err := dataset.LoadFrame(opts.Data)
	if err != nil {
		return inputFailure(formatter, "load data", err)
	}
	blob, err := dataset.EncodeMebo(frame)
	if err != nil {
		return inputFailure(formatter, "encode", err)
	}
	if err := os.WriteFile(opts.Output, blob, 0o644); err != nil {
		_ = formatter.Error(ErrCodeOutput, err.Error(), nil)
		return WrapExitError(ExitCommandError, "write blob", err)
	}

	result := PackResult{
		Path:    opts.Output,
		Columns: frame.Columns(),
		Rows:    frame.RowCount(),
		Bytes:   len(blob),
	}
	if formatter.Format == "json" {
		return formatter.Success(result)
	}
	return formatter.Success(fmt.Sprintf("✓ Packed %d column(s) x %d row(s) into %s (%d bytes)",
		len(result.Columns), result.Rows, result.Path, result.Bytes))
}
