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
	"slices"

	"github.com/spf13/cobra"

	"github.com/rulego/signalql"
	"github.com/rulego/signalql/logger"
	"github.com/rulego/signalql/types"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "text" | "json" | "table"
	Config  string // engine config file
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json", "table"}

// NewRootCommand creates the root command of the signalql CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "signalql",
		Short: "signalql - temporal signal queries",
		Long:  "Evaluate declarative JUMP/HOLD/AFTER/DURATION queries over fixed-interval sampled signals.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json|table)")
	cmd.PersistentFlags().StringVarP(&opts.Config, "config", "c", "", "engine config file (yaml)")

	cmd.AddCommand(NewEvalCommand(opts))
	cmd.AddCommand(NewPackCommand(opts))
	cmd.AddCommand(NewOpsCommand(opts))

	return cmd
}

// loadConfig reads the --config file, or returns the defaults.
func (o *RootOptions) loadConfig() (types.Config, error) {
	if o.Config == "" {
		return types.DefaultConfig(), nil
	}
	return types.LoadConfig(o.Config)
}

// engineOptions builds the engine options shared by commands. Logs go to
// errOut; --verbose raises the level to DEBUG.
func (o *RootOptions) engineOptions(cfg types.Config, errOut io.Writer) []signalql.Option {
	opts := []signalql.Option{
		signalql.WithLogOutput(errOut, logger.WARN),
		signalql.WithConfig(cfg),
	}
	if o.Config == "" {
		// without a config file only --verbose changes the level
		opts = append(opts, signalql.WithLogLevel(logger.WARN))
	}
	if o.Verbose {
		opts = append(opts, signalql.WithLogLevel(logger.DEBUG))
	}
	return opts
}
