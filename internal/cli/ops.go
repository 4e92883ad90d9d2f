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
	"strings"

	"github.com/spf13/cobra"

	"github.com/rulego/signalql/executor"
	"github.com/rulego/signalql/utils/table"
)

// OpInfo is the JSON form of one operation.
type OpInfo struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Fields      []string `json:"fields"`
	Description string   `json:"description"`
}

// NewOpsCommand creates the ops command.
func NewOpsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "ops",
		Short:         "List supported operations",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOps(rootOpts, cmd)
		},
	}
}

func runOps(opts *RootOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format: opts.Format,
		Writer: cmd.OutOrStdout(),
	}

	ops := executor.Operations()
	if formatter.Format == "json" {
		infos := make([]OpInfo, len(ops))
		for i, op := range ops {
			fields := op.Fields
			if fields == nil {
				fields = []string{}
			}
			infos[i] = OpInfo{
				Name:        op.Name,
				Category:    string(op.Category),
				Fields:      fields,
				Description: op.Description,
			}
		}
		return formatter.Success(infos)
	}

	rows := make([]map[string]interface{}, len(ops))
	for i, op := range ops {
		rows[i] = map[string]interface{}{
			"operation":   op.Name,
			"category":    string(op.Category),
			"fields":      strings.Join(op.Fields, ", "),
			"description": op.Description,
		}
	}
	return table.Write(formatter.Writer, rows, []string{"operation", "category", "fields", "description"})
}
