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
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const driveManifest = "testdata/drive.yaml"

func newGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestEvalGolden(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{
			name: "eval_jump_json",
			args: []string{"--format", "json", "eval", "--data", driveManifest, "testdata/queries/jump.json"},
		},
		{
			name: "eval_jump_table",
			args: []string{"--format", "table", "eval", "--data", driveManifest, "testdata/queries/jump.json"},
		},
		{
			name:    "eval_missing_column_json",
			args:    []string{"--format", "json", "eval", "--data", driveManifest, "testdata/queries/missing_column.json"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, tt.args...)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, ExitFailure, GetExitCode(err))
			} else {
				require.NoError(t, err)
			}
			newGoldie(t).Assert(t, tt.name, []byte(out))
		})
	}
}

func TestEvalText(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{
			name:     "bool vector",
			args:     []string{"eval", "--data", driveManifest, "testdata/queries/jump.json"},
			expected: "[0 0 0 0 1 0 0 0]\n",
		},
		{
			name:     "yaml query",
			args:     []string{"eval", "-d", driveManifest, "testdata/queries/count.yaml"},
			expected: "0.4\n",
		},
		{
			name:     "derived column",
			args:     []string{"eval", "-d", driveManifest, "-q", `{"type": "operation", "operation": "MAX", "value": {"type": "operation", "operation": "SELECT", "value": "kmh"}}`},
			expected: "108\n",
		},
		{
			name:     "declared variable",
			args:     []string{"eval", "-d", driveManifest, "--var", "cruising=testdata/queries/cruising.json", "testdata/queries/uses_var.json"},
			expected: "2\n",
		},
		{
			name:     "without data",
			args:     []string{"eval", "-q", `{"type": "operation", "operation": "BEFORE"}`},
			expected: "true\n",
		},
		{
			name: "interval flag",
			args: []string{"eval", "--interval", "150ms", "-q", `{"type": "operation", "operation": "DURATION",
				"value": {"type": "operation", "operation": "GT", "left": [0, 1, 1, 0], "right": 0}, "minDuration": 0.3}`},
			expected: "[0 1 1 0]\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestEvalJSON_NonFinite(t *testing.T) {
	out, _, err := execute(t, "--format", "json", "eval", "-q",
		`{"type": "operation", "operation": "DIV", "left": [1, -1, 0], "right": 0}`)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"ok","data":{"kind":"numeric[]","value":["+Inf","-Inf","NaN"]}}`, out)
}

func TestEvalTable_Scalar(t *testing.T) {
	out, _, err := execute(t, "--format", "table", "eval", "-q", `{"type": "operation", "operation": "ADD", "left": 1, "right": 2}`)
	require.NoError(t, err)
	expected := "" +
		"+-------+\n" +
		"| value |\n" +
		"+-------+\n" +
		"| 3     |\n" +
		"+-------+\n" +
		"(1 rows)\n"
	assert.Equal(t, expected, out)
}

func TestEvalErrors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		exitCode int
		output   string
	}{
		{
			name:     "no query",
			args:     []string{"eval"},
			exitCode: ExitCommandError,
			output:   "Error [E010]: read query: no query given",
		},
		{
			name:     "file and inline query",
			args:     []string{"eval", "-q", "{}", "testdata/queries/jump.json"},
			exitCode: ExitCommandError,
			output:   "not both",
		},
		{
			name:     "missing query file",
			args:     []string{"eval", "testdata/queries/nope.json"},
			exitCode: ExitCommandError,
			output:   "Error [E010]: read query",
		},
		{
			name:     "missing manifest",
			args:     []string{"eval", "-d", "testdata/nope.yaml", "testdata/queries/jump.json"},
			exitCode: ExitCommandError,
			output:   "Error [E010]: load data",
		},
		{
			name:     "bad variable",
			args:     []string{"eval", "--var", "cruising", "testdata/queries/uses_var.json"},
			exitCode: ExitCommandError,
			output:   "expected name=path",
		},
		{
			name:     "undeclared variable",
			args:     []string{"eval", "-d", driveManifest, "testdata/queries/uses_var.json"},
			exitCode: ExitFailure,
			output:   "Error [E001]: structural error",
		},
		{
			name:     "evaluation failure",
			args:     []string{"eval", "-d", driveManifest, "testdata/queries/missing_column.json"},
			exitCode: ExitFailure,
			output:   `Error [E004]: domain error at GT.left: SELECT.value: column not found: "rpm"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.exitCode, GetExitCode(err))
			assert.Contains(t, out, tt.output)
		})
	}
}

func TestEvalConfig(t *testing.T) {
	dir := t.TempDir()
	config := filepath.Join(dir, "signalql.yaml")
	require.NoError(t, os.WriteFile(config, []byte("samplingInterval: 150ms\nlogLevel: debug\n"), 0o644))

	out, errOut, err := execute(t, "--config", config, "eval", "-q", `{"type": "operation", "operation": "DURATION",
		"value": {"type": "operation", "operation": "GT", "left": [0, 1, 1, 0], "right": 0}, "minDuration": 0.3}`)
	require.NoError(t, err)
	assert.Equal(t, "[0 1 1 0]\n", out)
	assert.Contains(t, errOut, "DURATION -> bool[] in")

	_, _, err = execute(t, "--config", filepath.Join(dir, "missing.yaml"), "eval", "-q", `{"type": "value", "value": 1}`)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestEvalVerbose(t *testing.T) {
	_, errOut, err := execute(t, "-v", "eval", "-d", driveManifest, "testdata/queries/jump.json")
	require.NoError(t, err)
	assert.Contains(t, errOut, "Loaded 8 row(s) x 3 column(s)")
	assert.Contains(t, errOut, "JUMP -> bool[] in")
	assert.Contains(t, errOut, "Run ")
}

func TestPack(t *testing.T) {
	dir := t.TempDir()
	blob := filepath.Join(dir, "drive.mebo")

	out, _, err := execute(t, "pack", "--data", driveManifest, "--out", blob)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Packed 3 column(s) x 8 row(s) into "+blob)

	info, err := os.Stat(blob)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	manifest := filepath.Join(dir, "packed.yaml")
	require.NoError(t, os.WriteFile(manifest, []byte("source:\n  format: mebo\n  path: drive.mebo\n  columns: [gear, kmh]\n"), 0o644))

	out, _, err = execute(t, "eval", "-d", manifest, "testdata/queries/jump.json")
	require.NoError(t, err)
	assert.Equal(t, "[0 0 0 0 1 0 0 0]\n", out)

	out, _, err = execute(t, "eval", "-d", manifest, "-q",
		`{"type": "operation", "operation": "AVG", "value": {"type": "operation", "operation": "SELECT", "value": "kmh"}}`)
	require.NoError(t, err)
	assert.Equal(t, "58.5\n", out)
}

func TestPackJSON(t *testing.T) {
	blob := filepath.Join(t.TempDir(), "drive.mebo")
	out, _, err := execute(t, "--format", "json", "pack", "-d", driveManifest, "-o", blob)
	require.NoError(t, err)
	assert.Contains(t, out, `"columns":["gear","speed","kmh"]`)
	assert.Contains(t, out, `"rows":8`)
}

func TestPackErrors(t *testing.T) {
	_, _, err := execute(t, "pack", "--out", filepath.Join(t.TempDir(), "x.mebo"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")

	_, _, err = execute(t, "pack", "-d", "testdata/nope.yaml", "-o", filepath.Join(t.TempDir(), "x.mebo"))
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
