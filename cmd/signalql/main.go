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

// Command signalql evaluates temporal signal queries from the command line.
//
//	signalql eval --data drive.yaml query.json
//	signalql eval --format table --data drive.yaml -q '{"type": "operation", "operation": "BEFORE"}'
//	signalql pack --data drive.yaml --out drive.mebo
//	signalql ops
package main

import (
	"os"

	"github.com/rulego/signalql/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(cli.GetExitCode(err))
	}
}
