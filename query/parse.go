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

package query

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/rulego/signalql/types"
	"gopkg.in/yaml.v3"
)

// Parse decodes a JSON query document. The document must be an object.
func Parse(data []byte) (Node, error) {
	var fields map[string]any
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&fields); err != nil {
		return Node{}, types.NewError("", "", fmt.Errorf("%w: %v", types.ErrInvalidLiteral, err))
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Node{}, types.Errorf("", "", types.ErrInvalidLiteral, "trailing data after query document at offset %d", dec.InputOffset())
	}
	if fields == nil {
		return Node{}, types.Errorf("", "", types.ErrMissingField, "query document is empty")
	}
	return Node{fields: fields}, nil
}

// ParseYAML decodes a YAML query document. JSON documents are valid YAML,
// so ParseYAML accepts both.
func ParseYAML(data []byte) (Node, error) {
	var fields map[string]any
	if err := yaml.Unmarshal(data, &fields); err != nil {
		return Node{}, types.NewError("", "", fmt.Errorf("%w: %v", types.ErrInvalidLiteral, err))
	}
	if fields == nil {
		return Node{}, types.Errorf("", "", types.ErrMissingField, "query document is empty")
	}
	return Node{fields: fields}, nil
}
