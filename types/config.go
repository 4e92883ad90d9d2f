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
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultSamplingInterval is the nominal spacing of samples (100ms).
const DefaultSamplingInterval = 100 * time.Millisecond

// Config 引擎配置
type Config struct {
	// SamplingInterval is used to convert durations into sample counts when
	// no data source is bound. A bound source always wins.
	SamplingInterval time.Duration `json:"samplingInterval" yaml:"samplingInterval"`
	// ThreadCount is accepted and kept, but evaluation is single-threaded.
	ThreadCount int `json:"threadCount" yaml:"threadCount"`
	// LogLevel is one of debug, info, warn, error, off.
	LogLevel string `json:"logLevel" yaml:"logLevel"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		SamplingInterval: DefaultSamplingInterval,
		ThreadCount:      1,
		LogLevel:         "info",
	}
}

// Validate checks the configuration values.
func (c Config) Validate() error {
	if c.SamplingInterval <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidInterval, c.SamplingInterval)
	}
	if c.ThreadCount < 0 {
		return fmt.Errorf("thread count must not be negative, got %d", c.ThreadCount)
	}
	return nil
}

// fileConfig mirrors Config with a textual interval ("100ms", "1s").
type fileConfig struct {
	SamplingInterval string `yaml:"samplingInterval"`
	ThreadCount      *int   `yaml:"threadCount"`
	LogLevel         string `yaml:"logLevel"`
}

// ParseConfig decodes a YAML (or JSON) document on top of DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if fc.SamplingInterval != "" {
		d, err := time.ParseDuration(fc.SamplingInterval)
		if err != nil {
			return cfg, fmt.Errorf("parse config: samplingInterval: %w", err)
		}
		cfg.SamplingInterval = d
	}
	if fc.ThreadCount != nil {
		cfg.ThreadCount = *fc.ThreadCount
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
	return cfg, cfg.Validate()
}

// LoadConfig reads and parses a config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("load config: %w", err)
	}
	return ParseConfig(data)
}
