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

package signalql

import (
	"io"
	"time"

	"github.com/rulego/signalql/dataset"
	"github.com/rulego/signalql/logger"
	"github.com/rulego/signalql/types"
)

// Option 表示对Signalql默认行为的修改配置。
// 通过函数式选项模式，用户可以灵活地配置求值引擎。
type Option func(*Signalql)

// WithLogger 设置自定义日志记录器。
// 允许用户提供自己的日志实现，支持不同的日志后端和格式。
//
// 参数:
//   - log: 实现了logger.Logger接口的日志记录器
//
// 示例:
//
//	customLogger := logger.NewLogger(logger.DEBUG, os.Stderr)
//	sql := signalql.New(signalql.WithLogger(customLogger))
func WithLogger(log logger.Logger) Option {
	return func(s *Signalql) {
		s.log = log
	}
}

// WithLogLevel 设置日志级别。
// 作用于当前使用的日志记录器，未设置日志记录器时作用于默认记录器。
//
// 参数:
//   - level: 日志级别，可选值：DEBUG, INFO, WARN, ERROR, OFF
//
// 示例:
//
//	// 输出每个算子的调度信息
//	sql := signalql.New(signalql.WithLogLevel(logger.DEBUG))
func WithLogLevel(level logger.Level) Option {
	return func(s *Signalql) {
		s.level = &level
	}
}

// WithLogOutput 设置日志输出目标。
//
// 参数:
//   - output: 日志输出目标，如os.Stdout、os.Stderr或文件
//   - level: 日志级别
//
// 示例:
//
//	sql := signalql.New(signalql.WithLogOutput(os.Stderr, logger.WARN))
func WithLogOutput(output io.Writer, level logger.Level) Option {
	return func(s *Signalql) {
		s.log = logger.NewLogger(level, output)
	}
}

// WithDiscardLog 禁用日志输出
func WithDiscardLog() Option {
	return func(s *Signalql) {
		s.log = logger.NewDiscardLogger()
	}
}

// WithSamplingInterval 设置采样间隔。
// 未绑定数据源时，时间类算子（HOLD、AFTER、DURATION）用它把秒数换算成采样点数；
// 绑定数据源后以数据源的采样间隔为准。
func WithSamplingInterval(d time.Duration) Option {
	return func(s *Signalql) {
		s.interval = d
	}
}

// WithThreadCount 设置线程数。
// 该值仅被保存，求值始终是单线程的。
func WithThreadCount(n int) Option {
	return func(s *Signalql) {
		s.threads = n
	}
}

// WithSource 绑定SELECT读取的数据源
func WithSource(src dataset.Source) Option {
	return func(s *Signalql) {
		s.source = src
	}
}

// WithConfig 使用配置结构体
// 依次应用采样间隔、线程数和日志级别，无法识别的日志级别会被忽略并保留原级别。
//
// 示例:
//
//	cfg, err := types.LoadConfig("signalql.yaml")
//	if err != nil {
//		return err
//	}
//	sql := signalql.New(signalql.WithConfig(cfg))
func WithConfig(cfg types.Config) Option {
	return func(s *Signalql) {
		if cfg.SamplingInterval > 0 {
			s.interval = cfg.SamplingInterval
		}
		s.threads = cfg.ThreadCount
		if level, err := logger.ParseLevel(cfg.LogLevel); err == nil {
			s.level = &level
		}
	}
}
