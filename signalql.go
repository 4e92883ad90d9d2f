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
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rulego/signalql/dataset"
	"github.com/rulego/signalql/executor"
	"github.com/rulego/signalql/logger"
	"github.com/rulego/signalql/query"
	"github.com/rulego/signalql/types"
)

// Signalql 是信号查询引擎的主要接口。
// 它持有数据源、采样间隔和已声明的变量，负责解析查询文档并交给executor求值。
//
// 使用示例:
//
//	frame, _ := dataset.NewFrameRows(start, 8, 100*time.Millisecond)
//	_ = dataset.AddColumn(frame, "gear", []uint8{1, 1, 2, 2, 3, 3, 2, 1})
//	sql := signalql.New(signalql.WithSource(frame))
//	result, err := sql.Execute([]byte(`{"type": "operation", "operation": "JUMP",
//		"value": {"type": "operation", "operation": "SELECT", "value": "gear"},
//		"from": 2, "to": 3}`))
type Signalql struct {
	mu       sync.RWMutex
	source   dataset.Source
	interval time.Duration
	threads  int
	vars     map[string]query.Node

	log   logger.Logger
	level *logger.Level
}

// Result 一次求值的结果
type Result struct {
	// ID 每次执行分配的唯一标识，同时出现在日志中
	ID uuid.UUID
	// Value 求值结果
	Value types.Value
	// Elapsed 求值耗时，不含解析
	Elapsed time.Duration
}

// New 创建一个新的Signalql实例。
//
// 示例:
//
//	// 创建默认实例，采样间隔100ms
//	sql := signalql.New()
//
//	// 指定采样间隔并关闭日志
//	sql := signalql.New(signalql.WithSamplingInterval(50*time.Millisecond), signalql.WithDiscardLog())
func New(options ...Option) *Signalql {
	s := &Signalql{
		interval: types.DefaultSamplingInterval,
		threads:  1,
		vars:     map[string]query.Node{},
	}
	for _, option := range options {
		option(s)
	}
	if s.log == nil {
		s.log = logger.GetDefault()
	}
	if s.level != nil {
		s.log.SetLevel(*s.level)
	}
	if s.threads > 1 {
		s.log.Debug("thread count %d requested, evaluation stays single-threaded", s.threads)
	}
	return s
}

// Execute 解析JSON查询文档并求值
func (s *Signalql) Execute(data []byte) (*Result, error) {
	node, err := query.Parse(data)
	if err != nil {
		return nil, err
	}
	return s.ExecuteNode(node)
}

// ExecuteYAML 解析YAML查询文档并求值
func (s *Signalql) ExecuteYAML(data []byte) (*Result, error) {
	node, err := query.ParseYAML(data)
	if err != nil {
		return nil, err
	}
	return s.ExecuteNode(node)
}

// ExecuteNode 对已解析的查询树求值。
// 查询中的变量节点先被替换为已声明的子查询，再交给executor。
// 失败时不返回部分结果。
func (s *Signalql) ExecuteNode(node query.Node) (*Result, error) {
	id := uuid.New()

	s.mu.RLock()
	vars := s.vars
	exec := executor.New(
		executor.WithSource(s.source),
		executor.WithSamplingInterval(s.interval),
		executor.WithThreadCount(s.threads),
	)
	s.mu.RUnlock()

	resolved, err := query.Substitute(node, vars)
	if err != nil {
		s.log.Debug("run %s: %v", id, err)
		return nil, err
	}

	start := time.Now()
	value, err := exec.Run(resolved)
	elapsed := time.Since(start)
	if err != nil {
		s.log.Debug("run %s failed after %s: %v", id, elapsed, err)
		return nil, err
	}
	s.log.Debug("run %s: %s -> %s in %s", id, rootName(resolved), value.Kind(), elapsed)
	return &Result{ID: id, Value: value, Elapsed: elapsed}, nil
}

// Declare 声明一个变量。
// 查询中的 {"type": "variable", "value": name} 节点在求值前被替换为node，
// 重复声明会覆盖之前的值。
func (s *Signalql) Declare(name string, node query.Node) error {
	if name == "" {
		return fmt.Errorf("variable name must not be empty")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	vars := maps.Clone(s.vars)
	vars[name] = node
	s.vars = vars
	return nil
}

// DeclareJSON 解析JSON子查询并声明为变量
func (s *Signalql) DeclareJSON(name string, data []byte) error {
	node, err := query.Parse(data)
	if err != nil {
		return fmt.Errorf("declare %s: %w", name, err)
	}
	return s.Declare(name, node)
}

// Variables 返回已声明的变量名，按字母排序
func (s *Signalql) Variables() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Sorted(maps.Keys(s.vars))
}

// Bind 绑定数据源，之后的执行从该数据源读取列。
// 传入nil解除绑定。
func (s *Signalql) Bind(src dataset.Source) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.source = src
}

// Source 返回当前绑定的数据源
func (s *Signalql) Source() dataset.Source {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.source
}

// SamplingInterval 返回时间类算子使用的采样间隔，绑定数据源时为数据源的间隔
func (s *Signalql) SamplingInterval() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.source != nil {
		return s.source.SamplingInterval()
	}
	return s.interval
}

// rootName 返回查询根节点的名称，用于日志
func rootName(node query.Node) string {
	if name, err := node.Operation(); err == nil {
		return name
	}
	typ, _ := node.Type()
	return string(typ)
}
