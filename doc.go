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

/*
Package signalql 是一个面向定长采样时间序列的声明式信号查询引擎。

查询是一棵JSON（或YAML）对象树，每个节点是数值字面量、算子调用或变量。
引擎对整棵树递归求值，结果是四种值之一：布尔、数值、布尔向量、数值向量。

# 核心特性

• 时间类算子 - JUMP、HOLD、AFTER、DURATION，按采样间隔把秒数换算为采样点数
• 比较与算术 - EQ、NE、LT、LE、GT、GE、ADD、SUB、MUL、DIV、POW、ABS，标量自动广播
• 逻辑与聚合 - AND、OR、COUNT、MAX、MIN、AVG
• 数据源 - SELECT 从绑定的 dataset.Source 读取列，dataset.Frame 支持 mebo 编码和派生列
• 变量 - Declare 声明子查询，查询中的变量节点在求值前被替换

# 入门示例

检测档位从2切换到3的时刻：

	package main

	import (
		"fmt"
		"time"

		"github.com/rulego/signalql"
		"github.com/rulego/signalql/dataset"
	)

	func main() {
		start := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
		frame, _ := dataset.NewFrameRows(start, 8, 100*time.Millisecond)
		_ = dataset.AddColumn(frame, "gear", []uint8{1, 1, 2, 2, 3, 3, 2, 1})

		sql := signalql.New(signalql.WithSource(frame))
		result, err := sql.Execute([]byte(`{
			"type": "operation", "operation": "JUMP",
			"value": {"type": "operation", "operation": "SELECT", "value": "gear"},
			"from": 2, "to": 3
		}`))
		if err != nil {
			panic(err)
		}
		fmt.Println(result.Value) // [0 0 0 0 1 0 0 0]
	}

# 时间换算

HOLD、AFTER、DURATION 的秒数参数按 round(|秒数| / 采样间隔) 换算成采样点数。
绑定数据源时使用数据源的采样间隔，否则使用 WithSamplingInterval 设置的值（默认100ms）。
HOLD 的负时长表示从后向前扫描。

# 错误处理

所有求值失败都返回 *types.EvalError，Kind 字段区分结构、类型、形状、领域四类错误，
Path 记录从根节点到出错节点的算子路径。可以用 errors.Is 判断具体原因：

	_, err := sql.Execute(doc)
	if errors.Is(err, types.ErrColumnNotFound) {
		// 列不存在
	}

# 构建查询

query 包提供构建器，可以在代码中组装查询并序列化：

	q := query.Op("COUNT", query.Fields{
		"value":        query.Op("GT", query.Fields{"left": query.Select("speed"), "right": 20}),
		"initialValue": 0.1,
		"unit":         0,
	})
	result, err := sql.ExecuteNode(q)
*/
package signalql
