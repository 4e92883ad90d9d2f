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

package table

import (
	"fmt"
	"io"
	"slices"
)

// minWidth is the narrowest a column is printed.
const minWidth = 4

// Write renders rows as a fixed-width table.
// Columns follow fieldOrder; columns present in the rows but not listed are
// appended in alphabetical order.
func Write(w io.Writer, data []map[string]interface{}, fieldOrder []string) error {
	if len(data) == 0 {
		_, err := fmt.Fprintln(w, "(0 rows)")
		return err
	}

	columns := orderColumns(data, fieldOrder)
	cells := make([][]string, len(data))
	colWidths := make([]int, len(columns))
	for i, col := range columns {
		colWidths[i] = max(len(col), minWidth)
	}
	for r, row := range data {
		cells[r] = make([]string, len(columns))
		for i, col := range columns {
			if v, ok := row[col]; ok {
				cells[r][i] = fmt.Sprintf("%v", v)
			}
			colWidths[i] = max(colWidths[i], len(cells[r][i]))
		}
	}

	p := &printer{w: w}
	p.border(colWidths)
	p.row(columns, colWidths)
	p.border(colWidths)
	for _, row := range cells {
		p.row(row, colWidths)
	}
	p.border(colWidths)
	p.printf("(%d rows)\n", len(data))
	return p.err
}

// orderColumns collects the column names of data.
func orderColumns(data []map[string]interface{}, fieldOrder []string) []string {
	columnSet := make(map[string]bool)
	for _, row := range data {
		for col := range row {
			columnSet[col] = true
		}
	}

	columns := make([]string, 0, len(columnSet))
	for _, field := range fieldOrder {
		if columnSet[field] {
			columns = append(columns, field)
			delete(columnSet, field)
		}
	}
	rest := make([]string, 0, len(columnSet))
	for col := range columnSet {
		rest = append(rest, col)
	}
	slices.Sort(rest)
	return append(columns, rest...)
}

// printer keeps the first write error.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) border(colWidths []int) {
	p.printf("+")
	for _, width := range colWidths {
		for i := 0; i < width+2; i++ {
			p.printf("-")
		}
		p.printf("+")
	}
	p.printf("\n")
}

func (p *printer) row(values []string, colWidths []int) {
	p.printf("|")
	for i, v := range values {
		p.printf(" %-*s |", colWidths[i], v)
	}
	p.printf("\n")
}
