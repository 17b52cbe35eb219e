// Copyright 2022 Intel Corporation. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package output renders per-file scan rows as an aligned table, raw
// whitespace-separated lines, or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"
)

// Column identifies one renderable field of a row.
type Column int

const (
	// ColPages is the resident page count.
	ColPages Column = iota
	// ColSize is the file size.
	ColSize
	// ColFile is the file name.
	ColFile
	// ColRes is the resident size in bytes.
	ColRes
	// ColNodes is the per-NUMA-node page distribution.
	ColNodes
)

var colNames = map[Column]string{
	ColPages: "PAGES",
	ColSize:  "SIZE",
	ColFile:  "FILE",
	ColRes:   "RES",
	ColNodes: "NODES",
}

// ParseColumns turns a comma-separated column list into Columns.
// Names are case-insensitive.
func ParseColumns(list string) ([]Column, error) {
	columns := []Column{}
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		found := false
		for col, colName := range colNames {
			if strings.EqualFold(name, colName) {
				columns = append(columns, col)
				found = true
				break
			}
		}
		if !found {
			return nil, errors.Errorf("unknown column: %q", name)
		}
	}
	return columns, nil
}

// DefaultColumns returns the columns rendered when the user selects
// none. The NODES column appears only when a breakdown was collected.
func DefaultColumns(nodes bool) []Column {
	columns := []Column{ColRes, ColPages, ColSize, ColFile}
	if nodes {
		columns = append(columns, ColNodes)
	}
	return columns
}

// Row is one file's scan outcome as named fields.
type Row struct {
	File     string
	Size     int64
	Pages    int64
	Resident int64
	// Nodes maps NUMA node id to resident page count. nil when no
	// breakdown was collected.
	Nodes map[int]int64
}

// Options selects the output format.
type Options struct {
	Columns    []Column
	Bytes      bool
	NoHeadings bool
	JSON       bool
	Raw        bool
}

// Table accumulates rows and renders them in one of the supported
// formats.
type Table struct {
	opts Options
	rows []Row
}

// New creates an empty table.
func New(opts Options) *Table {
	return &Table{opts: opts}
}

// Add appends one row.
func (t *Table) Add(row Row) {
	t.rows = append(t.rows, row)
}

// Render writes all accumulated rows to w.
func (t *Table) Render(w io.Writer) error {
	if t.opts.JSON {
		return t.renderJSON(w)
	}
	if t.opts.Raw {
		return t.renderRaw(w)
	}
	return t.renderTable(w)
}

func (t *Table) cell(row Row, col Column) string {
	switch col {
	case ColFile:
		return row.File
	case ColPages:
		return strconv.FormatInt(row.Pages, 10)
	case ColSize:
		return t.size(row.Size)
	case ColRes:
		return t.size(row.Resident)
	case ColNodes:
		return nodesCell(row.Nodes)
	}
	return ""
}

func (t *Table) size(v int64) string {
	if t.opts.Bytes {
		return strconv.FormatInt(v, 10)
	}
	return humanSize(v)
}

func nodesCell(nodes map[int]int64) string {
	ids := make([]int, 0, len(nodes))
	for id := range nodes {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, fmt.Sprintf("[%d]=%d", id, nodes[id]))
	}
	return strings.Join(parts, " ")
}

func (t *Table) renderTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', tabwriter.AlignRight)
	if !t.opts.NoHeadings {
		if err := writeLine(tw, t.headings()); err != nil {
			return err
		}
	}
	for _, row := range t.rows {
		if err := writeLine(tw, t.cells(row)); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func (t *Table) renderRaw(w io.Writer) error {
	if !t.opts.NoHeadings {
		if _, err := fmt.Fprintln(w, strings.Join(t.headings(), " ")); err != nil {
			return err
		}
	}
	for _, row := range t.rows {
		if _, err := fmt.Fprintln(w, strings.Join(t.cells(row), " ")); err != nil {
			return err
		}
	}
	return nil
}

func (t *Table) renderJSON(w io.Writer) error {
	lines := make([]map[string]interface{}, 0, len(t.rows))
	for _, row := range t.rows {
		line := map[string]interface{}{}
		for _, col := range t.opts.Columns {
			key := strings.ToLower(colNames[col])
			switch col {
			case ColFile:
				line[key] = row.File
			case ColPages:
				line[key] = row.Pages
			case ColSize:
				line[key] = row.Size
			case ColRes:
				line[key] = row.Resident
			case ColNodes:
				line[key] = nodesCell(row.Nodes)
			}
		}
		lines = append(lines, line)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "   ")
	if err := enc.Encode(map[string]interface{}{"fincore": lines}); err != nil {
		return errors.Wrap(err, "failed to encode output")
	}
	return nil
}

func (t *Table) headings() []string {
	headings := make([]string, 0, len(t.opts.Columns))
	for _, col := range t.opts.Columns {
		headings = append(headings, colNames[col])
	}
	return headings
}

func (t *Table) cells(row Row) []string {
	cells := make([]string, 0, len(t.opts.Columns))
	for _, col := range t.opts.Columns {
		cells = append(cells, t.cell(row, col))
	}
	return cells
}

func writeLine(w io.Writer, cells []string) error {
	_, err := fmt.Fprintln(w, strings.Join(cells, "\t")+"\t")
	return err
}

// humanSize renders a byte count with a one-letter 1024-based suffix,
// one decimal at most, "4K", "1.1G" style.
func humanSize(size int64) string {
	if size < 1024 {
		return strconv.FormatInt(size, 10) + "B"
	}
	units := "KMGTPE"
	div, exp := int64(1024), 0
	for n := size / 1024; n >= 1024; n /= 1024 {
		div *= 1024
		exp++
	}
	s := strconv.FormatFloat(float64(size)/float64(div), 'f', 1, 64)
	s = strings.TrimSuffix(s, ".0")
	return s + string(units[exp])
}
