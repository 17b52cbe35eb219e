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

package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRow() Row {
	return Row{
		File:     "/var/lib/db/data.ibd",
		Size:     8192,
		Pages:    2,
		Resident: 8192,
		Nodes:    map[int]int64{0: 1, 1: 1},
	}
}

func TestParseColumns(t *testing.T) {
	columns, err := ParseColumns("pages,FILE, res")
	require.NoError(t, err)
	assert.Equal(t, []Column{ColPages, ColFile, ColRes}, columns)

	_, err = ParseColumns("PAGES,BOGUS")
	assert.Error(t, err)
}

func TestDefaultColumns(t *testing.T) {
	assert.Equal(t, []Column{ColRes, ColPages, ColSize, ColFile}, DefaultColumns(false))
	assert.Contains(t, DefaultColumns(true), ColNodes)
}

func TestRenderRaw(t *testing.T) {
	tb := New(Options{Columns: []Column{ColPages, ColSize, ColFile}, Bytes: true, Raw: true})
	tb.Add(sampleRow())
	buf := &bytes.Buffer{}
	require.NoError(t, tb.Render(buf))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "PAGES SIZE FILE", lines[0])
	assert.Equal(t, "2 8192 /var/lib/db/data.ibd", lines[1])
}

func TestRenderRawNoHeadings(t *testing.T) {
	tb := New(Options{Columns: []Column{ColPages}, Raw: true, NoHeadings: true})
	tb.Add(sampleRow())
	buf := &bytes.Buffer{}
	require.NoError(t, tb.Render(buf))
	assert.Equal(t, "2\n", buf.String())
}

func TestRenderTable(t *testing.T) {
	tb := New(Options{Columns: []Column{ColPages, ColFile}})
	tb.Add(sampleRow())
	buf := &bytes.Buffer{}
	require.NoError(t, tb.Render(buf))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "PAGES")
	assert.Contains(t, lines[0], "FILE")
	assert.Contains(t, lines[1], "2")
	assert.Contains(t, lines[1], "/var/lib/db/data.ibd")
}

func TestRenderJSON(t *testing.T) {
	tb := New(Options{Columns: []Column{ColPages, ColSize, ColFile, ColNodes}, JSON: true})
	tb.Add(sampleRow())
	buf := &bytes.Buffer{}
	require.NoError(t, tb.Render(buf))

	decoded := map[string][]map[string]interface{}{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded["fincore"], 1)
	line := decoded["fincore"][0]
	assert.Equal(t, float64(2), line["pages"])
	assert.Equal(t, float64(8192), line["size"])
	assert.Equal(t, "/var/lib/db/data.ibd", line["file"])
	assert.Equal(t, "[0]=1 [1]=1", line["nodes"])
}

func TestNodesCell(t *testing.T) {
	assert.Equal(t, "", nodesCell(nil))
	assert.Equal(t, "[0]=3", nodesCell(map[int]int64{0: 3}))
	assert.Equal(t, "[0]=1 [2]=5 [7]=2", nodesCell(map[int]int64{7: 2, 0: 1, 2: 5}))
}

func TestHumanSize(t *testing.T) {
	tcases := []struct {
		size     int64
		expected string
	}{
		{0, "0B"},
		{100, "100B"},
		{1023, "1023B"},
		{1024, "1K"},
		{4096, "4K"},
		{1536, "1.5K"},
		{1024 * 1024, "1M"},
		{1181116006, "1.1G"},
		{1099511627776, "1T"},
	}
	for _, tc := range tcases {
		assert.Equal(t, tc.expected, humanSize(tc.size), "humanSize(%d)", tc.size)
	}
}

func TestBytesModeDisablesScaling(t *testing.T) {
	tb := New(Options{Columns: []Column{ColRes}, Bytes: true, Raw: true, NoHeadings: true})
	tb.Add(Row{Resident: 1048576})
	buf := &bytes.Buffer{}
	require.NoError(t, tb.Render(buf))
	assert.Equal(t, "1048576\n", buf.String())
}
