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

package fincore

import (
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// sysfs device/node subdirectory path
const sysfsNumaNodePath = "/sys/devices/system/node"

// Node is a NUMA node id.
type Node int

// NodeTally maps a NUMA node to the number of pages found resident on
// that node.
type NodeTally map[Node]int64

// Pages returns the total page count over all nodes.
func (t NodeTally) Pages() int64 {
	total := int64(0)
	for _, count := range t {
		total += count
	}
	return total
}

// SortedNodes returns the nodes of the tally in ascending id order.
func (t NodeTally) SortedNodes() []Node {
	nodes := make([]Node, 0, len(t))
	for node := range t {
		nodes = append(nodes, node)
	}
	sort.Slice(nodes, func(i, j int) bool {
		return nodes[i] < nodes[j]
	})
	return nodes
}

// pageMigrater reports the current NUMA node of each given page. The
// mechanism used may relocate the pages as a side effect.
type pageMigrater interface {
	migrateAndLocate(pages []uintptr) ([]int32, error)
}

// movePagesMigrater locates pages with the move_pages syscall. Passing
// nil target nodes turns the call into a placement query: the kernel
// fills in the node of every page, or a negative errno for pages it
// cannot answer for. The status buffer is reused across windows.
type movePagesMigrater struct {
	status []int32
}

func newMovePagesMigrater(maxPages int) *movePagesMigrater {
	return &movePagesMigrater{status: make([]int32, maxPages)}
}

func (m *movePagesMigrater) migrateAndLocate(pages []uintptr) ([]int32, error) {
	count := uint(len(pages))
	if count == 0 {
		return nil, nil
	}
	status := m.status[:count]
	if _, err := movePagesSyscall(0, count, pages, nil, status, 0); err != nil {
		return nil, err
	}
	return status, nil
}

// PresentNodes returns the ids of NUMA nodes present on the host in
// ascending order.
func PresentNodes() ([]Node, error) {
	entries, err := filepath.Glob(filepath.Join(sysfsNumaNodePath, "node[0-9]*"))
	if err != nil {
		return nil, err
	}
	nodes := make([]Node, 0, len(entries))
	for _, entry := range entries {
		id, err := strconv.Atoi(strings.TrimPrefix(filepath.Base(entry), "node"))
		if err != nil {
			continue
		}
		nodes = append(nodes, Node(id))
	}
	sort.Slice(nodes, func(i, j int) bool {
		return nodes[i] < nodes[j]
	})
	return nodes, nil
}
