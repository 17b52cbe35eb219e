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

// Package prefilter decides early whether an item is worth collecting
// at all, before any expensive per-item work begins. Numeric ids are
// matched against a precomputed sorted set, paths against exact names.
package prefilter

import (
	"sort"
	"strings"
)

// deletedSuffix is what the kernel appends to the mapped path of an
// unlinked file.
const deletedSuffix = " (deleted)"

// Filters holds operator-supplied inclusion lists. An empty list of a
// kind keeps every item of that kind.
type Filters struct {
	ids       []int
	paths     []string
	optimized bool
}

// New creates an empty filter set.
func New() *Filters {
	return &Filters{}
}

// AddID includes a numeric id.
func (f *Filters) AddID(id int) {
	f.ids = append(f.ids, id)
	f.optimized = false
}

// AddPath includes a file path.
func (f *Filters) AddPath(path string) {
	f.paths = append(f.paths, path)
}

// Optimize sorts the id set for binary search. Call it after the last
// Add and before the first Keep.
func (f *Filters) Optimize() {
	sort.Ints(f.ids)
	f.optimized = true
}

// HasIDFilter tells whether any id filter has been added.
func (f *Filters) HasIDFilter() bool {
	return len(f.ids) > 0
}

// HasPathFilter tells whether any path filter has been added.
func (f *Filters) HasPathFilter() bool {
	return len(f.paths) > 0
}

// KeepID reports whether an item with the given id passes the filter.
func (f *Filters) KeepID(id int) bool {
	if !f.HasIDFilter() {
		return true
	}
	if !f.optimized {
		f.Optimize()
	}
	i := sort.SearchInts(f.ids, id)
	return i < len(f.ids) && f.ids[i] == id
}

// KeepPath reports whether an item with the given path passes the
// filter. A filter path also matches its deleted-file form.
func (f *Filters) KeepPath(path string) bool {
	if !f.HasPathFilter() {
		return true
	}
	for _, want := range f.paths {
		if path == want {
			return true
		}
		if strings.HasPrefix(path, want) && path[len(want):] == deletedSuffix {
			return true
		}
	}
	return false
}
