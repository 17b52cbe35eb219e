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

package prefilter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmptyFiltersKeepEverything(t *testing.T) {
	f := New()
	f.Optimize()
	assert.False(t, f.HasIDFilter())
	assert.False(t, f.HasPathFilter())
	assert.True(t, f.KeepID(1))
	assert.True(t, f.KeepID(4711))
	assert.True(t, f.KeepPath("/etc/passwd"))
}

func TestKeepID(t *testing.T) {
	f := New()
	for _, id := range []int{300, 1, 42, 9999} {
		f.AddID(id)
	}
	f.Optimize()
	assert.True(t, f.HasIDFilter())
	for _, id := range []int{1, 42, 300, 9999} {
		assert.True(t, f.KeepID(id), "id %d", id)
	}
	for _, id := range []int{0, 2, 301, 10000} {
		assert.False(t, f.KeepID(id), "id %d", id)
	}
}

func TestKeepIDWithoutOptimize(t *testing.T) {
	f := New()
	f.AddID(5)
	f.AddID(3)
	assert.True(t, f.KeepID(3))
	assert.False(t, f.KeepID(4))
	// Adding after the first lookup re-sorts on the next lookup.
	f.AddID(4)
	assert.True(t, f.KeepID(4))
}

func TestKeepPath(t *testing.T) {
	f := New()
	f.AddPath("/var/lib/db/data.ibd")
	f.AddPath("/tmp/scratch")
	assert.True(t, f.HasPathFilter())

	assert.True(t, f.KeepPath("/var/lib/db/data.ibd"))
	assert.True(t, f.KeepPath("/tmp/scratch"))
	assert.True(t, f.KeepPath("/tmp/scratch (deleted)"))
	assert.False(t, f.KeepPath("/tmp/scratch2"))
	assert.False(t, f.KeepPath("/tmp/scratch/file"))
	assert.False(t, f.KeepPath("/var/lib/db"))
}

func TestIDAndPathFiltersAreIndependent(t *testing.T) {
	f := New()
	f.AddID(1)
	f.Optimize()
	// No path filters, every path passes. Only listed ids pass.
	assert.True(t, f.KeepPath("/anything"))
	assert.True(t, f.KeepID(1))
	assert.False(t, f.KeepID(2))
}
