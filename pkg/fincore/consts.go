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
	"os"
)

const (
	// PagesPerWindow is the default number of pages mapped in one
	// window. With 4 kB pages one window covers 128 MB of file data.
	// Files larger than that are scanned in successive windows so
	// that the mapped working set stays bounded regardless of file
	// size.
	PagesPerWindow = 32 * 1024
)

var constPagesize int64 = int64(os.Getpagesize())

// Pagesize returns the page size shared by all scans in this process.
func Pagesize() int64 {
	return constPagesize
}

// pageCount returns the number of pages needed to cover byteCount bytes.
func pageCount(byteCount int) int {
	return (byteCount + int(constPagesize) - 1) / int(constPagesize)
}
