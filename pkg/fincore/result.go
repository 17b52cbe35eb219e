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

// ScanResult is the outcome of scanning one file. It is not modified
// after the scan that produced it finishes.
type ScanResult struct {
	// Path of the scanned file.
	Path string
	// FileSize in bytes, as observed when the scan started.
	FileSize int64
	// ResidentPages of the file found in the page cache.
	ResidentPages int64
	// NodePages is the per-NUMA-node breakdown of resident pages.
	// nil unless node discovery was requested. Pages whose node
	// could not be resolved are counted in ResidentPages but not
	// here.
	NodePages NodeTally
}

// ResidentBytes returns the resident page count in bytes.
func (r *ScanResult) ResidentBytes() int64 {
	return r.ResidentPages * constPagesize
}
