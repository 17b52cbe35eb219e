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

/*

	Package fincore counts the pages of file contents that are
	resident in the page cache, optionally broken down by NUMA
	node.

	Per-page residency is only observable for live virtual memory,
	the kernel offers no "is this file region cached" query at
	file granularity. The scanner therefore maps one bounded
	window of the file at a time, queries the window with
	mincore(2), counts the set bits, and unmaps the window before
	mapping the next one. Memory use is bounded by the window
	capacity regardless of file size.

	Component types

	1. The Scanner (scan.go) drives the scan of one file: open,
	optional cache-drop advice, then a loop of windows covering
	the whole file.

	2. A window scan (window.go) maps one slice of the file,
	obtains the residency bitmap and, when a NUMA breakdown is
	requested, gathers the addresses of resident pages for node
	discovery while the window is still mapped.

	3. Node discovery (nodes.go, move_linux.go) feeds resident
	page addresses to move_pages(2) with nil target nodes, which
	makes the kernel report the current node of each page. Pages
	the kernel cannot answer for are left out of the tally.

	The raw mincore and move_pages calls are confined to two
	narrow adapters (residencyQuerier, pageMigrater) so the rest
	of the engine never touches raw memory.

	Known limitation: a page can be evicted between the residency
	query and the move_pages call. Resident pages are touched
	before the call to narrow the race, but under memory pressure
	the node tally may still undercount by a few pages.
*/

package fincore
