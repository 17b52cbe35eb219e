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
	"fmt"
)

// ErrorKind classifies scan failures. Every failure of a single file's
// scan carries exactly one kind.
type ErrorKind int

const (
	// OpenFailure: the file could not be opened.
	OpenFailure ErrorKind = iota
	// StatFailure: file metadata could not be read.
	StatFailure
	// MapFailure: mapping a window of the file failed.
	MapFailure
	// ResidencyQueryFailure: the residency bitmap query failed for a
	// mapped window.
	ResidencyQueryFailure
	// MigrationFailure: a node-discovery batch was rejected outright.
	MigrationFailure
	// DropAdviceFailure: dropping cached content failed. Advisory,
	// the scan proceeds.
	DropAdviceFailure
)

func (k ErrorKind) String() string {
	switch k {
	case OpenFailure:
		return "open failed"
	case StatFailure:
		return "stat failed"
	case MapFailure:
		return "mmap failed"
	case ResidencyQueryFailure:
		return "mincore failed"
	case MigrationFailure:
		return "move_pages failed"
	case DropAdviceFailure:
		return "fadvise failed"
	}
	return fmt.Sprintf("unknown failure %d", int(k))
}

// ScanError is the failure of one file's scan.
type ScanError struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Path, e.Kind, e.Err)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

func scanError(kind ErrorKind, path string, err error) *ScanError {
	return &ScanError{Kind: kind, Path: path, Err: err}
}
