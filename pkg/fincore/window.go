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
	"unsafe"

	"golang.org/x/sys/unix"
)

// residencyQuerier returns one boolean per page of a mapped window, in
// ascending page order, telling whether the page is cache resident.
type residencyQuerier interface {
	queryResidency(window []byte) ([]bool, error)
}

// memMapper establishes and releases file-backed window mappings.
type memMapper interface {
	mapWindow(fd int, offset int64, length int, prot int) ([]byte, error)
	unmapWindow(window []byte) error
}

type unixMapper struct{}

func (unixMapper) mapWindow(fd int, offset int64, length int, prot int) ([]byte, error) {
	return unix.Mmap(fd, offset, length, prot, unix.MAP_SHARED)
}

func (unixMapper) unmapWindow(window []byte) error {
	return unix.Munmap(window)
}

// scanWindow maps [offset, offset+length) of fd, counts resident
// pages, and when tally is non-nil resolves the NUMA node of every
// resident page into it. The mapping is released on every exit path.
// Resident page addresses never outlive the mapping.
func (s *Scanner) scanWindow(fd int, name string, offset, length int64, tally NodeTally) (int64, error) {
	prot := unix.PROT_NONE
	if tally != nil {
		// Resident pages get touched below, the mapping must be
		// readable.
		prot = unix.PROT_READ
	}
	window, err := s.mapper.mapWindow(fd, offset, int(length), prot)
	if err != nil {
		return 0, scanError(MapFailure, name, err)
	}
	defer func() {
		if err := s.mapper.unmapWindow(window); err != nil {
			log.Warnf("failed to munmap %s: %v", name, err)
		}
	}()

	resident, err := s.querier.queryResidency(window)
	if err != nil {
		return 0, scanError(ResidencyQueryFailure, name, err)
	}

	count := int64(0)
	addrs := s.addrs[:0]
	for i, res := range resident {
		if !res {
			continue
		}
		count++
		if tally == nil {
			continue
		}
		addr := uintptr(unsafe.Pointer(&window[0])) + uintptr(i)*uintptr(constPagesize)
		// A page can get evicted between the residency query and
		// the move_pages call. Reading one byte narrows that race
		// and gives the kernel a physical page to report on.
		_ = *(*byte)(unsafe.Pointer(uintptr(unsafe.Pointer(&window[0])) + uintptr(i)*uintptr(constPagesize)))
		addrs = append(addrs, addr)
	}

	if tally != nil && len(addrs) > 0 {
		status, err := s.migrater.migrateAndLocate(addrs)
		if err != nil {
			return 0, scanError(MigrationFailure, name, err)
		}
		for _, st := range status {
			if st < 0 {
				// Node unknown for this page. Not retried,
				// left out of the tally.
				continue
			}
			tally[Node(st)]++
		}
	}

	return count, nil
}
