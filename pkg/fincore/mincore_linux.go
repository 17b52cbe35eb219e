//go:build linux
// +build linux

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

func mincoreSyscall(window []byte, vec []byte) error {

	// syscall:
	// int mincore(void *addr, size_t length, unsigned char *vec);

	var err error

	if len(window) == 0 {
		return nil
	}

	_, _, en := unix.Syscall(unix.SYS_MINCORE,
		uintptr(unsafe.Pointer(&window[0])),
		uintptr(len(window)),
		uintptr(unsafe.Pointer(&vec[0])))
	if en != 0 {
		err = unix.Errno(en)
	}

	return err
}

// mincoreQuerier reads per-page cache residency of a mapped window.
// The byte vector is reused across windows, one byte per page, only
// the least significant bit is meaningful.
type mincoreQuerier struct {
	vec []byte
}

func newMincoreQuerier(maxPages int) *mincoreQuerier {
	return &mincoreQuerier{vec: make([]byte, maxPages)}
}

func (q *mincoreQuerier) queryResidency(window []byte) ([]bool, error) {
	n := pageCount(len(window))
	if n == 0 {
		return nil, nil
	}
	vec := q.vec[:n]
	if err := mincoreSyscall(window, vec); err != nil {
		return nil, err
	}
	resident := make([]bool, n)
	for i, b := range vec {
		resident[i] = b&0x1 == 0x1
	}
	return resident, nil
}
