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
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

func movePagesSyscall(pid int, count uint, pages []uintptr, nodes []int, status []int32, flags int) (uint, error) {

	// syscall:
	// long move_pages(int pid, unsigned long count, void **pages,
	//                 const int *nodes, int *status, int flags);

	var err error

	if count == 0 {
		return 0, nil
	}

	// Go int is 64 bits on a 64-bit system, but the kernel takes
	// 32-bit node and status values.
	cNodes := make([]int32, len(nodes))
	for i := 0; i < len(nodes); i++ {
		if nodes[i] < 0 || nodes[i] > 32767 {
			return 0, fmt.Errorf("int value error: %d", nodes[i])
		}
		cNodes[i] = int32(nodes[i]) // safe downcast
	}

	nodesPtr := unsafe.Pointer(nil)
	if nodes != nil {
		nodesPtr = unsafe.Pointer(&cNodes[0])
	}

	ret, _, en := unix.Syscall6(unix.SYS_MOVE_PAGES, uintptr(pid), uintptr(count), uintptr(unsafe.Pointer(&pages[0])), uintptr(nodesPtr), uintptr(unsafe.Pointer(&status[0])), uintptr(flags))
	if en != 0 {
		err = unix.Errno(en)
	}

	return uint(ret), err
}
