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

	"golang.org/x/sys/unix"
)

// Config controls how files are scanned.
type Config struct {
	// Drop advises the kernel to discard cached content of every
	// file before scanning it, so counts reflect only what the scan
	// itself brings in.
	Drop bool
	// Nodes collects the per-NUMA-node breakdown of resident pages.
	Nodes bool
	// WindowPages overrides the number of pages mapped at a time.
	// Defaults to PagesPerWindow.
	WindowPages int
}

// Scanner counts the pages of files that are resident in the page
// cache. A Scanner scans one file at a time and maps at most one
// window of it at a time, so its memory use stays bounded by the
// window capacity no matter how large the files are.
type Scanner struct {
	cfg      Config
	mapper   memMapper
	querier  residencyQuerier
	migrater pageMigrater
	// addrs is the resident page address scratch buffer. Sized to
	// one window, reused across windows, valid only while the
	// current window is mapped.
	addrs []uintptr
}

// NewScanner creates a scanner with the given configuration.
func NewScanner(cfg Config) *Scanner {
	if cfg.WindowPages <= 0 {
		cfg.WindowPages = PagesPerWindow
	}
	s := &Scanner{
		cfg:     cfg,
		mapper:  unixMapper{},
		querier: newMincoreQuerier(cfg.WindowPages),
	}
	if cfg.Nodes {
		s.migrater = newMovePagesMigrater(cfg.WindowPages)
		s.addrs = make([]uintptr, 0, cfg.WindowPages)
	}
	return s
}

// ScanFile scans one file and returns its result. Directories are
// skipped: both the result and the error are nil. Zero-length regular
// files produce a zero result without any mapping attempt. Any other
// failure aborts this file's scan and is returned as a *ScanError.
func (s *Scanner) ScanFile(name string) (*ScanResult, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, scanError(OpenFailure, name, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, scanError(StatFailure, name, err)
	}
	if fi.IsDir() {
		return nil, nil
	}

	res := &ScanResult{
		Path:     name,
		FileSize: fi.Size(),
	}
	if s.cfg.Nodes {
		res.NodePages = NodeTally{}
	}
	if fi.Size() == 0 {
		return res, nil
	}

	if s.cfg.Drop {
		if err := s.dropCache(int(f.Fd()), fi.Size()); err != nil {
			log.Warnf("%v", scanError(DropAdviceFailure, name, err))
		}
	}

	if err := s.scanFd(int(f.Fd()), name, fi.Size(), res); err != nil {
		return nil, err
	}
	return res, nil
}

// scanFd walks the file in contiguous, non-overlapping windows whose
// lengths sum exactly to fileSize.
func (s *Scanner) scanFd(fd int, name string, fileSize int64, res *ScanResult) error {
	capacity := int64(s.cfg.WindowPages) * constPagesize
	for offset := int64(0); offset < fileSize; {
		length := fileSize - offset
		if length > capacity {
			length = capacity
		}
		count, err := s.scanWindow(fd, name, offset, length, res.NodePages)
		if err != nil {
			return err
		}
		res.ResidentPages += count
		offset += length
	}
	return nil
}

// dropCache advises the kernel that the file content is not needed.
func (s *Scanner) dropCache(fd int, size int64) error {
	return unix.Fadvise(fd, 0, size, unix.FADV_DONTNEED)
}
