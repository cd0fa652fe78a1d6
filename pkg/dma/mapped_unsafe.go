// Copyright 2026 The gVisor Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build linux
// +build linux

package dma

import (
	"encoding/binary"
	"fmt"
	"os"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/unix"
)

const (
	hugePageSize = 2 << 20

	// pagemap entry layout, see Documentation/admin-guide/mm/pagemap.rst.
	pagemapPresent = 1 << 63
	pagemapPFNMask = 1<<55 - 1
	pagemapEntry   = 8
)

// Mapped is a Buffer backed by a shared mapping: either locked anonymous
// memory (NewPinned) or a reserved physical range (OpenCarveout).
type Mapped struct {
	data     []byte
	phys     uint64
	released atomic.Bool
}

// NewPinned allocates size bytes of locked, prefaulted anonymous memory and
// resolves its physical address through /proc/self/pagemap. Sizes that are a
// multiple of 2 MiB are backed by huge pages. The allocation fails unless the
// pages backing the buffer are physically contiguous.
//
// Resolving physical addresses requires CAP_SYS_ADMIN.
func NewPinned(size int) (*Mapped, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid dma buffer size %d", size)
	}
	flags := unix.MAP_SHARED | unix.MAP_ANONYMOUS | unix.MAP_LOCKED | unix.MAP_POPULATE
	pageSize := os.Getpagesize()
	if size%hugePageSize == 0 {
		flags |= unix.MAP_HUGETLB
		pageSize = hugePageSize
	}
	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, flags)
	if err != nil {
		return nil, fmt.Errorf("allocating %d byte dma buffer: %w", size, err)
	}
	phys, err := resolvePhys(data, pageSize)
	if err != nil {
		unix.Munmap(data)
		return nil, err
	}
	return &Mapped{data: data, phys: phys}, nil
}

// OpenCarveout maps size bytes at physical address base through path, which
// is normally /dev/mem. The range must have been reserved from the kernel
// (e.g. with memmap=) so that nothing else uses it.
func OpenCarveout(path string, base uint64, size int) (*Mapped, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid dma buffer size %d", size)
	}
	if base%uint64(os.Getpagesize()) != 0 {
		return nil, fmt.Errorf("carveout base %#x is not page aligned", base)
	}
	fd, err := unix.Open(path, unix.O_RDWR|unix.O_SYNC|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	defer unix.Close(fd)
	data, err := unix.Mmap(fd, int64(base), size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("mapping %d bytes at %#x of %q: %w", size, base, path, err)
	}
	return &Mapped{data: data, phys: base}, nil
}

// Bytes implements Buffer.Bytes.
func (m *Mapped) Bytes() []byte {
	return m.data
}

// PhysAddr implements Buffer.PhysAddr.
func (m *Mapped) PhysAddr() uint64 {
	return m.phys
}

// Flush implements Buffer.Flush.
func (m *Mapped) Flush(off, n int) error {
	if m.released.Load() {
		return ErrReleased
	}
	if err := checkRange(off, n, len(m.data)); err != nil {
		return err
	}
	if n == 0 {
		return nil
	}
	// msync wants a page aligned start.
	start := off &^ (os.Getpagesize() - 1)
	if err := unix.Msync(m.data[start:off+n], unix.MS_SYNC); err != nil {
		return fmt.Errorf("msync: %w", err)
	}
	return nil
}

// Release implements Buffer.Release.
func (m *Mapped) Release() error {
	if m.released.Swap(true) {
		return nil
	}
	return unix.Munmap(m.data)
}

// resolvePhys returns the physical address of data, which must be mapped and
// resident, after checking that its pages are physically contiguous.
func resolvePhys(data []byte, pageSize int) (uint64, error) {
	f, err := os.Open("/proc/self/pagemap")
	if err != nil {
		return 0, fmt.Errorf("opening pagemap: %w", err)
	}
	defer f.Close()

	sysPage := os.Getpagesize()
	vaddr := uint64(uintptr(unsafe.Pointer(&data[0])))
	n := len(data) / sysPage
	raw := make([]byte, n*pagemapEntry)
	if _, err := f.ReadAt(raw, int64(vaddr/uint64(sysPage))*pagemapEntry); err != nil {
		return 0, fmt.Errorf("reading pagemap: %w", err)
	}
	entries := make([]uint64, n)
	for i := range entries {
		entries[i] = binary.NativeEndian.Uint64(raw[i*pagemapEntry:])
	}
	return contiguousPhys(entries, sysPage)
}

// contiguousPhys checks that the pagemap entries describe present pages with
// consecutive frame numbers and returns the physical address of the first.
func contiguousPhys(entries []uint64, pageSize int) (uint64, error) {
	if len(entries) == 0 {
		return 0, fmt.Errorf("empty pagemap range")
	}
	var first uint64
	for i, e := range entries {
		if e&pagemapPresent == 0 {
			return 0, fmt.Errorf("page %d is not resident", i)
		}
		pfn := e & pagemapPFNMask
		if pfn == 0 {
			return 0, fmt.Errorf("pagemap hides frame numbers; CAP_SYS_ADMIN is required")
		}
		if i == 0 {
			first = pfn
			continue
		}
		if pfn != first+uint64(i) {
			return 0, fmt.Errorf("page %d is not physically contiguous (pfn %#x, want %#x)", i, pfn, first+uint64(i))
		}
	}
	return first * uint64(pageSize), nil
}
