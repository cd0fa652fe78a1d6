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

package mmio

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Mapping is a Window backed by a shared mapping of a device resource file,
// typically /sys/bus/pci/devices/<address>/resource0.
//
// Read32 and Write32 may be called concurrently; Close must not be.
type Mapping struct {
	path string
	data []byte
}

// Map maps size bytes of the resource file at path. If size is zero the whole
// file is mapped.
func Map(path string, size int) (*Mapping, error) {
	fd, err := unix.Open(path, unix.O_RDWR|unix.O_SYNC|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	// The mapping outlives the descriptor.
	defer unix.Close(fd)

	if size == 0 {
		var st unix.Stat_t
		if err := unix.Fstat(fd, &st); err != nil {
			return nil, fmt.Errorf("stat %q: %w", path, err)
		}
		size = int(st.Size)
	}
	if size <= 0 || size%4 != 0 {
		return nil, fmt.Errorf("mapping %q: invalid window size %d", path, size)
	}

	data, err := unix.Mmap(fd, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("mapping %d bytes of %q: %w", size, path, err)
	}
	return &Mapping{path: path, data: data}, nil
}

// Size returns the size of the window in bytes.
func (m *Mapping) Size() int {
	return len(m.data)
}

// Path returns the path of the mapped resource.
func (m *Mapping) Path() string {
	return m.path
}

// Sync flushes writes to a file-backed window to the underlying file. It is a
// no-op for device resources.
func (m *Mapping) Sync() error {
	if m.data == nil {
		return ErrClosed
	}
	return unix.Msync(m.data, unix.MS_SYNC)
}

// Close unmaps the window. Accesses after Close fail with ErrClosed.
func (m *Mapping) Close() error {
	if m.data == nil {
		return nil
	}
	err := unix.Munmap(m.data)
	m.data = nil
	return err
}
