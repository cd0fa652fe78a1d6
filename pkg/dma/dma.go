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

// Package dma provides buffers that a device can read by bus address.
package dma

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// Buffer is a physically contiguous region of memory shared with a device.
type Buffer interface {
	// Bytes returns the CPU view of the buffer. The slice is valid until
	// Release.
	Bytes() []byte

	// PhysAddr returns the bus address of the first byte.
	PhysAddr() uint64

	// Flush makes CPU writes to [off, off+n) visible to the device.
	Flush(off, n int) error

	// Release returns the memory. The buffer must not be used afterwards.
	// Release is idempotent.
	Release() error
}

// ErrReleased is returned by operations on a released buffer.
var ErrReleased = errors.New("dma buffer released")

// checkRange validates a flush range against a buffer of size bytes.
func checkRange(off, n, size int) error {
	if off < 0 || n < 0 || off+n > size {
		return fmt.Errorf("flush range [%d, %d) outside buffer of %d bytes", off, off+n, size)
	}
	return nil
}

// Heap is a Buffer backed by ordinary Go memory and a caller-chosen bus
// address. It is used for simulated devices and tests; a real device cannot
// reach it.
type Heap struct {
	data     []byte
	phys     uint64
	flushes  atomic.Uint64
	released atomic.Bool
}

// NewHeap returns a zeroed Heap buffer of size bytes that reports phys as its
// bus address.
func NewHeap(size int, phys uint64) *Heap {
	return &Heap{data: make([]byte, size), phys: phys}
}

// Bytes implements Buffer.Bytes.
func (h *Heap) Bytes() []byte {
	return h.data
}

// PhysAddr implements Buffer.PhysAddr.
func (h *Heap) PhysAddr() uint64 {
	return h.phys
}

// Flush implements Buffer.Flush. It only counts calls.
func (h *Heap) Flush(off, n int) error {
	if h.released.Load() {
		return ErrReleased
	}
	if err := checkRange(off, n, len(h.data)); err != nil {
		return err
	}
	h.flushes.Add(1)
	return nil
}

// Flushes returns the number of successful Flush calls.
func (h *Heap) Flushes() uint64 {
	return h.flushes.Load()
}

// Release implements Buffer.Release.
func (h *Heap) Release() error {
	h.released.Store(true)
	return nil
}

// Released reports whether Release has been called.
func (h *Heap) Released() bool {
	return h.released.Load()
}
