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

// Package mmio provides access to memory-mapped device registers.
package mmio

import (
	"errors"
	"fmt"
)

// Window is a device register window. Registers are 32 bits wide, naturally
// aligned and big-endian on the bus; implementations present them to callers
// as host integers.
//
// Accesses may fail: the offset may fall outside the window, or the access
// itself may fault (e.g. the device dropped off the bus). A failed access has
// no defined effect on the device.
type Window interface {
	// Read32 reads the register at byte offset off.
	Read32(off uint32) (uint32, error)

	// Write32 writes v to the register at byte offset off.
	Write32(off uint32, v uint32) error
}

// ErrClosed is returned by accesses to a window that has been unmapped.
var ErrClosed = errors.New("register window is closed")

// AccessError describes a failed register access.
type AccessError struct {
	// Op is "read" or "write".
	Op string

	// Offset is the register offset.
	Offset uint32

	// Fault is true if the access was attempted and faulted, as opposed to
	// being rejected up front.
	Fault bool

	// Err is the underlying cause, if any.
	Err error
}

// Error implements error.Error.
func (e *AccessError) Error() string {
	switch {
	case e.Fault:
		return fmt.Sprintf("mmio %s at %#x faulted: %v", e.Op, e.Offset, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("mmio %s at %#x: %v", e.Op, e.Offset, e.Err)
	default:
		return fmt.Sprintf("mmio %s at %#x rejected", e.Op, e.Offset)
	}
}

// Unwrap returns the underlying cause.
func (e *AccessError) Unwrap() error {
	return e.Err
}

// errOutOfRange and errUnaligned are the causes of rejected accesses.
var (
	errOutOfRange = errors.New("offset outside window")
	errUnaligned  = errors.New("offset not 4-byte aligned")
)

// checkOffset validates a 32-bit access at off in a window of size bytes.
func checkOffset(op string, off uint32, size int) error {
	if off%4 != 0 {
		return &AccessError{Op: op, Offset: off, Err: errUnaligned}
	}
	if uint64(off)+4 > uint64(size) {
		return &AccessError{Op: op, Offset: off, Err: errOutOfRange}
	}
	return nil
}
