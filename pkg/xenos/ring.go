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

package xenos

import (
	"fmt"
	"math/bits"
)

// MinRingSize is the smallest ring Attach accepts.
const MinRingSize = 4096

// maxRingSize is the largest power of two a uint32 offset can describe.
const maxRingSize = 1 << 31

// RoundCapacity returns the largest power of two not greater than size.
func RoundCapacity(size int) (uint32, error) {
	if size < MinRingSize {
		return 0, fmt.Errorf("%w: %d bytes, need at least %d", ErrRingTooSmall, size, MinRingSize)
	}
	if size >= maxRingSize {
		return maxRingSize, nil
	}
	return 1 << (bits.Len32(uint32(size)) - 1), nil
}

// Region is a contiguous byte range of the ring.
type Region struct {
	Off uint32
	Len uint32
}

// End returns the offset one past the region.
func (r Region) End() uint32 {
	return r.Off + r.Len
}

// Ring tracks the producer and consumer offsets of the command ring.
//
// One byte is always kept free so that head == tail means empty. The tail is
// a snapshot of the hardware read pointer and may lag behind it, in which
// case FreeSpace under-reports.
//
// Ring is not synchronized; Device guards it with its write lock.
type Ring struct {
	buf      []byte
	capacity uint32
	head     uint32
	tail     uint32
}

// newRing returns an empty ring over the first capacity bytes of buf.
// capacity must be a power of two and buf at least that long.
func newRing(buf []byte, capacity uint32) Ring {
	return Ring{buf: buf[:capacity], capacity: capacity}
}

// Capacity returns the ring size in bytes.
func (r *Ring) Capacity() uint32 {
	return r.capacity
}

// Head returns the offset of the next byte a producer writes.
func (r *Ring) Head() uint32 {
	return r.head
}

// Tail returns the last known hardware consumption offset.
func (r *Ring) Tail() uint32 {
	return r.tail
}

// used returns the number of bytes between tail and head.
func (r *Ring) used() uint32 {
	return (r.head - r.tail) & (r.capacity - 1)
}

// FreeSpace returns the number of bytes a producer may write.
func (r *Ring) FreeSpace() uint32 {
	return r.capacity - r.used() - 1
}

// SpaceToEnd returns the number of bytes from head to the end of the buffer.
func (r *Ring) SpaceToEnd() uint32 {
	return r.capacity - r.head
}

// SplitForWrite returns where a write of n bytes at head lands. The second
// region is empty unless the write wraps.
func (r *Ring) SplitForWrite(n uint32) (first, second Region) {
	first = Region{Off: r.head, Len: min(n, r.SpaceToEnd())}
	if first.Len < n {
		second = Region{Off: 0, Len: n - first.Len}
	}
	return first, second
}

// slice returns the bytes of reg.
func (r *Ring) slice(reg Region) []byte {
	return r.buf[reg.Off:reg.End()]
}

// advance moves head forward by n bytes.
func (r *Ring) advance(n uint32) {
	r.head = (r.head + n) & (r.capacity - 1)
}

// setTail records a consumption offset reported by the hardware.
func (r *Ring) setTail(off uint32) {
	r.tail = off & (r.capacity - 1)
}

// reset empties the ring.
func (r *Ring) reset() {
	r.head = 0
	r.tail = 0
}
