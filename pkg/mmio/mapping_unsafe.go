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
	"math/bits"
	"runtime/debug"
	"sync/atomic"
	"unsafe"
)

// hostBigEndian is true if the host stores integers most significant byte
// first, in which case register values need no swapping.
var hostBigEndian = func() bool {
	x := uint16(1)
	return *(*byte)(unsafe.Pointer(&x)) == 0
}()

func toBus(v uint32) uint32 {
	if hostBigEndian {
		return v
	}
	return bits.ReverseBytes32(v)
}

// Read32 implements Window.Read32.
func (m *Mapping) Read32(off uint32) (v uint32, err error) {
	if m.data == nil {
		return 0, &AccessError{Op: "read", Offset: off, Err: ErrClosed}
	}
	if err := checkOffset("read", off, len(m.data)); err != nil {
		return 0, err
	}
	defer debug.SetPanicOnFault(debug.SetPanicOnFault(true))
	defer recoverFault("read", off, &err)
	p := (*uint32)(unsafe.Pointer(&m.data[off]))
	return toBus(atomic.LoadUint32(p)), nil
}

// Write32 implements Window.Write32.
func (m *Mapping) Write32(off uint32, v uint32) (err error) {
	if m.data == nil {
		return &AccessError{Op: "write", Offset: off, Err: ErrClosed}
	}
	if err := checkOffset("write", off, len(m.data)); err != nil {
		return err
	}
	defer debug.SetPanicOnFault(debug.SetPanicOnFault(true))
	defer recoverFault("write", off, &err)
	p := (*uint32)(unsafe.Pointer(&m.data[off]))
	atomic.StoreUint32(p, toBus(v))
	return nil
}

// recoverFault converts a memory fault raised by the access into an
// AccessError. Any other panic is propagated.
func recoverFault(op string, off uint32, err *error) {
	r := recover()
	if r == nil {
		return
	}
	if _, ok := r.(interface{ Addr() uintptr }); !ok {
		panic(r)
	}
	*err = &AccessError{Op: op, Offset: off, Fault: true, Err: fmt.Errorf("%v", r)}
}
