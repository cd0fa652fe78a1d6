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

package sim

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	abi "github.com/free60/xenosrb/pkg/abi/xenos"
)

func TestMicroEngineRAM(t *testing.T) {
	cp := New()
	cp.Write32(abi.CP_ME_RAM_WADDR, 0)
	for _, w := range []uint32{1, 2, 3} {
		cp.Write32(abi.CP_ME_RAM_DATA, w)
	}
	cp.CorruptME(1)
	cp.Write32(abi.CP_ME_RAM_RADDR, 0)
	var got []uint32
	for i := 0; i < 3; i++ {
		v, err := cp.Read32(abi.CP_ME_RAM_DATA)
		if err != nil {
			t.Fatalf("Read32: %v", err)
		}
		got = append(got, v)
	}
	if diff := cmp.Diff([]uint32{1, ^uint32(2), 3}, got); diff != "" {
		t.Errorf("ME read-back mismatch (-want +got):\n%s", diff)
	}
}

func TestReadPointerWriteEnable(t *testing.T) {
	cp := New()
	cp.Write32(abi.CP_RB_CNTL, abi.RingControl(4096))
	cp.Write32(abi.CP_RB_WPTR, 10)
	cp.Consume(16)
	cp.Write32(abi.CP_RB_RPTR_WR, 0)
	if v, _ := cp.Read32(abi.CP_RB_RPTR); v != 4 {
		t.Errorf("RPTR writable without RB_RPTR_WR_ENA: got %d, want 4", v)
	}
	cp.Write32(abi.CP_RB_CNTL, abi.RingControl(4096)|abi.RB_RPTR_WR_ENA)
	cp.Write32(abi.CP_RB_RPTR_WR, 0)
	if v, _ := cp.Read32(abi.CP_RB_RPTR); v != 0 {
		t.Errorf("RPTR = %d after write with RB_RPTR_WR_ENA, want 0", v)
	}
}

func TestConsumeWraps(t *testing.T) {
	mem := make([]byte, 4096)
	for i := range mem {
		mem[i] = byte(i / 4)
	}
	cp := New()
	cp.SetMemory(mem)
	cp.Write32(abi.CP_RB_CNTL, abi.RingControl(4096))
	cp.Write32(abi.CP_RB_WPTR, 1020)
	if got := cp.Consume(4080); len(got) != 4080 {
		t.Fatalf("Consume(4080) returned %d bytes", len(got))
	}
	cp.Write32(abi.CP_RB_WPTR, 2)
	if got := cp.Pending(); got != 24 {
		t.Fatalf("Pending() = %d, want 24", got)
	}
	got := cp.ConsumeAll()
	want := append(append([]byte(nil), mem[4080:]...), mem[:8]...)
	if !bytes.Equal(got, want) {
		t.Errorf("ConsumeAll() = %x, want %x", got, want)
	}
	if v, _ := cp.Read32(abi.CP_RB_RPTR); v != 2 {
		t.Errorf("RPTR = %d, want 2", v)
	}
}

func TestClockAndLog(t *testing.T) {
	cp := New()
	t0 := cp.Now()
	cp.Sleep(time.Millisecond)
	if got := cp.Now().Sub(t0); got != time.Millisecond+DefaultTick {
		t.Errorf("clock advanced %v, want %v", got, time.Millisecond+DefaultTick)
	}
	cp.Write32(abi.CP_DEBUG, 7)
	cp.Read32(abi.CP_DEBUG)
	want := []Op{D(time.Millisecond), W(abi.CP_DEBUG, 7), R(abi.CP_DEBUG, 7)}
	if diff := cmp.Diff(want, cp.Ops()); diff != "" {
		t.Errorf("op log mismatch (-want +got):\n%s", diff)
	}
}

func TestFaultInjection(t *testing.T) {
	errBus := errors.New("bus error")
	cp := New()
	cp.SetFault(func(op Op) error {
		if op.Off == abi.CP_DEBUG {
			return errBus
		}
		return nil
	})
	if err := cp.Write32(abi.CP_DEBUG, 1); !errors.Is(err, errBus) {
		t.Errorf("Write32 = %v, want %v", err, errBus)
	}
	if _, err := cp.Read32(abi.CP_DEBUG); !errors.Is(err, errBus) {
		t.Errorf("Read32 = %v, want %v", err, errBus)
	}
	if cp.Reg(abi.CP_DEBUG) != 0 {
		t.Errorf("faulted write reached the register")
	}
}

func TestStall(t *testing.T) {
	cp := New()
	cp.SetStall(StallBeforeSoftReset)
	if v, _ := cp.Read32(abi.RBBM_STATUS); v&abi.RBBM_STATUS_GUI_ACTIVE == 0 {
		t.Errorf("GUI idle before soft reset")
	}
	cp.Write32(abi.RBBM_SOFT_RESET, abi.RBBM_SOFT_RESET_CP)
	cp.Write32(abi.RBBM_SOFT_RESET, 0)
	if v, _ := cp.Read32(abi.RBBM_STATUS); v&abi.RBBM_STATUS_GUI_ACTIVE != 0 {
		t.Errorf("GUI active after soft reset")
	}
}
