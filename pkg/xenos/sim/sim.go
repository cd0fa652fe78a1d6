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

// Package sim simulates the Xenos command processor at the register level.
//
// A CP implements mmio.Window and xenos.Clock. It records every register
// access and settle delay, models the micro engine RAM and ring pointers, and
// can be told to fault, corrupt firmware read-back or stay busy so that every
// failure path of bring-up can be exercised without hardware.
package sim

import (
	"fmt"
	"time"

	abi "github.com/free60/xenosrb/pkg/abi/xenos"
	"github.com/free60/xenosrb/pkg/sync"
)

// Kind is the kind of a recorded operation.
type Kind int

// Operation kinds.
const (
	Read Kind = iota
	Write
	Delay
)

// Op is one recorded operation.
type Op struct {
	Kind  Kind
	Off   uint32
	Value uint32
	Delay time.Duration
}

// W returns a write op, for building expected sequences.
func W(off, v uint32) Op {
	return Op{Kind: Write, Off: off, Value: v}
}

// R returns a read op that returned v.
func R(off, v uint32) Op {
	return Op{Kind: Read, Off: off, Value: v}
}

// D returns a delay op.
func D(d time.Duration) Op {
	return Op{Kind: Delay, Delay: d}
}

// String implements fmt.Stringer.
func (o Op) String() string {
	switch o.Kind {
	case Read:
		return fmt.Sprintf("read  %#06x -> %#010x", o.Off, o.Value)
	case Write:
		return fmt.Sprintf("write %#06x <- %#010x", o.Off, o.Value)
	default:
		return fmt.Sprintf("delay %v", o.Delay)
	}
}

// Stall selects a point of bring-up at which the simulated GUI stays busy.
type Stall int

// Stall points.
const (
	// NoStall lets every idle wait complete.
	NoStall Stall = iota

	// StallBeforeSoftReset keeps the GUI busy until the soft reset pulse.
	StallBeforeSoftReset

	// StallAfterSoftReset keeps the GUI busy once the soft reset is released.
	StallAfterSoftReset

	// StallAfterStart keeps the GUI busy once the engine is released after
	// the soft reset.
	StallAfterStart
)

// meRAMWords is the size of the micro engine RAM.
const meRAMWords = 4096

// DefaultTick is how far the clock moves on each call to Now.
const DefaultTick = 10 * time.Microsecond

// CP is a simulated command processor.
type CP struct {
	mu sync.Mutex

	// +checklocks:mu
	regs map[uint32]uint32
	// +checklocks:mu
	pfp []uint32
	// +checklocks:mu
	me [meRAMWords]uint32
	// +checklocks:mu
	meWaddr uint32
	// +checklocks:mu
	meRaddr uint32
	// +checklocks:mu
	rptr uint32
	// +checklocks:mu
	softResets int
	// +checklocks:mu
	ops []Op
	// +checklocks:mu
	now time.Time
	// +checklocks:mu
	tick time.Duration
	// +checklocks:mu
	stall Stall
	// +checklocks:mu
	activeReads int
	// +checklocks:mu
	corrupt map[int]bool
	// +checklocks:mu
	fault func(Op) error
	// +checklocks:mu
	memory []byte
}

// New returns an idle, halted command processor.
func New() *CP {
	return &CP{
		regs:    make(map[uint32]uint32),
		now:     time.Unix(0, 0),
		tick:    DefaultTick,
		corrupt: make(map[int]bool),
	}
}

// SetTick sets how far the clock moves on each call to Now.
func (c *CP) SetTick(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tick = d
}

// SetStall makes the GUI stay busy from the given point on.
func (c *CP) SetStall(s Stall) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stall = s
}

// SetActiveReads makes the next n reads of RBBM_STATUS report GUI_ACTIVE.
func (c *CP) SetActiveReads(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.activeReads = n
}

// CorruptME makes read-back of micro engine word k differ from what was
// written.
func (c *CP) CorruptME(k int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.corrupt[k] = true
}

// SetFault installs fn, which is consulted before every register access. A
// non-nil result fails the access; the failed access is still recorded.
func (c *CP) SetFault(fn func(Op) error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fault = fn
}

// SetMemory gives the CP the ring buffer bytes, as seen by the device, so that
// Consume can return what was published.
func (c *CP) SetMemory(b []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.memory = b
}

// Now implements xenos.Clock.Now. Each call advances the clock by one tick.
func (c *CP) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(c.tick)
	return c.now
}

// Sleep implements xenos.Clock.Sleep. The delay is recorded and the clock
// moves forward by d.
func (c *CP) Sleep(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ops = append(c.ops, D(d))
	c.now = c.now.Add(d)
}

// Ops returns the recorded operations.
func (c *CP) Ops() []Op {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Op(nil), c.ops...)
}

// ClearOps discards the recorded operations.
func (c *CP) ClearOps() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ops = nil
}

// Reg returns the current value of a plain register.
func (c *CP) Reg(off uint32) uint32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.regs[off]
}

// PFP returns the words uploaded to the prefetch parser.
func (c *CP) PFP() []uint32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]uint32(nil), c.pfp...)
}

// Halted reports whether the micro engine is halted.
func (c *CP) Halted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.regs[abi.CP_ME_CNTL]&abi.ME_HALT != 0
}

// Read32 implements mmio.Window.Read32.
func (c *CP) Read32(off uint32) (uint32, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	op := Op{Kind: Read, Off: off}
	if c.fault != nil {
		if err := c.fault(op); err != nil {
			c.ops = append(c.ops, op)
			return 0, err
		}
	}
	var v uint32
	switch off {
	case abi.CP_ME_RAM_DATA:
		k := c.meRaddr % meRAMWords
		v = c.me[k]
		if c.corrupt[int(k)] {
			v = ^v
		}
		c.meRaddr++
	case abi.CP_RB_RPTR:
		v = c.rptr
	case abi.RBBM_STATUS:
		if c.activeLocked() {
			v = abi.RBBM_STATUS_GUI_ACTIVE
		}
	default:
		v = c.regs[off]
	}
	op.Value = v
	c.ops = append(c.ops, op)
	return v, nil
}

// Write32 implements mmio.Window.Write32.
func (c *CP) Write32(off, v uint32) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	op := W(off, v)
	c.ops = append(c.ops, op)
	if c.fault != nil {
		if err := c.fault(op); err != nil {
			return err
		}
	}
	switch off {
	case abi.CP_PFP_UCODE_ADDR:
		c.pfp = c.pfp[:0]
	case abi.CP_PFP_UCODE_DATA:
		c.pfp = append(c.pfp, v)
	case abi.CP_ME_RAM_WADDR:
		c.meWaddr = v
	case abi.CP_ME_RAM_RADDR:
		c.meRaddr = v
	case abi.CP_ME_RAM_DATA:
		c.me[c.meWaddr%meRAMWords] = v
		c.meWaddr++
	case abi.CP_RB_RPTR_WR:
		if c.regs[abi.CP_RB_CNTL]&abi.RB_RPTR_WR_ENA != 0 {
			c.rptr = v
		}
	case abi.RBBM_SOFT_RESET:
		if v&abi.RBBM_SOFT_RESET_CP != 0 {
			// A CP soft reset loses the ring setup.
			c.softResets++
			c.regs[abi.CP_RB_BASE] = 0
			c.regs[abi.CP_RB_CNTL] = 0
			c.rptr = 0
		}
	}
	c.regs[off] = v
	return nil
}

// activeLocked reports whether RBBM_STATUS shows GUI_ACTIVE.
//
// Preconditions: c.mu is held.
func (c *CP) activeLocked() bool {
	if c.activeReads > 0 {
		c.activeReads--
		return true
	}
	switch c.stall {
	case StallBeforeSoftReset:
		return c.softResets == 0
	case StallAfterSoftReset:
		return c.softResets > 0 && c.regs[abi.RBBM_SOFT_RESET] == 0
	case StallAfterStart:
		return c.softResets > 0 && c.regs[abi.CP_ME_CNTL]&abi.ME_HALT == 0
	}
	return false
}

// ringSizeLocked returns the ring size programmed in CP_RB_CNTL.
//
// Preconditions: c.mu is held.
func (c *CP) ringSizeLocked() uint32 {
	return 8 << (c.regs[abi.CP_RB_CNTL] & abi.RB_BUFSZ_MASK)
}

// Pending returns the number of published bytes the CP has not consumed.
func (c *CP) Pending() uint32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	size := c.ringSizeLocked()
	return (c.regs[abi.CP_RB_WPTR]*4 - c.rptr*4) & (size - 1)
}

// Consume advances the read pointer by up to n bytes of published commands,
// as the engine would on fetching them, and returns the bytes consumed. The
// returned slice is nil unless SetMemory was called.
func (c *CP) Consume(n int) []byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	size := c.ringSizeLocked()
	pending := (c.regs[abi.CP_RB_WPTR]*4 - c.rptr*4) & (size - 1)
	take := min(uint32(n)&^3, pending)

	var out []byte
	if c.memory != nil {
		out = make([]byte, 0, take)
		for off, left := c.rptr*4%size, take; left > 0; {
			chunk := min(left, size-off)
			out = append(out, c.memory[off:off+chunk]...)
			off = (off + chunk) % size
			left -= chunk
		}
	}
	c.rptr = (c.rptr + take/4) & (size/4 - 1)
	return out
}

// ConsumeAll consumes every published byte.
func (c *CP) ConsumeAll() []byte {
	return c.Consume(int(c.Pending()))
}
