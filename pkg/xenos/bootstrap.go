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
	"time"

	abi "github.com/free60/xenosrb/pkg/abi/xenos"
)

// Settle delays required by the command processor between register writes.
const (
	haltSettle      = time.Millisecond
	pointerSettle   = time.Millisecond
	ucodeAddrSettle = 100 * time.Microsecond
	toggleSettle    = 2 * time.Millisecond
	softResetSettle = time.Millisecond
)

// DefaultIdleTimeout bounds each wait for the graphics pipeline to go idle.
const DefaultIdleTimeout = 250 * time.Millisecond

// regSeq issues a sequence of register accesses on behalf of one stage. After
// the first failure every further access is skipped and err holds an
// *IOFault.
//
// The caller must hold the register lock for the lifetime of a regSeq.
type regSeq struct {
	d     *Device
	stage State
	err   error
}

// write issues a register write unless an earlier access failed.
func (s *regSeq) write(off, v uint32) {
	if s.err != nil {
		return
	}
	if err := s.d.win.Write32(off, v); err != nil {
		s.err = &IOFault{Stage: s.stage, Op: "write", Offset: off, Word: -1, Err: err}
	}
}

// read returns a register value, or 0 once an access has failed.
func (s *regSeq) read(off uint32) uint32 {
	if s.err != nil {
		return 0
	}
	v, err := s.d.win.Read32(off)
	if err != nil {
		s.err = &IOFault{Stage: s.stage, Op: "read", Offset: off, Word: -1, Err: err}
	}
	return v
}

// settle waits d for the hardware unless an access has failed.
func (s *regSeq) settle(d time.Duration) {
	if s.err == nil {
		s.d.clock.Sleep(d)
	}
}

// bootstrap brings the command processor from an unknown state to running
// the ring. On failure the device is left halted in state Failed.
//
// Preconditions: d.writeMu is held.
func (d *Device) bootstrap() error {
	for _, step := range []struct {
		stage State
		run   func(State) error
	}{
		{Halted, d.locked(d.haltLocked)},
		{PointersReset, d.locked(d.resetPointersLocked)},
		{RingProgrammed, d.locked(d.programRingLocked)},
		{PFPLoaded, d.locked(d.loadPFPLocked)},
		{MELoaded, d.locked(d.loadMELocked)},
		{IdleWait1, d.waitIdle},
		{Toggled, d.locked(d.toggleLocked)},
		{SoftReset, d.locked(d.softResetLocked)},
		{IdleWait2, d.waitIdle},
		{Running, d.start},
	} {
		d.log.Debugf("xenos: entering %v", step.stage)
		if err := step.run(step.stage); err != nil {
			d.fail(err)
			return err
		}
		d.setState(step.stage)
	}
	return nil
}

// locked runs fn under the register lock.
func (d *Device) locked(fn func(State) error) func(State) error {
	return func(stage State) error {
		d.regMu.Lock()
		defer d.regMu.Unlock()
		return fn(stage)
	}
}

// fail records err, moves to Failed and halts the command processor.
func (d *Device) fail(err error) {
	d.log.Warningf("xenos: bring-up failed: %v", err)
	d.setErr(err)
	d.setState(Failed)

	d.regMu.Lock()
	defer d.regMu.Unlock()
	if herr := d.win.Write32(abi.CP_ME_CNTL, abi.ME_CNTL_HALT); herr != nil {
		d.log.Warningf("xenos: halting after failure: %v", herr)
	}
}

// Preconditions: d.regMu is held.
func (d *Device) haltLocked(stage State) error {
	s := regSeq{d: d, stage: stage}
	s.write(abi.CP_ME_CNTL, abi.ME_CNTL_HALT)
	s.settle(haltSettle)
	return s.err
}

// resetPointersLocked zeroes the hardware read and write pointers. The read
// pointer is only writable while RB_RPTR_WR_ENA is set; the enable is never
// left set, even if an earlier reset stopped half way.
//
// Preconditions: d.regMu is held.
func (d *Device) resetPointersLocked(stage State) error {
	s := regSeq{d: d, stage: stage}
	cntl := s.read(abi.CP_RB_CNTL) &^ abi.RB_RPTR_WR_ENA
	s.write(abi.CP_RB_CNTL, cntl|abi.RB_RPTR_WR_ENA)
	s.write(abi.CP_RB_RPTR_WR, 0)
	s.write(abi.CP_RB_WPTR, 0)
	s.settle(pointerSettle)
	s.write(abi.CP_RB_CNTL, cntl)
	return s.err
}

// Preconditions: d.regMu is held.
func (d *Device) programRingLocked(stage State) error {
	s := regSeq{d: d, stage: stage}
	s.write(abi.CP_RB_CNTL, abi.RingControl(d.capacity))
	s.write(abi.CP_RB_BASE, d.phys)
	return s.err
}

// loadPFPLocked streams the prefetch parser image. Reading it back returns
// data from an unrelated offset on real hardware, so it is not verified.
//
// Preconditions: d.regMu is held.
func (d *Device) loadPFPLocked(stage State) error {
	s := regSeq{d: d, stage: stage}
	s.write(abi.CP_PFP_UCODE_ADDR, 0)
	s.settle(ucodeAddrSettle)
	for _, w := range abi.PFPMicrocode {
		s.write(abi.CP_PFP_UCODE_DATA, w)
	}
	return s.err
}

// loadMELocked streams the micro engine image and reads it back.
//
// Preconditions: d.regMu is held.
func (d *Device) loadMELocked(stage State) error {
	s := regSeq{d: d, stage: stage}
	s.write(abi.CP_ME_RAM_WADDR, 0)
	s.settle(ucodeAddrSettle)
	for _, w := range abi.MEMicrocode {
		s.write(abi.CP_ME_RAM_DATA, w)
	}
	s.write(abi.CP_ME_RAM_RADDR, 0)
	s.settle(ucodeAddrSettle)
	for k, want := range abi.MEMicrocode {
		got := s.read(abi.CP_ME_RAM_DATA)
		if s.err != nil {
			return s.err
		}
		if got != want {
			return &IOFault{
				Stage:  stage,
				Op:     "verify",
				Offset: abi.CP_ME_RAM_DATA,
				Word:   k,
				Err:    fmt.Errorf("read back %#08x, want %#08x", got, want),
			}
		}
	}
	return nil
}

// waitIdle polls RBBM_STATUS until GUI_ACTIVE clears. The register lock is
// held only across each read.
func (d *Device) waitIdle(stage State) error {
	deadline := d.clock.Now().Add(d.idleTimeout)
	for {
		d.regMu.Lock()
		s := regSeq{d: d, stage: stage}
		status := s.read(abi.RBBM_STATUS)
		d.regMu.Unlock()
		if s.err != nil {
			return s.err
		}
		if status&abi.RBBM_STATUS_GUI_ACTIVE == 0 {
			return nil
		}
		if !d.clock.Now().Before(deadline) {
			return &TimeoutError{Stage: stage, Bound: d.idleTimeout}
		}
	}
}

// toggleLocked runs the engine briefly to acknowledge stale interrupts, then
// halts it again ahead of the soft reset.
//
// Preconditions: d.regMu is held.
func (d *Device) toggleLocked(stage State) error {
	s := regSeq{d: d, stage: stage}
	s.write(abi.CP_ME_CNTL, abi.ME_CNTL_RUN)
	s.write(abi.CP_INT_ACK, abi.CP_INT_ACK_RTS_ALL)
	s.write(abi.CP_DEBUG, 0)
	s.write(abi.CP_ME_CNTL, abi.ME_CNTL_HALT)
	s.settle(toggleSettle)
	return s.err
}

// Preconditions: d.regMu is held.
func (d *Device) softResetLocked(stage State) error {
	s := regSeq{d: d, stage: stage}
	s.write(abi.RBBM_SOFT_RESET, abi.RBBM_SOFT_RESET_CP)
	s.settle(softResetSettle)
	s.write(abi.RBBM_SOFT_RESET, 0)
	s.settle(softResetSettle)
	return s.err
}

// start reprograms the ring, which the soft reset may have cleared, releases
// the engine and checks that it goes idle.
func (d *Device) start(stage State) error {
	d.regMu.Lock()
	s := regSeq{d: d, stage: stage}
	s.write(abi.CP_RB_BASE, d.phys)
	s.write(abi.CP_RB_CNTL, abi.RingControl(d.capacity))
	s.write(abi.CP_ME_CNTL, abi.ME_CNTL_RUN)
	d.regMu.Unlock()
	if s.err != nil {
		return s.err
	}
	if err := d.waitIdle(stage); err != nil {
		return err
	}

	d.regMu.Lock()
	defer d.regMu.Unlock()
	s.write(abi.CP_RB_WPTR_DELAY, d.wptrDelay)
	return s.err
}

// shutdownLocked halts the engine with every queue disabled and clears the
// ring registers. It carries on past failures and returns the first.
//
// Preconditions: d.regMu is held.
func (d *Device) shutdownLocked() error {
	var first error
	for _, w := range []struct{ off, v uint32 }{
		{abi.CP_ME_CNTL, abi.ME_CNTL_SHUTDOWN},
		{abi.CP_RB_CNTL, 0},
		{abi.CP_RB_BASE, 0},
	} {
		if err := d.win.Write32(w.off, w.v); err != nil && first == nil {
			first = &IOFault{Stage: Detached, Op: "write", Offset: w.off, Word: -1, Err: err}
		}
	}
	if err := d.resetPointersLocked(Detached); err != nil && first == nil {
		first = err
	}
	return first
}
