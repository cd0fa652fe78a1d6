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

// Package xenos drives the command ring of the Xenos GPU command processor.
//
// A Device owns a ring buffer in DMA memory and the command processor's
// register window. Attach brings the processor up (halt, pointer reset, ring
// programming, firmware upload and verification, soft reset and idle waits);
// producers then publish opaque command words with Append.
//
// Lock ordering:
//
//	Device.writeMu
//	  Device.regMu
//
// regMu guards every register access and is the only lock taken on the
// interrupt path.
package xenos

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"sync/atomic"
	"time"

	abi "github.com/free60/xenosrb/pkg/abi/xenos"
	"github.com/free60/xenosrb/pkg/cleanup"
	"github.com/free60/xenosrb/pkg/dma"
	"github.com/free60/xenosrb/pkg/log"
	"github.com/free60/xenosrb/pkg/mmio"
	"github.com/free60/xenosrb/pkg/sync"
)

// Unlocker is an ownership lock held for the lifetime of a Device, such as a
// *flock.Flock.
type Unlocker interface {
	Unlock() error
}

// Options configures Attach. The zero value is usable.
type Options struct {
	// Size is the requested ring size in bytes, rounded down to a power of
	// two. Zero means the whole buffer.
	Size int

	// IdleTimeout bounds each idle wait. Zero means DefaultIdleTimeout.
	IdleTimeout time.Duration

	// WptrDelay is written to CP_RB_WPTR_DELAY once the engine runs. Zero
	// means abi.DefaultWptrDelay.
	WptrDelay uint32

	// Clock defaults to RealClock.
	Clock Clock

	// Logger defaults to log.Log().
	Logger log.Logger

	// Lock, if set, is released by Detach.
	Lock Unlocker
}

// regLock serializes register access. It is shared with the interrupt path
// and is always the innermost lock.
type regLock struct {
	sync.Mutex
}

// Device is an attached command processor.
type Device struct {
	win       mmio.Window
	buf       dma.Buffer
	lock      Unlocker
	phys      uint32
	capacity  uint32
	wptrDelay uint32

	idleTimeout time.Duration
	clock       Clock
	log         log.Logger
	busyLog     log.Logger

	// writeMu serializes Append, Reset and Detach.
	writeMu sync.Mutex

	// +checklocks:writeMu
	ring Ring

	// +checklocks:writeMu
	detached bool

	regMu regLock

	state atomic.Uint32
	err   atomic.Pointer[error]

	counters counters
}

// Attach brings up the command processor behind w and starts it consuming a
// ring placed at the start of buf.
//
// On success the Device owns w, buf and opts.Lock until Detach. On failure
// Attach leaves the processor halted with its ring registers cleared and
// returns a nil Device; w, buf and opts.Lock remain the caller's.
func Attach(w mmio.Window, buf dma.Buffer, opts Options) (*Device, error) {
	size := opts.Size
	if size == 0 {
		size = len(buf.Bytes())
	}
	capacity, err := RoundCapacity(size)
	if err != nil {
		return nil, err
	}
	if int(capacity) > len(buf.Bytes()) {
		return nil, fmt.Errorf("ring of %d bytes does not fit in a %d byte buffer", capacity, len(buf.Bytes()))
	}
	phys := buf.PhysAddr()
	if phys > math.MaxUint32 || phys%MinRingSize != 0 {
		return nil, fmt.Errorf("ring base %#x is not a page aligned 32-bit address", phys)
	}

	d := &Device{
		win:         w,
		buf:         buf,
		lock:        opts.Lock,
		phys:        uint32(phys),
		capacity:    capacity,
		wptrDelay:   opts.WptrDelay,
		idleTimeout: opts.IdleTimeout,
		clock:       opts.Clock,
		log:         opts.Logger,
		ring:        newRing(buf.Bytes(), capacity),
	}
	if d.wptrDelay == 0 {
		d.wptrDelay = abi.DefaultWptrDelay
	}
	if d.idleTimeout == 0 {
		d.idleTimeout = DefaultIdleTimeout
	}
	if d.clock == nil {
		d.clock = RealClock{}
	}
	if d.log == nil {
		d.log = log.Log()
	}
	d.busyLog = log.RateLimitedLogger(d.log, time.Second)

	d.writeMu.Lock()
	defer d.writeMu.Unlock()

	cu := cleanup.Make(func() {
		d.regMu.Lock()
		defer d.regMu.Unlock()
		if err := d.shutdownLocked(); err != nil {
			d.log.Warningf("xenos: clearing ring registers after failed bring-up: %v", err)
		}
	})
	defer cu.Clean()

	if err := d.bootstrap(); err != nil {
		return nil, err
	}
	d.ring.reset()
	cu.Release()

	d.log.Infof("xenos: command processor running, %d byte ring at %#x", capacity, d.phys)
	return d, nil
}

// State returns the last bring-up phase completed, Failed or Detached.
func (d *Device) State() State {
	return State(d.state.Load())
}

func (d *Device) setState(s State) {
	d.state.Store(uint32(s))
}

// Err returns the error that moved the device to Failed, if any.
func (d *Device) Err() error {
	if p := d.err.Load(); p != nil {
		return *p
	}
	return nil
}

func (d *Device) setErr(err error) {
	d.err.Store(&err)
}

// Capacity returns the ring size in bytes.
func (d *Device) Capacity() uint32 {
	return d.capacity
}

// Append copies payload into the ring and rings the doorbell.
//
// payload must be a whole number of 32-bit words. Append never waits for
// space: if the ring is full after refreshing the hardware read pointer it
// returns ErrBusy and leaves the ring untouched.
func (d *Device) Append(payload []byte) error {
	return d.AppendFrom(bytes.NewReader(payload), len(payload))
}

// AppendFrom is like Append but copies n bytes from r. If r fails before
// yielding n bytes, AppendFrom returns an *IOFault and nothing is published.
func (d *Device) AppendFrom(r io.Reader, n int) error {
	if n%4 != 0 || n < 0 {
		return ErrInvalidLength
	}

	d.writeMu.Lock()
	defer d.writeMu.Unlock()

	if d.detached || d.State() != Running {
		return ErrNotRunning
	}
	if n == 0 {
		return nil
	}

	if err := d.reserveLocked(n); err != nil {
		return err
	}

	first, second := d.ring.SplitForWrite(uint32(n))
	for _, reg := range []Region{first, second} {
		if reg.Len == 0 {
			continue
		}
		if _, err := io.ReadFull(r, d.ring.slice(reg)); err != nil {
			return &IOFault{Stage: Running, Op: "copy", Word: -1, Err: err}
		}
	}

	// The device may fetch any cacheline of the ring, so flush all of it.
	if err := d.buf.Flush(0, int(d.capacity)); err != nil {
		return &IOFault{Stage: Running, Op: "flush", Word: -1, Err: err}
	}
	d.ring.advance(uint32(n))
	d.counters.appends.Add(1)
	d.counters.bytes.Add(uint64(n))

	d.regMu.Lock()
	defer d.regMu.Unlock()
	s := regSeq{d: d, stage: Running}
	s.write(abi.CP_RB_WPTR, d.ring.Head()/4)
	return s.err
}

// reserveLocked checks that n bytes are free, refreshing the tail from the
// hardware if the current snapshot is not enough.
//
// Preconditions: d.writeMu is held.
func (d *Device) reserveLocked(n int) error {
	if n < int(d.capacity) {
		if uint32(n) <= d.ring.FreeSpace() {
			return nil
		}
		if err := d.refreshTailLocked(); err != nil {
			return err
		}
		if uint32(n) <= d.ring.FreeSpace() {
			return nil
		}
	}
	d.counters.busy.Add(1)
	d.busyLog.Debugf("xenos: ring full: %d bytes requested, %d free", n, d.ring.FreeSpace())
	return ErrBusy
}

// refreshTailLocked reloads the tail from CP_RB_RPTR, which counts words.
//
// Preconditions: d.writeMu is held.
func (d *Device) refreshTailLocked() error {
	d.regMu.Lock()
	s := regSeq{d: d, stage: Running}
	rptr := s.read(abi.CP_RB_RPTR)
	d.regMu.Unlock()
	if s.err != nil {
		return s.err
	}
	d.ring.setTail(rptr * 4)
	d.counters.tailRefreshes.Add(1)
	return nil
}

// Reset halts the engine, zeroes the hardware and software ring pointers and
// restarts it. Firmware is assumed to be resident.
//
// If Reset fails the device moves to Failed and Append returns ErrNotRunning
// until a later Reset succeeds.
func (d *Device) Reset() error {
	d.writeMu.Lock()
	defer d.writeMu.Unlock()
	if d.detached {
		return ErrNotRunning
	}

	d.regMu.Lock()
	defer d.regMu.Unlock()

	s := regSeq{d: d, stage: Halted}
	s.write(abi.CP_ME_CNTL, abi.ME_CNTL_HALT)
	if s.err == nil {
		s.err = d.resetPointersLocked(PointersReset)
	}
	d.ring.reset()
	s.stage = Running
	s.write(abi.CP_ME_CNTL, abi.ME_CNTL_RUN)
	d.counters.resets.Add(1)
	if s.err != nil {
		d.log.Warningf("xenos: ring reset failed: %v", s.err)
		d.setErr(s.err)
		d.setState(Failed)
		return s.err
	}
	d.setState(Running)
	d.log.Debugf("xenos: ring reset")
	return nil
}

// HandleInterrupt services the command processor interrupt. Nothing needs
// acknowledging yet; it reports the interrupt as handled.
func (d *Device) HandleInterrupt() bool {
	d.regMu.Lock()
	d.counters.interrupts.Add(1)
	d.regMu.Unlock()
	return true
}

// Detach stops the command processor, clears its ring registers and releases
// the window, buffer and ownership lock. It is idempotent. Detach on the nil
// device returned by a failed Attach does nothing: Attach has already shut the
// hardware down, and the window, buffer and lock remain the caller's.
func (d *Device) Detach() error {
	if d == nil {
		return nil
	}
	d.writeMu.Lock()
	defer d.writeMu.Unlock()
	if d.detached {
		return nil
	}
	d.detached = true

	d.regMu.Lock()
	err := d.shutdownLocked()
	d.regMu.Unlock()
	d.setState(Detached)

	var errs []error
	if err != nil {
		errs = append(errs, err)
	}
	if rerr := d.buf.Release(); rerr != nil {
		errs = append(errs, fmt.Errorf("releasing ring buffer: %w", rerr))
	}
	if c, ok := d.win.(io.Closer); ok {
		if cerr := c.Close(); cerr != nil {
			errs = append(errs, fmt.Errorf("closing register window: %w", cerr))
		}
	}
	if d.lock != nil {
		if uerr := d.lock.Unlock(); uerr != nil {
			errs = append(errs, fmt.Errorf("releasing device lock: %w", uerr))
		}
	}
	d.log.Infof("xenos: detached")
	return errors.Join(errs...)
}
