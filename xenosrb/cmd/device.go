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

// Package cmd holds implementations of the xenosrb commands.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/gofrs/flock"

	"github.com/free60/xenosrb/pkg/cleanup"
	"github.com/free60/xenosrb/pkg/dma"
	"github.com/free60/xenosrb/pkg/log"
	"github.com/free60/xenosrb/pkg/mmio"
	"github.com/free60/xenosrb/pkg/pci"
	"github.com/free60/xenosrb/pkg/xenos"
	"github.com/free60/xenosrb/pkg/xenos/sim"
	"github.com/free60/xenosrb/xenosrb/config"
)

const (
	// devMemPath maps reserved physical memory for --dma=devmem.
	devMemPath = "/dev/mem"

	// simRingBase is the bus address reported for the simulated ring.
	simRingBase = 0x1F00_0000

	// simConsumeInterval and simConsumeChunk pace the simulated engine.
	simConsumeInterval = 100 * time.Microsecond
	simConsumeChunk    = 2048

	// attachRetryDelay is the pause between bring-up attempts.
	attachRetryDelay = 100 * time.Millisecond
)

// handle is an attached device and whatever must be undone after it is
// detached.
type handle struct {
	dev *xenos.Device

	// name is the PCI address, or "sim".
	name string

	// cp is the simulated engine, nil for hardware.
	cp *sim.CP

	cu cleanup.Cleanup
}

// Close detaches the device.
func (h *handle) Close() error {
	err := h.dev.Detach()
	h.cu.Clean()
	return err
}

// openDevice attaches to the device selected by conf.
func openDevice(conf *config.Config) (*handle, error) {
	if conf.Backend == config.BackendSim {
		return openSim(conf)
	}
	return openSysfs(conf)
}

func attachOptions(conf *config.Config) xenos.Options {
	return xenos.Options{
		Size:        conf.RingSize,
		IdleTimeout: conf.IdleTimeout,
		WptrDelay:   uint32(conf.WptrDelay),
		Logger:      log.Log(),
	}
}

// window wraps w in a tracer when debug logging is on.
func window(w mmio.Window) mmio.Window {
	if log.IsLogging(log.Debug) {
		return &mmio.Traced{Window: w, Logger: log.Log()}
	}
	return w
}

// openSim attaches to a simulated command processor that keeps consuming the
// ring in the background.
func openSim(conf *config.Config) (*handle, error) {
	cp := sim.New()
	buf := dma.NewHeap(conf.RingSize, simRingBase)
	cp.SetMemory(buf.Bytes())

	opts := attachOptions(conf)
	opts.Clock = cp
	dev, err := attach(conf, window(cp), buf, opts)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		t := time.NewTicker(simConsumeInterval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				cp.Consume(simConsumeChunk)
				// Nothing inspects the access log here.
				cp.ClearOps()
			}
		}
	}()
	return &handle{
		dev:  dev,
		name: "sim",
		cp:   cp,
		cu: cleanup.Make(func() {
			cancel()
			<-done
		}),
	}, nil
}

// openSysfs attaches to a real graphics function. The function is locked for
// the lifetime of the handle so that two processes never drive it at once.
func openSysfs(conf *config.Config) (*handle, error) {
	fn, err := pci.Lookup(conf.SysfsRoot, conf.Device)
	if err != nil {
		return nil, err
	}
	log.Infof("Using %s (%s), BAR0 %#x-%#x, IRQ %d", fn.Address, fn.Model, fn.BAR0.Start, fn.BAR0.End, fn.IRQ)

	lk, err := lockDevice(conf.RunDir, fn.Address)
	if err != nil {
		return nil, err
	}
	cu := cleanup.Make(func() { _ = lk.Unlock() })
	defer cu.Clean()

	m, err := mmio.Map(fn.RegisterPath(), int(fn.BAR0.Size()))
	if err != nil {
		return nil, err
	}
	cu.Add(func() { _ = m.Close() })

	buf, err := allocRing(conf)
	if err != nil {
		return nil, err
	}
	cu.Add(func() { _ = buf.Release() })

	opts := attachOptions(conf)
	opts.Lock = lk
	dev, err := attach(conf, window(m), buf, opts)
	if err != nil {
		return nil, err
	}
	cu.Release()

	// The device owns the mapping, but a tracing wrapper hides its Close.
	return &handle{
		dev:  dev,
		name: fn.Address,
		cu:   cleanup.Make(func() { _ = m.Close() }),
	}, nil
}

// lockDevice takes a file lock for the function at addr in runDir.
func lockDevice(runDir, addr string) (*flock.Flock, error) {
	if err := os.MkdirAll(runDir, 0711); err != nil {
		return nil, fmt.Errorf("error creating run directory %q: %v", runDir, err)
	}
	f := filepath.Join(runDir, strings.ReplaceAll(addr, ":", "_")+".lock")
	l := flock.NewFlock(f)
	locked, err := l.TryLock()
	if err != nil {
		return nil, fmt.Errorf("error acquiring lock on device lock file %q: %v", f, err)
	}
	if !locked {
		return nil, fmt.Errorf("device %s is in use by another process (lock file %q)", addr, f)
	}
	return l, nil
}

// allocRing allocates DMA memory for the ring as selected by conf.
func allocRing(conf *config.Config) (dma.Buffer, error) {
	switch conf.DMA {
	case config.DMAPinned:
		return dma.NewPinned(conf.RingSize)
	case config.DMADevMem:
		return dma.OpenCarveout(devMemPath, conf.DevMemBase, conf.RingSize)
	default:
		return nil, fmt.Errorf("--dma=%v memory cannot be reached by the device", conf.DMA)
	}
}

// attach runs bring-up, retrying failed attempts up to conf.AttachRetries
// times. Only hardware failures are retried.
func attach(conf *config.Config, w mmio.Window, buf dma.Buffer, opts xenos.Options) (*xenos.Device, error) {
	var dev *xenos.Device
	attempt := 0
	op := func() error {
		attempt++
		d, err := xenos.Attach(w, buf, opts)
		if err == nil {
			dev = d
			return nil
		}
		var (
			fault   *xenos.IOFault
			timeout *xenos.TimeoutError
		)
		if errors.As(err, &fault) || errors.As(err, &timeout) {
			log.Warningf("Bring-up attempt %d failed: %v", attempt, err)
			return err
		}
		return backoff.Permanent(err)
	}
	b := backoff.WithMaxRetries(backoff.NewConstantBackOff(attachRetryDelay), uint64(conf.AttachRetries))
	if err := backoff.Retry(op, b); err != nil {
		return nil, fmt.Errorf("attaching after %d attempts: %w", attempt, err)
	}
	return dev, nil
}
