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

package cmd

import (
	"bytes"
	"encoding/binary"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/common/expfmt"

	abi "github.com/free60/xenosrb/pkg/abi/xenos"
	"github.com/free60/xenosrb/pkg/dma"
	"github.com/free60/xenosrb/pkg/xenos"
	"github.com/free60/xenosrb/pkg/xenos/sim"
	"github.com/free60/xenosrb/xenosrb/config"
)

func simConfig(t *testing.T, args ...string) *config.Config {
	t.Helper()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	config.RegisterFlags(fs)
	args = append([]string{"--backend=sim", "--dma=heap", "--ring-size=4096", "--run-dir=" + t.TempDir()}, args...)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse(%v): %v", args, err)
	}
	conf, err := config.NewFromFlags(fs)
	if err != nil {
		t.Fatalf("NewFromFlags: %v", err)
	}
	return conf
}

func TestReadPayloads(t *testing.T) {
	dir := t.TempDir()
	write := func(name string, n int) string {
		p := filepath.Join(dir, name)
		b := make([]byte, n)
		for i := range b {
			b[i] = byte(i)
		}
		if err := os.WriteFile(p, b, 0644); err != nil {
			t.Fatal(err)
		}
		return p
	}
	a := write("a", 40)
	b := write("b", 8)

	got, err := readPayloads([]string{a, b}, 16)
	if err != nil {
		t.Fatalf("readPayloads: %v", err)
	}
	var lens []int
	for _, p := range got {
		lens = append(lens, len(p))
	}
	if want := []int{16, 16, 8, 8}; !cmp.Equal(lens, want) {
		t.Errorf("payload lengths = %v, want %v", lens, want)
	}

	whole, err := readPayloads([]string{a}, 0)
	if err != nil {
		t.Fatalf("readPayloads: %v", err)
	}
	if len(whole) != 1 || len(whole[0]) != 40 {
		t.Errorf("readPayloads without chunking returned %d payloads", len(whole))
	}

	odd := write("odd", 6)
	if _, err := readPayloads([]string{odd}, 0); !errors.Is(err, xenos.ErrInvalidLength) {
		t.Errorf("readPayloads(odd) = %v, want ErrInvalidLength", err)
	}
	if _, err := readPayloads([]string{filepath.Join(dir, "missing")}, 0); err == nil {
		t.Errorf("readPayloads(missing) succeeded")
	}
}

func TestImageBytes(t *testing.T) {
	got := imageBytes([]uint32{0x01020304, 0xA0B0C0D0})
	want := []byte{1, 2, 3, 4, 0xA0, 0xB0, 0xC0, 0xD0}
	if !bytes.Equal(got, want) {
		t.Errorf("imageBytes = %x, want %x", got, want)
	}
	if imageDigest(abi.PFPMicrocode[:]) == imageDigest(abi.MEMicrocode[:]) {
		t.Errorf("PFP and ME images have the same digest")
	}
	if d := imageDigest(nil); len(d) != 64 {
		t.Errorf("digest %q is not 32 hex bytes", d)
	}

	var out bytes.Buffer
	printImage(&out, "pfp", abi.PFPMicrocode[:])
	if !strings.Contains(out.String(), imageDigest(abi.PFPMicrocode[:])) {
		t.Errorf("printImage output %q lacks the digest", out.String())
	}
}

func TestFillerPayload(t *testing.T) {
	p := fillerPayload(32)
	if len(p) != 32 {
		t.Fatalf("len = %d, want 32", len(p))
	}
	for off := 0; off < len(p); off += 4 {
		if w := binary.NativeEndian.Uint32(p[off:]); w != abi.PM4_TYPE2 {
			t.Errorf("word at %d = %#x, want %#x", off, w, abi.PM4_TYPE2)
		}
	}
}

func TestLockDevice(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	l, err := lockDevice(dir, "0000:00:02.0")
	if err != nil {
		t.Fatalf("lockDevice: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "0000_00_02.0.lock")); err != nil {
		t.Errorf("lock file: %v", err)
	}
	if _, err := lockDevice(dir, "0000:00:02.0"); err == nil || !strings.Contains(err.Error(), "in use") {
		t.Errorf("second lockDevice = %v, want in use error", err)
	}
	if err := l.Unlock(); err != nil {
		t.Fatalf("Unlock: %v", err)
	}
	l2, err := lockDevice(dir, "0000:00:02.0")
	if err != nil {
		t.Fatalf("lockDevice after unlock: %v", err)
	}
	_ = l2.Unlock()
}

func TestAllocRingHeapRejected(t *testing.T) {
	conf := simConfig(t)
	if _, err := allocRing(conf); err == nil {
		t.Errorf("allocRing(heap) succeeded for hardware")
	}
}

func TestAttachRetries(t *testing.T) {
	conf := simConfig(t, "--idle-timeout=1ms", "--attach-retries=2")
	cp := sim.New()
	// Enough busy reads to outlast the first attempt but not the second.
	cp.SetActiveReads(120)
	buf := dma.NewHeap(conf.RingSize, simRingBase)
	opts := attachOptions(conf)
	opts.Clock = cp

	dev, err := attach(conf, cp, buf, opts)
	if err != nil {
		t.Fatalf("attach: %v", err)
	}
	if got := dev.State(); got != xenos.Running {
		t.Errorf("State = %v, want Running", got)
	}
	if err := dev.Detach(); err != nil {
		t.Errorf("Detach: %v", err)
	}
}

func TestAttachGivesUp(t *testing.T) {
	conf := simConfig(t, "--idle-timeout=1ms", "--attach-retries=1")
	cp := sim.New()
	cp.SetStall(sim.StallBeforeSoftReset)
	buf := dma.NewHeap(conf.RingSize, simRingBase)
	opts := attachOptions(conf)
	opts.Clock = cp

	_, err := attach(conf, cp, buf, opts)
	var timeout *xenos.TimeoutError
	if !errors.As(err, &timeout) {
		t.Fatalf("attach = %v, want TimeoutError", err)
	}
	if !strings.Contains(err.Error(), "after 2 attempts") {
		t.Errorf("attach error %q does not count two attempts", err)
	}
}

func TestAttachPermanent(t *testing.T) {
	conf := simConfig(t)
	cp := sim.New()
	// Too small for the configured ring.
	buf := dma.NewHeap(xenos.MinRingSize/2, simRingBase)
	opts := attachOptions(conf)
	opts.Clock = cp

	_, err := attach(conf, cp, buf, opts)
	if err == nil {
		t.Fatalf("attach succeeded with a short buffer")
	}
	if !strings.Contains(err.Error(), "after 1 attempts") {
		t.Errorf("attach error %q was retried", err)
	}
}

func TestSimDevice(t *testing.T) {
	h, err := openDevice(simConfig(t))
	if err != nil {
		t.Fatalf("openDevice: %v", err)
	}
	payload := fillerPayload(1024)
	for i := 0; i < 16; i++ {
		for {
			err := h.dev.Append(payload)
			if err == nil {
				break
			}
			if !errors.Is(err, xenos.ErrBusy) {
				t.Fatalf("Append %d: %v", i, err)
			}
			time.Sleep(time.Millisecond)
		}
	}
	deadline := time.Now().Add(5 * time.Second)
	for h.cp.Pending() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("simulated engine left %d bytes pending", h.cp.Pending())
		}
		time.Sleep(time.Millisecond)
	}
	st := h.dev.Stats()
	if st.Appends != 16 || st.Bytes != 16*1024 {
		t.Errorf("Stats = %+v, want 16 appends of 1024 bytes", st)
	}

	var out bytes.Buffer
	if err := writeMetrics(&out, h.name, st); err != nil {
		t.Fatalf("writeMetrics: %v", err)
	}
	var parser expfmt.TextParser
	mfs, err := parser.TextToMetricFamilies(&out)
	if err != nil {
		t.Fatalf("parsing metrics: %v", err)
	}
	if got := mfs["xenos_ring_appends_total"].GetMetric()[0].GetCounter().GetValue(); got != 16 {
		t.Errorf("xenos_ring_appends_total = %v, want 16", got)
	}

	if err := h.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
	if got := h.dev.State(); got != xenos.Detached {
		t.Errorf("State after Close = %v, want Detached", got)
	}
}
