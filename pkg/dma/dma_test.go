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

package dma

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestHeap(t *testing.T) {
	h := NewHeap(4096, 0x1000_0000)
	if got := len(h.Bytes()); got != 4096 {
		t.Fatalf("len(Bytes()) = %d, want 4096", got)
	}
	if got := h.PhysAddr(); got != 0x1000_0000 {
		t.Errorf("PhysAddr() = %#x, want 0x10000000", got)
	}
	if err := h.Flush(0, 4096); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if err := h.Flush(4000, 100); err == nil {
		t.Errorf("Flush past the end succeeded")
	}
	if got := h.Flushes(); got != 1 {
		t.Errorf("Flushes() = %d, want 1", got)
	}
	if err := h.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}
	if err := h.Release(); err != nil {
		t.Fatalf("second Release: %v", err)
	}
	if err := h.Flush(0, 4); !errors.Is(err, ErrReleased) {
		t.Errorf("Flush after Release = %v, want %v", err, ErrReleased)
	}
}

func TestContiguousPhys(t *testing.T) {
	const page = 4096
	present := func(pfn uint64) uint64 { return pagemapPresent | pfn }
	for _, tc := range []struct {
		name    string
		entries []uint64
		want    uint64
		wantErr bool
	}{
		{name: "single", entries: []uint64{present(0x1234)}, want: 0x1234 * page},
		{name: "contiguous", entries: []uint64{present(0x80), present(0x81), present(0x82)}, want: 0x80 * page},
		{name: "gap", entries: []uint64{present(0x80), present(0x82)}, wantErr: true},
		{name: "not resident", entries: []uint64{present(0x80), 0x81}, wantErr: true},
		{name: "hidden pfn", entries: []uint64{pagemapPresent}, wantErr: true},
		{name: "empty", wantErr: true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := contiguousPhys(tc.entries, page)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("contiguousPhys() = %#x, want error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("contiguousPhys: %v", err)
			}
			if got != tc.want {
				t.Errorf("contiguousPhys() = %#x, want %#x", got, tc.want)
			}
		})
	}
}

func TestCarveoutFile(t *testing.T) {
	size := os.Getpagesize()
	path := filepath.Join(t.TempDir(), "mem")
	if err := os.WriteFile(path, make([]byte, 2*size), 0o600); err != nil {
		t.Fatal(err)
	}
	m, err := OpenCarveout(path, uint64(size), size)
	if err != nil {
		t.Fatalf("OpenCarveout: %v", err)
	}
	if got := m.PhysAddr(); got != uint64(size) {
		t.Errorf("PhysAddr() = %#x, want %#x", got, size)
	}
	copy(m.Bytes()[8:], "ring")
	if err := m.Flush(8, 4); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if err := m.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}
	if err := m.Release(); err != nil {
		t.Fatalf("second Release: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got[size+8:size+12]) != "ring" {
		t.Errorf("file contents at offset %d = %q, want %q", size+8, got[size+8:size+12], "ring")
	}
}

func TestCarveoutUnaligned(t *testing.T) {
	if _, err := OpenCarveout(filepath.Join(t.TempDir(), "mem"), 12, 4096); err == nil {
		t.Errorf("OpenCarveout with unaligned base succeeded")
	}
}
