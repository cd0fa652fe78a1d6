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
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/free60/xenosrb/pkg/log"
	"github.com/google/go-cmp/cmp"
)

func newResource(t *testing.T, size int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resource0")
	if err := os.WriteFile(path, make([]byte, size), 0600); err != nil {
		t.Fatalf("creating resource file: %v", err)
	}
	return path
}

func TestMappingBigEndian(t *testing.T) {
	path := newResource(t, 4096)
	m, err := Map(path, 0)
	if err != nil {
		t.Fatalf("Map(%q): %v", path, err)
	}
	defer m.Close()

	if got, want := m.Size(), 4096; got != want {
		t.Errorf("Size() = %d, want %d", got, want)
	}
	if err := m.Write32(0x704, 0x08020009); err != nil {
		t.Fatalf("Write32: %v", err)
	}
	v, err := m.Read32(0x704)
	if err != nil {
		t.Fatalf("Read32: %v", err)
	}
	if v != 0x08020009 {
		t.Errorf("Read32 = %#x, want %#x", v, 0x08020009)
	}

	if err := m.Sync(); err != nil {
		t.Fatalf("Sync: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if diff := cmp.Diff([]byte{0x08, 0x02, 0x00, 0x09}, raw[0x704:0x708]); diff != "" {
		t.Errorf("bus byte order mismatch (-want +got):\n%s", diff)
	}
}

func TestMappingRejects(t *testing.T) {
	m, err := Map(newResource(t, 4096), 0)
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	defer m.Close()

	for _, tc := range []struct {
		name string
		off  uint32
		want error
	}{
		{"unaligned", 0x702, errUnaligned},
		{"last word", 4092, nil},
		{"past end", 4096, errOutOfRange},
		{"far past end", 0xFFFFFFFC, errOutOfRange},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := m.Read32(tc.off)
			if !errors.Is(err, tc.want) {
				t.Errorf("Read32(%#x) = %v, want %v", tc.off, err, tc.want)
			}
			err = m.Write32(tc.off, 1)
			if !errors.Is(err, tc.want) {
				t.Errorf("Write32(%#x) = %v, want %v", tc.off, err, tc.want)
			}
			var ae *AccessError
			if tc.want != nil && (!errors.As(err, &ae) || ae.Fault) {
				t.Errorf("Write32(%#x) = %v, want non-fault *AccessError", tc.off, err)
			}
		})
	}
}

func TestMappingClosed(t *testing.T) {
	m, err := Map(newResource(t, 4096), 0)
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	if err := m.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := m.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
	if _, err := m.Read32(0); !errors.Is(err, ErrClosed) {
		t.Errorf("Read32 after Close = %v, want %v", err, ErrClosed)
	}
}

func TestMapInvalidSize(t *testing.T) {
	if _, err := Map(newResource(t, 4096), 6); err == nil {
		t.Errorf("Map with size 6 succeeded")
	}
	if _, err := Map(filepath.Join(t.TempDir(), "missing"), 0); err == nil {
		t.Errorf("Map of a missing file succeeded")
	}
}

type lineWriter struct {
	lines []string
}

func (w *lineWriter) Write(b []byte) (int, error) {
	w.lines = append(w.lines, string(b))
	return len(b), nil
}

func TestTraced(t *testing.T) {
	m, err := Map(newResource(t, 4096), 0)
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	defer m.Close()

	w := &lineWriter{}
	tr := &Traced{Window: m, Logger: &log.BasicLogger{Level: log.Debug, Emitter: &log.Writer{Next: w}}}
	if err := tr.Write32(0x714, 0x20); err != nil {
		t.Fatalf("Write32: %v", err)
	}
	if _, err := tr.Read32(0x714); err != nil {
		t.Fatalf("Read32: %v", err)
	}
	if _, err := tr.Read32(0x713); err == nil {
		t.Fatalf("unaligned Read32 succeeded")
	}
	out := strings.Join(w.lines, "")
	for _, want := range []string{"write 0x0714 <- 0x00000020", "read  0x0714 -> 0x00000020", "read  0x0713 failed"} {
		if !strings.Contains(out, want) {
			t.Errorf("trace output %q does not contain %q", out, want)
		}
	}
}
