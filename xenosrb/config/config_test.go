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

package config

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func newTestFlags(t *testing.T, args ...string) *flag.FlagSet {
	t.Helper()
	testFlags := flag.NewFlagSet("test", flag.ContinueOnError)
	RegisterFlags(testFlags)
	RegisterConfigFileFlag(testFlags)
	if err := testFlags.Parse(args); err != nil {
		t.Fatalf("Parse(%v): %v", args, err)
	}
	return testFlags
}

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "xenosrb.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	c, err := NewFromFlags(newTestFlags(t))
	if err != nil {
		t.Fatal(err)
	}
	want := &Config{
		RunDir:        c.RunDir,
		LogFormat:     "text",
		Backend:       BackendSysfs,
		SysfsRoot:     "/sys",
		RingSize:      0x8000,
		IdleTimeout:   250 * time.Millisecond,
		WptrDelay:     0x10,
		DMA:           DMAPinned,
		AttachRetries: 2,
	}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("default config mismatch (-want +got):\n%s", diff)
	}
	if c.RunDir == "" {
		t.Errorf("RunDir not defaulted")
	}

	// "--run-dir" is always set to something different than the default.
	// Reset it to make it easier to test that default values do not
	// generate flags.
	c.RunDir = ""
	if flags := c.ToFlags(); len(flags) > 0 {
		t.Errorf("default flags not set correctly for: %s", flags)
	}
}

func TestFromFlags(t *testing.T) {
	c, err := NewFromFlags(newTestFlags(t,
		"--run-dir=some-path",
		"--debug",
		"--backend=sim",
		"--dma=heap",
		"--ring-size=4096",
		"--idle-timeout=10ms",
	))
	if err != nil {
		t.Fatal(err)
	}
	if want := "some-path"; c.RunDir != want {
		t.Errorf("RunDir=%v, want: %v", c.RunDir, want)
	}
	if !c.Debug {
		t.Errorf("Debug=false, want: true")
	}
	if c.Backend != BackendSim || c.DMA != DMAHeap {
		t.Errorf("Backend, DMA = %v, %v, want sim, heap", c.Backend, c.DMA)
	}
	if c.RingSize != 4096 || c.IdleTimeout != 10*time.Millisecond {
		t.Errorf("RingSize, IdleTimeout = %d, %v, want 4096, 10ms", c.RingSize, c.IdleTimeout)
	}

	flags := c.ToFlags()
	fm := map[string]string{}
	for _, f := range flags {
		kv := strings.SplitN(f, "=", 2)
		fm[kv[0]] = kv[1]
	}
	for name, want := range map[string]string{
		"--run-dir":      "some-path",
		"--debug":        "true",
		"--backend":      "sim",
		"--dma":          "heap",
		"--ring-size":    "4096",
		"--idle-timeout": "10ms",
	} {
		if got := fm[name]; got != want {
			t.Errorf("flag %q, want: %q, got: %q", name, want, got)
		}
	}
	if len(flags) != 6 {
		t.Errorf("wrong number of flags set, want: 6, got: %d: %s", len(flags), flags)
	}
}

func TestInvalidFlags(t *testing.T) {
	for _, args := range [][]string{
		{"--log-format=xml"},
		{"--ring-size=1024"},
		{"--idle-timeout=0"},
		{"--dma=devmem"},
		{"--attach-retries=-1"},
	} {
		if _, err := NewFromFlags(newTestFlags(t, args...)); err == nil {
			t.Errorf("NewFromFlags(%v) succeeded", args)
		}
	}
	testFlags := flag.NewFlagSet("test", flag.ContinueOnError)
	testFlags.SetOutput(new(strings.Builder))
	RegisterFlags(testFlags)
	if err := testFlags.Parse([]string{"--backend=qemu"}); err == nil {
		t.Errorf("--backend=qemu accepted")
	}
}

func TestConfigFile(t *testing.T) {
	path := writeConfigFile(t, `
backend = "sim"
dma = "heap"
ring-size = 16384
idle-timeout = "100ms"
debug = true
device = "0000:00:02.0"
`)
	// Flags given on the command line win over the file.
	c, err := NewFromFlags(newTestFlags(t, "--config="+path, "--ring-size=8192"))
	if err != nil {
		t.Fatal(err)
	}
	if c.Backend != BackendSim || c.DMA != DMAHeap {
		t.Errorf("Backend, DMA = %v, %v, want sim, heap", c.Backend, c.DMA)
	}
	if c.RingSize != 8192 {
		t.Errorf("RingSize = %d, want 8192 from the command line", c.RingSize)
	}
	if c.IdleTimeout != 100*time.Millisecond || !c.Debug || c.Device != "0000:00:02.0" {
		t.Errorf("file settings not applied: %+v", c)
	}
	if c.WptrDelay != 0x10 {
		t.Errorf("WptrDelay = %#x, want default 0x10", c.WptrDelay)
	}
}

func TestConfigFileErrors(t *testing.T) {
	for name, contents := range map[string]string{
		"unknown key":  `ring_size = 4096`,
		"bad enum":     `dma = "stack"`,
		"bad syntax":   `ring-size = `,
		"fails checks": `ring-size = 16`,
		"wrong type":   `debug = "yes"`,
	} {
		t.Run(name, func(t *testing.T) {
			path := writeConfigFile(t, contents)
			if _, err := NewFromFlags(newTestFlags(t, "--config="+path)); err == nil {
				t.Errorf("NewFromFlags succeeded")
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	testFlags := newTestFlags(t, "--debug=false")
	c, err := NewFromFlags(testFlags)
	if err != nil {
		t.Fatal(err)
	}
	path := writeConfigFile(t, "debug = true\nattach-retries = 5\n")
	if err := c.LoadFile(path, testFlags); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if c.Debug || c.AttachRetries != 5 {
		t.Errorf("Debug, AttachRetries = %v, %d, want false, 5", c.Debug, c.AttachRetries)
	}
}

func TestClone(t *testing.T) {
	c, err := NewFromFlags(newTestFlags(t, "--device=0000:00:02.0"))
	if err != nil {
		t.Fatal(err)
	}
	clone := c.Clone()
	if diff := cmp.Diff(c, clone); diff != "" {
		t.Errorf("Clone mismatch (-want +got):\n%s", diff)
	}
	clone.Device = "other"
	if c.Device != "0000:00:02.0" {
		t.Errorf("modifying the clone changed the original")
	}
}
