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

// Package config provides basic infrastructure to set configuration settings
// for xenosrb. Each setting is defined as a command line flag and may also be
// given in a TOML file.
package config

import (
	"fmt"
	"reflect"
	"time"

	"github.com/mohae/deepcopy"

	"github.com/free60/xenosrb/pkg/log"
	"github.com/free60/xenosrb/pkg/xenos"
)

// Config holds configuration that is not part of any device.
//
// Fields tagged with `flag` are populated by NewFromFlags; the same name is
// the key in a configuration file.
type Config struct {
	// RunDir is the directory holding device lock files.
	RunDir string `flag:"run-dir" toml:"run-dir"`

	// LogFilename is the filename to log to, if not empty.
	LogFilename string `flag:"log" toml:"log"`

	// LogFormat is the log format: "text" or "json".
	LogFormat string `flag:"log-format" toml:"log-format"`

	// Debug indicates that debug logging should be enabled.
	Debug bool `flag:"debug" toml:"debug"`

	// DebugLog is an additional location for logs. It may contain
	// %TIMESTAMP%, %COMMAND% and %DEVICE%; a trailing '/' names a directory.
	DebugLog string `flag:"debug-log" toml:"debug-log"`

	// Backend selects real hardware or the simulator.
	Backend Backend `flag:"backend" toml:"backend"`

	// SysfsRoot is where sysfs is mounted.
	SysfsRoot string `flag:"sysfs-root" toml:"sysfs-root"`

	// Device is the PCI address of the function to drive. Empty means the
	// first supported one.
	Device string `flag:"device" toml:"device"`

	// RingSize is the requested ring size in bytes. It is rounded down to a
	// power of two.
	RingSize int `flag:"ring-size" toml:"ring-size"`

	// IdleTimeout bounds each wait for the GPU to go idle during bring-up.
	IdleTimeout time.Duration `flag:"idle-timeout" toml:"idle-timeout"`

	// WptrDelay is programmed into CP_RB_WPTR_DELAY.
	WptrDelay uint `flag:"wptr-delay" toml:"wptr-delay"`

	// DMA selects where the ring buffer is allocated.
	DMA DMAMode `flag:"dma" toml:"dma"`

	// DevMemBase is the physical address of the reserved ring memory when
	// DMA is "devmem".
	DevMemBase uint64 `flag:"devmem-base" toml:"devmem-base"`

	// AttachRetries is the number of times a failed bring-up is retried
	// before giving up.
	AttachRetries int `flag:"attach-retries" toml:"attach-retries"`
}

func (c *Config) validate() error {
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q, must be text or json", c.LogFormat)
	}
	if c.RingSize < xenos.MinRingSize {
		return fmt.Errorf("ring size %d is below the minimum of %d bytes", c.RingSize, xenos.MinRingSize)
	}
	if c.IdleTimeout <= 0 {
		return fmt.Errorf("idle timeout must be positive, got %v", c.IdleTimeout)
	}
	if uint64(c.WptrDelay) > 0xFFFFFFFF {
		return fmt.Errorf("wptr delay %#x does not fit in a register", c.WptrDelay)
	}
	if c.DMA == DMADevMem && c.DevMemBase == 0 {
		return fmt.Errorf("--dma=devmem requires --devmem-base")
	}
	if c.AttachRetries < 0 {
		return fmt.Errorf("attach retries must not be negative, got %d", c.AttachRetries)
	}
	return nil
}

// Clone returns a deep copy of c.
func (c *Config) Clone() *Config {
	return deepcopy.Copy(c).(*Config)
}

// Log logs important aspects of the configuration to the given log function.
func (c *Config) Log() {
	log.Infof("Config:")
	obj := reflect.ValueOf(c).Elem()
	st := obj.Type()
	for i := 0; i < st.NumField(); i++ {
		name, ok := st.Field(i).Tag.Lookup("flag")
		if !ok {
			continue
		}
		log.Infof("\t%s: %s", name, getVal(obj.Field(i)))
	}
}

// Backend selects what Config.Device refers to.
type Backend int

const (
	// BackendSysfs drives a real function found through sysfs.
	BackendSysfs Backend = iota

	// BackendSim drives a simulated command processor.
	BackendSim
)

func backendPtr(v Backend) *Backend {
	return &v
}

// Set implements flag.Value and encoding.TextUnmarshaler.
func (b *Backend) Set(v string) error {
	switch v {
	case "sysfs":
		*b = BackendSysfs
	case "sim":
		*b = BackendSim
	default:
		return fmt.Errorf("invalid backend type %q", v)
	}
	return nil
}

// Get implements flag.Getter.
func (b *Backend) Get() any {
	return *b
}

// String implements flag.Value.
func (b Backend) String() string {
	switch b {
	case BackendSysfs:
		return "sysfs"
	case BackendSim:
		return "sim"
	}
	panic(fmt.Sprintf("Invalid backend type %d", b))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Backend) UnmarshalText(text []byte) error {
	return b.Set(string(text))
}

// DMAMode selects how the ring buffer is allocated.
type DMAMode int

const (
	// DMAPinned allocates locked, physically contiguous anonymous memory.
	DMAPinned DMAMode = iota

	// DMADevMem maps a reserved physical range through /dev/mem.
	DMADevMem

	// DMAHeap uses ordinary memory, which only the simulator can read.
	DMAHeap
)

func dmaModePtr(v DMAMode) *DMAMode {
	return &v
}

// Set implements flag.Value and encoding.TextUnmarshaler.
func (m *DMAMode) Set(v string) error {
	switch v {
	case "pinned":
		*m = DMAPinned
	case "devmem":
		*m = DMADevMem
	case "heap":
		*m = DMAHeap
	default:
		return fmt.Errorf("invalid dma mode %q", v)
	}
	return nil
}

// Get implements flag.Getter.
func (m *DMAMode) Get() any {
	return *m
}

// String implements flag.Value.
func (m DMAMode) String() string {
	switch m {
	case DMAPinned:
		return "pinned"
	case DMADevMem:
		return "devmem"
	case DMAHeap:
		return "heap"
	}
	panic(fmt.Sprintf("Invalid dma mode %d", m))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *DMAMode) UnmarshalText(text []byte) error {
	return m.Set(string(text))
}
