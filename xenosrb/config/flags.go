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
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"

	"github.com/BurntSushi/toml"

	abi "github.com/free60/xenosrb/pkg/abi/xenos"
	"github.com/free60/xenosrb/pkg/xenos"
)

// RegisterFlags registers flags used to populate Config.
func RegisterFlags(flagSet *flag.FlagSet) {
	flagSet.String("run-dir", "", "directory for device lock files.")
	flagSet.String("log", "", "file path where internal debug information is written, default is stderr.")
	flagSet.String("log-format", "text", "log format: text (default) or json.")
	flagSet.Bool("debug", false, "enable debug logging.")
	flagSet.String("debug-log", "", "additional location for logs. If it ends with '/', log files are created inside the directory with default names. The following variables are available: %TIMESTAMP%, %COMMAND%, %DEVICE%.")

	// Device selection.
	flagSet.Var(backendPtr(BackendSysfs), "backend", "which command processor to drive: sysfs (default) or sim.")
	flagSet.String("sysfs-root", "/sys", "where sysfs is mounted.")
	flagSet.String("device", "", "PCI address of the graphics function, e.g. 0000:00:02.0. Empty selects the first supported function.")

	// Ring setup.
	flagSet.Int("ring-size", 0x8000, "ring buffer size in bytes, rounded down to a power of two.")
	flagSet.Duration("idle-timeout", xenos.DefaultIdleTimeout, "bound on each wait for the GPU to go idle during bring-up.")
	flagSet.Uint("wptr-delay", abi.DefaultWptrDelay, "value programmed into CP_RB_WPTR_DELAY.")
	flagSet.Var(dmaModePtr(DMAPinned), "dma", "ring buffer memory: pinned (default), devmem or heap. heap is only usable with --backend=sim.")
	flagSet.Uint64("devmem-base", 0, "physical address of reserved ring memory for --dma=devmem.")
	flagSet.Int("attach-retries", 2, "number of times a failed bring-up is retried.")
}

// configFileFlag is the flag naming a configuration file. It is not part of
// Config.
const configFileFlag = "config"

// RegisterConfigFileFlag registers the flag naming a configuration file.
func RegisterConfigFileFlag(flagSet *flag.FlagSet) {
	flagSet.String(configFileFlag, "", "TOML file with settings. Flags given on the command line take precedence.")
}

// NewFromFlags creates a new Config with values coming from command line
// flags and, if --config is registered and set, the named file.
func NewFromFlags(flagSet *flag.FlagSet) (*Config, error) {
	conf := &Config{}

	obj := reflect.ValueOf(conf).Elem()
	st := obj.Type()
	for i := 0; i < st.NumField(); i++ {
		f := st.Field(i)
		name, ok := f.Tag.Lookup("flag")
		if !ok {
			// No flag set for this field.
			continue
		}
		fl := flagSet.Lookup(name)
		if fl == nil {
			panic(fmt.Sprintf("Flag %q not found", name))
		}
		x := reflect.ValueOf(fl.Value.(flag.Getter).Get())
		obj.Field(i).Set(x)
	}

	if fl := flagSet.Lookup(configFileFlag); fl != nil && fl.Value.String() != "" {
		if err := conf.load(fl.Value.String(), explicitFlags(flagSet)); err != nil {
			return nil, err
		}
	}

	if len(conf.RunDir) == 0 {
		// If not set, set default run dir to something (hopefully) user-writeable.
		conf.RunDir = "/var/run/xenosrb"
		// NOTE: empty values for XDG_RUNTIME_DIR should be ignored.
		if runtimeDir := os.Getenv("XDG_RUNTIME_DIR"); runtimeDir != "" {
			conf.RunDir = filepath.Join(runtimeDir, "xenosrb")
		}
	}

	if err := conf.validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

// explicitFlags returns the names of flags set on the command line.
func explicitFlags(flagSet *flag.FlagSet) map[string]struct{} {
	set := make(map[string]struct{})
	flagSet.Visit(func(f *flag.Flag) {
		set[f.Name] = struct{}{}
	})
	return set
}

// load overlays the settings in a TOML file onto c, skipping the flags in
// keep.
func (c *Config) load(path string, keep map[string]struct{}) error {
	var file Config
	md, err := toml.DecodeFile(path, &file)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("config file %q: unknown keys %v", path, undecoded)
	}

	dst := reflect.ValueOf(c).Elem()
	src := reflect.ValueOf(&file).Elem()
	st := dst.Type()
	for i := 0; i < st.NumField(); i++ {
		f := st.Field(i)
		name, ok := f.Tag.Lookup("flag")
		if !ok {
			continue
		}
		if _, ok := keep[name]; ok || !md.IsDefined(f.Tag.Get("toml")) {
			continue
		}
		dst.Field(i).Set(src.Field(i))
	}
	return nil
}

// LoadFile overlays the settings in a TOML file onto c. Settings whose flag
// was given on the command line in flagSet are left alone.
func (c *Config) LoadFile(path string, flagSet *flag.FlagSet) error {
	if err := c.load(path, explicitFlags(flagSet)); err != nil {
		return err
	}
	return c.validate()
}

// ToFlags returns a slice of flags that correspond to the given Config.
func (c *Config) ToFlags() []string {
	var rv []string

	// Construct a temporary set for default plumbing.
	flagSet := flag.NewFlagSet("tmp", flag.ContinueOnError)
	RegisterFlags(flagSet)

	obj := reflect.ValueOf(c).Elem()
	st := obj.Type()
	for i := 0; i < st.NumField(); i++ {
		f := st.Field(i)
		name, ok := f.Tag.Lookup("flag")
		if !ok {
			// No flag set for this field.
			continue
		}
		val := getVal(obj.Field(i))

		flag := flagSet.Lookup(name)
		if flag == nil {
			panic(fmt.Sprintf("Flag %q not found", name))
		}
		if val == flag.DefValue {
			continue
		}
		rv = append(rv, fmt.Sprintf("--%s=%s", flag.Name, val))
	}
	return rv
}

func getVal(field reflect.Value) string {
	if str, ok := field.Addr().Interface().(fmt.Stringer); ok {
		return str.String()
	}
	switch field.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(field.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(field.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(field.Uint(), 10)
	case reflect.String:
		return field.String()
	default:
		panic("unknown type " + field.Kind().String())
	}
}
