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

// Package pci finds Xenos graphics functions through sysfs.
package pci

import (
	"errors"
	"fmt"
	"os"
	"path"
	regex "regexp"
	"sort"
	"strconv"
	"strings"

	abi "github.com/free60/xenosrb/pkg/abi/xenos"
	"github.com/free60/xenosrb/pkg/log"
)

// ioresourceMem marks a memory BAR in the flags column of the resource file.
const ioresourceMem = 0x200

// devicesDir is the sysfs directory with one entry per PCI function.
const devicesDir = "bus/pci/devices"

// pciDeviceRegex matches PCI function addresses.
var pciDeviceRegex = regex.MustCompile(`^[[:xdigit:]]{4}:([[:xdigit:]]{2}|[[:xdigit:]]{4}):[[:xdigit:]]{2}\.[[:xdigit:]]{1,2}$`)

// ErrNotFound is returned by Lookup when no supported function matches.
var ErrNotFound = errors.New("no supported Xenos function found")

// Resource is a BAR as described by the sysfs resource file.
type Resource struct {
	Start uint64
	End   uint64
	Flags uint64
}

// Size returns the length of the BAR in bytes.
func (r Resource) Size() uint64 {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start + 1
}

// Function is a supported Xenos PCI function.
type Function struct {
	// Address is the function address, e.g. "0000:00:02.0".
	Address  string `json:"address"`
	VendorID uint16 `json:"vendor"`
	DeviceID uint16 `json:"device"`
	Model    string `json:"model"`
	IRQ      int    `json:"irq"`

	// BAR0 holds the graphics registers.
	BAR0 Resource `json:"bar0"`

	// Path is the function's sysfs directory.
	Path string `json:"path"`
}

// RegisterPath returns the sysfs file that maps BAR0.
func (f *Function) RegisterPath() string {
	return path.Join(f.Path, "resource0")
}

// Enumerate returns the supported functions under sysfsRoot (normally
// "/sys"), sorted by address. Functions whose BAR0 is not a memory BAR are
// skipped with a warning.
func Enumerate(sysfsRoot string) ([]Function, error) {
	dir := path.Join(sysfsRoot, devicesDir)
	dents, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing PCI devices: %w", err)
	}
	var fns []Function
	for _, dent := range dents {
		addr := dent.Name()
		if !pciDeviceRegex.MatchString(addr) {
			continue
		}
		fn, ok, err := probe(path.Join(dir, addr), addr)
		if err != nil {
			return nil, err
		}
		if ok {
			fns = append(fns, fn)
		}
	}
	sort.Slice(fns, func(i, j int) bool { return fns[i].Address < fns[j].Address })
	return fns, nil
}

// Lookup returns the function at addr, or the first supported function if
// addr is empty.
func Lookup(sysfsRoot, addr string) (Function, error) {
	fns, err := Enumerate(sysfsRoot)
	if err != nil {
		return Function{}, err
	}
	for _, fn := range fns {
		if addr == "" || fn.Address == addr {
			return fn, nil
		}
	}
	if addr != "" {
		return Function{}, fmt.Errorf("%w at %s", ErrNotFound, addr)
	}
	return Function{}, ErrNotFound
}

// probe reads the identity of the function in dir. It returns false for
// functions this package does not drive.
func probe(dir, addr string) (Function, bool, error) {
	vendor, err := readHex(path.Join(dir, "vendor"))
	if err != nil {
		return Function{}, false, err
	}
	if vendor != abi.MicrosoftVendorID {
		return Function{}, false, nil
	}
	device, err := readHex(path.Join(dir, "device"))
	if err != nil {
		return Function{}, false, err
	}
	model, ok := abi.DeviceModels[uint16(device)]
	if !ok {
		return Function{}, false, nil
	}

	fn := Function{
		Address:  addr,
		VendorID: uint16(vendor),
		DeviceID: uint16(device),
		Model:    model,
		Path:     dir,
	}
	if irq, err := readFile(path.Join(dir, "irq")); err == nil {
		fn.IRQ, _ = strconv.Atoi(irq)
	}
	res, err := readResources(path.Join(dir, "resource"))
	if err != nil {
		return Function{}, false, err
	}
	if len(res) == 0 || res[0].Flags&ioresourceMem == 0 || res[0].Size() == 0 {
		log.Warningf("pci: %s (%s) has no memory BAR 0, skipping", addr, model)
		return Function{}, false, nil
	}
	fn.BAR0 = res[0]
	return fn, true, nil
}

func readFile(name string) (string, error) {
	b, err := os.ReadFile(name)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

// readHex reads a sysfs attribute such as "0x1414\n".
func readHex(name string) (uint64, error) {
	s, err := readFile(name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "0x"), 16, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", name, err)
	}
	return v, nil
}

// readResources parses the resource file, one "start end flags" line per
// BAR.
func readResources(name string) ([]Resource, error) {
	s, err := readFile(name)
	if err != nil {
		return nil, err
	}
	var res []Resource
	for i, line := range strings.Split(s, "\n") {
		var fields [3]uint64
		cols := strings.Fields(line)
		if len(cols) != 3 {
			return nil, fmt.Errorf("%s line %d: want 3 columns, got %q", name, i+1, line)
		}
		for j, col := range cols {
			v, err := strconv.ParseUint(col, 0, 64)
			if err != nil {
				return nil, fmt.Errorf("%s line %d: %w", name, i+1, err)
			}
			fields[j] = v
		}
		res = append(res, Resource{Start: fields[0], End: fields[1], Flags: fields[2]})
	}
	return res, nil
}
