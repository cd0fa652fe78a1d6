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
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/google/subcommands"

	"github.com/free60/xenosrb/pkg/pci"
	"github.com/free60/xenosrb/xenosrb/cmd/util"
	"github.com/free60/xenosrb/xenosrb/config"
)

// Probe implements subcommands.Command for the "probe" command.
type Probe struct {
	json bool
}

// Name implements subcommands.Command.Name.
func (*Probe) Name() string {
	return "probe"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*Probe) Synopsis() string {
	return "list supported graphics functions"
}

// Usage implements subcommands.Command.Usage.
func (*Probe) Usage() string {
	return `probe [-json] - list Xenos graphics functions found in sysfs
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (p *Probe) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.json, "json", false, "print functions as JSON")
}

// Execute implements subcommands.Command.Execute.
func (p *Probe) Execute(_ context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	if f.NArg() != 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	conf := args[0].(*config.Config)

	fns, err := pci.Enumerate(conf.SysfsRoot)
	if err != nil {
		return util.Errorf("probing %q: %v", conf.SysfsRoot, err)
	}
	if p.json {
		if err := util.WriteJSON(os.Stdout, fns); err != nil {
			return util.Errorf("writing functions: %v", err)
		}
		return subcommands.ExitSuccess
	}
	printFunctions(os.Stdout, fns)
	return subcommands.ExitSuccess
}

func printFunctions(out io.Writer, fns []pci.Function) {
	w := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)
	fmt.Fprint(w, "ADDRESS\tID\tMODEL\tIRQ\tREGISTERS\n")
	for _, fn := range fns {
		fmt.Fprintf(w, "%s\t%04x:%04x\t%s\t%d\t%#x+%#x\n",
			fn.Address, fn.VendorID, fn.DeviceID, fn.Model, fn.IRQ, fn.BAR0.Start, fn.BAR0.Size())
	}
	_ = w.Flush()
}
