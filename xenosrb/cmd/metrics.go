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

	"github.com/google/subcommands"
	"github.com/prometheus/common/expfmt"

	"github.com/free60/xenosrb/pkg/log"
	"github.com/free60/xenosrb/pkg/xenos"
	"github.com/free60/xenosrb/xenosrb/cmd/util"
	"github.com/free60/xenosrb/xenosrb/config"
)

// Metrics implements subcommands.Command for the "metrics" command.
type Metrics struct {
	file string
}

// Name implements subcommands.Command.Name.
func (*Metrics) Name() string {
	return "metrics"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*Metrics) Synopsis() string {
	return "bring up the ring and print its metrics"
}

// Usage implements subcommands.Command.Usage.
func (*Metrics) Usage() string {
	return `metrics [-file=<path>] - print ring metrics in Prometheus text format
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (m *Metrics) SetFlags(f *flag.FlagSet) {
	f.StringVar(&m.file, "file", "", "write metrics to this file instead of stdout")
}

// Execute implements subcommands.Command.Execute.
func (m *Metrics) Execute(_ context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	if f.NArg() != 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	conf := args[0].(*config.Config)

	h, err := openDevice(conf)
	if err != nil {
		return util.Errorf("opening device: %v", err)
	}
	st := h.dev.Stats()
	if err := h.Close(); err != nil {
		log.Warningf("Detaching %s: %v", h.name, err)
	}

	out := io.Writer(os.Stdout)
	if m.file != "" {
		file, err := os.OpenFile(m.file, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
		if err != nil {
			return util.Errorf("opening metrics file: %v", err)
		}
		defer file.Close()
		out = file
	}
	if err := writeMetrics(out, h.name, st); err != nil {
		return util.Errorf("writing metrics: %v", err)
	}
	return subcommands.ExitSuccess
}

// writeMetrics writes st in Prometheus text format.
func writeMetrics(w io.Writer, device string, st xenos.Stats) error {
	for _, mf := range st.MetricFamilies(device) {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
