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
	"time"

	"github.com/google/subcommands"

	"github.com/free60/xenosrb/pkg/log"
	"github.com/free60/xenosrb/pkg/submit"
	"github.com/free60/xenosrb/pkg/xenos"
	"github.com/free60/xenosrb/xenosrb/cmd/util"
	"github.com/free60/xenosrb/xenosrb/config"
)

// Run implements subcommands.Command for the "run" command.
type Run struct {
	chunk   int
	reset   bool
	json    bool
	timeout time.Duration
}

// Name implements subcommands.Command.Name.
func (*Run) Name() string {
	return "run"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*Run) Synopsis() string {
	return "bring up the command processor and submit command streams"
}

// Usage implements subcommands.Command.Usage.
func (*Run) Usage() string {
	return `run [flags] <file>... - submit each file to the ring buffer in order

Files hold raw packets, already in the byte order the command processor
expects. Their lengths must be multiples of 4.
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (r *Run) SetFlags(f *flag.FlagSet) {
	f.IntVar(&r.chunk, "chunk", 0, "split files into appends of at most this many bytes; 0 submits each file whole")
	f.BoolVar(&r.reset, "reset", false, "reset the ring before submitting")
	f.BoolVar(&r.json, "json", false, "print ring statistics as JSON when done")
	f.DurationVar(&r.timeout, "timeout", 10*time.Second, "give up when the ring stays full for this long")
}

// Execute implements subcommands.Command.Execute.
func (r *Run) Execute(ctx context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	if r.chunk < 0 || r.chunk%4 != 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	conf := args[0].(*config.Config)

	payloads, err := readPayloads(f.Args(), r.chunk)
	if err != nil {
		return util.Errorf("%v", err)
	}

	h, err := openDevice(conf)
	if err != nil {
		return util.Errorf("opening device: %v", err)
	}
	defer func() {
		if err := h.Close(); err != nil {
			log.Warningf("Detaching %s: %v", h.name, err)
		}
	}()

	if r.reset {
		if err := h.dev.Reset(); err != nil {
			return util.Errorf("resetting ring: %v", err)
		}
	}

	s := submit.New(h.dev, submit.Options{MaxElapsedTime: r.timeout})
	for _, p := range payloads {
		// A payload must leave at least one word free in the ring.
		if len(p) >= int(h.dev.Capacity()) {
			return util.Errorf("%d byte append does not fit a %d byte ring, use -chunk", len(p), h.dev.Capacity())
		}
		if err := s.Enqueue(p); err != nil {
			return util.Errorf("queueing payload: %v", err)
		}
	}
	if err := s.Flush(ctx); err != nil {
		return util.Errorf("submitting: %v (%d of %d appended)", err, s.Submitted(), len(payloads))
	}
	log.Infof("Submitted %d appends to %s with %d retries", s.Submitted(), h.name, s.Retries())

	if r.json {
		if err := util.WriteJSON(os.Stdout, h.dev.Stats()); err != nil {
			return util.Errorf("writing statistics: %v", err)
		}
	} else {
		printStats(os.Stdout, h.name, h.dev.Stats())
	}
	return subcommands.ExitSuccess
}

// readPayloads reads files and splits them into appends of at most chunk
// bytes.
func readPayloads(files []string, chunk int) ([][]byte, error) {
	var out [][]byte
	for _, name := range files {
		b, err := os.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("reading payload: %w", err)
		}
		if len(b)%4 != 0 {
			return nil, fmt.Errorf("payload %q is %d bytes: %w", name, len(b), xenos.ErrInvalidLength)
		}
		if chunk == 0 || len(b) <= chunk {
			out = append(out, b)
			continue
		}
		for len(b) > 0 {
			n := min(chunk, len(b))
			out = append(out, b[:n])
			b = b[n:]
		}
	}
	return out, nil
}

func printStats(w io.Writer, name string, s xenos.Stats) {
	fmt.Fprintf(w, "%s: %v, %d byte ring, head %#x, tail %#x, %d free\n", name, s.State, s.Capacity, s.Head, s.Tail, s.Free)
	fmt.Fprintf(w, "  %d appends (%d bytes), %d busy, %d tail refreshes, %d resets, %d interrupts\n",
		s.Appends, s.Bytes, s.Busy, s.TailRefreshes, s.Resets, s.Interrupts)
}
