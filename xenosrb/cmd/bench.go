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
	"encoding/binary"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"golang.org/x/sync/errgroup"

	abi "github.com/free60/xenosrb/pkg/abi/xenos"
	"github.com/free60/xenosrb/pkg/log"
	"github.com/free60/xenosrb/pkg/submit"
	"github.com/free60/xenosrb/xenosrb/cmd/util"
	"github.com/free60/xenosrb/xenosrb/config"
)

// Bench implements subcommands.Command for the "bench" command.
type Bench struct {
	producers int
	appends   int
	size      int
	json      bool
}

// Name implements subcommands.Command.Name.
func (*Bench) Name() string {
	return "bench"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*Bench) Synopsis() string {
	return "measure append throughput with concurrent producers"
}

// Usage implements subcommands.Command.Usage.
func (*Bench) Usage() string {
	return `bench [flags] - fill the ring with filler packets from several goroutines

Best run with --backend=sim; on hardware the packets are executed.
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (b *Bench) SetFlags(f *flag.FlagSet) {
	f.IntVar(&b.producers, "producers", 4, "number of concurrent producers")
	f.IntVar(&b.appends, "appends", 1000, "appends per producer")
	f.IntVar(&b.size, "size", 256, "bytes per append, a multiple of 4")
	f.BoolVar(&b.json, "json", false, "print ring statistics as JSON when done")
}

// Execute implements subcommands.Command.Execute.
func (b *Bench) Execute(ctx context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	if f.NArg() != 0 || b.producers <= 0 || b.appends < 0 || b.size <= 0 || b.size%4 != 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	conf := args[0].(*config.Config)

	h, err := openDevice(conf)
	if err != nil {
		return util.Errorf("opening device: %v", err)
	}
	defer func() {
		if err := h.Close(); err != nil {
			log.Warningf("Detaching %s: %v", h.name, err)
		}
	}()
	if b.size >= int(h.dev.Capacity()) {
		return util.Errorf("%d byte append does not fit a %d byte ring", b.size, h.dev.Capacity())
	}

	payload := fillerPayload(b.size)
	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	var retries []func() uint64
	for i := 0; i < b.producers; i++ {
		s := submit.New(h.dev, submit.Options{})
		retries = append(retries, s.Retries)
		i := i
		g.Go(func() error {
			for j := 0; j < b.appends; j++ {
				if err := s.Enqueue(payload); err != nil {
					return err
				}
				if err := s.Flush(gctx); err != nil {
					return fmt.Errorf("producer %d, append %d: %w", i, j, err)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return util.Errorf("%v", err)
	}
	elapsed := time.Since(start)

	var total uint64
	for _, r := range retries {
		total += r()
	}
	st := h.dev.Stats()
	log.Infof("Bench done in %v: %d appends, %d retries", elapsed, st.Appends, total)
	if b.json {
		if err := util.WriteJSON(os.Stdout, st); err != nil {
			return util.Errorf("writing statistics: %v", err)
		}
		return subcommands.ExitSuccess
	}
	printStats(os.Stdout, h.name, st)
	secs := elapsed.Seconds()
	fmt.Printf("  %v elapsed, %.0f appends/s, %.1f MiB/s, %d producer retries\n",
		elapsed, float64(st.Appends)/secs, float64(st.Bytes)/secs/(1<<20), total)
	return subcommands.ExitSuccess
}

// fillerPayload returns n bytes of type 2 packets in ring byte order.
func fillerPayload(n int) []byte {
	b := make([]byte, 0, n)
	for len(b) < n {
		b = binary.NativeEndian.AppendUint32(b, abi.PM4_TYPE2)
	}
	return b
}
