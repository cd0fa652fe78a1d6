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

package submit

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/free60/xenosrb/pkg/dma"
	"github.com/free60/xenosrb/pkg/log"
	"github.com/free60/xenosrb/pkg/xenos"
	"github.com/free60/xenosrb/pkg/xenos/sim"
)

// flakyAppender returns ErrBusy busyFor times before accepting each payload.
type flakyAppender struct {
	busyFor int
	failOn  byte
	calls   int
	got     [][]byte
}

func (f *flakyAppender) Append(p []byte) error {
	f.calls++
	if len(p) > 0 && p[0] == f.failOn {
		return errors.New("device fault")
	}
	if f.calls <= f.busyFor {
		return xenos.ErrBusy
	}
	f.calls = 0
	f.got = append(f.got, p)
	return nil
}

func payload(b byte) []byte {
	return []byte{b, 0, 0, 0}
}

func TestFlushInOrder(t *testing.T) {
	dev := &flakyAppender{busyFor: 3, failOn: 0xFF}
	s := New(dev, Options{InitialInterval: time.Microsecond, MaxInterval: time.Microsecond})
	for b := byte(1); b <= 4; b++ {
		if err := s.Enqueue(payload(b)); err != nil {
			t.Fatalf("Enqueue: %v", err)
		}
	}
	if err := s.Flush(context.Background()); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	want := [][]byte{payload(1), payload(2), payload(3), payload(4)}
	if diff := cmp.Diff(want, dev.got); diff != "" {
		t.Errorf("published payloads mismatch (-want +got):\n%s", diff)
	}
	if s.Len() != 0 || s.Submitted() != 4 || s.Retries() != 12 {
		t.Errorf("Len, Submitted, Retries = %d, %d, %d, want 0, 4, 12", s.Len(), s.Submitted(), s.Retries())
	}
}

func TestEnqueueRejectsUnaligned(t *testing.T) {
	s := New(&flakyAppender{}, Options{})
	if err := s.Enqueue([]byte{1, 2, 3}); !errors.Is(err, xenos.ErrInvalidLength) {
		t.Errorf("Enqueue = %v, want %v", err, xenos.ErrInvalidLength)
	}
	if s.Len() != 0 {
		t.Errorf("rejected payload was queued")
	}
}

func TestFlushStopsOnFault(t *testing.T) {
	dev := &flakyAppender{failOn: 2}
	s := New(dev, Options{})
	for b := byte(1); b <= 3; b++ {
		s.Enqueue(payload(b))
	}
	if err := s.Flush(context.Background()); err == nil || errors.Is(err, xenos.ErrBusy) {
		t.Fatalf("Flush = %v, want device fault", err)
	}
	if dev.calls != 1 {
		t.Errorf("faulting payload attempted %d times, want 1", dev.calls)
	}
	if s.Len() != 2 || len(dev.got) != 1 {
		t.Errorf("Len() = %d, published %d, want 2 queued and 1 published", s.Len(), len(dev.got))
	}
}

func TestFlushContextDone(t *testing.T) {
	dev := &flakyAppender{busyFor: 1 << 30}
	s := New(dev, Options{InitialInterval: time.Millisecond, MaxInterval: time.Millisecond})
	s.Enqueue(payload(1))
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := s.Flush(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Flush = %v, want %v", err, context.DeadlineExceeded)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestFlushThroughDevice(t *testing.T) {
	cp := sim.New()
	buf := dma.NewHeap(xenos.MinRingSize, 0x2000_0000)
	cp.SetMemory(buf.Bytes())
	d, err := xenos.Attach(cp, buf, xenos.Options{
		Clock:  cp,
		Logger: &log.BasicLogger{Level: log.Warning, Emitter: &log.TestEmitter{TestLogger: t}},
	})
	if err != nil {
		t.Fatalf("Attach: %v", err)
	}
	defer d.Detach()

	// Queue three rings' worth; the flush can only finish if the device
	// keeps consuming.
	var want []byte
	s := New(d, Options{InitialInterval: 10 * time.Microsecond, MaxInterval: 100 * time.Microsecond})
	for i := 0; i < 3*xenos.MinRingSize/256; i++ {
		p := bytes.Repeat([]byte{byte(i)}, 256)
		want = append(want, p...)
		s.Enqueue(p)
	}

	ctx, cancel := context.WithCancel(context.Background())
	consumed := make(chan []byte)
	go func() {
		var got []byte
		for ctx.Err() == nil {
			got = append(got, cp.Consume(1024)...)
			time.Sleep(50 * time.Microsecond)
		}
		consumed <- append(got, cp.ConsumeAll()...)
	}()
	err = s.Flush(context.Background())
	cancel()
	got := <-consumed
	if err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("device consumed %d bytes that differ from the %d queued", len(got), len(want))
	}
	if s.Retries() == 0 {
		t.Errorf("ring never filled")
	}
}
