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

// Package submit queues command buffers for a ring that may be full.
//
// xenos.Device.Append fails fast with ErrBusy rather than waiting for the
// command processor. A Submitter keeps the payloads that could not be
// published yet, in order, and retries them with exponential backoff.
package submit

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/eapache/queue"

	"github.com/free60/xenosrb/pkg/sync"
	"github.com/free60/xenosrb/pkg/xenos"
)

// Appender publishes one payload. *xenos.Device implements it.
type Appender interface {
	Append(payload []byte) error
}

// Options tunes the retry policy. Zero fields take defaults.
type Options struct {
	// InitialInterval is the first wait after ErrBusy. Default 50µs.
	InitialInterval time.Duration

	// MaxInterval caps the wait between attempts. Default 10ms.
	MaxInterval time.Duration

	// MaxElapsedTime bounds the retries of a single payload. Zero means
	// retry until the context passed to Flush is done.
	MaxElapsedTime time.Duration
}

// Submitter is a FIFO of payloads in front of an Appender.
type Submitter struct {
	dev  Appender
	opts Options

	// flushMu serializes Flush so that only one goroutine publishes from the
	// head of the queue.
	flushMu sync.Mutex

	mu sync.Mutex
	// +checklocks:mu
	pending *queue.Queue

	retries   atomic.Uint64
	submitted atomic.Uint64
}

// New returns an empty Submitter for dev.
func New(dev Appender, opts Options) *Submitter {
	if opts.InitialInterval == 0 {
		opts.InitialInterval = 50 * time.Microsecond
	}
	if opts.MaxInterval == 0 {
		opts.MaxInterval = 10 * time.Millisecond
	}
	return &Submitter{
		dev:     dev,
		opts:    opts,
		pending: queue.New(),
	}
}

// Enqueue adds payload to the tail of the queue. The Submitter keeps a
// reference to payload until it is published.
func (s *Submitter) Enqueue(payload []byte) error {
	if len(payload)%4 != 0 {
		return xenos.ErrInvalidLength
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending.Add(payload)
	return nil
}

// Len returns the number of payloads not yet published.
func (s *Submitter) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending.Length()
}

// Retries returns the number of attempts that found the ring full.
func (s *Submitter) Retries() uint64 {
	return s.retries.Load()
}

// Submitted returns the number of payloads published.
func (s *Submitter) Submitted() uint64 {
	return s.submitted.Load()
}

func (s *Submitter) peek() ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending.Length() == 0 {
		return nil, false
	}
	return s.pending.Peek().([]byte), true
}

func (s *Submitter) pop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending.Remove()
}

func (s *Submitter) backOff(ctx context.Context) backoff.BackOff {
	return backoff.WithContext(&backoff.ExponentialBackOff{
		InitialInterval:     s.opts.InitialInterval,
		RandomizationFactor: 0.1,
		Multiplier:          2,
		MaxInterval:         s.opts.MaxInterval,
		MaxElapsedTime:      s.opts.MaxElapsedTime,
		Clock:               backoff.SystemClock,
	}, ctx)
}

// Flush publishes queued payloads in order until the queue is empty. A payload
// that finds the ring full is retried; any other error stops Flush and leaves
// that payload at the head of the queue.
func (s *Submitter) Flush(ctx context.Context) error {
	s.flushMu.Lock()
	defer s.flushMu.Unlock()

	for {
		p, ok := s.peek()
		if !ok {
			return nil
		}
		op := func() error {
			err := s.dev.Append(p)
			switch {
			case err == nil:
				return nil
			case errors.Is(err, xenos.ErrBusy):
				s.retries.Add(1)
				return err
			default:
				return backoff.Permanent(err)
			}
		}
		if err := backoff.Retry(op, s.backOff(ctx)); err != nil {
			if errors.Is(err, xenos.ErrBusy) && ctx.Err() != nil {
				return fmt.Errorf("%d payloads still queued: %w", s.Len(), ctx.Err())
			}
			return fmt.Errorf("publishing %d byte payload: %w", len(p), err)
		}
		s.pop()
		s.submitted.Add(1)
	}
}
