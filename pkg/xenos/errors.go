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

package xenos

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidLength is returned by Append for payloads that are not a
	// whole number of 32-bit words.
	ErrInvalidLength = errors.New("payload length is not a multiple of 4")

	// ErrBusy is returned by Append when the ring does not have room for the
	// payload. It is transient; the caller may retry once the command
	// processor has consumed more of the ring.
	ErrBusy = errors.New("ring buffer full")

	// ErrNotRunning is returned by operations on a device that is detached
	// or whose last reset failed.
	ErrNotRunning = errors.New("command processor is not running")

	// ErrRingTooSmall is returned by Attach when the ring cannot be sized.
	ErrRingTooSmall = errors.New("ring buffer too small")
)

// IOFault reports a register access, buffer copy or firmware verification
// that did not behave as expected.
type IOFault struct {
	// Stage is the phase that was running.
	Stage State

	// Op is one of "read", "write", "verify", "copy" or "flush".
	Op string

	// Offset is the register offset for register operations.
	Offset uint32

	// Word is the index of the first mismatching micro engine word when Op
	// is "verify", and -1 otherwise.
	Word int

	Err error
}

// Error implements error.Error.
func (e *IOFault) Error() string {
	switch e.Op {
	case "verify":
		return fmt.Sprintf("%s: micro engine word %d: %v", e.Stage, e.Word, e.Err)
	case "read", "write":
		return fmt.Sprintf("%s: register %s at %#06x: %v", e.Stage, e.Op, e.Offset, e.Err)
	default:
		return fmt.Sprintf("%s: %s: %v", e.Stage, e.Op, e.Err)
	}
}

// Unwrap returns the underlying error.
func (e *IOFault) Unwrap() error {
	return e.Err
}

// TimeoutError reports an idle wait that did not complete in time.
type TimeoutError struct {
	Stage State
	Bound time.Duration
}

// Error implements error.Error.
func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s: GUI still active after %v", e.Stage, e.Bound)
}

// Timeout reports true, for callers that test for net.Error style timeouts.
func (e *TimeoutError) Timeout() bool {
	return true
}
