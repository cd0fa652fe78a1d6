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

import "fmt"

// State is a phase of command processor bring-up.
type State uint32

// Bring-up phases, in order. Failed may follow any of them. Detached is
// entered by Detach and is final.
const (
	Uninitialized State = iota
	Halted
	PointersReset
	RingProgrammed
	PFPLoaded
	MELoaded
	IdleWait1
	Toggled
	SoftReset
	IdleWait2
	Running
	Failed
	Detached
)

var stateNames = [...]string{
	Uninitialized:  "Uninitialized",
	Halted:         "Halted",
	PointersReset:  "PointersReset",
	RingProgrammed: "RingProgrammed",
	PFPLoaded:      "PFPLoaded",
	MELoaded:       "MELoaded",
	IdleWait1:      "IdleWait1",
	Toggled:        "Toggled",
	SoftReset:      "SoftReset",
	IdleWait2:      "IdleWait2",
	Running:        "Running",
	Failed:         "Failed",
	Detached:       "Detached",
}

// String implements fmt.Stringer.
func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", uint32(s))
}

// MarshalText implements encoding.TextMarshaler.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
