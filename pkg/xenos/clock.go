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
	"time"

	"github.com/free60/xenosrb/pkg/sync"
)

// Clock is the time source for settle delays and idle waits.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// Sleep waits for d without giving up the calling thread's place in a
	// register sequence.
	Sleep(d time.Duration)
}

// RealClock is the wall clock. Sleep spins.
type RealClock struct{}

// Now implements Clock.Now.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Sleep implements Clock.Sleep.
func (RealClock) Sleep(d time.Duration) {
	sync.Spin(d)
}
