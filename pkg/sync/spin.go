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

package sync

import (
	"runtime"
	"time"
)

// spinYieldAfter is the number of busy iterations before Spin starts yielding
// the processor between checks.
const spinYieldAfter = 64

// Spin busy-waits for at least d. It never parks the goroutine on a timer, so
// the delay stays close to d even when d is a few microseconds; after a short
// burst of pure spinning it yields between checks so that other goroutines on
// the same P can run.
//
// Spin is meant for hardware settle delays, which are short and bounded.
func Spin(d time.Duration) {
	if d <= 0 {
		return
	}
	start := time.Now()
	for i := 0; time.Since(start) < d; i++ {
		if i >= spinYieldAfter {
			runtime.Gosched()
		}
	}
}
