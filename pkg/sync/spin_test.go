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
	"testing"
	"time"
)

func TestSpinWaitsAtLeast(t *testing.T) {
	for _, d := range []time.Duration{time.Microsecond, 100 * time.Microsecond, 2 * time.Millisecond} {
		start := time.Now()
		Spin(d)
		if got := time.Since(start); got < d {
			t.Errorf("Spin(%v) returned after %v", d, got)
		}
	}
}

func TestSpinNonPositive(t *testing.T) {
	start := time.Now()
	Spin(0)
	Spin(-time.Second)
	if got := time.Since(start); got > 100*time.Millisecond {
		t.Errorf("Spin with non-positive durations took %v", got)
	}
}
