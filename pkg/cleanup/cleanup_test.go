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

package cleanup

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func attachLike(order *[]string, fail bool) func() {
	cu := Make(func() { *order = append(*order, "buffer") })
	cu.Add(func() { *order = append(*order, "window") })
	defer cu.Clean()
	if fail {
		return nil
	}
	return cu.Release()
}

func TestCleanOnFailure(t *testing.T) {
	var order []string
	attachLike(&order, true)
	if want := []string{"window", "buffer"}; !cmp.Equal(order, want) {
		t.Errorf("cleanup order mismatch (-want +got):\n%s", cmp.Diff(want, order))
	}
}

func TestRelease(t *testing.T) {
	var order []string
	cleaner := attachLike(&order, false)
	if len(order) != 0 {
		t.Fatalf("cleanup functions called after Release: %v", order)
	}

	cleaner()
	if want := []string{"window", "buffer"}; !cmp.Equal(order, want) {
		t.Errorf("released cleaner order mismatch (-want +got):\n%s", cmp.Diff(want, order))
	}
}

func TestCleanTwice(t *testing.T) {
	calls := 0
	cu := Make(func() { calls++ })
	cu.Clean()
	cu.Clean()
	if calls != 1 {
		t.Errorf("cleanup called %d times, want 1", calls)
	}
}
