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

import "testing"

func TestRingControl(t *testing.T) {
	for _, tc := range []struct {
		size uint32
		want uint32
	}{
		{0x1000, 0x08020009},
		{0x8000, 0x0802000C},
		{0x80000000, 0x0802001C},
	} {
		if got := RingControl(tc.size); got != tc.want {
			t.Errorf("RingControl(%#x) = %#x, want %#x", tc.size, got, tc.want)
		}
	}
}

func TestMicrocodeImages(t *testing.T) {
	if got, want := len(PFPMicrocode), 288; got != want {
		t.Errorf("len(PFPMicrocode) = %d, want %d", got, want)
	}
	if got, want := len(MEMicrocode), 2304; got != want {
		t.Errorf("len(MEMicrocode) = %d, want %d", got, want)
	}
	if len(MEMicrocode)%3 != 0 {
		t.Errorf("len(MEMicrocode) = %d is not a whole number of instructions", len(MEMicrocode))
	}
	// Spot checks against the first and last words of each image.
	for _, tc := range []struct {
		name string
		got  uint32
		want uint32
	}{
		{"PFP[0]", PFPMicrocode[0], 0x00C60400},
		{"PFP[1]", PFPMicrocode[1], 0x007E424B},
		{"PFP[last]", PFPMicrocode[len(PFPMicrocode)-1], 6},
		{"ME[1]", MEMicrocode[1], 0xC0200400},
		{"ME[last-2]", MEMicrocode[len(MEMicrocode)-3], 0x50280},
		{"ME[last-1]", MEMicrocode[len(MEMicrocode)-2], 0x20008},
	} {
		if tc.got != tc.want {
			t.Errorf("%s = %#x, want %#x", tc.name, tc.got, tc.want)
		}
	}
}
