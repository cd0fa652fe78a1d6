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
	"bytes"
	"testing"

	"github.com/prometheus/common/expfmt"

	"github.com/free60/xenosrb/pkg/xenos/sim"
)

func TestStatsMetricFamilies(t *testing.T) {
	cp := sim.New()
	d, _ := attach(t, cp, 0x4000, Options{})
	for i := 0; i < 3; i++ {
		if err := d.Append(make([]byte, 64)); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}
	d.HandleInterrupt()

	var buf bytes.Buffer
	for _, mf := range d.Stats().MetricFamilies("0000:00:02.0") {
		if _, err := expfmt.MetricFamilyToText(&buf, mf); err != nil {
			t.Fatalf("MetricFamilyToText(%s): %v", mf.GetName(), err)
		}
	}
	parsed, err := (&expfmt.TextParser{}).TextToMetricFamilies(&buf)
	if err != nil {
		t.Fatalf("TextToMetricFamilies: %v", err)
	}

	for name, want := range map[string]float64{
		"xenos_ring_running":              1,
		"xenos_ring_capacity_bytes":       0x4000,
		"xenos_ring_head_bytes":           192,
		"xenos_ring_appends_total":        3,
		"xenos_ring_appended_bytes_total": 192,
		"xenos_ring_interrupts_total":     1,
		"xenos_ring_busy_total":           0,
	} {
		mf, ok := parsed[name]
		if !ok {
			t.Errorf("metric %q missing", name)
			continue
		}
		m := mf.GetMetric()[0]
		got := m.GetGauge().GetValue() + m.GetCounter().GetValue()
		if got != want {
			t.Errorf("%s = %v, want %v", name, got, want)
		}
		if l := m.GetLabel(); len(l) != 1 || l[0].GetName() != "device" || l[0].GetValue() != "0000:00:02.0" {
			t.Errorf("%s labels = %v", name, l)
		}
	}
}

func TestStateString(t *testing.T) {
	for s, want := range map[State]string{
		Uninitialized: "Uninitialized",
		PFPLoaded:     "PFPLoaded",
		IdleWait2:     "IdleWait2",
		Detached:      "Detached",
		State(99):     "State(99)",
	} {
		if got := s.String(); got != want {
			t.Errorf("State(%d).String() = %q, want %q", uint32(s), got, want)
		}
	}
}
