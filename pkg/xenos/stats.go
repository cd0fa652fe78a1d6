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
	"sync/atomic"

	dto "github.com/prometheus/client_model/go"
	"google.golang.org/protobuf/proto"
)

// counters are updated without the write lock so that Stats and
// HandleInterrupt never wait behind a producer.
type counters struct {
	appends       atomic.Uint64
	bytes         atomic.Uint64
	busy          atomic.Uint64
	tailRefreshes atomic.Uint64
	resets        atomic.Uint64
	interrupts    atomic.Uint64
}

// Stats is a snapshot of device activity.
type Stats struct {
	State State `json:"state"`

	Capacity uint32 `json:"capacity"`
	Head     uint32 `json:"head"`
	Tail     uint32 `json:"tail"`
	Free     uint32 `json:"free"`

	Appends       uint64 `json:"appends"`
	Bytes         uint64 `json:"bytes"`
	Busy          uint64 `json:"busy"`
	TailRefreshes uint64 `json:"tail_refreshes"`
	Resets        uint64 `json:"resets"`
	Interrupts    uint64 `json:"interrupts"`
}

// Stats returns a snapshot of the ring and the activity counters.
func (d *Device) Stats() Stats {
	d.writeMu.Lock()
	head, tail, free := d.ring.Head(), d.ring.Tail(), d.ring.FreeSpace()
	d.writeMu.Unlock()
	return Stats{
		State:         d.State(),
		Capacity:      d.capacity,
		Head:          head,
		Tail:          tail,
		Free:          free,
		Appends:       d.counters.appends.Load(),
		Bytes:         d.counters.bytes.Load(),
		Busy:          d.counters.busy.Load(),
		TailRefreshes: d.counters.tailRefreshes.Load(),
		Resets:        d.counters.resets.Load(),
		Interrupts:    d.counters.interrupts.Load(),
	}
}

// metricPrefix is prepended to every exported metric name.
const metricPrefix = "xenos_ring_"

// MetricFamilies returns s in Prometheus form. Every metric carries a device
// label with the given value.
func (s Stats) MetricFamilies(device string) []*dto.MetricFamily {
	label := []*dto.LabelPair{{Name: proto.String("device"), Value: proto.String(device)}}
	counter := func(name, help string, v uint64) *dto.MetricFamily {
		return &dto.MetricFamily{
			Name: proto.String(metricPrefix + name),
			Help: proto.String(help),
			Type: dto.MetricType_COUNTER.Enum(),
			Metric: []*dto.Metric{{
				Label:   label,
				Counter: &dto.Counter{Value: proto.Float64(float64(v))},
			}},
		}
	}
	gauge := func(name, help string, v uint32) *dto.MetricFamily {
		return &dto.MetricFamily{
			Name: proto.String(metricPrefix + name),
			Help: proto.String(help),
			Type: dto.MetricType_GAUGE.Enum(),
			Metric: []*dto.Metric{{
				Label: label,
				Gauge: &dto.Gauge{Value: proto.Float64(float64(v))},
			}},
		}
	}
	running := uint32(0)
	if s.State == Running {
		running = 1
	}
	return []*dto.MetricFamily{
		gauge("running", "Whether the command processor is running.", running),
		gauge("capacity_bytes", "Ring size in bytes.", s.Capacity),
		gauge("head_bytes", "Producer offset.", s.Head),
		gauge("tail_bytes", "Last known consumer offset.", s.Tail),
		gauge("free_bytes", "Free space at the last known consumer offset.", s.Free),
		counter("appends_total", "Successful appends.", s.Appends),
		counter("appended_bytes_total", "Bytes published to the command processor.", s.Bytes),
		counter("busy_total", "Appends rejected for lack of space.", s.Busy),
		counter("tail_refreshes_total", "Reads of the hardware read pointer.", s.TailRefreshes),
		counter("resets_total", "Ring resets.", s.Resets),
		counter("interrupts_total", "Interrupts handled.", s.Interrupts),
	}
}
