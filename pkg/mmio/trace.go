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

package mmio

import (
	"github.com/free60/xenosrb/pkg/log"
)

// Traced wraps a Window and logs every access at debug level.
type Traced struct {
	Window
	Logger log.Logger
}

// Read32 implements Window.Read32.
func (t *Traced) Read32(off uint32) (uint32, error) {
	v, err := t.Window.Read32(off)
	if err != nil {
		t.Logger.Debugf("mmio: read  %#06x failed: %v", off, err)
	} else {
		t.Logger.Debugf("mmio: read  %#06x -> %#010x", off, v)
	}
	return v, err
}

// Write32 implements Window.Write32.
func (t *Traced) Write32(off uint32, v uint32) error {
	err := t.Window.Write32(off, v)
	if err != nil {
		t.Logger.Debugf("mmio: write %#06x <- %#010x failed: %v", off, v, err)
	} else {
		t.Logger.Debugf("mmio: write %#06x <- %#010x", off, v)
	}
	return err
}
