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

// Package xenos defines the register interface of the Xenos GPU command
// processor and the PCI identifiers of the parts that carry it. Offsets are
// byte offsets into the graphics register window (PCI BAR 0); every register
// is 32 bits wide and big-endian on the bus.
package xenos

import "math/bits"

// MicrosoftVendorID is the PCI vendor ID of every Xenos part.
const MicrosoftVendorID = 0x1414

// PCI device IDs, one per console motherboard revision.
const (
	XenonDeviceID  = 0x5811
	ZephyrDeviceID = 0x5821 // Also Falcon.
	JasperDeviceID = 0x5831
	SlimDeviceID   = 0x5841
)

// DeviceModels maps supported device IDs to their board names.
var DeviceModels = map[uint16]string{
	XenonDeviceID:  "xenon",
	ZephyrDeviceID: "zephyr/falcon",
	JasperDeviceID: "jasper",
	SlimDeviceID:   "slim",
}

// Register offsets.
const (
	RBBM_SOFT_RESET = 0x00F0

	CP_RB_BASE       = 0x0700
	CP_RB_CNTL       = 0x0704
	CP_RB_RPTR       = 0x0710
	CP_RB_WPTR       = 0x0714
	CP_RB_WPTR_DELAY = 0x0718
	CP_RB_RPTR_WR    = 0x071C

	CP_INT_ACK = 0x07D0
	CP_ME_CNTL = 0x07D8

	CP_ME_RAM_WADDR = 0x07E0
	CP_ME_RAM_RADDR = 0x07E4
	CP_ME_RAM_DATA  = 0x07E8

	CP_DEBUG = 0x07F0

	CP_PFP_UCODE_ADDR = 0x117C
	CP_PFP_UCODE_DATA = 0x1180

	RBBM_STATUS = 0x1740
)

// CP_RB_CNTL fields.
const (
	// RB_BUFSZ_MASK holds log2 of the ring size in quadwords.
	RB_BUFSZ_MASK = 0x000000FF

	// BUF_SWAP_32BIT selects 32-bit byte swapping of ring fetches.
	BUF_SWAP_32BIT = 0x00020000

	// RB_NO_UPDATE stops the CP from writing the read pointer back to memory.
	RB_NO_UPDATE = 0x08000000

	// RB_RPTR_WR_ENA allows the read pointer to be written through
	// CP_RB_RPTR_WR.
	RB_RPTR_WR_ENA = 0x80000000
)

// CP_ME_CNTL values. The low half keeps every micro engine queue enabled.
const (
	ME_HALT = 0x10000000

	ME_CNTL_RUN  = 0x0000FFFF
	ME_CNTL_HALT = ME_HALT | ME_CNTL_RUN

	// ME_CNTL_SHUTDOWN halts the engine with every queue disabled.
	ME_CNTL_SHUTDOWN = ME_HALT
)

// CP_INT_ACK_RTS_ALL acknowledges RTS interrupts 0 through 15.
const CP_INT_ACK_RTS_ALL = 0x0000FFFF

// RBBM_SOFT_RESET_CP resets the command processor block.
const RBBM_SOFT_RESET_CP = 0x00000001

// RBBM_STATUS_GUI_ACTIVE is set while the graphics pipeline is busy.
const RBBM_STATUS_GUI_ACTIVE = 0x80000000

// DefaultWptrDelay is the write pointer delay programmed after bring-up.
const DefaultWptrDelay = 0x0010

// RingControl returns the CP_RB_CNTL value for a ring of size bytes, which
// must be a power of two.
func RingControl(size uint32) uint32 {
	return RB_NO_UPDATE | BUF_SWAP_32BIT | uint32(bits.Len32(size>>3)-1)&RB_BUFSZ_MASK
}

// PM4_TYPE2 is a one-word type 2 packet, which the command processor skips.
const PM4_TYPE2 = 0x80000000
