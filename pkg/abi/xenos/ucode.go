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

// PFPMicrocode is the prefetch parser firmware image. It is streamed to
// CP_PFP_UCODE_DATA word by word and must be reproduced exactly.
var PFPMicrocode = [...]uint32{
	0x00c60400, 0x007e424b, 0x00a00000, 0x007e828b, 0x00800001, 0x00c60400,
	0x00cc4003, 0x00800000, 0x00d60003, 0x00c60800, 0x00c80c1d, 0x0098c007,
	0x00c61000, 0x00978003, 0x00cc4003, 0x00d60004, 0x00800000, 0x00cd0003,
	0x009783ef, 0x00c60400, 0x00800000, 0x00c60400, 0x00c60800, 0x00348c08,
	0x0098c006, 0x00c80c1e, 0x0098c000, 0x00c80c1e, 0x0080001f, 0x00cc8007,
	0x00cc8008, 0x00cc4003, 0x00800000, 0x00cc8003, 0x00c60400, 0x001aac07,
	0x00ca8821, 0x0096c015, 0x00c8102c, 0x0098800a, 0x00329418, 0x009a4004,
	0x00cc6810, 0x00042401, 0x00d00143, 0x00d00162, 0x00cd0002, 0x007d514c,
	0x00cd4003, 0x009b8007, 0x0006a801, 0x00964003, 0x00c28000, 0x00cf4003,
	0x00800001, 0x00c60400, 0x00800023, 0x00c60400, 0x00964003, 0x007e424b,
	0x00d00283, 0x00c8102b, 0x00c60800, 0x0099000e, 0x00c80c29, 0x0098c00a,
	0x00345002, 0x00cd0002, 0x00cc8002, 0x00d001e3, 0x00d00183, 0x00cc8003,
	0x00cc4018, 0x0080004d, 0x00cc8019, 0x00d00203, 0x00d00183, 0x009783b4,
	0x00c60400, 0x00c8102b, 0x00c60800, 0x009903af, 0x00c80c2a, 0x0098c00a,
	0x00345002, 0x00cd0002, 0x00cc8002, 0x00d001e3, 0x00d001a3, 0x00cc8003,
	0x00cc401a, 0x00800000, 0x00cc801b, 0x00d00203, 0x00d001a3, 0x00800001,
	0x00c60400, 0x00c60800, 0x00c60c00, 0x00c8102d, 0x00349402, 0x0099000b,
	0x00c8182e, 0x00cd4002, 0x00cd8002, 0x00d001e3, 0x00d001c3, 0x00ccc003,
	0x00cc801c, 0x00cd801d, 0x00800001, 0x00c60400, 0x00d00203, 0x00800000,
	0x00d001c3, 0x00c8081f, 0x00c60c00, 0x00c80c20, 0x00988000, 0x00c8081f,
	0x00cc4003, 0x00ccc003, 0x00d60003, 0x00800000, 0x00ccc022, 0x00c81c2f,
	0x00c60400, 0x00c60800, 0x00c60c00, 0x00c81030, 0x0099c000, 0x00c81c2f,
	0x00cc8021, 0x00cc4020, 0x00990011, 0x00c107ff, 0x00d00223, 0x00d00243,
	0x00345402, 0x007cb18b, 0x007d95cc, 0x00cdc002, 0x00ccc002, 0x00d00263,
	0x00978005, 0x00ccc003, 0x00c60800, 0x0080008b, 0x00c60c00, 0x00800000,
	0x00d00283, 0x0097836a, 0x00c60400, 0x00d6001f, 0x00800001, 0x00c60400,
	0x00c60800, 0x00c60c00, 0x00c61000, 0x00348802, 0x00cc8002, 0x00cc4003,
	0x00ccc003, 0x00cd0002, 0x00800000, 0x00cd0003, 0x00d2000d, 0x00cc000d,
	0x00800000, 0x00cc000d, 0x00c60800, 0x00c60c00, 0x00ca1433, 0x00d022a0,
	0x00cce000, 0x00994351, 0x00cce005, 0x00800000, 0x00062001, 0x00c60800,
	0x00c60c00, 0x00d022a0, 0x00cce000, 0x00d022ae, 0x00cce029, 0x00cce005,
	0x00800000, 0x00062001, 0x00964000, 0x00c82435, 0x00ca0838, 0x00366401,
	0x00964340, 0x00ca0c3a, 0x00cca000, 0x00cce000, 0x00cce029, 0x00cce005,
	0x00800000, 0x00062001, 0x00c60800, 0x00c60c00, 0x00d202c3, 0x00cc8003,
	0x00ccc003, 0x00cce027, 0x00800000, 0x00062001, 0x00ca0831, 0x009883ff,
	0x00ca0831, 0x00d6001f, 0x00800001, 0x00c60400, 0x00d02360, 0x00d02380,
	0x00d02385, 0x00800000, 0x00062001, 0x000a2001, 0x00ca0436, 0x009843df,
	0x00c82435, 0x00800001, 0x00c60400, 0x00d20009, 0x00d2000a, 0x00cc001f,
	0x00800000, 0x00cc001f, 0x00d2000b, 0x00d2000c, 0x00cc001f, 0x00800000,
	0x00cc001f, 0x00cc0023, 0x00cc4003, 0x00800000, 0x00d60003, 0x00d00303,
	0x00cc0024, 0x00cc4003, 0x00800000, 0x00d60003, 0x00d00323, 0x00cc0025,
	0x00cc4003, 0x00800000, 0x00d60003, 0x00d00343, 0x00cc0026, 0x00cc4003,
	0x00800000, 0x00d60003, 0x00800000, 0x00d6001f, 0x000100ef, 0x000200f4,
	0x000300f9, 0x00050004, 0x000600d6, 0x001000fe, 0x001700db, 0x00220009,
	0x00230016, 0x00250022, 0x00270061, 0x002d0073, 0x002e007d, 0x002f009c,
	0x003700c8, 0x003800b3, 0x003b00a6, 0x003f00aa, 0x004800eb, 0x005000e1,
	0x005100e6, 0x005500f0, 0x005600f5, 0x005700fa, 0x005d00d0, 0x00000006,
	0x00000006, 0x00000006, 0x00000006, 0x00000006, 0x00000006, 0x00000006,
}

// MEMicrocode is the micro engine firmware image, streamed to CP_ME_RAM_DATA.
// Words are grouped in triples; every instruction occupies three RAM slots.
var MEMicrocode = [...]uint32{
	0x00000000, 0xc0200400, 0x00000000, 0x00000000, 0x00a0000a, 0x00000000,
	0x000001f3, 0x00204411, 0x00000000, 0x01000000, 0x00204811, 0x00000000,
	0x00000000, 0x00400000, 0x00000004, 0x0000ffff, 0x00284621, 0x00000000,
	0x00000000, 0xd9004800, 0x00000000, 0x00000000, 0x00400000, 0x00000000,
	0x00000000, 0x34e00000, 0x00000000, 0x00000000, 0x00600000, 0x0000024a,
	0x0000ffff, 0xc0280a20, 0x00000000, 0x00000000, 0x00294582, 0x00000000,
	0x00000000, 0xd9004800, 0x00000000, 0x00000000, 0x00400000, 0x00000000,
	0x00000000, 0x00600000, 0x0000024a, 0x0000ffff, 0xc0284620, 0x00000000,
	0x00000000, 0xd9004800, 0x00000000, 0x00000000, 0x00400000, 0x00000000,
	0x00000000, 0x00600000, 0x00000267, 0x000021fc, 0x0029462c, 0x00000000,
	0x00000000, 0xc0204800, 0x00000000, 0x00000000, 0x00400000, 0x00000000,
	0x00000000, 0x00600000, 0x00000267, 0x000021fc, 0x0029462c, 0x00000000,
	0x00000000, 0xc0204800, 0x00000000, 0x00003fff, 0x002f022f, 0x00000000,
	0x00000000, 0x0ce00000, 0x00000000, 0x0000a1fd, 0x0029462c, 0x00000000,
	0x00000000, 0xd9004800, 0x00000000, 0x00000000, 0x00400000, 0x00000000,
	0x00000394, 0x00204411, 0x00000000, 0x00000001, 0xc0404811, 0x00000000,
	0x00000000, 0x00600000, 0x00000267, 0x000021f9, 0x0029462c, 0x00000000,
	0x00000008, 0xc0210a20, 0x00000000, 0x00000000, 0x14e00000, 0x00000025,
	0x00000007, 0x00404811, 0x00000000, 0x00000008, 0x00404811, 0x00000000,
	0x00000000, 0x00600000, 0x00000267, 0x000021fc, 0x0029462c, 0x00000000,
	0x00000000, 0xc0204800, 0x00000000, 0x0000a1fd, 0x0029462c, 0x00000000,
	0x00000000, 0xc0200800, 0x00000000, 0x00000000, 0x002f0222, 0x00000000,
	0x00000000, 0x0ce00000, 0x00000000, 0x00000000, 0x40204800, 0x00000000,
	0x00000001, 0x40304a20, 0x00000000, 0x00000002, 0xc0304a20, 0x00000000,
	0x00000001, 0x00530a22, 0x0000002b, 0x80000000, 0xc0204411, 0x00000000,
	0x00000001, 0x00604811, 0x00000281, 0x00000000, 0x00400000, 0x00000000,
	0x00000000, 0xc0200000, 0x00000000, 0x12b9b0a1, 0xc02f0220, 0x00000000,
	0x00000000, 0x0cc00000, 0x0000003a, 0x1033c4d6, 0xc02f0220, 0x00000000,
	0x00000000, 0x0cc00000, 0x0000003a, 0x00000000, 0x00400000, 0x00000000,
	0x000001f3, 0x00204411, 0x00000000, 0x08000000, 0x00204811, 0x00000000,
	0x00000000, 0x00400000, 0x0000003c, 0x80000000, 0xc0204411, 0x00000000,
	0x00000000, 0x00604811, 0x00000281, 0x00000000, 0x00400000, 0x00000000,
	0x0000001f, 0x40280a20, 0x00000000, 0x0000001b, 0x002f0222, 0x00000000,
	0x00000000, 0x0ce00000, 0x00000057, 0x00000002, 0x002f0222, 0x00000000,
	0x00000000, 0x0ce00000, 0x0000005e, 0x00000003, 0x002f0222, 0x00000000,
	0x00000000, 0x0ce00000, 0x00000065, 0x00000004, 0x002f0222, 0x00000000,
	0x00000000, 0x0ce00000, 0x0000006c, 0x00000014, 0x002f0222, 0x00000000,
	0x00000000, 0x0ce00000, 0x0000006c, 0x0000001a, 0x002f0222, 0x00000000,
	0x00000000, 0x0ce00000, 0x00000074, 0x00000015, 0x002f0222, 0x00000000,
	0x00000000, 0x0ce00000, 0x00000079, 0x000021f9, 0x0029462c, 0x00000000,
	0x00000000, 0xc0404802, 0x00000000, 0x0000001f, 0x40280a20, 0x00000000,
	0x0000001b, 0x002f0222, 0x00000000, 0x00000000, 0x0ce00000, 0x00000057,
	0x00000002, 0x002f0222, 0x00000000, 0x00000000, 0x0ce00000, 0x0000005e,
	0x00000000, 0x00400000, 0x00000065, 0x0000001f, 0xc0210e20, 0x00000000,
	0x00000612, 0x00204411, 0x00000000, 0x00000000, 0x00204803, 0x00000000,
	0x00000000, 0xc0204800, 0x00000000, 0x00000000, 0xc0204800, 0x00000000,
	0x000021f9, 0x0029462c, 0x00000000, 0x00000000, 0x00404802, 0x00000000,
	0x0000001e, 0xc0210e20, 0x00000000, 0x00000600, 0x00204411, 0x00000000,
	0x00000000, 0x00204803, 0x00000000, 0x00000000, 0xc0204800, 0x00000000,
	0x00000000, 0xc0204800, 0x00000000, 0x000021f9, 0x0029462c, 0x00000000,
	0x00000000, 0x00404802, 0x00000000, 0x0000001e, 0xc0210e20, 0x00000000,
	0x00000605, 0x00204411, 0x00000000, 0x00000000, 0x00204803, 0x00000000,
	0x00000000, 0xc0204800, 0x00000000, 0x00000000, 0xc0204800, 0x00000000,
	0x000021f9, 0x0029462c, 0x00000000, 0x00000000, 0x00404802, 0x00000000,
	0x0000001f, 0x40280a20, 0x00000000, 0x0000001f, 0xc0210e20, 0x00000000,
	0x0000060a, 0x00204411, 0x00000000, 0x00000000, 0x00204803, 0x00000000,
	0x00000000, 0xc0204800, 0x00000000, 0x00000000, 0xc0204800, 0x00000000,
	0x000021f9, 0x0029462c, 0x00000000, 0x00000000, 0x00404802, 0x00000000,
	0x0000001f, 0xc0280a20, 0x00000000, 0x00000611, 0x00204411, 0x00000000,
	0x00000000, 0xc0204800, 0x00000000, 0x000021f9, 0x0029462c, 0x00000000,
	0x00000000, 0x00404802, 0x00000000, 0x0000001f, 0xc0280a20, 0x00000000,
	0x00000000, 0x00600000, 0x00000267, 0x000021f9, 0x0029462c, 0x00000000,
	0x00000000, 0x00404802, 0x00000000, 0x81000000, 0x00204411, 0x00000000,
	0x00000001, 0x00204811, 0x00000000, 0x00001fff, 0x40280a20, 0x00000000,
	0x80000000, 0x40280e20, 0x00000000, 0x40000000, 0xc0281220, 0x00000000,
	0x00040000, 0x00294622, 0x00000000, 0x00000000, 0x00600000, 0x00000282,
	0x00000000, 0x00201410, 0x00000000, 0x00000000, 0x002f0223, 0x00000000,
	0x00000000, 0x0cc00000, 0x00000088, 0x00000000, 0xc0401800, 0x0000008c,
	0x00001fff, 0xc0281a20, 0x00000000, 0x00040000, 0x00294626, 0x00000000,
	0x00000000, 0x00600000, 0x00000282, 0x00000000, 0x00201810, 0x00000000,
	0x00000000, 0x002f0224, 0x00000000, 0x00000000, 0x0cc00000, 0x0000008f,
	0x00000000, 0xc0401c00, 0x00000093, 0x00001fff, 0xc0281e20, 0x00000000,
	0x00040000, 0x00294627, 0x00000000, 0x00000000, 0x00600000, 0x00000282,
	0x00000000, 0x00201c10, 0x00000000, 0x00000000, 0x00204402, 0x00000000,
	0x00000000, 0x002820c5, 0x00000000, 0x00000000, 0x004948e8, 0x00000000,
	0x00000000, 0x00600000, 0x0000024a, 0x00000010, 0x40210a20, 0x00000000,
	0x000000ff, 0x00280a22, 0x00000000, 0x000007ff, 0x40280e20, 0x00000000,
	0x00000002, 0x00221e23, 0x00000000, 0x00000005, 0xc0211220, 0x00000000,
	0x00080000, 0x00281224, 0x00000000, 0x00000013, 0x00210224, 0x00000000,
	0x00000000, 0x14c00000, 0x000000a1, 0xa1000000, 0x00204411, 0x00000000,
	0x00000000, 0x00204811, 0x00000000, 0x00000000, 0x002f0222, 0x00000000,
	0x00000000, 0x0cc00000, 0x000000a5, 0x00000008, 0x0020162d, 0x00000000,
	0x00004000, 0x00500e23, 0x000000b4, 0x00000001, 0x002f0222, 0x00000000,
	0x00000000, 0x0cc00000, 0x000000a9, 0x00000009, 0x0020162d, 0x00000000,
	0x00004800, 0x00500e23, 0x000000b4, 0x00000002, 0x002f0222, 0x00000000,
	0x00000000, 0x0cc00000, 0x000000ad, 0x00000037, 0x0020162d, 0x00000000,
	0x00004900, 0x00500e23, 0x000000b4, 0x00000003, 0x002f0222, 0x00000000,
	0x00000000, 0x0cc00000, 0x000000b1, 0x00000036, 0x0020162d, 0x00000000,
	0x00004908, 0x00500e23, 0x000000b4, 0x00000029, 0x0020162d, 0x00000000,
	0x00002000, 0x00300e23, 0x00000000, 0x00000000, 0x00290d83, 0x00000000,
	0x94000000, 0x00204411, 0x00000000, 0x00000000, 0x002948e5, 0x00000000,
	0x00000000, 0x00294483, 0x00000000, 0x00000000, 0x40201800, 0x00000000,
	0x00000000, 0xd9004800, 0x00000000, 0x00000013, 0x00210224, 0x00000000,
	0x00000000, 0x14c00000, 0x00000000, 0x94000000, 0x00204411, 0x00000000,
	0x00000000, 0x002948e5, 0x00000000, 0x93000000, 0x00204411, 0x00000000,
	0x00000000, 0x00404806, 0x00000000, 0x00000000, 0x00600000, 0x0000024a,
	0x00000000, 0xc0200800, 0x00000000, 0x00000000, 0xc0201400, 0x00000000,
	0x0000001f, 0x00211a25, 0x00000000, 0x00000000, 0x14e00000, 0x00000000,
	0x000007ff, 0x00280e25, 0x00000000, 0x00000010, 0x00211225, 0x00000000,
	0x83000000, 0x00204411, 0x00000000, 0x00000000, 0x002f0224, 0x00000000,
	0x00000000, 0x0ae00000, 0x000000cb, 0x00000008, 0x00203622, 0x00000000,
	0x00004000, 0x00504a23, 0x000000da, 0x00000001, 0x002f0224, 0x00000000,
	0x00000000, 0x0ae00000, 0x000000cf, 0x00000009, 0x00203622, 0x00000000,
	0x00004800, 0x00504a23, 0x000000da, 0x00000002, 0x002f0224, 0x00000000,
	0x00000000, 0x0ae00000, 0x000000d3, 0x00000037, 0x00203622, 0x00000000,
	0x00004900, 0x00504a23, 0x000000da, 0x00000003, 0x002f0224, 0x00000000,
	0x00000000, 0x0ae00000, 0x000000d7, 0x00000036, 0x00203622, 0x00000000,
	0x00004908, 0x00504a23, 0x000000da, 0x00000029, 0x00203622, 0x00000000,
	0x00000000, 0x00290d83, 0x00000000, 0x00002000, 0x00304a23, 0x00000000,
	0x84000000, 0x00204411, 0x00000000, 0x00000000, 0xc0204800, 0x00000000,
	0x00000000, 0x21000000, 0x00000000, 0x00000000, 0x00400000, 0x000000c1,
	0x00000000, 0x00600000, 0x0000024a, 0x83000000, 0x00204411, 0x00000000,
	0x00004000, 0xc0304a20, 0x00000000, 0x84000000, 0x00204411, 0x00000000,
	0x00000000, 0xc0204800, 0x00000000, 0x00000000, 0x21000000, 0x00000000,
	0x00000000, 0x00400000, 0x00000000, 0x81000000, 0x00204411, 0x00000000,
	0x00000001, 0x00204811, 0x00000000, 0x00040578, 0x00204411, 0x00000000,
	0x00000000, 0x00600000, 0x00000282, 0x00000000, 0xc0400000, 0x00000000,
	0x00000000, 0xc0200c00, 0x00000000, 0x00000000, 0xc0201000, 0x00000000,
	0x00000000, 0xc0201400, 0x00000000, 0x00000000, 0xc0201800, 0x00000000,
	0x00007f00, 0x00280a21, 0x00000000, 0x00004500, 0x002f0222, 0x00000000,
	0x00000000, 0x0ce00000, 0x000000f2, 0x00000000, 0xc0201c00, 0x00000000,
	0x00000000, 0x17000000, 0x00000000, 0x00000010, 0x00280a23, 0x00000000,
	0x00000010, 0x002f0222, 0x00000000, 0x00000000, 0x0ce00000, 0x000000fb,
	0x81000000, 0x00204411, 0x00000000, 0x00000001, 0x00204811, 0x00000000,
	0x00040000, 0x00294624, 0x00000000, 0x00000000, 0x00600000, 0x00000282,
	0x00000000, 0x00400000, 0x00000103, 0x81000000, 0x00204411, 0x00000000,
	0x00000000, 0x00204811, 0x00000000, 0x000001ea, 0x00204411, 0x00000000,
	0x00000000, 0x00204804, 0x00000000, 0x00000000, 0x1ac00000, 0x000000ff,
	0x9e000000, 0x00204411, 0x00000000, 0xdeadbeef, 0x00204811, 0x00000000,
	0x00000000, 0x1ae00000, 0x00000102, 0x00000000, 0x002820d0, 0x00000000,
	0x00000007, 0x00280a23, 0x00000000, 0x00000001, 0x002f0222, 0x00000000,
	0x00000000, 0x0ae00000, 0x0000010a, 0x00000000, 0x002f00a8, 0x00000000,
	0x00000000, 0x04e00000, 0x00000123, 0x00000000, 0x00400000, 0x0000012a,
	0x00000002, 0x002f0222, 0x00000000, 0x00000000, 0x0ae00000, 0x0000010f,
	0x00000000, 0x002f00a8, 0x00000000, 0x00000000, 0x02e00000, 0x00000123,
	0x00000000, 0x00400000, 0x0000012a, 0x00000003, 0x002f0222, 0x00000000,
	0x00000000, 0x0ae00000, 0x00000114, 0x00000000, 0x002f00a8, 0x00000000,
	0x00000000, 0x0ce00000, 0x00000123, 0x00000000, 0x00400000, 0x0000012a,
	0x00000004, 0x002f0222, 0x00000000, 0x00000000, 0x0ae00000, 0x00000119,
	0x00000000, 0x002f00a8, 0x00000000, 0x00000000, 0x0ae00000, 0x00000123,
	0x00000000, 0x00400000, 0x0000012a, 0x00000005, 0x002f0222, 0x00000000,
	0x00000000, 0x0ae00000, 0x0000011e, 0x00000000, 0x002f00a8, 0x00000000,
	0x00000000, 0x06e00000, 0x00000123, 0x00000000, 0x00400000, 0x0000012a,
	0x00000006, 0x002f0222, 0x00000000, 0x00000000, 0x0ae00000, 0x00000123,
	0x00000000, 0x002f00a8, 0x00000000, 0x00000000, 0x08e00000, 0x00000123,
	0x00000000, 0x00400000, 0x0000012a, 0x00007f00, 0x00280a21, 0x00000000,
	0x00004500, 0x002f0222, 0x00000000, 0x00000000, 0x0ae00000, 0x00000000,
	0x00000008, 0x00210a23, 0x00000000, 0x00000000, 0x14e00000, 0x0000014a,
	0x00000000, 0xc0204400, 0x00000000, 0x00000000, 0xc0404800, 0x00000000,
	0x00007f00, 0x00280a21, 0x00000000, 0x00004500, 0x002f0222, 0x00000000,
	0x00000000, 0x0ae00000, 0x0000012f, 0x00000000, 0xc0200000, 0x00000000,
	0x00000000, 0xc0400000, 0x00000000, 0x00000000, 0x00404c07, 0x000000f2,
	0x00000000, 0xc0201000, 0x00000000, 0x00000000, 0xc0201400, 0x00000000,
	0x00000000, 0xc0201800, 0x00000000, 0x00000000, 0xc0201c00, 0x00000000,
	0x00000000, 0x17000000, 0x00000000, 0x81000000, 0x00204411, 0x00000000,
	0x00000001, 0x00204811, 0x00000000, 0x00040000, 0x00294624, 0x00000000,
	0x00000000, 0x00600000, 0x00000282, 0x00000000, 0x002820d0, 0x00000000,
	0x00000000, 0x002f00a8, 0x00000000, 0x00000000, 0x0ce00000, 0x00000000,
	0x00000000, 0x00404c07, 0x00000134, 0x00000000, 0xc0201000, 0x00000000,
	0x00000000, 0xc0201400, 0x00000000, 0x00000000, 0xc0201800, 0x00000000,
	0x00000000, 0xc0201c00, 0x00000000, 0x00000000, 0x17000000, 0x00000000,
	0x81000000, 0x00204411, 0x00000000, 0x00000001, 0x00204811, 0x00000000,
	0x00040000, 0x00294624, 0x00000000, 0x00000000, 0x00600000, 0x00000282,
	0x00000000, 0x002820d0, 0x00000000, 0x00000000, 0x002f00a8, 0x00000000,
	0x00000000, 0x06e00000, 0x00000000, 0x00000000, 0x00404c07, 0x00000141,
	0x0000060d, 0x00204411, 0x00000000, 0x00000000, 0xc0204800, 0x00000000,
	0x00000000, 0xc0404800, 0x00000000, 0x81000000, 0x00204411, 0x00000000,
	0x00000009, 0x00204811, 0x00000000, 0x0000060d, 0x00204411, 0x00000000,
	0x00000000, 0xc0204800, 0x00000000, 0x00000000, 0x00404810, 0x00000000,
	0x00001fff, 0xc0280a20, 0x00000000, 0x00020000, 0x00294622, 0x00000000,
	0x00000018, 0xc0424a20, 0x00000000, 0x81000000, 0x00204411, 0x00000000,
	0x00000001, 0x00204811, 0x00000000, 0x00040000, 0xc0294620, 0x00000000,
	0x00000000, 0x00600000, 0x00000282, 0x0000060d, 0x00204411, 0x00000000,
	0x00000000, 0xc0204800, 0x00000000, 0x00000000, 0x00404810, 0x00000000,
	0x000001f3, 0x00204411, 0x00000000, 0xe0000000, 0xc0484a20, 0x00000000,
	0x00000000, 0xd9000000, 0x00000000, 0x00000000, 0x00400000, 0x00000000,
	0x0000045d, 0x00204411, 0x00000000, 0x0000003f, 0xc0484a20, 0x00000000,
	0x00000000, 0x00600000, 0x0000024a, 0x81000000, 0x00204411, 0x00000000,
	0x00000002, 0x00204811, 0x00000000, 0x000000ff, 0x00280e30, 0x00000000,
	0x00000000, 0x002f0223, 0x00000000, 0x00000000, 0x0cc00000, 0x00000165,
	0x00000000, 0x00200411, 0x00000000, 0x0000001d, 0x00203621, 0x00000000,
	0x0000001e, 0x00203621, 0x00000000, 0x00000000, 0xc0200800, 0x00000000,
	0x00000009, 0x00210222, 0x00000000, 0x00000000, 0x14c00000, 0x00000171,
	0x00000000, 0x00600000, 0x00000275, 0x00000000, 0x00200c11, 0x00000000,
	0x00000038, 0x00203623, 0x00000000, 0x00000000, 0x00210a22, 0x00000000,
	0x00000000, 0x14c00000, 0x0000017a, 0x00000000, 0xc02f0220, 0x00000000,
	0x00000000, 0x00400000, 0x00000177, 0x00000000, 0x00600000, 0x000001d8,
	0x00000000, 0x00400000, 0x00000178, 0x00000000, 0x00600000, 0x000001dc,
	0xa0000000, 0x00204411, 0x00000000, 0x00000000, 0x00204811, 0x00000000,
	0x00000001, 0x00210a22, 0x00000000, 0x00000000, 0x14c00000, 0x0000017f,
	0xf1ffffff, 0x00283a2e, 0x00000000, 0x0000001a, 0xc0220e20, 0x00000000,
	0x00000000, 0x0029386e, 0x00000000, 0x00000001, 0x00210a22, 0x00000000,
	0x00000000, 0x14c00000, 0x00000189, 0x0000000e, 0xc0203620, 0x00000000,
	0x0000000f, 0xc0203620, 0x00000000, 0x00000010, 0xc0203620, 0x00000000,
	0x00000011, 0xc0203620, 0x00000000, 0x00000012, 0xc0203620, 0x00000000,
	0x00000013, 0xc0203620, 0x00000000, 0x00000014, 0xc0203620, 0x00000000,
	0x00000015, 0xc0203620, 0x00000000, 0x00000001, 0x00210a22, 0x00000000,
	0x00000000, 0x14c00000, 0x000001ac, 0x00000000, 0xc0200c00, 0x00000000,
	0x8c000000, 0x00204411, 0x00000000, 0x00000000, 0x00204803, 0x00000000,
	0x00000fff, 0x00281223, 0x00000000, 0x00000019, 0x00203624, 0x00000000,
	0x00000003, 0x00381224, 0x00000000, 0x00005000, 0x00301224, 0x00000000,
	0x00000018, 0x00203624, 0x00000000, 0x87000000, 0x00204411, 0x00000000,
	0x00000000, 0x00204804, 0x00000000, 0x00000001, 0x00331224, 0x00000000,
	0x86000000, 0x00204411, 0x00000000, 0x00000000, 0x00204804, 0x00000000,
	0x88000000, 0x00204411, 0x00000000, 0x00007fff, 0x00204811, 0x00000000,
	0x00000010, 0x00211623, 0x00000000, 0x00000fff, 0x00281a23, 0x00000000,
	0x00000000, 0x00331ca6, 0x00000000, 0x8f000000, 0x00204411, 0x00000000,
	0x00000003, 0x00384a27, 0x00000000, 0x00000010, 0x00211223, 0x00000000,
	0x00000017, 0x00203624, 0x00000000, 0x8b000000, 0x00204411, 0x00000000,
	0x00000000, 0x00204804, 0x00000000, 0x00000003, 0x00381224, 0x00000000,
	0x00005000, 0x00301224, 0x00000000, 0x00000016, 0x00203624, 0x00000000,
	0x85000000, 0x00204411, 0x00000000, 0x00000000, 0x00204804, 0x00000000,
	0x00001000, 0x00331cd1, 0x00000000, 0x90000000, 0x00204411, 0x00000000,
	0x00000003, 0x00384a27, 0x00000000, 0x00300000, 0x00293a2e, 0x00000000,
	0x00000001, 0x00210a22, 0x00000000, 0x00000000, 0x14c00000, 0x000001b9,
	0xa3000000, 0x00204411, 0x00000000, 0x00000000, 0x40204800, 0x00000000,
	0x0000000a, 0xc0220e20, 0x00000000, 0x00000021, 0x00203623, 0x00000000,
	0x00000000, 0x00600000, 0x000001dc, 0xffffe000, 0x00200411, 0x00000000,
	0x0000002e, 0x00203621, 0x00000000, 0x0000002f, 0x00203621, 0x00000000,
	0x00001fff, 0x00200411, 0x00000000, 0x00000030, 0x00203621, 0x00000000,
	0x00000031, 0x00203621, 0x00000000, 0x00000001, 0x00210a22, 0x00000000,
	0x00000000, 0x14c00000, 0x000001bc, 0x00000000, 0xc0200000, 0x00000000,
	0x00000001, 0x00210a22, 0x00000000, 0x00000000, 0x14c00000, 0x000001c2,
	0x9c000000, 0x00204411, 0x00000000, 0x0000001f, 0x40214a20, 0x00000000,
	0x96000000, 0x00204411, 0x00000000, 0x00000000, 0xc0204800, 0x00000000,
	0x00000001, 0x00210a22, 0x00000000, 0x00000000, 0x14c00000, 0x000001cb,
	0x3fffffff, 0x00283a2e, 0x00000000, 0xc0000000, 0x40280e20, 0x00000000,
	0x00000000, 0x0029386e, 0x00000000, 0x18000000, 0x40280e20, 0x00000000,
	0x00000038, 0x00203623, 0x00000000, 0xa4000000, 0x00204411, 0x00000000,
	0x00000000, 0xc0204800, 0x00000000, 0x00000001, 0x00210a22, 0x00000000,
	0x00000000, 0x14c00000, 0x000001d7, 0x00000000, 0xc0200c00, 0x00000000,
	0x0000002b, 0x00203623, 0x00000000, 0x0000002d, 0x00203623, 0x00000000,
	0x00000002, 0x40221220, 0x00000000, 0x00000000, 0x00301083, 0x00000000,
	0x0000002c, 0x00203624, 0x00000000, 0x00000003, 0xc0210e20, 0x00000000,
	0x10000000, 0x00280e23, 0x00000000, 0xefffffff, 0x00283a2e, 0x00000000,
	0x00000000, 0x0029386e, 0x00000000, 0x00000000, 0x00400000, 0x00000000,
	0x000025f4, 0x00204411, 0x00000000, 0x0000000a, 0x00214a2c, 0x00000000,
	0x00000000, 0x00600000, 0x00000273, 0x00000000, 0x00800000, 0x00000000,
	0x000021f4, 0x00204411, 0x00000000, 0x0000000a, 0x00214a2c, 0x00000000,
	0x00000000, 0x00600000, 0x00000275, 0x00000000, 0x00800000, 0x00000000,
	0x00000000, 0x00600000, 0x0000024a, 0x00000000, 0xc0200800, 0x00000000,
	0x0000001f, 0x00210e22, 0x00000000, 0x00000000, 0x14e00000, 0x00000000,
	0x000003ff, 0x00280e22, 0x00000000, 0x00000018, 0x00211222, 0x00000000,
	0x0000000e, 0x00301224, 0x00000000, 0x00000000, 0x0020108d, 0x00000000,
	0x00002000, 0x00291224, 0x00000000, 0x83000000, 0x00204411, 0x00000000,
	0x00000000, 0x00294984, 0x00000000, 0x84000000, 0x00204411, 0x00000000,
	0x00000000, 0x00204803, 0x00000000, 0x00000000, 0x21000000, 0x00000000,
	0x00000000, 0x00400000, 0x000001e1, 0x82000000, 0x00204411, 0x00000000,
	0x00000001, 0x00204811, 0x00000000, 0x00000000, 0xc0200800, 0x00000000,
	0x00003fff, 0x40280e20, 0x00000000, 0x00000010, 0xc0211220, 0x00000000,
	0x00000000, 0x002f0222, 0x00000000, 0x00000000, 0x0ae00000, 0x000001fe,
	0x00000000, 0x2ae00000, 0x00000208, 0x20000080, 0x00281e2e, 0x00000000,
	0x00000080, 0x002f0227, 0x00000000, 0x00000000, 0x0ce00000, 0x000001fb,
	0x00000000, 0x00401c0c, 0x000001fc, 0x00000020, 0x00201e2d, 0x00000000,
	0x000021f9, 0x00294627, 0x00000000, 0x00000000, 0x00404811, 0x00000208,
	0x00000001, 0x002f0222, 0x00000000, 0x00000000, 0x0ae00000, 0x0000023d,
	0x00000000, 0x28e00000, 0x00000208, 0x00800080, 0x00281e2e, 0x00000000,
	0x00000080, 0x002f0227, 0x00000000, 0x00000000, 0x0ce00000, 0x00000205,
	0x00000000, 0x00401c0c, 0x00000206, 0x00000020, 0x00201e2d, 0x00000000,
	0x000021f9, 0x00294627, 0x00000000, 0x00000001, 0x00204811, 0x00000000,
	0x81000000, 0x00204411, 0x00000000, 0x00000000, 0x002f0222, 0x00000000,
	0x00000000, 0x0ae00000, 0x0000020f, 0x00000003, 0x00204811, 0x00000000,
	0x00000016, 0x0020162d, 0x00000000, 0x00000017, 0x00201a2d, 0x00000000,
	0xffdfffff, 0x00483a2e, 0x00000213, 0x00000004, 0x00204811, 0x00000000,
	0x00000018, 0x0020162d, 0x00000000, 0x00000019, 0x00201a2d, 0x00000000,
	0xffefffff, 0x00283a2e, 0x00000000, 0x00000000, 0x00201c10, 0x00000000,
	0x00000000, 0x002f0067, 0x00000000, 0x00000000, 0x06c00000, 0x00000208,
	0x81000000, 0x00204411, 0x00000000, 0x00000006, 0x00204811, 0x00000000,
	0x83000000, 0x00204411, 0x00000000, 0x00000000, 0x00204805, 0x00000000,
	0x89000000, 0x00204411, 0x00000000, 0x00000000, 0x00204806, 0x00000000,
	0x84000000, 0x00204411, 0x00000000, 0x00000000, 0x00204803, 0x00000000,
	0x00000000, 0x21000000, 0x00000000, 0x00000000, 0x00601010, 0x0000024a,
	0x0000000c, 0x00221e24, 0x00000000, 0x00000000, 0x002f0222, 0x00000000,
	0x00000000, 0x0ae00000, 0x00000230, 0x20000000, 0x00293a2e, 0x00000000,
	0x000021f7, 0x0029462c, 0x00000000, 0x00000000, 0x002948c7, 0x00000000,
	0x81000000, 0x00204411, 0x00000000, 0x00000005, 0x00204811, 0x00000000,
	0x00000016, 0x00203630, 0x00000000, 0x00000007, 0x00204811, 0x00000000,
	0x00000017, 0x00203630, 0x00000000, 0x91000000, 0x00204411, 0x00000000,
	0x00000000, 0x00204803, 0x00000000, 0x00000000, 0x23000000, 0x00000000,
	0x8d000000, 0x00204411, 0x00000000, 0x00000000, 0x00404803, 0x00000243,
	0x00800000, 0x00293a2e, 0x00000000, 0x000021f6, 0x0029462c, 0x00000000,
	0x00000000, 0x002948c7, 0x00000000, 0x81000000, 0x00204411, 0x00000000,
	0x00000005, 0x00204811, 0x00000000, 0x00000018, 0x00203630, 0x00000000,
	0x00000007, 0x00204811, 0x00000000, 0x00000019, 0x00203630, 0x00000000,
	0x92000000, 0x00204411, 0x00000000, 0x00000000, 0x00204803, 0x00000000,
	0x00000000, 0x25000000, 0x00000000, 0x8e000000, 0x00204411, 0x00000000,
	0x00000000, 0x00404803, 0x00000243, 0x83000000, 0x00204411, 0x00000000,
	0x00000003, 0x00381224, 0x00000000, 0x00005000, 0x00304a24, 0x00000000,
	0x84000000, 0x00204411, 0x00000000, 0x00000000, 0x00204803, 0x00000000,
	0x00000000, 0x21000000, 0x00000000, 0x82000000, 0x00204411, 0x00000000,
	0x00000000, 0x00404811, 0x00000000, 0x000001f3, 0x00204411, 0x00000000,
	0x04000000, 0x00204811, 0x00000000, 0x00000000, 0x00400000, 0x00000247,
	0x00000000, 0xc0600000, 0x0000024a, 0x00000000, 0x00400000, 0x00000000,
	0x00000000, 0x0ee00000, 0x00000281, 0x000021f9, 0x0029462c, 0x00000000,
	0x00000005, 0x00204811, 0x00000000, 0x00000000, 0x00202c0c, 0x00000000,
	0x00000021, 0x0020262d, 0x00000000, 0x00000000, 0x002f012c, 0x00000000,
	0x00000000, 0x0cc00000, 0x00000252, 0x00000000, 0x00403011, 0x00000253,
	0x00000400, 0x0030322c, 0x00000000, 0x81000000, 0x00204411, 0x00000000,
	0x00000002, 0x00204811, 0x00000000, 0x0000000a, 0x0021262c, 0x00000000,
	0x00000000, 0x00210130, 0x00000000, 0x00000000, 0x14c00000, 0x0000025b,
	0xa5000000, 0x00204411, 0x00000000, 0x00000001, 0x00204811, 0x00000000,
	0x00000000, 0x00400000, 0x00000256, 0xa5000000, 0x00204411, 0x00000000,
	0x00000000, 0x00204811, 0x00000000, 0x00000000, 0x002f016c, 0x00000000,
	0x00000000, 0x0ce00000, 0x00000263, 0x000021f4, 0x0029462c, 0x00000000,
	0x0000000a, 0x00214a2b, 0x00000000, 0x00004940, 0x00204411, 0x00000000,
	0xdeadbeef, 0x00204811, 0x00000000, 0x00000000, 0x00600000, 0x0000026e,
	0xdfffffff, 0x00283a2e, 0x00000000, 0xff7fffff, 0x00283a2e, 0x00000000,
	0x00000020, 0x0080362b, 0x00000000, 0x97000000, 0x00204411, 0x00000000,
	0x00000000, 0x0020480c, 0x00000000, 0xa2000000, 0x00204411, 0x00000000,
	0x00000000, 0x00204811, 0x00000000, 0x81000000, 0x00204411, 0x00000000,
	0x00000002, 0x00204811, 0x00000000, 0x00000000, 0x00810130, 0x00000000,
	0xa2000000, 0x00204411, 0x00000000, 0x00000001, 0x00204811, 0x00000000,
	0x81000000, 0x00204411, 0x00000000, 0x00000002, 0x00204811, 0x00000000,
	0x00000000, 0x00810130, 0x00000000, 0x00000400, 0x00203011, 0x00000000,
	0x00000020, 0x0080362c, 0x00000000, 0x00000000, 0x00203011, 0x00000000,
	0x00000020, 0x0080362c, 0x00000000, 0x0000001f, 0x00201e2d, 0x00000000,
	0x00000004, 0x00291e27, 0x00000000, 0x0000001f, 0x00803627, 0x00000000,
	0x000021f9, 0x0029462c, 0x00000000, 0x00000006, 0x00204811, 0x00000000,
	0x000005c8, 0x00204411, 0x00000000, 0x00010000, 0x00204811, 0x00000000,
	0x00000e00, 0x00204411, 0x00000000, 0x00000001, 0x00804811, 0x00000000,
	0x00000000, 0xc0400000, 0x00000000, 0x00000000, 0x00800000, 0x00000000,
	0x00000000, 0x1ac00000, 0x00000282, 0x9f000000, 0x00204411, 0x00000000,
	0xdeadbeef, 0x00204811, 0x00000000, 0x00000000, 0x1ae00000, 0x00000285,
	0x00000000, 0x00800000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
	0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
	0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
	0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
	0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
	0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
	0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
	0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
	0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
	0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
	0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
	0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
	0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
	0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
	0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
	0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
	0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
	0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
	0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
	0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
	0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
	0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
	0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
	0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
	0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
	0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
	0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
	0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
	0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
	0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
	0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
	0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
	0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
	0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
	0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
	0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
	0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
	0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
	0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
	0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
	0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
	0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
	0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
	0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
	0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
	0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
	0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000,
	0x0002015e, 0x00020002, 0x00000000, 0x00020002, 0x003d0031, 0x00000000,
	0x00020002, 0x00020002, 0x00000000, 0x00020002, 0x01e00002, 0x00000000,
	0x007d01f1, 0x00200012, 0x00000000, 0x00020002, 0x0002001e, 0x00000000,
	0x00020002, 0x01ef0002, 0x00000000, 0x00960002, 0x00de0002, 0x00000000,
	0x00020002, 0x00020002, 0x00000000, 0x00020002, 0x00020016, 0x00000000,
	0x00020002, 0x00020026, 0x00000000, 0x014a00ea, 0x00020155, 0x00000000,
	0x0002015c, 0x015e0002, 0x00000000, 0x00ea0002, 0x015e0040, 0x00000000,
	0x00bf0162, 0x00020002, 0x00000000, 0x01520002, 0x014d0002, 0x00000000,
	0x00020002, 0x013d0130, 0x00000000, 0x00090160, 0x000e000e, 0x00000000,
	0x006c0051, 0x00790074, 0x00000000, 0x000200e5, 0x00020248, 0x00000000,
	0x00020002, 0x00020002, 0x00000000, 0x00020002, 0x00020002, 0x00000000,
	0x00020002, 0x00020002, 0x00000000, 0x00020002, 0x00020002, 0x00000000,
	0x00020002, 0x00020002, 0x00000000, 0x00020002, 0x00020002, 0x00000000,
	0x00020002, 0x00020002, 0x00000000, 0x00050280, 0x00020008, 0x00000000,
}
