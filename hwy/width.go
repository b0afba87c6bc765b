// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hwy

import (
	"strconv"
	"strings"
	"unsafe"
)

// Width is a register width in bits.
type Width int

const (
	// Width128 is a 128-bit register (SSE2, NEON).
	Width128 Width = 128

	// Width256 is a 256-bit register (AVX2).
	Width256 Width = 256

	// Width512 is a 512-bit register (AVX-512).
	Width512 Width = 512
)

// Bytes returns the width in bytes.
func (w Width) Bytes() int {
	return int(w) / 8
}

// String returns the width as "128bit", "256bit" or "512bit".
func (w Width) String() string {
	return strconv.Itoa(int(w)) + "bit"
}

// LanesOf returns how many lanes of type T fit into a register of width w.
//
// For example:
//   - float32 in Width128: 4 lanes
//   - float64 in Width256: 4 lanes
//   - int8 in Width128: 16 lanes
func LanesOf[T Lanes](w Width) int {
	var dummy T
	elementSize := int(unsafe.Sizeof(dummy))
	if elementSize == 0 {
		return 0
	}
	return w.Bytes() / elementSize
}

// WidthSet is a set of register widths.
type WidthSet uint8

const (
	// AllWidths contains Width128, Width256 and Width512.
	AllWidths = WidthSet(1<<0 | 1<<1 | 1<<2)
)

// WidthsOf builds a set from individual widths. Unknown widths are ignored.
func WidthsOf(widths ...Width) WidthSet {
	var s WidthSet
	for _, w := range widths {
		s |= widthBit(w)
	}
	return s
}

func widthBit(w Width) WidthSet {
	switch w {
	case Width128:
		return 1 << 0
	case Width256:
		return 1 << 1
	case Width512:
		return 1 << 2
	default:
		return 0
	}
}

// Has reports whether w is in the set.
func (s WidthSet) Has(w Width) bool {
	bit := widthBit(w)
	return bit != 0 && s&bit != 0
}

// String lists the widths of the set, e.g. "128bit|256bit".
func (s WidthSet) String() string {
	var names []string
	for _, w := range []Width{Width128, Width256, Width512} {
		if s.Has(w) {
			names = append(names, w.String())
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}
