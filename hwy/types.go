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

// Package hwy provides portable SIMD registers with runtime width dispatch.
//
// A register is a Vec holding exactly as many lanes as fit into one hardware
// register of a given Width. Register operations are written lane by lane in
// portable Go and share their per-lane helpers with the scalar path, so a
// result computed through a register is bit-identical to the same result
// computed one lane at a time.
//
// Registers are values: loading, combining and storing them does not
// allocate.
//
// Basic usage:
//
//	import "github.com/ajroetker/hwyvec/hwy"
//
//	lanes := hwy.LanesOf[float32](hwy.Width128)
//	a := hwy.LoadN(data1, lanes)
//	b := hwy.LoadN(data2, lanes)
//	hwy.Store(hwy.Add(a, b), out)
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Signed is a constraint for types with an additive inverse for every value
// sign: signed integers and floats.
type Signed interface {
	SignedInts | Floats
}

// Lanes is a constraint for all types that can be stored in SIMD lanes.
type Lanes interface {
	Floats | Integers
}

// MaxVecLanes is the largest lane count a Vec can hold. Registers chosen for
// vectors of at most five lanes hold two or four.
const MaxVecLanes = 8

// Vec is a portable register handle. It holds the lanes of one register of
// a fixed width.
//
// Vec instances should not be created directly; use LoadN, SetN or ZeroN.
type Vec[T Lanes] struct {
	data [MaxVecLanes]T
	n    int
}

// NumLanes returns the lane count, LanesOf[T] of the register width.
func (v Vec[T]) NumLanes() int {
	return v.n
}

// Lane returns lane i of v. It panics when i is outside [0, NumLanes()).
func (v Vec[T]) Lane(i int) T {
	if i < 0 || i >= v.n {
		panic("hwy: lane index out of range")
	}
	return v.data[i]
}

// Mask is the lane-wise result of a comparison, consumed by IfThenElse.
type Mask[T Lanes] struct {
	bits [MaxVecLanes]bool
	n    int
}

// AllTrue returns true if all lanes in the mask are active.
func (m Mask[T]) AllTrue() bool {
	for _, bit := range m.bits[:m.n] {
		if !bit {
			return false
		}
	}
	return true
}
