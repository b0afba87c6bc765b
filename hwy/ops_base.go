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

import "math"

// This file provides the portable register operations. Every operation works
// lane by lane through a per-lane helper that is also exported for the
// scalar path (the *Lane functions), which keeps register results and scalar
// results bit-identical.

func checkLanes(lanes int) {
	if lanes < 0 || lanes > MaxVecLanes {
		panic("hwy: register lane count out of range")
	}
}

// LoadN creates a register of the given lane count from the head of src.
// Lanes past the end of src are zero. It panics when lanes exceeds
// MaxVecLanes.
func LoadN[T Lanes](src []T, lanes int) Vec[T] {
	checkLanes(lanes)
	v := Vec[T]{n: lanes}
	copy(v.data[:lanes], src[:min(len(src), lanes)])
	return v
}

// Store writes the lanes of v to the front of dst.
func Store[T Lanes](v Vec[T], dst []T) {
	n := min(len(dst), v.n)
	copy(dst[:n], v.data[:n])
}

// SetN creates a register of the given lane count with all lanes set to value.
func SetN[T Lanes](value T, lanes int) Vec[T] {
	checkLanes(lanes)
	v := Vec[T]{n: lanes}
	for i := range lanes {
		v.data[i] = value
	}
	return v
}

// ZeroN creates a register of the given lane count with all lanes zero.
func ZeroN[T Lanes](lanes int) Vec[T] {
	checkLanes(lanes)
	return Vec[T]{n: lanes}
}

func binary[T Lanes](a, b Vec[T], f func(a, b T) T) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		r.data[i] = f(a.data[i], b.data[i])
	}
	return r
}

func unary[T Lanes](v Vec[T], f func(a T) T) Vec[T] {
	r := Vec[T]{n: v.n}
	for i := range r.n {
		r.data[i] = f(v.data[i])
	}
	return r
}

// Add performs element-wise addition.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	return binary(a, b, AddLane[T])
}

// AddLane is the per-lane form of Add.
func AddLane[T Lanes](a, b T) T {
	return a + b
}

// Sub performs element-wise subtraction.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	return binary(a, b, SubLane[T])
}

// SubLane is the per-lane form of Sub.
func SubLane[T Lanes](a, b T) T {
	return a - b
}

// Mul performs element-wise multiplication.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	return binary(a, b, MulLane[T])
}

// MulLane is the per-lane form of Mul. The product is rounded to T before it
// is returned so callers adding it to something cannot get a fused
// multiply-add on one path and a rounded product on the other.
func MulLane[T Lanes](a, b T) T {
	return T(a * b)
}

// Div performs element-wise division. Integer division by zero panics as it
// does for the scalar type.
func Div[T Lanes](a, b Vec[T]) Vec[T] {
	return binary(a, b, DivLane[T])
}

// DivLane is the per-lane form of Div.
func DivLane[T Lanes](a, b T) T {
	return a / b
}

// Rem performs element-wise remainder. Integers use truncated division like
// Go's % operator; floats use math.Mod.
func Rem[T Lanes](a, b Vec[T]) Vec[T] {
	return binary(a, b, RemLane[T])
}

// RemLane is the per-lane form of Rem.
func RemLane[T Lanes](a, b T) T {
	if IsFloat[T]() {
		return T(math.Mod(float64(a), float64(b)))
	}
	return a - (a/b)*b
}

// IsFloat reports whether T is a floating-point lane type.
func IsFloat[T Lanes]() bool {
	var one T = 1
	return one/2 != 0
}

// Neg negates each element.
func Neg[T Signed](v Vec[T]) Vec[T] {
	return unary(v, NegLane[T])
}

// NegLane is the per-lane form of Neg.
func NegLane[T Signed](a T) T {
	return -a
}

// Abs computes the absolute value of each element. Negative zero becomes
// positive zero; unsigned values are returned unchanged.
func Abs[T Lanes](v Vec[T]) Vec[T] {
	return unary(v, AbsLane[T])
}

// AbsLane is the per-lane form of Abs.
func AbsLane[T Lanes](a T) T {
	if a <= 0 {
		return 0 - a
	}
	return a
}

// Min returns the element-wise minimum.
// When either lane is NaN the lane of b is returned.
func Min[T Lanes](a, b Vec[T]) Vec[T] {
	return IfThenElse(LessThan(a, b), a, b)
}

// MinLane is the per-lane form of Min.
func MinLane[T Lanes](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the element-wise maximum.
// When either lane is NaN the lane of b is returned.
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	return IfThenElse(GreaterThan(a, b), a, b)
}

// MaxLane is the per-lane form of Max.
func MaxLane[T Lanes](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// MulAdd computes a*b + c for each element. The product is rounded before
// the addition (no fusion), matching MulLane followed by AddLane.
func MulAdd[T Lanes](a, b, c Vec[T]) Vec[T] {
	return Add(Mul(a, b), c)
}

// MulAddLane is the per-lane form of MulAdd.
func MulAddLane[T Lanes](a, b, c T) T {
	return MulLane(a, b) + c
}

// ReduceSumFrom adds the lanes of v to acc in ascending lane order:
// ((acc + v0) + v1) + ... This is the horizontal reduce used by folds that
// must match a scalar left fold bit for bit.
func ReduceSumFrom[T Lanes](acc T, v Vec[T]) T {
	for i := range v.n {
		acc += v.data[i]
	}
	return acc
}

func compare[T Lanes](a, b Vec[T], f func(a, b T) bool) Mask[T] {
	m := Mask[T]{n: min(a.n, b.n)}
	for i := range m.n {
		m.bits[i] = f(a.data[i], b.data[i])
	}
	return m
}

// Equal performs element-wise equality comparison.
func Equal[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(a, b T) bool { return a == b })
}

// NotEqual performs element-wise inequality comparison. NaN lanes are
// unequal to everything.
func NotEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(a, b T) bool { return a != b })
}

// LessThan performs element-wise less-than comparison.
func LessThan[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(a, b T) bool { return a < b })
}

// GreaterThan performs element-wise greater-than comparison.
func GreaterThan[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(a, b T) bool { return a > b })
}

// IfThenElse selects elements based on a mask.
// result[i] = mask[i] ? a[i] : b[i]
func IfThenElse[T Lanes](mask Mask[T], a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(mask.n, a.n, b.n)}
	for i := range r.n {
		if mask.bits[i] {
			r.data[i] = a.data[i]
		} else {
			r.data[i] = b.data[i]
		}
	}
	return r
}

// BoolLane converts a comparison outcome to a lane value: one or zero.
func BoolLane[T Lanes](b bool) T {
	if b {
		return 1
	}
	return 0
}

// And performs element-wise bitwise AND.
func And[T Integers](a, b Vec[T]) Vec[T] {
	return binary(a, b, func(a, b T) T { return a & b })
}

// Or performs element-wise bitwise OR.
func Or[T Integers](a, b Vec[T]) Vec[T] {
	return binary(a, b, func(a, b T) T { return a | b })
}

// Xor performs element-wise bitwise XOR.
func Xor[T Integers](a, b Vec[T]) Vec[T] {
	return binary(a, b, func(a, b T) T { return a ^ b })
}

// Not performs element-wise bitwise NOT.
func Not[T Integers](v Vec[T]) Vec[T] {
	return unary(v, func(a T) T { return ^a })
}
