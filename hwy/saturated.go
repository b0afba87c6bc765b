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

import "unsafe"

// This file provides saturated arithmetic and related operations.
// Saturated operations clamp results to the type's valid range instead of wrapping.

// SaturatedAdd performs element-wise addition with saturation.
// Results are clamped to the type's valid range instead of wrapping.
// For example, uint8: 250 + 10 = 255 (not 4)
func SaturatedAdd[T Integers](a, b Vec[T]) Vec[T] {
	return binary(a, b, SaturatedAddLane[T])
}

// SaturatedSub performs element-wise subtraction with saturation.
// Results are clamped to the type's valid range instead of wrapping.
// For example, uint8: 10 - 20 = 0 (not 246)
func SaturatedSub[T Integers](a, b Vec[T]) Vec[T] {
	return binary(a, b, SaturatedSubLane[T])
}

// Clamp clamps each element to the range [lo, hi].
// Elements less than lo become lo, elements greater than hi become hi.
func Clamp[T Lanes](v, lo, hi Vec[T]) Vec[T] {
	r := Vec[T]{n: min(v.n, lo.n, hi.n)}
	for i := range r.n {
		r.data[i] = ClampLane(v.data[i], lo.data[i], hi.data[i])
	}
	return r
}

// ClampLane is the per-lane form of Clamp.
func ClampLane[T Lanes](v, lo, hi T) T {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return v
}

// AbsDiff computes the absolute difference |a - b| for each element.
// For unsigned types, this is max(a,b) - min(a,b).
// For signed integers the difference wraps like the scalar type does.
func AbsDiff[T Lanes](a, b Vec[T]) Vec[T] {
	return binary(a, b, AbsDiffLane[T])
}

// AbsDiffLane is the per-lane form of AbsDiff.
func AbsDiffLane[T Lanes](a, b T) T {
	if a > b {
		return a - b
	}
	return b - a
}

// IsSigned reports whether the integer type T is signed.
func IsSigned[T Integers]() bool {
	var zero T
	return ^zero < 0
}

// MinValue returns the smallest value of the integer type T.
func MinValue[T Integers]() T {
	if !IsSigned[T]() {
		return 0
	}
	var m T = 1
	return m << (8*unsafe.Sizeof(m) - 1)
}

// MaxValue returns the largest value of the integer type T.
func MaxValue[T Integers]() T {
	return ^MinValue[T]()
}

// SaturatedAddLane is the per-lane form of SaturatedAdd.
func SaturatedAddLane[T Integers](a, b T) T {
	sum := a + b
	if !IsSigned[T]() {
		if sum < a {
			return MaxValue[T]()
		}
		return sum
	}
	// Overflow iff both operands share a sign the sum does not have.
	if (a^sum)&(b^sum) < 0 {
		if a < 0 {
			return MinValue[T]()
		}
		return MaxValue[T]()
	}
	return sum
}

// SaturatedSubLane is the per-lane form of SaturatedSub.
func SaturatedSubLane[T Integers](a, b T) T {
	if !IsSigned[T]() {
		if b > a {
			return 0
		}
		return a - b
	}
	diff := a - b
	// Overflow iff the operands differ in sign and the result's sign differs from a.
	if (a^b)&(a^diff) < 0 {
		if a < 0 {
			return MinValue[T]()
		}
		return MaxValue[T]()
	}
	return diff
}
