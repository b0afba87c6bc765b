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

package vector

import (
	"errors"
	"fmt"
	"math"

	"github.com/ajroetker/hwyvec/hwy"
)

// ErrOverflow is returned by ConvertChecked when a value does not fit the
// target type.
var ErrOverflow = errors.New("vector: value out of range")

// inRange reports whether x converts to To without leaving its range. Floats
// are truncated toward zero before an integer range check. Narrowing a finite
// float64 to float32 is in range if its magnitude does not exceed
// math.MaxFloat32; infinities stay infinities.
func inRange[To, From hwy.Lanes](x From) bool {
	switch {
	case hwy.IsFloat[To]():
		if bitSize[To]() == 64 || !hwy.IsFloat[From]() {
			return true
		}
		f := float64(x)
		return math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) <= math.MaxFloat32
	case hwy.IsFloat[From]():
		f := math.Trunc(float64(x))
		if math.IsNaN(f) {
			return false
		}
		lo, hi := intBounds[To]()
		return f >= lo && f < hi
	default:
		y := To(x)
		return From(y) == x && (x < 0) == (y < 0)
	}
}

// intBounds returns the range of integer type T as [lo, hi).
func intBounds[T hwy.Lanes]() (lo, hi float64) {
	bits := bitSize[T]()
	if isSigned[T]() {
		return -math.Ldexp(1, bits-1), math.Ldexp(1, bits-1)
	}
	return 0, math.Ldexp(1, bits)
}

func maxOf[T hwy.Lanes]() T {
	bits := bitSize[T]()
	switch {
	case hwy.IsFloat[T]() && bits == 32:
		m := math.MaxFloat32
		return T(m)
	case hwy.IsFloat[T]():
		m := math.MaxFloat64
		return T(m)
	case isSigned[T]():
		m := uint64(1)<<(bits-1) - 1
		return T(m)
	default:
		m := ^uint64(0) >> (64 - bits)
		return T(m)
	}
}

func minOf[T hwy.Lanes]() T {
	switch {
	case hwy.IsFloat[T]():
		return -maxOf[T]()
	case isSigned[T]():
		m := int64(-1) << (bitSize[T]() - 1)
		return T(m)
	default:
		return 0
	}
}

// ConvertChecked converts x to To. It returns ErrOverflow when x is outside
// the range of To, including a NaN converted to an integer. Float to integer
// conversion truncates toward zero; float64 to float32 rounds to nearest.
func ConvertChecked[To, From hwy.Lanes](x From) (To, error) {
	if inRange[To](x) {
		return To(x), nil
	}
	var zero To
	return zero, fmt.Errorf("%w: %v does not fit %T", ErrOverflow, x, zero)
}

// ConvertSaturating converts x to To, clamping values outside the range of
// To to its minimum or maximum. A NaN converted to an integer is zero.
func ConvertSaturating[To, From hwy.Lanes](x From) To {
	if inRange[To](x) {
		return To(x)
	}
	if hwy.IsFloat[From]() && math.IsNaN(float64(x)) {
		return 0
	}
	if x < 0 {
		return minOf[To]()
	}
	return maxOf[To]()
}

// ConvertTruncating converts x with Go conversion rules: integers keep their
// low-order bits and floats are rounded toward zero. Converting a float
// outside the range of an integer To gives an unspecified value.
func ConvertTruncating[To, From hwy.Lanes](x From) To {
	return To(x)
}

// convertLanes converts src into dst lane by lane, stopping at the first
// error.
func convertLanes[To, From hwy.Lanes](dst []To, src []From, conv func(From) (To, error)) error {
	for i, x := range src {
		y, err := conv(x)
		if err != nil {
			return fmt.Errorf("lane %d: %w", i, err)
		}
		dst[i] = y
	}
	return nil
}
