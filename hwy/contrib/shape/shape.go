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

// Package shape defines how a fixed-length vector of 2 to 5 lanes is viewed
// as a flat sequence of scalars.
//
// A fixed vector is a Go array [N]T. Arrays have no padding, so a vector of N
// lanes occupies exactly N scalars and its lanes can be read and written
// through an ordinary slice view.
//
// Shape parameters cannot be inferred from the array type alone, so callers
// instantiate explicitly:
//
//	v := [3]float32{1, 2, 3}
//	lanes := shape.AsSequence[[3]float32, float32](&v)
package shape

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/ajroetker/hwyvec/hwy"
)

// Fixed is the set of fixed vector shapes.
type Fixed[T hwy.Lanes] interface {
	[2]T | [3]T | [4]T | [5]T
}

var (
	// ErrShape reports a vector type whose size is not an exact multiple of
	// its scalar size. It is a configuration error.
	ErrShape = errors.New("shape: vector size is not a multiple of its scalar size")

	// ErrShortSlice is returned by FromSlice when the slice has fewer
	// elements than the vector has lanes.
	ErrShortSlice = errors.New("shape: slice shorter than vector")

	// ErrLaneOutOfRange is returned when a lane index is outside [0, N).
	ErrLaneOutOfRange = errors.New("shape: lane index out of range")
)

// ElementCount returns the number of lanes of V, derived from the ratio of
// the vector size to the scalar size. It panics with ErrShape when the ratio
// is not exact.
func ElementCount[V Fixed[T], T hwy.Lanes]() int {
	var v V
	var s T
	vs, ss := unsafe.Sizeof(v), unsafe.Sizeof(s)
	if ss == 0 || vs%ss != 0 {
		panic(fmt.Errorf("%w: %T is %d bytes, %T is %d bytes", ErrShape, v, vs, s, ss))
	}
	return int(vs / ss)
}

// AsSequence returns a slice aliasing the lanes of *v. No data is copied.
// Kernels treat the view as read-only for inputs.
func AsSequence[V Fixed[T], T hwy.Lanes](v *V) []T {
	switch p := any(v).(type) {
	case *[2]T:
		return p[:]
	case *[3]T:
		return p[:]
	case *[4]T:
		return p[:]
	case *[5]T:
		return p[:]
	}
	// Unreachable: Fixed admits exactly the four cases above.
	panic(fmt.Errorf("%w: %T", ErrShape, v))
}

// Broadcast returns a vector with every lane set to s.
func Broadcast[V Fixed[T], T hwy.Lanes](s T) V {
	var v V
	for i := range len(v) {
		v[i] = s
	}
	return v
}

// FromSlice returns a vector holding the first N elements of s. Extra
// elements are ignored.
func FromSlice[V Fixed[T], T hwy.Lanes](s []T) (V, error) {
	var v V
	if len(s) < len(v) {
		return v, fmt.Errorf("%w: got %d elements, need %d", ErrShortSlice, len(s), len(v))
	}
	copy(AsSequence[V, T](&v), s)
	return v, nil
}

// Lane returns lane i of v.
func Lane[V Fixed[T], T hwy.Lanes](v V, i int) (T, error) {
	if i < 0 || i >= len(v) {
		var zero T
		return zero, fmt.Errorf("%w: %d not in [0, %d)", ErrLaneOutOfRange, i, len(v))
	}
	return v[i], nil
}

// Len is ElementCount under its short name.
func Len[V Fixed[T], T hwy.Lanes]() int {
	return ElementCount[V, T]()
}
