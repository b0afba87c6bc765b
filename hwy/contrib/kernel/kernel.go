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

// Package kernel executes elementwise and fold operations over fixed
// vectors of 2 to 5 lanes using the widest register width available.
//
// An operation is described by a stateless descriptor such as Add[T] or
// Dot[T]. Each descriptor has a scalar form, the reference semantics for one
// lane, and a register form applied to whole hwy.Vec registers. The kernel
// picks the widest width in hwy.Widths() whose register fits into the vector,
// processes full windows from lane 0, and covers any remainder with one
// window anchored at the last lane. When no width fits, or the dispatch level
// is scalar, the scalar form runs over every lane.
//
// Usage:
//
//	a := [3]float32{1, 2, 3}
//	b := [3]float32{4, 5, 6}
//	sum := kernel.ApplyBinary[[3]float32, float32](kernel.Add[float32]{}, a, b)    // [5 7 9]
//	dot := kernel.FoldBinary[[3]float32, float32](kernel.Dot[float32]{}, a, b)     // 32
package kernel

import (
	"errors"

	"github.com/ajroetker/hwyvec/hwy"
)

var (
	// ErrUnsupported reports a descriptor lacking the register width that
	// the current dispatch level selects for a vector shape and scalar type.
	ErrUnsupported = errors.New("kernel: operation not supported for this configuration")

	// ErrLengthMismatch reports batch slices of different lengths.
	ErrLengthMismatch = errors.New("kernel: batch length mismatch")
)

// Descriptor is implemented by every operator descriptor.
type Descriptor interface {
	// Name identifies the operation in errors and reports.
	Name() string

	// Widths lists the register widths the descriptor's register form
	// implements.
	Widths() hwy.WidthSet
}

// UnaryOp describes a one-operand elementwise operation.
type UnaryOp[T hwy.Lanes] interface {
	Descriptor
	Scalar(a T) T
	Vector(a hwy.Vec[T]) hwy.Vec[T]
}

// BinaryOp describes a two-operand elementwise operation.
type BinaryOp[T hwy.Lanes] interface {
	Descriptor
	Scalar(a, b T) T
	Vector(a, b hwy.Vec[T]) hwy.Vec[T]
}

// TernaryOp describes a three-operand elementwise operation.
type TernaryOp[T hwy.Lanes] interface {
	Descriptor
	Scalar(a, b, c T) T
	Vector(a, b, c hwy.Vec[T]) hwy.Vec[T]
}

// Aggregate folds lane results into one scalar.
//
// Reduce(Identity(), x) must equal x. ReduceVector(acc, v) must equal
// folding the lanes of v into acc with Reduce in ascending lane order.
type Aggregate[T hwy.Lanes] interface {
	Identity() T
	Reduce(acc, x T) T
	ReduceVector(acc T, v hwy.Vec[T]) T
}

// UnaryAggregate is a unary operation whose lane results are folded.
type UnaryAggregate[T hwy.Lanes] interface {
	UnaryOp[T]
	Aggregate[T]
}

// BinaryAggregate is a binary operation whose lane results are folded.
type BinaryAggregate[T hwy.Lanes] interface {
	BinaryOp[T]
	Aggregate[T]
}
