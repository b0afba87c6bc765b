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

package kernel

import "github.com/ajroetker/hwyvec/hwy"

// sum is the additive fold shared by the summing aggregates.
type sum[T hwy.Lanes] struct{}

// Identity is the additive identity. Folding Sum over all-zero lanes
// therefore yields zero.
func (sum[T]) Identity() T { return 0 }
func (sum[T]) Reduce(acc, x T) T { return hwy.AddLane(acc, x) }
func (sum[T]) ReduceVector(acc T, v hwy.Vec[T]) T { return hwy.ReduceSumFrom(acc, v) }

// Sum adds all lanes of one vector.
type Sum[T hwy.Lanes] struct {
	allWidths
	sum[T]
}

func (Sum[T]) Name() string { return "sum" }
func (Sum[T]) Scalar(a T) T { return a }
func (Sum[T]) Vector(a hwy.Vec[T]) hwy.Vec[T] { return a }

// SumOf adds the lane results of a binary operation, e.g. SumOf[T,
// Multiply[T]] is the dot product.
type SumOf[T hwy.Lanes, O BinaryOp[T]] struct {
	Op O
	sum[T]
}

func (s SumOf[T, O]) Name() string { return "sum(" + s.Op.Name() + ")" }
func (s SumOf[T, O]) Widths() hwy.WidthSet { return s.Op.Widths() }
func (s SumOf[T, O]) Scalar(a, b T) T { return s.Op.Scalar(a, b) }
func (s SumOf[T, O]) Vector(a, b hwy.Vec[T]) hwy.Vec[T] { return s.Op.Vector(a, b) }

// SumOfUnary adds the lane results of a unary operation.
type SumOfUnary[T hwy.Lanes, O UnaryOp[T]] struct {
	Op O
	sum[T]
}

func (s SumOfUnary[T, O]) Name() string { return "sum(" + s.Op.Name() + ")" }
func (s SumOfUnary[T, O]) Widths() hwy.WidthSet { return s.Op.Widths() }
func (s SumOfUnary[T, O]) Scalar(a T) T { return s.Op.Scalar(a) }
func (s SumOfUnary[T, O]) Vector(a hwy.Vec[T]) hwy.Vec[T] { return s.Op.Vector(a) }

// Dot is the dot product: the sum of a[i]*b[i].
type Dot[T hwy.Lanes] = SumOf[T, Multiply[T]]

// SumDistanceSquared is the squared Euclidean distance: the sum of (a[i]-b[i])².
type SumDistanceSquared[T hwy.Lanes] = SumOf[T, DistanceSquared[T]]

// LengthSquared is the squared Euclidean length: the sum of a[i]².
type LengthSquared[T hwy.Lanes] = SumOfUnary[T, Square[T]]

// AllEqual reports whether every lane of a equals the matching lane of b,
// as one (equal) or zero (unequal). Any unequal lane, including a NaN lane,
// makes the result zero.
type AllEqual[T hwy.Lanes] struct {
	Equality[T]
}

func (AllEqual[T]) Name() string { return "all_equal" }
func (AllEqual[T]) Identity() T { return 1 }
func (AllEqual[T]) Reduce(acc, x T) T {
	return hwy.BoolLane[T](acc != 0 && x != 0)
}
func (AllEqual[T]) ReduceVector(acc T, v hwy.Vec[T]) T {
	nonzero := hwy.NotEqual(v, hwy.ZeroN[T](v.NumLanes()))
	return hwy.BoolLane[T](acc != 0 && nonzero.AllTrue())
}
