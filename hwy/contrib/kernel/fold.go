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

import (
	"github.com/ajroetker/hwyvec/hwy"
	"github.com/ajroetker/hwyvec/hwy/contrib/shape"
)

// Folds never use the overlapping tail window: a lane counted twice would
// change the result. Full windows are folded in lane order and the remaining
// lanes go through the scalar form.

func unaryFold[T hwy.Lanes](p plan, op UnaryAggregate[T], a []T) T {
	acc := op.Identity()
	start := 0
	if p.accelerated() {
		lanes := p.lanes
		rem := hwy.ProcessFull(len(a), lanes, func(off int) {
			acc = op.ReduceVector(acc, op.Vector(hwy.LoadN(a[off:], lanes)))
		})
		start = len(a) - rem
	}
	for i := start; i < len(a); i++ {
		acc = op.Reduce(acc, op.Scalar(a[i]))
	}
	return acc
}

func binaryFold[T hwy.Lanes](p plan, op BinaryAggregate[T], a, b []T) T {
	acc := op.Identity()
	start := 0
	if p.accelerated() {
		lanes := p.lanes
		rem := hwy.ProcessFull(len(a), lanes, func(off int) {
			acc = op.ReduceVector(acc, op.Vector(hwy.LoadN(a[off:], lanes), hwy.LoadN(b[off:], lanes)))
		})
		start = len(a) - rem
	}
	for i := start; i < len(a); i++ {
		acc = op.Reduce(acc, op.Scalar(a[i], b[i]))
	}
	return acc
}

// FoldUnary applies op to every lane of a and folds the lane results, in
// ascending lane order, starting from op.Identity(). It panics with
// ErrUnsupported when op lacks the register width selected for V.
func FoldUnary[V shape.Fixed[T], T hwy.Lanes](op UnaryAggregate[T], a V) T {
	p := mustPlan[T](shape.ElementCount[V, T](), op)
	return unaryFold(p, op, shape.AsSequence[V, T](&a))
}

// FoldBinary applies op lane-wise to a and b and folds the lane results, in
// ascending lane order, starting from op.Identity(). It panics with
// ErrUnsupported when op lacks the register width selected for V.
func FoldBinary[V shape.Fixed[T], T hwy.Lanes](op BinaryAggregate[T], a, b V) T {
	p := mustPlan[T](shape.ElementCount[V, T](), op)
	return binaryFold(p, op, shape.AsSequence[V, T](&a), shape.AsSequence[V, T](&b))
}
