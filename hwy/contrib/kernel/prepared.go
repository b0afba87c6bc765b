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

// The prepared kernels below resolve the register width once, when they are
// built, and report ErrUnsupported as an error instead of a panic. The width
// is fixed at construction: a later hwy.SetLevel does not affect a kernel
// that already exists.

// Check reports whether d can run on vectors of shape V with scalar type T at
// the current dispatch level.
func Check[V shape.Fixed[T], T hwy.Lanes](d Descriptor) error {
	_, err := planFor[T](shape.ElementCount[V, T](), d)
	return err
}

// Unary is a unary kernel bound to one vector shape.
type Unary[V shape.Fixed[T], T hwy.Lanes] struct {
	op UnaryOp[T]
	p  plan
}

// NewUnary prepares op for vectors of shape V.
func NewUnary[V shape.Fixed[T], T hwy.Lanes](op UnaryOp[T]) (Unary[V, T], error) {
	p, err := planFor[T](shape.ElementCount[V, T](), op)
	if err != nil {
		return Unary[V, T]{}, err
	}
	return Unary[V, T]{op: op, p: p}, nil
}

// Apply returns op applied to every lane of a.
func (k Unary[V, T]) Apply(a V) V {
	var out V
	unaryInto(k.p, k.op, shape.AsSequence[V, T](&out), shape.AsSequence[V, T](&a))
	return out
}

// ApplyTo writes op applied to every lane of *a into *dst. dst may alias a.
func (k Unary[V, T]) ApplyTo(dst, a *V) {
	unaryInto(k.p, k.op, shape.AsSequence[V, T](dst), shape.AsSequence[V, T](a))
}

// Width returns the register width used, or false for the scalar loop.
func (k Unary[V, T]) Width() (hwy.Width, bool) { return k.p.width, k.p.accelerated() }

// Binary is a binary kernel bound to one vector shape.
type Binary[V shape.Fixed[T], T hwy.Lanes] struct {
	op BinaryOp[T]
	p  plan
}

// NewBinary prepares op for vectors of shape V.
func NewBinary[V shape.Fixed[T], T hwy.Lanes](op BinaryOp[T]) (Binary[V, T], error) {
	p, err := planFor[T](shape.ElementCount[V, T](), op)
	if err != nil {
		return Binary[V, T]{}, err
	}
	return Binary[V, T]{op: op, p: p}, nil
}

// Apply returns op applied lane-wise to a and b.
func (k Binary[V, T]) Apply(a, b V) V {
	var out V
	binaryInto(k.p, k.op, shape.AsSequence[V, T](&out), shape.AsSequence[V, T](&a), shape.AsSequence[V, T](&b))
	return out
}

// ApplyTo writes op applied lane-wise to *a and *b into *dst. dst may alias
// either operand.
func (k Binary[V, T]) ApplyTo(dst, a, b *V) {
	binaryInto(k.p, k.op, shape.AsSequence[V, T](dst), shape.AsSequence[V, T](a), shape.AsSequence[V, T](b))
}

// Width returns the register width used, or false for the scalar loop.
func (k Binary[V, T]) Width() (hwy.Width, bool) { return k.p.width, k.p.accelerated() }

// Ternary is a ternary kernel bound to one vector shape.
type Ternary[V shape.Fixed[T], T hwy.Lanes] struct {
	op TernaryOp[T]
	p  plan
}

// NewTernary prepares op for vectors of shape V.
func NewTernary[V shape.Fixed[T], T hwy.Lanes](op TernaryOp[T]) (Ternary[V, T], error) {
	p, err := planFor[T](shape.ElementCount[V, T](), op)
	if err != nil {
		return Ternary[V, T]{}, err
	}
	return Ternary[V, T]{op: op, p: p}, nil
}

// Apply returns op applied lane-wise to a, b and c.
func (k Ternary[V, T]) Apply(a, b, c V) V {
	var out V
	ternaryInto(k.p, k.op, shape.AsSequence[V, T](&out),
		shape.AsSequence[V, T](&a), shape.AsSequence[V, T](&b), shape.AsSequence[V, T](&c))
	return out
}

// Width returns the register width used, or false for the scalar loop.
func (k Ternary[V, T]) Width() (hwy.Width, bool) { return k.p.width, k.p.accelerated() }

// UnaryFold is a unary fold bound to one vector shape.
type UnaryFold[V shape.Fixed[T], T hwy.Lanes] struct {
	op UnaryAggregate[T]
	p  plan
}

// NewUnaryFold prepares op for vectors of shape V.
func NewUnaryFold[V shape.Fixed[T], T hwy.Lanes](op UnaryAggregate[T]) (UnaryFold[V, T], error) {
	p, err := planFor[T](shape.ElementCount[V, T](), op)
	if err != nil {
		return UnaryFold[V, T]{}, err
	}
	return UnaryFold[V, T]{op: op, p: p}, nil
}

// Fold returns the folded lane results of op over a.
func (k UnaryFold[V, T]) Fold(a V) T {
	return unaryFold(k.p, k.op, shape.AsSequence[V, T](&a))
}

// Width returns the register width used, or false for the scalar loop.
func (k UnaryFold[V, T]) Width() (hwy.Width, bool) { return k.p.width, k.p.accelerated() }

// BinaryFold is a binary fold bound to one vector shape.
type BinaryFold[V shape.Fixed[T], T hwy.Lanes] struct {
	op BinaryAggregate[T]
	p  plan
}

// NewBinaryFold prepares op for vectors of shape V.
func NewBinaryFold[V shape.Fixed[T], T hwy.Lanes](op BinaryAggregate[T]) (BinaryFold[V, T], error) {
	p, err := planFor[T](shape.ElementCount[V, T](), op)
	if err != nil {
		return BinaryFold[V, T]{}, err
	}
	return BinaryFold[V, T]{op: op, p: p}, nil
}

// Fold returns the folded lane results of op over a and b.
func (k BinaryFold[V, T]) Fold(a, b V) T {
	return binaryFold(k.p, k.op, shape.AsSequence[V, T](&a), shape.AsSequence[V, T](&b))
}

// Width returns the register width used, or false for the scalar loop.
func (k BinaryFold[V, T]) Width() (hwy.Width, bool) { return k.p.width, k.p.accelerated() }
