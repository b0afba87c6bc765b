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
	"fmt"

	"github.com/ajroetker/hwyvec/hwy"
	"github.com/ajroetker/hwyvec/hwy/contrib/shape"
)

// plan is the register width chosen for one vector shape and scalar type.
type plan struct {
	width hwy.Width
	// lanes is zero when the scalar loop runs.
	lanes int
}

func (p plan) accelerated() bool {
	return p.lanes > 0
}

// planFor picks the widest available width whose register fits into n lanes.
// Narrower widths are tried in turn; if none fits, the plan is scalar.
func planFor[T hwy.Lanes](n int, d Descriptor) (plan, error) {
	for _, w := range hwy.Widths() {
		lanes := hwy.LanesOf[T](w)
		if lanes == 0 || lanes > n {
			continue
		}
		if !d.Widths().Has(w) {
			var zero T
			return plan{}, fmt.Errorf("%w: %s implements %v, %s needs %v for %d lanes of %T",
				ErrUnsupported, d.Name(), d.Widths(), hwy.CurrentName(), w, n, zero)
		}
		return plan{width: w, lanes: lanes}, nil
	}
	return plan{}, nil
}

func mustPlan[T hwy.Lanes](n int, d Descriptor) plan {
	p, err := planFor[T](n, d)
	if err != nil {
		panic(err)
	}
	return p
}

// unaryInto, binaryInto and ternaryInto share one schedule: the window
// anchored at the last lane is computed first, full windows are written from
// lane 0 onward, and the tail is written last, overwriting any overlap with
// the same values. Computing the tail first keeps the schedule correct when
// dst aliases an operand.

func unaryInto[T hwy.Lanes](p plan, op UnaryOp[T], dst, a []T) {
	if !p.accelerated() {
		for i := range dst {
			dst[i] = op.Scalar(a[i])
		}
		return
	}
	lanes := p.lanes
	tailOff := hwy.TailOffset(len(dst), lanes)
	tail := op.Vector(hwy.LoadN(a[tailOff:], lanes))
	hwy.ProcessFull(len(dst), lanes, func(off int) {
		hwy.Store(op.Vector(hwy.LoadN(a[off:], lanes)), dst[off:])
	})
	hwy.Store(tail, dst[tailOff:])
}

func binaryInto[T hwy.Lanes](p plan, op BinaryOp[T], dst, a, b []T) {
	if !p.accelerated() {
		for i := range dst {
			dst[i] = op.Scalar(a[i], b[i])
		}
		return
	}
	lanes := p.lanes
	tailOff := hwy.TailOffset(len(dst), lanes)
	tail := op.Vector(hwy.LoadN(a[tailOff:], lanes), hwy.LoadN(b[tailOff:], lanes))
	hwy.ProcessFull(len(dst), lanes, func(off int) {
		hwy.Store(op.Vector(hwy.LoadN(a[off:], lanes), hwy.LoadN(b[off:], lanes)), dst[off:])
	})
	hwy.Store(tail, dst[tailOff:])
}

func ternaryInto[T hwy.Lanes](p plan, op TernaryOp[T], dst, a, b, c []T) {
	if !p.accelerated() {
		for i := range dst {
			dst[i] = op.Scalar(a[i], b[i], c[i])
		}
		return
	}
	lanes := p.lanes
	tailOff := hwy.TailOffset(len(dst), lanes)
	tail := op.Vector(hwy.LoadN(a[tailOff:], lanes), hwy.LoadN(b[tailOff:], lanes), hwy.LoadN(c[tailOff:], lanes))
	hwy.ProcessFull(len(dst), lanes, func(off int) {
		hwy.Store(op.Vector(hwy.LoadN(a[off:], lanes), hwy.LoadN(b[off:], lanes), hwy.LoadN(c[off:], lanes)), dst[off:])
	})
	hwy.Store(tail, dst[tailOff:])
}

// ApplyUnary applies op to every lane of a. It panics with ErrUnsupported
// when op lacks the register width selected for V; use NewUnary to get the
// error instead.
func ApplyUnary[V shape.Fixed[T], T hwy.Lanes](op UnaryOp[T], a V) V {
	p := mustPlan[T](shape.ElementCount[V, T](), op)
	var out V
	unaryInto(p, op, shape.AsSequence[V, T](&out), shape.AsSequence[V, T](&a))
	return out
}

// ApplyBinary applies op lane-wise to a and b. It panics with ErrUnsupported
// when op lacks the register width selected for V; use NewBinary to get the
// error instead.
func ApplyBinary[V shape.Fixed[T], T hwy.Lanes](op BinaryOp[T], a, b V) V {
	p := mustPlan[T](shape.ElementCount[V, T](), op)
	var out V
	binaryInto(p, op, shape.AsSequence[V, T](&out), shape.AsSequence[V, T](&a), shape.AsSequence[V, T](&b))
	return out
}

// ApplyTernary applies op lane-wise to a, b and c. It panics with
// ErrUnsupported when op lacks the register width selected for V; use
// NewTernary to get the error instead.
func ApplyTernary[V shape.Fixed[T], T hwy.Lanes](op TernaryOp[T], a, b, c V) V {
	p := mustPlan[T](shape.ElementCount[V, T](), op)
	var out V
	ternaryInto(p, op, shape.AsSequence[V, T](&out),
		shape.AsSequence[V, T](&a), shape.AsSequence[V, T](&b), shape.AsSequence[V, T](&c))
	return out
}
