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

// Every register form below is built from the hwy register ops, which apply
// the same per-lane helper as the matching scalar form.

// allWidths is embedded by descriptors implementing every register width.
type allWidths struct{}

func (allWidths) Widths() hwy.WidthSet { return hwy.AllWidths }

// Add computes a + b.
type Add[T hwy.Lanes] struct{ allWidths }

func (Add[T]) Name() string { return "add" }
func (Add[T]) Scalar(a, b T) T { return hwy.AddLane(a, b) }
func (Add[T]) Vector(a, b hwy.Vec[T]) hwy.Vec[T] { return hwy.Add(a, b) }

// Subtract computes a - b.
type Subtract[T hwy.Lanes] struct{ allWidths }

func (Subtract[T]) Name() string { return "subtract" }
func (Subtract[T]) Scalar(a, b T) T { return hwy.SubLane(a, b) }
func (Subtract[T]) Vector(a, b hwy.Vec[T]) hwy.Vec[T] { return hwy.Sub(a, b) }

// Multiply computes a * b.
type Multiply[T hwy.Lanes] struct{ allWidths }

func (Multiply[T]) Name() string { return "multiply" }
func (Multiply[T]) Scalar(a, b T) T { return hwy.MulLane(a, b) }
func (Multiply[T]) Vector(a, b hwy.Vec[T]) hwy.Vec[T] { return hwy.Mul(a, b) }

// Divide computes a / b. Integer division by zero panics.
type Divide[T hwy.Lanes] struct{ allWidths }

func (Divide[T]) Name() string { return "divide" }
func (Divide[T]) Scalar(a, b T) T { return hwy.DivLane(a, b) }
func (Divide[T]) Vector(a, b hwy.Vec[T]) hwy.Vec[T] { return hwy.Div(a, b) }

// Remainder computes a % b, or math.Mod(a, b) for floats.
type Remainder[T hwy.Lanes] struct{ allWidths }

func (Remainder[T]) Name() string { return "remainder" }
func (Remainder[T]) Scalar(a, b T) T { return hwy.RemLane(a, b) }
func (Remainder[T]) Vector(a, b hwy.Vec[T]) hwy.Vec[T] { return hwy.Rem(a, b) }

// Min computes the lane-wise minimum.
type Min[T hwy.Lanes] struct{ allWidths }

func (Min[T]) Name() string { return "min" }
func (Min[T]) Scalar(a, b T) T { return hwy.MinLane(a, b) }
func (Min[T]) Vector(a, b hwy.Vec[T]) hwy.Vec[T] { return hwy.Min(a, b) }

// Max computes the lane-wise maximum.
type Max[T hwy.Lanes] struct{ allWidths }

func (Max[T]) Name() string { return "max" }
func (Max[T]) Scalar(a, b T) T { return hwy.MaxLane(a, b) }
func (Max[T]) Vector(a, b hwy.Vec[T]) hwy.Vec[T] { return hwy.Max(a, b) }

// AbsDiff computes |a - b|.
type AbsDiff[T hwy.Lanes] struct{ allWidths }

func (AbsDiff[T]) Name() string { return "absdiff" }
func (AbsDiff[T]) Scalar(a, b T) T { return hwy.AbsDiffLane(a, b) }
func (AbsDiff[T]) Vector(a, b hwy.Vec[T]) hwy.Vec[T] { return hwy.AbsDiff(a, b) }

// SaturatedAdd computes a + b clamped to the range of T.
type SaturatedAdd[T hwy.Integers] struct{ allWidths }

func (SaturatedAdd[T]) Name() string { return "saturated_add" }
func (SaturatedAdd[T]) Scalar(a, b T) T { return hwy.SaturatedAddLane(a, b) }
func (SaturatedAdd[T]) Vector(a, b hwy.Vec[T]) hwy.Vec[T] { return hwy.SaturatedAdd(a, b) }

// SaturatedSub computes a - b clamped to the range of T.
type SaturatedSub[T hwy.Integers] struct{ allWidths }

func (SaturatedSub[T]) Name() string { return "saturated_sub" }
func (SaturatedSub[T]) Scalar(a, b T) T { return hwy.SaturatedSubLane(a, b) }
func (SaturatedSub[T]) Vector(a, b hwy.Vec[T]) hwy.Vec[T] { return hwy.SaturatedSub(a, b) }

// And computes a & b.
type And[T hwy.Integers] struct{ allWidths }

func (And[T]) Name() string { return "and" }
func (And[T]) Scalar(a, b T) T { return a & b }
func (And[T]) Vector(a, b hwy.Vec[T]) hwy.Vec[T] { return hwy.And(a, b) }

// Or computes a | b.
type Or[T hwy.Integers] struct{ allWidths }

func (Or[T]) Name() string { return "or" }
func (Or[T]) Scalar(a, b T) T { return a | b }
func (Or[T]) Vector(a, b hwy.Vec[T]) hwy.Vec[T] { return hwy.Or(a, b) }

// Xor computes a ^ b.
type Xor[T hwy.Integers] struct{ allWidths }

func (Xor[T]) Name() string { return "xor" }
func (Xor[T]) Scalar(a, b T) T { return a ^ b }
func (Xor[T]) Vector(a, b hwy.Vec[T]) hwy.Vec[T] { return hwy.Xor(a, b) }

// Equality sets a lane to one when a == b and to zero otherwise.
// NaN lanes are never equal.
type Equality[T hwy.Lanes] struct{ allWidths }

func (Equality[T]) Name() string { return "equality" }
func (Equality[T]) Scalar(a, b T) T { return hwy.BoolLane[T](a == b) }
func (Equality[T]) Vector(a, b hwy.Vec[T]) hwy.Vec[T] {
	n := a.NumLanes()
	return hwy.IfThenElse(hwy.Equal(a, b), hwy.SetN[T](1, n), hwy.ZeroN[T](n))
}

// DistanceSquared computes (a - b) * (a - b).
type DistanceSquared[T hwy.Lanes] struct{ allWidths }

func (DistanceSquared[T]) Name() string { return "distance_squared" }
func (DistanceSquared[T]) Scalar(a, b T) T {
	d := hwy.SubLane(a, b)
	return hwy.MulLane(d, d)
}
func (DistanceSquared[T]) Vector(a, b hwy.Vec[T]) hwy.Vec[T] {
	d := hwy.Sub(a, b)
	return hwy.Mul(d, d)
}

// Negate computes -a.
type Negate[T hwy.Signed] struct{ allWidths }

func (Negate[T]) Name() string { return "negate" }
func (Negate[T]) Scalar(a T) T { return hwy.NegLane(a) }
func (Negate[T]) Vector(a hwy.Vec[T]) hwy.Vec[T] { return hwy.Neg(a) }

// Not computes ^a.
type Not[T hwy.Integers] struct{ allWidths }

func (Not[T]) Name() string { return "not" }
func (Not[T]) Scalar(a T) T { return ^a }
func (Not[T]) Vector(a hwy.Vec[T]) hwy.Vec[T] { return hwy.Not(a) }

// Abs computes |a|. Unsigned lanes are unchanged.
type Abs[T hwy.Lanes] struct{ allWidths }

func (Abs[T]) Name() string { return "abs" }
func (Abs[T]) Scalar(a T) T { return hwy.AbsLane(a) }
func (Abs[T]) Vector(a hwy.Vec[T]) hwy.Vec[T] { return hwy.Abs(a) }

// Square computes a * a.
type Square[T hwy.Lanes] struct{ allWidths }

func (Square[T]) Name() string { return "square" }
func (Square[T]) Scalar(a T) T { return hwy.MulLane(a, a) }
func (Square[T]) Vector(a hwy.Vec[T]) hwy.Vec[T] { return hwy.Mul(a, a) }

// Identity returns a unchanged.
type Identity[T hwy.Lanes] struct{ allWidths }

func (Identity[T]) Name() string { return "identity" }
func (Identity[T]) Scalar(a T) T { return a }
func (Identity[T]) Vector(a hwy.Vec[T]) hwy.Vec[T] { return a }

// Clamp computes min(max(a, lo), hi), with a, lo, hi as the three operands.
type Clamp[T hwy.Lanes] struct{ allWidths }

func (Clamp[T]) Name() string { return "clamp" }
func (Clamp[T]) Scalar(a, lo, hi T) T { return hwy.ClampLane(a, lo, hi) }
func (Clamp[T]) Vector(a, lo, hi hwy.Vec[T]) hwy.Vec[T] { return hwy.Clamp(a, lo, hi) }

// MulAdd computes a*b + c with the product rounded before the addition.
type MulAdd[T hwy.Lanes] struct{ allWidths }

func (MulAdd[T]) Name() string { return "muladd" }
func (MulAdd[T]) Scalar(a, b, c T) T { return hwy.MulAddLane(a, b, c) }
func (MulAdd[T]) Vector(a, b, c hwy.Vec[T]) hwy.Vec[T] { return hwy.MulAdd(a, b, c) }
