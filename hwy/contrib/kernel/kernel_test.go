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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/hwyvec/hwy"
	"github.com/ajroetker/hwyvec/hwy/contrib/shape"
)

// forEachLevel runs fn once per dispatch level, forcing the level for the
// duration of the subtest.
func forEachLevel(t *testing.T, fn func(t *testing.T)) {
	t.Helper()
	for _, level := range hwy.AllLevels() {
		t.Run(level.String(), func(t *testing.T) {
			restore := hwy.SetLevel(level)
			defer restore()
			fn(t)
		})
	}
}

// ramp returns a vector with lane i set to start + i*step.
func ramp[V shape.Fixed[T], T hwy.Lanes](start, step T) V {
	var v V
	x := start
	for i := range len(v) {
		v[i] = x
		x += step
	}
	return v
}

func scalarUnary[V shape.Fixed[T], T hwy.Lanes](op UnaryOp[T], a V) V {
	var out V
	for i := range len(out) {
		out[i] = op.Scalar(a[i])
	}
	return out
}

func scalarBinary[V shape.Fixed[T], T hwy.Lanes](op BinaryOp[T], a, b V) V {
	var out V
	for i := range len(out) {
		out[i] = op.Scalar(a[i], b[i])
	}
	return out
}

func checkBinary[V shape.Fixed[T], T hwy.Lanes](t *testing.T, op BinaryOp[T], a, b V) {
	t.Helper()
	got := ApplyBinary[V, T](op, a, b)
	want := scalarBinary[V, T](op, a, b)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("%s %T at %s: mismatch (-scalar +dispatched):\n%s", op.Name(), a, hwy.CurrentName(), diff)
	}
}

func checkArithmetic[V shape.Fixed[T], T hwy.Lanes](t *testing.T, a, b V) {
	t.Helper()
	checkBinary[V, T](t, Add[T]{}, a, b)
	checkBinary[V, T](t, Subtract[T]{}, a, b)
	checkBinary[V, T](t, Multiply[T]{}, a, b)
	checkBinary[V, T](t, Divide[T]{}, a, b)
	checkBinary[V, T](t, Remainder[T]{}, a, b)
	checkBinary[V, T](t, Min[T]{}, a, b)
	checkBinary[V, T](t, Max[T]{}, a, b)
	checkBinary[V, T](t, AbsDiff[T]{}, a, b)
	checkBinary[V, T](t, DistanceSquared[T]{}, a, b)
	checkBinary[V, T](t, Equality[T]{}, a, b)
}

func TestBinaryMatchesScalar(t *testing.T) {
	forEachLevel(t, func(t *testing.T) {
		checkArithmetic[[2]float32, float32](t, ramp[[2]float32, float32](0.1, 0.7), ramp[[2]float32, float32](3.3, -0.4))
		checkArithmetic[[3]float32, float32](t, ramp[[3]float32, float32](0.1, 0.7), ramp[[3]float32, float32](3.3, -0.4))
		checkArithmetic[[4]float32, float32](t, ramp[[4]float32, float32](0.1, 0.7), ramp[[4]float32, float32](3.3, -0.4))
		checkArithmetic[[5]float32, float32](t, ramp[[5]float32, float32](0.1, 0.7), ramp[[5]float32, float32](3.3, -0.4))

		checkArithmetic[[2]float64, float64](t, ramp[[2]float64, float64](1e-3, 1.1), ramp[[2]float64, float64](7, 1.9))
		checkArithmetic[[3]float64, float64](t, ramp[[3]float64, float64](1e-3, 1.1), ramp[[3]float64, float64](7, 1.9))
		checkArithmetic[[4]float64, float64](t, ramp[[4]float64, float64](1e-3, 1.1), ramp[[4]float64, float64](7, 1.9))
		checkArithmetic[[5]float64, float64](t, ramp[[5]float64, float64](1e-3, 1.1), ramp[[5]float64, float64](7, 1.9))

		checkArithmetic[[2]int32, int32](t, ramp[[2]int32, int32](-7, 5), ramp[[2]int32, int32](3, 2))
		checkArithmetic[[3]int32, int32](t, ramp[[3]int32, int32](-7, 5), ramp[[3]int32, int32](3, 2))
		checkArithmetic[[4]int64, int64](t, ramp[[4]int64, int64](-7, 5), ramp[[4]int64, int64](3, 2))
		checkArithmetic[[5]int64, int64](t, ramp[[5]int64, int64](-7, 5), ramp[[5]int64, int64](3, 2))

		checkArithmetic[[5]uint8, uint8](t, ramp[[5]uint8, uint8](250, 3), ramp[[5]uint8, uint8](1, 1))
		checkArithmetic[[3]int16, int16](t, ramp[[3]int16, int16](-32768, 1000), ramp[[3]int16, int16](-1, -2))
	})
}

func TestEveryLaneCovered(t *testing.T) {
	markers := [5]float64{11, 22, 33, 44, 55}
	forEachLevel(t, func(t *testing.T) {
		got := ApplyUnary[[5]float64, float64](Identity[float64]{}, markers)
		assert.Equal(t, markers, got)

		got = ApplyBinary[[5]float64, float64](Add[float64]{}, markers, [5]float64{})
		assert.Equal(t, markers, got)

		got = ApplyTernary[[5]float64, float64](MulAdd[float64]{}, markers, shape.Broadcast[[5]float64, float64](1.0), [5]float64{})
		assert.Equal(t, markers, got)
	})
}

func TestScenarioFloat3(t *testing.T) {
	a := [3]float32{1, 2, 3}
	b := [3]float32{4, 5, 6}
	forEachLevel(t, func(t *testing.T) {
		assert.Equal(t, [3]float32{5, 7, 9}, ApplyBinary[[3]float32, float32](Add[float32]{}, a, b))
		assert.Equal(t, float32(32), FoldBinary[[3]float32, float32](Dot[float32]{}, a, b))
		assert.Equal(t, float32(27), FoldBinary[[3]float32, float32](SumDistanceSquared[float32]{}, a, b))
		assert.Equal(t, float32(14), FoldUnary[[3]float32, float32](LengthSquared[float32]{}, a))
	})
}

func TestScenarioInt2(t *testing.T) {
	v := [2]int32{3, -4}
	forEachLevel(t, func(t *testing.T) {
		assert.Equal(t, [2]int32{3, 4}, ApplyUnary[[2]int32, int32](Abs[int32]{}, v))
		assert.Equal(t, [2]int32{-3, 4}, ApplyUnary[[2]int32, int32](Negate[int32]{}, v))
	})
}

func TestUnaryMatchesScalar(t *testing.T) {
	forEachLevel(t, func(t *testing.T) {
		f := ramp[[5]float64, float64](-2.5, 1.25)
		assert.Equal(t, scalarUnary[[5]float64, float64](Negate[float64]{}, f), ApplyUnary[[5]float64, float64](Negate[float64]{}, f))
		assert.Equal(t, scalarUnary[[5]float64, float64](Square[float64]{}, f), ApplyUnary[[5]float64, float64](Square[float64]{}, f))
		assert.Equal(t, scalarUnary[[5]float64, float64](Abs[float64]{}, f), ApplyUnary[[5]float64, float64](Abs[float64]{}, f))

		u := ramp[[4]uint32, uint32](0, 0x0f0f)
		assert.Equal(t, scalarUnary[[4]uint32, uint32](Not[uint32]{}, u), ApplyUnary[[4]uint32, uint32](Not[uint32]{}, u))
	})
}

func TestNegateTwice(t *testing.T) {
	v := [4]float64{1.5, -2, 0, 1e300}
	forEachLevel(t, func(t *testing.T) {
		once := ApplyUnary[[4]float64, float64](Negate[float64]{}, v)
		assert.Equal(t, v, ApplyUnary[[4]float64, float64](Negate[float64]{}, once))
	})
}

func TestBitwise(t *testing.T) {
	a := [3]uint16{0b1100, 0xffff, 0}
	b := [3]uint16{0b1010, 0x00ff, 0}
	forEachLevel(t, func(t *testing.T) {
		assert.Equal(t, [3]uint16{0b1000, 0x00ff, 0}, ApplyBinary[[3]uint16, uint16](And[uint16]{}, a, b))
		assert.Equal(t, [3]uint16{0b1110, 0xffff, 0}, ApplyBinary[[3]uint16, uint16](Or[uint16]{}, a, b))
		assert.Equal(t, [3]uint16{0b0110, 0xff00, 0}, ApplyBinary[[3]uint16, uint16](Xor[uint16]{}, a, b))
	})
}

func TestSaturated(t *testing.T) {
	a := [4]int8{120, -120, 5, 0}
	b := [4]int8{10, 10, 5, -128}
	forEachLevel(t, func(t *testing.T) {
		assert.Equal(t, [4]int8{127, -110, 10, -128}, ApplyBinary[[4]int8, int8](SaturatedAdd[int8]{}, a, b))
		assert.Equal(t, [4]int8{110, -128, 0, 127}, ApplyBinary[[4]int8, int8](SaturatedSub[int8]{}, a, b))
	})
}

func TestTernary(t *testing.T) {
	v := [5]float32{-3, -1, 0, 2, 9}
	lo := shape.Broadcast[[5]float32, float32](float32(-1))
	hi := shape.Broadcast[[5]float32, float32](float32(2))
	forEachLevel(t, func(t *testing.T) {
		assert.Equal(t, [5]float32{-1, -1, 0, 2, 2}, ApplyTernary[[5]float32, float32](Clamp[float32]{}, v, lo, hi))
		assert.Equal(t, [5]float32{-4, -2, -1, 1, 8}, ApplyTernary[[5]float32, float32](MulAdd[float32]{}, v, shape.Broadcast[[5]float32, float32](float32(1)), lo))
	})
}

func TestSumIdentityIsZero(t *testing.T) {
	assert.Zero(t, Sum[float64]{}.Identity())
	forEachLevel(t, func(t *testing.T) {
		assert.Zero(t, FoldUnary[[4]float64, float64](Sum[float64]{}, [4]float64{}))
		assert.Zero(t, FoldUnary[[3]int32, int32](Sum[int32]{}, [3]int32{}))
		assert.Equal(t, int32(6), FoldUnary[[3]int32, int32](Sum[int32]{}, [3]int32{1, 2, 3}))
	})
}

func TestAllEqual(t *testing.T) {
	a := [5]float32{1, 2, 3, 4, 5}
	nan := a
	nan[4] = float32(math.NaN())
	forEachLevel(t, func(t *testing.T) {
		assert.Equal(t, float32(1), FoldBinary[[5]float32, float32](AllEqual[float32]{}, a, a))
		b := a
		b[4] = 6
		assert.Equal(t, float32(0), FoldBinary[[5]float32, float32](AllEqual[float32]{}, a, b))
		b = a
		b[0] = 0
		assert.Equal(t, float32(0), FoldBinary[[5]float32, float32](AllEqual[float32]{}, a, b))
		assert.Equal(t, float32(0), FoldBinary[[5]float32, float32](AllEqual[float32]{}, nan, nan))
	})
}

func TestFoldMatchesScalarOrder(t *testing.T) {
	// Summed left to right the lanes give 4; any regrouping loses the ones
	// against 1e20 differently.
	v := [5]float64{1e20, 1, -1e20, 1, 3}

	want := Sum[float64]{}.Identity()
	for _, x := range v {
		want = Sum[float64]{}.Reduce(want, x)
	}
	require.Equal(t, 4.0, want)

	ones := shape.Broadcast[[5]float64, float64](1.0)
	forEachLevel(t, func(t *testing.T) {
		assert.Equal(t, want, FoldUnary[[5]float64, float64](Sum[float64]{}, v))
		assert.Equal(t, want, FoldBinary[[5]float64, float64](Dot[float64]{}, v, ones))
	})
}

func TestDotCommutes(t *testing.T) {
	a := ramp[[4]float32, float32](0.3, 1.7)
	b := ramp[[4]float32, float32](-5, 2.25)
	forEachLevel(t, func(t *testing.T) {
		ab := FoldBinary[[4]float32, float32](Dot[float32]{}, a, b)
		ba := FoldBinary[[4]float32, float32](Dot[float32]{}, b, a)
		assert.Equal(t, ab, ba)

		d := ApplyBinary[[4]float32, float32](Subtract[float32]{}, a, b)
		assert.Equal(t, FoldUnary[[4]float32, float32](LengthSquared[float32]{}, d),
			FoldBinary[[4]float32, float32](SumDistanceSquared[float32]{}, a, b))
	})
}

func TestPlanFor(t *testing.T) {
	restore := hwy.SetLevel(hwy.DispatchScalar)
	p, err := planFor[float32](4, Add[float32]{})
	restore()
	require.NoError(t, err)
	assert.False(t, p.accelerated(), "scalar level must not accelerate")

	restore = hwy.SetLevel(hwy.DispatchSSE2)
	defer restore()

	p, err = planFor[float64](3, Add[float64]{})
	require.NoError(t, err)
	assert.Equal(t, plan{width: hwy.Width128, lanes: 2}, p)

	p, err = planFor[float32](3, Add[float32]{})
	require.NoError(t, err)
	assert.False(t, p.accelerated(), "4 lanes do not fit 3")

	p, err = planFor[int8](5, Add[int8]{})
	require.NoError(t, err)
	assert.False(t, p.accelerated(), "16 lanes do not fit 5")
}

// narrowAdd implements only 128-bit registers.
type narrowAdd[T hwy.Lanes] struct{ Add[T] }

func (narrowAdd[T]) Widths() hwy.WidthSet { return hwy.WidthsOf(hwy.Width128) }

func TestUnsupportedWidth(t *testing.T) {
	restore := hwy.SetLevel(hwy.DispatchAVX2)
	defer restore()
	if len(hwy.Widths()) == 0 || hwy.Widths()[0] != hwy.Width256 {
		t.Skipf("256-bit registers capped: widths %v", hwy.Widths())
	}

	err := Check[[4]float64, float64](narrowAdd[float64]{})
	require.ErrorIs(t, err, ErrUnsupported)
	assert.Contains(t, err.Error(), "add")
	assert.Contains(t, err.Error(), "256bit")

	_, err = NewBinary[[4]float64, float64](narrowAdd[float64]{})
	require.ErrorIs(t, err, ErrUnsupported)

	assert.Panics(t, func() {
		ApplyBinary[[4]float64, float64](narrowAdd[float64]{}, [4]float64{}, [4]float64{})
	})

	// Three float64 lanes skip 256 bits and use 128-bit registers.
	k, err := NewBinary[[3]float64, float64](narrowAdd[float64]{})
	require.NoError(t, err)
	w, ok := k.Width()
	assert.True(t, ok)
	assert.Equal(t, hwy.Width128, w)
	assert.Equal(t, [3]float64{2, 4, 6}, k.Apply([3]float64{1, 2, 3}, [3]float64{1, 2, 3}))
}

func TestApplyToAliases(t *testing.T) {
	forEachLevel(t, func(t *testing.T) {
		a := ramp[[5]float64, float64](1, 1)
		b := ramp[[5]float64, float64](10, 10)
		want := ApplyBinary[[5]float64, float64](Add[float64]{}, a, b)

		k, err := NewBinary[[5]float64, float64](Add[float64]{})
		require.NoError(t, err)
		k.ApplyTo(&a, &a, &b)
		assert.Equal(t, want, a)

		u, err := NewUnary[[5]float64, float64](Square[float64]{})
		require.NoError(t, err)
		u.ApplyTo(&b, &b)
		assert.Equal(t, [5]float64{100, 400, 900, 1600, 2500}, b)
	})
}

func TestPreparedMatchesDirect(t *testing.T) {
	a := ramp[[4]int32, int32](-3, 4)
	b := ramp[[4]int32, int32](2, 1)
	c := shape.Broadcast[[4]int32, int32](int32(1))
	forEachLevel(t, func(t *testing.T) {
		tern, err := NewTernary[[4]int32, int32](MulAdd[int32]{})
		require.NoError(t, err)
		assert.Equal(t, ApplyTernary[[4]int32, int32](MulAdd[int32]{}, a, b, c), tern.Apply(a, b, c))

		fold, err := NewBinaryFold[[4]int32, int32](Dot[int32]{})
		require.NoError(t, err)
		assert.Equal(t, FoldBinary[[4]int32, int32](Dot[int32]{}, a, b), fold.Fold(a, b))

		ufold, err := NewUnaryFold[[4]int32, int32](Sum[int32]{})
		require.NoError(t, err)
		assert.Equal(t, int32(12), ufold.Fold(a))
	})
}

func TestDescriptorNames(t *testing.T) {
	assert.Equal(t, "sum(multiply)", Dot[float32]{}.Name())
	assert.Equal(t, "sum(square)", LengthSquared[float32]{}.Name())
	assert.Equal(t, hwy.AllWidths, Dot[float32]{}.Widths())
}

func TestNoAllocations(t *testing.T) {
	a := ramp[[5]float32, float32](1, 0.5)
	b := ramp[[5]float32, float32](-2, 0.25)
	x := ramp[[3]int64, int64](7, -3)
	forEachLevel(t, func(t *testing.T) {
		k, err := NewBinary[[5]float32, float32](Min[float32]{})
		require.NoError(t, err)

		var sum, clamped [5]float32
		var dot float32
		var total int64
		allocs := testing.AllocsPerRun(50, func() {
			sum = ApplyBinary[[5]float32, float32](Add[float32]{}, a, b)
			clamped = ApplyTernary[[5]float32, float32](Clamp[float32]{}, sum, b, a)
			k.ApplyTo(&clamped, &clamped, &sum)
			dot = FoldBinary[[5]float32, float32](Dot[float32]{}, a, b)
			total = FoldUnary[[3]int64, int64](Sum[int64]{}, x)
		})
		assert.Zero(t, allocs, "allocations per run at %s", hwy.CurrentName())

		assert.Equal(t, scalarBinary[[5]float32, float32](Add[float32]{}, a, b), sum)
		assert.Equal(t, int64(7+4+1), total)
		want := Dot[float32]{}.Identity()
		for i := range a {
			want = Dot[float32]{}.Reduce(want, hwy.MulLane(a[i], b[i]))
		}
		assert.Equal(t, want, dot)
	})
}

func TestZeroDivisorFloat(t *testing.T) {
	a := [4]float64{1, -1, 0, math.Inf(1)}
	var zero [4]float64
	forEachLevel(t, func(t *testing.T) {
		for _, op := range []BinaryOp[float64]{Divide[float64]{}, Remainder[float64]{}} {
			got := ApplyBinary[[4]float64, float64](op, a, zero)
			want := scalarBinary[[4]float64, float64](op, a, zero)
			for i := range got {
				assert.Equal(t, math.Float64bits(want[i]), math.Float64bits(got[i]),
					"%s lane %d: got %v, want %v", op.Name(), i, got[i], want[i])
			}
		}

		quo := ApplyBinary[[4]float64, float64](Divide[float64]{}, a, zero)
		assert.True(t, math.IsInf(quo[0], 1))
		assert.True(t, math.IsInf(quo[1], -1))
		assert.True(t, math.IsNaN(quo[2]))
		assert.True(t, math.IsInf(quo[3], 1))

		rem := ApplyBinary[[4]float64, float64](Remainder[float64]{}, a, zero)
		for i, r := range rem {
			assert.True(t, math.IsNaN(r), "remainder lane %d: got %v, want NaN", i, r)
		}
	})
}

func TestNaNPassesThrough(t *testing.T) {
	nan := float32(math.NaN())
	a := [3]float32{nan, 1, float32(math.Inf(-1))}
	b := [3]float32{2, nan, 3}
	forEachLevel(t, func(t *testing.T) {
		sum := ApplyBinary[[3]float32, float32](Add[float32]{}, a, b)
		assert.True(t, math.IsNaN(float64(sum[0])))
		assert.True(t, math.IsNaN(float64(sum[1])))
		assert.True(t, math.IsInf(float64(sum[2]), -1))
		assert.True(t, math.IsNaN(float64(FoldUnary[[3]float32, float32](Sum[float32]{}, a))))
	})
}

func TestIntegerDivideByZeroPanics(t *testing.T) {
	a := [4]int32{8, -8, 3, 0}
	b := [4]int32{2, 2, 0, 1}
	forEachLevel(t, func(t *testing.T) {
		assert.PanicsWithError(t, "runtime error: integer divide by zero", func() {
			ApplyBinary[[4]int32, int32](Divide[int32]{}, a, b)
		})
		assert.PanicsWithError(t, "runtime error: integer divide by zero", func() {
			ApplyBinary[[4]int32, int32](Remainder[int32]{}, a, b)
		})
	})
}
