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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/hwyvec/hwy"
	"github.com/ajroetker/hwyvec/hwy/contrib/shape"
)

func forEachLevel(t *testing.T, fn func(t *testing.T)) {
	t.Helper()
	for _, level := range hwy.AllLevels() {
		t.Run(level.String(), func(t *testing.T) {
			defer hwy.SetLevel(level)()
			fn(t)
		})
	}
}

func TestVector3Float(t *testing.T) {
	a := New3[float32](1, 2, 3)
	b := New3[float32](4, 5, 6)
	forEachLevel(t, func(t *testing.T) {
		assert.Equal(t, New3[float32](5, 7, 9), a.Add(b))
		assert.Equal(t, New3[float32](-3, -3, -3), a.Sub(b))
		assert.Equal(t, New3[float32](4, 10, 18), a.Mul(b))
		assert.Equal(t, New3[float32](4, 2.5, 2), b.Div(a))
		assert.Equal(t, New3[float32](0, 1, 0), b.Rem(a))
		assert.Equal(t, float32(32), a.Dot(b))
		assert.Equal(t, float32(27), a.DistanceSquared(b))
		assert.Equal(t, float32(14), a.LengthSquared())
		assert.Equal(t, float32(6), a.Sum())
		assert.InDelta(t, math.Sqrt(27), float64(Distance3(a, b)), 1e-6)
		assert.InDelta(t, math.Sqrt(14), float64(Length3(a)), 1e-6)
	})
}

func TestVector2Int(t *testing.T) {
	v := New2[int32](3, -4)
	forEachLevel(t, func(t *testing.T) {
		assert.Equal(t, New2[int32](3, 4), v.Abs())
		assert.Equal(t, New2[int32](-3, 4), Negate2(v))
		assert.Equal(t, v, Negate2(Negate2(v)))
	})
}

func TestProperties(t *testing.T) {
	a := New5(0.5, -1.25, 3, 7.75, -2)
	b := New5(4.0, 0.125, -6, 1, 9.5)
	forEachLevel(t, func(t *testing.T) {
		assert.Equal(t, a, Negate5(Negate5(a)))
		assert.Equal(t, a.Dot(b), b.Dot(a))
		assert.Equal(t, a.DistanceSquared(b), b.DistanceSquared(a))
		assert.Equal(t, a.Sub(b).LengthSquared(), a.DistanceSquared(b))
		assert.True(t, a.Equal(a))
		assert.False(t, a.Equal(b))
	})
}

func TestEqualNaN(t *testing.T) {
	v := New4(1, 2, math.NaN(), 4)
	assert.False(t, v.Equal(v))
	assert.True(t, New4(1, 2, 3, 4).Equal(New4(1, 2, 3, 4)))
}

func TestMinMaxClamp(t *testing.T) {
	a := New4[int16](-5, 0, 5, 100)
	b := New4[int16](0, 0, 0, 0)
	forEachLevel(t, func(t *testing.T) {
		assert.Equal(t, New4[int16](-5, 0, 0, 0), a.Min(b))
		assert.Equal(t, New4[int16](0, 0, 5, 100), a.Max(b))
		assert.Equal(t, New4[int16](-1, 0, 5, 10), a.Clamp(Broadcast4[int16](-1), Broadcast4[int16](10)))
	})
}

func TestBitwise(t *testing.T) {
	a := New2[uint8](0b1100, 0xf0)
	b := New2[uint8](0b1010, 0x0f)
	assert.Equal(t, New2[uint8](0b1000, 0), And2(a, b))
	assert.Equal(t, New2[uint8](0b1110, 0xff), Or2(a, b))
	assert.Equal(t, New2[uint8](0b0110, 0xff), Xor2(a, b))
	assert.Equal(t, New2[uint8](0b11110011, 0x0f), Not2(a))
}

func TestLaneAndSlice(t *testing.T) {
	v := New5[int64](10, 20, 30, 40, 50)

	x, err := v.Lane(4)
	require.NoError(t, err)
	assert.Equal(t, int64(50), x)

	_, err = v.Lane(5)
	assert.ErrorIs(t, err, shape.ErrLaneOutOfRange)

	s := v.AsSlice()
	s[0] = 99
	assert.Equal(t, int64(99), v[0], "AsSlice must alias the vector")

	_, err = Vector5FromSlice([]int64{1, 2})
	assert.ErrorIs(t, err, shape.ErrShortSlice)

	w, err := Vector3FromSlice([]int64{7, 8, 9, 10})
	require.NoError(t, err)
	assert.Equal(t, New3[int64](7, 8, 9), w)
}

func TestMapKey(t *testing.T) {
	seen := map[Vector2[float64]]int{}
	seen[New2(1.0, 2.0)]++
	seen[New2(1.0, 2.0)]++
	seen[New2(2.0, 1.0)]++
	assert.Len(t, seen, 2)
	assert.Equal(t, 2, seen[New2(1.0, 2.0)])
}

func TestString(t *testing.T) {
	assert.Equal(t, "<5, 7, 9>", New3[float32](5, 7, 9).String())
	assert.Equal(t, "<0.1, -2.5>", New2(0.1, -2.5).String())
	assert.Equal(t, "<-128, 127, 0, 1>", New4[int8](-128, 127, 0, 1).String())
}

func TestParseRoundTrip(t *testing.T) {
	f := New3[float32](0.1, -1e-30, 3.4e38)
	got, err := Parse3[float32](f.String())
	require.NoError(t, err)
	assert.Equal(t, f, got)

	u := New2[uint64](math.MaxUint64, 0)
	gotU, err := Parse2[uint64](u.String())
	require.NoError(t, err)
	assert.Equal(t, u, gotU)

	i := New5[int8](-128, -1, 0, 1, 127)
	gotI, err := Parse5[int8](i.String())
	require.NoError(t, err)
	assert.Equal(t, i, gotI)

	spaced, err := Parse4[int32]("  <1,2 ,  3, 4>")
	require.NoError(t, err)
	assert.Equal(t, New4[int32](1, 2, 3, 4), spaced)
}

func TestParseErrors(t *testing.T) {
	for _, s := range []string{
		"",
		"1, 2",
		"<1, 2",
		"<1, 2, 3>",
		"<1>",
		"<1, x>",
		"<1, 300>",
		"<-1, 2>",
	} {
		_, err := Parse2[uint8](s)
		assert.ErrorIs(t, err, ErrSyntax, "Parse2(%q)", s)
	}
}

func TestConvertChecked(t *testing.T) {
	got, err := ConvertChecked3[int32](New3(1.9, -2.9, 0))
	require.NoError(t, err)
	assert.Equal(t, New3[int32](1, -2, 0), got)

	_, err = ConvertChecked2[uint8](New2[int16](10, -1))
	assert.ErrorIs(t, err, ErrOverflow)

	_, err = ConvertChecked2[int8](New2[int64](127, 128))
	assert.ErrorIs(t, err, ErrOverflow)

	_, err = ConvertChecked2[int64](New2(math.NaN(), 0))
	assert.ErrorIs(t, err, ErrOverflow)

	_, err = ConvertChecked2[float32](New2(1e39, 0))
	assert.ErrorIs(t, err, ErrOverflow)

	widened, err := ConvertChecked2[float64](New2[uint64](math.MaxUint64, 3))
	require.NoError(t, err)
	assert.Equal(t, New2(float64(math.MaxUint64), 3), widened)

	_, err = ConvertChecked[int64](math.Ldexp(1, 63))
	assert.ErrorIs(t, err, ErrOverflow)
	x, err := ConvertChecked[int64](-math.Ldexp(1, 63))
	require.NoError(t, err)
	assert.Equal(t, int64(math.MinInt64), x)
}

func TestConvertSaturating(t *testing.T) {
	assert.Equal(t, New4[uint8](0, 255, 200, 0), ConvertSaturating4[uint8](New4[int32](-5, 1000, 200, 0)))
	assert.Equal(t, New3[int8](-128, 127, 0), ConvertSaturating3[int8](New3(-1e9, 1e9, math.NaN())))
	assert.Equal(t, New2[float32](math.MaxFloat32, -math.MaxFloat32), ConvertSaturating2[float32](New2(1e300, -1e300)))
	assert.Equal(t, New2[int64](math.MaxInt64, math.MinInt64), ConvertSaturating2[int64](New2(math.Inf(1), math.Inf(-1))))
	assert.Equal(t, New2[uint64](math.MaxUint64, 0), ConvertSaturating2[uint64](New2(1e30, -3.0)))
}

func TestConvertTruncating(t *testing.T) {
	assert.Equal(t, New3[uint8](0x34, 0xff, 1), ConvertTruncating3[uint8](New3[int32](0x1234, -1, 257)))
	assert.Equal(t, New2[int16](3, -3), ConvertTruncating2[int16](New2(3.99, -3.99)))
}
