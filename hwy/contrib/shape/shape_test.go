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

package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/hwyvec/hwy"
)

func TestElementCount(t *testing.T) {
	assert.Equal(t, 2, ElementCount[[2]float64, float64]())
	assert.Equal(t, 3, ElementCount[[3]int8, int8]())
	assert.Equal(t, 4, ElementCount[[4]uint32, uint32]())
	assert.Equal(t, 5, ElementCount[[5]float32, float32]())
}

func checkBroadcast[V Fixed[T], T hwy.Lanes](t *testing.T, s T) {
	t.Helper()
	v := Broadcast[V, T](s)
	seq := AsSequence[V, T](&v)

	require.Len(t, seq, ElementCount[V, T]())
	for i, got := range seq {
		assert.Equal(t, s, got, "lane %d", i)
	}
}

func TestBroadcastRoundTrip(t *testing.T) {
	checkBroadcast[[2]float32](t, float32(1.5))
	checkBroadcast[[3]float64](t, -2.25)
	checkBroadcast[[4]int16](t, int16(-7))
	checkBroadcast[[5]uint8](t, uint8(200))
	checkBroadcast[[5]int64](t, int64(1)<<40)
}

func TestAsSequenceAliases(t *testing.T) {
	v := [3]int32{1, 2, 3}
	seq := AsSequence[[3]int32, int32](&v)

	seq[1] = 20
	assert.Equal(t, [3]int32{1, 20, 3}, v)
}

func TestFromSlice(t *testing.T) {
	v, err := FromSlice[[4]float32, float32]([]float32{1, 2, 3, 4, 5})
	require.NoError(t, err)
	assert.Equal(t, [4]float32{1, 2, 3, 4}, v)

	_, err = FromSlice[[4]float32, float32]([]float32{1, 2, 3})
	require.ErrorIs(t, err, ErrShortSlice)
}

func TestLane(t *testing.T) {
	v := [5]int8{10, 20, 30, 40, 50}

	got, err := Lane[[5]int8, int8](v, 4)
	require.NoError(t, err)
	assert.Equal(t, int8(50), got)

	for _, i := range []int{-1, 5} {
		_, err := Lane[[5]int8, int8](v, i)
		assert.ErrorIs(t, err, ErrLaneOutOfRange, "index %d", i)
	}
}
