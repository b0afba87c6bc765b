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

package hwy

import (
	"math"
	"testing"
)

func TestSaturatedAddUint8(t *testing.T) {
	a := LoadN([]uint8{250, 100, 0, 255}, 4)
	b := LoadN([]uint8{10, 100, 0, 1}, 4)
	result := SaturatedAdd(a, b)

	expected := []uint8{255, 200, 0, 255}
	for i, want := range expected {
		if result.data[i] != want {
			t.Errorf("SaturatedAdd: lane %d: got %d, want %d", i, result.data[i], want)
		}
	}
}

func TestSaturatedSubUint8(t *testing.T) {
	a := LoadN([]uint8{10, 200, 0, 255}, 4)
	b := LoadN([]uint8{20, 100, 1, 255}, 4)
	result := SaturatedSub(a, b)

	expected := []uint8{0, 100, 0, 0}
	for i, want := range expected {
		if result.data[i] != want {
			t.Errorf("SaturatedSub: lane %d: got %d, want %d", i, result.data[i], want)
		}
	}
}

func TestSaturatedSigned(t *testing.T) {
	tests := []struct {
		name string
		got  int8
		want int8
	}{
		{"add overflow", SaturatedAddLane[int8](100, 100), 127},
		{"add underflow", SaturatedAddLane[int8](-100, -100), -128},
		{"add in range", SaturatedAddLane[int8](-100, 50), -50},
		{"sub overflow", SaturatedSubLane[int8](100, -100), 127},
		{"sub underflow", SaturatedSubLane[int8](-100, 100), -128},
		{"sub min by one", SaturatedSubLane[int8](-128, 1), -128},
		{"sub in range", SaturatedSubLane[int8](5, 7), -2},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %d, want %d", tt.name, tt.got, tt.want)
		}
	}

	if got := SaturatedAddLane[int64](math.MaxInt64, 1); got != math.MaxInt64 {
		t.Errorf("int64 add overflow: got %d", got)
	}
	if got := SaturatedSubLane[int64](math.MinInt64, 1); got != math.MinInt64 {
		t.Errorf("int64 sub underflow: got %d", got)
	}
	if got := SaturatedAddLane[uint64](math.MaxUint64, 2); got != math.MaxUint64 {
		t.Errorf("uint64 add overflow: got %d", got)
	}
}

func TestMinMaxValue(t *testing.T) {
	if MinValue[int8]() != math.MinInt8 || MaxValue[int8]() != math.MaxInt8 {
		t.Errorf("int8 range: got [%d, %d]", MinValue[int8](), MaxValue[int8]())
	}
	if MinValue[int32]() != math.MinInt32 || MaxValue[int32]() != math.MaxInt32 {
		t.Errorf("int32 range: got [%d, %d]", MinValue[int32](), MaxValue[int32]())
	}
	if MinValue[uint16]() != 0 || MaxValue[uint16]() != math.MaxUint16 {
		t.Errorf("uint16 range: got [%d, %d]", MinValue[uint16](), MaxValue[uint16]())
	}
}

func TestClamp(t *testing.T) {
	v := LoadN([]float32{-5, 0.5, 5, 1}, 4)
	lo := SetN[float32](0, 4)
	hi := SetN[float32](1, 4)
	result := Clamp(v, lo, hi)

	expected := []float32{0, 0.5, 1, 1}
	for i, want := range expected {
		if result.data[i] != want {
			t.Errorf("Clamp: lane %d: got %v, want %v", i, result.data[i], want)
		}
	}
}

func TestAbsDiff(t *testing.T) {
	a := LoadN([]uint8{10, 3}, 2)
	b := LoadN([]uint8{3, 10}, 2)
	result := AbsDiff(a, b)

	for i := range 2 {
		if result.data[i] != 7 {
			t.Errorf("AbsDiff: lane %d: got %d, want 7", i, result.data[i])
		}
	}

	if got := AbsDiffLane(-2.5, 1.5); got != 4 {
		t.Errorf("AbsDiffLane(-2.5, 1.5) = %v, want 4", got)
	}
}
