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
	"unsafe"

	"github.com/ajroetker/hwyvec/hwy"
)

// bitSize returns the size of T in bits.
func bitSize[T hwy.Lanes]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// isSigned reports whether T holds negative values.
func isSigned[T hwy.Lanes]() bool {
	var zero T
	return zero-1 < 0
}

func sqrt[T hwy.Floats](x T) T {
	return T(math.Sqrt(float64(x)))
}
