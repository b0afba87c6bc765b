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

// Package vector provides the fixed vector types Vector2 to Vector5 on top of
// package kernel.
//
// A VectorN[T] is an [N]T with methods. Every arithmetic method runs through
// the kernel dispatcher, so results are the same at every dispatch level:
//
//	a := vector.New3[float32](1, 2, 3)
//	b := vector.New3[float32](4, 5, 6)
//	a.Add(b)                 // <5, 7, 9>
//	a.Dot(b)                 // 32
//	vector.Length3(a.Sub(b)) // 5.196152
//
// Operations whose scalar type must be narrower than hwy.Lanes are functions
// rather than methods: NegateN needs signed lanes, AndN, OrN, XorN and NotN
// need integer lanes, LengthN and DistanceN need float lanes.
//
// The VectorN types are generated by cmd/vecgen; edit the template there.
package vector

//go:generate go run ../../../cmd/vecgen -output . -dims 2,3,4,5
