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

// TailOffset returns the start of the end-anchored window of the given lane
// count: the window [size-lanes, size) always reads valid data, even when size
// is not a multiple of lanes. It is negative when size < lanes.
func TailOffset(size, lanes int) int {
	return size - lanes
}

// FullWindows returns how many non-overlapping full windows of the given lane
// count fit into size elements.
func FullWindows(size, lanes int) int {
	if lanes <= 0 {
		return 0
	}
	return size / lanes
}

// ProcessFull calls fullFn(offset) for each non-overlapping full window,
// in ascending order starting at 0, and returns the number of elements left
// over after the last full window.
//
// Example, covering a remainder with an overlapping tail window:
//
//	tailOff := hwy.TailOffset(len(data), lanes)
//	tail := hwy.Add(hwy.LoadN(data[tailOff:], lanes), one)
//	hwy.ProcessFull(len(data), lanes, func(offset int) {
//	    hwy.Store(hwy.Add(hwy.LoadN(data[offset:], lanes), one), out[offset:])
//	})
//	hwy.Store(tail, out[tailOff:])
func ProcessFull(size, lanes int, fullFn func(offset int)) (remaining int) {
	windows := FullWindows(size, lanes)
	for i := range windows {
		fullFn(i * lanes)
	}
	return size - windows*lanes
}
