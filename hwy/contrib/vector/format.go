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
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ajroetker/hwyvec/hwy"
	"github.com/ajroetker/hwyvec/hwy/contrib/shape"
)

// ErrSyntax is returned by Parse for text not in the "<a, b, c>" format.
var ErrSyntax = errors.New("vector: invalid syntax")

// formatLane formats x so that parseLane returns it exactly.
func formatLane[T hwy.Lanes](x T) string {
	switch {
	case hwy.IsFloat[T]():
		return strconv.FormatFloat(float64(x), 'g', -1, bitSize[T]())
	case isSigned[T]():
		return strconv.FormatInt(int64(x), 10)
	default:
		return strconv.FormatUint(uint64(x), 10)
	}
}

func parseLane[T hwy.Lanes](s string) (T, error) {
	switch {
	case hwy.IsFloat[T]():
		f, err := strconv.ParseFloat(s, bitSize[T]())
		return T(f), err
	case isSigned[T]():
		i, err := strconv.ParseInt(s, 10, bitSize[T]())
		return T(i), err
	default:
		u, err := strconv.ParseUint(s, 10, bitSize[T]())
		return T(u), err
	}
}

// formatLanes renders lanes as "<a, b, c>".
func formatLanes[T hwy.Lanes](lanes []T) string {
	var sb strings.Builder
	sb.WriteByte('<')
	for i, x := range lanes {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(formatLane(x))
	}
	sb.WriteByte('>')
	return sb.String()
}

// Parse parses "<a, b, c>" into a vector of shape V. Spaces around lanes are
// ignored; the lane count must match V exactly.
func Parse[V shape.Fixed[T], T hwy.Lanes](s string) (V, error) {
	var v V
	body, ok := strings.CutPrefix(strings.TrimSpace(s), "<")
	if ok {
		body, ok = strings.CutSuffix(body, ">")
	}
	if !ok {
		return v, fmt.Errorf("%w: %q is not enclosed in <>", ErrSyntax, s)
	}

	fields := strings.Split(body, ",")
	lanes := shape.AsSequence[V, T](&v)
	if len(fields) != len(lanes) {
		return v, fmt.Errorf("%w: %q has %d lanes, want %d", ErrSyntax, s, len(fields), len(lanes))
	}
	for i, f := range fields {
		x, err := parseLane[T](strings.TrimSpace(f))
		if err != nil {
			return v, fmt.Errorf("%w: lane %d: %w", ErrSyntax, i, err)
		}
		lanes[i] = x
	}
	return v, nil
}
