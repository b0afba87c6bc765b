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

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"
)

// Generator renders one vector file per lane count.
type Generator struct {
	OutputDir  string
	PackageOut string
	Dims       []int
}

// vectorData is the template input for one lane count.
type vectorData struct {
	Package string
	N       int
	Lanes   []string
}

// Params returns the constructor parameter list, e.g. "x0, x1, x2 T".
func (d vectorData) Params() string {
	return strings.Join(d.Lanes, ", ") + " T"
}

// Args returns the lane names as a composite literal body.
func (d vectorData) Args() string {
	return strings.Join(d.Lanes, ", ")
}

// Sample returns a formatted vector with lanes 1..N, e.g. "<1, 2, 3>".
func (d vectorData) Sample() string {
	lanes := make([]string, d.N)
	for i := range lanes {
		lanes[i] = strconv.Itoa(i + 1)
	}
	return "<" + strings.Join(lanes, ", ") + ">"
}

// FileName returns the output file name for lane count n.
func FileName(n int) string {
	return fmt.Sprintf("vector%d.gen.go", n)
}

// Run writes every file and returns their names.
func (g *Generator) Run() ([]string, error) {
	if err := os.MkdirAll(g.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	var files []string
	for _, n := range g.Dims {
		src, err := g.Render(n)
		if err != nil {
			return nil, err
		}
		filename := filepath.Join(g.OutputDir, FileName(n))
		if err := os.WriteFile(filename, src, 0644); err != nil {
			return nil, fmt.Errorf("write %s: %w", filename, err)
		}
		files = append(files, filename)
	}
	return files, nil
}

// Render returns the formatted source for lane count n.
func (g *Generator) Render(n int) ([]byte, error) {
	data := vectorData{Package: g.PackageOut, N: n}
	for i := range n {
		data.Lanes = append(data.Lanes, fmt.Sprintf("x%d", i))
	}

	var buf bytes.Buffer
	if err := vectorTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render vector%d: %w", n, err)
	}

	formatted, err := imports.Process(FileName(n), buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("format vector%d: %w", n, err)
	}
	return formatted, nil
}

var vectorTemplate = template.Must(template.New("vector").Parse(vectorSource))

const vectorSource = `// Copyright 2025 go-highway Authors
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

// Code generated by vecgen. DO NOT EDIT.

package {{.Package}}

import (
	"github.com/ajroetker/hwyvec/hwy"
	"github.com/ajroetker/hwyvec/hwy/contrib/kernel"
	"github.com/ajroetker/hwyvec/hwy/contrib/shape"
)

// Vector{{.N}} is a fixed vector of {{.N}} lanes.
type Vector{{.N}}[T hwy.Lanes] [{{.N}}]T

// New{{.N}} returns the vector with the given lanes.
func New{{.N}}[T hwy.Lanes]({{.Params}}) Vector{{.N}}[T] {
	return Vector{{.N}}[T]{ {{- .Args -}} }
}

// Broadcast{{.N}} returns a vector with every lane set to s.
func Broadcast{{.N}}[T hwy.Lanes](s T) Vector{{.N}}[T] {
	return Vector{{.N}}[T](shape.Broadcast[[{{.N}}]T, T](s))
}

// Vector{{.N}}FromSlice returns a vector holding the first {{.N}} elements of s.
func Vector{{.N}}FromSlice[T hwy.Lanes](s []T) (Vector{{.N}}[T], error) {
	v, err := shape.FromSlice[[{{.N}}]T, T](s)
	return Vector{{.N}}[T](v), err
}

// Parse{{.N}} parses the format produced by String, e.g. "{{.Sample}}".
func Parse{{.N}}[T hwy.Lanes](s string) (Vector{{.N}}[T], error) {
	v, err := Parse[[{{.N}}]T, T](s)
	return Vector{{.N}}[T](v), err
}

func (v Vector{{.N}}[T]) Add(w Vector{{.N}}[T]) Vector{{.N}}[T] {
	return Vector{{.N}}[T](kernel.ApplyBinary[[{{.N}}]T, T](kernel.Add[T]{}, [{{.N}}]T(v), [{{.N}}]T(w)))
}

func (v Vector{{.N}}[T]) Sub(w Vector{{.N}}[T]) Vector{{.N}}[T] {
	return Vector{{.N}}[T](kernel.ApplyBinary[[{{.N}}]T, T](kernel.Subtract[T]{}, [{{.N}}]T(v), [{{.N}}]T(w)))
}

func (v Vector{{.N}}[T]) Mul(w Vector{{.N}}[T]) Vector{{.N}}[T] {
	return Vector{{.N}}[T](kernel.ApplyBinary[[{{.N}}]T, T](kernel.Multiply[T]{}, [{{.N}}]T(v), [{{.N}}]T(w)))
}

// Div divides lane by lane. Integer division by zero panics.
func (v Vector{{.N}}[T]) Div(w Vector{{.N}}[T]) Vector{{.N}}[T] {
	return Vector{{.N}}[T](kernel.ApplyBinary[[{{.N}}]T, T](kernel.Divide[T]{}, [{{.N}}]T(v), [{{.N}}]T(w)))
}

// Rem is the lane-wise remainder, math.Mod for floats.
func (v Vector{{.N}}[T]) Rem(w Vector{{.N}}[T]) Vector{{.N}}[T] {
	return Vector{{.N}}[T](kernel.ApplyBinary[[{{.N}}]T, T](kernel.Remainder[T]{}, [{{.N}}]T(v), [{{.N}}]T(w)))
}

func (v Vector{{.N}}[T]) Min(w Vector{{.N}}[T]) Vector{{.N}}[T] {
	return Vector{{.N}}[T](kernel.ApplyBinary[[{{.N}}]T, T](kernel.Min[T]{}, [{{.N}}]T(v), [{{.N}}]T(w)))
}

func (v Vector{{.N}}[T]) Max(w Vector{{.N}}[T]) Vector{{.N}}[T] {
	return Vector{{.N}}[T](kernel.ApplyBinary[[{{.N}}]T, T](kernel.Max[T]{}, [{{.N}}]T(v), [{{.N}}]T(w)))
}

// Clamp limits every lane to [lo, hi] of the matching lanes.
func (v Vector{{.N}}[T]) Clamp(lo, hi Vector{{.N}}[T]) Vector{{.N}}[T] {
	return Vector{{.N}}[T](kernel.ApplyTernary[[{{.N}}]T, T](kernel.Clamp[T]{}, [{{.N}}]T(v), [{{.N}}]T(lo), [{{.N}}]T(hi)))
}

func (v Vector{{.N}}[T]) Abs() Vector{{.N}}[T] {
	return Vector{{.N}}[T](kernel.ApplyUnary[[{{.N}}]T, T](kernel.Abs[T]{}, [{{.N}}]T(v)))
}

// Equal reports whether every lane equals the matching lane of w. A NaN lane
// is never equal.
func (v Vector{{.N}}[T]) Equal(w Vector{{.N}}[T]) bool {
	return kernel.FoldBinary[[{{.N}}]T, T](kernel.AllEqual[T]{}, [{{.N}}]T(v), [{{.N}}]T(w)) != 0
}

func (v Vector{{.N}}[T]) Dot(w Vector{{.N}}[T]) T {
	return kernel.FoldBinary[[{{.N}}]T, T](kernel.Dot[T]{}, [{{.N}}]T(v), [{{.N}}]T(w))
}

func (v Vector{{.N}}[T]) LengthSquared() T {
	return kernel.FoldUnary[[{{.N}}]T, T](kernel.LengthSquared[T]{}, [{{.N}}]T(v))
}

func (v Vector{{.N}}[T]) DistanceSquared(w Vector{{.N}}[T]) T {
	return kernel.FoldBinary[[{{.N}}]T, T](kernel.SumDistanceSquared[T]{}, [{{.N}}]T(v), [{{.N}}]T(w))
}

// Sum adds the lanes in ascending order.
func (v Vector{{.N}}[T]) Sum() T {
	return kernel.FoldUnary[[{{.N}}]T, T](kernel.Sum[T]{}, [{{.N}}]T(v))
}

// Lane returns lane i, or shape.ErrLaneOutOfRange.
func (v Vector{{.N}}[T]) Lane(i int) (T, error) {
	return shape.Lane[[{{.N}}]T, T]([{{.N}}]T(v), i)
}

// AsSlice returns a slice aliasing the lanes of v.
func (v *Vector{{.N}}[T]) AsSlice() []T {
	return shape.AsSequence[[{{.N}}]T, T]((*[{{.N}}]T)(v))
}

func (v Vector{{.N}}[T]) String() string {
	return formatLanes(v[:])
}

func Negate{{.N}}[T hwy.Signed](v Vector{{.N}}[T]) Vector{{.N}}[T] {
	return Vector{{.N}}[T](kernel.ApplyUnary[[{{.N}}]T, T](kernel.Negate[T]{}, [{{.N}}]T(v)))
}

func And{{.N}}[T hwy.Integers](v, w Vector{{.N}}[T]) Vector{{.N}}[T] {
	return Vector{{.N}}[T](kernel.ApplyBinary[[{{.N}}]T, T](kernel.And[T]{}, [{{.N}}]T(v), [{{.N}}]T(w)))
}

func Or{{.N}}[T hwy.Integers](v, w Vector{{.N}}[T]) Vector{{.N}}[T] {
	return Vector{{.N}}[T](kernel.ApplyBinary[[{{.N}}]T, T](kernel.Or[T]{}, [{{.N}}]T(v), [{{.N}}]T(w)))
}

func Xor{{.N}}[T hwy.Integers](v, w Vector{{.N}}[T]) Vector{{.N}}[T] {
	return Vector{{.N}}[T](kernel.ApplyBinary[[{{.N}}]T, T](kernel.Xor[T]{}, [{{.N}}]T(v), [{{.N}}]T(w)))
}

func Not{{.N}}[T hwy.Integers](v Vector{{.N}}[T]) Vector{{.N}}[T] {
	return Vector{{.N}}[T](kernel.ApplyUnary[[{{.N}}]T, T](kernel.Not[T]{}, [{{.N}}]T(v)))
}

// Length{{.N}} returns the Euclidean length of v.
func Length{{.N}}[T hwy.Floats](v Vector{{.N}}[T]) T {
	return sqrt(v.LengthSquared())
}

// Distance{{.N}} returns the Euclidean distance between v and w.
func Distance{{.N}}[T hwy.Floats](v, w Vector{{.N}}[T]) T {
	return sqrt(v.DistanceSquared(w))
}

// ConvertChecked{{.N}} converts every lane with ConvertChecked.
func ConvertChecked{{.N}}[To, From hwy.Lanes](v Vector{{.N}}[From]) (Vector{{.N}}[To], error) {
	var out Vector{{.N}}[To]
	err := convertLanes(out[:], v[:], ConvertChecked[To, From])
	return out, err
}

// ConvertSaturating{{.N}} converts every lane with ConvertSaturating.
func ConvertSaturating{{.N}}[To, From hwy.Lanes](v Vector{{.N}}[From]) Vector{{.N}}[To] {
	var out Vector{{.N}}[To]
	for i, x := range v {
		out[i] = ConvertSaturating[To](x)
	}
	return out
}

// ConvertTruncating{{.N}} converts every lane with ConvertTruncating.
func ConvertTruncating{{.N}}[To, From hwy.Lanes](v Vector{{.N}}[From]) Vector{{.N}}[To] {
	var out Vector{{.N}}[To]
	for i, x := range v {
		out[i] = ConvertTruncating[To](x)
	}
	return out
}
`
