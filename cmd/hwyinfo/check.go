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
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"unsafe"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/hwyvec/hwy"
	"github.com/ajroetker/hwyvec/hwy/contrib/kernel"
	"github.com/ajroetker/hwyvec/hwy/contrib/shape"
)

var errMismatch = errors.New("dispatch levels disagree with the scalar baseline")

// CheckReport is the result of comparing every level with the scalar loop.
type CheckReport struct {
	Samples int           `yaml:"samples"`
	Seed    uint64        `yaml:"seed"`
	Levels  []LevelResult `yaml:"levels"`
}

// LevelResult counts the lane results compared at one level.
type LevelResult struct {
	Level      string   `yaml:"level"`
	Widths     []string `yaml:"widths"`
	Compared   int      `yaml:"compared"`
	Mismatches int      `yaml:"mismatches"`
	// Failed lists the suites with at least one mismatch.
	Failed []string `yaml:"failed,omitempty"`
}

// OK reports whether no level disagreed with the baseline.
func (r CheckReport) OK() bool {
	return lo.EveryBy(r.Levels, func(l LevelResult) bool { return l.Mismatches == 0 })
}

// suite evaluates a fixed set of operations over one shape and scalar type
// and returns the bit pattern of every lane result in a flat list.
type suite struct {
	name string
	eval func() []uint64
}

func randomLane[T hwy.Lanes](r *rand.Rand) T {
	if hwy.IsFloat[T]() {
		return T(r.NormFloat64() * 100)
	}
	return T(r.Int64N(201) - 100)
}

func randomVectors[V shape.Fixed[T], T hwy.Lanes](r *rand.Rand, n int, nonZero bool) []V {
	return lo.Times(n, func(int) V {
		var v V
		for i := range len(v) {
			v[i] = randomLane[T](r)
			if nonZero && v[i] == 0 {
				v[i] = 1
			}
		}
		return v
	})
}

func newSuite[V shape.Fixed[T], T hwy.Lanes](typeName string, r *rand.Rand, samples int) suite {
	a := randomVectors[V, T](r, samples, false)
	b := randomVectors[V, T](r, samples, true)
	return suite{
		name: fmt.Sprintf("[%d]%s", shape.Len[V, T](), typeName),
		eval: func() []uint64 {
			var out []uint64
			appendVec := func(v V) {
				for _, x := range shape.AsSequence[V, T](&v) {
					out = append(out, laneBits(x))
				}
			}
			for i := range a {
				appendVec(kernel.ApplyBinary[V, T](kernel.Add[T]{}, a[i], b[i]))
				appendVec(kernel.ApplyBinary[V, T](kernel.Subtract[T]{}, a[i], b[i]))
				appendVec(kernel.ApplyBinary[V, T](kernel.Multiply[T]{}, a[i], b[i]))
				appendVec(kernel.ApplyBinary[V, T](kernel.Divide[T]{}, a[i], b[i]))
				appendVec(kernel.ApplyBinary[V, T](kernel.Min[T]{}, a[i], b[i]))
				appendVec(kernel.ApplyUnary[V, T](kernel.Abs[T]{}, a[i]))
				appendVec(kernel.ApplyTernary[V, T](kernel.MulAdd[T]{}, a[i], b[i], a[i]))
				out = append(out,
					laneBits(kernel.FoldBinary[V, T](kernel.Dot[T]{}, a[i], b[i])),
					laneBits(kernel.FoldUnary[V, T](kernel.Sum[T]{}, a[i])),
					laneBits(kernel.FoldUnary[V, T](kernel.LengthSquared[T]{}, a[i])),
				)
			}
			return out
		},
	}
}

func shapeSuites[T hwy.Lanes](typeName string, r *rand.Rand, samples int) []suite {
	return []suite{
		newSuite[[2]T, T](typeName, r, samples),
		newSuite[[3]T, T](typeName, r, samples),
		newSuite[[4]T, T](typeName, r, samples),
		newSuite[[5]T, T](typeName, r, samples),
	}
}

// laneBits returns the bit pattern of x. Floats keep their sign of zero and
// NaN payload; integers are sign-extended.
func laneBits[T hwy.Lanes](x T) uint64 {
	if !hwy.IsFloat[T]() {
		return uint64(x)
	}
	if unsafe.Sizeof(x) == 4 {
		return uint64(math.Float32bits(float32(x)))
	}
	return math.Float64bits(float64(x))
}

// selfCheck computes every suite at the scalar level, then at each other
// level, and counts results that differ.
func selfCheck(samples int, seed uint64) CheckReport {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	suites := lo.Flatten([][]suite{
		shapeSuites[float32]("float32", r, samples),
		shapeSuites[float64]("float64", r, samples),
		shapeSuites[int32]("int32", r, samples),
		shapeSuites[int64]("int64", r, samples),
		shapeSuites[int8]("int8", r, samples),
		shapeSuites[uint16]("uint16", r, samples),
	})

	restore := hwy.SetLevel(hwy.DispatchScalar)
	baseline := lo.Map(suites, func(s suite, _ int) []uint64 { return s.eval() })
	restore()

	report := CheckReport{Samples: samples, Seed: seed}
	levels := lo.Filter(hwy.AllLevels(), func(l hwy.DispatchLevel, _ int) bool {
		return l != hwy.DispatchScalar
	})
	for _, level := range levels {
		restore := hwy.SetLevel(level)
		result := LevelResult{
			Level:  level.String(),
			Widths: lo.Map(hwy.Widths(), func(w hwy.Width, _ int) string { return w.String() }),
		}
		for i, s := range suites {
			got := s.eval()
			result.Compared += len(got)
			bad := lo.CountBy(lo.Range(len(got)), func(j int) bool {
				return got[j] != baseline[i][j]
			})
			if bad > 0 {
				result.Mismatches += bad
				result.Failed = append(result.Failed, s.name)
			}
		}
		restore()
		report.Levels = append(report.Levels, result)
	}
	return report
}

func runCheck(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	samples, _ := cmd.Flags().GetInt("samples")
	seed, _ := cmd.Flags().GetUint64("seed")
	if samples <= 0 {
		return fmt.Errorf("samples must be positive, got %d", samples)
	}

	report := selfCheck(samples, seed)
	out := cmd.OutOrStdout()
	err := writeReport(cmd, format, report, func() {
		fmt.Fprintf(out, "%d samples per suite, seed %d\n", report.Samples, report.Seed)
		for _, l := range report.Levels {
			status := "ok"
			if l.Mismatches > 0 {
				status = fmt.Sprintf("%d mismatches in %s", l.Mismatches, strings.Join(l.Failed, ", "))
			}
			fmt.Fprintf(out, "%-8s %-22s %8d results  %s\n", l.Level, strings.Join(l.Widths, ","), l.Compared, status)
		}
	})
	if err != nil {
		return err
	}
	if !report.OK() {
		return errMismatch
	}
	return nil
}
