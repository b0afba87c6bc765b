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
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/hwyvec/hwy"
	"github.com/ajroetker/hwyvec/hwy/contrib/kernel"
	"github.com/ajroetker/hwyvec/hwy/contrib/shape"
)

// InfoReport describes the dispatch configuration.
type InfoReport struct {
	Level    string    `yaml:"level"`
	Bytes    int       `yaml:"register_bytes"`
	Widths   []string  `yaml:"widths"`
	NoSIMD   bool      `yaml:"no_simd"`
	MaxWidth string    `yaml:"max_width,omitempty"`
	Plans    []PlanRow `yaml:"plans"`
}

// PlanRow is the register width used for one vector shape.
type PlanRow struct {
	Type  string `yaml:"type"`
	Lanes int    `yaml:"lanes"`
	// Width is a register width, "scalar", or an error message.
	Width         string `yaml:"width"`
	RegisterLanes int    `yaml:"register_lanes,omitempty"`
}

func levelNames() string {
	return strings.Join(lo.Map(hwy.AllLevels(), func(l hwy.DispatchLevel, _ int) string {
		return l.String()
	}), ", ")
}

// parseLevel looks up a dispatch level by name.
func parseLevel(name string) (hwy.DispatchLevel, error) {
	level, ok := lo.Find(hwy.AllLevels(), func(l hwy.DispatchLevel) bool {
		return l.String() == strings.ToLower(name)
	})
	if !ok {
		return 0, fmt.Errorf("unknown level %q (want one of %s)", name, levelNames())
	}
	return level, nil
}

func planRow[V shape.Fixed[T], T hwy.Lanes](typeName string) PlanRow {
	row := PlanRow{Type: typeName, Lanes: shape.Len[V, T](), Width: "scalar"}
	k, err := kernel.NewBinary[V, T](kernel.Add[T]{})
	if err != nil {
		row.Width = err.Error()
		return row
	}
	if w, ok := k.Width(); ok {
		row.Width = w.String()
		row.RegisterLanes = hwy.LanesOf[T](w)
	}
	return row
}

func planRows[T hwy.Lanes](typeName string) []PlanRow {
	return []PlanRow{
		planRow[[2]T, T](typeName),
		planRow[[3]T, T](typeName),
		planRow[[4]T, T](typeName),
		planRow[[5]T, T](typeName),
	}
}

// buildInfo reports the current dispatch configuration.
func buildInfo() InfoReport {
	report := InfoReport{
		Level:  hwy.CurrentName(),
		Bytes:  hwy.CurrentWidth(),
		Widths: lo.Map(hwy.Widths(), func(w hwy.Width, _ int) string { return w.String() }),
		NoSIMD: hwy.NoSimdEnv(),
	}
	if w := hwy.MaxWidthEnv(); w != 0 {
		report.MaxWidth = w.String()
	}
	report.Plans = lo.Flatten([][]PlanRow{
		planRows[float32]("float32"),
		planRows[float64]("float64"),
		planRows[int8]("int8"),
		planRows[int16]("int16"),
		planRows[int32]("int32"),
		planRows[int64]("int64"),
		planRows[uint8]("uint8"),
		planRows[uint16]("uint16"),
		planRows[uint32]("uint32"),
		planRows[uint64]("uint64"),
	})
	return report
}

func runInfo(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	levelName, _ := cmd.Flags().GetString("level")

	if levelName != "" {
		level, err := parseLevel(levelName)
		if err != nil {
			return err
		}
		defer hwy.SetLevel(level)()
	}

	report := buildInfo()
	out := cmd.OutOrStdout()
	return writeReport(cmd, format, report, func() {
		fmt.Fprintf(out, "level:      %s\n", report.Level)
		fmt.Fprintf(out, "register:   %d bytes\n", report.Bytes)
		fmt.Fprintf(out, "widths:     %s\n", lo.Ternary(len(report.Widths) == 0, "none", strings.Join(report.Widths, ", ")))
		if report.NoSIMD {
			fmt.Fprintln(out, "HWY_NO_SIMD is set")
		}
		if report.MaxWidth != "" {
			fmt.Fprintf(out, "max width:  %s\n", report.MaxWidth)
		}
		fmt.Fprintln(out)
		fmt.Fprintf(out, "%-8s %5s  %s\n", "type", "lanes", "width")
		for _, p := range report.Plans {
			width := p.Width
			if p.RegisterLanes > 0 {
				width = fmt.Sprintf("%s (%d lanes)", p.Width, p.RegisterLanes)
			}
			fmt.Fprintf(out, "%-8s %5d  %s\n", p.Type, p.Lanes, width)
		}
	})
}
