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

// Command vecgen generates the fixed vector types of package vector, one file
// per lane count.
//
// Usage:
//
//	vecgen -output hwy/contrib/vector -dims 2,3,4,5
//
// Or via go:generate:
//
//	//go:generate go run ../../../cmd/vecgen -output . -dims 2,3,4,5
//
// Each vectorN.gen.go file declares VectorN[T] with its constructors, its
// operator methods backed by package kernel, and the per-lane-count functions
// whose scalar type needs a narrower constraint.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
)

var (
	outputDir  = flag.String("output", ".", "Output directory (default: current directory)")
	dims       = flag.String("dims", "2,3,4,5", "Comma-separated lane counts to generate (2 to 5)")
	packageOut = flag.String("pkg", "vector", "Output package name")
)

func main() {
	flag.Parse()

	dimList, err := parseDims(*dims)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		flag.Usage()
		os.Exit(1)
	}

	gen := &Generator{
		OutputDir:  *outputDir,
		PackageOut: *packageOut,
		Dims:       dimList,
	}
	files, err := gen.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated %s\n", strings.Join(files, ", "))
}

// parseDims parses a comma-separated list of lane counts in [2, 5].
func parseDims(s string) ([]int, error) {
	var result []int
	seen := make(map[int]bool)
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid lane count %q: %w", p, err)
		}
		if n < 2 || n > 5 {
			return nil, fmt.Errorf("lane count %d not in [2, 5]", n)
		}
		if !seen[n] {
			seen[n] = true
			result = append(result, n)
		}
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("no lane counts specified")
	}
	return result, nil
}
