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

// Command hwyinfo reports how vector kernels dispatch on this machine and
// checks every dispatch level against the scalar baseline.
//
// Usage:
//
//	hwyinfo info                  # detected level and the width chosen per shape
//	hwyinfo info --format yaml
//	hwyinfo check --samples 5000  # compare every level with the scalar loop
//
// HWY_NO_SIMD and HWY_MAX_WIDTH apply as in package hwy. Flag defaults may
// also be set with HWYINFO_FORMAT, HWYINFO_SAMPLES and HWYINFO_SEED.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hwyinfo",
		Short: "Inspect fixed vector kernel dispatch",
		Long: `hwyinfo shows the dispatch level detected for this CPU, the register
width the kernels select for each vector shape, and verifies that every
dispatch level computes the same results as the scalar loop.`,
		SilenceUsage: true,
	}

	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "Print dispatch level and per-shape width plans",
		RunE:  runInfo,
	}
	infoCmd.Flags().String("format", getEnvStr("HWYINFO_FORMAT", "text"), "Output format: text or yaml")
	infoCmd.Flags().String("level", "", "Force a dispatch level ("+levelNames()+")")
	rootCmd.AddCommand(infoCmd)

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Compare every dispatch level with the scalar baseline",
		RunE:  runCheck,
	}
	checkCmd.Flags().String("format", getEnvStr("HWYINFO_FORMAT", "text"), "Output format: text or yaml")
	checkCmd.Flags().Int("samples", getEnvInt("HWYINFO_SAMPLES", 1000), "Random vectors per shape and scalar type")
	checkCmd.Flags().Uint64("seed", getEnvUint64("HWYINFO_SEED", 1), "Random seed")
	rootCmd.AddCommand(checkCmd)

	return rootCmd
}

// writeReport prints report as YAML or with the text renderer.
func writeReport(cmd *cobra.Command, format string, report any, text func()) error {
	switch format {
	case "yaml":
		data, err := yaml.Marshal(report)
		if err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		if _, err := cmd.OutOrStdout().Write(data); err != nil {
			return err
		}
	case "text":
		text()
	default:
		return fmt.Errorf("unknown format %q (want text or yaml)", format)
	}
	return nil
}

// getEnvStr returns environment variable or default
func getEnvStr(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// getEnvInt returns environment variable as int or default
func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// getEnvUint64 returns environment variable as uint64 or default
func getEnvUint64(key string, defaultVal uint64) uint64 {
	if val := os.Getenv(key); val != "" {
		if u, err := strconv.ParseUint(val, 10, 64); err == nil {
			return u
		}
	}
	return defaultVal
}
