//go:build arm64

package hwy

import "golang.org/x/sys/cpu"

func init() {
	// Check for HWY_NO_SIMD environment variable first
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	// ARM64 (AArch64) always has NEON (ASIMD) available as part of the
	// ARMv8-A base architecture. SVE vector lengths are not fixed at build
	// time, so registers stay at the 128-bit NEON width.
	if cpu.ARM64.HasASIMD {
		setLevel(DispatchNEON)
	} else {
		setScalarMode()
	}
}
