package hwy

import (
	"os"
	"strconv"
)

// DispatchLevel represents the current SIMD instruction set being used.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD, pure Go implementation.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 instructions (x86-64 baseline).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 instructions (256-bit SIMD).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 instructions (512-bit SIMD).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON instructions (128-bit SIMD).
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// Width returns the widest register width of the level.
// DispatchScalar reports Width128 so lane counts stay meaningful, but it
// has no accelerated widths (see Widths).
func (d DispatchLevel) Width() Width {
	switch d {
	case DispatchAVX512:
		return Width512
	case DispatchAVX2:
		return Width256
	default:
		return Width128
	}
}

// AllLevels lists every dispatch level, scalar first.
// Register operations are portable Go, so any level can be forced with
// SetLevel regardless of the host CPU.
func AllLevels() []DispatchLevel {
	return []DispatchLevel{DispatchScalar, DispatchSSE2, DispatchAVX2, DispatchAVX512, DispatchNEON}
}

// currentLevel is the detected SIMD level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// currentWidth is the SIMD register width in bytes for the current level.
var currentWidth int

// currentName is the human-readable name of the current SIMD level.
var currentName string

// currentWidths holds the accelerated register widths, widest first.
var currentWidths []Width

// maxWidth caps detected widths; zero means no cap. Read from HWY_MAX_WIDTH.
var maxWidth = MaxWidthEnv()

// CurrentLevel returns the SIMD instruction set being used.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the SIMD register width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the current SIMD target.
// For example: "avx2", "neon", "scalar".
func CurrentName() string {
	return currentName
}

// Widths returns the register widths available at the current level, widest
// first. It is empty in scalar mode. The returned slice must not be modified.
func Widths() []Width {
	return currentWidths
}

// SetLevel forces the dispatch level and returns a function restoring the
// previous one. It is meant for tests and diagnostics and must not be called
// concurrently with kernel operations.
func SetLevel(level DispatchLevel) (restore func()) {
	prevLevel, prevWidth, prevName, prevWidths := currentLevel, currentWidth, currentName, currentWidths
	setLevel(level)
	return func() {
		currentLevel, currentWidth, currentName, currentWidths = prevLevel, prevWidth, prevName, prevWidths
	}
}

func setLevel(level DispatchLevel) {
	top := level.Width()
	if maxWidth != 0 && top > maxWidth {
		top = maxWidth
	}

	currentLevel = level
	currentWidth = top.Bytes()
	currentName = level.String()
	currentWidths = nil
	if level == DispatchScalar {
		return
	}
	for w := top; w >= Width128; w /= 2 {
		currentWidths = append(currentWidths, w)
	}
}

func setScalarMode() {
	setLevel(DispatchScalar)
}

// NoSimdEnv checks if the HWY_NO_SIMD environment variable is set.
// When set, dispatch uses the scalar fallback regardless of CPU capabilities.
// This is useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("HWY_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// MaxWidthEnv parses HWY_MAX_WIDTH (128, 256 or 512 bits). Unset or invalid
// values mean no cap and yield zero.
func MaxWidthEnv() Width {
	val := os.Getenv("HWY_MAX_WIDTH")
	if val == "" {
		return 0
	}
	bits, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	switch w := Width(bits); w {
	case Width128, Width256, Width512:
		return w
	default:
		return 0
	}
}
