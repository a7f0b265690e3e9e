package hwy

import (
	"os"
	"strconv"
	"unsafe"
)

// DispatchLevel identifies the instruction set whose register width sizes
// every Vec. The lane ops themselves are portable; only the width varies.
type DispatchLevel int

const (
	DispatchScalar DispatchLevel = iota // no SIMD detected or HWY_NO_SIMD set
	DispatchSSE2                        // x86-64 baseline, 128-bit
	DispatchAVX2                        // 256-bit
	DispatchAVX512                      // AVX-512F, 512-bit
	DispatchNEON                        // ARM ASIMD, 128-bit
)

var levelInfo = [...]struct {
	name  string
	width int // bytes
}{
	DispatchScalar: {"scalar", 16},
	DispatchSSE2:   {"sse2", 16},
	DispatchAVX2:   {"avx2", 32},
	DispatchAVX512: {"avx512", 64},
	DispatchNEON:   {"neon", 16},
}

func (d DispatchLevel) valid() bool { return d >= 0 && int(d) < len(levelInfo) }

// String returns the lower-case target name, e.g. "avx2".
func (d DispatchLevel) String() string {
	if !d.valid() {
		return "unknown"
	}
	return levelInfo[d].name
}

// Width returns the register width of the level in bytes. The scalar level
// keeps a 16-byte width so code sized by MaxLanes behaves the same with and
// without SIMD.
func (d DispatchLevel) Width() int {
	if !d.valid() {
		return levelInfo[DispatchScalar].width
	}
	return levelInfo[d].width
}

// current is chosen once by the init function of dispatch_<arch>.go.
var current = DispatchScalar

// CurrentLevel returns the detected dispatch level.
func CurrentLevel() DispatchLevel { return current }

// CurrentWidth returns the register width in bytes: 16 for SSE2, NEON and
// scalar, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int { return current.Width() }

// CurrentName returns the name of the current level, e.g. "avx2".
func CurrentName() string { return current.String() }

// NoSimdEnv reports whether HWY_NO_SIMD is set. Any value other than one
// strconv.ParseBool reads as false forces the scalar level.
func NoSimdEnv() bool {
	val, ok := os.LookupEnv("HWY_NO_SIMD")
	if !ok || val == "" {
		return false
	}
	b, err := strconv.ParseBool(val)
	return err != nil || b
}

// MaxLanes returns the lane count of a full register of T at the current
// width, capped at MaxVecLanes.
//
// With AVX2 (32 bytes) that is 8 float32 lanes or 4 float64 lanes.
func MaxLanes[T Floats]() int {
	var zero T
	return min(CurrentWidth()/int(unsafe.Sizeof(zero)), MaxVecLanes)
}

// selectLevel picks the level, honoring HWY_NO_SIMD.
func selectLevel(detected DispatchLevel) {
	if NoSimdEnv() {
		detected = DispatchScalar
	}
	current = detected
}
