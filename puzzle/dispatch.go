// Copyright 2026 puzzle24 Authors
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

package puzzle

import (
	"os"
	"strconv"
)

// DispatchLevel names the vector instruction level the CPU offers for
// permutation composition in Morph/Transpose, as detected at runtime.
// Only the scalar kernel is implemented in this module: whatever the
// level, composePermutation32Impl is the scalar reference kernel.
type DispatchLevel int

const (
	// DispatchScalar: no usable vector extension was detected, or
	// PUZZLE24_NO_SIMD requested the scalar fallback.
	DispatchScalar DispatchLevel = iota

	// DispatchSSSE3: the amd64 CPU supports SSSE3 (16-byte pshufb
	// shuffles) but not AVX2.
	DispatchSSSE3

	// DispatchAVX2: the amd64 CPU supports AVX2 (32-byte shuffles,
	// wide enough for a whole tiles/grid array).
	DispatchAVX2

	// DispatchNEON: the arm64 CPU supports NEON (ASIMD) table lookups.
	DispatchNEON
)

func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSSE3:
		return "ssse3"
	case DispatchAVX2:
		return "avx2"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// currentLevel is the detected dispatch level for this runtime. Set by
// init() in dispatch_*.go files.
var currentLevel DispatchLevel

// CurrentLevel returns the detected dispatch level. It reports CPU
// capability; the composition kernel in use is always the scalar one.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// HasSIMD reports whether the detected dispatch level is above
// DispatchScalar, i.e. whether the CPU offers a vector extension that
// is not disabled by PUZZLE24_NO_SIMD. It does not mean a vectorized
// kernel runs.
func HasSIMD() bool {
	return currentLevel != DispatchScalar
}

// NoSimdEnv reports whether PUZZLE24_NO_SIMD requests the scalar
// fallback regardless of detected CPU features. Useful for testing the
// reference kernel and for diagnosing a SIMD/scalar mismatch.
func NoSimdEnv() bool {
	val := os.Getenv("PUZZLE24_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// composePermutation32Impl composes two 32-entry permutation vectors:
// result[i] = p[q[i]] for i in 0..31. Entries at or beyond TileCount
// are don't-care padding, matching the 32-wide alignment padding used
// by the automorphism tables (aligned for a future vectorized
// implementation operating on whole tiles/grid arrays at once).
//
// It is bound to composePermutation32Scalar, the DispatchScalar
// reference kernel; no dispatch_*.go file rebinds it. A vectorized
// replacement must reproduce the scalar kernel's output bit for bit.
var composePermutation32Impl = composePermutation32Scalar

func composePermutation32Scalar(p, q *[32]uint8) (r [32]uint8) {
	for i := 0; i < 32; i++ {
		r[i] = p[q[i]]
	}
	return r
}
