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

//go:build amd64

package puzzle

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		currentLevel = DispatchScalar
		return
	}

	switch {
	case cpu.X86.HasAVX2:
		currentLevel = DispatchAVX2
	case cpu.X86.HasSSSE3:
		currentLevel = DispatchSSSE3
	default:
		currentLevel = DispatchScalar
	}

	// No cgo/asm toolchain is available to this module at build time
	// (see DESIGN.md: gorse-io/goat was dropped), so the vectorized
	// kernels are not wired up yet; composePermutation32Impl stays the
	// scalar reference. currentLevel still reports the CPU's true
	// capability so callers and diagnostics are accurate, and a future
	// asm-backed implementation only needs to replace
	// composePermutation32Impl, not this detection logic.
}
