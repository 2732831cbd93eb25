// Copyright © 2024 The Corvid Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package search

import "math/bits"

// reductions holds the late-move-reduction table, indexed by [depth][moveNumber].
var reductions [MaxDepth + 1][128]int

func init() {
	log := func(n int) int {
		// fast log2 approximation
		return 63 - bits.LeadingZeros64(uint64(n))
	}

	for depth := 1; depth <= MaxDepth; depth++ {
		for moves := 1; moves < 128; moves++ {
			reductions[depth][moves] = 1 + log(depth)*log(moves)/2
		}
	}
}

// lateMoveReduction computes R(depth, moveIndex, improving, pv), the
// number of plies the main loop shaves off a late quiet move before
// searching it, clamped so it never produces a negative depth and
// never reduces less than a PV/improving move deserves.
func lateMoveReduction(depth, moveIndex int, improving, pv bool) int {
	if depth < 1 {
		depth = 1
	}
	if moveIndex >= 127 {
		moveIndex = 127
	}

	r := reductions[depth][moveIndex]
	if pv {
		r--
	}
	if !improving {
		r++
	}
	if r < 0 {
		r = 0
	}
	return r
}

// lateMovePruningThreshold bounds how many quiets are tried at a
// shallow depth before the rest of the quiet list is skipped outright.
func lateMovePruningThreshold(depth int, improving bool) int {
	if improving {
		return 5 + depth*depth
	}
	return 3 + depth*depth/2
}
