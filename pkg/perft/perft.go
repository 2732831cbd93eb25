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

// Package perft counts the leaf nodes of the legal-move tree below a
// position to a fixed depth, the standard cross-check that make/
// unmake, the legality masks, and the generator agree with each other
// and with the rules of chess. It is a diagnostic, not part of the
// search core: the non-goal the specification names is a self-test
// driver wired to a command, not the counting routine itself, which
// the test suite and cmd/perft both need.
package perft

import (
	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/move"
	"github.com/corvidchess/corvid/pkg/movegen"
)

// Count returns the number of leaf positions reachable from p in
// exactly depth plies.
func Count(p *board.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	moves := movegen.GenerateAll(p)
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		p.Make(m)
		nodes += Count(p, depth-1)
		p.Unmake()
	}
	return nodes
}

// Divide returns the leaf count contributed by each of p's immediate
// legal moves, the standard way to bisect a perft mismatch down to the
// offending subtree.
func Divide(p *board.Position, depth int) map[move.Move]uint64 {
	counts := make(map[move.Move]uint64)
	if depth == 0 {
		return counts
	}

	for _, m := range movegen.GenerateAll(p) {
		p.Make(m)
		counts[m] = Count(p, depth-1)
		p.Unmake()
	}
	return counts
}
