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

// Package eval defines the Evaluator contract the search core consumes
// — a pure function from Position to a relative centipawn score — and
// ships one concrete implementation (a PeSTO-style tapered
// piece-square evaluator) plus the static exchange evaluator search
// uses for capture ordering and pruning.
package eval

import (
	"fmt"
	"math"

	"github.com/corvidchess/corvid/pkg/board"
)

// Evaluator is the evaluation collaborator the search core depends
// on: any pure function from a Position to a relative Eval satisfies
// it, whether a hand-crafted piece-square function, a tuned classical
// evaluation, or an NNUE forward pass wired in later. The search core
// itself never depends on which.
type Evaluator func(p *board.Position) Eval

// Eval is a relative centipawn evaluation: positive favors the side
// to move, negative favors the opponent.
type Eval int32

// basic and derived evaluation bounds. WinInMaxPly/LoseInMaxPly mark
// the boundary between "mate in N" scores and ordinary centipawn
// scores, offset far enough from Mate that no search ever reaches
// that many plies.
const (
	Inf  Eval = math.MaxInt32 / 2
	Mate Eval = Inf - 1
	Draw Eval = 0

	WinInMaxPly  Eval = Mate - 2*1024
	LoseInMaxPly Eval = -WinInMaxPly

	// MateBound is the score a search claiming "mate found" must clear:
	// anything above it can only be a forced mate, never a material
	// evaluation.
	MateBound Eval = WinInMaxPly
)

// MatedIn returns the evaluation of being checkmated in ply plies from
// the root, preferring the longer line (a higher, less-negative
// score) when more than one mate is available.
func MatedIn(ply int) Eval {
	return -Mate + Eval(ply)
}

// MateIn returns the evaluation of delivering checkmate in ply plies.
func MateIn(ply int) Eval {
	return Mate - Eval(ply)
}

// RandDraw returns a small nonzero draw score derived from seed (the
// search's node count is the usual seed), so that repeated draws
// along a search don't all collapse onto the exact same score and
// blind the search to repetitions it should be steering away from or
// towards.
func RandDraw(seed int) Eval {
	return Eval(8 - (seed & 7))
}

// String renders the Eval as a UCI score token: "cp <n>" for ordinary
// scores, "mate <n>" for forced mates (negative n means the side to
// move is mated).
func (e Eval) String() string {
	switch {
	case e > WinInMaxPly:
		plies := Mate - e
		return fmt.Sprintf("mate %d", (plies+1)/2)
	case e < LoseInMaxPly:
		plies := -Mate - e
		return fmt.Sprintf("mate %d", (plies-1)/2)
	default:
		return fmt.Sprintf("cp %d", e)
	}
}
