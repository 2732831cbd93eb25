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

// Package history holds the per-worker move-ordering heuristic tables
// consulted by the move picker: killers, a counter-move table, a
// gravity-updated history table, a capture history, and a
// continuation history. None of it is shared between search workers,
// so every table here is a plain value owned by one thread.
package history

import (
	"golang.org/x/exp/constraints"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/move"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
)

// maxPly bounds the killer table and the search stack it indexes;
// kept in sync with board.MaxPly, which bounds the state arena the
// same way.
const maxPly = board.MaxPly

// clamp restricts v to [-bound, bound], the shape every gravity
// update in this package needs before applying itself.
func clamp[T constraints.Signed](v, bound T) T {
	switch {
	case v > bound:
		return bound
	case v < -bound:
		return -bound
	default:
		return v
	}
}

// gravity applies the bounded exponential-decay update used by every
// table in this package: e ← e + bonus − e·|bonus|/limit. Moves that
// keep causing cutoffs saturate toward +limit; moves that stop
// causing them decay back down, instead of growing without bound.
func gravity[T constraints.Signed](entry T, bonus, limit T) T {
	bonus = clamp(bonus, limit)
	return entry + bonus - T(int64(entry)*int64(abs(bonus))/int64(limit))
}

func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// historyLimit bounds every quiet/capture history cell; StatBonus
// never produces a bonus outside this range, so no single update can
// swing a cell by more than a small fraction of it.
const historyLimit = 16384

// Killers holds the two highest-priority quiet moves that have
// caused a beta cutoff at each ply, tried before the rest of the
// quiet-move list.
type Killers struct {
	table [maxPly][2]move.Move
}

// Probe returns the ply's two killer moves, move.None where absent.
func (k *Killers) Probe(ply int) (first, second move.Move) {
	return k.table[ply][0], k.table[ply][1]
}

// Update records m as the new primary killer at ply, demoting the
// previous primary killer to secondary. Captures are never stored:
// they are already ordered by MVV-LVA and SEE, and killers exist to
// promote quiets that would otherwise sort late.
func (k *Killers) Update(ply int, m move.Move) {
	if m == k.table[ply][0] {
		return
	}
	k.table[ply][1] = k.table[ply][0]
	k.table[ply][0] = m
}

func (k *Killers) Clear() { *k = Killers{} }

// CounterMoves indexes by the opponent's last-played (piece, to)
// pair and names the quiet reply that has most recently refuted it.
type CounterMoves struct {
	table [piece.N][square.N]move.Move
}

func (c *CounterMoves) Probe(lastMoved piece.Piece, lastTo square.Square) move.Move {
	return c.table[lastMoved][lastTo]
}

func (c *CounterMoves) Update(lastMoved piece.Piece, lastTo square.Square, reply move.Move) {
	c.table[lastMoved][lastTo] = reply
}

func (c *CounterMoves) Clear() { *c = CounterMoves{} }

// Quiet is the main history table, indexed by (side to move, whether
// the move's source square was attacked, whether its destination was
// attacked, from, to) — the richer five-key shape used by quiet-move
// ordering generally, over the plain (piece, to) table some simpler
// engines use.
type Quiet struct {
	table [piece.NColor][2][2][square.N][square.N]int16
}

func (q *Quiet) probe(us piece.Color, threatFrom, threatTo bool, from, to square.Square) *int16 {
	return &q.table[us][boolIndex(threatFrom)][boolIndex(threatTo)][from][to]
}

func (q *Quiet) Probe(us piece.Color, threatFrom, threatTo bool, from, to square.Square) int16 {
	return *q.probe(us, threatFrom, threatTo, from, to)
}

func (q *Quiet) Update(us piece.Color, threatFrom, threatTo bool, from, to square.Square, bonus int16) {
	e := q.probe(us, threatFrom, threatTo, from, to)
	*e = gravity(*e, bonus, int16(historyLimit))
}

func (q *Quiet) Clear() { *q = Quiet{} }

// Capture is the capture-history table, indexed by (moving piece,
// whether its source was attacked, whether its destination was
// attacked, to, captured type).
type Capture struct {
	table [piece.N][2][2][square.N][piece.NType]int16
}

func (c *Capture) probe(moved piece.Piece, threatFrom, threatTo bool, to square.Square, captured piece.Type) *int16 {
	return &c.table[moved][boolIndex(threatFrom)][boolIndex(threatTo)][to][captured]
}

func (c *Capture) Probe(moved piece.Piece, threatFrom, threatTo bool, to square.Square, captured piece.Type) int16 {
	return *c.probe(moved, threatFrom, threatTo, to, captured)
}

func (c *Capture) Update(moved piece.Piece, threatFrom, threatTo bool, to square.Square, captured piece.Type, bonus int16) {
	e := c.probe(moved, threatFrom, threatTo, to, captured)
	*e = gravity(*e, bonus, int16(historyLimit))
}

func (c *Capture) Clear() { *c = Capture{} }

// Continuation scores a quiet move against one ancestor ply's (piece,
// to), keyed by that ancestor's in-check/is-capture status. The
// picker sums several of these — typically for the 1-, 2-, and
// 4-ply-ago moves — to get a move's continuation-history contribution.
type Continuation struct {
	table [2][2][piece.N][square.N]int16
}

func (c *Continuation) probe(wasInCheck, wasCapture bool, moved piece.Piece, to square.Square) *int16 {
	return &c.table[boolIndex(wasInCheck)][boolIndex(wasCapture)][moved][to]
}

func (c *Continuation) Probe(wasInCheck, wasCapture bool, moved piece.Piece, to square.Square) int16 {
	return *c.probe(wasInCheck, wasCapture, moved, to)
}

func (c *Continuation) Update(wasInCheck, wasCapture bool, moved piece.Piece, to square.Square, bonus int16) {
	e := c.probe(wasInCheck, wasCapture, moved, to)
	*e = gravity(*e, bonus, int16(historyLimit))
}

func (c *Continuation) Clear() { *c = Continuation{} }

// ContinuationTables is a 2×2 grid of Continuation tables, one per
// combination of in-check/is-capture at the ply the move was played,
// so the picker can reach back to the move played N plies ago and
// score the current move's continuation against it.
type ContinuationTables struct {
	// indexed [wasInCheck][wasCapture]
	tables [2][2]Continuation
}

func (c *ContinuationTables) Table(wasInCheck, wasCapture bool) *Continuation {
	return &c.tables[boolIndex(wasInCheck)][boolIndex(wasCapture)]
}

func (c *ContinuationTables) Clear() { *c = ContinuationTables{} }

func boolIndex(b bool) int {
	if b {
		return 1
	}
	return 0
}

// StatBonus is the depth-scaled bonus/malefice applied on a beta
// cutoff: the move that caused it is rewarded, moves tried and
// rejected before it are penalized by the same magnitude.
func StatBonus(depth int) int16 {
	bonus := depth * 155
	if bonus > 2000 {
		bonus = 2000
	}
	return int16(bonus)
}

// Tables bundles one worker's complete set of move-ordering
// heuristics, the unit pkg/threads hands one of to each worker and
// pkg/search/pick reads from on every node.
type Tables struct {
	Killers      Killers
	Counters     CounterMoves
	Quiet        Quiet
	Capture      Capture
	Continuation ContinuationTables
}

func (t *Tables) Clear() {
	t.Killers.Clear()
	t.Counters.Clear()
	t.Quiet.Clear()
	t.Capture.Clear()
	t.Continuation.Clear()
}
