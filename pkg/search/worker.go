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

// Package search implements the alpha-beta search core: iterative
// deepening driving a principal-variation negamax search with a
// quiescence leaf, backed by the shared transposition table and a
// per-worker set of move-ordering heuristics. A Worker is the unit
// pkg/threads assigns one of to each search thread; this package itself
// runs a single worker synchronously and is usable standalone.
package search

import (
	"sync/atomic"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/history"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
	"github.com/corvidchess/corvid/pkg/tt"
)

// Worker runs one sequential alpha-beta search over its own Position.
// Its heuristic tables and search stack are private; only the
// transposition table is shared with sibling workers.
type Worker struct {
	ID int

	Pos  *board.Position
	TT   *tt.Table
	Eval eval.Evaluator

	Tables history.Tables

	Time TimeManager

	stop *atomic.Bool // shared across every worker in the pool

	Stats Stats

	limits    Limits
	rootDepth int
	report    func(Info)

	// SkipSize/SkipPhase implement Lazy-SMP depth skipping: a
	// non-main worker omits iteration depth d whenever
	// (d+SkipPhase)%SkipSize == 0, so sibling workers spend their
	// effort on different depths and diversify the shared TT's fill
	// pattern instead of duplicating the main thread's schedule.
	// The zero value (SkipSize == 0) skips nothing.
	SkipSize  int
	SkipPhase int

	// search stack: per-ply scratch state. moved/to name the piece and
	// destination square played to reach ply+1, the key the
	// counter-move table reads with; cont is the continuation-history
	// table that ply's (in-check, is-capture) context selected.
	moved      [MaxPly]piece.Piece
	to         [MaxPly]square.Square
	cont       [MaxPly]*history.Continuation
	staticEval [MaxPly]eval.Eval
}

// NewWorker constructs a Worker over pos sharing table and stop with
// the rest of its pool (a solo caller may pass a fresh, unshared
// *atomic.Bool).
func NewWorker(id int, pos *board.Position, table *tt.Table, evaluator eval.Evaluator, stop *atomic.Bool) *Worker {
	return &Worker{
		ID:   id,
		Pos:  pos,
		TT:   table,
		Eval: evaluator,
		stop: stop,
	}
}

// Stop requests that the worker unwind at its next node boundary.
func (w *Worker) Stop() { w.stop.Store(true) }

// Stopped reports whether the worker's stop flag has been raised.
func (w *Worker) Stopped() bool { return w.stop.Load() }

// score returns the static evaluation of the worker's current
// position. Any future change of evaluator should happen here.
func (w *Worker) score() eval.Eval {
	return w.Eval(w.Pos)
}

// draw returns a small nonzero draw score seeded by the node count, to
// prevent the search from treating every repetition identically.
func (w *Worker) draw() eval.Eval {
	return eval.RandDraw(int(w.Stats.Nodes.Load()))
}

// shouldStop checks the shared stop flag on every call, but polls the
// node limit and the time manager only once every 4096 nodes: checking more often wastes time on the common
// path, checking less risks overrunning the time budget noticeably.
func (w *Worker) shouldStop() bool {
	switch {
	case w.Stopped():
		return true

	case w.Stats.Nodes.Load()&4095 != 0, w.limits.Infinite:
		return false

	case w.limits.Nodes != 0 && w.Stats.Nodes.Load() > w.limits.Nodes:
		w.Stop()
		return true

	case w.Time != nil && w.Time.Elapsed() >= w.Time.Maximum():
		w.Stop()
		return true

	default:
		return false
	}
}

// continuations gathers the continuation-history tables for the
// moves played 1, 2, and 4 plies before ply, nearest first, skipping
// any that don't exist yet near the root. These are the tables the
// move picker sums a quiet move's continuation-history score across.
func (w *Worker) continuations(ply int) []*history.Continuation {
	var out []*history.Continuation
	for _, back := range [...]int{1, 2, 4} {
		i := ply - back
		if i < 0 {
			continue
		}
		out = append(out, w.cont[i])
	}
	return out
}

// lastMove reports the piece and destination square played at ply-1,
// the counter-move table's lookup key for the move about to be chosen
// at ply. At the root (ply == 0) there is no previous move, so the
// zero values are returned, which the table treats as simply never
// having seen that key.
func (w *Worker) lastMove(ply int) (piece.Piece, square.Square) {
	if ply == 0 {
		return piece.NoPiece, square.A1
	}
	return w.moved[ply-1], w.to[ply-1]
}

// pastStaticEval reports the static eval recorded two plies ago (the
// last time this same side was to move), used to decide whether the
// position has been improving across its own last two moves.
func (w *Worker) pastStaticEval(ply int) eval.Eval {
	if ply < 2 {
		return -eval.Inf
	}
	return w.staticEval[ply-2]
}
