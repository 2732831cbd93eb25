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

import (
	"time"

	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/move"
)

// Info is one iteration's worth of iterative-deepening progress,
// handed to the worker's Report callback so pkg/uci can format it as
// a UCI "info" line without this package depending on the UCI layer.
type Info struct {
	Depth    int
	SelDepth int
	Score    eval.Eval
	Nodes    uint64
	Time     time.Duration
	PV       move.Variation
}

// Report, if set, is called once per completed iterative-deepening
// iteration. A nil Report is silently skipped, the shape a standalone
// caller (tests, pkg/perft-style tools) wants.
func (w *Worker) SetReport(fn func(Info)) { w.report = fn }

// Search runs iterative deepening from the worker's current position
// under limits, returning the deepest complete iteration's principal
// variation and score. The caller is responsible for having set
// w.Pos to the position to search and w.Time to a started time
// manager (nil disables the time-based stop condition, leaving Nodes/
// Depth/Infinite as the only limits in effect).
func (w *Worker) Search(limits Limits) (move.Variation, eval.Eval) {
	w.limits = limits
	w.Stats.reset()
	w.TT.NewSearch()

	start := time.Now()

	maxDepth := limits.Depth
	if maxDepth <= 0 || maxDepth > MaxDepth {
		maxDepth = MaxDepth
	}

	var pv move.Variation
	var score eval.Eval

	for depth := 1; depth <= maxDepth; depth++ {
		if depth > 1 && w.SkipSize > 1 && (depth+w.SkipPhase)%w.SkipSize == 0 {
			continue
		}

		w.rootDepth = depth

		childScore, childPV := w.aspirationWindow(depth, score)

		if w.Stopped() {
			break
		}

		score, pv = childScore, childPV
		w.Stats.CompletedDepth = depth

		if w.report != nil {
			w.report(Info{
				Depth:    depth,
				SelDepth: w.Stats.SelDepth,
				Score:    score,
				Nodes:    w.Stats.Nodes.Load(),
				Time:     time.Since(start),
				PV:       pv,
			})
		}

		if w.Time != nil && !limits.Infinite && time.Since(start) >= w.Time.Optimum() {
			break
		}
	}

	return pv, score
}

// aspirationWindow searches depth with a narrow window centered on
// the previous iteration's score, widening and re-searching whenever
// the result falls outside it. Shallow iterations (depth < 5) just
// use the full window, since there isn't yet a reliable guess to
// center one on.
func (w *Worker) aspirationWindow(depth int, prevScore eval.Eval) (eval.Eval, move.Variation) {
	alpha, beta := -eval.Inf, eval.Inf
	window := eval.Eval(12)

	if depth >= 5 {
		alpha = clampEval(prevScore-window, -eval.Inf, eval.Inf)
		beta = clampEval(prevScore+window, -eval.Inf, eval.Inf)
	}

	searchDepth := depth

	for {
		if w.shouldStop() {
			return 0, move.Variation{}
		}

		var pv move.Variation
		result := w.negamax(0, searchDepth, alpha, beta, &pv, false)

		switch {
		case result <= alpha:
			beta = (alpha + beta) / 2
			alpha = clampEval(alpha-window, -eval.Inf, eval.Inf)
			searchDepth = depth

		case result >= beta:
			beta = clampEval(beta+window, -eval.Inf, eval.Inf)
			if result < eval.WinInMaxPly {
				searchDepth--
			}

		default:
			return result, pv
		}

		window += window / 2
	}
}

func clampEval(v, lo, hi eval.Eval) eval.Eval {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	default:
		return v
	}
}
