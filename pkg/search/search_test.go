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
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/tt"
)

func newWorker(t *testing.T, fen string) *Worker {
	t.Helper()

	p := &board.Position{}
	require.NoError(t, p.SetFEN(fen))

	table := tt.New(1)
	var stop atomic.Bool
	return NewWorker(0, p, table, eval.PeSTO, &stop)
}

func TestSearchFindsForcedMate(t *testing.T) {
	// black king boxed in on the back rank by its own pawns; white's
	// rook delivers an unstoppable back-rank mate.
	w := newWorker(t, "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")

	pv, score := w.Search(Limits{Depth: 6})

	require.GreaterOrEqual(t, score, eval.MateBound, "a forced mate must score at least MateBound")
	require.Positive(t, pv.Len(), "a found mate must report a non-empty principal variation")
}

func TestSearchStartPositionIsRobust(t *testing.T) {
	w := newWorker(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")

	pv, score := w.Search(Limits{Depth: 5})

	require.Positive(t, pv.Len(), "search from the start position must produce a move")
	require.Less(t, score, eval.MateBound, "the start position is not a forced mate for either side")
	require.Greater(t, score, -eval.MateBound)
	require.Positive(t, w.Stats.Nodes.Load())
}

func TestSearchRespectsNodeLimit(t *testing.T) {
	w := newWorker(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")

	_, _ = w.Search(Limits{Depth: MaxDepth, Nodes: 5000})

	require.LessOrEqual(t, w.Stats.Nodes.Load(), uint64(5000)+50_000, "node limit must stop the search reasonably close to the requested budget")
}

func TestQuiescenceResolvesHangingCapture(t *testing.T) {
	// white to move, a hanging black queen sits en prise to the rook.
	w := newWorker(t, "3q3k/8/8/8/8/8/8/3RK3 w - - 0 1")

	score := w.quiescence(0, -eval.Inf, eval.Inf)
	require.Greater(t, score, eval.Eval(400), "capturing a hanging queen must be reflected in the quiescence score")
}
