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
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/move"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/search/pick"
	"github.com/corvidchess/corvid/pkg/square"
	"github.com/corvidchess/corvid/pkg/tt"
)

// qsearchFutilityMargin is added to the stand-pat score when deciding
// whether a capture is even worth generating a child node for.
const qsearchFutilityMargin = eval.Eval(150)

// quiescence resolves the position to a "quiet" one before handing a
// score back to negamax: standing pat unless in check, otherwise
// searching only captures (and, in check, every evasion) until none
// remain or the position is clearly settled.
func (w *Worker) quiescence(ply int, alpha, beta eval.Eval) eval.Eval {
	w.Stats.Nodes.Add(1)
	if ply > w.Stats.SelDepth {
		w.Stats.SelDepth = ply
	}

	if w.shouldStop() || ply >= MaxPly {
		return alpha
	}

	if w.Pos.IsDraw() {
		return w.draw()
	}

	inCheck := w.Pos.IsInCheck(w.Pos.SideToMove)

	ttHit, ttEntry, ttWriter := w.TT.Probe(w.Pos.State().Key)
	ttMove := move.None
	if ttHit {
		ttMove = ttEntry.Move()
		value := ttEntry.Value(ply, w.Pos.State().HalfMoves)
		switch ttEntry.Bound() {
		case tt.Exact:
			return value
		case tt.Lower:
			if value >= beta {
				return value
			}
		case tt.Upper:
			if value <= alpha {
				return value
			}
		}
	}

	var standPat, bestScore eval.Eval
	if !inCheck {
		if ttHit {
			standPat = ttEntry.StaticEval()
		} else {
			standPat = w.score()
		}
		bestScore = standPat

		if standPat >= beta {
			if !ttHit {
				ttWriter.Write(w.Pos.State().Key, standPat, false, tt.Lower, 0, move.None, standPat, ply, w.TT.GenerationOf())
			}
			return standPat
		}
		if standPat > alpha {
			alpha = standPat
		}
	} else {
		standPat = -eval.Inf
		bestScore = -eval.Inf
	}

	var picker *pick.Picker
	if inCheck {
		// every legal reply matters when in check: there may be no
		// capture that escapes it at all.
		picker = pick.New(w.Pos, ttMove, &w.Tables, ply, piece.NoPiece, square.A1, nil)
	} else {
		picker = pick.NewQSearch(w.Pos, ttMove)
	}

	bestMove := move.None

	seen := 0
	for {
		m, ok := picker.Next()
		if !ok {
			break
		}
		seen++

		if !inCheck {
			// futility pruning: a capture that cannot plausibly clear
			// alpha even after winning its target outright isn't worth
			// the recursion.
			if captured := w.Pos.Mailbox[m.To()]; captured != piece.NoPiece && !m.IsPromotion() {
				if standPat+pieceValue(captured.Type())+qsearchFutilityMargin <= alpha {
					continue
				}
			}
		}

		w.Pos.Make(m)
		score := -w.quiescence(ply+1, -beta, -alpha)
		w.Pos.Unmake()

		if w.Stopped() {
			return alpha
		}

		if score > bestScore {
			bestScore = score
			bestMove = m

			if score > alpha {
				alpha = score
				if alpha >= beta {
					break
				}
			}
		}
	}

	if inCheck && seen == 0 {
		return eval.MatedIn(ply)
	}

	if !w.Stopped() {
		bound := tt.Upper
		if bestScore >= beta {
			bound = tt.Lower
		}
		ttWriter.Write(w.Pos.State().Key, bestScore, false, bound, 0, bestMove, standPat, ply, w.TT.GenerationOf())
	}

	return bestScore
}

func pieceValue(t piece.Type) eval.Eval {
	return eval.Eval(piece.Value[t])
}
