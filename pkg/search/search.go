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
	"github.com/corvidchess/corvid/pkg/bitboard"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/history"
	"github.com/corvidchess/corvid/pkg/move"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/search/pick"
	"github.com/corvidchess/corvid/pkg/tt"
)

// negamax is the unified Root/PV/NonPV search function: beta-alpha==1
// identifies a null-window (non-PV) search the same way the teacher's
// search core does, so one function serves every node type.
func (w *Worker) negamax(ply, depth int, alpha, beta eval.Eval, pv *move.Variation, cutNode bool) eval.Eval {
	w.Stats.Nodes.Add(1)
	if ply > w.Stats.SelDepth {
		w.Stats.SelDepth = ply
	}

	isPV := beta-alpha != 1
	isRoot := ply == 0

	switch {
	case w.shouldStop():
		return alpha

	case !isRoot && w.Pos.IsDraw():
		return w.draw()

	case depth <= 0 || ply >= MaxPly:
		return w.quiescence(ply, alpha, beta)
	}

	// mate-distance pruning: no line through this node can beat a mate
	// already found closer to the root, so tighten the window to it.
	if !isRoot {
		if a := eval.MatedIn(ply); a > alpha {
			alpha = a
		}
		if b := eval.MateIn(ply + 1); b < beta {
			beta = b
		}
		if alpha >= beta {
			return alpha
		}
	}

	us := w.Pos.SideToMove
	inCheck := w.Pos.IsInCheck(us)

	ttMove := move.None
	ttHit, ttEntry, ttWriter := w.TT.Probe(w.Pos.State().Key)
	if ttHit {
		ttMove = ttEntry.Move()
		if !isPV && ttEntry.Depth() >= depth {
			w.Stats.TTHits++
			value := ttEntry.Value(ply, w.Pos.State().HalfMoves)
			switch ttEntry.Bound() {
			case tt.Exact:
				return value
			case tt.Lower:
				if value > alpha {
					alpha = value
				}
			case tt.Upper:
				if value < beta {
					beta = value
				}
			}
			if alpha >= beta {
				return value
			}
		}
	}

	var staticEval eval.Eval
	switch {
	case inCheck:
		staticEval = -eval.Inf
	case ttHit:
		staticEval = ttEntry.StaticEval()
	default:
		staticEval = w.score()
	}
	w.staticEval[ply] = staticEval

	if !isPV && !inCheck {
		// reverse futility pruning: the static eval already clears beta
		// by more than a depth-scaled margin, so a full search is very
		// unlikely to find anything better for the opponent.
		if depth <= 8 && staticEval-eval.Eval(80*depth) >= beta && staticEval < eval.WinInMaxPly {
			return staticEval - eval.Eval(80*depth)
		}

		// null-move pruning: passing still clears beta, so this side has
		// at least one way to improve its position without the tempo.
		if depth >= 3 && staticEval >= beta && hasNonPawnMaterial(w, us) {
			r := 3 + depth/6
			w.Pos.MakeNull()
			var childPV move.Variation
			score := -w.negamax(ply+1, depth-r, -beta, -beta+1, &childPV, !cutNode)
			w.Pos.Unmake()

			if score >= beta {
				if score >= eval.WinInMaxPly {
					score = beta
				}
				return score
			}
		}
	}

	// internal iterative reduction: no TT move to trust means this
	// node's ordering is weaker than usual, so search it shallower.
	if depth >= 4 && ttMove == move.None {
		depth--
	}

	conts := w.continuations(ply)
	lastMoved, lastTo := w.lastMove(ply)
	picker := pick.New(w.Pos, ttMove, &w.Tables, ply, lastMoved, lastTo, conts)

	originalAlpha := alpha
	bestMove := move.None
	bestScore := -eval.Inf

	improving := !inCheck && ply >= 2 && staticEval > w.pastStaticEval(ply)

	quietCount := 0
	triedQuiets := make([]move.Move, 0, 32)

	var i int
	for {
		m, ok := picker.Next()
		if !ok {
			break
		}

		isQuiet := !isCaptureOrPromo(w, m)
		if isQuiet {
			quietCount++

			if !isPV && !inCheck && bestScore > eval.LoseInMaxPly {
				// late move pruning: stop trying quiets once we've tried
				// more than this shallow a depth warrants.
				if quietCount > lateMovePruningThreshold(depth, improving) {
					i++
					continue
				}

				// futility pruning: a quiet this far down an already
				// comfortably-bounded node is very unlikely to matter.
				if depth <= 6 && staticEval+eval.Eval(100+90*depth) <= alpha {
					i++
					continue
				}
			}
		}

		w.stackMove(ply, m)

		var childPV move.Variation
		var score eval.Eval

		w.Pos.Make(m)

		newDepth := depth - 1
		switch {
		case !isPV || i > 0:
			r := 0
			if depth >= 3 && i >= 2 {
				r = lateMoveReduction(depth, i+1, improving, isPV)
				if cutNode {
					r++
				}
				if r > newDepth {
					r = newDepth
				}
				if r < 0 {
					r = 0
				}
			}

			score = -w.negamax(ply+1, newDepth-r, -alpha-1, -alpha, &childPV, true)
			if r > 0 && score > alpha {
				score = -w.negamax(ply+1, newDepth, -alpha-1, -alpha, &childPV, !cutNode)
			}
		}

		if isPV && (i == 0 || (score > alpha && score < beta)) {
			score = -w.negamax(ply+1, newDepth, -beta, -alpha, &childPV, false)
		}

		w.Pos.Unmake()

		if w.Stopped() {
			return alpha
		}

		if score > bestScore {
			bestScore = score
			bestMove = m

			if score > alpha {
				alpha = score
				pv.Update(m, childPV)

				if alpha >= beta {
					if isQuiet {
						w.onQuietCutoff(ply, depth, us, inCheck, m, triedQuiets, conts)
					} else {
						w.onCaptureCutoff(depth, m)
					}
					break
				}
			}
		}

		if isQuiet {
			triedQuiets = append(triedQuiets, m)
		}
		i++
	}

	if i == 0 {
		if inCheck {
			return eval.MatedIn(ply)
		}
		return eval.Draw
	}

	if !w.Stopped() {
		bound := tt.Exact
		switch {
		case bestScore <= originalAlpha:
			bound = tt.Upper
		case bestScore >= beta:
			bound = tt.Lower
		}
		ttWriter.Write(w.Pos.State().Key, bestScore, isPV, bound, depth, bestMove, staticEval, ply, w.TT.GenerationOf())
	}

	return bestScore
}

func isCaptureOrPromo(w *Worker, m move.Move) bool {
	return m.IsPromotion() || m.IsEnPassant() || w.Pos.Mailbox[m.To()] != piece.NoPiece
}

func hasNonPawnMaterial(w *Worker, c piece.Color) bool {
	nonPawnKing := w.Pos.Pieces[piece.Pawn] | w.Pos.Pieces[piece.King]
	return w.Pos.Colors[c]&^nonPawnKing != bitboard.Empty
}

// stackMove records the piece and destination square played at ply,
// and the continuation-history table that ply's context selects, for
// the picker and the onCutoff bookkeeping at the ply below to read.
func (w *Worker) stackMove(ply int, m move.Move) {
	moved := w.Pos.Mailbox[m.From()]
	w.moved[ply] = moved
	w.to[ply] = m.To()

	inCheck := w.Pos.IsInCheck(w.Pos.SideToMove)
	isCapture := isCaptureOrPromo(w, m)
	w.cont[ply] = w.Tables.Continuation.Table(inCheck, isCapture)
}

// onQuietCutoff rewards the quiet move that caused a beta cutoff and
// penalizes every quiet tried and rejected before it, installs it as
// a killer and counter-move, per the gravity-bounded history update.
// inCheck is the cutoff node's own in-check state, the same value
// pick.Picker probes the continuation tables with, so a slot filled
// in while in check is the same slot later read while in check.
func (w *Worker) onQuietCutoff(ply, depth int, us piece.Color, inCheck bool, cutoff move.Move, tried []move.Move, conts []*history.Continuation) {
	bonus := history.StatBonus(depth)

	reward := func(m move.Move, b int16) {
		from, to := m.From(), m.To()
		threatFrom, threatTo := pick.Threatened(w.Pos, m)
		w.Tables.Quiet.Update(us, threatFrom, threatTo, from, to, b)
		moved := w.moved[ply]
		for _, c := range conts {
			if c != nil {
				c.Update(inCheck, false, moved, to, b)
			}
		}
	}

	reward(cutoff, bonus)
	for _, m := range tried {
		reward(m, -bonus)
	}

	w.Tables.Killers.Update(ply, cutoff)
	lastMoved, lastTo := w.lastMove(ply)
	if lastMoved != piece.NoPiece {
		w.Tables.Counters.Update(lastMoved, lastTo, cutoff)
	}
}

// onCaptureCutoff rewards a capture that caused a beta cutoff via the
// capture-history table; captures never become killers, since MVV-LVA
// and SEE already order them ahead of quiets.
func (w *Worker) onCaptureCutoff(depth int, cutoff move.Move) {
	bonus := history.StatBonus(depth)
	moved := w.Pos.Mailbox[cutoff.From()]
	victim := moved.Type()
	if v := w.Pos.Mailbox[cutoff.To()]; v != piece.NoPiece {
		victim = v.Type()
	}
	threatFrom, threatTo := pick.Threatened(w.Pos, cutoff)
	w.Tables.Capture.Update(moved, threatFrom, threatTo, cutoff.To(), victim, bonus)
}
