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

package movegen

import (
	"github.com/corvidchess/corvid/pkg/attacks"
	"github.com/corvidchess/corvid/pkg/bitboard"
	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/move"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
)

// appendPawnMoves appends pawn captures (diagonal and en passant),
// single/double pushes, and the four promotion choices on either a
// capture or a push reaching the last rank. Promotions are always
// generated as part of the captures stage, win or lose a piece,
// because under-promoting away from a queen is only ever correct in
// the rare cases search itself must discover; quiescence still needs
// to see the queen promotion.
func appendPawnMoves(p *board.Position, moves *[]move.Move, captures, quiets bool) {
	st := p.State()
	us, them := p.SideToMove, p.SideToMove.Other()
	occ := p.Occupied()
	enemies := p.Colors[them]

	promoRank, startRank := square.Rank(7), square.Rank(1)
	if us == piece.Black {
		promoRank, startRank = square.Rank(0), square.Rank(6)
	}

	pawns := p.PieceBB(piece.Pawn, us)

	for bb := pawns; bb != bitboard.Empty; {
		from := bb.Pop()
		pinnedByBishop := st.BishopPin.IsSet(from)
		pinnedByRook := st.RookPin.IsSet(from)

		if captures && !pinnedByRook {
			targets := attacks.PawnAttacks[us][from] & enemies & st.CheckMask
			if pinnedByBishop {
				targets &= st.BishopPin
			}
			appendPawnTargets(moves, from, targets, promoRank, true, true)
		}

		if pinnedByBishop {
			continue
		}

		single := bitboard.FromSquare(from).Up(us) &^ occ
		if pinnedByRook {
			single &= st.RookPin
		}
		single &= st.CheckMask
		appendPawnTargets(moves, from, single, promoRank, captures, quiets)

		if from.Rank() != startRank {
			continue
		}
		mid := bitboard.FromSquare(from).Up(us)
		if mid&occ != bitboard.Empty {
			continue
		}
		double := mid.Up(us) &^ occ
		if pinnedByRook {
			double &= st.RookPin
		}
		double &= st.CheckMask
		if quiets {
			appendPawnTargets(moves, from, double, promoRank, false, true)
		}
	}

	if captures && st.EnPassant != square.None {
		appendEnPassant(p, moves)
	}
}

// appendPawnTargets serializes a push/capture target bitboard,
// expanding any square on promoRank into the four promotion moves.
// The variadic stage flags default both to false, letting pushes and
// captures share the helper while only emitting what their stage
// asked for.
func appendPawnTargets(moves *[]move.Move, from square.Square, targets bitboard.Board, promoRank square.Rank, stages ...bool) {
	wantCaptureStage := len(stages) > 0 && stages[0]
	wantQuietStage := len(stages) > 1 && stages[1]

	for targets != bitboard.Empty {
		to := targets.Pop()
		if to.Rank() == promoRank {
			if !wantCaptureStage {
				continue
			}
			for _, pt := range piece.Promotions {
				*moves = append(*moves, move.New(from, to, move.Promotion, pt))
			}
			continue
		}
		if !wantQuietStage {
			continue
		}
		*moves = append(*moves, move.New(from, to, move.Normal, 0))
	}
}

// appendEnPassant appends the (at most two) legal en-passant captures
// available this ply, checking the ordinary pin masks, the discovered
// check_mask requirement (the move must address an existing check by
// either landing on a checking square or capturing the checker), and
// the dedicated en_passant_pin flag for the discovered-rank-check case
// ordinary pins don't cover.
func appendEnPassant(p *board.Position, moves *[]move.Move) {
	st := p.State()
	us, them := p.SideToMove, p.SideToMove.Other()
	ep := st.EnPassant

	var capturedSquare square.Square
	if us == piece.White {
		capturedSquare = square.Square(int(ep) - 8)
	} else {
		capturedSquare = square.Square(int(ep) + 8)
	}

	if !st.CheckMask.IsSet(ep) && !st.CheckMask.IsSet(capturedSquare) {
		return
	}
	if st.EnPassantPin {
		return
	}

	capturers := attacks.PawnAttacks[them][ep] & p.PieceBB(piece.Pawn, us)
	for capturers != bitboard.Empty {
		from := capturers.Pop()
		if st.RookPin.IsSet(from) {
			continue
		}
		if st.BishopPin.IsSet(from) && !st.BishopPin.IsSet(ep) {
			continue
		}
		*moves = append(*moves, move.New(from, ep, move.EnPassant, 0))
	}
}
