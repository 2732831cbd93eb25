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

package board

import (
	"github.com/corvidchess/corvid/pkg/attacks"
	"github.com/corvidchess/corvid/pkg/bitboard"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
)

// refreshMasks rebuilds every legality mask the move generator relies
// on to emit only strictly legal moves without a post-hoc
// leaves-king-in-check check: king_ban, check_mask, the bishop and
// rook pin masks, and the en-passant pin flag.
func (p *Position) refreshMasks() {
	st := p.State()
	us, them := p.SideToMove, p.SideToMove.Other()
	k := p.King(us)
	occ := p.Occupied()
	friends := p.Colors[us]

	// king_ban: squares the enemy attacks with our king removed from
	// the board, so a slider's ray extends through the square the king
	// currently stands on and the king cannot "hide" behind itself,
	// plus the squares the enemy king itself covers.
	st.KingBan = p.seenBy(them, occ&^bitboard.FromSquare(k)) | attacks.King[p.King(them)]

	st.CheckMask = bitboard.Full
	st.BishopPin = bitboard.Empty
	st.RookPin = bitboard.Empty
	st.EnPassantPin = false
	checkers := 0

	addChecker := func(mask bitboard.Board) {
		if checkers == 0 {
			st.CheckMask = mask
		} else {
			st.CheckMask = bitboard.Empty
		}
		checkers++
	}

	bishopQueens := (p.Pieces[piece.Bishop] | p.Pieces[piece.Queen]) & p.Colors[them]
	for sliders := attacks.Bishop(k, p.Colors[them]) & bishopQueens; sliders != bitboard.Empty; {
		s := sliders.Pop()
		switch between := attacks.Between[k][s]; (between & friends).Count() {
		case 0:
			addChecker(attacks.Pin[k][s])
		case 1:
			st.BishopPin |= attacks.Pin[k][s]
		}
	}

	rookQueens := (p.Pieces[piece.Rook] | p.Pieces[piece.Queen]) & p.Colors[them]
	for sliders := attacks.Rook(k, p.Colors[them]) & rookQueens; sliders != bitboard.Empty; {
		s := sliders.Pop()
		switch between := attacks.Between[k][s]; (between & friends).Count() {
		case 0:
			addChecker(attacks.Pin[k][s])
		case 1:
			st.RookPin |= attacks.Pin[k][s]
		}
	}

	if pawns := attacks.PawnAttacks[us][k] & p.PieceBB(piece.Pawn, them); pawns != bitboard.Empty {
		addChecker(pawns)
	}
	if knights := attacks.Knight[k] & p.PieceBB(piece.Knight, them); knights != bitboard.Empty {
		addChecker(knights)
	}

	st.Checkers = checkers

	if st.EnPassant != square.None {
		st.EnPassantPin = p.computeEnPassantPin(us, them, k)
	}
}

// seenBy returns every square attacked by color c's pieces given occ
// as the combined-occupancy for sliding-piece rays. Passing an
// occupancy with the defender's king removed is what lets king_ban
// correctly forbid the king from retreating straight back along a
// slider's line of attack.
func (p *Position) seenBy(c piece.Color, occ bitboard.Board) bitboard.Board {
	var seen bitboard.Board

	for pawns := p.PieceBB(piece.Pawn, c); pawns != bitboard.Empty; {
		seen |= attacks.PawnAttacks[c][pawns.Pop()]
	}
	for knights := p.PieceBB(piece.Knight, c); knights != bitboard.Empty; {
		seen |= attacks.Knight[knights.Pop()]
	}
	for bishops := p.PieceBB(piece.Bishop, c) | p.PieceBB(piece.Queen, c); bishops != bitboard.Empty; {
		seen |= attacks.Bishop(bishops.Pop(), occ)
	}
	for rooks := p.PieceBB(piece.Rook, c) | p.PieceBB(piece.Queen, c); rooks != bitboard.Empty; {
		seen |= attacks.Rook(rooks.Pop(), occ)
	}
	seen |= attacks.King[p.King(c)]

	return seen
}

// computeEnPassantPin reports whether capturing en passant would
// expose us's king to a rook/queen check along the capture rank: the
// classic case of two pawns side by side on the king's rank, an enemy
// rook or queen beyond the captured pawn, and the capturing pawn
// itself as the only other blocker — both pawns disappear from the
// rank in the same move, so the ordinary pin mask can't see it.
func (p *Position) computeEnPassantPin(us, them piece.Color, k square.Square) bool {
	st := p.State()
	ep := st.EnPassant

	var capturedSquare square.Square
	if us == piece.White {
		capturedSquare = square.Square(int(ep) - 8)
	} else {
		capturedSquare = square.Square(int(ep) + 8)
	}
	if k.Rank() != capturedSquare.Rank() {
		return false
	}

	rookQueens := (p.Pieces[piece.Rook] | p.Pieces[piece.Queen]) & p.Colors[them]
	candidates := attacks.PawnAttacks[them][ep] & p.PieceBB(piece.Pawn, us)

	for candidates != bitboard.Empty {
		from := candidates.Pop()

		occ := p.Occupied()
		occ &^= bitboard.FromSquare(from)
		occ &^= bitboard.FromSquare(capturedSquare)

		if attacks.Rook(k, occ)&rookQueens != bitboard.Empty {
			return true
		}
	}

	return false
}
