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

package eval

import (
	"github.com/corvidchess/corvid/pkg/attacks"
	"github.com/corvidchess/corvid/pkg/bitboard"
	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/move"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
)

// seeValue holds the exchange weights used by SEE, distinct from
// PeSTO's tapered values: the exchange only cares about the classical
// material ordering, so these stay fixed across the game.
var seeValue = [piece.NType]Eval{
	piece.Pawn:   100,
	piece.Knight: 400,
	piece.Bishop: 400,
	piece.Rook:   600,
	piece.Queen:  1000,
	piece.King:   30000,
}

// SEE performs a static exchange evaluation of the capture sequence
// started by m and reports whether it nets at least threshold
// centipawns for the side to move, used to separate winning from
// losing captures during move ordering and to prune losing captures
// in quiescence search.
func SEE(p *board.Position, m move.Move, threshold Eval) bool {
	source, target := m.From(), m.To()

	attacker := p.Mailbox[source].Type()
	var victim piece.Type
	if m.IsEnPassant() {
		victim = piece.Pawn
	} else {
		victim = p.Mailbox[target].Type()
	}

	balance := seeValue[victim]
	if balance < threshold {
		return false
	}

	balance -= seeValue[attacker]
	if balance >= threshold {
		return true
	}

	occupied := p.Occupied()
	occupied.Unset(source)
	if m.IsEnPassant() {
		occupied.Unset(square.From(target.File(), source.Rank()))
	}
	sideToMove := p.SideToMove.Other()

	attackers := attackersTo(p, target, occupied) & occupied

	diagonal := p.Pieces[piece.Bishop] | p.Pieces[piece.Queen]
	straight := p.Pieces[piece.Rook] | p.Pieces[piece.Queen]

	for {
		friends := attackers & p.Colors[sideToMove]
		if friends == bitboard.Empty {
			break
		}

		for attacker = piece.Pawn; attacker < piece.King; attacker++ {
			if friends&p.Pieces[attacker] != bitboard.Empty {
				break
			}
		}

		if attacker == piece.King && (attackers&^friends) != bitboard.Empty {
			// capturing with the king is illegal while the other side
			// still has an attacker on the square.
			break
		}

		source = (friends & p.Pieces[attacker]).LSB()

		occupied.Unset(source)
		sideToMove = sideToMove.Other()

		balance = -balance - seeValue[attacker]
		if balance >= threshold {
			break
		}

		switch attacker {
		case piece.Pawn, piece.Bishop:
			attackers |= attacks.Bishop(target, occupied) & diagonal
		case piece.Rook:
			attackers |= attacks.Rook(target, occupied) & straight
		case piece.Queen:
			attackers |= attacks.Bishop(target, occupied)&diagonal | attacks.Rook(target, occupied)&straight
		}

		attackers &= occupied
	}

	// sideToMove is whoever failed to recapture; the exchange beats
	// threshold only if that is the opponent, not us.
	return sideToMove != p.SideToMove
}

// attackersTo returns every piece of either color attacking s given
// the supplied occupancy, recomputed as the exchange loop removes
// pieces from the board so x-ray attackers behind them are revealed.
func attackersTo(p *board.Position, s square.Square, occ bitboard.Board) bitboard.Board {
	bishopsQueens := p.Pieces[piece.Bishop] | p.Pieces[piece.Queen]
	rooksQueens := p.Pieces[piece.Rook] | p.Pieces[piece.Queen]

	return attacks.King[s]&p.Pieces[piece.King] |
		attacks.Knight[s]&p.Pieces[piece.Knight] |
		attacks.PawnAttacks[piece.White][s]&p.PieceBB(piece.Pawn, piece.Black) |
		attacks.PawnAttacks[piece.Black][s]&p.PieceBB(piece.Pawn, piece.White) |
		attacks.Bishop(s, occ)&bishopsQueens |
		attacks.Rook(s, occ)&rooksQueens
}
