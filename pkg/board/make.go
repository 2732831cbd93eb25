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
	"github.com/corvidchess/corvid/pkg/move"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
	"github.com/corvidchess/corvid/pkg/zobrist"
)

// Make plays m on the position, pushing a new BoardState onto the
// arena. Callers must pass only strictly legal moves: the generator's
// legality masks are what make that guarantee, not this function.
func (p *Position) Make(m move.Move) {
	prev := p.State()
	p.current++
	next := p.State()

	*next = State{
		EnPassant: square.None,
		Castling:  prev.Castling,
		HalfMoves: prev.HalfMoves + 1,
		FullMoves: prev.FullMoves,
		Phase:     prev.Phase,
		Key:       prev.Key ^ zobrist.SideToMove ^ zobristEnPassant(prev.EnPassant),
		PawnKey:   prev.PawnKey,
		Move:      m,
	}

	us, them := p.SideToMove, p.SideToMove.Other()
	if us == piece.Black {
		next.FullMoves++
	}

	from, to := m.From(), m.To()

	if m.IsCastle() {
		rank := from.Rank()
		if to.File() > from.File() {
			p.move(square.From(7, rank), square.From(5, rank))
		} else {
			p.move(square.From(0, rank), square.From(3, rank))
		}
	}

	captureSquare := to
	if m.IsEnPassant() {
		captureSquare = square.From(to.File(), from.Rank())
	}
	if captured := p.Mailbox[captureSquare]; captured != piece.NoPiece {
		p.remove(captureSquare)
		next.Captured = captured
		next.HalfMoves = 0
	}

	movedType := p.Mailbox[from].Type()
	p.move(from, to)

	if movedType == piece.Pawn {
		next.HalfMoves = 0

		if diff := int(to) - int(from); diff == 16 || diff == -16 {
			epSquare := square.Square((int(from) + int(to)) / 2)
			if attacks.PawnAttacks[us][epSquare]&p.PieceBB(piece.Pawn, them) != bitboard.Empty {
				next.EnPassant = epSquare
				next.Key ^= zobristEnPassant(epSquare)
			}
		}

		if m.IsPromotion() {
			p.remove(to)
			p.put(to, piece.New(m.Promotion(), us))
		}
	}

	next.Key ^= zobristCastling(prev.Castling)
	next.Castling &= attacks.CastlingOn[from] & attacks.CastlingOn[to]
	next.Key ^= zobristCastling(next.Castling)

	if next.Captured != piece.NoPiece {
		next.Phase = prev.Phase - piece.Phase[next.Captured.Type()]
	}

	p.SideToMove = them
	p.Ply++

	p.updateRepetition()
	p.refreshMasks()
}

// MakeNull plays a null move: side to move passes without moving a
// piece, used by null-move pruning. The en-passant square is always
// cleared, since no pawn capture can be made against it once a side
// forgoes its turn.
func (p *Position) MakeNull() {
	prev := p.State()
	p.current++
	next := p.State()

	*next = State{
		EnPassant: square.None,
		Castling:  prev.Castling,
		HalfMoves: prev.HalfMoves + 1,
		FullMoves: prev.FullMoves,
		Phase:     prev.Phase,
		Key:       prev.Key ^ zobrist.SideToMove ^ zobristEnPassant(prev.EnPassant),
		PawnKey:   prev.PawnKey,
		Move:      move.Null,
	}

	p.SideToMove = p.SideToMove.Other()
	p.Ply++

	next.Repetition = 0
	p.refreshMasks()
}

// Unmake reverts the most recent Make or MakeNull. The popped State
// still holds the pre-move Key and PawnKey, so unmake only needs to
// restore the mailbox and bitboards, not recompute any hash.
func (p *Position) Unmake() {
	st := p.State()
	m := st.Move

	p.SideToMove = p.SideToMove.Other()
	p.Ply--

	if m == move.Null {
		p.current--
		return
	}

	us := p.SideToMove
	from, to := m.From(), m.To()

	if m.IsPromotion() {
		p.rawRemove(to)
		p.rawPut(to, piece.New(piece.Pawn, us))
	}

	p.rawMove(to, from)

	switch {
	case m.IsEnPassant():
		captureSquare := square.From(to.File(), from.Rank())
		p.rawPut(captureSquare, st.Captured)
	case st.Captured != piece.NoPiece:
		p.rawPut(to, st.Captured)
	}

	if m.IsCastle() {
		rank := from.Rank()
		if to.File() > from.File() {
			p.rawMove(square.From(5, rank), square.From(7, rank))
		} else {
			p.rawMove(square.From(3, rank), square.From(0, rank))
		}
	}

	p.current--
}

// updateRepetition walks the state arena backwards in steps of two
// plies (since a repeated position always returns on the same side to
// move) looking for a matching key within the current 50-move window.
func (p *Position) updateRepetition() {
	st := p.State()
	st.Repetition = 0

	end := st.HalfMoves
	if end > p.current {
		end = p.current
	}

	for i := 2; i <= end; i += 2 {
		past := &p.states[p.current-i]
		if past.Key == st.Key {
			if past.Repetition != 0 {
				st.Repetition = -i
			} else {
				st.Repetition = i
			}
			break
		}
	}
}
