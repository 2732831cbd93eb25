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

// Package board implements the position representation: a mailbox and
// per-piece bitboards, an arena of BoardState snapshots for make/
// unmake, and the legality-mask refresh that the move generator relies
// on to emit only strictly legal moves.
package board

import (
	"github.com/corvidchess/corvid/pkg/attacks"
	"github.com/corvidchess/corvid/pkg/bitboard"
	"github.com/corvidchess/corvid/pkg/castling"
	"github.com/corvidchess/corvid/pkg/move"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
)

// MaxPly bounds the BoardState arena: no legal game exceeds this many
// plies from the root of a search.
const MaxPly = 1024

// State is the per-ply snapshot needed to unmake a move and to drive
// legality-restricted move generation. It is the arena entry described
// by the data model: carry-forward fields are copied from the previous
// state at make time, recomputed fields are rebuilt by refreshMasks.
type State struct {
	// carry-forward fields
	EnPassant  square.Square
	Castling   castling.Rights
	HalfMoves  int // 50-move counter
	FullMoves  int
	Phase      int

	// recomputed fields
	Key         uint64
	PawnKey     uint64
	Captured    piece.Piece
	Repetition  int
	CheckMask   bitboard.Board
	KingBan     bitboard.Board
	BishopPin   bitboard.Board
	RookPin     bitboard.Board
	EnPassantPin bool
	Checkers    int

	Move move.Move
}

// Position is the live board: a mailbox plus per-piece-type and
// per-color bitboards, side to move, and a pointer into the State
// arena owned by the Position itself.
type Position struct {
	Mailbox  [square.N]piece.Piece
	Pieces   [piece.NType]bitboard.Board
	Colors   [piece.NColor]bitboard.Board

	SideToMove piece.Color
	Ply        int

	states  [MaxPly]State
	current int
}

// State returns the current BoardState.
func (p *Position) State() *State {
	return &p.states[p.current]
}

// Occupied returns the combined occupancy of both colors.
func (p *Position) Occupied() bitboard.Board {
	return p.Colors[piece.White] | p.Colors[piece.Black]
}

// PieceBB returns the bitboard of pieces of type t and color c.
func (p *Position) PieceBB(t piece.Type, c piece.Color) bitboard.Board {
	return p.Pieces[t] & p.Colors[c]
}

// King returns the square of the king of color c.
func (p *Position) King(c piece.Color) square.Square {
	return p.PieceBB(piece.King, c).LSB()
}

// rawPut/rawRemove/rawMove mutate the mailbox and bitboards only, with
// no Zobrist bookkeeping. make() wraps them with key updates; unmake()
// uses them directly, since the popped State already holds the
// correct prior key and recomputing it would be redundant (§4.2).
func (p *Position) rawPut(s square.Square, pc piece.Piece) {
	p.Mailbox[s] = pc
	p.Pieces[pc.Type()].Set(s)
	p.Colors[pc.Color()].Set(s)
}

func (p *Position) rawRemove(s square.Square) piece.Piece {
	pc := p.Mailbox[s]
	p.Mailbox[s] = piece.NoPiece
	p.Pieces[pc.Type()].Unset(s)
	p.Colors[pc.Color()].Unset(s)
	return pc
}

func (p *Position) rawMove(from, to square.Square) piece.Piece {
	pc := p.rawRemove(from)
	p.rawPut(to, pc)
	return pc
}

func (p *Position) put(s square.Square, pc piece.Piece) {
	p.rawPut(s, pc)
	p.State().Key ^= zobristOf(pc, s)
	if pc.Type() == piece.Pawn {
		p.State().PawnKey ^= zobristOf(pc, s)
	}
}

func (p *Position) remove(s square.Square) piece.Piece {
	pc := p.rawRemove(s)
	p.State().Key ^= zobristOf(pc, s)
	if pc.Type() == piece.Pawn {
		p.State().PawnKey ^= zobristOf(pc, s)
	}
	return pc
}

func (p *Position) move(from, to square.Square) piece.Piece {
	pc := p.remove(from)
	p.put(to, pc)
	return pc
}

// IsInCheck reports whether c's king is currently attacked. It is used
// both to validate a position after an opponent's move (invariant 4)
// and to gate null-move pruning and quiescence check-evasion.
func (p *Position) IsInCheck(c piece.Color) bool {
	return p.attackersTo(p.King(c), p.Occupied()) & p.Colors[c.Other()] != bitboard.Empty
}

// attackersTo returns every piece (of either color) attacking s given
// the supplied occupancy, used both by check detection and by the
// static exchange evaluator.
func (p *Position) attackersTo(s square.Square, occ bitboard.Board) bitboard.Board {
	var attackers bitboard.Board

	attackers |= attacks.PawnAttacks[piece.Black][s] & p.PieceBB(piece.Pawn, piece.White)
	attackers |= attacks.PawnAttacks[piece.White][s] & p.PieceBB(piece.Pawn, piece.Black)
	attackers |= attacks.Knight[s] & p.Pieces[piece.Knight]
	attackers |= attacks.King[s] & p.Pieces[piece.King]

	bishopsQueens := p.Pieces[piece.Bishop] | p.Pieces[piece.Queen]
	rooksQueens := p.Pieces[piece.Rook] | p.Pieces[piece.Queen]
	attackers |= attacks.Bishop(s, occ) & bishopsQueens
	attackers |= attacks.Rook(s, occ) & rooksQueens

	return attackers & occ
}
