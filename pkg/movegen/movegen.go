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

// Package movegen implements the staged, legality-restricted move
// generator: every move it emits is already strictly legal, since it
// is built directly from the king_ban/check_mask/pin masks board
// maintains rather than generating pseudo-legal moves and testing
// each one by make+IsInCheck+unmake.
package movegen

import (
	"github.com/corvidchess/corvid/pkg/attacks"
	"github.com/corvidchess/corvid/pkg/bitboard"
	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/castling"
	"github.com/corvidchess/corvid/pkg/move"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
)

// averageMoveCount is the expected branching factor of a chess
// position, used to size the move slice's initial capacity so the
// common case needs no reallocation.
// source: https://chess.stackexchange.com/a/24325/33336
const averageMoveCount = 31

// GenerateAll returns every legal move available to the side to move.
func GenerateAll(p *board.Position) []move.Move {
	return generate(p, true, true)
}

// GenerateCaptures returns every legal capture and pawn promotion,
// the subset quiescence search walks.
func GenerateCaptures(p *board.Position) []move.Move {
	return generate(p, true, false)
}

// GenerateQuiets returns every legal move that is neither a capture
// nor a promotion.
func GenerateQuiets(p *board.Position) []move.Move {
	return generate(p, false, true)
}

func generate(p *board.Position, captures, quiets bool) []move.Move {
	moves := make([]move.Move, 0, averageMoveCount)

	st := p.State()
	us, them := p.SideToMove, p.SideToMove.Other()
	friends, enemies := p.Colors[us], p.Colors[them]

	kingSq := p.King(us)
	kingTargets := attacks.King[kingSq] &^ (friends | st.KingBan)
	kingTargets = restrict(kingTargets, enemies, captures, quiets)
	serialize(&moves, kingSq, kingTargets, move.Normal, 0)

	if quiets && st.Checkers == 0 {
		appendCastling(p, &moves)
	}

	if st.Checkers >= 2 {
		// double check: only the king can move.
		return moves
	}

	target := restrict(st.CheckMask&^friends, enemies, captures, quiets)

	appendKnightMoves(p, &moves, target)
	appendSliderMoves(p, &moves, target, piece.Bishop)
	appendSliderMoves(p, &moves, target, piece.Rook)
	appendSliderMoves(p, &moves, target, piece.Queen)
	appendPawnMoves(p, &moves, captures, quiets)

	return moves
}

// restrict narrows target down to captures-only, quiets-only, or
// leaves it untouched when both stages are requested.
func restrict(target, enemies bitboard.Board, captures, quiets bool) bitboard.Board {
	switch {
	case captures && quiets:
		return target
	case captures:
		return target & enemies
	case quiets:
		return target &^ enemies
	default:
		return bitboard.Empty
	}
}

func appendKnightMoves(p *board.Position, moves *[]move.Move, target bitboard.Board) {
	us := p.SideToMove
	st := p.State()

	knights := p.PieceBB(piece.Knight, us) &^ (st.BishopPin | st.RookPin)
	for knights != bitboard.Empty {
		from := knights.Pop()
		serialize(moves, from, attacks.Knight[from]&target, move.Normal, 0)
	}
}

// appendSliderMoves appends the moves of every piece of type t (bishop,
// rook, or queen — queen being both at once) belonging to the side to
// move. A piece pinned along an axis it cannot move on is immobile; a
// piece pinned along an axis it can move on is restricted to that
// ray, which a bishop/rook pin mask already captures directly.
func appendSliderMoves(p *board.Position, moves *[]move.Move, target bitboard.Board, t piece.Type) {
	us := p.SideToMove
	st := p.State()
	occ := p.Occupied()

	pieces := p.PieceBB(t, us)
	if t == piece.Bishop {
		pieces &^= st.RookPin
	}
	if t == piece.Rook {
		pieces &^= st.BishopPin
	}

	unpinned := pieces &^ (st.BishopPin | st.RookPin)
	for unpinned != bitboard.Empty {
		from := unpinned.Pop()
		serialize(moves, from, attacks.SlidingAttacksOf(t, from, occ)&target, move.Normal, 0)
	}

	if t != piece.Rook {
		bishopPinned := pieces & st.BishopPin
		for bishopPinned != bitboard.Empty {
			from := bishopPinned.Pop()
			serialize(moves, from, attacks.SlidingAttacksOf(t, from, occ)&target&st.BishopPin, move.Normal, 0)
		}
	}

	if t != piece.Bishop {
		rookPinned := pieces & st.RookPin
		for rookPinned != bitboard.Empty {
			from := rookPinned.Pop()
			serialize(moves, from, attacks.SlidingAttacksOf(t, from, occ)&target&st.RookPin, move.Normal, 0)
		}
	}
}

func serialize(moves *[]move.Move, from square.Square, targets bitboard.Board, flag move.Flag, promotion piece.Type) {
	for targets != bitboard.Empty {
		to := targets.Pop()
		*moves = append(*moves, move.New(from, to, flag, promotion))
	}
}

// appendCastling appends the castling moves still available, testing
// both that the squares between king and rook are empty and that the
// squares the king passes through (including its destination) are
// not in king_ban — the explicit F/G and D/C checks against king_ban
// that a plain "is the destination attacked" test would miss for the
// transit square.
func appendCastling(p *board.Position, moves *[]move.Move) {
	st := p.State()
	us := p.SideToMove
	kingSq := p.King(us)
	occ := p.Occupied()

	rank := square.Rank(0)
	if us == piece.Black {
		rank = square.Rank(7)
	}

	kingside := castling.WhiteKingside
	queenside := castling.WhiteQueenside
	if us == piece.Black {
		kingside, queenside = castling.BlackKingside, castling.BlackQueenside
	}

	if st.Castling.Has(kingside) {
		f, g := square.From(5, rank), square.From(6, rank)
		transit := bitboard.FromSquare(f) | bitboard.FromSquare(g)
		if occ&transit == bitboard.Empty && st.KingBan&transit == bitboard.Empty {
			*moves = append(*moves, move.New(kingSq, g, move.Castle, 0))
		}
	}

	if st.Castling.Has(queenside) {
		b, c, d := square.From(1, rank), square.From(2, rank), square.From(3, rank)
		empty := bitboard.FromSquare(b) | bitboard.FromSquare(c) | bitboard.FromSquare(d)
		transit := bitboard.FromSquare(d) | bitboard.FromSquare(c)
		if occ&empty == bitboard.Empty && st.KingBan&transit == bitboard.Empty {
			*moves = append(*moves, move.New(kingSq, c, move.Castle, 0))
		}
	}
}
