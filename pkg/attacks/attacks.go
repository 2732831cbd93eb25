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

// Package attacks builds and serves every lookup table the move
// generator needs: leaper (knight/king/pawn) pseudo-attacks,
// magic-indexed slider attacks, and the per-square-pair line/between/
// pin/check masks used for legality-restricted generation. Every
// table is computed once by an init function and is read-only
// thereafter.
package attacks

import (
	"github.com/corvidchess/corvid/pkg/bitboard"
	"github.com/corvidchess/corvid/pkg/castling"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
)

// Distance[a][b] is the Chebyshev distance between a and b in squares.
var Distance [square.N][square.N]int

// Knight and King hold the pseudo-attack set of a leaper from every
// square, ignoring occupancy.
var (
	Knight [square.N]bitboard.Board
	King   [square.N]bitboard.Board
)

// PawnAttacks[color][square] is the set of squares a pawn of that
// color attacks (diagonal captures only, no pushes) from square.
var PawnAttacks [piece.NColor][square.N]bitboard.Board

// CastlingOn masks out castling rights lost because the square given
// was the source or destination of a move: a king move clears both of
// its side's rights, a rook move or capture clears the right tied to
// that corner.
var CastlingOn [square.N]castling.Rights

type offset struct{ df, dr int }

func raySet(from square.Square, offs []offset) bitboard.Board {
	var b bitboard.Board
	f, r := int(from.File()), int(from.Rank())
	for _, o := range offs {
		nf, nr := f+o.df, r+o.dr
		if nf < 0 || nf > 7 || nr < 0 || nr > 7 {
			continue
		}
		b.Set(square.From(square.File(nf), square.Rank(nr)))
	}
	return b
}

var knightOffsets = []offset{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingOffsets = []offset{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

func init() {
	for a := square.Square(0); a < square.N; a++ {
		for b := square.Square(0); b < square.N; b++ {
			df := int(a.File()) - int(b.File())
			dr := int(a.Rank()) - int(b.Rank())
			Distance[a][b] = maxInt(absInt(df), absInt(dr))
		}

		Knight[a] = raySet(a, knightOffsets)
		King[a] = raySet(a, kingOffsets)

		PawnAttacks[piece.White][a] = raySet(a, []offset{{1, 1}, {-1, 1}})
		PawnAttacks[piece.Black][a] = raySet(a, []offset{{1, -1}, {-1, -1}})
	}

	for s := square.Square(0); s < square.N; s++ {
		CastlingOn[s] = castling.All
	}
	CastlingOn[square.A1] &^= castling.WhiteQueenside
	CastlingOn[square.H1] &^= castling.WhiteKingside
	CastlingOn[square.E1] &^= castling.White
	CastlingOn[square.A8] &^= castling.BlackQueenside
	CastlingOn[square.H8] &^= castling.BlackKingside
	CastlingOn[square.E8] &^= castling.Black
}

func absInt(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// PawnPush returns the set of squares a pawn of color c standing on
// from can reach by a single or double push given the combined
// occupancy of both sides.
func PawnPush(from square.Square, c piece.Color, occ bitboard.Board) bitboard.Board {
	one := bitboard.FromSquare(from).Up(c) &^ occ
	two := one.Up(c) &^ occ

	startRank := square.Rank(1)
	if c == piece.Black {
		startRank = square.Rank(6)
	}
	if from.Rank() != startRank {
		two = bitboard.Empty
	}

	return one | two
}
