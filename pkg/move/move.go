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

// Package move declares the compact Move representation and move
// lists used by the generator, the picker, and the search.
package move

import (
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
)

// Move packs a chess move into 16 bits:
//
//	[15:10] from square (6 bits)
//	[9:4]   to square   (6 bits)
//	[3:2]   flag        (2 bits)
//	[1:0]   promotion offset from Knight (2 bits, meaningful only
//	        when flag == Promotion)
type Move uint16

// Flag distinguishes the four move shapes that need special handling
// in make/unmake beyond a plain piece relocation.
type Flag uint16

const (
	Normal Flag = iota
	EnPassant
	Promotion
	Castle
)

const (
	fromShift = 10
	toShift   = 4
	flagShift = 2
	promoMask = 0x3
)

// None is the zero Move, meaning "no move" (e.g. a TT slot with no
// stored move, or a failed move lookup).
const None Move = 0

// Null is the null move used by the null-move pruning heuristic. It is
// never a legal move (B1 to B1), so it is safe to use as a sentinel
// distinct from None.
const Null Move = Move(square.B1)<<fromShift | Move(square.B1)<<toShift

// New packs a move with the given flag and, for promotions, the
// promoted-to piece type (Knight, Bishop, Rook, or Queen).
func New(from, to square.Square, flag Flag, promotion piece.Type) Move {
	m := Move(from)<<fromShift | Move(to)<<toShift | Move(flag)<<flagShift
	if flag == Promotion {
		m |= Move(promotion-piece.Knight) & promoMask
	}
	return m
}

// From returns the move's source square.
func (m Move) From() square.Square {
	return square.Square((m >> fromShift) & 0x3f)
}

// To returns the move's destination square.
func (m Move) To() square.Square {
	return square.Square((m >> toShift) & 0x3f)
}

// Flag returns the move's flag.
func (m Move) Flag() Flag {
	return Flag((m >> flagShift) & 0x3)
}

// Promotion returns the piece type a pawn promotes to. Only meaningful
// when Flag() == Promotion.
func (m Move) Promotion() piece.Type {
	return piece.Knight + piece.Type(m&promoMask)
}

// IsCastle, IsEnPassant and IsPromotion report the move's flag.
func (m Move) IsCastle() bool     { return m.Flag() == Castle }
func (m Move) IsEnPassant() bool  { return m.Flag() == EnPassant }
func (m Move) IsPromotion() bool  { return m.Flag() == Promotion }

// String renders the move in long algebraic notation, e.g. "e2e4",
// "e1g1" (castling is encoded as the king's own two-square hop),
// "d7d8q" (promotion), "0000" (None).
func (m Move) String() string {
	if m == None {
		return "0000"
	}

	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += string(rune(promotionLetter(m.Promotion())))
	}
	return s
}

func promotionLetter(t piece.Type) byte {
	switch t {
	case piece.Knight:
		return 'n'
	case piece.Bishop:
		return 'b'
	case piece.Rook:
		return 'r'
	case piece.Queen:
		return 'q'
	default:
		panic("move: invalid promotion piece type")
	}
}

// PromotionFromLetter parses a UCI promotion-piece letter ('n','b','r','q').
func PromotionFromLetter(c byte) piece.Type {
	switch c {
	case 'n':
		return piece.Knight
	case 'b':
		return piece.Bishop
	case 'r':
		return piece.Rook
	case 'q':
		return piece.Queen
	default:
		panic("move: invalid promotion letter")
	}
}
