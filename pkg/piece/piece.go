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

// Package piece implements representations of chess pieces and colors.
package piece

// Color represents the color of a Piece.
type Color int8

// the two piece colors.
const (
	White Color = iota
	Black

	NColor = 2
)

// NewColor creates a Color from its UCI/FEN identifier ("w" or "b").
func NewColor(id string) Color {
	switch id {
	case "w":
		return White
	case "b":
		return Black
	default:
		panic("piece: invalid color id " + id)
	}
}

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ Black
}

func (c Color) String() string {
	if c == Black {
		return "b"
	}
	return "w"
}

// Type represents the type of a Piece, independent of color.
type Type int8

// the six piece types, plus NoType for an empty square.
const (
	NoType Type = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King

	NType = 7
)

func (t Type) String() string {
	return Piece(t | 8).String()
}

// Promotions lists the piece types a pawn may promote to, queen first
// since it dominates move ordering as the default promotion choice.
var Promotions = []Type{Queen, Rook, Bishop, Knight}

// Piece represents a colored chess piece, or the empty square.
type Piece int8

// NoPiece represents an empty square.
const NoPiece Piece = 0

// the twelve piece values, six per color.
const (
	WhitePawn   = Piece(Pawn)
	WhiteKnight = Piece(Pawn) + 1
	WhiteBishop = Piece(Pawn) + 2
	WhiteRook   = Piece(Pawn) + 3
	WhiteQueen  = Piece(Pawn) + 4
	WhiteKing   = Piece(Pawn) + 5

	BlackPawn   = Piece(Pawn) + 8
	BlackKnight = Piece(Pawn) + 9
	BlackBishop = Piece(Pawn) + 10
	BlackRook   = Piece(Pawn) + 11
	BlackQueen  = Piece(Pawn) + 12
	BlackKing   = Piece(Pawn) + 13

	N = 16
)

// New builds a Piece from a type and color.
func New(t Type, c Color) Piece {
	return Piece(c<<3) + Piece(t)
}

// NewFromString creates a Piece from its FEN identifier, e.g. "K", "p".
func NewFromString(id string) Piece {
	switch id {
	case "K":
		return WhiteKing
	case "Q":
		return WhiteQueen
	case "R":
		return WhiteRook
	case "N":
		return WhiteKnight
	case "B":
		return WhiteBishop
	case "P":
		return WhitePawn
	case "k":
		return BlackKing
	case "q":
		return BlackQueen
	case "r":
		return BlackRook
	case "n":
		return BlackKnight
	case "b":
		return BlackBishop
	case "p":
		return BlackPawn
	default:
		panic("piece: invalid piece id " + id)
	}
}

var pieceStrings = [...]string{
	NoPiece:     " ",
	WhitePawn:   "P",
	WhiteKnight: "N",
	WhiteBishop: "B",
	WhiteRook:   "R",
	WhiteQueen:  "Q",
	WhiteKing:   "K",
	BlackPawn:   "p",
	BlackKnight: "n",
	BlackBishop: "b",
	BlackRook:   "r",
	BlackQueen:  "q",
	BlackKing:   "k",
}

func (p Piece) String() string {
	return pieceStrings[p]
}

// Type returns the piece type of p.
func (p Piece) Type() Type {
	if p == NoPiece {
		return NoType
	}
	return Type(p & 7)
}

// Color returns the piece color of p. Panics on NoPiece.
func (p Piece) Color() Color {
	if p == NoPiece {
		panic("piece: color of NoPiece is undefined")
	}
	return Color(p >> 3)
}

// Is reports whether p has the given type.
func (p Piece) Is(t Type) bool {
	return p.Type() == t
}

// IsColor reports whether p has the given color.
func (p Piece) IsColor(c Color) bool {
	return p != NoPiece && p.Color() == c
}

// Value holds the classical centipawn material value of each piece
// type, indexed by Type; NoType and King are zero since the king is
// never traded and material scoring never counts it.
var Value = [NType]int{
	NoType: 0,
	Pawn:   100,
	Knight: 320,
	Bishop: 330,
	Rook:   500,
	Queen:  900,
	King:   0,
}

// Phase holds the game-phase weight of each piece type, used to blend
// middlegame/endgame piece-square tables.
var Phase = [NType]int{
	NoType: 0,
	Pawn:   0,
	Knight: 1,
	Bishop: 1,
	Rook:   2,
	Queen:  4,
	King:   0,
}

// TotalPhase is the phase value of the starting position (4 knights +
// 4 bishops + 4 rooks + 2 queens), used to normalize the phase ratio.
var TotalPhase = 4*Phase[Knight] + 4*Phase[Bishop] + 4*Phase[Rook] + 2*Phase[Queen]
