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

// Package square declares the squares of a chessboard and related
// utility functions.
//
// Squares are numbered file-major starting from A1: A1 is 0 and H8 is
// 63, so rank r (0-indexed) and file f give square index r*8+f. The
// null square is represented using the "-" symbol.
package square

import "fmt"

// Square represents a square on a chessboard.
type Square int8

// None is the null square, used as a sentinel in fields like en-passant
// target that may legitimately be empty.
const None Square = -1

// New creates a Square from its algebraic identifier, e.g. "e4".
func New(id string) Square {
	switch {
	case id == "-":
		return None
	case len(id) != 2:
		panic("square: invalid square id " + id)
	}

	return From(FileFrom(id[0]), RankFrom(id[1]))
}

// From creates a Square from the given file and rank.
func From(file File, rank Rank) Square {
	return Square(int(rank)*8 + int(file))
}

// FileFrom parses a file character 'a'..'h'.
func FileFrom(c byte) File {
	return File(c - 'a')
}

// RankFrom parses a rank character '1'..'8'.
func RankFrom(c byte) Rank {
	return Rank(c - '1')
}

// constants representing every square on the board, A1=0 .. H8=63.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1

	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2

	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3

	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4

	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5

	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6

	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7

	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8

	N = 64
)

// String converts a square into its algebraic string representation.
func (s Square) String() string {
	if s == None {
		return "-"
	}

	return fmt.Sprintf("%c%c", 'a'+byte(s.File()), '1'+byte(s.Rank()))
}

// File returns the file of the given square.
func (s Square) File() File {
	return File(s % 8)
}

// Rank returns the rank of the given square.
func (s Square) Rank() Rank {
	return Rank(s / 8)
}

// Diagonal returns the a1-h8 diagonal index the square lies on.
func (s Square) Diagonal() int {
	return int(s.Rank()) - int(s.File()) + 7
}

// AntiDiagonal returns the a8-h1 diagonal index the square lies on.
func (s Square) AntiDiagonal() int {
	return int(s.Rank()) + int(s.File())
}

// Flip returns the square reflected across the board's horizontal
// center line, used to mirror White piece-square tables for Black.
func (s Square) Flip() Square {
	return s ^ 56
}

// File represents a file (column) of the board, 0 ('a') to 7 ('h').
type File int8

func (f File) String() string {
	return string(rune('a' + f))
}

// Rank represents a rank (row) of the board, 0 ('1') to 7 ('8').
type Rank int8

func (r Rank) String() string {
	return string(rune('1' + r))
}

// Direction is a signed square offset along a ray or a leaper step.
type Direction int8

// named directions used by sliding and leaping attack generation.
const (
	North     Direction = 8
	South     Direction = -8
	East      Direction = 1
	West      Direction = -1
	NorthEast Direction = North + East
	NorthWest Direction = North + West
	SouthEast Direction = South + East
	SouthWest Direction = South + West
)
