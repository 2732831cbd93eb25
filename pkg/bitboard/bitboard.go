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

// Package bitboard implements a 64-bit bitboard and related helpers.
package bitboard

import (
	"math/bits"
	"strings"

	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
)

// Board is a set of squares packed into a 64-bit word; bit i set means
// square i is a member.
type Board uint64

// the board edge files and ranks, and the empty/full boards.
const (
	FileA Board = 0x0101010101010101
	FileH Board = FileA << 7
	Rank1 Board = 0xff
	Rank8 Board = Rank1 << (8 * 7)

	Empty Board = 0
	Full  Board = 0xffffffffffffffff
)

// Squares holds the singleton bitboard for every square, indexed by
// square.Square, precomputed once at init.
var Squares [square.N]Board

func init() {
	for s := square.Square(0); s < square.N; s++ {
		Squares[s] = 1 << uint(s)
	}
}

// FromSquare returns the singleton bitboard containing only s.
func FromSquare(s square.Square) Board {
	if s == square.None {
		return Empty
	}
	return Squares[s]
}

func (b Board) String() string {
	var sb strings.Builder
	for r := 7; r >= 0; r-- {
		for f := 0; f < 8; f++ {
			sq := square.From(square.File(f), square.Rank(r))
			if b.IsSet(sq) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
			if f < 7 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Up shifts b one rank towards the far side relative to c.
func (b Board) Up(c piece.Color) Board {
	if c == piece.White {
		return b.North()
	}
	return b.South()
}

// Down shifts b one rank towards the near side relative to c.
func (b Board) Down(c piece.Color) Board {
	if c == piece.White {
		return b.South()
	}
	return b.North()
}

// North shifts b towards rank 8.
func (b Board) North() Board { return b << 8 }

// South shifts b towards rank 1.
func (b Board) South() Board { return b >> 8 }

// East shifts b towards the h-file, discarding wraparound.
func (b Board) East() Board { return (b &^ FileH) << 1 }

// West shifts b towards the a-file, discarding wraparound.
func (b Board) West() Board { return (b &^ FileA) >> 1 }

// Pop removes and returns the least-significant set square.
func (b *Board) Pop() square.Square {
	sq := b.LSB()
	*b &= *b - 1
	return sq
}

// Count returns the number of set squares.
func (b Board) Count() int {
	return bits.OnesCount64(uint64(b))
}

// LSB returns the least-significant set square without removing it.
func (b Board) LSB() square.Square {
	return square.Square(bits.TrailingZeros64(uint64(b)))
}

// IsSet reports whether s is a member of b.
func (b Board) IsSet(s square.Square) bool {
	return b&Squares[s] != 0
}

// Set adds s to b. A no-op for square.None.
func (b *Board) Set(s square.Square) {
	if s == square.None {
		return
	}
	*b |= Squares[s]
}

// Unset removes s from b. A no-op for square.None.
func (b *Board) Unset(s square.Square) {
	if s == square.None {
		return
	}
	*b &^= Squares[s]
}

// MoreThanOne reports whether b has two or more set squares, used for
// cheap double-check / single-attacker tests without a full popcount.
func MoreThanOne(b Board) bool {
	return b&(b-1) != 0
}
