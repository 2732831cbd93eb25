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
	"github.com/corvidchess/corvid/pkg/castling"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
	"github.com/corvidchess/corvid/pkg/zobrist"
)

func zobristOf(p piece.Piece, s square.Square) uint64 {
	return zobrist.PieceSquare[p][s]
}

func zobristCastling(r castling.Rights) uint64 {
	return zobrist.Castling[r]
}

func zobristEnPassant(s square.Square) uint64 {
	if s == square.None {
		return 0
	}
	return zobrist.EnPassant[s.File()]
}

// ComputeKey recomputes the Zobrist key of the current position from
// scratch, used by tests to check the incrementally maintained key
// against a from-scratch recomputation (invariant 5 / §8 property 2).
func (p *Position) ComputeKey() uint64 {
	var key uint64

	for s := square.Square(0); s < square.N; s++ {
		if pc := p.Mailbox[s]; pc != piece.NoPiece {
			key ^= zobristOf(pc, s)
		}
	}

	key ^= zobristCastling(p.State().Castling)
	key ^= zobristEnPassant(p.State().EnPassant)

	if p.SideToMove == piece.Black {
		key ^= zobrist.SideToMove
	}

	return key
}

// ComputePawnKey recomputes the pawn-structure key from scratch.
func (p *Position) ComputePawnKey() uint64 {
	var key uint64
	for c := piece.White; c <= piece.Black; c++ {
		pawns := p.PieceBB(piece.Pawn, c)
		for pawns != 0 {
			key ^= zobristOf(piece.New(piece.Pawn, c), pawns.Pop())
		}
	}
	return key
}
