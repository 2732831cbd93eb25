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

// Package zobrist holds the deterministic random constants used to
// incrementally hash a Position: one key per (piece, square), one per
// castling-rights value, one per en-passant file, and one for side to
// move.
package zobrist

import (
	"github.com/corvidchess/corvid/internal/xorshift"
	"github.com/corvidchess/corvid/pkg/castling"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
)

// seed is the Stockfish-style xorshift64* seed used so the generated
// keys are reproducible across builds and languages.
const seed = 1070372

// PieceSquare[piece][square] is the key toggled whenever a piece is
// placed on or removed from a square.
var PieceSquare [piece.N][square.N]uint64

// Castling[rights] is the key toggled whenever the castling-rights
// mask changes, indexed by the raw rights value.
var Castling [castling.N]uint64

// EnPassant[file] is the key toggled whenever the en-passant target
// file changes.
var EnPassant [8]uint64

// SideToMove is XORed in whenever the side to move changes.
var SideToMove uint64

func init() {
	var rng xorshift.PRNG
	rng.Seed(seed)

	for p := piece.Piece(0); p < piece.N; p++ {
		for s := square.Square(0); s < square.N; s++ {
			PieceSquare[p][s] = rng.Uint64()
		}
	}

	for r := 0; r < castling.N; r++ {
		Castling[r] = rng.Uint64()
	}

	for f := 0; f < 8; f++ {
		EnPassant[f] = rng.Uint64()
	}

	SideToMove = rng.Uint64()
}
