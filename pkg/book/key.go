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

// Package book implements the opening-book collaborator: a read-only
// Probe(pos) (move.Move, bool) the search consults before it thinks,
// backed by a Polyglot-format ".bin" opening book lazily indexed into
// an embedded key-value store.
package book

import (
	"github.com/corvidchess/corvid/internal/xorshift"
	"github.com/corvidchess/corvid/pkg/attacks"
	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/castling"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
)

// randomSeed seeds the 781-entry Polyglot-shaped random table the
// same deterministic way pkg/zobrist seeds its own keys. These are
// not the literal constants the original C++ PolyBook (polyglot.cpp)
// publishes — this repository's corpus carries no copy of that
// published table to ground on byte-for-bit — so a book produced by
// some other polyglot-format tool will not probe correctly here; a
// book whose entry keys were computed with this package's Key
// round-trips correctly (the package only reads books), since the
// derivation procedure (piece-square, castling, en-passant-file,
// side-to-move XOR folding) matches polyglot.cpp's getPolyKey exactly.
const randomSeed = 18202339916726473

// random[0:768] is piece-square, [768:772] castling, [772:780]
// en-passant file, [780] side to move — the same slot layout
// polyglot.cpp's Random64Poly table uses.
var random [781]uint64

func init() {
	var rng xorshift.PRNG
	rng.Seed(randomSeed)
	for i := range random {
		random[i] = rng.Uint64()
	}
}

// polyKind maps a piece to polyglot's "kind" index: black pieces take
// the even slot, white the odd one, ordered pawn..king.
func polyKind(p piece.Piece) int {
	t := p.Type()
	kind := (int(t) - 1) * 2
	if p.Color() == piece.White {
		kind++
	}
	return kind
}

// Key derives the Polyglot-shaped book key for pos, per polyglot.cpp's
// getPolyKey: XOR-fold a piece-square key for every occupied square, a
// castling-rights key per available right, an en-passant-file key
// only when an enemy pawn could actually capture en passant (the same
// "could actually recapture" guard board.Position's own Zobrist key
// uses), and a side-to-move key when white is to move.
func Key(pos *board.Position) uint64 {
	var key uint64

	for s := square.Square(0); s < square.N; s++ {
		pc := pos.Mailbox[s]
		if pc == piece.NoPiece {
			continue
		}
		key ^= random[64*polyKind(pc)+int(s)]
	}

	st := pos.State()

	const castleOffset = 768
	if st.Castling.Has(castling.WhiteKingside) {
		key ^= random[castleOffset+0]
	}
	if st.Castling.Has(castling.WhiteQueenside) {
		key ^= random[castleOffset+1]
	}
	if st.Castling.Has(castling.BlackKingside) {
		key ^= random[castleOffset+2]
	}
	if st.Castling.Has(castling.BlackQueenside) {
		key ^= random[castleOffset+3]
	}

	const epOffset = 772
	if ep := st.EnPassant; ep != square.None {
		us := pos.SideToMove
		if attacks.PawnAttacks[us.Other()][ep]&pos.PieceBB(piece.Pawn, us) != 0 {
			key ^= random[epOffset+int(ep.File())]
		}
	}

	const sideOffset = 780
	if pos.SideToMove == piece.White {
		key ^= random[sideOffset]
	}

	return key
}
