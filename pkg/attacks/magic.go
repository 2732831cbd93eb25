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

package attacks

import (
	"github.com/corvidchess/corvid/internal/xorshift"
	"github.com/corvidchess/corvid/pkg/bitboard"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
)

// maximum number of distinct blocker subsets a single square's
// relevancy mask can produce, for rooks and bishops respectively.
const (
	maxRookBlockerSets   = 4096
	maxBishopBlockerSets = 512
)

// magic holds the per-square data needed to index into a slider's
// dense attack table: the multiplier, the relevant-occupancy mask,
// and the shift that turns a masked occupancy into a table index.
type magic struct {
	number uint64
	mask   bitboard.Board
	shift  uint
}

var rookMagics [square.N]magic
var bishopMagics [square.N]magic

var rookMoves [square.N][maxRookBlockerSets]bitboard.Board
var bishopMoves [square.N][maxBishopBlockerSets]bitboard.Board

// magicSeeds are per-rank PRNG seeds known to converge quickly when
// searching for rook/bishop magic numbers.
var magicSeeds = [8]uint64{255, 16645, 15100, 12281, 32803, 55013, 10316, 728}

var rookDirs = []offset{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
var bishopDirs = []offset{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

// slide rays from s in the given directions, stopping at (and
// including) the first blocker in occ. If edges is true, the ray is
// truncated one square before the board edge in each direction — this
// produces the *relevancy mask*, since a blocker on the edge itself
// never changes the attack set.
func slide(s square.Square, occ bitboard.Board, dirs []offset, edges bool) bitboard.Board {
	var b bitboard.Board
	f0, r0 := int(s.File()), int(s.Rank())

	for _, d := range dirs {
		f, r := f0+d.df, r0+d.dr
		for f >= 0 && f <= 7 && r >= 0 && r <= 7 {
			if edges {
				nf, nr := f+d.df, r+d.dr
				if nf < 0 || nf > 7 || nr < 0 || nr > 7 {
					break
				}
			}

			sq := square.From(square.File(f), square.Rank(r))
			b.Set(sq)
			if occ.IsSet(sq) {
				break
			}

			f, r = f+d.df, r+d.dr
		}
	}

	return b
}

func generateMagics(dirs []offset, magics *[square.N]magic, moves func(s square.Square) []bitboard.Board) {
	var rng xorshift.PRNG

	for s := square.Square(0); s < square.N; s++ {
		m := &magics[s]
		m.mask = slide(s, bitboard.Empty, dirs, true)

		bits := m.mask.Count()
		m.shift = uint(64 - bits)

		permutations := 1 << bits
		blockerSets := make([]bitboard.Board, permutations)
		attackSets := make([]bitboard.Board, permutations)

		blockers := bitboard.Empty
		for i := 0; blockers != bitboard.Empty || i == 0; i++ {
			blockerSets[i] = blockers
			attackSets[i] = slide(s, blockers, dirs, false)
			blockers = (blockers - m.mask) & m.mask
		}

		rng.Seed(magicSeeds[s.Rank()])

		table := moves(s)

	search:
		for {
			candidate := rng.Sparse()
			m.number = candidate

			for i := range table {
				table[i] = bitboard.Empty
			}

			for i := 0; i < permutations; i++ {
				index := (uint64(blockerSets[i]) * candidate) >> m.shift
				if table[index] != bitboard.Empty && table[index] != attackSets[i] {
					continue search
				}
				table[index] = attackSets[i]
			}

			break
		}
	}
}

func init() {
	generateMagics(rookDirs, &rookMagics, func(s square.Square) []bitboard.Board {
		return rookMoves[s][:]
	})
	generateMagics(bishopDirs, &bishopMagics, func(s square.Square) []bitboard.Board {
		return bishopMoves[s][:]
	})
}

func rookIndex(s square.Square, occ bitboard.Board) uint64 {
	m := &rookMagics[s]
	return (uint64(occ&m.mask) * m.number) >> m.shift
}

func bishopIndex(s square.Square, occ bitboard.Board) uint64 {
	m := &bishopMagics[s]
	return (uint64(occ&m.mask) * m.number) >> m.shift
}

// Rook returns the attack set of a rook on s given the combined
// occupancy of both sides, not yet masked by friendly occupancy.
func Rook(s square.Square, occ bitboard.Board) bitboard.Board {
	return rookMoves[s][rookIndex(s, occ)]
}

// Bishop returns the attack set of a bishop on s given the combined
// occupancy of both sides, not yet masked by friendly occupancy.
func Bishop(s square.Square, occ bitboard.Board) bitboard.Board {
	return bishopMoves[s][bishopIndex(s, occ)]
}

// Queen returns the attack set of a queen on s, the union of the rook
// and bishop attack sets.
func Queen(s square.Square, occ bitboard.Board) bitboard.Board {
	return Rook(s, occ) | Bishop(s, occ)
}

// SlidingAttacksOf returns the attack set of sliding piece type t on s
// given combined occupancy occ.
func SlidingAttacksOf(t piece.Type, s square.Square, occ bitboard.Board) bitboard.Board {
	switch t {
	case piece.Bishop:
		return Bishop(s, occ)
	case piece.Rook:
		return Rook(s, occ)
	case piece.Queen:
		return Queen(s, occ)
	default:
		panic("attacks: not a sliding piece type")
	}
}
