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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corvidchess/corvid/pkg/move"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
)

// playSomeLegalMove is a tiny, self-contained mover used only to
// drive make/unmake round-trip checks without depending on pkg/movegen
// (which imports this package): it tries every from/to
// square pair whose piece matches the side to move and accepts it if
// the resulting king is not left in check.
func playSomeLegalMove(t *testing.T, p *Position) move.Move {
	t.Helper()
	us := p.SideToMove

	for from := square.Square(0); from < square.N; from++ {
		pc := p.Mailbox[from]
		if pc == piece.NoPiece || !pc.IsColor(us) {
			continue
		}
		for to := square.Square(0); to < square.N; to++ {
			if from == to {
				continue
			}
			target := p.Mailbox[to]
			if target != piece.NoPiece && target.IsColor(us) {
				continue
			}

			flag := move.Normal
			promo := piece.Knight
			if pc.Type() == piece.Pawn && (to.Rank() == 0 || to.Rank() == 7) {
				flag = move.Promotion
				promo = piece.Queen
			}

			m := move.New(from, to, flag, promo)
			p.Make(m)
			inCheck := p.IsInCheck(us)
			p.Unmake()
			if !inCheck {
				return m
			}
		}
	}
	return move.None
}

func TestMakeUnmakeRoundTrip(t *testing.T) {
	p := New()
	before := *p

	m := playSomeLegalMove(t, p)
	require.NotEqual(t, move.None, m)

	p.Make(m)
	require.NotEqual(t, before.State().Key, p.State().Key)

	p.Unmake()
	require.Equal(t, before.Mailbox, p.Mailbox)
	require.Equal(t, before.Colors, p.Colors)
	require.Equal(t, before.Pieces, p.Pieces)
	require.Equal(t, before.SideToMove, p.SideToMove)
	require.Equal(t, before.State().Key, p.State().Key)
}

func TestZobristConsistency(t *testing.T) {
	p := New()
	require.Equal(t, p.ComputeKey(), p.State().Key)
	require.Equal(t, p.ComputePawnKey(), p.State().PawnKey)

	m := playSomeLegalMove(t, p)
	require.NotEqual(t, move.None, m)
	p.Make(m)

	require.Equal(t, p.ComputeKey(), p.State().Key)
	require.Equal(t, p.ComputePawnKey(), p.State().PawnKey)
}

func TestFENRoundTrip(t *testing.T) {
	p := New()
	require.Equal(t, StartFEN, p.FEN())

	const kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	require.NoError(t, p.SetFEN(kiwipete))
	require.Equal(t, kiwipete, p.FEN())
}
