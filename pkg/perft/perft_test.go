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

package perft

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/board"
)

// cases are the cross-check positions: each one's leaf count at depth
// is known exactly, so any mismatch points at a make/unmake, mask, or
// generator bug rather than at search or evaluation.
var cases = []struct {
	name  string
	fen   string
	depth int
	nodes uint64
	long  bool
}{
	{"initial/5", board.StartFEN, 5, 4865609, true},
	{"initial/6", board.StartFEN, 6, 119060324, true},
	{"kiwipete/5", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 5, 193690690, true},
	{"rook-endgame/6", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 6, 11030083, true},
	{"tricky-castle/5", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", 5, 15833292, true},
	{"promotion-heavy/5", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", 5, 89941194, true},
}

func TestPerft(t *testing.T) {
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			if c.long && testing.Short() {
				t.Skipf("skipping %d-node perft in -short mode", c.nodes)
			}

			p := &board.Position{}
			if err := p.SetFEN(c.fen); err != nil {
				t.Fatalf("SetFEN(%q): %v", c.fen, err)
			}

			if got := Count(p, c.depth); got != c.nodes {
				t.Errorf("perft(%d) = %d, want %d", c.depth, got, c.nodes)
			}
		})
	}
}

// TestPerftShallow covers three of the same positions at depth 1,
// small enough to run every time, unconditionally: a regression here means a real bug,
// not just a slow CI box.
func TestPerftShallow(t *testing.T) {
	for _, fen := range []string{
		board.StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	} {
		p := &board.Position{}
		if err := p.SetFEN(fen); err != nil {
			t.Fatalf("SetFEN(%q): %v", fen, err)
		}
		if got := Count(p, 1); got == 0 {
			t.Errorf("perft(1) on %q returned 0 moves", fen)
		}
	}
}
