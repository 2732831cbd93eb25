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

package eval

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/move"
	"github.com/corvidchess/corvid/pkg/square"
)

func TestSEEWinningCapture(t *testing.T) {
	// white rook takes a hanging black queen on d8, nothing recaptures.
	p := &board.Position{}
	require.NoError(t, p.SetFEN("3q3k/8/8/8/8/8/8/3RK3 w - - 0 1"))

	m := move.New(square.D1, square.D8, move.Normal, 0)
	require.True(t, SEE(p, m, 0), "winning a whole queen for nothing must beat a zero threshold")
}

func TestSEELosingCapture(t *testing.T) {
	// white rook takes a pawn defended by a black rook: losing exchange.
	p := &board.Position{}
	require.NoError(t, p.SetFEN("r3k3/p7/8/8/8/8/8/R3K3 w - - 0 1"))

	m := move.New(square.A1, square.A7, move.Normal, 0)
	require.False(t, SEE(p, m, 0), "trading a rook for a pawn must not beat a zero threshold")
}

func TestSEEEqualTrade(t *testing.T) {
	// white rook takes a black rook defended once by the d8 rook: R for R.
	p := &board.Position{}
	require.NoError(t, p.SetFEN("3r2k1/8/8/8/8/3r4/8/3RK3 w - - 0 1"))

	m := move.New(square.D1, square.D3, move.Normal, 0)
	require.True(t, SEE(p, m, 0), "an even rook trade must meet a zero threshold")
}
