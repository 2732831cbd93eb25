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
)

func TestPeSTOSymmetricStartPosition(t *testing.T) {
	p := board.New()
	require.Equal(t, Draw, PeSTO(p), "the start position is symmetric and must evaluate to exactly zero")
}

func TestPeSTOFavorsMaterialAdvantage(t *testing.T) {
	p := &board.Position{}
	require.NoError(t, p.SetFEN("4k3/8/8/8/8/8/8/2R1K3 w - - 0 1"))
	require.Positive(t, int(PeSTO(p)), "a lone extra rook must score as an advantage for the side to move")
}

func TestPeSTOIsSideRelative(t *testing.T) {
	white := &board.Position{}
	require.NoError(t, white.SetFEN("4k3/8/8/8/8/8/8/2R1K3 w - - 0 1"))

	black := &board.Position{}
	require.NoError(t, black.SetFEN("4k3/8/8/8/8/8/8/2R1K3 b - - 0 1"))

	require.Equal(t, PeSTO(white), -PeSTO(black), "swapping the side to move on an otherwise identical board must negate the score")
}
