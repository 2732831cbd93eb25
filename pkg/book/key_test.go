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

package book

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/movegen"
)

func TestKeyIsDeterministic(t *testing.T) {
	a := board.New()
	b := board.New()
	require.Equal(t, Key(a), Key(b))
}

func TestKeyDiffersAfterAMove(t *testing.T) {
	pos := board.New()
	before := Key(pos)

	m := movegen.ToMove(pos, "e2e4")
	pos.Make(m)

	require.NotEqual(t, before, Key(pos))
}

func TestKeyChangesWithSideToMove(t *testing.T) {
	white := board.New()
	black := board.New()
	require.NoError(t, black.SetFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq - 0 1"))

	require.NotEqual(t, Key(white), Key(black))
}
