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

package threads

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/corvidchess/corvid/pkg/tt"
)

func TestPoolStartThinkingFindsAMove(t *testing.T) {
	table := tt.New(1)
	pool := New(3, table, eval.PeSTO)
	defer pool.Close()

	pos := board.New()

	pv, score := pool.StartThinking(pos, search.Limits{Depth: 4}, nil)

	require.Positive(t, pv.Len())
	require.Less(t, score, eval.MateBound)
	require.Greater(t, score, -eval.MateBound)
}

func TestSkipPatternNeverSkipsMainThread(t *testing.T) {
	size, phase := skipPattern(0)
	require.Equal(t, 0, size)
	require.Equal(t, 0, phase)
}

func TestSkipPatternVariesAcrossWorkers(t *testing.T) {
	sizeA, _ := skipPattern(1)
	sizeB, _ := skipPattern(2)
	require.NotEqual(t, sizeA, sizeB)
}
