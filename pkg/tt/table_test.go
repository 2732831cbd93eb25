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

package tt

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/move"
	"github.com/corvidchess/corvid/pkg/square"
)

func TestProbeMiss(t *testing.T) {
	table := New(1)

	hit, _, _ := table.Probe(0x1234)
	require.False(t, hit, "an empty table must never report a hit")
}

func TestWriteThenProbeHits(t *testing.T) {
	table := New(1)
	key := uint64(0xdeadbeefcafef00d)
	m := move.New(square.E2, square.E4, move.Normal, 0)

	_, _, w := table.Probe(key)
	w.Write(key, eval.Eval(37), true, Exact, 4, m, eval.Eval(12), 0, table.generation)

	hit, data, _ := table.Probe(key)
	require.True(t, hit)
	require.Equal(t, m, data.Move())
	require.Equal(t, eval.Eval(37), data.Value(0, 0))
	require.Equal(t, 4, data.Depth())
	require.Equal(t, Exact, data.Bound())
	require.True(t, data.IsPV())
}

func TestDifferentKeySameBucketMisses(t *testing.T) {
	table := New(1)
	key := uint64(0x1111111111111111)
	other := key ^ (uint64(1) << 48) // same low bits, different tag

	_, _, w := table.Probe(key)
	w.Write(key, eval.Eval(10), false, Exact, 2, move.None, eval.Draw, 0, table.generation)

	hit, _, _ := table.Probe(other)
	require.False(t, hit, "a different key-tag sharing an index must not be reported as a hit")
}

func TestMateScoreRoundTrips(t *testing.T) {
	table := New(1)
	key := uint64(0xabc)

	mate := eval.MateIn(3)
	_, _, w := table.Probe(key)
	w.Write(key, mate, false, Exact, 1, move.None, eval.Draw, 5, table.generation)

	_, data, _ := table.Probe(key)
	require.Equal(t, mate, data.Value(5, 0), "a mate score stored at one ply must decode back to the same mate distance from the same ply")
}

func TestValueDowngradesMateBeyondFiftyMoveHorizon(t *testing.T) {
	table := New(1)
	key := uint64(0xdef)

	mate := eval.MateIn(80)
	_, _, w := table.Probe(key)
	w.Write(key, mate, false, Exact, 1, move.None, eval.Draw, 0, table.generation)

	_, data, _ := table.Probe(key)
	require.Equal(t, eval.MateBound-1, data.Value(0, 90), "a mate farther off than the fifty-move horizon allows must be downgraded")
	require.Equal(t, mate, data.Value(0, 0), "the same entry must decode untouched when the horizon isn't a constraint")
}

func TestNewSearchAgesEntries(t *testing.T) {
	table := New(1)
	key := uint64(0x42)

	_, _, w := table.Probe(key)
	w.Write(key, eval.Eval(1), false, Exact, 10, move.None, eval.Draw, 0, table.generation)

	table.NewSearch()
	require.NotEqual(t, uint8(0), table.generation)
}

func TestHashfullEmptyTableIsZero(t *testing.T) {
	table := New(1)
	require.Equal(t, 0, table.Hashfull(255))
}
