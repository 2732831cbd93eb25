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
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corvidchess/corvid/pkg/board"
)

// writeBin writes a flat Polyglot-shaped ".bin" file with one entry
// per (key, move, weight) triple.
func writeBin(t *testing.T, entries []entry) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "book.bin")

	raw := make([]byte, 0, entrySize*len(entries))
	for _, e := range entries {
		buf := make([]byte, entrySize)
		binary.BigEndian.PutUint64(buf[0:8], e.key)
		binary.BigEndian.PutUint16(buf[8:10], e.move)
		binary.BigEndian.PutUint16(buf[10:12], e.weight)
		raw = append(raw, buf...)
	}

	require.NoError(t, os.WriteFile(path, raw, 0o644))
	return path
}

func TestStoreProbeFindsIndexedMove(t *testing.T) {
	pos := board.New()
	// e2e4 packed as {toFile:4, toRank:3, fromFile:4, fromRank:1, promo:0}.
	e2e4 := uint16(4 | 3<<3 | 4<<6 | 1<<9)

	path := writeBin(t, []entry{{key: Key(pos), move: e2e4, weight: 10}})

	b, err := Open(path, filepath.Join(t.TempDir(), "index"))
	require.NoError(t, err)
	defer b.Close()

	m, ok := b.Probe(pos)
	require.True(t, ok)
	require.Equal(t, "e2e4", m.String())
}

func TestStoreProbeMissesUnknownPosition(t *testing.T) {
	pos := board.New()
	require.NoError(t, pos.SetFEN("8/8/8/4k3/8/8/8/4K3 w - - 0 1"))

	path := writeBin(t, []entry{{key: 0xabcd, move: 1, weight: 1}})

	b, err := Open(path, filepath.Join(t.TempDir(), "index"))
	require.NoError(t, err)
	defer b.Close()

	_, ok := b.Probe(pos)
	require.False(t, ok)
}

func TestStoreRejectsTruncatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "truncated.bin")
	require.NoError(t, os.WriteFile(path, []byte{1, 2, 3}, 0o644))

	_, err := Open(path, filepath.Join(t.TempDir(), "index"))
	require.Error(t, err)
}

func TestStoreReindexSkipsUnchangedSource(t *testing.T) {
	pos := board.New()
	e2e4 := uint16(4 | 3<<3 | 4<<6 | 1<<9)
	path := writeBin(t, []entry{{key: Key(pos), move: e2e4, weight: 10}})
	indexDir := filepath.Join(t.TempDir(), "index")

	b1, err := Open(path, indexDir)
	require.NoError(t, err)
	require.NoError(t, b1.Close())

	b2, err := Open(path, indexDir)
	require.NoError(t, err)
	defer b2.Close()

	m, ok := b2.Probe(pos)
	require.True(t, ok)
	require.Equal(t, "e2e4", m.String())
}
