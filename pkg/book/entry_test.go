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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corvidchess/corvid/pkg/board"
)

func TestDecodeEntryRejectsWrongLength(t *testing.T) {
	_, err := decodeEntry([]byte{1, 2, 3})
	require.Error(t, err)
}

func TestDecodeEntryParsesFields(t *testing.T) {
	raw := make([]byte, entrySize)
	binary.BigEndian.PutUint64(raw[0:8], 0xdeadbeefcafebabe)
	binary.BigEndian.PutUint16(raw[8:10], 796)
	binary.BigEndian.PutUint16(raw[10:12], 10)

	e, err := decodeEntry(raw)
	require.NoError(t, err)
	require.Equal(t, uint64(0xdeadbeefcafebabe), e.key)
	require.Equal(t, uint16(796), e.move)
	require.Equal(t, uint16(10), e.weight)
}

func TestDecodeMoveResolvesStartPositionPawnPush(t *testing.T) {
	pos := board.New()
	// e2e4 packed as {toFile:4, toRank:3, fromFile:4, fromRank:1, promo:0}.
	raw := uint16(4 | 3<<3 | 4<<6 | 1<<9)

	m := decodeMove(pos, raw)
	require.Equal(t, "e2e4", m.String())
}

func TestDecodeMoveRejectsIllegalMove(t *testing.T) {
	pos := board.New()
	// a1a2 is blocked by white's own pawn in the starting position.
	raw := uint16(0 | 1<<3 | 0<<6 | 0<<9)

	m := decodeMove(pos, raw)
	require.Equal(t, "0000", m.String())
}
