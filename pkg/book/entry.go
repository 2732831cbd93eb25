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
	"fmt"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/move"
	"github.com/corvidchess/corvid/pkg/movegen"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
)

// entrySize is the on-disk size, in bytes, of one Polyglot book entry:
// an 8-byte key, a 2-byte move, a 2-byte weight, and a 4-byte learn
// counter this engine never reads, all stored big-endian.
const entrySize = 16

// entry is one decoded Polyglot book record.
type entry struct {
	key    uint64
	move   uint16
	weight uint16
}

// decodeEntry parses one entrySize-byte big-endian record, per
// polyglot.hpp's Entry layout.
func decodeEntry(raw []byte) (entry, error) {
	if len(raw) != entrySize {
		return entry{}, fmt.Errorf("book: invalid entry length %d, want %d", len(raw), entrySize)
	}
	return entry{
		key:    binary.BigEndian.Uint64(raw[0:8]),
		move:   binary.BigEndian.Uint16(raw[8:10]),
		weight: binary.BigEndian.Uint16(raw[10:12]),
	}, nil
}

// polyglotPromotion is polyglot.cpp's promotedPieceASCII table: the
// promoted-piece bits (0 means "no promotion") map to the usual UCI
// promotion letters in knight/bishop/rook/queen order.
var polyglotPromotion = [...]byte{0, 'n', 'b', 'r', 'q'}

// decodeMove converts a raw Polyglot move — {promo:3, fromRank:3,
// fromFile:3, toRank:3, toFile:3} packed in a uint16 — into this
// engine's Move, per polyglot.cpp's polyMoveToEngineMove: build the
// UCI string the packed fields describe, then resolve it against the
// position's legal moves. A castle encoded the polyglot way (a king
// move onto its own rook's square, in the Chess960 convention) matches
// no legal move, so it is retried as the king's two-square hop.
func decodeMove(pos *board.Position, raw uint16) move.Move {
	toFile := raw & 7
	toRank := (raw >> 3) & 7
	fromFile := (raw >> 6) & 7
	fromRank := (raw >> 9) & 7
	promotion := (raw >> 12) & 7

	uci := string([]byte{
		'a' + byte(fromFile), '1' + byte(fromRank),
		'a' + byte(toFile), '1' + byte(toRank),
	})
	if promotion > 0 && int(promotion) < len(polyglotPromotion) {
		uci += string(polyglotPromotion[promotion])
	}

	if m := movegen.ToMove(pos, uci); m != move.None {
		return m
	}

	// Polyglot books historically encode castling as the king "moving
	// onto" its own rook's square (e1h1, e1a1, e8h8, e8a8), regardless
	// of whether the position is standard chess or Chess960. Retry as
	// the king's ordinary two-square hop when the decoded move starts
	// on the king's square and lands on a friendly rook.
	kingSq := pos.King(pos.SideToMove)
	from := square.From(square.File(fromFile), square.Rank(fromRank))
	to := square.From(square.File(toFile), square.Rank(toRank))
	if from != kingSq || pos.Mailbox[to].Type() != piece.Rook || !pos.Mailbox[to].IsColor(pos.SideToMove) {
		return move.None
	}

	rank := kingSq.Rank()
	dest := square.From(square.File(6), rank) // kingside
	if to.File() < kingSq.File() {
		dest = square.From(square.File(2), rank) // queenside
	}
	return movegen.ToMove(pos, kingSq.String()+dest.String())
}
