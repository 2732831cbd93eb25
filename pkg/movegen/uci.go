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

package movegen

import (
	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/move"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
)

// ToMove parses a long-algebraic UCI move string ("e2e4", "e7e8q",
// ...) against the position's legal moves and returns the matching
// Move, or move.None if uci names no legal move. The driver is never
// allowed to hand the core an illegal move (§7), so this is the only
// place a UCI move string becomes a Move.
func ToMove(p *board.Position, uci string) move.Move {
	if len(uci) < 4 || len(uci) > 5 {
		return move.None
	}
	for _, c := range uci[:4] {
		switch {
		case c >= 'a' && c <= 'h':
		case c >= '1' && c <= '8':
		default:
			return move.None
		}
	}

	from := parseSquare(uci[0:2])
	to := parseSquare(uci[2:4])

	promotion := piece.NoType
	if len(uci) == 5 {
		promotion = promotionType(uci[4])
		if promotion == piece.NoType {
			return move.None
		}
	}

	for _, m := range GenerateAll(p) {
		if m.From() != from || m.To() != to {
			continue
		}
		if m.IsPromotion() != (promotion != piece.NoType) {
			continue
		}
		if m.IsPromotion() && m.Promotion() != promotion {
			continue
		}
		return m
	}

	return move.None
}

func parseSquare(s string) square.Square {
	return square.From(square.FileFrom(s[0]), square.RankFrom(s[1]))
}

func promotionType(c byte) piece.Type {
	switch c {
	case 'n':
		return piece.Knight
	case 'b':
		return piece.Bishop
	case 'r':
		return piece.Rook
	case 'q':
		return piece.Queen
	default:
		return piece.NoType
	}
}
