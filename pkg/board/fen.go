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

package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/corvidchess/corvid/pkg/castling"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
)

// StartFEN is the FEN of the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// New returns a Position set up for the standard starting position.
func New() *Position {
	p := &Position{}
	if err := p.SetFEN(StartFEN); err != nil {
		panic(err)
	}
	return p
}

// SetFEN resets the position to the one described by fen, discarding
// any existing state-arena history. It is the only entry point that
// constructs a Position's Zobrist key from scratch, per invariant 5.
func (p *Position) SetFEN(fen string) error {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return fmt.Errorf("board: invalid fen %q: need at least 4 fields", fen)
	}

	*p = Position{}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return fmt.Errorf("board: invalid fen %q: need 8 ranks", fen)
	}

	for i, rankStr := range ranks {
		rank := square.Rank(7 - i)
		file := square.File(0)

		for _, c := range rankStr {
			switch {
			case c >= '1' && c <= '8':
				file += square.File(c - '0')
			default:
				pc := piece.NewFromString(string(c))
				p.rawPut(square.From(file, rank), pc)
				file++
			}
		}
	}

	p.SideToMove = piece.NewColor(fields[1])

	st := p.State()
	st.Castling = castling.NewRights(fields[2])
	st.EnPassant = square.New(fields[3])

	if len(fields) > 4 {
		if n, err := strconv.Atoi(fields[4]); err == nil {
			st.HalfMoves = n
		}
	}
	st.FullMoves = 1
	if len(fields) > 5 {
		if n, err := strconv.Atoi(fields[5]); err == nil {
			st.FullMoves = n
		}
	}

	for _, c := range [piece.NColor]piece.Color{piece.White, piece.Black} {
		for t := piece.Pawn; t <= piece.King; t++ {
			st.Phase += p.PieceBB(t, c).Count() * piece.Phase[t]
		}
	}

	st.Key = p.ComputeKey()
	st.PawnKey = p.ComputePawnKey()

	p.refreshMasks()
	return nil
}

// FEN renders the position back into Forsyth-Edwards notation.
func (p *Position) FEN() string {
	var sb strings.Builder

	for r := 7; r >= 0; r-- {
		empty := 0
		for f := 0; f < 8; f++ {
			s := square.From(square.File(f), square.Rank(r))
			pc := p.Mailbox[s]
			if pc == piece.NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pc.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r > 0 {
			sb.WriteByte('/')
		}
	}

	st := p.State()
	sb.WriteByte(' ')
	sb.WriteString(p.SideToMove.String())
	sb.WriteByte(' ')
	sb.WriteString(st.Castling.String())
	sb.WriteByte(' ')
	sb.WriteString(st.EnPassant.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(st.HalfMoves))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(st.FullMoves))

	return sb.String()
}

func (p *Position) String() string {
	var sb strings.Builder
	for r := 7; r >= 0; r-- {
		for f := 0; f < 8; f++ {
			s := square.From(square.File(f), square.Rank(r))
			sb.WriteString(p.Mailbox[s].String())
			if f < 7 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
