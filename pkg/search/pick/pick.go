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

// Package pick implements the staged move picker the search core
// drives one move at a time: the transposition-table move first, then
// good captures, then quiets, then the captures that turned out to
// lose material. Moves are scored lazily per stage rather than all at
// once, since alpha-beta usually cuts a node off long before its tail
// is ever examined.
package pick

import (
	"github.com/corvidchess/corvid/pkg/attacks"
	"github.com/corvidchess/corvid/pkg/bitboard"
	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/history"
	"github.com/corvidchess/corvid/pkg/move"
	"github.com/corvidchess/corvid/pkg/movegen"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
)

// stage is the picker's internal state machine.
type stage int

const (
	stageTT stage = iota
	stageCaptureInit
	stageGoodCapture
	stageQuietInit
	stageGoodQuiet
	stageBadCapture
	stageDone

	stageProbCutInit
	stageProbCut
)

// Mode selects which subset of stages a Picker walks.
type Mode int

const (
	MainSearch Mode = iota // the full TTMove..BadCapture sequence
	QSearch                // TTMove then captures only, no quiets
	ProbCut                // captures beating a caller-supplied SEE threshold
)

// scoring constants, per the move-ordering weights quiescence and the
// main search both rely on.
const (
	mvvScale         = 100
	queenPromoBonus  = 64000
	ttMoveBonus      = 1_000_000
	killer1Bonus     = 9000
	killer2Bonus     = 8000
	counterMoveBonus = 32000
)

// mvvValue is the material value SEE/MVV-LVA rank captures by,
// indexed by victim type — coarser than pkg/eval's tapered PSQT
// values since move ordering only needs a stable ranking.
var mvvValue = [piece.NType]int32{
	piece.Pawn:   100,
	piece.Knight: 320,
	piece.Bishop: 330,
	piece.Rook:   500,
	piece.Queen:  900,
}

// badCapture is a capture set aside by GoodCapture because its SEE
// fell short of the acceptance threshold; it is replayed, still
// ranked by its original score, after every quiet move is exhausted.
type badCapture struct {
	m     move.Move
	score int32
}

// Picker walks one node's move list in ranked stages.
type Picker struct {
	pos    *board.Position
	tables *history.Tables
	conts  []*history.Continuation

	mode   Mode
	ttMove move.Move
	ply    int

	// lastMoved/lastTo identify the opponent's previous move, the key
	// the counter-move table is read with. Both are zero-valued (and
	// thus inert) at the root, where there is no previous move.
	lastMoved piece.Piece
	lastTo    square.Square

	threshold eval.Eval // ProbCut acceptance threshold

	stage stage

	captures move.List[int32]
	quiets   move.List[int32]
	bad      []badCapture

	captureIdx int
	quietIdx   int
	badIdx     int
}

// New constructs a picker for the main search. conts supplies the
// continuation-history tables for the last few plies (nearest first),
// with nil entries for plies that don't exist yet near the root.
func New(p *board.Position, ttMove move.Move, tables *history.Tables, ply int, lastMoved piece.Piece, lastTo square.Square, conts []*history.Continuation) *Picker {
	return &Picker{
		pos:       p,
		tables:    tables,
		conts:     conts,
		mode:      MainSearch,
		ttMove:    ttMove,
		ply:       ply,
		lastMoved: lastMoved,
		lastTo:    lastTo,
		stage:     firstStage(ttMove),
	}
}

// NewQSearch constructs a picker restricted to the TT move (if it's a
// capture or promotion) followed by captures, no quiets.
func NewQSearch(p *board.Position, ttMove move.Move) *Picker {
	return &Picker{
		pos:    p,
		mode:   QSearch,
		ttMove: ttMove,
		stage:  firstStage(ttMove),
	}
}

// NewProbCut constructs a picker yielding only captures whose SEE
// beats threshold, for probcut's reduced verification search.
func NewProbCut(p *board.Position, threshold eval.Eval) *Picker {
	return &Picker{
		pos:       p,
		mode:      ProbCut,
		threshold: threshold,
		stage:     stageProbCutInit,
	}
}

func firstStage(ttMove move.Move) stage {
	if ttMove == move.None {
		return stageCaptureInit
	}
	return stageTT
}

// Next returns the next move in ranked order, or ok=false once the
// picker is exhausted.
func (p *Picker) Next() (m move.Move, ok bool) {
	for {
		switch p.stage {
		case stageTT:
			p.stage = stageCaptureInit
			if p.legalTTMove() {
				return p.ttMove, true
			}

		case stageCaptureInit:
			p.initCaptures()
			p.stage = stageGoodCapture

		case stageGoodCapture:
			if m, ok := p.nextGoodCapture(); ok {
				return m, true
			}
			if p.mode == QSearch {
				p.stage = stageDone
			} else {
				p.stage = stageQuietInit
			}

		case stageQuietInit:
			p.initQuiets()
			p.stage = stageGoodQuiet

		case stageGoodQuiet:
			if p.quietIdx < p.quiets.Len() {
				m := p.quiets.PickMove(p.quietIdx)
				p.quietIdx++
				if m == p.ttMove {
					continue
				}
				return m, true
			}
			p.stage = stageBadCapture

		case stageBadCapture:
			if p.badIdx < len(p.bad) {
				m := p.bad[p.badIdx].m
				p.badIdx++
				if m == p.ttMove {
					continue
				}
				return m, true
			}
			p.stage = stageDone

		case stageProbCutInit:
			p.initCaptures()
			p.stage = stageProbCut

		case stageProbCut:
			for p.captureIdx < p.captures.Len() {
				m := p.captures.PickMove(p.captureIdx)
				p.captureIdx++
				if eval.SEE(p.pos, m, p.threshold) {
					return m, true
				}
			}
			p.stage = stageDone

		case stageDone:
			return move.None, false
		}
	}
}

// legalTTMove reports whether the stored TT move is present in the
// legal move generator's output for this position: an illegal TT move
// (from a hash collision) simply won't appear in that list.
func (p *Picker) legalTTMove() bool {
	if p.ttMove == move.None {
		return false
	}
	for _, m := range movegen.GenerateAll(p.pos) {
		if m == p.ttMove {
			if p.mode == QSearch && !isNoisy(p.pos, m) {
				return false
			}
			return true
		}
	}
	return false
}

func isNoisy(p *board.Position, m move.Move) bool {
	return m.IsPromotion() || m.IsEnPassant() || p.Mailbox[m.To()] != piece.NoPiece
}

// initCaptures generates and scores every capture (and promotion),
// per the CaptureInit stage's weighting.
func (p *Picker) initCaptures() {
	moves := movegen.GenerateCaptures(p.pos)
	p.captures = move.NewList(moves, func(m move.Move) int32 {
		return p.scoreCapture(m)
	})
}

func (p *Picker) scoreCapture(m move.Move) int32 {
	var score int32
	if m == p.ttMove {
		score += ttMoveBonus
	}

	victim := piece.Pawn
	if m.IsEnPassant() {
		victim = piece.Pawn
	} else if v := p.pos.Mailbox[m.To()]; v != piece.NoPiece {
		victim = v.Type()
	}
	score += mvvScale * mvvValue[victim]

	if m.IsPromotion() && m.Promotion() == piece.Queen {
		score += queenPromoBonus
	}

	if p.tables != nil {
		moved := p.pos.Mailbox[m.From()]
		threatFrom, threatTo := p.threatened(m)
		score += int32(p.tables.Capture.Probe(moved, threatFrom, threatTo, m.To(), victim))
	}

	return score
}

// nextGoodCapture selects the remaining capture with the highest
// score and, if its SEE clears a threshold of -score/20,
// yields it; otherwise it is deferred to the bad-capture stage.
func (p *Picker) nextGoodCapture() (move.Move, bool) {
	for p.captureIdx < p.captures.Len() {
		m := p.captures.PickMove(p.captureIdx)
		score := p.captures.Score(p.captureIdx)
		p.captureIdx++

		if m == p.ttMove {
			continue
		}

		if eval.SEE(p.pos, m, eval.Eval(-score/20)) {
			return m, true
		}
		p.bad = append(p.bad, badCapture{m: m, score: score})
	}
	return move.None, false
}

// initQuiets generates and scores every quiet move, per the
// QuietInit stage's weighting.
func (p *Picker) initQuiets() {
	moves := movegen.GenerateQuiets(p.pos)
	k1, k2 := move.None, move.None
	if p.tables != nil {
		k1, k2 = p.tables.Killers.Probe(p.ply)
	}

	var counter move.Move
	if p.tables != nil {
		counter = p.tables.Counters.Probe(p.lastMoved, p.lastTo)
	}

	p.quiets = move.NewList(moves, func(m move.Move) int32 {
		return p.scoreQuiet(m, k1, k2, counter)
	})
}

func (p *Picker) scoreQuiet(m, killer1, killer2, counter move.Move) int32 {
	var score int32

	if p.tables != nil {
		us := p.pos.SideToMove
		threatFrom, threatTo := p.threatened(m)
		score += int32(p.tables.Quiet.Probe(us, threatFrom, threatTo, m.From(), m.To()))

		moved := p.pos.Mailbox[m.From()]
		inCheck := p.pos.IsInCheck(us)
		for _, cont := range p.conts {
			if cont == nil {
				continue
			}
			score += int32(cont.Probe(inCheck, false, moved, m.To()))
		}
	}

	switch m {
	case killer1:
		score += killer1Bonus
	case killer2:
		score += killer2Bonus
	}
	if m == counter {
		score += counterMoveBonus
	}

	return score
}

// threatened reports whether a move's source/destination squares are
// currently attacked by the opponent, the two-bit context every
// history table keys on.
func (p *Picker) threatened(m move.Move) (threatFrom, threatTo bool) {
	return Threatened(p.pos, m)
}

// Threatened reports whether m's source and destination squares are
// attacked by the side not to move in pos, the same two-bit context
// every history table keys on. Exported so the search core can
// compute the identical pair when recording a cutoff, keeping the
// write side's indexing consistent with this package's read side.
func Threatened(pos *board.Position, m move.Move) (threatFrom, threatTo bool) {
	them := pos.SideToMove.Other()
	occ := pos.Occupied()
	return isAttackedBy(pos, m.From(), them, occ), isAttackedBy(pos, m.To(), them, occ)
}

// isAttackedBy reports whether any piece of color by attacks square s
// given the occupancy occ, the same per-square attacker query SEE
// uses, but without collecting the full attacker set.
func isAttackedBy(p *board.Position, s square.Square, by piece.Color, occ bitboard.Board) bool {
	bishopsQueens := p.Pieces[piece.Bishop] | p.Pieces[piece.Queen]
	rooksQueens := p.Pieces[piece.Rook] | p.Pieces[piece.Queen]

	attackers := attacks.King[s]&p.Pieces[piece.King] |
		attacks.Knight[s]&p.Pieces[piece.Knight] |
		attacks.PawnAttacks[piece.White][s]&p.PieceBB(piece.Pawn, piece.Black) |
		attacks.PawnAttacks[piece.Black][s]&p.PieceBB(piece.Pawn, piece.White) |
		attacks.Bishop(s, occ)&bishopsQueens |
		attacks.Rook(s, occ)&rooksQueens

	return attackers&p.Colors[by] != bitboard.Empty
}
