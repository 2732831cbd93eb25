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

package move

import "golang.org/x/exp/constraints"

// score is the set of numeric types the move picker ranks moves by:
// capture/quiet ordering scores and history-table cells alike.
type score interface {
	constraints.Integer
}

// List is an ordered/ranked move list. Moves are not fully sorted up
// front: PickMove performs one selection-sort step at a time, since
// alpha-beta pruning usually cuts off before the tail of the list is
// ever examined.
type List[T score] struct {
	entries []entry[T]
}

type entry[T score] struct {
	move  Move
	score T
}

// NewList scores every move in moves with scorer and returns the
// resulting ordered list.
func NewList[T score](moves []Move, scorer func(Move) T) List[T] {
	entries := make([]entry[T], len(moves))
	for i, m := range moves {
		entries[i] = entry[T]{move: m, score: scorer(m)}
	}
	return List[T]{entries: entries}
}

// Len reports how many moves remain in the list.
func (l *List[T]) Len() int {
	return len(l.entries)
}

// PickMove finds the highest-scored move at or after index, swaps it
// into index, and returns it.
func (l *List[T]) PickMove(index int) Move {
	best := index
	for i := index + 1; i < len(l.entries); i++ {
		if l.entries[i].score > l.entries[best].score {
			best = i
		}
	}

	l.entries[index], l.entries[best] = l.entries[best], l.entries[index]
	return l.entries[index].move
}

// Score returns the score of the move at index.
func (l *List[T]) Score(index int) T {
	return l.entries[index].score
}
