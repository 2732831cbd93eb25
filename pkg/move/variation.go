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

import "fmt"

// Variation is a principal variation: a sequence of moves that can be
// played one after the other from the position it was computed for.
type Variation struct {
	moves []Move
}

// Move returns the i'th move of the variation, or Null if it doesn't
// have that many moves.
func (v *Variation) Move(i int) Move {
	if i >= len(v.moves) {
		return Null
	}
	return v.moves[i]
}

// Len reports how many moves the variation holds.
func (v *Variation) Len() int {
	return len(v.moves)
}

// Clear empties the variation without releasing its backing array.
func (v *Variation) Clear() {
	v.moves = v.moves[:0]
}

// Update replaces the variation with the given move followed by the
// child line, the standard way a PV is built bottom-up as the search
// unwinds.
func (v *Variation) Update(head Move, child Variation) {
	v.moves = append(v.moves[:0], head)
	v.moves = append(v.moves, child.moves...)
}

func (v Variation) String() string {
	str := fmt.Sprintf("%v", v.moves)
	return str[1 : len(str)-1]
}
