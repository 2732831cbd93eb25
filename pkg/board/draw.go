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

// IsDraw reports whether the current position is a forced draw by the
// fifty-move rule or by repetition. updateRepetition already walked
// the state arena at Make time, so this is just a read of its result;
// any repetition found (two-fold included) is treated as drawn, the
// usual search-side convention for avoiding repeated lines rather than
// waiting for a strict three-fold.
func (p *Position) IsDraw() bool {
	st := p.State()
	return st.HalfMoves >= 100 || st.Repetition != 0
}
