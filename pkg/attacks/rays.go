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

package attacks

import (
	"github.com/corvidchess/corvid/pkg/bitboard"
	"github.com/corvidchess/corvid/pkg/square"
)

// Line[a][b] is every square on the infinite line through a and b, if
// they share a rank, file, or diagonal; otherwise it is empty.
var Line [square.N][square.N]bitboard.Board

// Between[a][b] is the set of squares strictly between a and b along
// their shared ray; empty if they don't share one.
var Between [square.N][square.N]bitboard.Board

// Pin[a][b] is Between[a][b] with b added: the mask a pinned piece (or
// a piece blocking a check) standing between a king on a and a pinner
// or checker on b must stay within.
var Pin [square.N][square.N]bitboard.Board

// Check[a][b] is Between[a][b] with a added, plus the square one step
// further behind a along the ray away from b: the set of squares a
// king standing on a must treat as attacked when b is a slider
// checking it, since the slider's attack continues through where the
// king used to stand.
var Check [square.N][square.N]bitboard.Board

func init() {
	allDirs := append(append([]offset{}, rookDirs...), bishopDirs...)

	for a := square.Square(0); a < square.N; a++ {
		for _, d := range allDirs {
			f, r := int(a.File())+d.df, int(a.Rank())+d.dr
			var ray []square.Square
			for f >= 0 && f <= 7 && r >= 0 && r <= 7 {
				ray = append(ray, square.From(square.File(f), square.Rank(r)))
				f, r = f+d.df, r+d.dr
			}

			for i, b := range ray {
				var line, between bitboard.Board

				// full line: backwards from a through b and beyond.
				bf, br := int(a.File())-d.df, int(a.Rank())-d.dr
				for bf >= 0 && bf <= 7 && br >= 0 && br <= 7 {
					line.Set(square.From(square.File(bf), square.Rank(br)))
					bf, br = bf-d.df, br-d.dr
				}
				line.Set(a)
				for _, s := range ray {
					line.Set(s)
				}

				for j := 0; j < i; j++ {
					between.Set(ray[j])
				}

				Line[a][b] = line
				Between[a][b] = between
				Pin[a][b] = between
				Pin[a][b].Set(b)

				check := between
				check.Set(a)
				// one square behind a, away from b.
				bf2, br2 := int(a.File())-d.df, int(a.Rank())-d.dr
				if bf2 >= 0 && bf2 <= 7 && br2 >= 0 && br2 <= 7 {
					check.Set(square.From(square.File(bf2), square.Rank(br2)))
				}
				Check[a][b] = check
			}
		}
	}
}
