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

package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/corvidchess/corvid/internal/engine/context"
	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/move"
	"github.com/corvidchess/corvid/pkg/movegen"
	"github.com/corvidchess/corvid/pkg/uci/cmd"
	"github.com/corvidchess/corvid/pkg/uci/flag"
)

// NewPosition builds the "position" command: set up the base position
// (startpos or a FEN), then play any trailing moves on top of it.
func NewPosition(engine *context.Engine) cmd.Command {
	schema := flag.NewSchema()
	schema.Button("startpos")
	schema.Array("fen", 6)
	schema.Variadic("moves")

	return cmd.Command{
		Name: "position",
		Run: func(i cmd.Interaction) error {
			if engine.Searching.Load() {
				return errors.New("position: search currently in progress")
			}

			pos, err := parsePosition(i.Values)
			if err != nil {
				return err
			}
			engine.Pos = pos
			return nil
		},
		Flags: schema,
	}
}

func parsePosition(values flag.Values) (*board.Position, error) {
	var pos *board.Position

	switch {
	case values["startpos"].Set && values["fen"].Set:
		return nil, errors.New("position: both startpos and fen given")

	case values["startpos"].Set:
		pos = board.New()

	case values["fen"].Set:
		fields := values["fen"].Value.([]string)
		pos = &board.Position{}
		if err := pos.SetFEN(strings.Join(fields, " ")); err != nil {
			return nil, fmt.Errorf("position: %w", err)
		}

	default:
		return nil, errors.New("position: no startpos or fen given")
	}

	if values["moves"].Set {
		for _, uci := range values["moves"].Value.([]string) {
			m := movegen.ToMove(pos, uci)
			if m == move.None {
				return nil, fmt.Errorf("position: %q is not a legal move", uci)
			}
			pos.Make(m)
		}
	}

	return pos, nil
}
