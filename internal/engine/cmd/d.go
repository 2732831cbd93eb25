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
	"github.com/corvidchess/corvid/internal/engine/context"
	"github.com/corvidchess/corvid/pkg/uci/cmd"
)

// NewD builds the custom "d" command: prints the current position as
// ascii art, its FEN, and its Zobrist key, the shape a human driving
// the engine by hand at a terminal wants.
func NewD(engine *context.Engine) cmd.Command {
	return cmd.Command{
		Name: "d",
		Run: func(i cmd.Interaction) error {
			i.Reply(engine.Pos.String())
			i.Replyf("Fen: %s", engine.Pos.FEN())
			i.Replyf("Key: %x", engine.Pos.State().Key)
			i.Replyf("Hashfull: %d/1000", engine.Table.Hashfull(255))
			return nil
		},
	}
}
