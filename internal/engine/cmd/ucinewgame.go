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

	"github.com/corvidchess/corvid/internal/engine/context"
	"github.com/corvidchess/corvid/pkg/uci/cmd"
)

// NewUCINewGame builds the "ucinewgame" command: tells the engine the
// next search belongs to an unrelated game, so its transposition table
// should not be trusted to carry anything useful forward.
func NewUCINewGame(engine *context.Engine) cmd.Command {
	return cmd.Command{
		Name: "ucinewgame",
		Run: func(i cmd.Interaction) error {
			if engine.Searching.Load() {
				return errors.New("ucinewgame: search currently in progress")
			}
			engine.NewGame()
			return nil
		},
	}
}
