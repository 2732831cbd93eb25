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
	"github.com/corvidchess/corvid/pkg/uci"
	"github.com/corvidchess/corvid/pkg/uci/cmd"
)

// NewQuit builds the "quit" command: stop any ongoing search, close
// the pool and book, and unwind the client's read loop.
func NewQuit(engine *context.Engine) cmd.Command {
	return cmd.Command{
		Name: "quit",
		Run: func(i cmd.Interaction) error {
			engine.Pool.Stop()
			engine.Pool.Close()
			if engine.Book != nil {
				engine.Book.Close()
			}
			return uci.ErrQuit
		},
	}
}
