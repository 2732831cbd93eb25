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

// Package cmd builds the engine's registered UCI commands: each
// constructor closes over the shared *context.Engine and returns a
// cmd.Command ready to hand to a uci.Client.
package cmd

import (
	"github.com/corvidchess/corvid/internal/engine/context"
	"github.com/corvidchess/corvid/pkg/uci/cmd"
)

// NewUCI builds the "uci" command: identify the engine, advertise its
// options, and declare "uciok".
func NewUCI(engine *context.Engine) cmd.Command {
	return cmd.Command{
		Name: "uci",
		Run: func(i cmd.Interaction) error {
			i.Reply("id name Corvid")
			i.Reply("id author The Corvid Authors")
			i.Reply(engine.Options.String())
			i.Reply("uciok")
			return nil
		},
	}
}

// NewIsReady builds the "isready" command: a synchronization point a
// GUI uses to know the engine has finished any pending setup.
func NewIsReady(engine *context.Engine) cmd.Command {
	return cmd.Command{
		Name: "isready",
		Run: func(i cmd.Interaction) error {
			i.Reply("readyok")
			return nil
		},
	}
}
