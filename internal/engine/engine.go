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

// Package engine wires the search core, the thread pool, the
// transposition table, and the opening book behind a UCI client: it is
// the one place that knows about every collaborator at once, so
// everything downstream (pkg/board, pkg/search, pkg/threads, pkg/book)
// stays free of any UCI-specific concern.
package engine

import (
	"go.uber.org/zap"

	"github.com/corvidchess/corvid/internal/config"
	"github.com/corvidchess/corvid/internal/engine/cmd"
	"github.com/corvidchess/corvid/internal/engine/context"
	"github.com/corvidchess/corvid/internal/engine/options"
	"github.com/corvidchess/corvid/pkg/uci"
	uciCmd "github.com/corvidchess/corvid/pkg/uci/cmd"
	"github.com/corvidchess/corvid/pkg/uci/option"
)

// NewClient builds a fully wired uci.Client reading cfg's defaults and
// logging to logger (either of which may be the package's zero value:
// an empty config.Config falls back to hard-coded defaults, and
// logging.NewNop() is the usual choice for a silent embedder).
func NewClient(cfg config.Config, logger *zap.Logger) *uci.Client {
	engine := context.New(cfg, logger)
	engine.Options = option.NewSchema()

	engine.Options.Add("Hash", options.NewHash(engine))
	engine.Options.Add("Threads", options.NewThreads(engine))
	engine.Options.Add("Clear Hash", options.NewClearHash(engine))
	engine.Options.Add("Move Overhead", options.NewMoveOverhead(engine))
	engine.Options.Add("Contempt", options.NewContempt(engine))
	engine.Options.Add("OwnBook", options.NewOwnBook(engine))
	engine.Options.Add("BookFile", options.NewBookPath(engine))

	client := uci.NewStdClient()

	client.AddCommand(logged(engine, cmd.NewUCI(engine)))
	client.AddCommand(logged(engine, cmd.NewIsReady(engine)))
	client.AddCommand(logged(engine, cmd.NewUCINewGame(engine)))
	client.AddCommand(logged(engine, cmd.NewPosition(engine)))
	client.AddCommand(logged(engine, cmd.NewGo(engine)))
	client.AddCommand(logged(engine, cmd.NewStop(engine)))
	client.AddCommand(logged(engine, cmd.NewSetOption(engine)))
	client.AddCommand(logged(engine, cmd.NewD(engine)))
	client.AddCommand(logged(engine, cmd.NewQuit(engine)))

	return client
}

// logged wraps c's Run so that an error it returns is logged with the
// originating command and the position FEN it ran against, before the
// UCI layer's own "info string error: ..." reply reaches the GUI. A
// panic inside Run unwinds past this wrapper without being logged and
// is recovered into an error by cmd.Command.RunWith. The "quit"
// command's ErrQuit sentinel is not an error in this sense, so it
// passes through unlogged.
func logged(engine *context.Engine, c uciCmd.Command) uciCmd.Command {
	run := c.Run
	c.Run = func(i uciCmd.Interaction) error {
		err := run(i)
		if err != nil && err != uci.ErrQuit && engine.Logger != nil {
			engine.Logger.Error("command failed",
				zap.String("command", c.Name),
				zap.String("fen", engine.Pos.FEN()),
				zap.Error(err),
			)
		}
		return err
	}
	return c
}
