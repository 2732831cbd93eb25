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

// Package context holds the engine's live state — its position, its
// thread pool, its shared transposition table, its opening book — and
// is shared by every UCI command so they can read and mutate the same
// engine rather than each owning a private copy.
package context

import (
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/corvidchess/corvid/internal/config"
	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/book"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/threads"
	"github.com/corvidchess/corvid/pkg/tt"
	"github.com/corvidchess/corvid/pkg/uci/option"
)

// Default option values, used both to seed a Config-less engine and to
// fill in whichever fields an optional TOML file left unset.
const (
	DefaultHashMB   = 16
	MinHashMB       = 1
	MaxHashMB       = 33554432 // matches Stockfish's ceiling, suppresses cutechess warnings
	DefaultThreads  = 1
	MinThreads      = 1
	MaxThreads      = 512
	DefaultOverhead = 10 // milliseconds
	MinOverhead     = 0
	MaxOverhead     = 5000
	DefaultContempt = 0
	MinContempt     = -1000
	MaxContempt     = 1000
)

// Engine is the live state behind every registered UCI command.
type Engine struct {
	Logger *zap.Logger

	Pos   *board.Position
	Table *tt.Table
	Pool  *threads.Pool
	Book  *book.Book // nil until a book path is configured

	Options *option.Schema

	Searching atomic.Bool

	HashMB       int
	Threads      int
	MoveOverhead time.Duration
	Contempt     int
	BookPath     string
	OwnBook      bool
}

// New builds an Engine seeded from cfg (an optional loaded TOML
// configuration, its zero value meaning "nothing was configured") and
// logging to logger.
func New(cfg config.Config, logger *zap.Logger) *Engine {
	e := &Engine{
		Logger:       logger,
		Pos:          board.New(),
		HashMB:       DefaultHashMB,
		Threads:      DefaultThreads,
		MoveOverhead: DefaultOverhead * time.Millisecond,
		Contempt:     DefaultContempt,
		OwnBook:      true,
	}

	if cfg.Hash > 0 {
		e.HashMB = cfg.Hash
	}
	if cfg.Threads > 0 {
		e.Threads = cfg.Threads
	}
	if cfg.MoveOverhead > 0 {
		e.MoveOverhead = time.Duration(cfg.MoveOverhead) * time.Millisecond
	}
	if cfg.Contempt != 0 {
		e.Contempt = cfg.Contempt
	}
	e.BookPath = cfg.Book

	e.Table = tt.New(e.HashMB)
	e.Pool = threads.New(e.Threads, e.Table, eval.PeSTO)

	if e.BookPath != "" {
		e.openBook(e.BookPath)
	}

	return e
}

// ResizeHash resizes the shared transposition table in place to mbs
// megabytes, discarding its contents. The pool's workers already hold
// this same table instance, so the pool is not rebuilt.
func (e *Engine) ResizeHash(mbs int) {
	e.HashMB = mbs
	e.Table.Resize(mbs)
}

// SetThreads rebuilds the pool with n workers over the existing
// shared table. The previous pool's workers are stopped first, since
// a Pool cannot be resized in place.
func (e *Engine) SetThreads(n int) {
	e.Pool.Close()
	e.Threads = n
	e.Pool = threads.New(n, e.Table, eval.PeSTO)
}

// SetBook points the engine at a new Polyglot book path, replacing (or
// removing, for an empty path) any previously opened book.
func (e *Engine) SetBook(path string) {
	if e.Book != nil {
		e.Book.Close()
		e.Book = nil
	}
	e.BookPath = path
	if path != "" {
		e.openBook(path)
	}
}

func (e *Engine) openBook(path string) {
	b, err := book.Open(path, path+".corvididx")
	if err != nil {
		if e.Logger != nil {
			e.Logger.Error("opening book", zap.String("path", path), zap.Error(err))
		}
		return
	}
	e.Book = b
}

// NewGame resets search-relevant state for a new game: a fresh
// position, a cleared transposition table, and cleared per-worker
// move-ordering heuristics, since entries and history learned from a
// previous, unrelated game are worse than starting from nothing.
func (e *Engine) NewGame() {
	e.Pos = board.New()
	e.Table.Clear()
	e.Pool.ClearHeuristics()
}

