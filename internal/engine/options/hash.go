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

// Package options builds the concrete option.Option values the engine
// registers against its option.Schema, each one a thin wrapper around
// a pkg/uci/option primitive that also pushes the parsed value into the
// live engine state (resizing the TT, rebuilding the pool, ...).
package options

import (
	"github.com/corvidchess/corvid/internal/engine/context"
	"github.com/corvidchess/corvid/pkg/uci/option"
)

// hashOption is the "Hash" spin: the transposition table's megabyte
// budget. Storing a new value resizes the table in place.
type hashOption struct {
	engine *context.Engine
	spin   option.Spin
}

// NewHash builds the "Hash" option.
func NewHash(engine *context.Engine) option.Option {
	return &hashOption{
		engine: engine,
		spin: option.Spin{
			Default: context.DefaultHashMB,
			Min:     context.MinHashMB,
			Max:     context.MaxHashMB,
			Value:   engine.HashMB,
		},
	}
}

func (h *hashOption) Type() string { return h.spin.Type() }

func (h *hashOption) Store(value []string) error {
	if err := h.spin.Store(value); err != nil {
		return err
	}
	h.engine.ResizeHash(h.spin.Value)
	return nil
}
