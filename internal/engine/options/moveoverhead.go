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

package options

import (
	"time"

	"github.com/corvidchess/corvid/internal/engine/context"
	"github.com/corvidchess/corvid/pkg/uci/option"
)

// moveOverheadOption is the "Move Overhead" spin, in milliseconds: the
// slack the time manager subtracts from the clock before budgeting,
// covering GUI-to-engine communication latency.
type moveOverheadOption struct {
	engine *context.Engine
	spin   option.Spin
}

// NewMoveOverhead builds the "Move Overhead" option.
func NewMoveOverhead(engine *context.Engine) option.Option {
	return &moveOverheadOption{
		engine: engine,
		spin: option.Spin{
			Default: context.DefaultOverhead,
			Min:     context.MinOverhead,
			Max:     context.MaxOverhead,
			Value:   int(engine.MoveOverhead / time.Millisecond),
		},
	}
}

func (m *moveOverheadOption) Type() string { return m.spin.Type() }

func (m *moveOverheadOption) Store(value []string) error {
	if err := m.spin.Store(value); err != nil {
		return err
	}
	m.engine.MoveOverhead = time.Duration(m.spin.Value) * time.Millisecond
	return nil
}

// contemptOption is the "Contempt" spin: a centipawn bias added
// against accepting a draw, positive meaning the engine avoids drawn
// lines when it judges itself better.
type contemptOption struct {
	engine *context.Engine
	spin   option.Spin
}

// NewContempt builds the "Contempt" option.
func NewContempt(engine *context.Engine) option.Option {
	return &contemptOption{
		engine: engine,
		spin: option.Spin{
			Default: context.DefaultContempt,
			Min:     context.MinContempt,
			Max:     context.MaxContempt,
			Value:   engine.Contempt,
		},
	}
}

func (c *contemptOption) Type() string { return c.spin.Type() }

func (c *contemptOption) Store(value []string) error {
	if err := c.spin.Store(value); err != nil {
		return err
	}
	c.engine.Contempt = c.spin.Value
	return nil
}
