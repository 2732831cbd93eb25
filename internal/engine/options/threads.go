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
	"fmt"

	"github.com/corvidchess/corvid/internal/engine/context"
	"github.com/corvidchess/corvid/pkg/uci/option"
)

// threadsOption is the "Threads" spin: the Lazy-SMP worker count.
// Storing a new value rebuilds the pool; this refuses to run mid
// search, since tearing down workers that are actively searching
// would race with the in-progress Pool.StartThinking call.
type threadsOption struct {
	engine *context.Engine
	spin   option.Spin
}

// NewThreads builds the "Threads" option.
func NewThreads(engine *context.Engine) option.Option {
	return &threadsOption{
		engine: engine,
		spin: option.Spin{
			Default: context.DefaultThreads,
			Min:     context.MinThreads,
			Max:     context.MaxThreads,
			Value:   engine.Threads,
		},
	}
}

func (t *threadsOption) Type() string { return t.spin.Type() }

func (t *threadsOption) Store(value []string) error {
	if t.engine.Searching.Load() {
		return fmt.Errorf("uci: cannot change Threads while a search is in progress")
	}
	if err := t.spin.Store(value); err != nil {
		return err
	}
	t.engine.SetThreads(t.spin.Value)
	return nil
}
