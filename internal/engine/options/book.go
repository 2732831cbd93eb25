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
	"github.com/corvidchess/corvid/internal/engine/context"
	"github.com/corvidchess/corvid/pkg/uci/option"
)

// bookPathOption is the "BookFile" string option: the path to a
// Polyglot book. Storing a new, non-empty path (re)opens the book;
// storing an empty path closes it.
type bookPathOption struct {
	engine *context.Engine
	str    option.String
}

// NewBookPath builds the "BookFile" option.
func NewBookPath(engine *context.Engine) option.Option {
	return &bookPathOption{
		engine: engine,
		str:    option.String{Default: "", Value: engine.BookPath},
	}
}

func (b *bookPathOption) Type() string { return b.str.Type() }

func (b *bookPathOption) Store(value []string) error {
	if err := b.str.Store(value); err != nil {
		return err
	}
	b.engine.SetBook(b.str.Value)
	return nil
}

// ownBookOption is the "OwnBook" check option: whether the engine
// consults its opening book at all. A book can be loaded (BookFile
// set) without being consulted, the shape a GUI managing its own book
// wants.
type ownBookOption struct {
	engine *context.Engine
	check  option.Check
}

// NewOwnBook builds the "OwnBook" option.
func NewOwnBook(engine *context.Engine) option.Option {
	return &ownBookOption{
		engine: engine,
		check:  option.Check{Default: true, Value: engine.OwnBook},
	}
}

func (o *ownBookOption) Type() string { return o.check.Type() }

func (o *ownBookOption) Store(value []string) error {
	if err := o.check.Store(value); err != nil {
		return err
	}
	o.engine.OwnBook = o.check.Value
	return nil
}
