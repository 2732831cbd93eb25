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
	"github.com/corvidchess/corvid/pkg/uci/flag"
)

// NewSetOption builds the "setoption" command: "setoption name <name>
// value <value...>", dispatched against the engine's registered
// option.Schema.
func NewSetOption(engine *context.Engine) cmd.Command {
	schema := flag.NewSchema()
	schema.Single("name")
	schema.Variadic("value")

	return cmd.Command{
		Name: "setoption",
		Run: func(i cmd.Interaction) error {
			if !i.Values["name"].Set {
				return errors.New("setoption: name flag not found")
			}
			name := i.Values["name"].Value.(string)

			var value []string
			if i.Values["value"].Set {
				value = i.Values["value"].Value.([]string)
			}

			return engine.Options.Set(name, value)
		},
		Flags: schema,
	}
}
