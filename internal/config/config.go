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

// Package config loads the optional TOML file that seeds the engine's
// UCI option defaults. A missing file is not an error: Load returns
// the zero Config, which the engine interprets as "use the hard-coded
// defaults everywhere."
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the subset of engine defaults a TOML file may seed.
// Zero-valued fields mean "not specified" and leave the engine's
// hard-coded default in place; a UCI setoption always overrides
// whatever was loaded here.
type Config struct {
	Hash         int    `toml:"hash"`
	Threads      int    `toml:"threads"`
	MoveOverhead int    `toml:"move_overhead"`
	Contempt     int    `toml:"contempt"`
	Book         string `toml:"book"`
}

// Load parses path as TOML into a Config. A path that doesn't exist
// returns the zero Config and a nil error, since an absent file is
// this package's documented "fall back to defaults" case rather than
// a failure.
func Load(path string) (Config, error) {
	var cfg Config

	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("config: decoding %q: %w", path, err)
	}

	return cfg, nil
}
