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

// Command corvid is the engine's UCI entrypoint: a thin wrapper
// starting a uci.Client wired to the real search core, run either as a
// REPL over stdin/stdout or as a one-shot evaluator of a single
// command line.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/corvidchess/corvid/internal/config"
	"github.com/corvidchess/corvid/internal/engine"
	"github.com/corvidchess/corvid/internal/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	logger := logging.New()
	defer logger.Sync()

	path := os.Getenv("CORVID_CONFIG")
	if path == "" {
		path = "corvid.toml"
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	client := engine.NewClient(cfg, logger)

	fmt.Println("Corvid by The Corvid Authors")

	if args := os.Args[1:]; len(args) > 0 {
		return client.Run(strings.Join(args, " "))
	}
	return client.Start()
}
