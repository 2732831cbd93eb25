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

// Package logging builds the single structured logger the engine
// holds for its entire lifetime. It writes leveled, keyed fields to
// stderr only — stdout is reserved for the UCI protocol stream and
// must never carry a stray log line a GUI would try to parse as a
// command reply.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a production-style zap logger writing JSON lines to
// stderr at info level and above.
func New() *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		// The production config is static and always valid; a build
		// failure here can only mean stderr itself is unusable, in
		// which case there is nothing left for a logger to report to.
		panic(err)
	}
	return logger
}

// NewNop returns a logger that discards everything, the constructor
// tests and library-style embedders of this engine want when they
// have no interest in its diagnostic output.
func NewNop() *zap.Logger {
	return zap.NewNop()
}
