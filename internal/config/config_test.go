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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadWithEmptyPathReturnsZeroValue(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Config{}, cfg)
}

func TestLoadWithMissingFileReturnsZeroValue(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	require.NoError(t, err)
	require.Equal(t, Config{}, cfg)
}

func TestLoadParsesPartialFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corvid.toml")
	require.NoError(t, os.WriteFile(path, []byte("hash = 64\nthreads = 4\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 64, cfg.Hash)
	require.Equal(t, 4, cfg.Threads)
	require.Zero(t, cfg.Contempt)
	require.Empty(t, cfg.Book)
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corvid.toml")
	require.NoError(t, os.WriteFile(path, []byte("hash = not-a-number\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}
