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
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/corvidchess/corvid/internal/config"
	"github.com/corvidchess/corvid/internal/engine/context"
	"github.com/corvidchess/corvid/internal/logging"
)

func newTestEngine(t *testing.T) *context.Engine {
	t.Helper()
	e := context.New(config.Config{Threads: 1, Hash: 1}, logging.NewNop())
	t.Cleanup(func() { e.Pool.Close() })
	return e
}

func TestHashOptionResizesTable(t *testing.T) {
	e := newTestEngine(t)
	opt := NewHash(e)

	require.Contains(t, opt.Type(), "type spin")
	require.NoError(t, opt.Store([]string{"2"}))
	require.Equal(t, 2, e.HashMB)
}

func TestThreadsOptionRefusesDuringSearch(t *testing.T) {
	e := newTestEngine(t)
	opt := NewThreads(e)

	e.Searching.Store(true)
	require.Error(t, opt.Store([]string{"2"}))
	e.Searching.Store(false)

	require.NoError(t, opt.Store([]string{"2"}))
	require.Equal(t, 2, e.Threads)
}

func TestMoveOverheadOptionUpdatesDuration(t *testing.T) {
	e := newTestEngine(t)
	opt := NewMoveOverhead(e)

	require.NoError(t, opt.Store([]string{"250"}))
	require.Equal(t, 250*time.Millisecond, e.MoveOverhead)
}

func TestContemptOptionUpdatesValue(t *testing.T) {
	e := newTestEngine(t)
	opt := NewContempt(e)

	require.NoError(t, opt.Store([]string{"30"}))
	require.Equal(t, 30, e.Contempt)

	require.Error(t, opt.Store([]string{"99999"}))
}

func TestOwnBookOptionTogglesFlag(t *testing.T) {
	e := newTestEngine(t)
	opt := NewOwnBook(e)

	require.NoError(t, opt.Store([]string{"false"}))
	require.False(t, e.OwnBook)
}

func TestClearHashOptionClearsTable(t *testing.T) {
	e := newTestEngine(t)
	opt := NewClearHash(e)

	require.Equal(t, "type button", opt.Type())
	require.NoError(t, opt.Store(nil))
}
