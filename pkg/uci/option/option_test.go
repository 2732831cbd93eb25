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

package option

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSpinStoreValidatesRange(t *testing.T) {
	s := &Spin{Default: 16, Min: 1, Max: 1024}
	require.NoError(t, s.Store([]string{"512"}))
	require.Equal(t, 512, s.Value)

	require.Error(t, s.Store([]string{"2048"}))
	require.Error(t, s.Store([]string{"not-a-number"}))
}

func TestCheckStoreParsesBool(t *testing.T) {
	c := &Check{Default: false}
	require.NoError(t, c.Store([]string{"true"}))
	require.True(t, c.Value)
}

func TestButtonStoreInvokesHook(t *testing.T) {
	called := false
	b := &Button{OnSet: func() { called = true }}
	require.NoError(t, b.Store(nil))
	require.True(t, called)
}

func TestStringStoreHandlesEmptySentinel(t *testing.T) {
	s := &String{Default: ""}
	require.NoError(t, s.Store([]string{"<empty>"}))
	require.Equal(t, "", s.Value)

	require.NoError(t, s.Store([]string{"book.bin"}))
	require.Equal(t, "book.bin", s.Value)
}

func TestComboStoreRejectsUnlistedChoice(t *testing.T) {
	c := &Combo{Default: "a", Choices: []string{"a", "b"}}
	require.NoError(t, c.Store([]string{"b"}))
	require.Equal(t, "b", c.Value)
	require.Error(t, c.Store([]string{"c"}))
}

func TestSchemaStringListsOptionsInDeclarationOrder(t *testing.T) {
	s := NewSchema()
	s.Add("Hash", &Spin{Default: 16, Min: 1, Max: 1024})
	s.Add("Ponder", &Check{Default: false})

	out := s.String()
	require.Contains(t, out, "option name Hash type spin default 16 min 1 max 1024")
	require.Contains(t, out, "option name Ponder type check default false")
}

func TestSchemaSetRoutesToRegisteredOption(t *testing.T) {
	s := NewSchema()
	s.Add("Hash", &Spin{Default: 16, Min: 1, Max: 1024})

	require.NoError(t, s.Set("Hash", []string{"64"}))
	opt, ok := s.Get("Hash")
	require.True(t, ok)
	require.Equal(t, 64, opt.(*Spin).Value)

	require.Error(t, s.Set("Unknown", []string{"1"}))
}
