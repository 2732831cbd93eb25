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

package flag

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSingleAndVariadicParse(t *testing.T) {
	s := NewSchema()
	s.Single("fen")
	s.Variadic("moves")

	values, err := s.Parse([]string{"fen", "startpos", "moves", "e2e4", "e7e5"})
	require.NoError(t, err)

	require.Equal(t, "startpos", values["fen"].Value)
	require.Equal(t, []string{"e2e4", "e7e5"}, values["moves"].Value)
}

func TestArrayWantsExactCount(t *testing.T) {
	s := NewSchema()
	s.Array("wtime", 1)

	_, err := s.Parse([]string{"wtime"})
	require.Error(t, err)
}

func TestButtonCarriesNoValue(t *testing.T) {
	s := NewSchema()
	s.Button("ponder")

	values, err := s.Parse([]string{"ponder"})
	require.NoError(t, err)
	require.True(t, values["ponder"].Set)
	require.Nil(t, values["ponder"].Value)
}

func TestUnknownFlagErrors(t *testing.T) {
	s := NewSchema()
	s.Button("infinite")

	_, err := s.Parse([]string{"depth", "5"})
	require.Error(t, err)
}

func TestDuplicateFlagErrors(t *testing.T) {
	s := NewSchema()
	s.Single("depth")

	_, err := s.Parse([]string{"depth", "5", "depth", "6"})
	require.Error(t, err)
}

func TestEmptySchemaRejectsArguments(t *testing.T) {
	s := Schema{}

	_, err := s.Parse([]string{"extra"})
	require.Error(t, err)

	values, err := s.Parse(nil)
	require.NoError(t, err)
	require.Empty(t, values)
}
