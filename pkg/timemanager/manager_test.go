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

package timemanager

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNormalManagerBudget(t *testing.T) {
	m := &NormalManager{
		Time:         20 * time.Second,
		Increment:    200 * time.Millisecond,
		MoveOverhead: 50 * time.Millisecond,
	}
	m.Start()

	require.Positive(t, m.Optimum())
	require.Equal(t, 2*m.Optimum(), m.Maximum())
	require.LessOrEqual(t, m.Maximum(), m.Time-m.MoveOverhead)
}

func TestNormalManagerCapsAtRemainingBudget(t *testing.T) {
	// a single move's worth of time with a huge increment must not
	// let optimum/maximum exceed what's actually on the clock.
	m := &NormalManager{
		Time:      1 * time.Second,
		Increment: 10 * time.Second,
		MovesToGo: 1,
	}
	m.Start()

	require.LessOrEqual(t, m.Optimum(), m.Time)
	require.LessOrEqual(t, m.Maximum(), m.Time)
}

func TestMoveManagerFixedBudget(t *testing.T) {
	m := &MoveManager{MoveTime: 500 * time.Millisecond}
	m.Start()

	require.Equal(t, 500*time.Millisecond, m.Optimum())
	require.Equal(t, m.Optimum(), m.Maximum())
}
