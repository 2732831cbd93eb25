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

// Package timemanager implements the collaborators that decide how
// long a search is allowed to run, satisfying pkg/search's TimeManager
// interface: NormalManager derives a budget from the GUI's clock and
// increment, MoveManager uses a single fixed move time.
package timemanager

import "time"

// defaultMovesToGo is used whenever the GUI doesn't report how many
// moves remain until the next time control.
const defaultMovesToGo = 50

// NormalManager computes a time budget from the clock, increment, and
// moves-to-go a UCI "go" command provides, per the standard
// optimum/maximum formula: optimum is what the search expects to
// spend, maximum is the hard cutoff it must never cross.
type NormalManager struct {
	Time         time.Duration
	Increment    time.Duration
	MovesToGo    int // 0 means unspecified
	MoveOverhead time.Duration

	start            time.Time
	optimum, maximum time.Duration
}

// Start records the current instant as the search's origin and
// computes the optimum/maximum budget from the manager's fields. It
// must be called once, right before the search loop begins.
func (m *NormalManager) Start() {
	m.start = time.Now()

	mtg := m.MovesToGo
	if mtg <= 0 || mtg > defaultMovesToGo {
		mtg = defaultMovesToGo
	}

	budget := m.Time - m.MoveOverhead
	if budget < 0 {
		budget = 0
	}

	optimum := (budget*3/2)/time.Duration(mtg) + m.Increment
	maximum := optimum * 2

	if optimum > budget {
		optimum = budget
	}
	if maximum > budget {
		maximum = budget
	}

	m.optimum, m.maximum = optimum, maximum
}

func (m *NormalManager) Optimum() time.Duration { return m.optimum }
func (m *NormalManager) Maximum() time.Duration { return m.maximum }
func (m *NormalManager) Elapsed() time.Duration { return time.Since(m.start) }

// MoveManager enforces a single fixed move time, the time manager a
// UCI "go movetime" command selects. Optimum and Maximum both equal
// the fixed duration: there is no budget left to extend into.
type MoveManager struct {
	MoveTime time.Duration

	start time.Time
}

func (m *MoveManager) Start() { m.start = time.Now() }

func (m *MoveManager) Optimum() time.Duration { return m.MoveTime }
func (m *MoveManager) Maximum() time.Duration { return m.MoveTime }
func (m *MoveManager) Elapsed() time.Duration { return time.Since(m.start) }
