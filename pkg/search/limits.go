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

package search

import "time"

// MaxPly bounds the search stack; kept in sync with board.MaxPly.
const MaxPly = 1024

// MaxDepth is the deepest iterative-deepening loop ever requests.
const MaxDepth = 255

// Limits carries the search-tree and search-time bounds a Search call
// is restricted to.
type Limits struct {
	Nodes    uint64
	Depth    int
	Infinite bool
	MoveTime time.Duration
}

// TimeManager is the collaborator that decides how long a search may
// run. NormalManager and MoveManager (pkg/timemanager) both satisfy
// it; a worker only ever calls these three methods.
type TimeManager interface {
	// Optimum is the time the manager expects to use; the search
	// prefers to stop here once the current best move looks stable.
	Optimum() time.Duration

	// Maximum is the hard cutoff: the search must stop once elapsed
	// time reaches it, finished iteration or not.
	Maximum() time.Duration

	// Elapsed reports how long the search has been running.
	Elapsed() time.Duration
}
