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

import "sync/atomic"

// Stats holds the per-worker counters pkg/threads sums across workers
// to report aggregate nodes-per-second and to pick the best thread.
// Nodes is written from the worker's own goroutine only but read from
// the main thread's periodic stop check and from other workers
// totalling the pool's throughput, hence the atomic type.
type Stats struct {
	Nodes atomic.Uint64

	SelDepth      int // deepest ply reached this iteration
	CompletedDepth int // deepest iteration fully finished
	TTHits        int
}

func (s *Stats) reset() {
	s.Nodes.Store(0)
	s.SelDepth = 0
	s.CompletedDepth = 0
	s.TTHits = 0
}
