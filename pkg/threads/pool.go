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

// Package threads implements the Lazy-SMP thread pool: a fixed set of
// search.Worker values, each with its own Position and heuristic
// tables, sharing one transposition table as their only channel of
// communication. Worker 0 is the pool's main thread; it owns the time
// manager and decides when the pool stops.
package threads

import (
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/move"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/corvidchess/corvid/pkg/tt"
)

// slot pairs a worker with the idle-loop bookkeeping the pool uses to
// dispatch jobs onto it: {wait on condition -> run job -> signal done}.
type slot struct {
	worker *search.Worker
	job    func()
	busy   bool
}

// Pool runs N search.Worker values concurrently against a shared
// transposition table, coordinating their start/stop via a
// condition-variable idle loop and fanning out/joining each
// "go think" request with errgroup.
type Pool struct {
	mu   sync.Mutex
	cond *sync.Cond

	slots []*slot
	stop  atomic.Bool
	table *tt.Table

	quit bool
}

// New builds a Pool of n workers (n >= 1) sharing table and evaluator,
// each with its own private Position and heuristic tables. Workers
// start their idle loops immediately; Close stops them for good.
func New(n int, table *tt.Table, evaluator eval.Evaluator) *Pool {
	if n < 1 {
		n = 1
	}

	p := &Pool{table: table}
	p.cond = sync.NewCond(&p.mu)

	for i := 0; i < n; i++ {
		w := search.NewWorker(i, &board.Position{}, table, evaluator, &p.stop)
		s := &slot{worker: w}
		p.slots = append(p.slots, s)
		go p.idleLoop(s)
	}

	return p
}

// idleLoop is the body every pool slot's goroutine runs for its
// entire lifetime: wait for a job, run it outside the lock, signal
// completion, repeat, until the pool is closed.
func (p *Pool) idleLoop(s *slot) {
	p.mu.Lock()
	for {
		for s.job == nil && !p.quit {
			p.cond.Wait()
		}
		if p.quit {
			p.mu.Unlock()
			return
		}

		job := s.job
		s.job = nil
		p.mu.Unlock()

		job()

		p.mu.Lock()
		s.busy = false
		p.cond.Broadcast()
	}
}

// startCustomJob enqueues f on slot i and wakes every idle goroutine
// so the target slot picks it up.
func (p *Pool) startCustomJob(i int, f func()) {
	p.mu.Lock()
	p.slots[i].job = f
	p.slots[i].busy = true
	p.cond.Broadcast()
	p.mu.Unlock()
}

// waitForThread blocks until slot i's current job has finished.
func (p *Pool) waitForThread(i int) {
	p.mu.Lock()
	for p.slots[i].busy {
		p.cond.Wait()
	}
	p.mu.Unlock()
}

// Close stops every worker's idle loop. The pool must not be used
// again afterward.
func (p *Pool) Close() {
	p.mu.Lock()
	p.quit = true
	p.cond.Broadcast()
	p.mu.Unlock()
}

// Size reports how many workers the pool runs.
func (p *Pool) Size() int { return len(p.slots) }

// SetReport installs fn as the callback the pool's main worker (slot
// 0) invokes after each completed iterative-deepening iteration,
// the hook a UCI "go" command uses to emit "info depth ..." lines.
// Helper threads never report: only the main thread's progress is
// meaningful to a GUI.
func (p *Pool) SetReport(fn func(search.Info)) {
	p.slots[0].worker.SetReport(fn)
}

// NodesSearched sums the node counters of every worker in the pool,
// the aggregate figure a UCI "info nodes/nps" line reports.
func (p *Pool) NodesSearched() uint64 {
	var total uint64
	for _, s := range p.slots {
		total += s.worker.Stats.Nodes.Load()
	}
	return total
}

// Stop requests that every worker unwind at its next node boundary.
func (p *Pool) Stop() { p.stop.Store(true) }

// ClearHeuristics wipes every worker's killer/history/counter-move/
// continuation tables. Heuristic tables otherwise persist across
// successive "go" calls within the same game, since the ordering they
// learned from one move is still useful for the next; a new game
// shares none of that context, so it starts them fresh.
func (p *Pool) ClearHeuristics() {
	for _, s := range p.slots {
		s.worker.Tables.Clear()
	}
}

// StartThinking snapshots rootPos into every worker, assigns worker 0
// the time manager and workers 1..N-1 a Lazy-SMP depth-skip pattern,
// then dispatches all of them via the idle loop and waits for every
// one to finish iterative deepening. It returns the best-thread
// selection's principal variation and score.
func (p *Pool) StartThinking(rootPos *board.Position, limits search.Limits, tm search.TimeManager) (move.Variation, eval.Eval) {
	p.stop.Store(false)
	p.table.NewSearch()

	pvs := make([]move.Variation, len(p.slots))
	scores := make([]eval.Eval, len(p.slots))

	var g errgroup.Group
	for i, s := range p.slots {
		i, s := i, s

		*s.worker.Pos = *rootPos
		s.worker.SkipSize, s.worker.SkipPhase = skipPattern(i)
		if i == 0 {
			s.worker.Time = tm
		} else {
			s.worker.Time = nil
		}

		g.Go(func() error {
			p.startCustomJob(i, func() {
				pv, score := s.worker.Search(limits)
				pvs[i], scores[i] = pv, score
			})
			p.waitForThread(i)
			return nil
		})
	}
	g.Wait()

	best := bestThread(p.slots, pvs, scores)
	return pvs[best], scores[best]
}

// skipPattern returns the Lazy-SMP depth-skip (size, phase) pair for
// worker index i: the main thread (i == 0) never skips; helper
// threads cycle through a handful of distinct skip periods so they
// don't all omit the same depths as each other.
func skipPattern(i int) (size, phase int) {
	if i == 0 {
		return 0, 0
	}
	periods := [...]int{2, 3, 4, 5}
	return periods[i%len(periods)], i / len(periods)
}

// bestThread picks the worker whose result is most trustworthy: the
// deepest completed iteration wins, with a mate score beating any
// non-mate score regardless of depth, per the usual Lazy-SMP
// selection rule.
func bestThread(slots []*slot, pvs []move.Variation, scores []eval.Eval) int {
	best := 0
	for i := 1; i < len(slots); i++ {
		if pvs[i].Len() == 0 {
			continue
		}
		if pvs[best].Len() == 0 {
			best = i
			continue
		}

		bestMate := scores[best] > eval.WinInMaxPly || scores[best] < eval.LoseInMaxPly
		iMate := scores[i] > eval.WinInMaxPly || scores[i] < eval.LoseInMaxPly

		switch {
		case iMate && !bestMate:
			best = i
		case iMate == bestMate && slots[i].worker.Stats.CompletedDepth > slots[best].worker.Stats.CompletedDepth:
			best = i
		case iMate && bestMate && scores[i] > scores[best]:
			best = i
		}
	}
	return best
}
