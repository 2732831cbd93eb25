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

// Package tt implements the shared-memory transposition table: a
// bucketed hash table, written to without locks by every search
// worker, caching the result of previously searched positions so
// transpositions in the search tree are resolved in O(1) instead of
// being re-searched.
package tt

import (
	"math/bits"
	"runtime"
	"sync"
	"unsafe"

	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/move"
)

// entriesPerBucket is fixed at three, the classic Stockfish-style
// cluster size. With value/eval held as int32 (see Entry) an Entry is
// 16 bytes, so three entries plus 2 bytes of padding make a 52-byte
// bucket.
const entriesPerBucket = 3

// genStep is the amount new_search advances the generation counter
// by; the low 3 bits of the generation/flag byte hold the PV bit and
// the bound flag, so generations are always multiples of 8.
const genStep = 8

// Entry is one slot of a bucket. value/eval are full Eval-width
// rather than the 16 bits a conventional centipawn range would need:
// this engine's Mate sentinel is offset from math.MaxInt32/2 (so that
// mate-distance arithmetic never overflows), so a mate score does not
// fit a 16-bit field the way it would in an engine whose Mate
// constant is a small integer.
type Entry struct {
	tag   uint16    // high 16 bits of the position's zobrist key
	move  move.Move // best move found in this position
	value int32     // canonicalized score
	eval  int32      // static evaluation, independent of search depth
	depth uint8     // depth searched, biased by +1 so 0 means empty
	genFB uint8     // generation:5 | pvBit:1 | bound:2
}

const (
	boundMask = 0x3
	pvBit     = 0x4
	genShift  = 3
)

// Bound is the kind of value an Entry stores relative to the true
// score of its position.
type Bound uint8

const (
	NoBound Bound = iota
	Exact
	Lower
	Upper
)

func (e *Entry) occupied() bool { return e.depth != 0 }

func (e *Entry) bound() Bound { return Bound(e.genFB & boundMask) }

func (e *Entry) pv() bool { return e.genFB&pvBit != 0 }

func (e *Entry) generation() uint8 { return e.genFB &^ (boundMask | pvBit) }

// relativeAge measures how many generations old an entry is relative
// to the table's current generation, wrapping around the 5-bit
// generation field.
func relativeAge(currentGen, entryGen uint8) uint8 {
	return (255 + genStep + currentGen - entryGen) & (^uint8(boundMask | pvBit))
}

// bucket is the cache-aligned cluster of entries sharing one index.
type bucket struct {
	entries [entriesPerBucket]Entry
	_       [2]byte // padding after the entries
}

// Table is the shared, lock-free transposition table. Every exported
// method is safe to call concurrently from multiple search workers;
// writes race benignly; readers reject inconsistent entries via the
// key-tag check.
type Table struct {
	buckets    []bucket
	generation uint8

	mu sync.Mutex // serializes Resize/Clear against themselves only
}

// EntrySize is the size in bytes of one stored Entry. numBuckets sizes
// the table by whole buckets and does not use it.
var EntrySize = int(unsafe.Sizeof(Entry{}))

// New creates a Table sized to use no more than mbs megabytes.
func New(mbs int) *Table {
	tt := &Table{}
	tt.Resize(mbs)
	return tt
}

// numBuckets returns the largest power of two bucket count whose
// total size fits within mbs megabytes.
func numBuckets(mbs int) int {
	bucketSize := int(unsafe.Sizeof(bucket{}))
	want := (mbs * 1024 * 1024) / bucketSize
	if want < 1 {
		want = 1
	}
	return 1 << (bits.Len(uint(want)) - 1)
}

// Resize reallocates the table to the given megabyte budget, filling
// the new buckets in parallel across GOMAXPROCS workers, then clears
// any previous contents (resizing implies a fresh table).
func (tt *Table) Resize(mbs int) {
	tt.mu.Lock()
	defer tt.mu.Unlock()

	n := numBuckets(mbs)
	tt.buckets = make([]bucket, n)
	tt.generation = 0
	tt.fillParallel(func(b *bucket) { *b = bucket{} })
}

// Clear resets every entry without changing the table's size,
// partitioning the work across GOMAXPROCS workers.
func (tt *Table) Clear() {
	tt.mu.Lock()
	defer tt.mu.Unlock()

	tt.generation = 0
	tt.fillParallel(func(b *bucket) { *b = bucket{} })
}

// fillParallel partitions tt.buckets across worker goroutines and
// applies fn to each, the shape the resize/clear path and the initial
// allocation both need.
func (tt *Table) fillParallel(fn func(*bucket)) {
	workers := runtime.GOMAXPROCS(0)
	if workers > len(tt.buckets) {
		workers = len(tt.buckets)
	}
	if workers < 1 {
		workers = 1
	}

	chunk := (len(tt.buckets) + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > len(tt.buckets) {
			hi = len(tt.buckets)
		}
		if lo >= hi {
			continue
		}

		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				fn(&tt.buckets[i])
			}
		}(lo, hi)
	}
	wg.Wait()
}

// NewSearch advances the table's generation so that entries written
// during the previous search age relative to ones written now.
func (tt *Table) NewSearch() {
	tt.generation += genStep
}

// GenerationOf reports the table's current generation tag, the value
// every Write call during this search should stamp its entry with.
func (tt *Table) GenerationOf() uint8 { return tt.generation }

// indexOf is the Lemire fast-range reduction of key into a bucket
// index, avoiding a division on every probe.
func (tt *Table) indexOf(key uint64) uint64 {
	hi, _ := bits.Mul64(key, uint64(len(tt.buckets)))
	return hi
}

func tagOf(key uint64) uint16 {
	return uint16(key >> 48)
}

// Writer is a handle to a specific Entry slot, returned by Probe so
// the caller can write back to the exact slot it looked at without a
// second hash computation.
type Writer struct {
	entry *Entry
}

// Probe looks up key in the table. hit reports whether an entry with
// a matching key-tag was found; data is only meaningful when hit is
// true. writer always refers to a valid slot: either the matching
// entry, or the chosen replacement victim when there is no hit.
func (tt *Table) Probe(key uint64) (hit bool, data Entry, writer Writer) {
	b := &tt.buckets[tt.indexOf(key)]
	tag := tagOf(key)

	for i := range b.entries {
		e := &b.entries[i]
		if e.occupied() && e.tag == tag {
			return true, *e, Writer{e}
		}
	}

	victim := &b.entries[0]
	victimScore := replacementScore(victim, tt.generation)
	for i := 1; i < len(b.entries); i++ {
		e := &b.entries[i]
		if s := replacementScore(e, tt.generation); s < victimScore {
			victim, victimScore = e, s
		}
	}

	return false, Entry{}, Writer{victim}
}

// replacementScore ranks an entry for eviction: lower is more
// replaceable. Depth earns an entry protection; age erodes it twice
// as fast, so a deep-but-stale entry still eventually yields to a
// shallow-but-fresh one.
func replacementScore(e *Entry, currentGen uint8) int {
	return int(e.depth) - 2*int(relativeAge(currentGen, e.generation()))
}

// MateBound beyond which Value/value_to_tt treat a score as a forced
// mate rather than a material evaluation, mirroring pkg/eval.
const MateBound = int32(eval.MateBound)

// Write stores a search result into the slot writer refers to,
// applying the depth-preference and move-retention rules from
// probe's contract.
func (w Writer) Write(key uint64, value eval.Eval, isPV bool, bound Bound, depth int, m move.Move, staticEval eval.Eval, ply int, generation uint8) {
	e := w.entry
	tag := tagOf(key)

	storedValue := valueToTT(value, ply)

	biasedDepth := uint8(depth + 1)
	if depth < 0 {
		biasedDepth = 0
	}

	if bound != Exact && e.occupied() && e.tag == tag && int(biasedDepth) < int(e.depth)-2 {
		return
	}

	if m == move.None && e.occupied() && e.tag == tag {
		m = e.move
	}

	e.tag = tag
	e.move = m
	e.value = int32(storedValue)
	e.eval = int32(staticEval)
	e.depth = biasedDepth

	var pv uint8
	if isPV {
		pv = pvBit
	}
	e.genFB = (generation &^ (boundMask | pvBit)) | pv | uint8(bound)
}

// Move, Value, StaticEval, Depth, Bound, and IsPV decode an Entry
// returned by Probe; Value requires ply to reverse the mate-distance
// canonicalization applied at write time, and halfMoves (the
// probing position's fifty-move counter) to downgrade a mate claim
// the fifty-move rule would not allow to complete.
func (e Entry) Move() move.Move { return e.move }
func (e Entry) Value(ply, halfMoves int) eval.Eval {
	return AdjustForFiftyMove(valueFromTT(eval.Eval(e.value), ply), halfMoves)
}
func (e Entry) StaticEval() eval.Eval { return eval.Eval(e.eval) }
func (e Entry) Depth() int            { return int(e.depth) - 1 }
func (e Entry) Bound() Bound          { return e.bound() }
func (e Entry) IsPV() bool            { return e.pv() }

// valueToTT canonicalizes a mate score found ply plies from the root
// into one measured from the position being stored, so the same
// entry is reusable at a different depth in the tree.
func valueToTT(v eval.Eval, ply int) eval.Eval {
	switch {
	case v >= eval.MateBound:
		return v + eval.Eval(ply)
	case v <= -eval.MateBound:
		return v - eval.Eval(ply)
	default:
		return v
	}
}

// valueFromTT is valueToTT's inverse, applied on read.
func valueFromTT(v eval.Eval, ply int) eval.Eval {
	switch {
	case v >= eval.MateBound:
		return v - eval.Eval(ply)
	case v <= -eval.MateBound:
		return v + eval.Eval(ply)
	default:
		return v
	}
}

// AdjustForFiftyMove downgrades a mate score read from the table when
// it claims a mate the fifty-move rule would not allow to complete:
// a mate more than (100 − halfMoveClock) plies away is downgraded to
// just inside MateBound so the search doesn't trust an unreachable
// claim.
func AdjustForFiftyMove(v eval.Eval, halfMoveClock int) eval.Eval {
	horizon := eval.Eval(100 - halfMoveClock)
	switch {
	case v >= eval.MateBound && eval.Mate-v > horizon:
		return eval.MateBound - 1
	case v <= -eval.MateBound && eval.Mate+v > horizon:
		return -eval.MateBound + 1
	default:
		return v
	}
}

// Hashfull samples the table's first 1000 buckets and returns, in
// permille, the fraction of entries occupied with a generation no
// older than maxAge.
func (tt *Table) Hashfull(maxAge uint8) int {
	sampled := 1000
	if sampled > len(tt.buckets) {
		sampled = len(tt.buckets)
	}

	var occupied int
	for i := 0; i < sampled; i++ {
		for j := range tt.buckets[i].entries {
			e := &tt.buckets[i].entries[j]
			if e.occupied() && relativeAge(tt.generation, e.generation()) <= maxAge {
				occupied++
			}
		}
	}

	return occupied * 1000 / (sampled * entriesPerBucket)
}

// Prefetch hints the CPU to start loading the bucket for key into
// cache ahead of the probe that will need it; on architectures
// without a usable prefetch intrinsic reachable from pure Go it is a
// no-op, which is always a safe fallback since prefetch is only ever
// a latency hint.
func (tt *Table) Prefetch(key uint64) {
	_ = tt.indexOf(key)
}
