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

package book

import (
	"encoding/binary"
	"fmt"
	"math/rand"
	"os"
	"sort"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/move"
)

// Book is the read-only opening-book collaborator the search consults
// before it thinks: Probe answers with a book move for the current
// position, or reports none if the position isn't in the book. The
// flat Polyglot ".bin" file is scanned once and its entries indexed
// into an embedded badger key-value store keyed by Key(pos), so every
// later probe of a repeated position (the common case across a
// session of games from similar openings) is a single point lookup
// instead of a rescan of the flat file.
type Book struct {
	db *badger.DB
}

// indexedMarker is the badger key recording which source file the
// index was built from, so Open can skip re-indexing an already-built
// store.
var indexedMarker = []byte("corvid-book-source")

// Open indexes binPath (a Polyglot-format opening book) into indexDir
// if it hasn't already been indexed there, then returns a Book ready
// to Probe. indexDir is created if it doesn't exist; passing the same
// indexDir across process restarts reuses the existing index without
// rescanning binPath.
func Open(binPath, indexDir string) (*Book, error) {
	opts := badger.DefaultOptions(indexDir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("book: opening index at %q: %w", indexDir, err)
	}

	b := &Book{db: db}
	if err := b.ensureIndexed(binPath); err != nil {
		db.Close()
		return nil, err
	}
	return b, nil
}

// Close releases the index's file handles.
func (b *Book) Close() error {
	return b.db.Close()
}

func (b *Book) ensureIndexed(path string) error {
	already := false
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(indexedMarker)
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			already = string(val) == path
			return nil
		})
	})
	if err != nil {
		return err
	}
	if already {
		return nil
	}
	return b.indexFile(path)
}

// indexFile scans binPath's flat array of 16-byte Polyglot entries,
// groups them by key (a single position can have several candidate
// moves, each with its own weight), and writes one badger record per
// key: a packed list of (move uint16, weight uint16) pairs sorted by
// descending weight.
func (b *Book) indexFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("book: reading %q: %w", path, err)
	}
	if len(raw)%entrySize != 0 {
		return fmt.Errorf("book: %q size %d is not a multiple of the %d-byte entry size", path, len(raw), entrySize)
	}

	grouped := make(map[uint64][]entry)
	for off := 0; off < len(raw); off += entrySize {
		e, err := decodeEntry(raw[off : off+entrySize])
		if err != nil {
			return err
		}
		grouped[e.key] = append(grouped[e.key], e)
	}

	batch := b.db.NewWriteBatch()
	defer batch.Cancel()

	for key, entries := range grouped {
		sort.Slice(entries, func(i, j int) bool { return entries[i].weight > entries[j].weight })

		value := make([]byte, 4*len(entries))
		for i, e := range entries {
			binary.BigEndian.PutUint16(value[4*i:], e.move)
			binary.BigEndian.PutUint16(value[4*i+2:], e.weight)
		}

		keyBytes := make([]byte, 8)
		binary.BigEndian.PutUint64(keyBytes, key)

		if err := batch.Set(keyBytes, value); err != nil {
			return fmt.Errorf("book: indexing key %x: %w", key, err)
		}
	}

	if err := batch.Set(indexedMarker, []byte(path)); err != nil {
		return err
	}

	return batch.Flush()
}

// Probe looks up pos's Key in the index and, if any candidate moves
// are recorded, chooses one weighted by its Polyglot weight (higher
// weight, proportionally more likely), falling back through the
// remaining candidates if the chosen one fails to resolve against the
// position's actual legal moves. It reports false if the position
// isn't indexed, or none of its candidates resolve.
func (b *Book) Probe(pos *board.Position) (move.Move, bool) {
	keyBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(keyBytes, Key(pos))

	var value []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(keyBytes)
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if err != nil || len(value) == 0 {
		return move.None, false
	}

	type candidate struct {
		raw    uint16
		weight uint16
	}
	candidates := make([]candidate, 0, len(value)/4)
	var total int
	for off := 0; off+4 <= len(value); off += 4 {
		w := binary.BigEndian.Uint16(value[off+2 : off+4])
		candidates = append(candidates, candidate{
			raw:    binary.BigEndian.Uint16(value[off : off+2]),
			weight: w,
		})
		total += int(w) + 1 // +1 so a zero-weight entry still has a chance
	}

	for len(candidates) > 0 {
		pick := rand.Intn(total)
		idx := 0
		for idx < len(candidates)-1 {
			w := int(candidates[idx].weight) + 1
			if pick < w {
				break
			}
			pick -= w
			idx++
		}

		if m := decodeMove(pos, candidates[idx].raw); m != move.None {
			return m, true
		}

		total -= int(candidates[idx].weight) + 1
		candidates = append(candidates[:idx], candidates[idx+1:]...)
	}

	return move.None, false
}
