//
// Sharp Rustic - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2025-2026 Sharp Rustic contributors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package search

import (
	"sharprustic/internal/evaluator"
	"sharprustic/internal/moveslice"
	"sharprustic/internal/ordering"
	"sharprustic/internal/position"
	"sharprustic/internal/stopctl"
	"sharprustic/internal/tt"
	. "sharprustic/pkg/types"
)

// searcher holds everything thread-local to one searcher goroutine's run of
// iterative deepening.
// A fresh searcher is built per SearchRequest per thread; it is not reused
// across searches.
type searcher struct {
	pos     position.Position
	eval    *evaluator.Evaluator
	table   *tt.Table
	local   *tt.LocalCache
	batch   *tt.Batch
	killers *ordering.Killers
	stop    *stopctl.Controller

	nodes    int64
	selDepth int

	// rootJitter perturbs the root move order on helper threads so they
	// explore the tree differently from thread 0 and from each other,
	// diversifying what ends up in the shared table. Zero on the thread
	// whose result is published.
	rootJitter int

	// searchPath holds the Zobrist keys of the current node's strict
	// ancestors (each pushed just before descending into a child), for the
	// in-search repetition check. It is not the pre-search game history -
	// that lives in position.Board.repHistory, seeded via MarkRoot.
	searchPath []Key

	// lists/qlists/pv are per-ply scratch buffers, indexed by ply_from_root,
	// so no allocation happens inside the hot recursive loop.
	lists  [MaxPly + 1]moveslice.MoveList
	qlists [MaxPly + 1]moveslice.MoveList
	pv     [MaxPly + 1]moveslice.MoveList
}

// newSearcher builds a thread-local searcher sharing table (the process-wide
// TT) but owning its own local cache, batch, killers and stop view.
func newSearcher(pos position.Position, eval *evaluator.Evaluator, table *tt.Table, localCap, batchCap int, stop *stopctl.Controller) *searcher {
	s := &searcher{
		pos:     pos,
		eval:    eval,
		table:   table,
		local:   tt.NewLocalCache(localCap),
		killers: ordering.NewKillers(),
		stop:    stop,
	}
	s.batch = tt.NewBatch(table, s.local, batchCap)
	for i := range s.lists {
		s.lists[i] = *moveslice.New()
		s.qlists[i] = *moveslice.New()
		s.pv[i] = *moveslice.New()
	}
	return s
}

func (s *searcher) listAt(ply int) *moveslice.MoveList {
	if ply >= len(s.lists) {
		ply = len(s.lists) - 1
	}
	return &s.lists[ply]
}

func (s *searcher) qsListAt(ply int) *moveslice.MoveList {
	if ply >= len(s.qlists) {
		ply = len(s.qlists) - 1
	}
	return &s.qlists[ply]
}

func (s *searcher) pvAt(ply int) *moveslice.MoveList {
	if ply >= len(s.pv) {
		ply = len(s.pv) - 1
	}
	return &s.pv[ply]
}

// probe is the read half of the two-level TT access pattern: check the
// local cache first without touching the global table; on a local miss,
// fall through to the shared table and mirror a hit back into the local
// cache. The returned entry's score is adjusted to be relative to ply,
// regardless of which layer served it.
func (s *searcher) probe(key Key, ply int) (tt.Entry, bool) {
	if e, ok := s.local.Probe(key); ok {
		e.Score = int16(tt.ValueFromTT(Value(e.Score), ply))
		return e, true
	}
	if e, ok := s.table.Probe(key, ply); ok {
		// table.Probe already adjusted the score to be ply-relative; the
		// local cache stores the same ply-independent format Batch.Add
		// writes, so convert back before mirroring it in.
		raw := e
		raw.Score = int16(tt.ValueToTT(Value(e.Score), ply))
		s.local.Insert(key, raw)
		return e, true
	}
	return tt.Entry{}, false
}

// store is the write half: push the result into the local cache and into
// the batch, never acquiring the shared table's write lock here.
func (s *searcher) store(key Key, mv Move, score Value, depth int8, flag ValueType, ply int) {
	s.batch.Add(key, mv, score, depth, flag, ply)
}

func (s *searcher) pushPath(key Key) {
	s.searchPath = append(s.searchPath, key)
}

func (s *searcher) popPath() {
	s.searchPath = s.searchPath[:len(s.searchPath)-1]
}
