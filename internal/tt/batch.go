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

package tt

import . "sharprustic/pkg/types"

// record is one pending write: a TT entry plus the ply it was computed at,
// since the mate-score adjustment needs ply at apply time.
type record struct {
	key   Key
	mv    Move
	score Value
	depth int8
	flag  ValueType
	ply   int
}

// BatchSize is the default flush threshold.
const BatchSize = 16

// Batch is a per-thread queue of pending TT writes. It exists so a node's
// TT store never acquires the shared table's exclusive lock directly;
// writes accumulate here and are applied in one lock acquisition when the
// batch fills, at each iteration boundary, and on stop.
type Batch struct {
	table   *Table
	local   *LocalCache
	pending []record
	cap     int
}

// NewBatch creates a Batch of the given capacity that flushes into table
// and mirrors every write into local.
func NewBatch(table *Table, local *LocalCache, capacity int) *Batch {
	if capacity < 1 {
		capacity = BatchSize
	}
	return &Batch{table: table, local: local, cap: capacity, pending: make([]record, 0, capacity)}
}

// Add queues a write and mirrors it into the local cache immediately
// (local visibility must not wait for a flush), flushing if the batch is
// now full.
func (b *Batch) Add(key Key, mv Move, score Value, depth int8, flag ValueType, ply int) {
	b.local.Insert(key, NewEntry(uint32(key>>32), mv, valueToTT(score, ply), depth, flag, 0))
	b.pending = append(b.pending, record{key: key, mv: mv, score: score, depth: depth, flag: flag, ply: ply})
	if len(b.pending) >= b.cap {
		b.Flush()
	}
}

// Flush applies every pending write to the shared table under a single
// exclusive lock acquisition, then clears the queue.
func (b *Batch) Flush() {
	if len(b.pending) == 0 {
		return
	}
	b.table.applyBatch(b.pending)
	b.pending = b.pending[:0]
}

// applyBatch writes every record while holding the table's write lock
// once, rather than once per record.
func (t *Table) applyBatch(records []record) {
	t.mu.Lock()
	defer t.mu.Unlock()
	age := t.age
	for _, r := range records {
		t.insertLocked(r.key, r.mv, valueToTT(r.score, r.ply), r.depth, r.flag, age)
	}
}

// insertLocked is Insert's replacement logic, factored out so it can run
// under a lock already held by applyBatch (avoiding a second lock
// acquisition per record) or be called directly by Insert for a single
// immediate write.
func (t *Table) insertLocked(key Key, mv Move, adjustedScore Value, depth int8, flag ValueType, age uint8) {
	tag := uint32(key >> 32)
	entry := NewEntry(tag, mv, adjustedScore, depth, flag, age)
	idx := t.index(key)
	b := &t.buckets[idx]

	for i := range b.entries {
		if !b.entries[i].IsEmpty() && b.entries[i].KeyTag == tag {
			b.entries[i] = entry
			return
		}
	}
	for i := range b.entries {
		if b.entries[i].IsEmpty() {
			b.entries[i] = entry
			return
		}
	}
	worst := 0
	for i := 1; i < bucketSize; i++ {
		if replaces(b.entries[i], b.entries[worst]) {
			worst = i
		}
	}
	b.entries[worst] = entry
}
