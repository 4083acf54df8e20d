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

import (
	"sync"
	"sync/atomic"

	. "sharprustic/pkg/types"
)

const defaultMB = 32

// Table is the shared, fixed-capacity transposition table: a power-of-two
// array of 3-entry buckets guarded by a single reader/writer lock. Threads
// minimise contention through LocalCache and Batch rather than through
// finer-grained locking of the table itself.
type Table struct {
	mu      sync.RWMutex
	buckets []bucket
	mask    uint64
	age     uint8

	hits   uint64
	misses uint64
	stores uint64
}

// NewTable allocates a table sized to hold roughly sizeMB megabytes of
// entries, rounded down to the nearest power-of-two bucket count.
func NewTable(sizeMB int) *Table {
	if sizeMB <= 0 {
		sizeMB = defaultMB
	}
	t := &Table{}
	t.Resize(sizeMB)
	return t
}

// Resize reallocates the table for the given size in megabytes, discarding
// all entries and resetting the age generation.
func (t *Table) Resize(sizeMB int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	bytesPerBucket := bucketSize * entrySize
	nBuckets := (sizeMB * 1024 * 1024) / bytesPerBucket
	pow := uint64(1)
	for pow*2 <= uint64(nBuckets) && pow < 1<<30 {
		pow *= 2
	}
	if pow == 0 {
		pow = 1
	}
	t.buckets = make([]bucket, pow)
	t.mask = pow - 1
	t.age = 0
}

// entrySize documents the per-entry footprint this sizing calculation
// assumes; the real Go struct is 12 bytes, so the table occupies somewhat
// less than sizeMB, which is immaterial to a best-effort sizing contract.
const entrySize = 16

func (t *Table) index(key Key) uint64 {
	return uint64(key) & t.mask
}

// Probe looks up key and, on a hit, returns the entry with its score
// already adjusted from storage (ply-independent) to a value relative to
// ply.
func (t *Table) Probe(key Key, ply int) (Entry, bool) {
	tag := uint32(key >> 32)
	idx := t.index(key)
	t.mu.RLock()
	b := t.buckets[idx]
	t.mu.RUnlock()
	for _, e := range b.entries {
		if !e.IsEmpty() && e.KeyTag == tag {
			atomic.AddUint64(&t.hits, 1)
			e.Score = int16(valueFromTT(Value(e.Score), ply))
			return e, true
		}
	}
	atomic.AddUint64(&t.misses, 1)
	return Entry{}, false
}

// Insert stores mv/score/depth/flag for key, applying the mate-score
// adjustment on the way in. Replacement picks, in order: a slot whose tag
// already matches (update in place), else an empty slot, else the slot
// with the smallest (age, depth) tuple.
func (t *Table) Insert(key Key, mv Move, score Value, depth int8, flag ValueType, ply int) {
	adjusted := valueToTT(score, ply)
	t.mu.Lock()
	t.insertLocked(key, mv, adjusted, depth, flag, t.age)
	t.mu.Unlock()
	atomic.AddUint64(&t.stores, 1)
}

// replaces reports whether candidate is a worse (smaller age, then smaller
// depth) occupant than incumbent, i.e. candidate should be evicted first.
func replaces(candidate, incumbent Entry) bool {
	if candidate.Age() != incumbent.Age() {
		return candidate.Age() < incumbent.Age()
	}
	return candidate.Depth < incumbent.Depth
}

// Clear zeroes every bucket and resets the age generation.
func (t *Table) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range t.buckets {
		t.buckets[i] = bucket{}
	}
	t.age = 0
	atomic.StoreUint64(&t.hits, 0)
	atomic.StoreUint64(&t.misses, 0)
	atomic.StoreUint64(&t.stores, 0)
}

// NewSearch increments the age generation, so subsequent Insert calls mark
// their entries as newer than everything already in the table, without
// touching existing entries.
func (t *Table) NewSearch() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.age++
}

// Hashfull returns a parts-per-thousand estimate of table occupancy,
// sampled over the first 1000 buckets.
func (t *Table) Hashfull() uint16 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	sampleSize := 1000
	if sampleSize > len(t.buckets) {
		sampleSize = len(t.buckets)
	}
	if sampleSize == 0 {
		return 0
	}
	used := 0
	total := 0
	for i := 0; i < sampleSize; i++ {
		for _, e := range t.buckets[i].entries {
			total++
			if !e.IsEmpty() {
				used++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return uint16(used * 1000 / total)
}

// Len returns the number of buckets allocated.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.buckets)
}
