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

// localSlot pairs a full Zobrist key (not just its tag) with the entry
// that was stored for it, so LocalCache.Probe needs no further
// verification against the board.
type localSlot struct {
	key   Key
	entry Entry
	used  bool
}

// LocalCache is a per-thread, lock-free front end for the shared Table: a
// probe that hits here never touches the global lock at all. Replacement
// is direct-mapped by key%capacity, so Probe is a single index, not a
// linear scan.
type LocalCache struct {
	slots []localSlot
}

// NewLocalCache allocates a cache with the given fixed capacity.
func NewLocalCache(capacity int) *LocalCache {
	if capacity < 1 {
		capacity = 1
	}
	return &LocalCache{slots: make([]localSlot, capacity)}
}

func (c *LocalCache) index(key Key) int {
	return int(uint64(key) % uint64(len(c.slots)))
}

// Probe returns the cached entry for key, if the slot at key%capacity is
// occupied by exactly that key.
func (c *LocalCache) Probe(key Key) (Entry, bool) {
	s := &c.slots[c.index(key)]
	if s.used && s.key == key {
		return s.entry, true
	}
	return Entry{}, false
}

// Insert replaces the slot at key%capacity unconditionally.
func (c *LocalCache) Insert(key Key, e Entry) {
	s := &c.slots[c.index(key)]
	s.key = key
	s.entry = e
	s.used = true
}

// Clear empties the cache. The search itself starts every searcher with a
// fresh cache from NewLocalCache rather than calling Clear.
func (c *LocalCache) Clear() {
	for i := range c.slots {
		c.slots[i] = localSlot{}
	}
}
