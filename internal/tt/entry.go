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

// Package tt implements the shared transposition table, the
// per-thread LocalCache that shields it from lock contention, and the
// write Batch that amortises exclusive-lock acquisitions.
package tt

import . "sharprustic/pkg/types"

// Entry is the 12-byte record stored per table slot. Age and flag are
// bit-packed into one byte to keep the footprint within 16 bytes.
type Entry struct {
	KeyTag uint32    // high 32 bits of the Zobrist key, used for verification
	Move   Move      // best move found (value bits stripped)
	Score  int16     // centipawns, side-to-move POV, mate-adjusted (see below)
	Depth  int8      // remaining depth at which this entry was stored
	meta   uint8     // age:5 bits | flag:3 bits
}

const (
	flagMask = uint8(0b0000_0111)
	ageShift = 3
)

// NewEntry packs an Entry. age is a generation counter (0..31).
func NewEntry(keyTag uint32, mv Move, score Value, depth int8, flag ValueType, age uint8) Entry {
	return Entry{
		KeyTag: keyTag,
		Move:   mv.MoveOf(),
		Score:  int16(score),
		Depth:  depth,
		meta:   (age << ageShift) | (uint8(flag) & flagMask),
	}
}

// Flag returns how Score bounds the true value of the node that stored it.
func (e Entry) Flag() ValueType { return ValueType(e.meta & flagMask) }

// Age returns the generation counter this entry was stored under.
func (e Entry) Age() uint8 { return e.meta >> ageShift }

// IsEmpty reports whether this slot has never been written.
func (e Entry) IsEmpty() bool { return e.KeyTag == 0 && e.Move == MoveNone && e.Depth == 0 && e.meta == 0 }

// bucketSize is the number of entries sharing one table index.
const bucketSize = 3

// bucket is a fixed-size group of entries sharing one table index.
type bucket struct {
	entries [bucketSize]Entry
}

// valueToTT adjusts a score as the search produces it (mate distance
// counted from the root) to a ply-independent one before storing it: a
// mate score is stored as distance from this node rather than distance
// from the root, so it can be reused unchanged at other ply distances.
func valueToTT(v Value, ply int) Value {
	if v >= MateInMax {
		return v + Value(ply)
	}
	if v <= -MateInMax {
		return v - Value(ply)
	}
	return v
}

// valueFromTT is the inverse of valueToTT, applied on probe.
func valueFromTT(v Value, ply int) Value {
	if v >= MateInMax {
		return v - Value(ply)
	}
	if v <= -MateInMax {
		return v + Value(ply)
	}
	return v
}

// ValueFromTT is valueFromTT, exported so a caller holding a raw LocalCache
// entry (which stores scores in the same ply-independent format as the
// shared table) can apply the same adjustment on its own probe path.
func ValueFromTT(v Value, ply int) Value { return valueFromTT(v, ply) }

// ValueToTT is valueToTT, exported so a caller mirroring a table hit back
// into a LocalCache can convert the already-ply-adjusted score back to the
// ply-independent storage format the cache expects.
func ValueToTT(v Value, ply int) Value { return valueToTT(v, ply) }
