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

// Package moveslice provides the bounded, scored move list the search core
// passes around at every node.
package moveslice

import (
	"fmt"
	"strings"

	. "sharprustic/pkg/types"
)

// DefaultCapacity comfortably exceeds the legal-move maximum of any
// reachable position.
const DefaultCapacity = 256

// MoveList is an ordered, bounded sequence of moves plus an implicit score
// channel carried inside each Move's value bits. Scores are only meaningful
// between the moment ordering assigns them and the moment the caller
// consumes the move via PickBest - they never persist across nodes.
type MoveList []Move

// New returns an empty MoveList with at least DefaultCapacity backing
// storage.
func New() *MoveList {
	cap := DefaultCapacity
	ms := make([]Move, 0, cap)
	return (*MoveList)(&ms)
}

// Len returns the number of moves currently stored.
func (ms *MoveList) Len() int { return len(*ms) }

// PushBack appends m.
func (ms *MoveList) PushBack(m Move) { *ms = append(*ms, m) }

// At returns the move at index i without removing it.
func (ms *MoveList) At(i int) Move { return (*ms)[i] }

// Set overwrites the move at index i.
func (ms *MoveList) Set(i int, m Move) { (*ms)[i] = m }

// Clear empties the list but keeps the backing array, so a per-node list can
// be reused across sibling nodes without triggering GC churn.
func (ms *MoveList) Clear() { *ms = (*ms)[:0] }

// Clone makes an independent copy.
func (ms *MoveList) Clone() *MoveList {
	dst := make([]Move, len(*ms))
	copy(dst, *ms)
	return (*MoveList)(&dst)
}

// Contains reports whether m (compared positionally, ignoring any attached
// sort value) is present in the list.
func (ms *MoveList) Contains(m Move) bool {
	target := m.MoveOf()
	for _, x := range *ms {
		if x.MoveOf() == target {
			return true
		}
	}
	return false
}

// PickBest is an incremental "pick best remaining" selection, not a full
// sort. It scans
// the unconsumed tail [from, len), swaps the highest-scored move forward
// into position from one adjacent swap at a time, so the moves it passes
// keep their relative order, and returns it. Moves before `from` are the
// moves already consumed by earlier calls; the list is never fully sorted.
func (ms *MoveList) PickBest(from int) Move {
	l := len(*ms)
	if from >= l {
		return MoveNone
	}
	bestIdx := from
	bestVal := (*ms)[from].ValueOf()
	for i := from + 1; i < l; i++ {
		if v := (*ms)[i].ValueOf(); v > bestVal {
			bestVal = v
			bestIdx = i
		}
	}
	for j := bestIdx; j > from; j-- {
		(*ms)[j], (*ms)[j-1] = (*ms)[j-1], (*ms)[j]
	}
	return (*ms)[from]
}

// Sort performs a full stable sort from highest to lowest attached value.
// Unlike PickBest this is only used for the between-iteration reordering of
// the root move list, never inside a node.
func (ms *MoveList) Sort() {
	l := len(*ms)
	for i := 1; i < l; i++ {
		tmp := (*ms)[i]
		j := i
		for j > 0 && tmp.ValueOf() > (*ms)[j-1].ValueOf() {
			(*ms)[j] = (*ms)[j-1]
			j--
		}
		(*ms)[j] = tmp
	}
}

// MoveToFront moves the first occurrence of target (matched positionally)
// to index 0, shifting the rest down by one. Used by the root ordering to
// place the TT move / previous best move first without a full re-score.
func (ms *MoveList) MoveToFront(target Move) bool {
	l := len(*ms)
	want := target.MoveOf()
	for i := 0; i < l; i++ {
		if (*ms)[i].MoveOf() == want {
			if i != 0 {
				m := (*ms)[i]
				copy((*ms)[1:i+1], (*ms)[0:i])
				(*ms)[0] = m
			}
			return true
		}
	}
	return false
}

func (ms *MoveList) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "MoveList[%d]{", len(*ms))
	for i, m := range *ms {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(m.String())
	}
	b.WriteString("}")
	return b.String()
}

// StringUci renders the list as a space separated sequence of UCI move
// tokens, the format used for a "pv" or "searchmoves" line.
func (ms *MoveList) StringUci() string {
	var b strings.Builder
	for i, m := range *ms {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(m.UciString())
	}
	return b.String()
}
