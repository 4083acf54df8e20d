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

package ordering

import . "sharprustic/pkg/types"

// Killers is the per-thread killer-move table: up to two quiet moves per
// ply that produced a beta cutoff. It is cleared between searches and is
// never read at any ply but the one it was recorded at.
type Killers struct {
	table [MaxPly][2]Move
}

// NewKillers returns an empty killer table.
func NewKillers() *Killers { return &Killers{} }

// At returns killer slot 0 or 1 at ply.
func (k *Killers) At(ply int, slot int) Move {
	if ply < 0 || ply >= MaxPly {
		return MoveNone
	}
	return k.table[ply][slot]
}

// IsKiller reports whether m matches either killer recorded at ply.
func (k *Killers) IsKiller(ply int, m Move) bool {
	if ply < 0 || ply >= MaxPly {
		return false
	}
	want := m.MoveOf()
	return k.table[ply][0].MoveOf() == want && want != MoveNone ||
		k.table[ply][1].MoveOf() == want && want != MoveNone
}

// Store records m as the newest killer at ply: shift killer 1 to killer 2,
// skip if m already equals killer 1. m must be a quiet move - the caller
// is responsible for that check.
func (k *Killers) Store(ply int, m Move) {
	if ply < 0 || ply >= MaxPly {
		return
	}
	mv := m.MoveOf()
	if k.table[ply][0].MoveOf() == mv {
		return
	}
	k.table[ply][1] = k.table[ply][0]
	k.table[ply][0] = mv
}

// Clear empties the table. The search itself starts every searcher with a
// fresh table from NewKillers rather than calling Clear.
func (k *Killers) Clear() {
	for i := range k.table {
		k.table[i] = [2]Move{MoveNone, MoveNone}
	}
}
