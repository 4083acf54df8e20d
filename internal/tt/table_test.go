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
	"testing"

	"github.com/stretchr/testify/assert"

	. "sharprustic/pkg/types"
)

func TestInsertThenProbeRoundTrips(t *testing.T) {
	table := NewTable(1)
	key := Key(0x1234_5678_9abc_def0)
	mv := NewMove(SqE2, SqE4, Normal, PtNone)
	table.Insert(key, mv, Value(57), 4, Exact, 0)

	e, ok := table.Probe(key, 0)
	assert.True(t, ok)
	assert.Equal(t, mv.MoveOf(), e.Move)
	assert.Equal(t, Value(57), Value(e.Score))
	assert.Equal(t, int8(4), e.Depth)
	assert.Equal(t, Exact, e.Flag())
}

func TestProbeMissOnUnseenKey(t *testing.T) {
	table := NewTable(1)
	_, ok := table.Probe(Key(42), 0)
	assert.False(t, ok)
}

func TestMateScoreAdjustedAcrossPly(t *testing.T) {
	table := NewTable(1)
	key := Key(0xabc)
	// A mate score three plies from the root, stored at a node two plies
	// deep, should come back unchanged when probed at the same ply.
	storedAtPly := 2
	v := Mate - 3
	table.Insert(key, MoveNone, v, 5, Exact, storedAtPly)

	e, ok := table.Probe(key, storedAtPly)
	assert.True(t, ok)
	assert.Equal(t, v, Value(e.Score))
}

func TestClearEmptiesTable(t *testing.T) {
	table := NewTable(1)
	key := Key(7)
	table.Insert(key, MoveNone, Value(10), 2, Exact, 0)
	table.Clear()
	_, ok := table.Probe(key, 0)
	assert.False(t, ok)
}

func TestNewSearchBumpsAgeWithoutClearing(t *testing.T) {
	table := NewTable(1)
	key := Key(99)
	table.Insert(key, MoveNone, Value(5), 1, Exact, 0)
	table.NewSearch()
	e, ok := table.Probe(key, 0)
	assert.True(t, ok)
	assert.Equal(t, Value(5), Value(e.Score))
}

func TestHashfullReflectsOccupancy(t *testing.T) {
	table := NewTable(1)
	assert.Equal(t, uint16(0), table.Hashfull())
	for i := 0; i < 100; i++ {
		table.Insert(Key(i), MoveNone, Value(1), 1, Exact, 0)
	}
	assert.Greater(t, table.Hashfull(), uint16(0))
}

func TestReplacesPrefersLowerAgeThenLowerDepth(t *testing.T) {
	older := NewEntry(1, MoveNone, 0, 2, Exact, 1)
	newer := NewEntry(1, MoveNone, 0, 2, Exact, 3)
	assert.True(t, replaces(older, newer))
	assert.False(t, replaces(newer, older))

	shallow := NewEntry(1, MoveNone, 0, 1, Exact, 5)
	deep := NewEntry(1, MoveNone, 0, 9, Exact, 5)
	assert.True(t, replaces(shallow, deep))
}
