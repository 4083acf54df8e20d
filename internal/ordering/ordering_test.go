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

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sharprustic/internal/moveslice"
	"sharprustic/internal/position"
	. "sharprustic/pkg/types"
)

func TestScorePutsTtMoveFirst(t *testing.T) {
	b := position.NewBoard()
	var list moveslice.MoveList
	b.GenerateLegal(&list)
	assert.Greater(t, list.Len(), 0)

	ttMove := list.At(3).MoveOf()
	k := NewKillers()
	Score(b, &list, ttMove, k, 0)

	picked := list.PickBest(0)
	assert.Equal(t, ttMove, picked.MoveOf())
}

func TestScoreRanksCaptureAboveQuiet(t *testing.T) {
	// White knight on e4 can capture a black pawn on d6, or play a quiet
	// knight move to c3.
	b, err := position.NewBoardFromFEN("4k3/8/3p4/8/4N3/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)

	var list moveslice.MoveList
	b.GenerateLegal(&list)
	Score(b, &list, MoveNone, NewKillers(), 0)

	capture := NewMove(SqE4, SqD6, Normal, PtNone)
	assert.True(t, list.Contains(capture))

	best := list.PickBest(0)
	assert.Equal(t, capture.MoveOf(), best.MoveOf())
}

func TestScoreRanksKillerAboveRemainingQuiets(t *testing.T) {
	b, err := position.NewBoardFromFEN("4k3/8/8/8/8/8/4P3/R3K2R w KQ - 0 1")
	assert.NoError(t, err)

	var list moveslice.MoveList
	b.GenerateLegal(&list)

	killerMove := NewMove(SqE2, SqE3, Normal, PtNone)
	assert.True(t, list.Contains(killerMove))

	k := NewKillers()
	k.Store(0, killerMove)
	Score(b, &list, MoveNone, k, 0)

	best := list.PickBest(0)
	assert.Equal(t, killerMove.MoveOf(), best.MoveOf())
}

func TestIsQuietRejectsCaptures(t *testing.T) {
	b, err := position.NewBoardFromFEN("4k3/8/3p4/8/4N3/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	capture := NewMove(SqE4, SqD6, Normal, PtNone)
	quiet := NewMove(SqE4, SqC3, Normal, PtNone)
	assert.False(t, IsQuiet(b, capture))
	assert.True(t, IsQuiet(b, quiet))
}

func TestKillersStoreShiftsAndSkipsDuplicate(t *testing.T) {
	k := NewKillers()
	m1 := NewMove(SqA2, SqA3, Normal, PtNone)
	m2 := NewMove(SqB2, SqB3, Normal, PtNone)

	k.Store(5, m1)
	assert.Equal(t, m1.MoveOf(), k.At(5, 0).MoveOf())

	k.Store(5, m2)
	assert.Equal(t, m2.MoveOf(), k.At(5, 0).MoveOf())
	assert.Equal(t, m1.MoveOf(), k.At(5, 1).MoveOf())

	// Storing the current killer1 again is a no-op, not a shift.
	k.Store(5, m2)
	assert.Equal(t, m2.MoveOf(), k.At(5, 0).MoveOf())
	assert.Equal(t, m1.MoveOf(), k.At(5, 1).MoveOf())
}

func TestKillersClearEmptiesTable(t *testing.T) {
	k := NewKillers()
	m1 := NewMove(SqA2, SqA3, Normal, PtNone)
	k.Store(0, m1)
	k.Clear()
	assert.False(t, k.IsKiller(0, m1))
}
