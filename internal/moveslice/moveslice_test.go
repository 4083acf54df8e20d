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

package moveslice

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "sharprustic/pkg/types"
)

func TestPushBackAndAt(t *testing.T) {
	ml := New()
	m1 := NewMove(SqE2, SqE4, Normal, PtNone)
	m2 := NewMove(SqG1, SqF3, Normal, PtNone)
	ml.PushBack(m1)
	ml.PushBack(m2)
	assert.Equal(t, 2, ml.Len())
	assert.Equal(t, m1, ml.At(0))
	assert.Equal(t, m2, ml.At(1))
}

func TestPickBestSelectsHighestAndSwapsForward(t *testing.T) {
	ml := New()
	low := NewMoveScored(SqE2, SqE4, Normal, PtNone, 10)
	high := NewMoveScored(SqD2, SqD4, Normal, PtNone, 500)
	mid := NewMoveScored(SqG1, SqF3, Normal, PtNone, 100)
	ml.PushBack(low)
	ml.PushBack(high)
	ml.PushBack(mid)

	picked := ml.PickBest(0)
	assert.Equal(t, high.MoveOf(), picked.MoveOf())
	assert.Equal(t, high.MoveOf(), ml.At(0).MoveOf())

	picked = ml.PickBest(1)
	assert.Equal(t, mid.MoveOf(), picked.MoveOf())

	picked = ml.PickBest(2)
	assert.Equal(t, low.MoveOf(), picked.MoveOf())
}

func TestPickBestPastEndReturnsMoveNone(t *testing.T) {
	ml := New()
	ml.PushBack(NewMove(SqE2, SqE4, Normal, PtNone))
	assert.Equal(t, MoveNone, ml.PickBest(5))
}

func TestSortIsFullyDescending(t *testing.T) {
	ml := New()
	ml.PushBack(NewMoveScored(SqA2, SqA3, Normal, PtNone, 1))
	ml.PushBack(NewMoveScored(SqB2, SqB3, Normal, PtNone, 300))
	ml.PushBack(NewMoveScored(SqC2, SqC3, Normal, PtNone, 150))
	ml.Sort()
	assert.Equal(t, Value(300), ml.At(0).ValueOf())
	assert.Equal(t, Value(150), ml.At(1).ValueOf())
	assert.Equal(t, Value(1), ml.At(2).ValueOf())
}

func TestMoveToFrontPromotesMatch(t *testing.T) {
	ml := New()
	a := NewMove(SqA2, SqA3, Normal, PtNone)
	b := NewMove(SqB2, SqB3, Normal, PtNone)
	c := NewMove(SqC2, SqC3, Normal, PtNone)
	ml.PushBack(a)
	ml.PushBack(b)
	ml.PushBack(c)

	ok := ml.MoveToFront(c)
	assert.True(t, ok)
	assert.Equal(t, c.MoveOf(), ml.At(0).MoveOf())
	assert.Equal(t, a.MoveOf(), ml.At(1).MoveOf())
	assert.Equal(t, b.MoveOf(), ml.At(2).MoveOf())
}

func TestMoveToFrontMissingReturnsFalse(t *testing.T) {
	ml := New()
	ml.PushBack(NewMove(SqA2, SqA3, Normal, PtNone))
	assert.False(t, ml.MoveToFront(NewMove(SqH7, SqH5, Normal, PtNone)))
}

func TestContainsIgnoresAttachedScore(t *testing.T) {
	ml := New()
	ml.PushBack(NewMoveScored(SqE2, SqE4, Normal, PtNone, 77))
	assert.True(t, ml.Contains(NewMove(SqE2, SqE4, Normal, PtNone)))
	assert.False(t, ml.Contains(NewMove(SqD2, SqD4, Normal, PtNone)))
}

func TestCloneIsIndependent(t *testing.T) {
	ml := New()
	ml.PushBack(NewMove(SqE2, SqE4, Normal, PtNone))
	clone := ml.Clone()
	clone.PushBack(NewMove(SqD2, SqD4, Normal, PtNone))
	assert.Equal(t, 1, ml.Len())
	assert.Equal(t, 2, clone.Len())
}

func TestClearKeepsBackingArray(t *testing.T) {
	ml := New()
	ml.PushBack(NewMove(SqE2, SqE4, Normal, PtNone))
	ml.Clear()
	assert.Equal(t, 0, ml.Len())
	ml.PushBack(NewMove(SqD2, SqD4, Normal, PtNone))
	assert.Equal(t, 1, ml.Len())
}

func TestStringUciRendersSpaceSeparatedTokens(t *testing.T) {
	ml := New()
	ml.PushBack(NewMove(SqE2, SqE4, Normal, PtNone))
	ml.PushBack(NewMove(SqE7, SqE5, Normal, PtNone))
	assert.Equal(t, "e2e4 e7e5", ml.StringUci())
}
