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

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sharprustic/internal/moveslice"
	. "sharprustic/pkg/types"
)

func TestNewBoardFromStartFEN(t *testing.T) {
	b := NewBoard()
	assert.Equal(t, White, b.SideToMove())
	// PieceCount excludes pawns and kings: 2 knights, 2 bishops, 2 rooks, 1
	// queen per side.
	assert.Equal(t, 14, b.PieceCount())
}

func TestMakeUnmakeRoundTripsZobrist(t *testing.T) {
	b := NewBoard()
	before := b.Zobrist()
	m := NewMove(SqE2, SqE4, Normal, PtNone)
	ok := b.Make(m)
	assert.True(t, ok)
	assert.NotEqual(t, before, b.Zobrist())
	b.Unmake()
	assert.Equal(t, before, b.Zobrist())
	assert.Equal(t, White, b.SideToMove())
}

func TestMakeRejectsMoveLeavingOwnKingInCheck(t *testing.T) {
	// White king e1, white rook pinned on the e-file by a black rook on e8:
	// stepping the rook sideways opens the file to check.
	b, err := NewBoardFromFEN("4r2k/8/8/8/8/8/4R3/4K3 w - - 0 1")
	assert.NoError(t, err)
	pinnedSidestep := NewMove(SqE2, SqD2, Normal, PtNone)
	ok := b.Make(pinnedSidestep)
	assert.False(t, ok)
}

func TestGenerateLegalStartPositionHas20Moves(t *testing.T) {
	b := NewBoard()
	var list moveslice.MoveList
	b.GenerateLegal(&list)
	assert.Equal(t, 20, list.Len())
}

func TestGenerateCapturesOnlyReturnsCaptures(t *testing.T) {
	b, err := NewBoardFromFEN("4k3/8/3p4/8/4N3/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	var caps moveslice.MoveList
	b.GenerateCaptures(&caps)
	assert.Equal(t, 1, caps.Len())
	assert.Equal(t, SqD6, caps.At(0).To())
}

func TestMoveFromUciResolvesLegalMove(t *testing.T) {
	b := NewBoard()
	m := b.MoveFromUci("e2e4")
	assert.True(t, m.IsValid())
	assert.Equal(t, SqE2, m.From())
	assert.Equal(t, SqE4, m.To())
}

func TestMoveFromUciRejectsIllegalToken(t *testing.T) {
	b := NewBoard()
	m := b.MoveFromUci("e2e5")
	assert.Equal(t, MoveNone, m)
}

func TestMoveFromUciDisambiguatesCastling(t *testing.T) {
	b, err := NewBoardFromFEN("4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	assert.NoError(t, err)
	m := b.MoveFromUci("e1g1")
	assert.Equal(t, Castling, m.MoveType())
}

func TestCloneIsIndependentOfOriginal(t *testing.T) {
	b := NewBoard()
	clone := b.Clone().(*Board)
	clone.Make(NewMove(SqE2, SqE4, Normal, PtNone))
	assert.NotEqual(t, b.Zobrist(), clone.Zobrist())
	assert.Equal(t, White, b.SideToMove())
	assert.Equal(t, Black, clone.SideToMove())
}

func TestIsRepetitionDetectsRepeatedPosition(t *testing.T) {
	b := NewBoard()
	b.MarkRoot(nil)
	var path []Key

	// The searcher pushes each position's key just before descending into
	// a child, so the path holds the current node's strict ancestors.
	play := func(from, to Square) {
		m := NewMove(from, to, Normal, PtNone)
		path = append(path, b.Zobrist())
		ok := b.Make(m)
		assert.True(t, ok)
	}

	start := b.Zobrist()
	play(SqG1, SqF3)
	play(SqG8, SqF6)
	play(SqF3, SqG1)
	play(SqF6, SqG8)
	assert.Equal(t, start, b.Zobrist())
	assert.True(t, b.IsRepetition(path))
	assert.False(t, b.IsRepetition(path[1:]))
}
