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

package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"sharprustic/internal/evaluator"
	"sharprustic/internal/moveslice"
	"sharprustic/internal/position"
	"sharprustic/internal/stopctl"
	. "sharprustic/pkg/types"
)

// TestMateInOneFindsTheMate: a rook mate one move away must be found and
// reported as "mate 1" with the mating move.
func TestMateInOneFindsTheMate(t *testing.T) {
	b, err := position.NewBoardFromFEN("7k/5ppp/8/8/8/8/5PPP/R6K w - - 0 1")
	assert.NoError(t, err)
	b.MarkRoot(nil)

	d := NewDriver(1)
	mv, err := d.Search(b, SearchRequest{Mode: ModeDepth, Depth: 3})
	assert.NoError(t, err)
	assert.Equal(t, "a1a8", mv.UciString())

	_, score := d.BestMove()
	assert.True(t, score.IsMateValue())
	assert.Equal(t, "mate 1", score.String())
}

// TestStalemateAvoidanceNeverPicksStalemate: with a mate available, the
// engine must never choose the sibling move that stalemates instead.
func TestStalemateAvoidanceNeverPicksStalemate(t *testing.T) {
	b, err := position.NewBoardFromFEN("7k/5Q2/6K1/8/8/8/8/8 w - - 0 1")
	assert.NoError(t, err)
	b.MarkRoot(nil)

	d := NewDriver(1)
	mv, err := d.Search(b, SearchRequest{Mode: ModeDepth, Depth: 2})
	assert.NoError(t, err)
	assert.NotEqual(t, "f7g7", mv.UciString())
}

// TestKiwipeteDepthProducesLegalPV: the well-known Kiwipete perft position
// must complete a fixed-depth search with a non-empty PV of exclusively
// legal moves.
func TestKiwipeteDepthProducesLegalPV(t *testing.T) {
	const kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	b, err := position.NewBoardFromFEN(kiwipete)
	assert.NoError(t, err)
	b.MarkRoot(nil)

	d := NewDriver(2)
	best, err := d.Search(b, SearchRequest{Mode: ModeDepth, Depth: 3})
	assert.NoError(t, err)
	assert.True(t, best.IsValid())

	var pv moveslice.MoveList
	for _, ra := range d.RootAnalysis() {
		if ra.Move.MoveOf() == best.MoveOf() {
			pv.PushBack(ra.Move)
			for i := 0; i < ra.ReplyLine.Len(); i++ {
				pv.PushBack(ra.ReplyLine.At(i))
			}
			break
		}
	}
	assert.GreaterOrEqual(t, pv.Len(), 1)

	replay, rerr := position.NewBoardFromFEN(kiwipete)
	assert.NoError(t, rerr)
	for i := 0; i < pv.Len(); i++ {
		ok := replay.Make(pv.At(i))
		assert.True(t, ok, "pv move %d (%s) must be legal in its resulting position", i, pv.At(i).UciString())
	}
}

// TestRepetitionInSearchPathScoresDraw is a white-box test of negamax's
// repetition rule: a node whose position already occurred earlier in the
// current search path must score as a draw, regardless of material.
func TestRepetitionInSearchPathScoresDraw(t *testing.T) {
	b, err := position.NewBoardFromFEN("4k3/8/8/8/8/8/4Q3/4K3 w - - 0 1")
	assert.NoError(t, err)
	b.MarkRoot(nil)

	s := newSearcher(b, evaluator.New(), nil, 1, 1, stopctl.New())
	s.pushPath(b.Zobrist())

	var pv moveslice.MoveList
	score := s.negamax(4, -int(ValueInf), int(ValueInf), 1, false, &pv)
	assert.Equal(t, ValueDraw, score)
}

// TestMoveTimeReturnsLegalMoveWithinBudget: a fixed per-move time must
// yield a legal opening move with a non-zero node count, without blowing
// far past the allotted time.
func TestMoveTimeReturnsLegalMoveWithinBudget(t *testing.T) {
	b := position.NewBoard()
	b.MarkRoot(nil)

	d := NewDriver(1)
	start := time.Now()
	mv, err := d.Search(b, SearchRequest{
		Mode:         ModeMoveTime,
		MoveTimeMs:   250,
		MoveOverhead: 10,
	})
	elapsed := time.Since(start)
	assert.NoError(t, err)
	assert.True(t, mv.IsValid())
	assert.Less(t, elapsed.Milliseconds(), int64(1000))

	var legal moveslice.MoveList
	b.GenerateLegal(&legal)
	assert.True(t, legal.Contains(mv))
}

// TestEmergencyClockReturnsQuicklyWithLegalMove: a near-flagging clock
// must force emergency mode, cap the depth, and still return a legal move
// well inside the hard budget.
func TestEmergencyClockReturnsQuicklyWithLegalMove(t *testing.T) {
	b := position.NewBoard()
	b.MarkRoot(nil)

	d := NewDriver(1)
	start := time.Now()
	mv, err := d.Search(b, SearchRequest{
		Mode: ModeGameClock,
		Clock: GameClock{
			WhiteMs:   300,
			BlackMs:   60_000,
			MovesToGo: 40,
		},
		MoveOverhead: 10,
	})
	elapsed := time.Since(start)
	assert.NoError(t, err)
	assert.True(t, mv.IsValid())
	assert.Less(t, elapsed.Milliseconds(), int64(1000))
}
