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

// Package evaluator implements the Evaluator collaborator:
// a pure function from a position to a White-POV centipawn score. It never
// looks at side to move - the search layer negates for the side to move,
// per the interface contract ("caller negates for side to move").
package evaluator

import (
	"sharprustic/internal/position"
	. "sharprustic/pkg/types"
)

// Evaluator scores positions from White's perspective only.
type Evaluator struct{}

// New returns a ready-to-use Evaluator. It holds no state: two Evaluators
// are interchangeable and safe to share across searcher threads.
func New() *Evaluator { return &Evaluator{} }

// pieceSquareBoard is a board-accessible view the evaluator needs beyond
// the minimal Position interface (material/PSQ evaluation has to look at
// individual squares, which the Position interface does not expose).
// The concrete position.Board adapter the engine is wired to satisfies it.
type pieceSquareBoard interface {
	PieceAt(sq Square) Piece
}

// Eval returns the White-POV centipawn evaluation of p: material plus
// tapered piece-square terms. The side-to-move flip belongs to the caller.
func (e *Evaluator) Eval(p position.Position) Value {
	board, ok := p.(pieceSquareBoard)
	if !ok {
		// A Position implementation that cannot expose individual squares
		// can still be searched (move generation/ordering do not need
		// piece-square detail); it simply evaluates as materially equal.
		return ValueZero
	}

	var mg, eg int
	phase := 0
	for sq := SqA1; sq < SqNone; sq++ {
		pc := board.PieceAt(sq)
		if pc == PieceNone {
			continue
		}
		pt := pc.TypeOf()
		sign := 1
		relSq := sq
		if pc.ColorOf() == Black {
			sign = -1
			relSq = flipSquare(sq)
		}
		mg += sign * (pt.MvvLvaValue() + pstMidgame[pt][relSq])
		eg += sign * (pt.MvvLvaValue() + pstEndgame[pt][relSq])
		phase += pt.GamePhaseValue() // unsigned: counts both colors
	}
	if phase > 24 {
		phase = 24
	}
	// Tapered eval: blend midgame/endgame piece-square tables by how much
	// material remains.
	tapered := (mg*phase + eg*(24-phase)) / 24
	return Value(tapered)
}

func flipSquare(sq Square) Square {
	return SquareOf(sq.FileOf(), 7-sq.RankOf())
}

// pstMidgame/pstEndgame are small, hand-authored piece-square tables
// (White's perspective, A1=index 0). They are deliberately modest -
// evaluation quality is not this engine's focus - but are real
// enough to prefer central knights and bishops, advance pawns, and tuck
// the king away in the midgame while activating it in the endgame.
var pstMidgame [PtLength][64]int
var pstEndgame [PtLength][64]int

func init() {
	centerBonus := func(table *[64]int, center, edge int) {
		for sq := 0; sq < 64; sq++ {
			f := sq % 8
			r := sq / 8
			df := f - 3
			if df < 0 {
				df = -df - 1
			}
			dr := r - 3
			if dr < 0 {
				dr = -dr - 1
			}
			dist := df + dr
			table[sq] = center - dist*((center-edge)/6+1)
		}
	}
	centerBonus(&pstMidgame[Knight], 20, -20)
	centerBonus(&pstMidgame[Bishop], 10, -10)
	centerBonus(&pstMidgame[Queen], 5, -5)
	centerBonus(&pstEndgame[Knight], 10, -10)
	centerBonus(&pstEndgame[Bishop], 5, -5)
	centerBonus(&pstEndgame[King], 20, -20)

	for sq := 0; sq < 64; sq++ {
		r := sq / 8
		pstMidgame[Pawn][sq] = (r - 1) * 5
		pstEndgame[Pawn][sq] = (r - 1) * 10
		pstMidgame[King][sq] = -r * 4
	}
}
