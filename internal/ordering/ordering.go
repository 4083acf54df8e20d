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

// Package ordering assigns the per-node sort scores that drive move
// selection: TT move first, then MVV-LVA captures, then killers, then
// quiet moves in generation order.
package ordering

import (
	"sharprustic/internal/moveslice"
	"sharprustic/internal/position"
	. "sharprustic/pkg/types"
)

// ttMoveScore is the sentinel that sorts the TT move ahead of everything.
const ttMoveScore = ValueInf - 1

// killer1Score/killer2Score rank above any quiet move but below every
// capture, so captures are still tried before killers even though a killer
// is a remembered cutoff move.
const (
	killer1Score = Value(50)
	killer2Score = Value(25)
	quietScore   = Value(0)
)

// captureScoreBase lifts every capture above the killers: the raw MVV-LVA
// term can go as low as 10*100-20000 (a king takes a pawn), so the base
// must exceed 19000+killer1Score while keeping the best capture
// (10*900-100) below the TT-move sentinel.
const captureScoreBase = Value(20000)

// Score assigns a sort value to every move in list. It never reorders the
// list itself - only PickBest does that, incrementally, as the caller
// consumes moves.
func Score(p position.Position, list *moveslice.MoveList, ttMove Move, k *Killers, ply int) {
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		switch {
		case ttMove != MoveNone && m.MoveOf() == ttMove.MoveOf():
			list.Set(i, m.SetValue(ttMoveScore))
		case isCapture(p, m):
			list.Set(i, m.SetValue(mvvLva(p, m)))
		case k.IsKiller(ply, m):
			if m.MoveOf() == k.At(ply, 0).MoveOf() {
				list.Set(i, m.SetValue(killer1Score))
			} else {
				list.Set(i, m.SetValue(killer2Score))
			}
		default:
			list.Set(i, m.SetValue(quietScore))
		}
	}
}

// pieceAtBoard is the minimal extra surface ordering needs beyond the
// Position interface, to recognise captures and the captured piece's
// type. The concrete position.Board adapter satisfies it.
type pieceAtBoard interface {
	PieceAt(sq Square) Piece
}

// IsQuiet reports whether m is neither a capture nor an en-passant
// capture; only quiet moves are eligible for the killer table.
func IsQuiet(p position.Position, m Move) bool {
	return !isCapture(p, m)
}

func isCapture(p position.Position, m Move) bool {
	if m.MoveType() == EnPassant {
		return true
	}
	b, ok := p.(pieceAtBoard)
	if !ok {
		return false
	}
	return b.PieceAt(m.To()) != PieceNone
}

// mvvLva scores a capture as 10*victim_value - aggressor_value.
// En-passant is treated as a pawn capture; promotion captures all score as
// queen-promotion captures.
func mvvLva(p position.Position, m Move) Value {
	b, ok := p.(pieceAtBoard)
	if !ok {
		return quietScore
	}
	var victim PieceType
	if m.MoveType() == EnPassant {
		victim = Pawn
	} else {
		victim = b.PieceAt(m.To()).TypeOf()
	}
	aggressor := b.PieceAt(m.From()).TypeOf()
	if m.MoveType() == Promotion {
		aggressor = Pawn
	}
	return captureScoreBase + Value(10*victim.MvvLvaValue()-aggressor.MvvLvaValue())
}
