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

import . "sharprustic/pkg/types"

var knightOffsets = [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
var kingOffsets = [8][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}
var bishopDirs = [4]Direction{Northeast, Southeast, Southwest, Northwest}
var rookDirs = [4]Direction{North, East, South, West}

func offsetSquare(sq Square, df, dr int) (Square, bool) {
	f := int(sq.FileOf()) + df
	r := int(sq.RankOf()) + dr
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return SqNone, false
	}
	return SquareOf(File(f), Rank(r)), true
}

// attackedBy reports whether sq is attacked by any piece of color by.
func (b *Board) attackedBy(sq Square, by Color) bool {
	// Pawns: a pawn of color `by` attacks sq if it sits one diagonal step
	// "behind" sq from by's own forward direction.
	pawnRankStep := -1
	if by == Black {
		pawnRankStep = 1
	}
	for _, df := range [2]int{-1, 1} {
		if from, ok := offsetSquare(sq, df, pawnRankStep); ok {
			p := b.squares[from]
			if p.ColorOf() == by && p.TypeOf() == Pawn && p != PieceNone {
				return true
			}
		}
	}
	// Knights.
	for _, o := range knightOffsets {
		if from, ok := offsetSquare(sq, o[0], o[1]); ok {
			p := b.squares[from]
			if p != PieceNone && p.ColorOf() == by && p.TypeOf() == Knight {
				return true
			}
		}
	}
	// King.
	for _, o := range kingOffsets {
		if from, ok := offsetSquare(sq, o[0], o[1]); ok {
			p := b.squares[from]
			if p != PieceNone && p.ColorOf() == by && p.TypeOf() == King {
				return true
			}
		}
	}
	// Sliding: bishop/queen on diagonals, rook/queen on files/ranks.
	for _, d := range bishopDirs {
		if b.slidingAttackerInDirection(sq, d, by, Bishop, Queen) {
			return true
		}
	}
	for _, d := range rookDirs {
		if b.slidingAttackerInDirection(sq, d, by, Rook, Queen) {
			return true
		}
	}
	return false
}

func (b *Board) slidingAttackerInDirection(sq Square, d Direction, by Color, pt1, pt2 PieceType) bool {
	cur := sq
	for {
		next, ok := step(cur, d)
		if !ok {
			return false
		}
		p := b.squares[next]
		if p == PieceNone {
			cur = next
			continue
		}
		if p.ColorOf() == by && (p.TypeOf() == pt1 || p.TypeOf() == pt2) {
			return true
		}
		return false
	}
}

// step walks one square in direction d, respecting file wraparound.
func step(sq Square, d Direction) (Square, bool) {
	f := sq.FileOf()
	switch d {
	case East, Northeast, Southeast:
		if f == FileH {
			return SqNone, false
		}
	case West, Northwest, Southwest:
		if f == FileA {
			return SqNone, false
		}
	}
	n := int(sq) + int(d)
	if n < 0 || n > 63 {
		return SqNone, false
	}
	return Square(n), true
}

// InCheck reports whether the side to move's king is attacked.
func (b *Board) InCheck() bool {
	return b.attackedBy(b.kingSquare[b.sideToMove], b.sideToMove.Flip())
}
