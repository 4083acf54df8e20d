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
	"sharprustic/internal/ordering"
	. "sharprustic/pkg/types"
)

// quiescence is the capture-only extension past the nominal horizon,
// stabilizing the static evaluation before it is trusted. It never
// consults or writes the transposition table.
func (s *searcher) quiescence(alpha, beta Value, ply int) Value {
	if s.stop.Poll() {
		return alpha
	}
	s.nodes++
	if ply > s.selDepth {
		s.selDepth = ply
	}

	standPat := Value(s.pos.SideToMove().Sign()) * s.eval.Eval(s.pos)
	if standPat >= beta {
		return standPat
	}
	bestScore := standPat
	if standPat > alpha {
		alpha = standPat
	}

	list := s.qsListAt(ply)
	list.Clear()
	s.pos.GenerateCaptures(list)
	ordering.Score(s.pos, list, MoveNone, s.killers, ply)

	for i := 0; i < list.Len(); i++ {
		m := list.PickBest(i)
		if !s.pos.Make(m) {
			continue
		}
		score := -s.quiescence(-beta, -alpha, ply+1)
		s.pos.Unmake()

		if s.stop.Stopped() {
			return bestScore
		}
		if score > bestScore {
			bestScore = score
		}
		if score > alpha {
			alpha = score
		}
		if score >= beta {
			break
		}
	}
	return bestScore
}
