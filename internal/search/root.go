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
	"sharprustic/internal/moveslice"
	"sharprustic/internal/ordering"
	. "sharprustic/pkg/types"
)

// prevBestScore ranks the previous iteration's best root move directly
// under the TT-move sentinel.
const prevBestScore = ValueInf - 2

// rootSearch is negamax's move loop specialised for ply 0: the node is
// always a PV node, the window is the full (-inf, +inf), and every explored
// root move's outcome is recorded into analysis in explored order so the
// driver can fall back to a safe best move if the iteration aborts partway
// through.
func (s *searcher) rootSearch(depth int, prevBest Move, analysis *[]RootAnalysis, pvOut *moveslice.MoveList) (Value, bool) {
	const ply = 0
	*analysis = (*analysis)[:0]

	key := s.pos.Zobrist()
	ttMove := prevBest
	if e, ok := s.probe(key, ply); ok && e.Move != MoveNone {
		ttMove = e.Move
	}

	list := s.listAt(ply)
	list.Clear()
	s.pos.GenerateLegal(list)
	if list.Len() == 0 {
		return ValueDraw, false
	}
	// Helper threads rotate a different move to the front before scoring,
	// perturbing the tie-break order among equally scored moves.
	if s.rootJitter > 0 && list.Len() > 1 {
		list.MoveToFront(list.At(s.rootJitter % list.Len()))
	}
	ordering.Score(s.pos, list, ttMove, s.killers, ply)
	// TT move first, previous-iteration best right behind it; when the TT
	// already holds the previous best the sentinel from Score has it covered.
	if prevBest != MoveNone && prevBest.MoveOf() != ttMove.MoveOf() {
		for i := 0; i < list.Len(); i++ {
			if list.At(i).MoveOf() == prevBest.MoveOf() {
				list.Set(i, list.At(i).SetValue(prevBestScore))
				break
			}
		}
	}

	alpha, beta := -int(ValueInf), int(ValueInf)
	bestScore := Value(-ValueInf - 1)
	bestMove := MoveNone
	childPV := s.pvAt(ply + 1)

	for i := 0; i < list.Len(); i++ {
		m := list.PickBest(i)
		if !s.pos.Make(m) {
			continue
		}
		s.pushPath(key)

		var score Value
		childPV.Clear()
		if bestMove == MoveNone {
			score = -s.negamax(depth-1, -beta, -alpha, ply+1, true, childPV)
		} else {
			score = -s.negamax(depth-1, -alpha-1, -alpha, ply+1, false, childPV)
			if int(score) > alpha && int(score) < beta {
				childPV.Clear()
				score = -s.negamax(depth-1, -beta, -alpha, ply+1, true, childPV)
			}
		}

		s.popPath()
		s.pos.Unmake()

		if s.stop.Stopped() {
			if bestMove == MoveNone {
				return ValueZero, true
			}
			return bestScore, true
		}

		*analysis = append(*analysis, RootAnalysis{
			Move:      m.MoveOf(),
			Score:     score,
			ReplyLine: *childPV.Clone(),
		})

		if score > bestScore {
			bestScore = score
			bestMove = m.MoveOf()
			pvOut.Clear()
			pvOut.PushBack(bestMove)
			for j := 0; j < childPV.Len(); j++ {
				pvOut.PushBack(childPV.At(j))
			}
		}
		if int(bestScore) > alpha {
			alpha = int(bestScore)
		}
	}

	// The root window is (-inf, +inf), so a completed loop always yields an
	// exact score - no bound classification is possible at this node.
	s.store(key, bestMove, bestScore, int8(depth), Exact, ply)

	return bestScore, false
}
