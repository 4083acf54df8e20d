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

// negamax is the interior node algorithm: alpha-beta with principal
// variation search, fail-soft throughout, TT-assisted through the local
// cache and write batch.
func (s *searcher) negamax(depth, alpha, beta, ply int, isPV bool, pvOut *moveslice.MoveList) Value {
	// Step 1: abort check.
	if s.stop.Poll() {
		return Value(alpha)
	}

	// Step 2: repetition / 50-move, non-root only.
	if ply > 0 {
		if s.pos.HalfmoveClock() >= 100 || s.pos.IsRepetition(s.searchPath) {
			return ValueDraw
		}
	}

	// Step 3: check extension, applied before the horizon test.
	if s.pos.InCheck() {
		depth++
	}

	// Step 4: horizon.
	if depth <= 0 {
		return s.quiescence(Value(alpha), Value(beta), ply)
	}

	s.nodes++
	if ply > s.selDepth {
		s.selDepth = ply
	}

	alphaOrig, betaOrig := Value(alpha), Value(beta)
	key := s.pos.Zobrist()

	// Step 5: TT probe through the local cache.
	ttMove := MoveNone
	if e, ok := s.probe(key, ply); ok {
		ttMove = e.Move
		if int(e.Depth) >= depth {
			score := Value(e.Score)
			switch e.Flag() {
			case Exact:
				return score
			case LowerBound:
				if score >= Value(beta) {
					return score
				}
			case UpperBound:
				if score <= Value(alpha) {
					return score
				}
			}
		}
	}

	// Step 6: move generation.
	list := s.listAt(ply)
	list.Clear()
	s.pos.GenerateLegal(list)
	if list.Len() == 0 {
		if s.pos.InCheck() {
			return -Mate + Value(ply)
		}
		return ValueDraw
	}

	// Step 7: ordering.
	ordering.Score(s.pos, list, ttMove, s.killers, ply)

	bestScore := Value(-ValueInf - 1)
	bestMove := MoveNone
	childPV := s.pvAt(ply + 1)
	a, b := alpha, beta
	aborted := false

	// Step 8: search loop.
	for i := 0; i < list.Len(); i++ {
		m := list.PickBest(i)
		if !s.pos.Make(m) {
			continue
		}
		s.pushPath(key)

		var score Value
		childPV.Clear()
		if bestMove == MoveNone || !isPV {
			score = -s.negamax(depth-1, -b, -a, ply+1, isPV, childPV)
		} else {
			score = -s.negamax(depth-1, -a-1, -a, ply+1, false, childPV)
			if int(score) > a && int(score) < b {
				childPV.Clear()
				score = -s.negamax(depth-1, -b, -a, ply+1, true, childPV)
			}
		}

		s.popPath()
		s.pos.Unmake()

		if s.stop.Stopped() {
			aborted = true
			break
		}

		if score > bestScore {
			bestScore = score
			bestMove = m
			if isPV {
				pvOut.Clear()
				pvOut.PushBack(m)
				for j := 0; j < childPV.Len(); j++ {
					pvOut.PushBack(childPV.At(j))
				}
			}
		}
		if int(bestScore) >= b {
			if ordering.IsQuiet(s.pos, m) {
				s.killers.Store(ply, m)
			}
			break
		}
		if int(bestScore) > a {
			a = int(bestScore)
		}
	}

	if aborted {
		if bestMove == MoveNone {
			return alphaOrig
		}
		return bestScore
	}

	// Step 9: TT store through the batch.
	flag := Exact
	switch {
	case bestScore >= betaOrig:
		flag = LowerBound
	case bestScore <= alphaOrig:
		flag = UpperBound
	}
	s.store(key, bestMove, bestScore, int8(depth), flag, ply)

	// Step 10: fail-soft return.
	return bestScore
}
