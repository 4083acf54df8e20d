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

// Package position implements the Position collaborator the search core
// consumes. Board representation
// and move generation are explicitly out of the core's scope; this package
// is a deliberately small array-based mover - not a magic-bitboard engine -
// sufficient to drive the core's search and its end-to-end test scenarios.
package position

import (
	"sharprustic/internal/moveslice"
	. "sharprustic/pkg/types"
)

// Position is the interface the search core depends on. It never imports a
// concrete board implementation directly; any type satisfying this
// interface can be searched.
type Position interface {
	InCheck() bool
	Zobrist() Key
	GenerateLegal(out *moveslice.MoveList)
	GenerateCaptures(out *moveslice.MoveList)
	Make(m Move) bool
	Unmake()
	MaterialPhase() int
	PieceCount() int
	PlyFromRoot() int
	HalfmoveClock() int
	IsRepetition(history []Key) bool
	SideToMove() Color

	// Clone returns an independent copy sharing no mutable state with the
	// receiver, so helper searcher threads can each explore their own copy
	// of the root position concurrently.
	Clone() Position
}
