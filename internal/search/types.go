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
	. "sharprustic/pkg/types"
)

// GameClock carries both sides' remaining time and increment, plus the
// GUI-supplied moves-to-go when present.
type GameClock struct {
	WhiteMs    int64
	BlackMs    int64
	WhiteIncMs int64
	BlackIncMs int64
	MovesToGo  int // 0 means "not provided"
}

// ClockMode picks which of GameClock/MoveTime/Depth/Nodes/Infinite governs
// a SearchRequest, one per UCI `go` variant.
type ClockMode int

const (
	ModeGameClock ClockMode = iota
	ModeMoveTime
	ModeDepth
	ModeNodes
	ModeInfinite
)

// SearchRequest is everything one "go" command asks of the driver.
type SearchRequest struct {
	Mode         ClockMode
	Clock        GameClock
	MoveTimeMs   int64
	Depth        int
	Nodes        int64
	MoveOverhead int64
	Ponder       bool

	// PlyFromGameStart feeds timeman's adaptive moves-to-go table, which
	// is keyed on the game's ply count, not the search's own root-relative
	// ply (always 0 at the root).
	PlyFromGameStart int
}

// RootAnalysis is one root move's recorded outcome: its score and the PV
// continuation found behind it.
type RootAnalysis struct {
	Move      Move
	Score     Value
	ReplyLine moveslice.MoveList
}

// SearchReport is the per-iteration summary the UCI layer turns into an
// "info" line.
type SearchReport struct {
	Depth     int
	SelDepth  int
	Nodes     int64
	Nps       int64
	TimeMs    int64
	Score     Value
	PV        moveslice.MoveList
	Hashfull  uint16
	SoftMs    int64
	HardMs    int64
	Emergency bool
}
