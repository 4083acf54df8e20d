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

// Package search implements the alpha-beta/PVS core, quiescence search, and
// the iterative-deepening driver that ties them to the shared transposition
// table, move ordering, time management, and cooperative cancellation.
package search

import (
	"context"
	"errors"
	"runtime"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"sharprustic/internal/config"
	"sharprustic/internal/enginelog"
	"sharprustic/internal/evaluator"
	"sharprustic/internal/moveslice"
	"sharprustic/internal/position"
	"sharprustic/internal/stopctl"
	"sharprustic/internal/timeman"
	"sharprustic/internal/tt"
	. "sharprustic/pkg/types"
)

var log = enginelog.SetupSearchLog()

// ErrSearchInternal marks a search-time logic fault: an impossible state
// such as a best move lost despite a non-empty root move list. It is never
// surfaced as a null best move; the caller gets an error instead and must
// decide what to report to the GUI.
var ErrSearchInternal = errors.New("search: internal error")

// ErrNoLegalMoves reports a root position that is already checkmate or
// stalemate. Not an internal fault, but there is no legal move to report
// either, so the caller must handle it explicitly.
var ErrNoLegalMoves = errors.New("search: no legal moves at root")

// ReportFunc is the info-emission hook (component 10): the driver calls it
// at the end of every completed iteration and once more for the final
// result, handing the UCI layer everything it needs to print an "info" line.
type ReportFunc func(SearchReport)

// Driver owns the state that outlives any single search: the shared TT,
// the stop controller, the evaluator, and the best-move/RootAnalysis
// snapshot from the most recently completed search.
type Driver struct {
	Table  *tt.Table
	Stop   *stopctl.Controller
	Eval   *evaluator.Evaluator
	Stats  *timeman.Stats
	Report ReportFunc

	mu           sync.Mutex
	bestMove     Move
	bestScore    Value
	rootAnalysis []RootAnalysis
}

// NewDriver allocates a Driver with a TT sized to hashMB megabytes.
func NewDriver(hashMB int) *Driver {
	return &Driver{
		Table: tt.NewTable(hashMB),
		Stop:  stopctl.New(),
		Eval:  evaluator.New(),
		Stats: timeman.NewStats(),
	}
}

// NewGame resets the TT for a new game or any non-contiguous position.
func (d *Driver) NewGame() {
	d.Table.Clear()
}

// BestMove returns the move and score from the most recently completed
// search.
func (d *Driver) BestMove() (Move, Value) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.bestMove, d.bestScore
}

// RootAnalysis returns a copy of the root-move analyses from the most
// recently completed search, in explored order.
func (d *Driver) RootAnalysis() []RootAnalysis {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]RootAnalysis, len(d.rootAnalysis))
	copy(out, d.rootAnalysis)
	return out
}

// Search runs iterative deepening on pos until a depth/node limit, budget
// exhaustion, proven mate, or external stop ends it, then
// returns the best legal move found. It never returns MoveNone alongside a
// nil error: a root with no legal moves is reported as ErrNoLegalMoves, and
// a non-empty root that still yields no move as ErrSearchInternal.
func (d *Driver) Search(pos position.Position, req SearchRequest) (Move, error) {
	threads := config.Settings.Search.Threads
	if threads < 1 {
		threads = 1
	}

	budget, usesClock := d.computeBudget(pos, req)
	start := time.Now()
	deadline := time.Time{}
	switch {
	case usesClock:
		deadline = start.Add(time.Duration(budget.HardMs) * time.Millisecond)
	case req.Mode == ModeMoveTime:
		hard := req.MoveTimeMs - req.MoveOverhead
		if hard < 1 {
			hard = 1
		}
		deadline = start.Add(time.Duration(hard) * time.Millisecond)
	}
	maxDepth := config.Settings.Search.MaxDepth
	if req.Mode == ModeDepth && req.Depth > 0 && req.Depth < maxDepth {
		maxDepth = req.Depth
	}
	emergencyMax := config.Settings.Search.EmergencyMaxDepth
	if emergencyMax < 1 {
		emergencyMax = timeman.EmergencyMaxDepth
	}
	if usesClock && budget.Emergency && maxDepth > emergencyMax {
		maxDepth = emergencyMax
	}

	d.Stop.Arm(deadline)
	log.Debugf("search armed: threads=%d maxDepth=%d deadline=%v", threads, maxDepth, deadline)

	localCap := config.Settings.Search.TTLocalCacheSize
	batchCap := config.Settings.Search.TTBatchSize

	// Helper threads diversify TT content by running the same iterative
	// deepening independently over their own clone of the root position;
	// only thread 0's result is ever published. The semaphore caps how many
	// run at once to the machine's core count, so a Threads setting above
	// NumCPU queues the surplus helpers instead of oversubscribing the CPU.
	maxParallel := runtime.NumCPU()
	if threads < maxParallel {
		maxParallel = threads
	}
	sem := semaphore.NewWeighted(int64(maxParallel))
	var wg sync.WaitGroup
	var (
		resultMove     Move
		resultScore    Value
		resultAnalysis []RootAnalysis
		resultErr      error
	)

	for id := 0; id < threads; id++ {
		id := id
		threadPos := pos
		if id != 0 {
			threadPos = pos.Clone()
		}
		if err := sem.Acquire(context.Background(), 1); err != nil {
			break
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)
			s := newSearcher(threadPos, d.Eval, d.Table, localCap, batchCap, d.Stop)
			s.rootJitter = id
			move, score, analysis, err := d.iterativeDeepen(s, req, maxDepth, budget, start, id)
			if id == 0 {
				resultMove, resultScore, resultAnalysis, resultErr = move, score, analysis, err
			}
		}()
	}
	wg.Wait()

	if resultErr != nil {
		return MoveNone, resultErr
	}
	if resultMove == MoveNone {
		// A non-empty root list always yields a best move or at least the
		// first-legal fallback; reaching here means the search state is
		// corrupt.
		return MoveNone, ErrSearchInternal
	}

	d.mu.Lock()
	d.bestMove, d.bestScore, d.rootAnalysis = resultMove, resultScore, resultAnalysis
	d.mu.Unlock()

	if usesClock {
		elapsed := time.Since(start)
		exceeded := elapsed.Milliseconds() > budget.HardMs+req.MoveOverhead+50
		d.Stats.Record(elapsed, budget, exceeded)
	}
	return resultMove, nil
}

// computeBudget derives the time budget for the side to move from req's
// clock; it reports false for any non-GameClock mode, where no
// clock-derived budget applies.
func (d *Driver) computeBudget(pos position.Position, req SearchRequest) (timeman.Budget, bool) {
	if req.Mode != ModeGameClock {
		return timeman.Budget{}, false
	}
	ownMs, incMs := req.Clock.WhiteMs, req.Clock.WhiteIncMs
	if pos.SideToMove() == Black {
		ownMs, incMs = req.Clock.BlackMs, req.Clock.BlackIncMs
	}
	clock := timeman.Clock{
		OwnMs:        ownMs,
		IncMs:        incMs,
		MovesToGo:    req.Clock.MovesToGo,
		MoveOverhead: req.MoveOverhead,
	}
	return timeman.Compute(clock, req.PlyFromGameStart, pos.PieceCount()), true
}

// iterativeDeepen is the deepening loop for one thread: deepen by one ply
// at a time, commit the root PV/best move/analyses after every
// completed iteration, and apply the safe-fallback rule the moment an
// iteration aborts.
func (d *Driver) iterativeDeepen(s *searcher, req SearchRequest, maxDepth int, budget timeman.Budget, start time.Time, threadID int) (Move, Value, []RootAnalysis, error) {
	rootMoves := moveslice.New()
	s.pos.GenerateLegal(rootMoves)
	if rootMoves.Len() == 0 {
		return MoveNone, ValueZero, nil, ErrNoLegalMoves
	}
	fallbackMove := rootMoves.At(0).MoveOf()
	rootInCheck := s.pos.InCheck()

	var (
		pv              moveslice.MoveList
		analysis        []RootAnalysis
		prevBest        Move
		completedMove   = fallbackMove
		completedScore  Value
		completedDepth  int
		softRemainingMs = budget.SoftMs
	)

	// Only a GameClock-derived budget has a "soft" component that may
	// suppress starting a new iteration early; MoveTime is a direct hard
	// cap enforced by the stop controller's deadline alone.
	timeGoverned := req.Mode == ModeGameClock

	for depth := 1; depth <= maxDepth; depth++ {
		if depth > 1 && timeGoverned && time.Since(start).Milliseconds() > softRemainingMs {
			break
		}
		if req.Mode == ModeNodes && s.nodes >= req.Nodes {
			break
		}

		// One age generation per root iteration, so replacement can tell
		// this iteration's entries from the previous one's. Bumped by the
		// publishing thread only; helpers inherit the shared generation.
		if threadID == 0 {
			d.Table.NewSearch()
		}

		pv.Clear()
		score, aborted := s.rootSearch(depth, prevBest, &analysis, &pv)
		s.batch.Flush()

		if aborted {
			if completedDepth == 0 {
				if len(analysis) > 0 {
					completedMove = analysis[0].Move
					completedScore = analysis[0].Score
				}
			}
			break
		}

		completedDepth = depth
		completedMove = pv.At(0).MoveOf()
		completedScore = score
		prevBest = completedMove

		if threadID == 0 && d.Report != nil {
			d.Report(d.buildReport(s, depth, score, &pv, start, budget, timeGoverned))
		}

		if s.stop.Stopped() {
			break
		}
		if score.IsMateValue() {
			distance := Mate - absValue(score)
			if int(distance) <= depth {
				s.stop.StopForMateFound()
				break
			}
		}
		if depth == maxDepth {
			s.stop.StopForDepthLimit()
			break
		}

		// Move-quality adjustment: scale the remaining soft budget only,
		// never the hard cap.
		if timeGoverned && len(analysis) >= 2 {
			sorted := append([]RootAnalysis(nil), analysis...)
			sort.Slice(sorted, func(i, j int) bool { return sorted[i].Score > sorted[j].Score })
			q := timeman.ClassifyQuality(int(sorted[0].Score), int(sorted[1].Score), rootInCheck)
			elapsed := time.Since(start).Milliseconds()
			remaining := budget.SoftMs - elapsed
			if remaining < 0 {
				remaining = 0
			}
			softRemainingMs = elapsed + timeman.AdjustSoftBudget(remaining, q)
		}
	}

	s.batch.Flush()
	return completedMove, completedScore, analysis, nil
}

func absValue(v Value) Value {
	if v < 0 {
		return -v
	}
	return v
}

// buildReport assembles a SearchReport from one completed iteration.
func (d *Driver) buildReport(s *searcher, depth int, score Value, pv *moveslice.MoveList, start time.Time, budget timeman.Budget, timeGoverned bool) SearchReport {
	elapsed := time.Since(start)
	ms := elapsed.Milliseconds()
	nps := int64(0)
	if ms > 0 {
		nps = s.nodes * 1000 / ms
	}
	report := SearchReport{
		Depth:    depth,
		SelDepth: s.selDepth,
		Nodes:    s.nodes,
		Nps:      nps,
		TimeMs:   ms,
		Score:    score,
		PV:       *pv.Clone(),
		Hashfull: d.Table.Hashfull(),
	}
	if timeGoverned {
		report.SoftMs = budget.SoftMs
		report.HardMs = budget.HardMs
		report.Emergency = budget.Emergency
	}
	return report
}
