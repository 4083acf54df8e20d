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

// Package timeman computes per-move time budgets from the game clock
// and tracks the allocation statistics the UCI layer can log.
package timeman

import (
	"strconv"
	"time"
)

// TimeControl classifies the own clock's magnitude.
type TimeControl int

const (
	Bullet TimeControl = iota
	Blitz
	Rapid
	Classical
)

func (tc TimeControl) String() string {
	switch tc {
	case Bullet:
		return "bullet"
	case Blitz:
		return "blitz"
	case Rapid:
		return "rapid"
	default:
		return "classical"
	}
}

// factor is the budget multiplier per classification.
func (tc TimeControl) factor() float64 {
	switch tc {
	case Bullet:
		return 0.80
	case Blitz:
		return 0.90
	case Rapid:
		return 1.00
	default:
		return 1.10
	}
}

// Classify buckets the clock by magnitude.
func Classify(ownClockMs int64) TimeControl {
	switch {
	case ownClockMs < 180_000:
		return Bullet
	case ownClockMs <= 900_000:
		return Blitz
	case ownClockMs <= 3_600_000:
		return Rapid
	default:
		return Classical
	}
}

// Clock is the subset of GameClock the time manager needs for the
// side on move.
type Clock struct {
	OwnMs        int64
	IncMs        int64
	MovesToGo    int // 0 means "not provided by the GUI"
	MoveOverhead int64
}

// Budget is the output of Compute: a soft per-move target, a hard cap,
// and whether the clock has forced emergency mode.
type Budget struct {
	SoftMs    int64
	HardMs    int64
	Emergency bool
	TC        TimeControl
	MovesToGo int
}

// MovesToGo estimates how many moves remain to budget for, by game phase,
// used when the GUI did not supply a moves-to-go of its own.
func MovesToGo(plyFromGameStart, pieceCount int) int {
	switch {
	case plyFromGameStart <= 20:
		return 30
	case plyFromGameStart <= 30:
		if pieceCount >= 20 {
			return 25
		}
		return 20
	case plyFromGameStart <= 40:
		if pieceCount >= 10 {
			return 15
		}
		return 10
	default:
		return 10
	}
}

// Compute derives the per-move budget from the clock: classify, pick a
// moves-to-go, split the remaining time, then halve everything when the
// clock is about to flag.
func Compute(clock Clock, plyFromGameStart, pieceCount int) Budget {
	tc := Classify(clock.OwnMs)

	mtg := clock.MovesToGo
	if mtg <= 0 {
		mtg = MovesToGo(plyFromGameStart, pieceCount)
	}

	base := float64(clock.OwnMs)/float64(mtg) + float64(clock.IncMs)
	soft := base*tc.factor() - float64(clock.MoveOverhead)
	if soft < 1 {
		soft = 1
	}
	hard := soft * 2
	if cap := float64(clock.OwnMs) * 0.5; hard > cap {
		hard = cap
	}

	emergency := float64(clock.OwnMs) < float64(mtg)*2000
	if emergency {
		soft *= 0.5
		hard *= 0.5
	}

	return Budget{
		SoftMs:    int64(soft),
		HardMs:    int64(hard),
		Emergency: emergency,
		TC:        tc,
		MovesToGo: mtg,
	}
}

// EmergencyMaxDepth caps iterative deepening while in emergency mode.
const EmergencyMaxDepth = 8

// Quality classifies how convincingly the best root move beat its nearest
// competitor, used by the between-iteration soft-budget adjustment.
type Quality int

const (
	Excellent Quality = iota
	Good
	Acceptable
	Poor
	Critical
)

func (q Quality) factor() float64 {
	switch q {
	case Excellent:
		return 0.70
	case Good:
		return 0.85
	case Acceptable:
		return 1.00
	case Poor:
		return 1.20
	default: // Critical
		return 1.50
	}
}

// ClassifyQuality derives a Quality from the centipawn gap between the
// best and second-best root move, or Critical if the root is in check.
func ClassifyQuality(bestScore, secondScore int, rootInCheck bool) Quality {
	if rootInCheck {
		return Critical
	}
	gap := bestScore - secondScore
	switch {
	case gap >= 150:
		return Excellent
	case gap >= 60:
		return Good
	case gap >= 20:
		return Acceptable
	default:
		return Poor
	}
}

// AdjustSoftBudget applies the move-quality multiplier to the remaining
// soft budget only; the hard cap is never multiplied.
func AdjustSoftBudget(remainingSoftMs int64, q Quality) int64 {
	return int64(float64(remainingSoftMs) * q.factor())
}

// Stats accumulates per-move allocation counters: moves played, budgets
// kept, forfeits, elapsed time, time-control occupancy and the current
// emergency state. Exposed for protocol logging, not required for search
// correctness.
type Stats struct {
	Moves              int
	SuccessfulBudgets  int
	Forfeits           int
	TotalElapsed       time.Duration
	ControlOccupancy   map[TimeControl]int
	CurrentlyEmergency bool
}

// NewStats returns a zeroed Stats ready to accumulate.
func NewStats() *Stats {
	return &Stats{ControlOccupancy: make(map[TimeControl]int)}
}

// Record folds one completed move's timing outcome into the running
// statistics.
func (s *Stats) Record(elapsed time.Duration, budget Budget, exceededHard bool) {
	s.Moves++
	s.TotalElapsed += elapsed
	s.ControlOccupancy[budget.TC]++
	s.CurrentlyEmergency = budget.Emergency
	if exceededHard {
		s.Forfeits++
	} else {
		s.SuccessfulBudgets++
	}
}

// AverageElapsed returns the mean time spent per recorded move.
func (s *Stats) AverageElapsed() time.Duration {
	if s.Moves == 0 {
		return 0
	}
	return s.TotalElapsed / time.Duration(s.Moves)
}

func (s *Stats) String() string {
	return "timeman.Stats{moves=" + strconv.Itoa(s.Moves) +
		" ok=" + strconv.Itoa(s.SuccessfulBudgets) +
		" forfeits=" + strconv.Itoa(s.Forfeits) +
		" avg=" + s.AverageElapsed().String() + "}"
}
