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

package timeman

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyThresholds(t *testing.T) {
	assert.Equal(t, Bullet, Classify(179_999))
	assert.Equal(t, Blitz, Classify(180_000))
	assert.Equal(t, Blitz, Classify(900_000))
	assert.Equal(t, Rapid, Classify(900_001))
	assert.Equal(t, Rapid, Classify(3_600_000))
	assert.Equal(t, Classical, Classify(3_600_001))
}

func TestMovesToGoPhaseTable(t *testing.T) {
	assert.Equal(t, 30, MovesToGo(10, 24))
	assert.Equal(t, 25, MovesToGo(25, 20))
	assert.Equal(t, 20, MovesToGo(25, 19))
	assert.Equal(t, 15, MovesToGo(35, 10))
	assert.Equal(t, 10, MovesToGo(35, 9))
	assert.Equal(t, 10, MovesToGo(45, 24))
}

func TestComputeHardCapNeverExceedsHalfTheClock(t *testing.T) {
	b := Compute(Clock{OwnMs: 10_000, IncMs: 0, MovesToGo: 20}, 10, 24)
	assert.LessOrEqual(t, b.HardMs, int64(5_000))
	assert.Equal(t, b.HardMs, 2*b.SoftMs)
}

func TestComputeFlagsEmergencyAndHalvesBudgets(t *testing.T) {
	calm := Compute(Clock{OwnMs: 100_000, IncMs: 0, MovesToGo: 40}, 10, 24)
	assert.False(t, calm.Emergency)

	tight := Compute(Clock{OwnMs: 300, IncMs: 0, MovesToGo: 40}, 10, 24)
	assert.True(t, tight.Emergency)
	// An emergency budget must be strictly smaller than what the same
	// inputs would produce without the 0.5 emergency multiplier:
	// 300/40 * 0.80 (bullet) = 6ms of soft budget.
	unhalved := int64(6)
	assert.Less(t, tight.SoftMs, unhalved)
}

func TestAdjustSoftBudgetAppliesQualityFactor(t *testing.T) {
	adjusted := AdjustSoftBudget(1000, Excellent)
	assert.Equal(t, int64(700), adjusted)
	adjusted = AdjustSoftBudget(1000, Critical)
	assert.Equal(t, int64(1500), adjusted)
}

func TestClassifyQualityInCheckIsAlwaysCritical(t *testing.T) {
	assert.Equal(t, Critical, ClassifyQuality(500, -500, true))
}

func TestClassifyQualityByScoreGap(t *testing.T) {
	assert.Equal(t, Excellent, ClassifyQuality(300, 100, false))
	assert.Equal(t, Good, ClassifyQuality(100, 20, false))
	assert.Equal(t, Acceptable, ClassifyQuality(40, 15, false))
	assert.Equal(t, Poor, ClassifyQuality(10, 5, false))
}

func TestStatsRecordTracksForfeitsAndSuccesses(t *testing.T) {
	s := NewStats()
	s.Record(10, Budget{TC: Blitz}, false)
	s.Record(10, Budget{TC: Blitz, Emergency: true}, true)
	assert.Equal(t, 2, s.Moves)
	assert.Equal(t, 1, s.SuccessfulBudgets)
	assert.Equal(t, 1, s.Forfeits)
	assert.True(t, s.CurrentlyEmergency)
	assert.Equal(t, 2, s.ControlOccupancy[Blitz])
}
