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

package stopctl

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestArmClearsPriorStopAndSetsDeadline(t *testing.T) {
	c := New()
	c.ForceStop()
	assert.True(t, c.Stopped())

	c.Arm(time.Now().Add(time.Hour))
	assert.False(t, c.Stopped())
	assert.Equal(t, ReasonNone, c.Reason())
}

func TestPollReturnsFalseWithNoDeadline(t *testing.T) {
	c := New()
	c.Arm(time.Time{})
	assert.False(t, c.Poll())
}

func TestPollLatchesStopOncePastDeadline(t *testing.T) {
	c := New()
	c.Arm(time.Now().Add(-time.Millisecond))
	assert.True(t, c.Poll())
	assert.True(t, c.Stopped())
	assert.Equal(t, ReasonHardBudget, c.Reason())
}

func TestForceStopIsMonotonicUntilNextArm(t *testing.T) {
	c := New()
	c.Arm(time.Now().Add(time.Hour))
	c.ForceStop()
	assert.True(t, c.Stopped())
	assert.Equal(t, ReasonExternal, c.Reason())

	// Still stopped without a new Arm.
	assert.True(t, c.Poll())
}

func TestStopForDepthLimitAndMateFoundRecordDistinctReasons(t *testing.T) {
	c := New()
	c.Arm(time.Now().Add(time.Hour))
	c.StopForDepthLimit()
	assert.Equal(t, ReasonDepthLimit, c.Reason())

	c.Arm(time.Now().Add(time.Hour))
	c.StopForMateFound()
	assert.Equal(t, ReasonMateFound, c.Reason())
}
