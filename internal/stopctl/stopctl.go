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

// Package stopctl implements the cooperative, lock-free search-stop
// coordinator. A single atomic flag is polled at node entry; there is no
// exception-like unwinding primitive, only ordinary return values.
package stopctl

import (
	"sync/atomic"
	"time"
)

// Reason classifies why a search stopped; Controller.Reason exposes it.
type Reason int32

const (
	ReasonNone Reason = iota
	ReasonHardBudget
	ReasonExternal
	ReasonDepthLimit
	ReasonMateFound
)

func (r Reason) String() string {
	switch r {
	case ReasonHardBudget:
		return "hard-budget"
	case ReasonExternal:
		return "external"
	case ReasonDepthLimit:
		return "depth-limit"
	case ReasonMateFound:
		return "mate-found"
	default:
		return "none"
	}
}

// Controller holds the atomic stop flag and an optional wall-clock
// deadline.
type Controller struct {
	stop     uint32
	deadline time.Time
	hasLimit bool
	reason   int32
}

// New returns a freshly armed-to-false Controller.
func New() *Controller { return &Controller{} }

// Arm sets the deadline and clears stop, readying the controller for a new
// search. A zero deadline means no wall-clock limit (e.g. `go infinite`).
func (c *Controller) Arm(deadline time.Time) {
	atomic.StoreUint32(&c.stop, 0)
	atomic.StoreInt32(&c.reason, int32(ReasonNone))
	c.deadline = deadline
	c.hasLimit = !deadline.IsZero()
}

// Poll is called at every search node. If stop is already set, or the
// deadline has passed, it returns true and (on the transition) latches
// `stop` so later nodes short-circuit without re-checking the clock.
func (c *Controller) Poll() bool {
	if atomic.LoadUint32(&c.stop) != 0 {
		return true
	}
	if c.hasLimit && !time.Now().Before(c.deadline) {
		c.latch(ReasonHardBudget)
		return true
	}
	return false
}

// Stopped reports the current flag without touching the clock - useful in
// hot loops that already called Poll for this iteration.
func (c *Controller) Stopped() bool {
	return atomic.LoadUint32(&c.stop) != 0
}

// ForceStop is the external UCI "stop"/"quit" handler or a clock wall-hit
// detected outside the search loop. Once set,
// stop is monotonic until the next Arm.
func (c *Controller) ForceStop() {
	c.latch(ReasonExternal)
}

// StopForDepthLimit and StopForMateFound record why the driver chose to
// stop on its own (not via Poll's budget check), so Reason still reports
// an accurate cause.
func (c *Controller) StopForDepthLimit() { c.latch(ReasonDepthLimit) }
func (c *Controller) StopForMateFound()  { c.latch(ReasonMateFound) }

func (c *Controller) latch(r Reason) {
	if atomic.CompareAndSwapUint32(&c.stop, 0, 1) {
		atomic.StoreInt32(&c.reason, int32(r))
	}
}

// Reason returns why the controller last stopped (ReasonNone if armed and
// still running).
func (c *Controller) Reason() Reason {
	return Reason(atomic.LoadInt32(&c.reason))
}
