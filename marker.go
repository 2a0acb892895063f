// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

import "sync"

// pendingOp is a performed operation in flight: it exists from the
// perform-site until the nearest matching frame builds a continuation
// from it (or the stepping boundary converts it to a [Suspension]).
// It travels as the return value of the suspended CPS call tree; every
// frame it bubbles through re-wraps k so that resuming re-engages that
// frame and re-pushes it onto the chain supplied at resume time.
type pendingOp struct {
	op    *Operation
	args  []Value
	depth int
	k     func(Value, *Chain) Value
}

var pendingPool = sync.Pool{
	New: func() any { return new(pendingOp) },
}

func acquirePending() *pendingOp {
	return pendingPool.Get().(*pendingOp)
}

// releasePending zeroes and returns m to the pool. Callers own m
// exclusively at release time; a pending dropped without release
// (a discarded continuation that was never built, say) just falls to
// the garbage collector.
func releasePending(m *pendingOp) {
	m.op = nil
	m.args = nil
	m.depth = 0
	m.k = nil
	pendingPool.Put(m)
}
