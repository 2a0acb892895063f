// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

import "iter"

// Yield is the generator effect. It is deliberately left unhandled by
// any installed frame and driven through the stepping boundary: each
// yield suspends to the consumer, which resumes for the next item.
var Yield = mustDeclare(std, "yield", false,
	Op("yield", "unit", "item"),
)

var opYield = Yield.MustOp("yield")

// YieldValue performs yield.yield, suspending with v until the
// consumer asks for the next item.
func YieldValue(v Value) Comp[struct{}] { return PerformAs[struct{}](opYield, v) }

// Generator pulls yielded items out of a computation one at a time.
// The body runs cooperatively: it advances only inside Next, and
// stopping early discards the pending suspension, deterministically
// releasing everything the rest of the body was holding.
type Generator[A any] struct {
	body    Comp[A]
	susp    *Suspension[A]
	result  A
	started bool
	done    bool
	stopped bool
}

// NewGenerator creates a generator over body. The body does not start
// until the first Next call.
func NewGenerator[A any](body Comp[A]) *Generator[A] {
	return &Generator[A]{body: body}
}

// Next advances the body to its next yield.
// Returns (item, true), or (nil, false) once the body has completed.
// A suspension on any operation other than yield aborts with an
// [UnhandledEffect] fault: handle other effects inside the body.
func (g *Generator[A]) Next() (Value, bool) {
	if g.done {
		return nil, false
	}
	var s *Suspension[A]
	if !g.started {
		g.started = true
		g.result, s = Step(g.body)
	} else {
		g.result, s = g.susp.Resume(struct{}{})
	}
	if s == nil {
		g.done = true
		g.susp = nil
		return nil, false
	}
	if s.Op() != opYield {
		s.Discard()
		g.done = true
		throwFault(UnhandledEffect, s.Op(), 0, "escaped generator body")
	}
	g.susp = s
	return s.Args()[0], true
}

// Result returns the body's final value once the generator is
// exhausted; ok is false while items remain or after Stop.
func (g *Generator[A]) Result() (A, bool) {
	if !g.done || g.stopped {
		var zero A
		return zero, false
	}
	return g.result, true
}

// Stop abandons the generator without running the rest of the body.
// Safe to call at any point; further Next calls report exhaustion.
func (g *Generator[A]) Stop() {
	if g.susp != nil {
		g.susp.Discard()
		g.susp = nil
	}
	if !g.done {
		g.stopped = true
	}
	g.done = true
}

// All returns the yielded items as a range-over-func sequence.
// Breaking out of the range stops the generator.
func (g *Generator[A]) All() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		for v, ok := g.Next(); ok; v, ok = g.Next() {
			if !yield(v) {
				g.Stop()
				return
			}
		}
	}
}
