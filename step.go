// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

import "sync/atomic"

// Stepping boundary for external runtimes.
// Step provides one-operation-at-a-time evaluation, unlike [Run] which
// requires every operation to meet an installed frame. Operations that
// no installed frame handles suspend to the caller instead of faulting,
// making the caller the outermost handler.

// Suspension is a computation suspended on an operation that crossed
// the stepping boundary. It holds the pending operation, its argument
// values, and a one-shot resumption handle.
//
// Suspension enforces the same affine discipline as [Cont]: Resume may
// be called at most once, and calling it again panics with a
// [ContinuationReused] fault. Use Discard to abandon a suspension;
// the suspended computation is then released and never proceeds.
//
// A Suspension is not resumed on any particular goroutine: ownership
// may be transferred (over a channel, say) and the single-invocation
// rule respected by the receiver. The runtime itself stays
// single-threaded and cooperative.
type Suspension[A any] struct {
	used atomic.Uintptr
	op   *Operation
	args []Value
	k    func(Value, *Chain) Value
}

// Op returns the operation that caused the suspension.
func (s *Suspension[A]) Op() *Operation { return s.op }

// Args returns the operation's argument values.
// The returned slice must not be modified.
func (s *Suspension[A]) Args() []Value { return s.args }

// Resume advances the computation with the given value.
// Returns either a completed value (with nil suspension) or the next
// suspension. Panics with a [ContinuationReused] fault if the
// suspension was already resumed or discarded.
func (s *Suspension[A]) Resume(v Value) (A, *Suspension[A]) {
	if s.used.Add(1) != 1 {
		throwFault(ContinuationReused, s.op, 0, "suspension resumed twice")
	}
	return classify[A](s.k(v, openChain()))
}

// TryResume attempts to advance the computation.
// Returns (value, next, true) on success, or (zero, nil, false) if the
// suspension was already consumed.
func (s *Suspension[A]) TryResume(v Value) (A, *Suspension[A], bool) {
	if s.used.Add(1) != 1 {
		var zero A
		return zero, nil, false
	}
	a, next := classify[A](s.k(v, openChain()))
	return a, next, true
}

// Discard marks the suspension as consumed without resuming.
func (s *Suspension[A]) Discard() {
	s.used.Store(1)
	s.k = nil
	s.args = nil
}

// Step drives a computation until it either completes or suspends on
// an operation no installed frame handles.
// Returns (value, nil) on completion, or (zero, suspension) if pending.
//
// Example:
//
//	result, susp := Step(computation)
//	for susp != nil {
//	    v := handleOp(susp.Op(), susp.Args())
//	    result, susp = susp.Resume(v)
//	}
func Step[A any](m Comp[A]) (A, *Suspension[A]) {
	return classify[A](m(openChain(), toValue[A]))
}

// classify examines a boundary result and converts an escaped pending
// operation into a suspension, taking ownership of its fields.
func classify[A any](result Value) (A, *Suspension[A]) {
	if p, ok := result.(*pendingOp); ok {
		var zero A
		s := &Suspension[A]{op: p.op, args: p.args, k: p.k}
		p.args = nil
		releasePending(p)
		return zero, s
	}
	if result == nil {
		var zero A
		return zero, nil
	}
	return result.(A), nil
}
