// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

import "sync/atomic"

// Cont is the captured rest of a suspended computation, from the
// perform-site up to (and excluding) the frame whose clause received
// it. It is an affine capability: the clause that received it owns it
// exclusively, resuming consumes it, and dropping it without resuming
// is the non-local exit: everything between the perform-site and the
// handler is released and never proceeds.
//
// Executing the resumption a second time is a [ContinuationReused]
// fault, detected eagerly. This restriction is what lets the runtime
// represent a continuation as owned, movable closure state instead of
// cloning call frames to support replay.
type Cont struct {
	used  atomic.Uintptr
	op    *Operation
	depth int
	frame *HandlerFrame
	m     *pendingOp
}

// Op returns the operation whose perform created the continuation.
func (kt *Cont) Op() *Operation { return kt.op }

// Used reports whether the continuation has been consumed.
func (kt *Cont) Used() bool { return kt.used.Load() != 0 }

// Resume returns the computation that feeds v to the perform-site and
// runs the suspended rest of the scrutinee. The captured frames between
// the perform-site and the handler, the handler's own frame included,
// are re-established on top of the chain current where the resumption
// executes, so an installation wrapped freshly around the resumption
// sits between the captured frames and the outer context.
//
// The continuation is consumed when the returned computation executes;
// executing it again panics with a [ContinuationReused] fault.
func (kt *Cont) Resume(v Value) Comp[Value] {
	return func(c *Chain, k func(Value, *Chain) Value) Value {
		if kt.used.Add(1) != 1 {
			throwFault(ContinuationReused, kt.op, kt.depth, "")
		}
		m := kt.m
		kt.m = nil
		resume := m.k
		releasePending(m)
		return kt.frame.dispatch(resume(v, c.Push(kt.frame)), k)
	}
}

// Discard marks the continuation as consumed without resuming it.
// Discarding is idempotent and releases the captured perform state;
// a later Resume execution still faults as reuse.
func (kt *Cont) Discard() {
	if kt.used.Add(1) != 1 {
		return
	}
	if m := kt.m; m != nil {
		kt.m = nil
		releasePending(m)
	}
}
