// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// completed marks a scrutinee that finished normally, carrying its
// final value and the chain to continue under (the frame's parent at
// the point of completion, which after a rebased resume is the chain
// of the resume site, not of the original installation).
type completed struct {
	v Value
	c *Chain
}

// dispatch classifies one settlement event of frame f's scrutinee and
// routes it. k is where f's overall result is delivered: the install
// site on first entry, the resume site on re-entries via [Cont.Resume].
//
//   - completed: fire the return clause once, deliver.
//   - matching pendingOp: build the affine continuation, run the clause
//     body under the chain below f (the frame is excluded while its own
//     clause runs, so a clause performing the same effect reaches the
//     next-outer installation).
//   - other pendingOp: not ours. Re-wrap its continuation so this
//     frame re-engages on resume, and keep bubbling outward.
func (f *HandlerFrame) dispatch(result Value, k func(Value, *Chain) Value) Value {
	switch r := result.(type) {
	case *completed:
		f.state = frameSettled
		v := r.v
		if rc := f.handler.ret; rc != nil {
			v = rc(v)
		}
		f.state = frameDone
		return k(v, r.c)
	case *pendingOp:
		if !f.handler.Matches(r.op) {
			origK := r.k
			r.k = func(v Value, c *Chain) Value {
				return f.dispatch(origK(v, c.Push(f)), k)
			}
			return r
		}
		clause := f.handler.clauses[r.op]
		if clause == nil {
			// A tail clause is fused at the perform-site and never
			// produces a pending operation targeting this frame.
			throwFault(FrameMismatch, r.op, r.depth,
				"tail-resumptive operation reached frame dispatch")
		}
		f.state = frameDispatching
		kt := &Cont{op: r.op, depth: r.depth, frame: f, m: r}
		body := clause(r.args, kt)
		return body(f.outer, k)
	default:
		throwFault(FrameMismatch, nil, 0, "unclassified scrutinee result")
		return nil
	}
}

// Perform triggers an operation with the given argument values and
// suspends the computation until the nearest matching handler frame
// responds. On the happy path it behaves as an ordinary call returning
// the handler's resume value. With no matching frame on a closed chain
// it aborts the evaluation with an [UnhandledEffect] fault; on an open
// chain (see [Step]) it suspends to the external runner instead.
func Perform(op *Operation, args ...Value) Comp[Value] {
	return PerformAs[Value](op, args...)
}

// PerformAs is [Perform] with the resume value asserted to type A,
// matching the operation's declared result shape.
func PerformAs[A any](op *Operation, args ...Value) Comp[A] {
	return func(c *Chain, k func(A, *Chain) Value) Value {
		f, ok := c.Find(op)
		if !ok {
			if !c.open {
				throwFault(UnhandledEffect, op, c.depth, "")
			}
			return newPending(op, args, c.depth, k)
		}
		if tc, ok := f.handler.tails[op]; ok {
			// Tail-resumptive fusion: the round trip through suspend,
			// dispatch, and resume collapses to a direct call. No
			// continuation is captured and the chain is untouched.
			return k(as[A](tc(args)), c)
		}
		if op.kind.tailOnly {
			throwFault(TailResumptionViolation, op, c.depth,
				"general clause dispatched for tail-resumptive-only effect")
		}
		return newPending(op, args, c.depth, k)
	}
}

// newPending suspends: the returned marker travels outward as the
// return value of the in-flight CPS calls until a frame claims it.
func newPending[A any](op *Operation, args []Value, depth int, k func(A, *Chain) Value) *pendingOp {
	m := acquirePending()
	m.op = op
	m.args = args
	m.depth = depth
	m.k = func(v Value, c *Chain) Value {
		return k(as[A](v), c)
	}
	return m
}

// as recovers a concrete result type from a type-erased resume value,
// treating nil as the zero value.
func as[A any](v Value) A {
	if v == nil {
		var zero A
		return zero
	}
	return v.(A)
}

// Handle installs h around the scrutinee m: the runtime form of a
// handler-installing construct. Each evaluation of the returned
// computation creates a fresh [HandlerFrame], pushes it onto the chain
// for the dynamic extent of the scrutinee, and dispatches operations
// the scrutinee performs against the handler's clause set.
//
// The overall result is either a clause's result (when a clause settles
// the frame, with or without resuming) or the return clause applied to
// the scrutinee's final value. If the handler has a return clause it
// must produce an A.
func Handle[A any](h *Handler, m Comp[A]) Comp[A] {
	return func(c *Chain, k func(A, *Chain) Value) Value {
		f := NewFrame(h, c)
		inner := c.Push(f)
		done := func(a A, end *Chain) Value {
			return &completed{v: a, c: end.Pop(f)}
		}
		deliver := func(v Value, c2 *Chain) Value {
			return k(as[A](v), c2)
		}
		return f.dispatch(m(inner, done), deliver)
	}
}
