// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// Clause responds to one operation. It receives the evaluated argument
// values and the captured continuation k, and returns the computation
// that produces the overall result of the installing handle expression
// for this path.
//
// The clause body evaluates under the chain below the installing frame,
// so performing the same effect inside a clause reaches the next-outer
// installation, never the clause itself. The clause either resumes k
// (at most once) or abandons it, in which case nothing positioned after
// the perform-site ever executes.
type Clause func(args []Value, k *Cont) Comp[Value]

// TailClause responds to one operation whose handling is classified
// tail-resumptive: the response value is the resume value, no work is
// pending afterward, and no continuation is captured. The dispatcher
// fuses such clauses into direct calls at the perform-site.
//
// A TailClause cannot perform operations or install handlers; it maps
// arguments to a value, optionally against shared handler state.
type TailClause func(args []Value) Value

// ReturnClause transforms the final value of a scrutinee that completed
// without abandoning control to a clause. It fires exactly once per
// completed branch. The default is pass-through.
type ReturnClause func(v Value) Value

// Handler is an immutable mapping from operations to response clauses,
// plus an optional return clause. A single handler may carry clauses
// for operations of several effect kinds; installing it handles that
// whole set at one frame.
//
// Handlers are specifications: installing one (see [Handle]) creates a
// fresh [HandlerFrame] per evaluation, so a Handler value is reusable
// and safe to share between computations.
type Handler struct {
	clauses map[*Operation]Clause
	tails   map[*Operation]TailClause
	ret     ReturnClause
}

// NewHandler creates an empty handler.
func NewHandler() *Handler {
	return &Handler{
		clauses: make(map[*Operation]Clause),
		tails:   make(map[*Operation]TailClause),
	}
}

// On registers a general clause for op, replacing any previous clause
// for it. Panics with a [TailResumptionViolation] fault if op belongs
// to a tail-resumptive-only effect kind: such operations must use
// [Handler.OnTail], and the rejection happens here, ahead of execution.
func (h *Handler) On(op *Operation, c Clause) *Handler {
	if op.kind.tailOnly {
		throwFault(TailResumptionViolation, op, 0,
			"general clause installed for tail-resumptive-only effect")
	}
	delete(h.tails, op)
	h.clauses[op] = c
	return h
}

// OnTail registers a tail-resumptive clause for op, replacing any
// previous clause for it.
func (h *Handler) OnTail(op *Operation, c TailClause) *Handler {
	delete(h.clauses, op)
	h.tails[op] = c
	return h
}

// OnReturn registers the return clause.
func (h *Handler) OnReturn(rc ReturnClause) *Handler {
	h.ret = rc
	return h
}

// Matches reports whether the handler has a clause for op.
func (h *Handler) Matches(op *Operation) bool {
	if _, ok := h.tails[op]; ok {
		return true
	}
	_, ok := h.clauses[op]
	return ok
}
