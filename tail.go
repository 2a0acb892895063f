// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// TailClass is the classification of a handler clause with respect to
// tail resumption.
type TailClass int8

const (
	// NoClause: the handler has no clause for the operation.
	NoClause TailClass = iota

	// TailResumptive: the clause was registered via [Handler.OnTail].
	// Every path through it resumes exactly once as its final action,
	// so the dispatcher fuses the suspend/dispatch/resume round trip
	// into a direct call with no continuation capture. The fusion is
	// observably equivalent: side effect ordering and the returned
	// value are identical to the unfused dispatch.
	TailResumptive

	// General: the clause was registered via [Handler.On] and receives
	// the continuation explicitly. It may resume once, never, or do
	// further work after resuming; no fusion applies.
	General
)

// String returns the class name.
func (t TailClass) String() string {
	switch t {
	case TailResumptive:
		return "tail-resumptive"
	case General:
		return "general"
	default:
		return "no clause"
	}
}

// Classify reports how the handler's clause for op is classified.
//
// Classification is structural: the registration form decides the
// class, and [Handler.On] already rejects general clauses for
// operations of tail-resumptive-only effect kinds, so for such kinds
// Classify never reports General.
func (h *Handler) Classify(op *Operation) TailClass {
	if _, ok := h.tails[op]; ok {
		return TailResumptive
	}
	if _, ok := h.clauses[op]; ok {
		return General
	}
	return NoClause
}
