// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

import "fmt"

// FaultCode classifies a runtime fault.
type FaultCode int

const (
	// UnhandledEffect: an operation was performed with no matching
	// frame on the chain. Meant to be ruled out by the upstream effect
	// checker; the runtime still guards against it and fails loudly.
	UnhandledEffect FaultCode = iota + 1

	// ContinuationReused: a consumed continuation was resumed again.
	// A defect in the caller (or in compiler-generated code), detected
	// eagerly rather than silently replaying stale state.
	ContinuationReused

	// TailResumptionViolation: a clause for a tail-resumptive-only
	// effect attempted non-tail use of its continuation. Rejected at
	// clause installation where possible, else at first dispatch.
	TailResumptionViolation

	// FrameMismatch: internal chain bookkeeping invariant violation.
	// Indicates a bug in the runtime or in an evaluator driving the
	// low-level frame API, never a user error.
	FrameMismatch
)

// String returns the fault code name.
func (c FaultCode) String() string {
	switch c {
	case UnhandledEffect:
		return "unhandled effect"
	case ContinuationReused:
		return "continuation reused"
	case TailResumptionViolation:
		return "tail resumption violation"
	case FrameMismatch:
		return "frame mismatch"
	default:
		return fmt.Sprintf("fault(%d)", int(c))
	}
}

// Fault is an abnormal terminal condition of an evaluation. Faults
// propagate as panics through the dispatcher and are recovered at the
// [Run] boundary, which returns them as errors with full context:
// the operation involved (if any) and the handler chain depth.
//
// Faults are not recoverable mid-evaluation; a handler cannot observe
// or intercept them.
type Fault struct {
	Code   FaultCode
	Op     *Operation
	Depth  int
	Detail string
}

// Error implements the error interface.
func (f *Fault) Error() string {
	msg := "eff: " + f.Code.String()
	if f.Op != nil {
		msg += " " + f.Op.FullName()
	}
	if f.Detail != "" {
		msg += ": " + f.Detail
	}
	if f.Depth > 0 {
		msg += fmt.Sprintf(" (handler chain depth %d)", f.Depth)
	}
	return msg
}

// FaultCodeOf extracts the fault code from an error returned by [Run],
// or 0 if the error is not a *Fault.
func FaultCodeOf(err error) FaultCode {
	if f, ok := err.(*Fault); ok {
		return f.Code
	}
	return 0
}

// throwFault aborts the current evaluation with a runtime fault.
// Extracted as a noinline function so that the dispatch fast paths
// remain inlineable.
//
//go:noinline
func throwFault(code FaultCode, op *Operation, depth int, detail string) {
	panic(&Fault{Code: code, Op: op, Depth: depth, Detail: detail})
}
