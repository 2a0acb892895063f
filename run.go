// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// toValue is the identity final continuation for top-level runners.
// Named generic function produces a static function value per type
// instantiation, avoiding the heap allocation that anonymous closures
// incur.
func toValue[A any](a A, _ *Chain) Value { return a }

// Run evaluates a computation under an empty, closed handler chain and
// returns its result. Runtime faults ([UnhandledEffect],
// [ContinuationReused], [TailResumptionViolation], [FrameMismatch])
// abort the evaluation and are returned as a *[Fault] error; they are
// never observable from inside the computation.
//
// Nil completion convention: a computation completing with a nil value
// yields the zero A. Wrap results in a sum type (e.g. [Either]) if nil
// must be distinguished from zero.
func Run[A any](m Comp[A]) (a A, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		f, ok := r.(*Fault)
		if !ok {
			panic(r)
		}
		err = f
	}()
	result := m(EmptyChain(), toValue[A])
	if p, ok := result.(*pendingOp); ok {
		// Perform faults eagerly on a closed chain; a pending escaping
		// to the boundary means a migrated suspension was resumed here.
		throwFault(UnhandledEffect, p.op, p.depth, "suspension escaped to closed boundary")
	}
	if result == nil {
		var zero A
		return zero, nil
	}
	return result.(A), nil
}

// RunWith installs h around m and evaluates it: the one-call form of
// Run(Handle(h, m)).
func RunWith[A any](h *Handler, m Comp[A]) (A, error) {
	return Run(Handle(h, m))
}
