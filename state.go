// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// Standard effects declared by this package live in their own registry
// scope, separate from any registry the consuming evaluator builds.
var std = NewRegistry()

// State is the mutable-state effect. Its operations are declared
// tail-resumptive-only: a state handler answers from its cell and
// resumes immediately, so every dispatch fuses into a direct call.
var State = mustDeclare(std, "state", true,
	Op("get", "S"),
	Op("put", "unit", "S"),
	Op("modify", "S", "f"),
)

var (
	opGet    = State.MustOp("get")
	opPut    = State.MustOp("put")
	opModify = State.MustOp("modify")
)

// Get performs state.get, returning the current state.
func Get() Comp[Value] { return Perform(opGet) }

// Put performs state.put, replacing the current state.
func Put(v Value) Comp[struct{}] { return PerformAs[struct{}](opPut, v) }

// Modify performs state.modify, applying f to the state and returning
// the new state.
func Modify(f func(Value) Value) Comp[Value] { return Perform(opModify, f) }

// StateHandler creates a handler for the State effect with the given
// initial state. Returns the handler and a function reading the
// current state; the cell is private to the pair, so nested
// installations thread independent states and the nearest one wins.
func StateHandler(initial Value) (*Handler, func() Value) {
	cell := initial
	h := NewHandler().
		OnTail(opGet, func([]Value) Value {
			return cell
		}).
		OnTail(opPut, func(args []Value) Value {
			cell = args[0]
			return struct{}{}
		}).
		OnTail(opModify, func(args []Value) Value {
			cell = args[0].(func(Value) Value)(cell)
			return cell
		})
	return h, func() Value { return cell }
}

// WithState installs a fresh state cell around m and returns both the
// result and the final state.
func WithState[A any](initial Value, m Comp[A]) Comp[Pair[A, Value]] {
	return func(c *Chain, k func(Pair[A, Value], *Chain) Value) Value {
		h, get := StateHandler(initial)
		paired := Map(Handle(h, m), func(a A) Pair[A, Value] {
			return Pair[A, Value]{Fst: a, Snd: get()}
		})
		return paired(c, k)
	}
}

// RunState runs a stateful computation and returns the result and the
// final state.
func RunState[A any](initial Value, m Comp[A]) (A, Value, error) {
	p, err := Run(WithState(initial, m))
	return p.Fst, p.Snd, err
}

// EvalState runs a stateful computation and returns only the result.
func EvalState[A any](initial Value, m Comp[A]) (A, error) {
	a, _, err := RunState(initial, m)
	return a, err
}

// ExecState runs a stateful computation and returns only the final
// state.
func ExecState[A any](initial Value, m Comp[A]) (Value, error) {
	_, s, err := RunState(initial, m)
	return s, err
}
