// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// Combined handlers dispatch several effect kinds from a single frame:
// one installation, one chain walk per operation, with the handler's
// clause set spanning the whole effect set.

// StateFailHandler creates one handler covering both [State] and
// [Fail]. State operations fuse as usual; a throw settles the frame
// with Left while the state cell remains readable, so state is
// available even on the error path.
func StateFailHandler[E, A any](initial Value) (*Handler, func() Value) {
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
		}).
		On(opThrow, func(args []Value, k *Cont) Comp[Value] {
			k.Discard()
			return Pure[Value](Left[E, A](as[E](args[0])))
		})
	return h, func() Value { return cell }
}

// WithStateFail installs a combined State+Fail frame around m.
// Returns the outcome paired with the final state, which survives a
// throw.
func WithStateFail[E, A any](initial Value, m Comp[A]) Comp[Pair[Either[E, A], Value]] {
	return func(c *Chain, k func(Pair[Either[E, A], Value], *Chain) Value) Value {
		h, get := StateFailHandler[E, A](initial)
		paired := Map(Handle(h, Map(m, Right[E, A])), func(r Either[E, A]) Pair[Either[E, A], Value] {
			return Pair[Either[E, A], Value]{Fst: r, Snd: get()}
		})
		return paired(c, k)
	}
}

// RunStateFail runs m with combined State+Fail handling and returns
// the outcome and the final state.
func RunStateFail[E, A any](initial Value, m Comp[A]) (Either[E, A], Value, error) {
	p, err := Run(WithStateFail[E, A](initial, m))
	return p.Fst, p.Snd, err
}

// StateLogHandler creates one handler covering [State] and [Log].
func StateLogHandler(initial Value) (*Handler, func() Value, func() []Value) {
	cell := initial
	var out []Value
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
		}).
		OnTail(opEmit, func(args []Value) Value {
			out = append(out, args[0])
			return struct{}{}
		})
	return h, func() Value { return cell }, func() []Value { return out }
}

// RunStateLog runs m with combined State+Log handling and returns the
// result, the final state, and the emitted entries.
func RunStateLog[A any](initial Value, m Comp[A]) (A, Value, []Value, error) {
	h, getState, getLog := StateLogHandler(initial)
	a, err := Run(Handle(h, m))
	return a, getState(), getLog(), err
}
