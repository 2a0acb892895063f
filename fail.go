// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// Fail is the exception-like abort effect. Its handler never resumes:
// throwing discards the continuation, so nothing after the throw-site
// ever executes. This is the cancellation model of the runtime.
var Fail = mustDeclare(std, "fail", false,
	Op("throw", "never", "error"),
)

var opThrow = Fail.MustOp("throw")

// Throw performs fail.throw, aborting the computation with e.
// The result type is free because control never returns.
func Throw[A any](e Value) Comp[A] { return PerformAs[A](opThrow, e) }

// WithFail installs an abort boundary around m, reifying the outcome
// as an [Either]: Left of the thrown value, or Right of the result.
func WithFail[E, A any](m Comp[A]) Comp[Either[E, A]] {
	h := NewHandler().On(opThrow, func(args []Value, k *Cont) Comp[Value] {
		k.Discard()
		return Pure[Value](Left[E, A](as[E](args[0])))
	})
	return Handle(h, Map(m, Right[E, A]))
}

// RunFail runs a computation that may throw and returns the outcome.
func RunFail[E, A any](m Comp[A]) (Either[E, A], error) {
	return Run(WithFail[E, A](m))
}

// CatchFail runs body and, if it throws, continues with the handler
// applied to the thrown value. Like [WithFail], only the abort effect
// is delimited: other effects in body dispatch to the enclosing chain.
func CatchFail[E, A any](body Comp[A], handler func(E) Comp[A]) Comp[A] {
	return Bind(WithFail[E, A](body), func(r Either[E, A]) Comp[A] {
		if e, ok := r.GetLeft(); ok {
			return handler(e)
		}
		v, _ := r.GetRight()
		return Pure(v)
	})
}
