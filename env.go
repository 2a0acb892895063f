// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// Env is the read-only environment effect, tail-resumptive-only like
// [State]: an environment handler answers from its captured value.
var Env = mustDeclare(std, "env", true,
	Op("ask", "E"),
)

var opAsk = Env.MustOp("ask")

// Ask performs env.ask, returning the nearest installed environment.
func Ask[E any]() Comp[E] { return PerformAs[E](opAsk) }

// AskMap fuses Ask with a projection of the environment.
func AskMap[E, A any](f func(E) A) Comp[A] {
	return Map(Ask[E](), f)
}

// EnvHandler creates a handler answering env.ask with the given value.
func EnvHandler(env Value) *Handler {
	return NewHandler().OnTail(opAsk, func([]Value) Value { return env })
}

// WithEnv installs env around m. Nested installations shadow outer
// ones for their dynamic extent.
func WithEnv[E, A any](env E, m Comp[A]) Comp[A] {
	return func(c *Chain, k func(A, *Chain) Value) Value {
		return Handle(EnvHandler(env), m)(c, k)
	}
}

// RunEnv runs a computation with the given environment.
func RunEnv[E, A any](env E, m Comp[A]) (A, error) {
	return Run(WithEnv(env, m))
}
