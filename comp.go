// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// Value is the type-erased currency of the runtime. The upstream
// evaluator has already type-checked the program; the runtime moves
// operation arguments, resume values, and results as Value and
// recovers concrete types at typed boundaries ([PerformAs], [Handle]).
type Value = any

// Comp represents a suspendable computation producing a value of type A.
//
// The function receives the active handler chain and a continuation k,
// which represents "the rest of the computation". The chain is threaded
// through the continuation rather than captured by it so that a resumed
// continuation can re-establish its captured frames on top of whatever
// chain is current at the resume site.
//
// A Comp either completes by applying k, or suspends by returning a
// pending operation that bubbles outward to the nearest matching
// handler frame.
type Comp[A any] func(c *Chain, k func(A, *Chain) Value) Value

// Pure lifts a value into a computation that performs no operations.
func Pure[A any](a A) Comp[A] {
	return func(c *Chain, k func(A, *Chain) Value) Value {
		return k(a, c)
	}
}

// Suspend creates a computation from a raw CPS function.
// This is the primitive constructor for computations that need direct
// access to the chain and the continuation.
func Suspend[A any](f func(c *Chain, k func(A, *Chain) Value) Value) Comp[A] {
	return Comp[A](f)
}

// Bind sequences two computations (monadic bind).
// It runs m, then passes the result to f to obtain the next computation.
func Bind[A, B any](m Comp[A], f func(A) Comp[B]) Comp[B] {
	return func(c *Chain, k func(B, *Chain) Value) Value {
		return m(c, func(a A, c2 *Chain) Value {
			return f(a)(c2, k)
		})
	}
}

// Map applies a pure function to the result of a computation.
//
// Allocation note: Map is equivalent to Bind(m, compose(Pure, f)) but
// avoids the intermediate Pure closure, making it the preferred choice
// when the transformation performs no operations.
func Map[A, B any](m Comp[A], f func(A) B) Comp[B] {
	return func(c *Chain, k func(B, *Chain) Value) Value {
		return m(c, func(a A, c2 *Chain) Value {
			return k(f(a), c2)
		})
	}
}

// Then sequences two computations, discarding the first result.
// This is more efficient than Bind when the second computation
// does not depend on the first result.
func Then[A, B any](m Comp[A], n Comp[B]) Comp[B] {
	return func(c *Chain, k func(B, *Chain) Value) Value {
		return m(c, func(_ A, c2 *Chain) Value {
			return n(c2, k)
		})
	}
}
