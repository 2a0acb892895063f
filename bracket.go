// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// Resource safety primitives built on the [Fail] effect.
// These provide the minimal interface for bracketed resource handling.

// Bracket provides abort-safe resource acquisition and release:
// acquire, use, release, where release is guaranteed to run even if
// use throws. Returns an [Either] containing the result or the thrown
// value.
func Bracket[E, R, A any](
	acquire Comp[R],
	release func(R) Comp[struct{}],
	use func(R) Comp[A],
) Comp[Either[E, A]] {
	return Bind(acquire, func(resource R) Comp[Either[E, A]] {
		return Bind(WithFail[E, A](use(resource)), func(r Either[E, A]) Comp[Either[E, A]] {
			return Then(release(resource), Pure(r))
		})
	})
}

// OnFail runs cleanup only if body throws, then re-throws the value.
func OnFail[E, A any](body Comp[A], cleanup func(E) Comp[struct{}]) Comp[A] {
	return CatchFail[E, A](body, func(e E) Comp[A] {
		return Then(cleanup(e), Throw[A](e))
	})
}
