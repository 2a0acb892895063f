// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// Log is the accumulating-output effect (tracing, captured I/O in
// tests). Emitting resumes immediately, so the operation is declared
// tail-resumptive-only and every emit fuses into an append.
var Log = mustDeclare(std, "log", true,
	Op("emit", "unit", "entry"),
)

var opEmit = Log.MustOp("emit")

// Emit performs log.emit, appending v to the nearest installed log.
func Emit(v Value) Comp[struct{}] { return PerformAs[struct{}](opEmit, v) }

// LogHandler creates a handler accumulating emitted entries.
// Returns the handler and a function reading the entries so far.
func LogHandler() (*Handler, func() []Value) {
	var out []Value
	h := NewHandler().OnTail(opEmit, func(args []Value) Value {
		out = append(out, args[0])
		return struct{}{}
	})
	return h, func() []Value { return out }
}

// CollectLog installs a fresh log around m and returns the result
// alongside everything emitted during its evaluation.
func CollectLog[A any](m Comp[A]) Comp[Pair[A, []Value]] {
	return func(c *Chain, k func(Pair[A, []Value], *Chain) Value) Value {
		h, out := LogHandler()
		paired := Map(Handle(h, m), func(a A) Pair[A, []Value] {
			return Pair[A, []Value]{Fst: a, Snd: out()}
		})
		return paired(c, k)
	}
}

// RunLog runs a computation and returns its result and emitted entries.
func RunLog[A any](m Comp[A]) (A, []Value, error) {
	p, err := Run(CollectLog(m))
	return p.Fst, p.Snd, err
}
