// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package eff is an algebraic-effect execution runtime: named, typed
// operations suspend the current computation, a dynamically-scoped
// chain of handler frames is searched outward-to-nearest, and the
// matching clause either resumes the suspended computation exactly
// once, never resumes it, or lets completion fall through to a return
// clause.
//
// The package is a library for an upstream evaluator or compiler: it
// begins where an instruction stream already carries operation calls
// and handler installations, and it ends by producing ordinary values.
// Execution is single-threaded and cooperative; suspension occurs only
// at perform-sites.
//
// # Effect Registry
//
// Effects are declared once, ahead of execution, into a [Registry]:
//
//   - [Registry.Declare], [Registry.DeclareTailOnly]: register an
//     [EffectKind] with its ordered [Operation] set
//   - [Registry.Operation]: resolve an operation signature
//   - [Registry.Freeze]: make the table read-only for the run
//
// # Computations
//
// [Comp] is a continuation-passing computation; the active handler
// [Chain] is threaded alongside the value so that captured
// continuations can re-establish their frames when resumed elsewhere.
//
//   - [Pure]: lift a value
//   - [Bind], [Map], [Then]: sequencing
//   - [Suspend]: raw CPS constructor
//   - [Perform], [PerformAs]: trigger an operation
//
// # Handlers
//
// A [Handler] maps operations, possibly of several effect kinds, to
// clauses, plus an optional return clause. [Handle] installs it for
// the dynamic extent of a scrutinee; [Run] evaluates at the top level
// and returns runtime faults as errors.
//
//   - [Handler.On]: general clause, receives the affine [Cont]
//   - [Handler.OnTail]: tail-resumptive clause, fused to a direct call
//   - [Handler.OnReturn]: transform a normally-completed result
//   - [Handler.Classify]: report a clause's [TailClass]
//
// Handlers are deep: a resumed scrutinee performing the same effect
// again reaches the same installation, while a clause body itself
// evaluates below its own frame, so re-entering a handler from inside
// its clause happens only through explicit re-installation.
//
// # Continuations
//
// [Cont] is the captured rest of the computation, resumable at most
// once ([Cont.Resume]); dropping it without resuming ([Cont.Discard])
// is the non-local exit and the runtime's only cancellation mechanism.
// Reuse is detected eagerly as a [ContinuationReused] fault.
//
// # Stepping Boundary
//
// [Step] drives a computation one suspension at a time for external
// runtimes (event loops, generators): operations no installed frame
// handles surface as a one-shot [Suspension] instead of faulting.
//
// # Faults
//
// [Fault] carries the abnormal terminal conditions (unhandled
// operations, continuation reuse, tail-resumption violations, and
// internal frame bookkeeping defects) with the operation name and
// handler chain depth. Faults abort the evaluation and surface as
// errors from [Run]; registry misuse surfaces as ordinary errors
// ([ErrDuplicateEffect], [ErrUnknownOperation], ...).
//
// # Standard Effects
//
// The package declares a small set of effects in its own registry,
// built the same way consumer effects are:
//
//   - [State]: mutable-state threading ([Get], [Put], [Modify];
//     [StateHandler], [RunState], [EvalState], [ExecState])
//   - [Env]: read-only environment ([Ask]; [EnvHandler], [RunEnv])
//   - [Log]: accumulated output ([Emit]; [LogHandler], [CollectLog])
//   - [Fail]: exception-like abort ([Throw]; [WithFail], [RunFail],
//     [CatchFail]) plus resource safety ([Bracket], [OnFail])
//   - [Yield]: generators over the stepping boundary ([YieldValue],
//     [Generator])
//
// Combined handlers ([StateFailHandler], [StateLogHandler]) cover an
// effect set from a single frame.
//
// # Example
//
//	reg := eff.NewRegistry()
//	ask, _ := reg.Declare("ask", eff.Op("ask", "int"))
//	opAsk := ask.MustOp("ask")
//
//	comp := eff.Bind(eff.PerformAs[int](opAsk), func(x int) eff.Comp[int] {
//		return eff.Pure(x * 2)
//	})
//
//	h := eff.NewHandler().OnTail(opAsk, func([]eff.Value) eff.Value {
//		return 21
//	})
//	result, err := eff.Run(eff.Handle(h, comp))
//	// result == 42, err == nil
package eff
