// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// frameState tracks a handle evaluation through its lifecycle:
// running scrutinee, dispatching a clause, settled with a value, done.
type frameState int8

const (
	frameRunning frameState = iota
	frameDispatching
	frameSettled
	frameDone
)

// HandlerFrame is one installation of a [Handler]: it pins the handler
// to a position on the chain and records the chain below it, which is
// fixed for the frame's lifetime. Frames are created by [Handle] when
// a handle construct begins evaluating its scrutinee; [NewFrame] is
// exposed for evaluators that manage installation explicitly.
type HandlerFrame struct {
	handler *Handler
	outer   *Chain
	state   frameState
}

// NewFrame creates a frame installing h above the given chain.
func NewFrame(h *Handler, below *Chain) *HandlerFrame {
	return &HandlerFrame{handler: h, outer: below}
}

// Handler returns the installed handler.
func (f *HandlerFrame) Handler() *Handler { return f.handler }

// Below returns the chain below the frame, as recorded at installation.
// Searching it is how a clause-side dispatch skips its own frame.
func (f *HandlerFrame) Below() *Chain { return f.outer }

// Chain is a persistent, immutable linked chain of handler frames,
// innermost first. Installation extends the chain; it never mutates it,
// so every captured continuation carries its own correct snapshot even
// after unrelated installations have come and gone. (A single mutable
// global stack breaks exactly there: the first continuation resumed
// from a different dynamic context would see a corrupted stack.)
//
// The zero frame at the root marks the evaluation boundary: closed for
// [Run], where an unmatched operation is an [UnhandledEffect] fault,
// and open for [Step], where it suspends to the external runner.
type Chain struct {
	frame  *HandlerFrame
	parent *Chain
	depth  int
	open   bool
}

// EmptyChain returns a closed chain with no installed frames.
func EmptyChain() *Chain { return &Chain{} }

// openChain returns the stepping-boundary root; see [Step].
func openChain() *Chain { return &Chain{open: true} }

// Push returns the chain extended with f as the new innermost frame.
func (c *Chain) Push(f *HandlerFrame) *Chain {
	return &Chain{frame: f, parent: c, depth: c.depth + 1, open: c.open}
}

// Pop removes the innermost frame, which must be f: frames pop in LIFO
// order relative to their own nesting. A mismatch is a [FrameMismatch]
// fault: an internal invariant violation, unreachable from well-formed
// input.
func (c *Chain) Pop(f *HandlerFrame) *Chain {
	if c.frame != f {
		throwFault(FrameMismatch, nil, c.depth, "pop out of installation order")
	}
	return c.parent
}

// Find walks the chain outward from the innermost frame and returns the
// nearest frame whose handler has a clause for op.
func (c *Chain) Find(op *Operation) (*HandlerFrame, bool) {
	for n := c; n != nil && n.frame != nil; n = n.parent {
		if n.frame.handler.Matches(op) {
			return n.frame, true
		}
	}
	return nil, false
}

// Frame returns the innermost frame, or nil for a root chain.
func (c *Chain) Frame() *HandlerFrame { return c.frame }

// Parent returns the chain below the innermost frame, or nil at a root.
func (c *Chain) Parent() *Chain { return c.parent }

// Depth returns the number of installed frames.
func (c *Chain) Depth() int { return c.depth }
