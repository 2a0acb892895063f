// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff_test

import (
	"testing"

	"code.hybscloud.com/eff"
)

func TestChainPushFind(t *testing.T) {
	hGive := eff.NewHandler().OnTail(opGive, func([]eff.Value) eff.Value { return 0 })
	hPing := eff.NewHandler().OnTail(opPing, func([]eff.Value) eff.Value { return 0 })
	hBoth := eff.NewHandler().
		OnTail(opGive, func([]eff.Value) eff.Value { return 1 }).
		OnTail(opPing, func([]eff.Value) eff.Value { return 1 })

	root := eff.EmptyChain()
	c := root.
		Push(eff.NewFrame(hGive, root)).
		Push(eff.NewFrame(hPing, root))

	f, ok := c.Find(opGive)
	if !ok {
		t.Fatal("give not found")
	}
	if f.Handler() != hGive {
		t.Fatal("give resolved to the wrong frame")
	}
	f, ok = c.Find(opPing)
	if !ok {
		t.Fatal("ping not found")
	}
	if f.Handler() != hPing {
		t.Fatal("ping resolved to the wrong frame")
	}

	// A nearer frame covering both kinds shadows the deeper ones.
	c2 := c.Push(eff.NewFrame(hBoth, c))
	for _, op := range []*eff.Operation{opGive, opPing} {
		f, ok = c2.Find(op)
		if !ok {
			t.Fatalf("%s not found", op.FullName())
		}
		if f.Handler() != hBoth {
			t.Fatalf("%s did not resolve to the nearest frame", op.FullName())
		}
	}

	if _, ok = root.Find(opGive); ok {
		t.Fatal("empty chain claims to handle give")
	}
}

func TestChainDepth(t *testing.T) {
	h := eff.NewHandler()
	c := eff.EmptyChain()
	if c.Depth() != 0 {
		t.Fatalf("got depth %d, want 0", c.Depth())
	}
	c = c.Push(eff.NewFrame(h, c))
	c = c.Push(eff.NewFrame(h, c))
	if c.Depth() != 2 {
		t.Fatalf("got depth %d, want 2", c.Depth())
	}
	if c.Parent().Depth() != 1 {
		t.Fatalf("got parent depth %d, want 1", c.Parent().Depth())
	}
}

func TestChainIsPersistent(t *testing.T) {
	// Pushing never mutates the receiver: an older chain value keeps
	// resolving against its own frames.
	hGive := eff.NewHandler().OnTail(opGive, func([]eff.Value) eff.Value { return 0 })
	hShadow := eff.NewHandler().OnTail(opGive, func([]eff.Value) eff.Value { return 1 })

	root := eff.EmptyChain()
	old := root.Push(eff.NewFrame(hGive, root))
	_ = old.Push(eff.NewFrame(hShadow, old))

	f, ok := old.Find(opGive)
	if !ok {
		t.Fatal("give not found on the old chain")
	}
	if f.Handler() != hGive {
		t.Fatal("old chain observed a later push")
	}
}

func TestChainPopOutOfOrderFaults(t *testing.T) {
	h := eff.NewHandler()
	root := eff.EmptyChain()
	f1 := eff.NewFrame(h, root)
	f2 := eff.NewFrame(h, root)
	c := root.Push(f1).Push(f2)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a frame mismatch fault")
		}
		f, ok := r.(*eff.Fault)
		if !ok {
			t.Fatalf("panicked with %v, want *Fault", r)
		}
		if f.Code != eff.FrameMismatch {
			t.Fatalf("fault code %v, want FrameMismatch", f.Code)
		}
	}()
	c.Pop(f1)
}

func TestFrameBelow(t *testing.T) {
	h := eff.NewHandler()
	root := eff.EmptyChain()
	c := root.Push(eff.NewFrame(h, root))
	f := eff.NewFrame(h, c)
	if f.Below() != c {
		t.Fatal("frame does not record its installation context")
	}
}
