// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff_test

import (
	"testing"

	"code.hybscloud.com/eff"
)

func TestRunStateFailSuccess(t *testing.T) {
	body := eff.Then(eff.Put(7), eff.Bind(eff.Get(), func(s eff.Value) eff.Comp[int] {
		return eff.Pure(s.(int) * 2)
	}))

	r, final, err := eff.RunStateFail[string](0, body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, ok := r.GetRight()
	if !ok {
		t.Fatal("expected Right")
	}
	if v != 14 {
		t.Fatalf("got %d, want 14", v)
	}
	if final != 7 {
		t.Fatalf("got final state %v, want 7", final)
	}
}

func TestStateSurvivesThrow(t *testing.T) {
	// Puts before the throw are visible in the final state even though
	// the computation aborted.
	body := eff.Then(eff.Put(3),
		eff.Then(eff.Throw[struct{}]("abort"),
			eff.Put(99)))

	r, final, err := eff.RunStateFail[string, struct{}](0, body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e, ok := r.GetLeft()
	if !ok {
		t.Fatal("expected Left")
	}
	if e != "abort" {
		t.Fatalf("got %q, want %q", e, "abort")
	}
	if final != 3 {
		t.Fatalf("got final state %v, want 3", final)
	}
}

func TestCombinedFrameDispatchesBothKinds(t *testing.T) {
	// One installation answers operations of two effect kinds; no
	// second frame is involved.
	h, get := eff.StateFailHandler[string, int](10)
	body := eff.Bind(eff.Get(), func(s eff.Value) eff.Comp[int] {
		if s.(int) > 5 {
			return eff.Throw[int]("too big")
		}
		return eff.Pure(s.(int))
	})

	v, err := eff.Run(eff.Handle(h, eff.Map(body, eff.Right[string, int])))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e, ok := v.GetLeft()
	if !ok {
		t.Fatal("expected Left")
	}
	if e != "too big" {
		t.Fatalf("got %q, want %q", e, "too big")
	}
	if get() != 10 {
		t.Fatalf("got state %v, want 10", get())
	}
}

func TestRunStateLog(t *testing.T) {
	step := eff.Bind(eff.Modify(func(v eff.Value) eff.Value { return v.(int) + 1 }), func(s eff.Value) eff.Comp[struct{}] {
		return eff.Emit(s)
	})
	body := eff.Then(step, eff.Then(step, eff.Get()))

	got, final, entries, err := eff.RunStateLog(0, body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 2 {
		t.Fatalf("got %v, want 2", got)
	}
	if final != 2 {
		t.Fatalf("got final state %v, want 2", final)
	}
	if len(entries) != 2 || entries[0] != 1 || entries[1] != 2 {
		t.Fatalf("got entries %v, want [1 2]", entries)
	}
}
