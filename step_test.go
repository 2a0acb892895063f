// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff_test

import (
	"testing"

	"code.hybscloud.com/eff"
)

func TestStepCompletes(t *testing.T) {
	got, susp := eff.Step(eff.Pure(7))
	if susp != nil {
		t.Fatal("pure computation suspended")
	}
	if got != 7 {
		t.Fatalf("got %d, want 7", got)
	}
}

func TestStepSuspendsAndResumes(t *testing.T) {
	body := eff.Bind(eff.PerformAs[int](opGive, "a"), func(x int) eff.Comp[int] {
		return eff.Bind(eff.PerformAs[int](opGive, "b"), func(y int) eff.Comp[int] {
			return eff.Pure(x*10 + y)
		})
	})

	_, susp := eff.Step(body)
	if susp == nil {
		t.Fatal("expected a suspension")
	}
	if susp.Op() != opGive {
		t.Fatalf("suspended on %v, want %s", susp.Op(), opGive.FullName())
	}
	if len(susp.Args()) != 1 || susp.Args()[0] != "a" {
		t.Fatalf("got args %v, want [a]", susp.Args())
	}

	_, susp = susp.Resume(1)
	if susp == nil {
		t.Fatal("expected a second suspension")
	}
	if susp.Args()[0] != "b" {
		t.Fatalf("got args %v, want [b]", susp.Args())
	}

	got, susp := susp.Resume(2)
	if susp != nil {
		t.Fatal("computation did not complete")
	}
	if got != 12 {
		t.Fatalf("got %d, want 12", got)
	}
}

func TestStepHandledOperationsDoNotSuspend(t *testing.T) {
	// Only operations no installed frame handles cross the boundary.
	h := eff.NewHandler().OnTail(opGive, func([]eff.Value) eff.Value { return 5 })
	got, susp := eff.Step(eff.Handle(h, eff.PerformAs[int](opGive)))
	if susp != nil {
		t.Fatal("handled operation crossed the stepping boundary")
	}
	if got != 5 {
		t.Fatalf("got %d, want 5", got)
	}
}

func TestStepInnerHandledOuterSuspends(t *testing.T) {
	// A frame handles its own effect; a different effect inside the
	// same body still suspends to the boundary.
	h := eff.NewHandler().OnTail(opGive, func([]eff.Value) eff.Value { return 3 })
	body := eff.Handle(h, eff.Bind(eff.PerformAs[int](opGive), func(x int) eff.Comp[int] {
		return eff.Bind(eff.PerformAs[int](opPing), func(y int) eff.Comp[int] {
			return eff.Pure(x + y)
		})
	}))

	_, susp := eff.Step(body)
	if susp == nil {
		t.Fatal("expected a suspension on ping")
	}
	if susp.Op() != opPing {
		t.Fatalf("suspended on %v, want %s", susp.Op(), opPing.FullName())
	}
	got, susp := susp.Resume(4)
	if susp != nil {
		t.Fatal("computation did not complete")
	}
	if got != 7 {
		t.Fatalf("got %d, want 7", got)
	}
}

func TestSuspensionResumeTwiceFaults(t *testing.T) {
	_, susp := eff.Step(eff.PerformAs[int](opGive))
	if susp == nil {
		t.Fatal("expected a suspension")
	}
	susp.Resume(1)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a continuation reuse fault")
		}
		f, ok := r.(*eff.Fault)
		if !ok {
			t.Fatalf("panicked with %v, want *Fault", r)
		}
		if f.Code != eff.ContinuationReused {
			t.Fatalf("fault code %v, want ContinuationReused", f.Code)
		}
	}()
	susp.Resume(2)
}

func TestSuspensionTryResume(t *testing.T) {
	_, susp := eff.Step(eff.PerformAs[int](opGive))
	if susp == nil {
		t.Fatal("expected a suspension")
	}

	got, next, ok := susp.TryResume(9)
	if !ok {
		t.Fatal("first TryResume reported consumed")
	}
	if next != nil {
		t.Fatal("computation did not complete")
	}
	if got != 9 {
		t.Fatalf("got %d, want 9", got)
	}

	if _, _, ok = susp.TryResume(10); ok {
		t.Fatal("second TryResume succeeded on a consumed suspension")
	}
}

func TestSuspensionDiscard(t *testing.T) {
	ran := false
	body := eff.Bind(eff.PerformAs[int](opGive), func(x int) eff.Comp[int] {
		ran = true
		return eff.Pure(x)
	})

	_, susp := eff.Step(body)
	if susp == nil {
		t.Fatal("expected a suspension")
	}
	susp.Discard()
	if ran {
		t.Fatal("discarded computation advanced")
	}
	if _, _, ok := susp.TryResume(1); ok {
		t.Fatal("TryResume succeeded after Discard")
	}
}

func TestStepLoop(t *testing.T) {
	// Drive a computation entirely from outside, answering each
	// operation with twice its argument.
	body := eff.Bind(eff.PerformAs[int](opGive, 1), func(a int) eff.Comp[int] {
		return eff.Bind(eff.PerformAs[int](opGive, 2), func(b int) eff.Comp[int] {
			return eff.Bind(eff.PerformAs[int](opGive, 3), func(c int) eff.Comp[int] {
				return eff.Pure(a + b + c)
			})
		})
	})

	result, susp := eff.Step(body)
	steps := 0
	for susp != nil {
		steps++
		result, susp = susp.Resume(susp.Args()[0].(int) * 2)
	}
	if steps != 3 {
		t.Fatalf("got %d suspensions, want 3", steps)
	}
	if result != 12 {
		t.Fatalf("got %d, want 12", result)
	}
}
