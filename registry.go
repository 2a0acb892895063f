// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

import (
	"errors"
	"fmt"
)

// Registry errors. These are ordinary errors returned to the upstream
// evaluator during program setup, unlike runtime [Fault] values.
var (
	ErrDuplicateEffect  = errors.New("eff: duplicate effect")
	ErrUnknownEffect    = errors.New("eff: unknown effect")
	ErrUnknownOperation = errors.New("eff: unknown operation")
	ErrRegistryFrozen   = errors.New("eff: registry frozen")
)

// OpDecl declares one operation of an effect kind: its name, the label
// of its result shape, and the labels of its parameter shapes. The
// labels are metadata for the upstream type/effect checker; the runtime
// itself moves arguments and results as [Value].
type OpDecl struct {
	Name   string
	Result string
	Params []string
}

// Op constructs an operation declaration.
func Op(name, result string, params ...string) OpDecl {
	return OpDecl{Name: name, Result: result, Params: params}
}

// EffectKind is the identity of a named effect. It owns an ordered set
// of operation declarations and is immutable once declared.
type EffectKind struct {
	name     string
	tailOnly bool
	ops      []*Operation
	byName   map[string]*Operation
}

// Name returns the declared effect name.
func (k *EffectKind) Name() string { return k.name }

// TailOnly reports whether the kind was declared tail-resumptive-only.
func (k *EffectKind) TailOnly() bool { return k.tailOnly }

// Ops returns the kind's operations in declaration order.
// The returned slice must not be modified.
func (k *EffectKind) Ops() []*Operation { return k.ops }

// Op looks up an operation of this kind by name.
func (k *EffectKind) Op(name string) (*Operation, bool) {
	o, ok := k.byName[name]
	return o, ok
}

// MustOp looks up an operation by name and panics if it does not exist.
// Intended for package-level wiring of statically known operations.
func (k *EffectKind) MustOp(name string) *Operation {
	o, ok := k.byName[name]
	if !ok {
		panic(fmt.Sprintf("eff: effect %q has no operation %q", k.name, name))
	}
	return o
}

// Operation is a named, typed call point within an effect. It has no
// intrinsic implementation: performing it yields control to a handler.
// Operations are compared by identity, so two registries can declare
// effects of the same name without their operations colliding.
type Operation struct {
	kind   *EffectKind
	name   string
	result string
	params []string
	index  int
}

// Kind returns the effect kind that owns the operation.
func (o *Operation) Kind() *EffectKind { return o.kind }

// Name returns the operation name within its effect.
func (o *Operation) Name() string { return o.name }

// FullName returns "effect.operation", the form used in fault messages.
func (o *Operation) FullName() string { return o.kind.name + "." + o.name }

// Result returns the declared result label.
func (o *Operation) Result() string { return o.result }

// Params returns the declared parameter labels.
// The returned slice must not be modified.
func (o *Operation) Params() []string { return o.params }

// Registry is the static table of effect kinds. It is populated while
// the evaluator lowers effect declarations and is read-only afterward;
// call [Registry.Freeze] once setup is complete.
//
// A Registry is a declaration scope: effect names must be unique within
// one registry, not across registries.
type Registry struct {
	effects map[string]*EffectKind
	frozen  bool
}

// NewRegistry creates an empty effect registry.
func NewRegistry() *Registry {
	return &Registry{effects: make(map[string]*EffectKind)}
}

// Declare registers an effect kind with the given operations.
// Fails with [ErrDuplicateEffect] if the name is already declared in
// this registry, and with [ErrRegistryFrozen] after [Registry.Freeze].
func (r *Registry) Declare(name string, ops ...OpDecl) (*EffectKind, error) {
	return r.declare(name, false, ops)
}

// DeclareTailOnly registers a tail-resumptive-only effect kind.
// Installing a general (continuation-capturing) clause for any of its
// operations is rejected ahead of execution; see [Handler.On].
func (r *Registry) DeclareTailOnly(name string, ops ...OpDecl) (*EffectKind, error) {
	return r.declare(name, true, ops)
}

func (r *Registry) declare(name string, tailOnly bool, ops []OpDecl) (*EffectKind, error) {
	if r.frozen {
		return nil, fmt.Errorf("%w: cannot declare %q", ErrRegistryFrozen, name)
	}
	if _, ok := r.effects[name]; ok {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateEffect, name)
	}
	k := &EffectKind{
		name:     name,
		tailOnly: tailOnly,
		byName:   make(map[string]*Operation, len(ops)),
	}
	for i, d := range ops {
		if _, ok := k.byName[d.Name]; ok {
			return nil, fmt.Errorf("%w: operation %q in effect %q", ErrDuplicateEffect, d.Name, name)
		}
		o := &Operation{
			kind:   k,
			name:   d.Name,
			result: d.Result,
			params: d.Params,
			index:  i,
		}
		k.ops = append(k.ops, o)
		k.byName[d.Name] = o
	}
	r.effects[name] = k
	return k, nil
}

// Effect looks up a declared effect kind by name.
func (r *Registry) Effect(name string) (*EffectKind, bool) {
	k, ok := r.effects[name]
	return k, ok
}

// Operation resolves "effect, operation" to the declared signature.
func (r *Registry) Operation(effect, op string) (*Operation, error) {
	k, ok := r.effects[effect]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEffect, effect)
	}
	o, ok := k.byName[op]
	if !ok {
		return nil, fmt.Errorf("%w: %q in effect %q", ErrUnknownOperation, op, effect)
	}
	return o, nil
}

// Freeze marks the registry read-only. Subsequent Declare calls fail
// with [ErrRegistryFrozen]. Freezing is idempotent.
func (r *Registry) Freeze() { r.frozen = true }

// mustDeclare wires a package-level effect kind and panics on error.
// Used for the standard effects declared by this package.
func mustDeclare(r *Registry, name string, tailOnly bool, ops ...OpDecl) *EffectKind {
	var (
		k   *EffectKind
		err error
	)
	if tailOnly {
		k, err = r.DeclareTailOnly(name, ops...)
	} else {
		k, err = r.Declare(name, ops...)
	}
	if err != nil {
		panic(err)
	}
	return k
}
