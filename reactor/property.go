// Package reactor provides typed façades over the untyped core in
// package engine: Property[T], NotifiedProperty[T], Alias[T], and
// ChangeHandler[T]. Property and NotifiedProperty each wrap a single
// *engine.Cell, Alias forwards to another property's cell, and
// ChangeHandler is the callback shape their OnChange methods take. The
// façades narrow the engine's any-typed API back down to T via type
// assertions, the same layering
// pkg/flimsy puts over its own untyped signal implementation.
package reactor

import "github.com/coreflux/reactor/engine"

// Bindable is satisfied by the typed façades that own a cell,
// Property[T] and NotifiedProperty[T] (and by Named), so an Alias can
// target either and DumpGraph/Explain can inspect either. Alias[T]
// itself does not implement it.
type Bindable interface {
	cell() *engine.Cell
}

// Property is the plain reactive cell façade of spec.md §4.F #1: a
// value with an optional lazily-evaluated binding.
type Property[T any] struct {
	c *engine.Cell
}

// NewProperty constructs a Property holding value on graph g.
func NewProperty[T any](g *engine.Graph, value T) *Property[T] {
	return &Property[T]{c: g.NewCellOfType(engine.TypeOfT[T](), value)}
}

func (p *Property[T]) cell() *engine.Cell { return p.c }

// Value reads the current value, evaluating a dirty binding first if
// one is installed, and registers this property as a dependency of
// whatever binding is currently evaluating.
func (p *Property[T]) Value() T {
	v, _ := p.c.Read().(T)
	return v
}

// SetValue writes a plain value, dropping any installed binding.
func (p *Property[T]) SetValue(value T) {
	p.c.Write(value)
}

// Expr computes T from other Bindable properties. A typical call reads
// one or more dependencies via their Value() method inside fn; the
// engine records each such read as a dependency automatically.
type Expr[T any] func() (T, error)

// SetBinding installs fn as this property's binding. The binding is not
// evaluated eagerly: the property is marked dirty and its observers are
// run so anything already depending on it notices there is something
// new to lazily read.
func (p *Property[T]) SetBinding(fn Expr[T]) {
	loc := engine.CaptureSourceLocation(1)
	b := p.c.Graph().NewBinding(engine.TypeOfT[T](), loc, func() (any, error) {
		v, err := fn()
		return v, err
	})
	p.c.SetBinding(b)
}

// HasBinding reports whether this property currently owns a binding.
func (p *Property[T]) HasBinding() bool { return p.c.HasBinding() }

// Err returns the last BindingError recorded while evaluating this
// property's binding, or nil if it evaluated cleanly or has no binding.
func (p *Property[T]) Err() *engine.BindingError { return p.c.Err() }

// TakenBinding is an opaque handle returned by TakeBinding, round-tripped
// back into SetTakenBinding on the same or a different Property[T].
type TakenBinding[T any] struct {
	b *engine.Binding
}

// TakeBinding detaches this property's binding without releasing it,
// so it can be reinstalled later via SetTakenBinding — on this property
// or, if the value types agree, a different one.
func (p *Property[T]) TakeBinding() *TakenBinding[T] {
	b := p.c.TakeBinding()
	if b == nil {
		return nil
	}
	return &TakenBinding[T]{b: b}
}

// SetTakenBinding reinstalls a binding obtained from TakeBinding. It
// panics if tb is nil; callers should check TakeBinding's result first.
func (p *Property[T]) SetTakenBinding(tb *TakenBinding[T]) {
	if tb == nil {
		panic("reactor: SetTakenBinding called with nil binding")
	}
	p.c.SetBinding(tb.b)
}

// OnChange registers fn to run whenever this property's value changes,
// whether from a direct SetValue or a recomputed binding. It returns a
// handle the caller uses to detach the handler later.
func (p *Property[T]) OnChange(fn ChangeHandler[T]) *engine.ObserverHandle {
	old := p.Value()
	return p.c.AddChangeHandler(func() {
		cur := p.Value()
		prev := old
		old = cur
		fn(prev, cur)
	})
}

// OnValueChanged registers fn to run whenever this property's value
// changes, with no arguments — the lightweight notifier shape spec.md
// §4.F #1 calls onValueChanged, as distinct from OnChange's (old, new)
// shape.
func (p *Property[T]) OnValueChanged(fn func()) *engine.ObserverHandle {
	return p.c.AddChangeHandler(fn)
}

// Subscribe calls fn once immediately with the current value, then
// installs it as a change handler so it runs again on every subsequent
// change, spec.md §4.F #1's subscribe semantics.
func (p *Property[T]) Subscribe(fn func(T)) *engine.ObserverHandle {
	fn(p.Value())
	return p.c.AddChangeHandler(func() {
		fn(p.Value())
	})
}

// Destroy releases this property's binding (if any) and detaches every
// observer installed on it, including onChange handlers and any Alias
// currently forwarding through it.
func (p *Property[T]) Destroy() {
	p.c.Destroy()
}
