package reactor

import "github.com/coreflux/reactor/engine"

// Guard runs immediately before a NotifiedProperty commits a new value,
// with the chance to adjust it in place (clamping, rounding, whatever
// the property's invariant requires). Returning false vetoes the write
// entirely, leaving the property's prior value in place. Modeled on
// QNotifiedProperty's ValueGuardModifiesArgument callback shape in
// original_source/src/corelib/kernel/qproperty.h.
type Guard[T any] func(value *T) bool

// NotifiedProperty is spec.md §4.F #2: a Property that additionally
// runs a change callback synchronously on every committed change,
// after the underlying cell's observers have been notified, and
// optionally validates/adjusts the incoming value first via a Guard.
type NotifiedProperty[T any] struct {
	p     Property[T]
	guard Guard[T]
	// wantsOld selects which of the two QNotifiedProperty callback
	// shapes this instance was built with: a plain func(new T), or a
	// func(old, new T) that also receives the value being replaced.
	wantsOld bool
	onChange ChangeHandler[T]
	onNew    func(T)
}

// NewNotifiedProperty builds a NotifiedProperty whose callback only
// receives the new value, the simpler of QNotifiedProperty's two
// callback shapes.
func NewNotifiedProperty[T any](g *engine.Graph, value T, onChange func(T)) *NotifiedProperty[T] {
	np := &NotifiedProperty[T]{onNew: onChange}
	np.p = *NewProperty(g, value)
	return np
}

// NewNotifiedPropertyWithOld builds a NotifiedProperty whose callback
// receives both the old and new value, QNotifiedProperty's
// CallbackAcceptsOldValue shape.
func NewNotifiedPropertyWithOld[T any](g *engine.Graph, value T, onChange ChangeHandler[T]) *NotifiedProperty[T] {
	np := &NotifiedProperty[T]{wantsOld: true, onChange: onChange}
	np.p = *NewProperty(g, value)
	return np
}

// SetGuard installs a validator run before every commit. Pass nil to
// remove a previously installed guard.
func (np *NotifiedProperty[T]) SetGuard(g Guard[T]) { np.guard = g }

func (np *NotifiedProperty[T]) cell() *engine.Cell { return np.p.cell() }

func (np *NotifiedProperty[T]) Value() T { return np.p.Value() }

// SetValue runs the guard (if any), and on acceptance writes the
// (possibly guard-adjusted) value and then fires the change callback,
// once the write has notified the cell's other observers, matching
// QNotifiedProperty's ordering.
func (np *NotifiedProperty[T]) SetValue(value T) {
	old := np.p.Value()
	if np.guard != nil && !np.guard(&value) {
		return
	}
	np.p.SetValue(value)
	np.fireOnChange(old, value)
}

// SetBinding installs fn as this property's binding. Each recomputed
// value passes through the guard (if any), and the notified callback
// still fires on every resulting change, same as a direct SetValue.
func (np *NotifiedProperty[T]) SetBinding(fn Expr[T]) {
	wrapped := func() (T, error) {
		old, _ := np.cell().Peek().(T)
		v, err := fn()
		if err != nil {
			var zero T
			return zero, err
		}
		if np.guard != nil && !np.guard(&v) {
			return old, nil
		}
		np.fireOnChange(old, v)
		return v, nil
	}
	np.p.SetBinding(wrapped)
}

// fireOnChange only invokes the owner callback when the value actually
// changed, mirroring QNotifiedProperty::setValue's
// setValueAndReturnTrueIfChanged gate — a write or recomputed binding
// that lands on an equal value dispatches zero observers, spec.md §8.
func (np *NotifiedProperty[T]) fireOnChange(old, new T) {
	if engine.ValuesEqual(old, new) {
		return
	}
	if np.wantsOld {
		if np.onChange != nil {
			np.onChange(old, new)
		}
		return
	}
	if np.onNew != nil {
		np.onNew(new)
	}
}

func (np *NotifiedProperty[T]) HasBinding() bool          { return np.p.HasBinding() }
func (np *NotifiedProperty[T]) Err() *engine.BindingError { return np.p.Err() }
func (np *NotifiedProperty[T]) Destroy()                  { np.p.Destroy() }

// OnChange additionally registers a plain observer-style handler on the
// underlying cell, same as Property.OnChange. On SetValue it runs during
// the write's own notification, so before the notified callback; a
// cell's handlers run newest-first, so it also runs before any handler
// installed earlier.
func (np *NotifiedProperty[T]) OnChange(fn ChangeHandler[T]) *engine.ObserverHandle {
	return np.p.OnChange(fn)
}
