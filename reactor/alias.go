package reactor

import "github.com/coreflux/reactor/engine"

// Alias is spec.md §4.F #3: a read/write view onto another property's
// cell, with no storage of its own. Retargeting is supported: handlers
// installed via OnChange attach once, to Alias's own proxy cell, and
// keep firing across any number of Retarget calls because only the
// forwarding edge (source -> proxy) is swapped, never the handler
// itself.
type Alias[T any] struct {
	source *engine.Cell
	proxy  *engine.Cell

	// forward rides engine's ForwardAlias observer kind (see
	// engine.Cell.AddAliasForward) so proxy's own observer list — where
	// OnChange installs its handlers — runs whenever source notifies,
	// without proxy ever storing a live copy of source's value itself.
	// Its Attached() also doubles as the liveness check IsValid needs:
	// Cell.Destroy unlinks every observer on a cell, this one included.
	forward *engine.ObserverHandle
}

// NewAlias builds an Alias on graph g, currently pointing at source.
// Pass a nil source to start with no live target.
func NewAlias[T any](g *engine.Graph, source Bindable) *Alias[T] {
	var zero T
	a := &Alias[T]{proxy: g.NewCellOfType(engine.TypeOfT[T](), zero)}
	a.Retarget(source)
	return a
}

// Retarget points this alias at a new source, re-pointing the forward
// edge rather than touching any handler already installed via OnChange.
func (a *Alias[T]) Retarget(source Bindable) {
	if a.forward != nil {
		a.forward.Detach()
		a.forward = nil
	}
	if source == nil {
		a.source = nil
		return
	}
	a.source = source.cell()
	a.forward = a.source.AddAliasForward(a.proxy)
}

// IsValid reports whether the aliased source is still live: it has a
// source at all, and that source's cell has not since been destroyed.
func (a *Alias[T]) IsValid() bool {
	return a.source != nil && a.forward.Attached()
}

// Value reads through to the source's current value, or T's zero value
// if the alias has no live source.
func (a *Alias[T]) Value() T {
	if !a.IsValid() {
		var zero T
		return zero
	}
	v, _ := a.source.Read().(T)
	return v
}

// SetValue writes through to the source cell. It is a no-op if the
// alias has no live source, per spec.md's "writes are no-ops" rule for
// a dangling alias.
func (a *Alias[T]) SetValue(value T) {
	if !a.IsValid() {
		return
	}
	a.source.Write(value)
}

// OnChange installs fn on the alias's proxy cell, which fires whenever
// the current source notifies, by whatever path (direct write or
// recomputed binding) triggers that — and keeps firing after a
// Retarget, since the handler lives on proxy, not on source.
func (a *Alias[T]) OnChange(fn ChangeHandler[T]) *engine.ObserverHandle {
	old := a.Value()
	return a.proxy.AddChangeHandler(func() {
		cur := a.Value()
		prev := old
		old = cur
		fn(prev, cur)
	})
}
