package engine

// Cell is storage for one reactive value plus the engine state needed
// to make it reactive: an optional owning Binding, a dirty flag, and
// the head of its observer list. Typed façades in package reactor wrap
// a *Cell per property.
type Cell struct {
	graph     *Graph
	value     any
	valueType Type
	binding   *Binding
	dirty     bool
	observers *observer
}

func (c *Cell) Graph() *Graph     { return c.graph }
func (c *Cell) ValueType() Type   { return c.valueType }
func (c *Cell) HasBinding() bool  { return c.binding != nil }
func (c *Cell) Binding() *Binding { return c.binding }
func (c *Cell) IsDirty() bool     { return c.dirty }

// ObserverCount reports how many observer nodes (of any tag) are
// currently installed on this cell. Diagnostic only: walks the list.
func (c *Cell) ObserverCount() int {
	n := 0
	for o := c.observers; o != nil; o = o.next {
		n++
	}
	return n
}

func (c *Cell) Err() *BindingError {
	if c.binding == nil {
		return nil
	}
	return c.binding.Err()
}

// Read evaluates a dirty binding if one is present, registers this
// cell as a dependency of whichever binding is currently evaluating on
// the graph, and returns the current value.
func (c *Cell) Read() any {
	if c.binding != nil && c.dirty {
		c.binding.Evaluate(c)
	}
	if cur := c.graph.CurrentBinding(); cur != nil && cur != c.binding {
		c.captureDependency(cur)
	}
	return c.value
}

// Peek returns the cell's current stored value without triggering
// lazy recomputation of a dirty binding and without registering a
// dependency. Façades use it to read a "before" value from inside a
// binding's own evaluator, where a normal Read would detect a binding
// loop (correctly — reading your own cell mid-evaluation is exactly
// that).
func (c *Cell) Peek() any { return c.value }

// captureDependency installs a MarkBindingDirty observer on c pointing
// at b, unless one already exists for this (b, c) pair.
func (c *Cell) captureDependency(b *Binding) {
	for existing := range b.dependencies.Iter() {
		if existing.sourceCell == c {
			return
		}
	}
	o := &observer{tag: tagMarkBindingDirty, binding: b, sourceCell: c}
	insertObserver(&c.observers, o)
	b.dependencies.Add(o)
}

// Write drops any binding, stores v, and notifies observers if the
// value actually changed. A write to a cell with a binding always ends
// the binding's ownership of the cell, per spec.md §4.A.
func (c *Cell) Write(v any) {
	if c.binding != nil {
		c.dropBinding()
	}
	c.dirty = false
	old := c.value
	c.value = v
	if valuesEqual(old, v) {
		return
	}
	c.notifyObservers()
}

// SetBinding installs b, unlinking any prior binding's dependencies
// first. It fails without changing state if b's value type does not
// match the cell's. It does not evaluate eagerly: the cell is marked
// dirty and its existing observers are run so downstream cells notice
// there is something new to (lazily) read.
func (c *Cell) SetBinding(b *Binding) (prev *Binding, ok bool) {
	if b.valueType != c.valueType {
		return nil, false
	}
	prev = c.binding
	if prev != nil {
		prev.ownerCell = nil
		prev.Release()
	}
	b.ownerCell = c
	c.binding = b
	c.dirty = true
	c.notifyObservers()
	return prev, true
}

// TakeBinding detaches and returns the current binding without
// releasing the cell's reference to it: ownership transfers to the
// caller, who may later SetBinding it back (spec.md's take/set
// round-trip law).
func (c *Cell) TakeBinding() *Binding {
	b := c.binding
	if b == nil {
		return nil
	}
	c.binding = nil
	c.dirty = false
	b.ownerCell = nil
	return b
}

func (c *Cell) dropBinding() {
	b := c.binding
	c.binding = nil
	c.dirty = false
	b.ownerCell = nil
	b.Release()
}

// AddChangeHandler installs an InvokeChangeHandler observer that calls
// fn whenever this cell's value changes.
func (c *Cell) AddChangeHandler(fn func()) *ObserverHandle {
	o := &observer{tag: tagInvokeChangeHandler, handler: fn}
	insertObserver(&c.observers, o)
	return &ObserverHandle{node: o}
}

// AddAliasForward installs a ForwardAlias observer that, on notify,
// recurses into target's own observer list. Package reactor uses this
// to let an Alias's handlers ride on the current source cell's
// notifications without duplicating storage.
func (c *Cell) AddAliasForward(target *Cell) *ObserverHandle {
	o := &observer{tag: tagForwardAlias, alias: target}
	insertObserver(&c.observers, o)
	return &ObserverHandle{node: o}
}

// notifyObservers walks the observer list depth-first, capturing each
// node's next pointer before dispatching so a handler may unlink
// itself (or anything else already in the list) without corrupting the
// walk. Nodes inserted during the walk are not visited by it (spec.md's
// resolved Open Question on snapshot semantics).
//
// The MarkBindingDirty branch only recurses into a dependent cell that
// is not already dirty. A genuine binding cycle is already refused
// earlier, during evaluation, by Binding.evaluating; this guard instead
// keeps a diamond-shaped dependency graph (two cells depending on one
// source, a third depending on both) from notifying that third cell's
// own observers twice for a single source write. It does not gate the
// other two branches, so a handler that writes back into its own source
// cell still runs once per write, including writes it triggers itself.
func (c *Cell) notifyObservers() {
	o := c.observers
	for o != nil {
		next := o.next
		switch o.tag {
		case tagMarkBindingDirty:
			if dep := o.binding; dep.ownerCell != nil && !dep.ownerCell.dirty {
				dep.ownerCell.dirty = true
				dep.ownerCell.notifyObservers()
			}
		case tagInvokeChangeHandler:
			o.handler()
		case tagForwardAlias:
			if o.alias != nil {
				o.alias.notifyObservers()
			}
		}
		o = next
	}
}

// Destroy tears the cell down: it releases its own binding (unlinking
// that binding's upstream dependency observers) and unlinks every
// observer still pointing at this cell, so any later operation through
// an ObserverHandle that referenced it becomes an inert no-op.
func (c *Cell) Destroy() {
	if c.binding != nil {
		c.binding.ownerCell = nil
		c.binding.Release()
		c.binding = nil
	}
	o := c.observers
	for o != nil {
		next := o.next
		o.unlink()
		o = next
	}
	c.observers = nil
}
