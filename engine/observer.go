package engine

// observerTag selects an observer node's notification style. The set is
// closed: these are the only three variants spec.md's Observer node
// admits.
type observerTag int

const (
	tagMarkBindingDirty observerTag = iota
	tagInvokeChangeHandler
	tagForwardAlias
)

// observer is an intrusive node in a cell's doubly-linked observer
// list. prev is a pointer-to-pointer (either the list's head slot or
// the preceding node's next field) so a node can unlink itself in O(1)
// without knowing which head it hangs off of. Adapted from the
// prevSub/nextSub link idiom in alien/types.go, simplified to a single
// node-per-edge list since this engine doesn't need alien's push-pull
// flag propagation.
type observer struct {
	tag observerTag

	binding    *Binding // tagMarkBindingDirty
	handler    func()   // tagInvokeChangeHandler
	alias      *Cell    // tagForwardAlias
	sourceCell *Cell    // tagMarkBindingDirty: the cell this observer was installed on, for dedup

	prev **observer
	next *observer
}

func insertObserver(head **observer, o *observer) {
	o.next = *head
	if o.next != nil {
		o.next.prev = &o.next
	}
	o.prev = head
	*head = o
}

// unlink removes o from whatever list currently holds it. Safe to call
// more than once, or on a node whose list owner has already been torn
// down: the second call is a no-op because prev is cleared.
func (o *observer) unlink() {
	if o == nil || o.prev == nil {
		return
	}
	*o.prev = o.next
	if o.next != nil {
		o.next.prev = o.prev
	}
	o.prev = nil
	o.next = nil
}

func (o *observer) linked() bool {
	return o != nil && o.prev != nil
}

// ObserverHandle is the public handle to one installed observer node,
// used by façades (change handlers, alias forwarding) that need to
// detach later without reaching into the engine package's internals.
type ObserverHandle struct {
	node *observer
}

// Detach unlinks the observer. Safe to call multiple times.
func (h *ObserverHandle) Detach() {
	if h == nil {
		return
	}
	h.node.unlink()
}

// Attached reports whether the observer is still linked into its cell's
// list. It goes false once the cell it was attached to is destroyed, or
// once Detach has been called.
func (h *ObserverHandle) Attached() bool {
	return h != nil && h.node.linked()
}
