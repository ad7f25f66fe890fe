package engine

import mapset "github.com/deckarep/golang-set/v2"

// Evaluator computes a Binding's fresh value. It must not write into
// any cell directly; Binding.Evaluate owns the compare-and-store step
// so that a detected binding loop can discard a computation built on a
// stale self-read instead of committing it.
type Evaluator func() (value any, err error)

// Binding is a reference-counted, shareable expression object. Go has
// no destructors, so the refcounting spec.md describes ("retained as
// long as a cell references it or an external holder keeps it") is
// explicit here via Retain/Release rather than automatic: Release
// unlinks the binding's dependency observers once the last reference
// drops, the same cleanup spec.md §3 ties to destruction.
type Binding struct {
	graph     *Graph
	evaluator Evaluator
	valueType Type

	// dependencies holds every Observer this Binding installed on an
	// upstream cell while it last evaluated.
	dependencies mapset.Set[*observer]

	err        *BindingError
	evaluating bool
	loc        SourceLocation
	refs       int32

	// ownerCell is the single cell this Binding currently writes into,
	// or nil if it has been taken/dropped.
	ownerCell *Cell
}

func (b *Binding) ValueType() Type               { return b.valueType }
func (b *Binding) SourceLocation() SourceLocation { return b.loc }
func (b *Binding) Err() *BindingError             { return b.err }

func (b *Binding) Retain() { b.refs++ }

// Release drops one reference. At zero references the binding unlinks
// every dependency Observer it installed upstream, the same teardown
// spec.md assigns to Binding destruction.
func (b *Binding) Release() {
	b.refs--
	if b.refs <= 0 {
		b.unlinkDependencies()
	}
}

func (b *Binding) unlinkDependencies() {
	for o := range b.dependencies.Iter() {
		o.unlink()
	}
	b.dependencies.Clear()
}

// Evaluate runs the user evaluator, capturing dependencies via the
// graph's EvaluationContext, and commits the result into target. It
// implements spec.md §4.B step by step, including loop detection and
// the error-sticky contract of §7.
func (b *Binding) Evaluate(target *Cell) (changed bool) {
	if b.evaluating {
		b.err = &BindingError{
			Kind:        KindBindingLoop,
			Description: "binding at " + b.loc.String() + " depends on its own cell",
		}
		return false
	}

	b.err = nil
	b.graph.push(b)
	b.evaluating = true
	b.unlinkDependencies()
	b.dependencies = mapset.NewThreadUnsafeSet[*observer]()

	newValue, evalErr := b.evaluator()

	b.evaluating = false
	b.graph.pop()
	target.dirty = false

	// A nested Evaluate call on this same Binding (the self- or
	// mutual-reference case) may have recorded a loop error while
	// evaluator() was still running, using a stale read for whatever
	// it ultimately computed. That computation is not trustworthy:
	// discard it and keep target's last-known-good value.
	if b.err != nil {
		return false
	}

	if evalErr != nil {
		b.err = &BindingError{Kind: KindEvaluationError, Description: evalErr.Error(), Cause: evalErr}
		return false
	}

	old := target.value
	target.value = newValue
	return !valuesEqual(old, newValue)
}
