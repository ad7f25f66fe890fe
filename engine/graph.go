package engine

import mapset "github.com/deckarep/golang-set/v2"

// Graph owns one EvaluationContext: a stack recording which Binding is
// currently evaluating, used to attribute automatic dependency capture
// (spec.md §4.D). A Graph is not safe for concurrent use from more than
// one goroutine — the engine is single-owner by design (spec.md §5) —
// so, unlike rocket.ReactiveSystem in the teacher package, it carries
// no mutex. Callers that want isolated graphs (one per test, one per
// logical owner) construct separate *Graph values instead of sharing
// package-level state.
type Graph struct {
	evalStack []*Binding
}

func NewGraph() *Graph {
	return &Graph{}
}

func (g *Graph) push(b *Binding) {
	g.evalStack = append(g.evalStack, b)
}

func (g *Graph) pop() {
	g.evalStack = g.evalStack[:len(g.evalStack)-1]
}

// CurrentBinding peeks the top of the evaluation stack, or nil if no
// Binding is currently evaluating on this graph.
func (g *Graph) CurrentBinding() *Binding {
	if len(g.evalStack) == 0 {
		return nil
	}
	return g.evalStack[len(g.evalStack)-1]
}

func (g *Graph) NewCell(value any) *Cell {
	return &Cell{graph: g, value: value, valueType: TypeOf(value)}
}

// NewCellOfType is used by typed façades, which know T's tag at compile
// time and don't want TypeOf's reflect-on-the-zero-value indirection on
// every construction.
func (g *Graph) NewCellOfType(valueType Type, value any) *Cell {
	return &Cell{graph: g, value: value, valueType: valueType}
}

func (g *Graph) NewBinding(valueType Type, loc SourceLocation, fn Evaluator) *Binding {
	return &Binding{
		graph:        g,
		valueType:    valueType,
		loc:          loc,
		evaluator:    fn,
		refs:         1,
		dependencies: mapset.NewThreadUnsafeSet[*observer](),
	}
}
