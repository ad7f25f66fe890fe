package engine

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBindingRefcounting(t *testing.T) {
	t.Run("last release unlinks dependencies", func(t *testing.T) {
		g := NewGraph()
		src := g.NewCell(1)
		c := g.NewCell(0)
		b := g.NewBinding(TypeOf(0), SourceLocation{}, func() (any, error) {
			return src.Read().(int) + 1, nil
		})
		c.SetBinding(b)
		c.Read()
		assert.Equal(t, 1, src.ObserverCount())

		b.Retain()
		assert.Equal(t, int32(2), b.refs)

		b.Release()
		assert.Equal(t, 1, src.ObserverCount(), "still one live reference, dependency stays linked")

		c.TakeBinding()
		b.Release()
		assert.Equal(t, 0, src.ObserverCount())
	})
}

func TestBindingEvaluationError(t *testing.T) {
	g := NewGraph()
	c := g.NewCell(42)
	b := g.NewBinding(TypeOf(0), SourceLocation{}, func() (any, error) {
		return 0, errors.New("boom")
	})
	c.SetBinding(b)

	got := c.Read()
	assert.Equal(t, 42, got, "a failed evaluation must leave the prior value in place")
	assert.NotNil(t, c.Err())
	assert.Equal(t, KindEvaluationError, c.Err().Kind)
	assert.Equal(t, "boom", c.Err().Description)
}

func TestBindingErrorUnwrapsEvaluatorCause(t *testing.T) {
	sentinel := errors.New("sentinel failure")
	g := NewGraph()
	c := g.NewCell(0)
	b := g.NewBinding(TypeOf(0), SourceLocation{}, func() (any, error) {
		return 0, fmt.Errorf("evaluating: %w", sentinel)
	})
	c.SetBinding(b)
	c.Read()

	assert.True(t, errors.Is(c.Err(), sentinel), "BindingError must unwrap to the evaluator's own error")
}

/*
	   src
	  /   \
	 a     b
	  \   /
	    c
*/
func TestDiamondDependencyNotifiesOnce(t *testing.T) {
	g := NewGraph()
	src := g.NewCell(1)

	a := g.NewCell(0)
	a.SetBinding(g.NewBinding(TypeOf(0), SourceLocation{}, func() (any, error) {
		return src.Read().(int) + 1, nil
	}))

	b := g.NewCell(0)
	b.SetBinding(g.NewBinding(TypeOf(0), SourceLocation{}, func() (any, error) {
		return src.Read().(int) * 10, nil
	}))

	c := g.NewCell(0)
	c.SetBinding(g.NewBinding(TypeOf(0), SourceLocation{}, func() (any, error) {
		return a.Read().(int) + b.Read().(int), nil
	}))
	assert.Equal(t, 12, c.Read())

	calls := 0
	c.AddChangeHandler(func() { calls++ })

	// c depends on both a and b, both of which depend on src. src's
	// write must mark c dirty exactly once, not once per path.
	src.Write(2)
	assert.Equal(t, 23, c.Read())
	assert.Equal(t, 1, calls)
}
