package reactor

import (
	"testing"

	"github.com/coreflux/reactor/engine"
	"github.com/stretchr/testify/assert"
)

func TestAlias(t *testing.T) {
	t.Run("reads and writes pass through to the source", func(t *testing.T) {
		g := engine.NewGraph()
		src := NewProperty(g, 1)
		a := NewAlias[int](g, src)

		assert.True(t, a.IsValid())
		assert.Equal(t, 1, a.Value())

		a.SetValue(5)
		assert.Equal(t, 5, src.Value())
		assert.Equal(t, 5, a.Value())
	})

	t.Run("retargeting points the alias at a new source", func(t *testing.T) {
		g := engine.NewGraph()
		first := NewProperty(g, 1)
		second := NewProperty(g, 100)
		a := NewAlias[int](g, first)

		a.Retarget(second)
		assert.Equal(t, 100, a.Value())

		a.SetValue(200)
		assert.Equal(t, 1, first.Value(), "retargeted alias must no longer touch its old source")
		assert.Equal(t, 200, second.Value())
	})

	t.Run("destroyed source makes the alias invalid", func(t *testing.T) {
		g := engine.NewGraph()
		src := NewProperty(g, 1)
		a := NewAlias[int](g, src)

		src.Destroy()
		assert.False(t, a.IsValid())
		assert.Equal(t, 0, a.Value(), "an invalid alias reads the zero value")

		a.SetValue(9) // must be a no-op, not a panic
	})

	t.Run("on change forwards source notifications", func(t *testing.T) {
		g := engine.NewGraph()
		src := NewProperty(g, 1)
		a := NewAlias[int](g, src)

		var gotOld, gotNew int
		calls := 0
		a.OnChange(func(old, new int) {
			calls++
			gotOld, gotNew = old, new
		})

		src.SetValue(7)
		assert.Equal(t, 1, calls)
		assert.Equal(t, 1, gotOld)
		assert.Equal(t, 7, gotNew)
	})

	t.Run("on change handler survives a retarget", func(t *testing.T) {
		g := engine.NewGraph()
		first := NewProperty(g, 1)
		second := NewProperty(g, 100)
		a := NewAlias[int](g, first)

		calls := 0
		var gotNew int
		a.OnChange(func(old, new int) {
			calls++
			gotNew = new
		})

		a.Retarget(second)
		second.SetValue(200)

		assert.Equal(t, 1, calls, "handler installed before Retarget must still fire afterward")
		assert.Equal(t, 200, gotNew)

		// the old source no longer reaches the handler at all.
		first.SetValue(2)
		assert.Equal(t, 1, calls, "a retargeted alias must stop listening to its old source")
	})
}
