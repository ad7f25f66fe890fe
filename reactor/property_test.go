package reactor

import (
	"testing"

	"github.com/coreflux/reactor/engine"
	"github.com/stretchr/testify/assert"
)

func TestProperty(t *testing.T) {
	t.Run("plain value round-trips", func(t *testing.T) {
		g := engine.NewGraph()
		p := NewProperty(g, 7)
		assert.Equal(t, 7, p.Value())

		p.SetValue(9)
		assert.Equal(t, 9, p.Value())
	})

	/*
	   width  height
	      \   /
	       area
	*/
	t.Run("binding recomputes lazily from dependencies", func(t *testing.T) {
		g := engine.NewGraph()
		width := NewProperty(g, 3)
		height := NewProperty(g, 4)

		callCount := 0
		area := NewProperty(g, 0)
		area.SetBinding(func() (int, error) {
			callCount++
			return width.Value() * height.Value(), nil
		})

		assert.Equal(t, 12, area.Value())
		assert.Equal(t, 1, callCount)

		area.Value()
		assert.Equal(t, 1, callCount, "a clean binding must not recompute on repeated reads")

		width.SetValue(5)
		assert.Equal(t, 20, area.Value())
		assert.Equal(t, 2, callCount)
	})

	t.Run("set value drops a binding", func(t *testing.T) {
		g := engine.NewGraph()
		src := NewProperty(g, 1)
		p := NewProperty(g, 0)
		p.SetBinding(func() (int, error) { return src.Value() + 1, nil })
		assert.Equal(t, 2, p.Value())

		p.SetValue(100)
		assert.False(t, p.HasBinding())

		src.SetValue(9)
		assert.Equal(t, 100, p.Value())
	})

	t.Run("take and set binding round-trips across properties", func(t *testing.T) {
		g := engine.NewGraph()
		src := NewProperty(g, 1)
		a := NewProperty(g, 0)
		a.SetBinding(func() (int, error) { return src.Value() + 1, nil })
		assert.Equal(t, 2, a.Value())

		taken := a.TakeBinding()
		assert.False(t, a.HasBinding())

		b := NewProperty(g, 0)
		b.SetTakenBinding(taken)
		src.SetValue(9)
		assert.Equal(t, 10, b.Value())
	})

	t.Run("self-referencing binding reports a loop and keeps the prior value", func(t *testing.T) {
		g := engine.NewGraph()
		p := NewProperty(g, 5)
		p.SetBinding(func() (int, error) { return p.Value() + 1, nil })

		assert.Equal(t, 5, p.Value())
		assert.NotNil(t, p.Err())
		assert.Equal(t, engine.KindBindingLoop, p.Err().Kind)
	})

	t.Run("on change reports old and new values", func(t *testing.T) {
		g := engine.NewGraph()
		p := NewProperty(g, 1)

		var gotOld, gotNew int
		calls := 0
		p.OnChange(func(old, new int) {
			calls++
			gotOld, gotNew = old, new
		})

		p.SetValue(2)
		assert.Equal(t, 1, calls)
		assert.Equal(t, 1, gotOld)
		assert.Equal(t, 2, gotNew)

		p.SetValue(2)
		assert.Equal(t, 1, calls, "writing the same value again must not notify")
	})

	t.Run("on value changed fires with no arguments", func(t *testing.T) {
		g := engine.NewGraph()
		p := NewProperty(g, 1)

		calls := 0
		p.OnValueChanged(func() { calls++ })

		p.SetValue(2)
		assert.Equal(t, 1, calls)

		p.SetValue(2)
		assert.Equal(t, 1, calls, "writing the same value again must not notify")
	})

	t.Run("subscribe fires immediately then on every change", func(t *testing.T) {
		g := engine.NewGraph()
		p := NewProperty(g, 1)

		var got []int
		p.Subscribe(func(v int) { got = append(got, v) })
		assert.Equal(t, []int{1}, got, "subscribe must call the handler once before returning")

		p.SetValue(2)
		p.SetValue(3)
		assert.Equal(t, []int{1, 2, 3}, got)
	})

	t.Run("destroy detaches change handlers", func(t *testing.T) {
		g := engine.NewGraph()
		p := NewProperty(g, 1)
		calls := 0
		handle := p.OnChange(func(old, new int) { calls++ })

		p.Destroy()
		assert.False(t, handle.Attached())

		p.SetValue(2)
		assert.Equal(t, 0, calls)
	})
}
