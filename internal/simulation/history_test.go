package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistory_PrefilledToCapacity(t *testing.T) {
	h := NewHistory(240, 3.5)

	assert.Equal(t, 240, h.Cap())
	values := h.Values()
	assert.Len(t, values, 240)
	for i, v := range values {
		assert.Equal(t, 3.5, v, "slot %d should hold the fill value", i)
	}
}

func TestHistory_KeepsOldestToNewestOrder(t *testing.T) {
	h := NewHistory(3, 0)

	h.Push(1)
	h.Push(2)

	assert.Equal(t, []float64{0, 1, 2}, h.Values())

	h.Push(3)
	h.Push(4)

	assert.Equal(t, []float64{2, 3, 4}, h.Values(), "oldest values should be evicted across the wrap")
}

func TestHistory_EvictsAllPrefillAfterEnoughPushes(t *testing.T) {
	h := NewHistory(240, -1)

	for i := range 300 {
		h.Push(float64(i + 1))
	}

	values := h.Values()
	assert.Len(t, values, 240)
	assert.Equal(t, 61.0, values[0], "300 pushes into 240 slots keep pushes 61..300")
	assert.Equal(t, 300.0, values[239])
	for i, v := range values {
		assert.Greater(t, v, 0.0, "prefill should be fully evicted (slot %d)", i)
	}
}

func TestHistory_FillFlattens(t *testing.T) {
	h := NewHistory(10, 0)
	h.Push(5)
	h.Push(6)

	h.Fill(7)

	for i, v := range h.Values() {
		assert.Equal(t, 7.0, v, "slot %d", i)
	}
}

func TestNewHistory_PanicsOnBadCapacity(t *testing.T) {
	assert.Panics(t, func() { NewHistory(0, 0) })
	assert.Panics(t, func() { NewHistory(-5, 0) })
}
