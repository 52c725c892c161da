package tui

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Emilinya/bounce/internal/core"
)

func TestHeldKeysWindow(t *testing.T) {
	h := NewHeldKeys(10) // initial hold 5 ticks, repeat 1 tick
	h.Press(core.ActionLeft)

	for i := range 5 {
		f := core.NewInputFrame()
		h.Apply(&f)
		require.True(t, f.Has(core.ActionLeft), "tick %d", i)
		h.Tick()
	}
	require.False(t, h.Held(core.ActionLeft))
}

func TestHeldKeysRepeatExtends(t *testing.T) {
	h := NewHeldKeys(20) // initial 10, repeat 3
	h.Press(core.ActionUp)
	for range 9 {
		h.Tick()
	}
	require.True(t, h.Held(core.ActionUp))

	h.Press(core.ActionUp)
	h.Tick()
	h.Tick()
	require.True(t, h.Held(core.ActionUp), "repeat should keep the key held")
	h.Tick()
	require.False(t, h.Held(core.ActionUp))
}

func TestHeldKeysRepeatNeverShortens(t *testing.T) {
	h := NewHeldKeys(20)
	h.Press(core.ActionUp)
	h.Press(core.ActionUp)
	for range 9 {
		h.Tick()
	}
	require.True(t, h.Held(core.ActionUp))
}

func TestHeldKeysOppositeReleases(t *testing.T) {
	h := NewHeldKeys(60)
	h.Press(core.ActionLeft)
	h.Press(core.ActionUp)
	h.Press(core.ActionRight)

	require.False(t, h.Held(core.ActionLeft))
	require.True(t, h.Held(core.ActionRight))
	require.True(t, h.Held(core.ActionUp), "other axis stays held")

	f := core.NewInputFrame()
	h.Apply(&f)
	require.Equal(t, core.Vec2{X: 1, Y: -1}, f.Direction())

	h.Release()
	require.False(t, h.Held(core.ActionUp))
	require.False(t, h.Held(core.ActionRight))
}
