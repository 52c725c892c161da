package tui

import (
	"math"

	"github.com/Emilinya/bounce/internal/core"
)

// Hold windows in seconds. The first press has to outlast the terminal's
// key repeat delay; repeats only need to bridge the repeat interval.
const (
	initialHold = 0.5
	repeatHold  = 0.15
)

// HeldKeys emulates held direction keys. Terminals report presses and
// repeats but never releases, so a direction stays held for a short window
// after each press.
type HeldKeys struct {
	remaining map[core.Action]int
	initial   int
	repeat    int
}

// NewHeldKeys creates an emulator for the given tick rate.
func NewHeldKeys(tickRate int) *HeldKeys {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &HeldKeys{
		remaining: make(map[core.Action]int),
		initial:   max(1, int(math.Round(initialHold*float64(tickRate)))),
		repeat:    max(1, int(math.Round(repeatHold*float64(tickRate)))),
	}
}

// Press registers a key press. Pressing a direction releases its opposite.
func (h *HeldKeys) Press(a core.Action) {
	if n, held := h.remaining[a]; held {
		h.remaining[a] = max(n, h.repeat)
	} else {
		h.remaining[a] = h.initial
	}
	delete(h.remaining, opposite(a))
}

// Apply sets every held action on f.
func (h *HeldKeys) Apply(f *core.InputFrame) {
	for a := range h.remaining {
		f.Set(a)
	}
}

// Held reports whether a is currently held.
func (h *HeldKeys) Held(a core.Action) bool {
	_, ok := h.remaining[a]
	return ok
}

// Tick advances the hold windows by one tick.
func (h *HeldKeys) Tick() {
	for a, n := range h.remaining {
		if n <= 1 {
			delete(h.remaining, a)
		} else {
			h.remaining[a] = n - 1
		}
	}
}

// Release drops all held keys.
func (h *HeldKeys) Release() {
	clear(h.remaining)
}

func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	}
	return core.ActionNone
}
