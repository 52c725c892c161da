package core

import "testing"

func TestInputFrameDirection(t *testing.T) {
	tests := []struct {
		name     string
		actions  []Action
		expected Vec2
	}{
		{"none", nil, Vec2{}},
		{"left", []Action{ActionLeft}, Vec2{X: -1}},
		{"up right", []Action{ActionUp, ActionRight}, Vec2{X: 1, Y: -1}},
		{"down", []Action{ActionDown}, Vec2{Y: 1}},
		{"opposites cancel", []Action{ActionLeft, ActionRight, ActionDown}, Vec2{Y: 1}},
		{"non-directional ignored", []Action{ActionPause}, Vec2{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, a := range tc.actions {
				f.Set(a)
			}
			if got := f.Direction(); got != tc.expected {
				t.Errorf("Direction() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestInputFrameCloneAndClear(t *testing.T) {
	var f InputFrame
	if f.Has(ActionUp) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionUp)

	clone := f.Clone()
	f.Clear()

	if f.Has(ActionUp) {
		t.Error("Clear should remove actions")
	}
	if !clone.Has(ActionUp) {
		t.Error("Clone should not share state with the original")
	}
}

func TestRuntimeConfigDT(t *testing.T) {
	if dt := (RuntimeConfig{TickRate: 50}).DT(); dt != 0.02 {
		t.Errorf("DT() = %v, expected 0.02", dt)
	}
	if dt := (RuntimeConfig{}).DT(); dt != 1.0/60 {
		t.Errorf("DT() with zero tick rate = %v, expected 1/60", dt)
	}
}
