package collision

import (
	"testing"

	"github.com/Emilinya/bounce/internal/core"
)

func TestBounceNames(t *testing.T) {
	tests := []struct {
		b      Bounce
		name   string
		vector core.Vec2
	}{
		{BounceUp, "Up", core.Vec2{Y: -1}},
		{BounceDown, "Down", core.Vec2{Y: 1}},
		{BounceLeft, "Left", core.Vec2{X: -1}},
		{BounceRight, "Right", core.Vec2{X: 1}},
	}

	for _, tc := range tests {
		if tc.b.String() != tc.name {
			t.Errorf("String() = %q, expected %q", tc.b.String(), tc.name)
		}
		parsed, err := ParseBounce(tc.name)
		if err != nil || parsed != tc.b {
			t.Errorf("ParseBounce(%q) = %v, %v", tc.name, parsed, err)
		}
		if tc.b.Vector() != tc.vector {
			t.Errorf("%v.Vector() = %v, expected %v", tc.b, tc.b.Vector(), tc.vector)
		}
		if tc.b.Opposite().Opposite() != tc.b || tc.b.Opposite() == tc.b {
			t.Errorf("%v.Opposite() = %v", tc.b, tc.b.Opposite())
		}
		if tc.b.Opposite().Vector() != tc.vector.Neg() {
			t.Errorf("%v.Opposite() does not point the other way", tc.b)
		}
		if !tc.b.Valid() {
			t.Errorf("%v should be valid", tc.b)
		}
	}
}

func TestBounceZeroValue(t *testing.T) {
	var b Bounce
	if b.Valid() {
		t.Error("zero Bounce should not be valid")
	}
	if !b.Vector().IsZero() {
		t.Errorf("zero Bounce vector = %v", b.Vector())
	}
	if _, err := ParseBounce("sideways"); err == nil {
		t.Error("ParseBounce should reject unknown names")
	}
	if p, err := ParseBounce(" LEFT "); err != nil || p != BounceLeft {
		t.Errorf("ParseBounce should ignore case and spaces, got %v, %v", p, err)
	}
	if !BounceLeft.Horizontal() || BounceUp.Horizontal() {
		t.Error("Horizontal() wrong")
	}
}
