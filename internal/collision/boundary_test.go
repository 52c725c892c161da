package collision

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Emilinya/bounce/internal/core"
)

func box(cx, cy, w, h float64) core.Rect {
	return core.RectFromCenterSize(core.Vec2{X: cx, Y: cy}, core.Vec2{X: w, Y: h})
}

func TestCheckBoundary(t *testing.T) {
	arena := box(0, 0, 10, 10)

	tests := []struct {
		name     string
		box      core.Rect
		expected Bounce
		hit      bool
	}{
		{"inside", box(0, 0, 1, 1), 0, false},
		{"touching every edge", arena, 0, false},
		{"flush with left edge", core.RectFromEdges(-5, 0, -4, 1), 0, false},
		{"past right edge", box(9.1, 0, 1, 1), BounceLeft, true},
		{"past left edge", box(-5.2, 0, 1, 1), BounceRight, true},
		{"past top edge", box(0, -4.8, 1, 1), BounceDown, true},
		{"past bottom edge", box(0, 4.8, 1, 1), BounceUp, true},
		{"left wins over top", box(-5, -5, 1, 1), BounceRight, true},
		{"right wins over bottom", box(5, 5, 1, 1), BounceLeft, true},
		{"top wins over bottom", box(0, 0, 1, 12), BounceDown, true},
		{"larger than arena", box(0, 0, 20, 20), BounceRight, true},
		{"fully outside", box(100, 100, 1, 1), BounceLeft, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := CheckBoundary(tc.box, arena)
			require.Equal(t, tc.hit, ok)
			require.Equal(t, tc.expected, got)
		})
	}
}

func TestClassifyBoundaryNaN(t *testing.T) {
	nan := math.NaN()
	o := ClassifyBoundary(core.RectFromEdges(nan, nan, nan, nan), box(0, 0, 10, 10))

	require.False(t, o.Hit)
	require.Equal(t, AnomalyOutsideNoEdge, o.Anomaly)
	require.Equal(t, "none (outside-no-edge)", o.String())
}

func TestCheckBoundaryContainedIsIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	arena := box(0, 0, 40, 20)

	for i := 0; i < 500; i++ {
		w := 0.1 + rng.Float64()*5
		h := 0.1 + rng.Float64()*5
		l := arena.Left() + rng.Float64()*(arena.Width()-w)*0.99
		top := arena.Top() + rng.Float64()*(arena.Height()-h)*0.99
		b := core.RectFromMinSize(core.Vec2{X: l, Y: top}, core.Vec2{X: w, Y: h})

		_, ok := CheckBoundary(b, arena)
		require.False(t, ok, "box %v inside %v", b, arena)
		_, ok = CheckBoundary(b, arena)
		require.False(t, ok)
	}
}

func TestCheckBoundaryBounceReducesOvershoot(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	arena := box(0, 0, 10, 10)
	const eps = 0.01

	hits := 0
	for i := 0; i < 1000; i++ {
		b := box(rng.Float64()*16-8, rng.Float64()*16-8, 0.5+rng.Float64()*2, 0.5+rng.Float64()*2)
		dir, ok := CheckBoundary(b, arena)
		if !ok {
			continue
		}
		hits++
		require.Positive(t, Overshoot(b, arena, dir), "%v on %v", dir, b)

		moved := b.Translate(dir.Vector().Scale(eps))
		require.Less(t, Overshoot(moved, arena, dir), Overshoot(b, arena, dir))
	}
	require.NotZero(t, hits)
}
