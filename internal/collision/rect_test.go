package collision

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Emilinya/bounce/internal/core"
)

func TestCheckRect(t *testing.T) {
	unit := core.RectFromEdges(0, 0, 1, 1)

	tests := []struct {
		name     string
		dir      core.Vec2
		self     core.Rect
		other    core.Rect
		expected Bounce
		hit      bool
	}{
		{
			name:     "shallow left face moving right",
			dir:      core.Vec2{X: 1},
			self:     unit,
			other:    core.RectFromEdges(0.5, 0.9, 1.5, 1.9),
			expected: BounceLeft,
			hit:      true,
		},
		{
			name:     "shallowest of two eligible faces",
			dir:      core.Vec2{X: 1, Y: 1},
			self:     unit,
			other:    core.RectFromEdges(0.5, 0.9, 1.5, 1.9),
			expected: BounceUp,
			hit:      true,
		},
		{
			name:     "moving up hits bottom face",
			dir:      core.Vec2{Y: -1},
			self:     box(0, 0, 1, 1),
			other:    box(1, 0.9, 1, 1),
			expected: BounceDown,
			hit:      true,
		},
		{
			name:     "moving right touching along top",
			dir:      core.Vec2{X: 1},
			self:     box(0, 0, 1, 1),
			other:    box(0.9, 1, 1, 1),
			expected: BounceLeft,
			hit:      true,
		},
		{
			name:     "moving left hits right face",
			dir:      core.Vec2{X: -1},
			self:     unit,
			other:    core.RectFromEdges(-0.8, 0, 0.2, 1),
			expected: BounceRight,
			hit:      true,
		},
		{
			name:  "disjoint",
			dir:   core.Vec2{X: 1},
			self:  unit,
			other: core.RectFromEdges(2, 0, 3, 1),
		},
		{
			name:     "touching edges intersect",
			dir:      core.Vec2{X: 1},
			self:     unit,
			other:    core.RectFromEdges(1, 0, 2, 1),
			expected: BounceLeft,
			hit:      true,
		},
		{
			name:     "equal depths prefer left over top",
			dir:      core.Vec2{X: 1, Y: 1},
			self:     unit,
			other:    core.RectFromEdges(0.5, 0.5, 1.5, 1.5),
			expected: BounceLeft,
			hit:      true,
		},
		{
			name:     "equal depths prefer bottom over right",
			dir:      core.Vec2{X: -1, Y: -1},
			self:     unit,
			other:    core.RectFromEdges(-0.5, -0.5, 0.5, 0.5),
			expected: BounceDown,
			hit:      true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := CheckRect(tc.dir, tc.self, tc.other)
			require.Equal(t, tc.hit, ok)
			require.Equal(t, tc.expected, got)
		})
	}
}

func TestCheckRectIgnoresFacesBehindTravel(t *testing.T) {
	self := core.RectFromEdges(0, 0, 1, 1)
	// other overlaps one side of self, so the face on that side is by far
	// the shallowest, but a box moving away from it cannot have entered
	// through it.
	horizontal := core.RectFromEdges(-0.9, 0, 0.1, 1)
	vertical := core.RectFromEdges(0, -0.9, 1, 0.1)

	require.Less(t, Penetration(self, horizontal).Right, Penetration(self, horizontal).Left)
	require.Less(t, Penetration(self, vertical).Bottom, Penetration(self, vertical).Top)

	tests := []struct {
		name     string
		dir      core.Vec2
		other    core.Rect
		expected Bounce
	}{
		{"moving right", core.Vec2{X: 1}, horizontal, BounceLeft},
		{"moving left", core.Vec2{X: -1}, horizontal, BounceRight},
		{"moving down", core.Vec2{Y: 1}, vertical, BounceUp},
		{"moving up", core.Vec2{Y: -1}, vertical, BounceDown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := CheckRect(tc.dir, self, tc.other)
			require.True(t, ok)
			require.Equal(t, tc.expected, got)
		})
	}
}

func TestClassifyRectNoEligibleFace(t *testing.T) {
	o := ClassifyRect(core.Vec2{}, core.RectFromEdges(0, 0, 1, 1), core.RectFromEdges(0.5, 0.5, 1.5, 1.5))
	require.False(t, o.Hit)
	require.Equal(t, AnomalyNoEligibleFace, o.Anomaly)

	nan := math.NaN()
	o = ClassifyRect(core.Vec2{X: nan, Y: nan}, core.RectFromEdges(0, 0, 1, 1), core.RectFromEdges(0.5, 0.5, 1.5, 1.5))
	require.Equal(t, AnomalyNoEligibleFace, o.Anomaly)
}

func TestClassifyRectDisjointIsNotAnomalous(t *testing.T) {
	o := ClassifyRect(core.Vec2{}, core.RectFromEdges(0, 0, 1, 1), core.RectFromEdges(5, 5, 6, 6))
	require.Equal(t, Outcome{}, o)
}

func TestPenetration(t *testing.T) {
	d := Penetration(core.RectFromEdges(0, 0, 1, 1), core.RectFromEdges(0.5, 0.9, 1.5, 1.9))
	require.InDelta(t, 1.9, d.Bottom, 1e-9)
	require.InDelta(t, 1.5, d.Right, 1e-9)
	require.InDelta(t, 0.5, d.Left, 1e-9)
	require.InDelta(t, 0.1, d.Top, 1e-9)

	require.Equal(t, d.Left, d.Along(BounceLeft))
	require.Equal(t, d.Top, d.Along(BounceUp))
	require.Equal(t, d.Bottom, d.Along(BounceDown))
	require.Equal(t, d.Right, d.Along(BounceRight))
	require.Zero(t, d.Along(0))
}

func randomDir(rng *rand.Rand) core.Vec2 {
	for {
		d := core.Vec2{X: float64(rng.Intn(3) - 1), Y: float64(rng.Intn(3) - 1)}
		if !d.IsZero() {
			return d
		}
	}
}

func TestCheckRectDisjointNeverCollides(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 1000; i++ {
		self := box(rng.Float64()*10, rng.Float64()*10, 0.1+rng.Float64()*3, 0.1+rng.Float64()*3)
		gap := 1e-6 + rng.Float64()
		size := core.Vec2{X: 0.1 + rng.Float64()*3, Y: 0.1 + rng.Float64()*3}

		var other core.Rect
		switch rng.Intn(4) {
		case 0:
			other = core.RectFromMinSize(core.Vec2{X: self.Right() + gap, Y: self.Top()}, size)
		case 1:
			other = core.RectFromMinSize(core.Vec2{X: self.Left() - gap - size.X, Y: self.Top()}, size)
		case 2:
			other = core.RectFromMinSize(core.Vec2{X: self.Left(), Y: self.Bottom() + gap}, size)
		default:
			other = core.RectFromMinSize(core.Vec2{X: self.Left(), Y: self.Top() - gap - size.Y}, size)
		}

		_, ok := CheckRect(randomDir(rng), self, other)
		require.False(t, ok, "%v vs %v", self, other)
	}
}

func TestCheckRectBounceReducesDepth(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	const eps = 0.01

	hits := 0
	for i := 0; i < 1000; i++ {
		self := box(rng.Float64()*4, rng.Float64()*4, 0.5+rng.Float64()*2, 0.5+rng.Float64()*2)
		other := box(rng.Float64()*4, rng.Float64()*4, 0.5+rng.Float64()*2, 0.5+rng.Float64()*2)
		dir := randomDir(rng)

		b, ok := CheckRect(dir, self, other)
		if !ok {
			continue
		}
		hits++

		// The bounce always opposes the direction of travel on its axis.
		v := b.Vector()
		require.Negative(t, v.X*dir.X+v.Y*dir.Y, "%v moving %v", b, dir)

		before := Penetration(self, other).Along(b)
		after := Penetration(self.Translate(v.Scale(eps)), other).Along(b)
		require.Less(t, after, before)
	}
	require.NotZero(t, hits)
}
