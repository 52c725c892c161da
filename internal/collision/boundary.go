package collision

import "github.com/Emilinya/bounce/internal/core"

// ClassifyBoundary checks a moving box against the boundary that should
// contain it. A box inside the boundary, edges included, does not collide.
// Otherwise the first exit found in the order left, right, top, bottom
// decides the bounce, which points back inside.
func ClassifyBoundary(box, boundary core.Rect) Outcome {
	if boundary.ContainsRect(box) {
		return Outcome{}
	}

	switch {
	case box.Left() < boundary.Left():
		return hit(BounceRight)
	case box.Right() > boundary.Right():
		return hit(BounceLeft)
	case box.Top() < boundary.Top():
		return hit(BounceDown)
	case box.Bottom() > boundary.Bottom():
		return hit(BounceUp)
	}
	return Outcome{Anomaly: AnomalyOutsideNoEdge}
}

// CheckBoundary returns the direction box must bounce to stay within
// boundary, or false when it is fully contained.
//
//	boundary := core.RectFromCenterSize(core.Vec2{}, core.Vec2{X: 10, Y: 10})
//	box := core.RectFromCenterSize(core.Vec2{X: 9.1}, core.Vec2{X: 1, Y: 1})
//	CheckBoundary(box, boundary) // BounceLeft, true
func CheckBoundary(box, boundary core.Rect) (Bounce, bool) {
	return ClassifyBoundary(box, boundary).Result()
}

// Overshoot returns how far box reaches past the boundary edge that a
// bounce in direction b pushes it away from. It is positive when box
// crosses that edge.
func Overshoot(box, boundary core.Rect, b Bounce) float64 {
	switch b {
	case BounceRight:
		return boundary.Left() - box.Left()
	case BounceLeft:
		return box.Right() - boundary.Right()
	case BounceDown:
		return boundary.Top() - box.Top()
	case BounceUp:
		return box.Bottom() - boundary.Bottom()
	}
	return 0
}
