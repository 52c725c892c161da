package collision

import "github.com/Emilinya/bounce/internal/core"

// Depths holds how far self reaches into other, measured from each face of
// other. Bottom is other's bottom edge minus self's top edge, Right is
// other's right edge minus self's left edge, Left is self's right edge
// minus other's left edge and Top is self's bottom edge minus other's top
// edge.
type Depths struct {
	Bottom, Right, Left, Top float64
}

// Penetration computes the four face depths of self inside other.
// Depths are only meaningful for intersecting boxes.
func Penetration(self, other core.Rect) Depths {
	return Depths{
		Bottom: other.Bottom() - self.Top(),
		Right:  other.Right() - self.Left(),
		Left:   self.Right() - other.Left(),
		Top:    self.Bottom() - other.Top(),
	}
}

// Along returns the depth of the face a bounce in direction b resolves:
// Bottom for Down, Right for Right, Left for Left and Top for Up.
func (d Depths) Along(b Bounce) float64 {
	switch b {
	case BounceDown:
		return d.Bottom
	case BounceRight:
		return d.Right
	case BounceLeft:
		return d.Left
	case BounceUp:
		return d.Top
	}
	return 0
}

type face struct {
	depth    float64
	eligible bool
	bounce   Bounce
}

// ClassifyRect checks a box moving along dir against another box.
//
// Only faces the box can have struck given its direction of travel are
// considered: moving up (dir.Y < 0) it can only have entered through
// other's bottom face and bounces Down, moving left through the right face
// (bounces Right), moving right through the left face (bounces Left), and
// moving down through the top face (bounces Up). Of those, the shallowest
// non-negative depth wins. Equal depths resolve in the order bottom,
// right, left, top.
func ClassifyRect(dir core.Vec2, self, other core.Rect) Outcome {
	if !self.Intersects(other) {
		return Outcome{}
	}

	d := Penetration(self, other)
	faces := [...]face{
		{depth: d.Bottom, eligible: dir.Y < 0, bounce: BounceDown},
		{depth: d.Right, eligible: dir.X < 0, bounce: BounceRight},
		{depth: d.Left, eligible: dir.X > 0, bounce: BounceLeft},
		{depth: d.Top, eligible: dir.Y > 0, bounce: BounceUp},
	}

	best := -1
	for i, f := range faces {
		// Written as !(>=) so NaN depths are skipped.
		if !f.eligible || !(f.depth >= 0) {
			continue
		}
		if best < 0 || f.depth < faces[best].depth {
			best = i
		}
	}
	if best < 0 {
		return Outcome{Anomaly: AnomalyNoEligibleFace}
	}
	return hit(faces[best].bounce)
}

// CheckRect returns the direction a box moving along dir must bounce after
// running into other, or false when the boxes do not intersect.
//
//	self := core.RectFromCenterSize(core.Vec2{}, core.Vec2{X: 1, Y: 1})
//	other := core.RectFromCenterSize(core.Vec2{X: 0.9, Y: 1}, core.Vec2{X: 1, Y: 1})
//	CheckRect(core.Vec2{X: 1}, self, other) // BounceLeft, true
func CheckRect(dir core.Vec2, self, other core.Rect) (Bounce, bool) {
	return ClassifyRect(dir, self, other).Result()
}
