// Package collision decides how an axis-aligned box must be pushed to resolve
// a collision. It answers two questions: has a box left its containing
// boundary, and has a moving box run into another box. In both cases the
// answer is a single cardinal Bounce direction pointing away from the
// surface that was crossed.
//
// The package only decides. Applying the displacement, choosing its
// magnitude and detecting collisions over time are left to the caller.
//
// The classifiers (ClassifyBoundary, ClassifyRect) and the entry operations
// built on them (CheckBoundary, CheckRect) are pure and safe for concurrent
// use. Degenerate inputs are reported through Outcome.Anomaly; a Checker
// turns those into structured log entries and telemetry.
package collision

import (
	"fmt"
	"strings"

	"github.com/Emilinya/bounce/internal/core"
)

// Bounce is the single axis-aligned direction a box must be displaced in to
// resolve a collision. The zero value is not a direction.
type Bounce uint8

const (
	BounceUp Bounce = iota + 1
	BounceDown
	BounceLeft
	BounceRight
)

// String returns the direction name ("Up", "Down", "Left", "Right").
func (b Bounce) String() string {
	switch b {
	case BounceUp:
		return "Up"
	case BounceDown:
		return "Down"
	case BounceLeft:
		return "Left"
	case BounceRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// ParseBounce parses a direction name, ignoring case.
func ParseBounce(s string) (Bounce, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return BounceUp, nil
	case "down":
		return BounceDown, nil
	case "left":
		return BounceLeft, nil
	case "right":
		return BounceRight, nil
	}
	return 0, fmt.Errorf("collision: unknown bounce direction %q", s)
}

// Valid reports whether b is one of the four directions.
func (b Bounce) Valid() bool {
	return b >= BounceUp && b <= BounceRight
}

// Opposite returns the direction pointing the other way.
func (b Bounce) Opposite() Bounce {
	switch b {
	case BounceUp:
		return BounceDown
	case BounceDown:
		return BounceUp
	case BounceLeft:
		return BounceRight
	case BounceRight:
		return BounceLeft
	default:
		return b
	}
}

// Horizontal reports whether b moves a box along the x axis.
func (b Bounce) Horizontal() bool {
	return b == BounceLeft || b == BounceRight
}

// Vector returns the unit displacement for b. Y grows downward, so Up is (0, -1).
func (b Bounce) Vector() core.Vec2 {
	switch b {
	case BounceUp:
		return core.Vec2{Y: -1}
	case BounceDown:
		return core.Vec2{Y: 1}
	case BounceLeft:
		return core.Vec2{X: -1}
	case BounceRight:
		return core.Vec2{X: 1}
	default:
		return core.Vec2{}
	}
}
