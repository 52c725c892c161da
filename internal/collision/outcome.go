package collision

import "fmt"

// Anomaly classifies a check whose inputs broke the assumptions the
// decision logic relies on. An anomalous check reports no collision.
type Anomaly uint8

const (
	AnomalyNone Anomaly = iota
	// AnomalyOutsideNoEdge: the box is not inside the boundary yet crosses
	// none of its edges. Only NaN coordinates get here.
	AnomalyOutsideNoEdge
	// AnomalyNoEligibleFace: the boxes intersect but the direction of travel
	// rules out every face, e.g. a zero direction.
	AnomalyNoEligibleFace
)

func (a Anomaly) String() string {
	switch a {
	case AnomalyNone:
		return "none"
	case AnomalyOutsideNoEdge:
		return "outside-no-edge"
	case AnomalyNoEligibleFace:
		return "no-eligible-face"
	default:
		return fmt.Sprintf("anomaly(%d)", uint8(a))
	}
}

// Outcome is the full result of a classification.
// Hit is true exactly when Bounce holds a direction.
type Outcome struct {
	Bounce  Bounce
	Hit     bool
	Anomaly Anomaly
}

// Result returns the outcome in the (direction, ok) form of the entry operations.
func (o Outcome) Result() (Bounce, bool) {
	return o.Bounce, o.Hit
}

func (o Outcome) String() string {
	switch {
	case o.Hit:
		return o.Bounce.String()
	case o.Anomaly != AnomalyNone:
		return "none (" + o.Anomaly.String() + ")"
	default:
		return "none"
	}
}

func hit(b Bounce) Outcome {
	return Outcome{Bounce: b, Hit: true}
}
