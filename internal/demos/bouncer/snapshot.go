package bouncer

import "math"

// Snapshot contains the complete demo state for determinism tests.
// Box data is flattened to 4 floats per box: X, Y, VX, VY.
type Snapshot struct {
	Tick      int
	Bounces   int
	Anomalies int
	BoxCount  int
	BoxData   []float64
}

// Snapshot returns the current demo state as a Snapshot.
func (d *Demo) Snapshot() Snapshot {
	data := make([]float64, 0, len(d.boxes)*4)
	for _, b := range d.boxes {
		data = append(data, b.Rect.Min.X, b.Rect.Min.Y, b.Vel.X, b.Vel.Y)
	}
	return Snapshot{
		Tick:      d.ticks,
		Bounces:   d.bounces,
		Anomalies: d.anomalies,
		BoxCount:  len(d.boxes),
		BoxData:   data,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)             //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Bounces)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Anomalies) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BoxCount)  //#nosec G115 -- hash computation

	for _, v := range snap.BoxData {
		h = h*31 + math.Float64bits(v)
	}

	return h
}
