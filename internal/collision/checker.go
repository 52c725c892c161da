package collision

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Emilinya/bounce/internal/core"
)

// Op names which of the two checks produced a result.
type Op uint8

const (
	OpBoundary Op = iota + 1
	OpRect
)

func (op Op) String() string {
	switch op {
	case OpBoundary:
		return "boundary"
	case OpRect:
		return "rect"
	default:
		return fmt.Sprintf("op(%d)", uint8(op))
	}
}

// ParseOp parses "boundary" or "rect".
func ParseOp(s string) (Op, error) {
	switch s {
	case "boundary":
		return OpBoundary, nil
	case "rect":
		return OpRect, nil
	}
	return 0, fmt.Errorf("collision: unknown op %q", s)
}

// Report describes one anomalous check. For OpBoundary, Self is the box,
// Other the boundary and Direction is zero.
type Report struct {
	Op        Op
	Kind      Anomaly
	Direction core.Vec2
	Self      core.Rect
	Other     core.Rect
	At        time.Time
}

// Recorder receives anomaly reports. Implementations must be safe for
// concurrent use.
type Recorder interface {
	RecordAnomaly(r Report) error
}

// Checker runs the pure checks and reports anomalies to a logger and an
// optional Recorder. Results are identical to CheckBoundary and CheckRect.
// A nil *Checker is valid and reports nothing.
type Checker struct {
	logger    *log.Logger
	recorder  Recorder
	now       func() time.Time
	anomalies *atomic.Uint64 // shared with checkers derived by WithoutRecorder
}

// Option configures a Checker.
type Option func(*Checker)

// WithLogger sets the logger anomalies are written to.
func WithLogger(l *log.Logger) Option {
	return func(c *Checker) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithRecorder sets where anomaly reports are persisted.
func WithRecorder(r Recorder) Option {
	return func(c *Checker) {
		c.recorder = r
	}
}

// NewChecker creates a Checker. Without options it logs through the
// default charmbracelet logger with a "collision" prefix.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{
		logger:    log.Default().WithPrefix("collision"),
		now:       time.Now,
		anomalies: new(atomic.Uint64),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithoutRecorder returns a Checker that logs and counts like c but
// persists nothing. The anomaly count is shared with c.
func (c *Checker) WithoutRecorder() *Checker {
	if c == nil {
		return nil
	}
	return &Checker{
		logger:    c.logger,
		now:       c.now,
		anomalies: c.anomalies,
	}
}

// Boundary classifies box against boundary and reports anomalies.
func (c *Checker) Boundary(box, boundary core.Rect) Outcome {
	o := ClassifyBoundary(box, boundary)
	c.observe(OpBoundary, o, core.Vec2{}, box, boundary)
	return o
}

// Rect classifies self moving along dir against other and reports anomalies.
func (c *Checker) Rect(dir core.Vec2, self, other core.Rect) Outcome {
	o := ClassifyRect(dir, self, other)
	c.observe(OpRect, o, dir, self, other)
	return o
}

// CheckBoundary is CheckBoundary with anomaly reporting.
func (c *Checker) CheckBoundary(box, boundary core.Rect) (Bounce, bool) {
	return c.Boundary(box, boundary).Result()
}

// CheckRect is CheckRect with anomaly reporting.
func (c *Checker) CheckRect(dir core.Vec2, self, other core.Rect) (Bounce, bool) {
	return c.Rect(dir, self, other).Result()
}

// Evaluate runs the check a query describes.
func (c *Checker) Evaluate(q Query) Outcome {
	if q.Op == OpBoundary {
		return c.Boundary(q.Self, q.Other)
	}
	return c.Rect(q.Direction, q.Self, q.Other)
}

// Anomalies returns how many anomalous checks this Checker has seen.
func (c *Checker) Anomalies() uint64 {
	if c == nil {
		return 0
	}
	return c.anomalies.Load()
}

func (c *Checker) observe(op Op, o Outcome, dir core.Vec2, self, other core.Rect) {
	if c == nil || o.Anomaly == AnomalyNone {
		return
	}
	c.anomalies.Add(1)

	fields := []any{
		"op", op.String(),
		"kind", o.Anomaly.String(),
		"self", self.String(),
		"other", other.String(),
	}
	if op == OpRect {
		fields = append(fields, "direction", dir.String())
	}
	c.logger.Warn("inconsistent collision check, reporting no collision", fields...)

	if c.recorder == nil {
		return
	}
	err := c.recorder.RecordAnomaly(Report{
		Op:        op,
		Kind:      o.Anomaly,
		Direction: dir,
		Self:      self,
		Other:     other,
		At:        c.now(),
	})
	if err != nil {
		c.logger.Debug("could not record anomaly", "error", err)
	}
}
