package storage

import (
	"database/sql"
	"fmt"
	"math"

	"github.com/Emilinya/bounce/internal/collision"
	"github.com/Emilinya/bounce/internal/core"
)

var _ collision.Recorder = (*Store)(nil)

// AnomalyEntry is a stored anomaly report.
type AnomalyEntry struct {
	ID int64
	collision.Report
}

// SQLite stores NaN as NULL, so coordinates are nullable and NULL reads
// back as NaN.
type anomalyRow struct {
	ID          int64           `db:"id"`
	Op          string          `db:"op"`
	Kind        string          `db:"kind"`
	DirX        sql.NullFloat64 `db:"dir_x"`
	DirY        sql.NullFloat64 `db:"dir_y"`
	SelfLeft    sql.NullFloat64 `db:"self_left"`
	SelfTop     sql.NullFloat64 `db:"self_top"`
	SelfRight   sql.NullFloat64 `db:"self_right"`
	SelfBottom  sql.NullFloat64 `db:"self_bottom"`
	OtherLeft   sql.NullFloat64 `db:"other_left"`
	OtherTop    sql.NullFloat64 `db:"other_top"`
	OtherRight  sql.NullFloat64 `db:"other_right"`
	OtherBottom sql.NullFloat64 `db:"other_bottom"`
	At          int64           `db:"at"`
}

func nullable(f float64) sql.NullFloat64 {
	return sql.NullFloat64{Float64: f, Valid: !math.IsNaN(f)}
}

func orNaN(n sql.NullFloat64) float64 {
	if !n.Valid {
		return math.NaN()
	}
	return n.Float64
}

func newAnomalyRow(r collision.Report) anomalyRow {
	return anomalyRow{
		Op:          r.Op.String(),
		Kind:        r.Kind.String(),
		DirX:        nullable(r.Direction.X),
		DirY:        nullable(r.Direction.Y),
		SelfLeft:    nullable(r.Self.Left()),
		SelfTop:     nullable(r.Self.Top()),
		SelfRight:   nullable(r.Self.Right()),
		SelfBottom:  nullable(r.Self.Bottom()),
		OtherLeft:   nullable(r.Other.Left()),
		OtherTop:    nullable(r.Other.Top()),
		OtherRight:  nullable(r.Other.Right()),
		OtherBottom: nullable(r.Other.Bottom()),
		At:          r.At.UnixNano(),
	}
}

func (row anomalyRow) entry() (AnomalyEntry, error) {
	op, err := collision.ParseOp(row.Op)
	if err != nil {
		return AnomalyEntry{}, err
	}
	kind, err := parseAnomaly(row.Kind)
	if err != nil {
		return AnomalyEntry{}, err
	}
	return AnomalyEntry{
		ID: row.ID,
		Report: collision.Report{
			Op:        op,
			Kind:      kind,
			Direction: core.Vec2{X: orNaN(row.DirX), Y: orNaN(row.DirY)},
			Self:      core.RectFromEdges(orNaN(row.SelfLeft), orNaN(row.SelfTop), orNaN(row.SelfRight), orNaN(row.SelfBottom)),
			Other:     core.RectFromEdges(orNaN(row.OtherLeft), orNaN(row.OtherTop), orNaN(row.OtherRight), orNaN(row.OtherBottom)),
			At:        fromNanos(row.At),
		},
	}, nil
}

func parseAnomaly(s string) (collision.Anomaly, error) {
	for _, a := range []collision.Anomaly{collision.AnomalyOutsideNoEdge, collision.AnomalyNoEligibleFace} {
		if a.String() == s {
			return a, nil
		}
	}
	return collision.AnomalyNone, fmt.Errorf("storage: unknown anomaly kind %q", s)
}

// RecordAnomaly stores an anomaly report. It implements collision.Recorder.
// A nil Store drops the report.
func (s *Store) RecordAnomaly(r collision.Report) error {
	if s == nil {
		return nil
	}
	_, err := s.db.NamedExec(
		`INSERT INTO anomalies
		 (op, kind, dir_x, dir_y, self_left, self_top, self_right, self_bottom,
		  other_left, other_top, other_right, other_bottom, at)
		 VALUES (:op, :kind, :dir_x, :dir_y, :self_left, :self_top, :self_right, :self_bottom,
		  :other_left, :other_top, :other_right, :other_bottom, :at)`,
		newAnomalyRow(r),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record anomaly: %w", err)
	}
	return nil
}

// RecentAnomalies retrieves the most recent anomaly reports, newest first.
func (s *Store) RecentAnomalies(limit int) ([]AnomalyEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	var rows []anomalyRow
	err := s.db.Select(&rows,
		`SELECT id, op, kind, dir_x, dir_y, self_left, self_top, self_right, self_bottom,
		        other_left, other_top, other_right, other_bottom, at
		 FROM anomalies
		 ORDER BY at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query anomalies: %w", err)
	}

	entries := make([]AnomalyEntry, 0, len(rows))
	for _, row := range rows {
		e, err := row.entry()
		if err != nil {
			return nil, fmt.Errorf("storage: bad anomaly row %d: %w", row.ID, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// AnomalyCount is the number of stored reports of one op and kind.
type AnomalyCount struct {
	Op    string `db:"op"`
	Kind  string `db:"kind"`
	Count int    `db:"count"`
}

// AnomalyCounts aggregates stored reports by op and kind.
func (s *Store) AnomalyCounts() ([]AnomalyCount, error) {
	var counts []AnomalyCount
	err := s.db.Select(&counts,
		`SELECT op, kind, COUNT(*) AS count
		 FROM anomalies
		 GROUP BY op, kind
		 ORDER BY count DESC, op, kind`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot count anomalies: %w", err)
	}
	return counts, nil
}

// ClearAnomalies deletes all stored anomaly reports.
func (s *Store) ClearAnomalies() error {
	if _, err := s.db.Exec("DELETE FROM anomalies"); err != nil {
		return fmt.Errorf("storage: cannot clear anomalies: %w", err)
	}
	return nil
}
