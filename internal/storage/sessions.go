package storage

import (
	"fmt"
	"time"
)

// Session is the summary of one run of a demo.
type Session struct {
	ID        int64
	DemoID    string
	Bounces   int
	Anomalies int
	Ticks     int
	CreatedAt time.Time
}

type sessionRow struct {
	ID        int64  `db:"id"`
	DemoID    string `db:"demo_id"`
	Bounces   int    `db:"bounces"`
	Anomalies int    `db:"anomalies"`
	Ticks     int    `db:"ticks"`
	CreatedAt int64  `db:"created_at"`
}

func (r sessionRow) session() Session {
	return Session{
		ID:        r.ID,
		DemoID:    r.DemoID,
		Bounces:   r.Bounces,
		Anomalies: r.Anomalies,
		Ticks:     r.Ticks,
		CreatedAt: fromNanos(r.CreatedAt),
	}
}

// SaveSession records a finished session. A zero CreatedAt is set to now.
// Returns the ID of the inserted record.
func (s *Store) SaveSession(sess Session) (int64, error) {
	if sess.DemoID == "" {
		return 0, fmt.Errorf("storage: session has no demo id")
	}
	if sess.CreatedAt.IsZero() {
		sess.CreatedAt = time.Now()
	}

	result, err := s.db.Exec(
		`INSERT INTO sessions (demo_id, bounces, anomalies, ticks, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		sess.DemoID, sess.Bounces, sess.Anomalies, sess.Ticks, sess.CreatedAt.UnixNano(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopSessions retrieves the N sessions with the most bounces for a demo.
func (s *Store) TopSessions(demoID string, limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 10
	}

	var rows []sessionRow
	err := s.db.Select(&rows,
		`SELECT id, demo_id, bounces, anomalies, ticks, created_at
		 FROM sessions
		 WHERE demo_id = ?
		 ORDER BY bounces DESC, id ASC
		 LIMIT ?`,
		demoID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	return toSessions(rows), nil
}

// RecentSessions retrieves the most recent sessions across all demos.
func (s *Store) RecentSessions(limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 20
	}

	var rows []sessionRow
	err := s.db.Select(&rows,
		`SELECT id, demo_id, bounces, anomalies, ticks, created_at
		 FROM sessions
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query recent sessions: %w", err)
	}
	return toSessions(rows), nil
}

func toSessions(rows []sessionRow) []Session {
	out := make([]Session, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.session())
	}
	return out
}

// ClearSessions deletes all sessions for the given demo.
func (s *Store) ClearSessions(demoID string) error {
	if _, err := s.db.Exec("DELETE FROM sessions WHERE demo_id = ?", demoID); err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

// DemoStats contains aggregated statistics for a demo.
type DemoStats struct {
	DemoID         string
	Sessions       int
	MaxBounces     int
	AvgBounces     float64
	TotalBounces   int64
	TotalAnomalies int64
	TotalTicks     int64
	LastPlayed     time.Time
}

type statsRow struct {
	DemoID         string  `db:"demo_id"`
	Sessions       int     `db:"sessions"`
	MaxBounces     int     `db:"max_bounces"`
	AvgBounces     float64 `db:"avg_bounces"`
	TotalBounces   int64   `db:"total_bounces"`
	TotalAnomalies int64   `db:"total_anomalies"`
	TotalTicks     int64   `db:"total_ticks"`
	LastPlayed     int64   `db:"last_played"`
}

func (r statsRow) stats() *DemoStats {
	return &DemoStats{
		DemoID:         r.DemoID,
		Sessions:       r.Sessions,
		MaxBounces:     r.MaxBounces,
		AvgBounces:     r.AvgBounces,
		TotalBounces:   r.TotalBounces,
		TotalAnomalies: r.TotalAnomalies,
		TotalTicks:     r.TotalTicks,
		LastPlayed:     fromNanos(r.LastPlayed),
	}
}

const statsColumns = `demo_id,
	COUNT(*) AS sessions,
	COALESCE(MAX(bounces), 0) AS max_bounces,
	COALESCE(AVG(bounces), 0.0) AS avg_bounces,
	COALESCE(SUM(bounces), 0) AS total_bounces,
	COALESCE(SUM(anomalies), 0) AS total_anomalies,
	COALESCE(SUM(ticks), 0) AS total_ticks,
	COALESCE(MAX(created_at), 0) AS last_played`

// GetDemoStats retrieves aggregated statistics for a specific demo.
// A demo that was never played yields zero stats.
func (s *Store) GetDemoStats(demoID string) (*DemoStats, error) {
	var row statsRow
	err := s.db.Get(&row,
		`SELECT `+statsColumns+` FROM sessions WHERE demo_id = ? GROUP BY demo_id`,
		demoID,
	)
	if isNoRows(err) {
		return &DemoStats{DemoID: demoID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get demo stats: %w", err)
	}
	return row.stats(), nil
}

// GetAllDemoStats retrieves statistics for every demo that has been played.
func (s *Store) GetAllDemoStats() (map[string]*DemoStats, error) {
	var rows []statsRow
	err := s.db.Select(&rows, `SELECT `+statsColumns+` FROM sessions GROUP BY demo_id`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all demo stats: %w", err)
	}

	stats := make(map[string]*DemoStats, len(rows))
	for _, r := range rows {
		stats[r.DemoID] = r.stats()
	}
	return stats, nil
}
