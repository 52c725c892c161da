package storage

import (
	"testing"
	"time"
)

func TestStoreSaveAndTopSessions(t *testing.T) {
	store := openTestStore(t)

	for _, b := range []int{100, 50, 200} {
		if _, err := store.SaveSession(Session{DemoID: "playground", Bounces: b, Ticks: b * 2}); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}
	if _, err := store.SaveSession(Session{DemoID: "bouncer", Bounces: 500}); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}

	sessions, err := store.TopSessions("playground", 10)
	if err != nil {
		t.Fatalf("TopSessions() failed: %v", err)
	}
	if len(sessions) != 3 {
		t.Fatalf("Expected 3 sessions, got %d", len(sessions))
	}
	if sessions[0].Bounces != 200 || sessions[1].Bounces != 100 || sessions[2].Bounces != 50 {
		t.Errorf("Sessions not in expected order: %+v", sessions)
	}
	if sessions[0].Ticks != 400 || sessions[0].DemoID != "playground" {
		t.Errorf("Session fields not stored: %+v", sessions[0])
	}
	if sessions[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should default to now")
	}

	limited, err := store.TopSessions("playground", 2)
	if err != nil {
		t.Fatalf("TopSessions() failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("Expected 2 sessions with limit, got %d", len(limited))
	}
}

func TestStoreSaveSessionRequiresDemo(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveSession(Session{Bounces: 1}); err == nil {
		t.Error("SaveSession() without demo id should fail")
	}
}

func TestStoreRecentSessions(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	store.SaveSession(Session{DemoID: "a", Bounces: 1, CreatedAt: base})
	store.SaveSession(Session{DemoID: "b", Bounces: 2, CreatedAt: base.Add(time.Hour)})
	store.SaveSession(Session{DemoID: "c", Bounces: 3, CreatedAt: base.Add(time.Minute)})

	recent, err := store.RecentSessions(2)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].DemoID != "b" || recent[1].DemoID != "c" {
		t.Errorf("RecentSessions() = %+v", recent)
	}
	if !recent[0].CreatedAt.Equal(base.Add(time.Hour)) {
		t.Errorf("CreatedAt = %v, expected %v", recent[0].CreatedAt, base.Add(time.Hour))
	}
}

func TestStoreClearSessions(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession(Session{DemoID: "playground", Bounces: 1})
	store.SaveSession(Session{DemoID: "bouncer", Bounces: 2})

	if err := store.ClearSessions("playground"); err != nil {
		t.Fatalf("ClearSessions() failed: %v", err)
	}

	if s, _ := store.TopSessions("playground", 10); len(s) != 0 {
		t.Errorf("Expected 0 playground sessions after clear, got %d", len(s))
	}
	if s, _ := store.TopSessions("bouncer", 10); len(s) != 1 {
		t.Error("bouncer sessions should not be affected by clearing playground")
	}
}

func TestStoreDemoStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetDemoStats("bouncer")
	if err != nil {
		t.Fatalf("GetDemoStats() failed: %v", err)
	}
	if empty.Sessions != 0 || empty.DemoID != "bouncer" || !empty.LastPlayed.IsZero() {
		t.Errorf("expected zero stats for unplayed demo, got %+v", empty)
	}

	last := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	store.SaveSession(Session{DemoID: "bouncer", Bounces: 10, Anomalies: 1, Ticks: 100, CreatedAt: last.Add(-time.Hour)})
	store.SaveSession(Session{DemoID: "bouncer", Bounces: 30, Anomalies: 2, Ticks: 300, CreatedAt: last})
	store.SaveSession(Session{DemoID: "playground", Bounces: 7})

	stats, err := store.GetDemoStats("bouncer")
	if err != nil {
		t.Fatalf("GetDemoStats() failed: %v", err)
	}
	if stats.Sessions != 2 || stats.MaxBounces != 30 || stats.TotalBounces != 40 {
		t.Errorf("GetDemoStats() = %+v", stats)
	}
	if stats.AvgBounces != 20 || stats.TotalAnomalies != 3 || stats.TotalTicks != 400 {
		t.Errorf("GetDemoStats() = %+v", stats)
	}
	if !stats.LastPlayed.Equal(last) {
		t.Errorf("LastPlayed = %v, expected %v", stats.LastPlayed, last)
	}

	all, err := store.GetAllDemoStats()
	if err != nil {
		t.Fatalf("GetAllDemoStats() failed: %v", err)
	}
	if len(all) != 2 || all["playground"].MaxBounces != 7 || all["bouncer"].Sessions != 2 {
		t.Errorf("GetAllDemoStats() = %+v", all)
	}
}
