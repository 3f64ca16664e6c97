package tracker

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/zhouzirui/solace/backend/internal/model/tracker"
)

func newTestService(limit, window int) *Service {
	svc := NewService(tracker.NewMemoryStore(), Config{HistoryLimit: limit, StatsWindow: window})
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	calls := 0
	svc.now = func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * time.Minute)
	}
	return svc
}

func TestLogValidates(t *testing.T) {
	svc := newTestService(0, 0)
	ctx := context.Background()

	if _, err := svc.Log(ctx, "", "good", ""); !errors.Is(err, ErrUserRequired) {
		t.Fatalf("expected ErrUserRequired, got %v", err)
	}
	if _, err := svc.Log(ctx, "u1", "ecstatic", ""); !errors.Is(err, ErrInvalidMood) {
		t.Fatalf("expected ErrInvalidMood, got %v", err)
	}
}

func TestLogStampsEntry(t *testing.T) {
	svc := newTestService(0, 0)
	entry, err := svc.Log(context.Background(), "u1", " Anxious ", "  exam tomorrow ")
	if err != nil {
		t.Fatalf("Log err: %v", err)
	}
	if entry.ID == "" {
		t.Fatal("expected generated id")
	}
	if entry.Mood != "anxious" || entry.Notes != "exam tomorrow" {
		t.Fatalf("unexpected entry: %+v", entry)
	}
	if entry.Date != "2026-03-01" {
		t.Fatalf("unexpected date: %s", entry.Date)
	}
}

func TestHistoryNewestFirstAndTrimmed(t *testing.T) {
	svc := newTestService(3, 0)
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		if _, err := svc.Log(ctx, "u1", "good", fmt.Sprintf("n%d", i)); err != nil {
			t.Fatalf("Log err: %v", err)
		}
	}
	if _, err := svc.Log(ctx, "u2", "sad", ""); err != nil {
		t.Fatalf("Log err: %v", err)
	}

	entries, err := svc.History(ctx, "u1")
	if err != nil {
		t.Fatalf("History err: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Notes != "n4" || entries[2].Notes != "n2" {
		t.Fatalf("unexpected order: %s..%s", entries[0].Notes, entries[2].Notes)
	}
}

func TestStatsEmpty(t *testing.T) {
	svc := newTestService(0, 0)
	stats, err := svc.Stats(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("Stats err: %v", err)
	}
	if stats.TotalEntries != 0 || stats.MostCommonMood != "" {
		t.Fatalf("expected empty stats, got %+v", stats)
	}
}

func TestStatsWindowAndMostCommon(t *testing.T) {
	svc := newTestService(30, 3)
	ctx := context.Background()
	for _, m := range []string{"sad", "sad", "sad", "good", "okay", "good"} {
		if _, err := svc.Log(ctx, "u1", m, ""); err != nil {
			t.Fatalf("Log err: %v", err)
		}
	}

	stats, err := svc.Stats(ctx, "u1")
	if err != nil {
		t.Fatalf("Stats err: %v", err)
	}
	if stats.TotalEntries != 6 || stats.LastWindow != 3 {
		t.Fatalf("unexpected counts: %+v", stats)
	}
	// window holds good, okay, good
	if stats.MostCommonMood != "good" {
		t.Fatalf("expected good, got %s", stats.MostCommonMood)
	}
}

func TestMostCommonTieGoesToLaterMood(t *testing.T) {
	entries := []tracker.Entry{{Mood: "good"}, {Mood: "sad"}, {Mood: "sad"}, {Mood: "good"}}
	if got := mostCommon(entries); got != "sad" {
		t.Fatalf("expected sad, got %s", got)
	}
}
