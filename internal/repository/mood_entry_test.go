package repository

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/zhouzirui/solace/backend/internal/model/tracker"
)

// 需要可用的 PostgreSQL，未设置 TEST_DATABASE_URL 时跳过。
func openTestStore(t *testing.T) *Store {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	store, err := NewStore(context.Background(), url)
	if err != nil {
		t.Fatalf("NewStore err: %v", err)
	}
	t.Cleanup(store.Close)
	return store
}

func TestMoodEntryRepoAppendTrims(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	userID := "test-" + uuid.NewString()
	t.Cleanup(func() {
		store.db.Where("user_id = ?", userID).Delete(&moodEntryModel{})
	})

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		entry := tracker.Entry{
			ID:        uuid.NewString(),
			UserID:    userID,
			Mood:      fmt.Sprintf("mood-%d", i),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Date:      base.Format(time.DateOnly),
		}
		if err := store.MoodEntry.Append(ctx, entry, 2); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := store.MoodEntry.Recent(ctx, userID, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].Mood != "mood-3" || got[1].Mood != "mood-2" {
		t.Fatalf("unexpected order: %s, %s", got[0].Mood, got[1].Mood)
	}
}
