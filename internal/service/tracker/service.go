package tracker

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/zhouzirui/solace/backend/internal/model/tracker"
)

var (
	ErrUserRequired = errors.New("user id is required")
	ErrInvalidMood  = errors.New("invalid mood")
)

const (
	defaultHistoryLimit = 30
	defaultStatsWindow  = 7
)

// Config 控制情绪记录的保留数量与统计窗口。
type Config struct {
	HistoryLimit int
	StatsWindow  int
}

// Service records mood entries and summarizes them.
type Service struct {
	store  tracker.Store
	limit  int
	window int
	now    func() time.Time
}

// NewService returns a Service over store.
func NewService(store tracker.Store, cfg Config) *Service {
	limit := cfg.HistoryLimit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	window := cfg.StatsWindow
	if window <= 0 {
		window = defaultStatsWindow
	}
	return &Service{
		store:  store,
		limit:  limit,
		window: window,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Log validates and stores a new entry for userID.
func (s *Service) Log(ctx context.Context, userID, mood, notes string) (tracker.Entry, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return tracker.Entry{}, ErrUserRequired
	}
	mood = strings.ToLower(strings.TrimSpace(mood))
	if !tracker.ValidMood(mood) {
		return tracker.Entry{}, fmt.Errorf("%w: %q", ErrInvalidMood, mood)
	}

	now := s.now()
	entry := tracker.Entry{
		ID:        uuid.NewString(),
		UserID:    userID,
		Mood:      mood,
		Notes:     strings.TrimSpace(notes),
		Timestamp: now,
		Date:      now.Format(time.DateOnly),
	}

	if err := s.store.Append(ctx, entry, s.limit); err != nil {
		return tracker.Entry{}, fmt.Errorf("save mood entry: %w", err)
	}
	return entry, nil
}

// History returns the user's entries, newest first.
func (s *Service) History(ctx context.Context, userID string) ([]tracker.Entry, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrUserRequired
	}
	entries, err := s.store.Recent(ctx, userID, s.limit)
	if err != nil {
		return nil, fmt.Errorf("load mood entries: %w", err)
	}
	return entries, nil
}

// Stats counts entries and finds the most common mood within the stats window.
func (s *Service) Stats(ctx context.Context, userID string) (tracker.Stats, error) {
	entries, err := s.History(ctx, userID)
	if err != nil {
		return tracker.Stats{}, err
	}
	if len(entries) == 0 {
		return tracker.Stats{}, nil
	}

	recent := entries
	if len(recent) > s.window {
		recent = recent[:s.window]
	}

	return tracker.Stats{
		TotalEntries:   len(entries),
		LastWindow:     len(recent),
		MostCommonMood: mostCommon(recent),
	}, nil
}

// mostCommon walks moods in first-appearance order; a tie goes to the later mood.
func mostCommon(entries []tracker.Entry) string {
	counts := make(map[string]int)
	order := make([]string, 0, len(entries))
	for _, e := range entries {
		if _, seen := counts[e.Mood]; !seen {
			order = append(order, e.Mood)
		}
		counts[e.Mood]++
	}

	best := order[0]
	for _, m := range order[1:] {
		if counts[best] <= counts[m] {
			best = m
		}
	}
	return best
}
