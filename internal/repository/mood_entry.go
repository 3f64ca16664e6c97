package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/zhouzirui/solace/backend/internal/model/tracker"
)

type moodEntryModel struct {
	ID        string    `gorm:"type:varchar(36);primaryKey"`
	UserID    string    `gorm:"type:varchar(128);index:idx_mood_entries_user_created,priority:1"`
	Mood      string    `gorm:"type:varchar(32)"`
	Notes     string    `gorm:"type:text"`
	Date      string    `gorm:"type:varchar(10)"`
	CreatedAt time.Time `gorm:"index:idx_mood_entries_user_created,priority:2"`
}

func (moodEntryModel) TableName() string {
	return "mood_entries"
}

// MoodEntryRepo implements tracker.Store on PostgreSQL.
type MoodEntryRepo struct {
	db *gorm.DB
}

// NewMoodEntryRepo returns a MoodEntryRepo.
func NewMoodEntryRepo(db *gorm.DB) *MoodEntryRepo {
	return &MoodEntryRepo{db: db}
}

var _ tracker.Store = (*MoodEntryRepo)(nil)

// Append inserts entry and deletes the user's rows beyond limit in one transaction.
func (r *MoodEntryRepo) Append(ctx context.Context, entry tracker.Entry, limit int) error {
	record := moodEntryModel{
		ID:        entry.ID,
		UserID:    entry.UserID,
		Mood:      entry.Mood,
		Notes:     entry.Notes,
		Date:      entry.Date,
		CreatedAt: entry.Timestamp,
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&record).Error; err != nil {
			return fmt.Errorf("failed to insert mood entry: %w", err)
		}
		if limit <= 0 {
			return nil
		}

		keep := tx.Model(&moodEntryModel{}).
			Select("id").
			Where("user_id = ?", entry.UserID).
			Order("created_at DESC").
			Limit(limit)
		if err := tx.Where("user_id = ? AND id NOT IN (?)", entry.UserID, keep).
			Delete(&moodEntryModel{}).Error; err != nil {
			return fmt.Errorf("failed to trim mood entries: %w", err)
		}
		return nil
	})
}

// Recent returns up to limit entries, newest first.
func (r *MoodEntryRepo) Recent(ctx context.Context, userID string, limit int) ([]tracker.Entry, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var records []moodEntryModel
	if err := query.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to query mood entries: %w", err)
	}

	entries := make([]tracker.Entry, 0, len(records))
	for _, record := range records {
		entries = append(entries, tracker.Entry{
			ID:        record.ID,
			UserID:    record.UserID,
			Mood:      record.Mood,
			Notes:     record.Notes,
			Timestamp: record.CreatedAt.UTC(),
			Date:      record.Date,
		})
	}
	return entries, nil
}
