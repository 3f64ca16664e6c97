package tracker

import "time"

// Option is a selectable mood on the tracker page.
type Option struct {
	ID    string `json:"id"`
	Emoji string `json:"emoji"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// Entry is one logged mood.
type Entry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Mood      string    `json:"mood"`
	Notes     string    `json:"notes"`
	Timestamp time.Time `json:"timestamp"`
	Date      string    `json:"date"`
}

// Stats summarizes a user's recent entries.
type Stats struct {
	TotalEntries   int    `json:"totalEntries"`
	LastWindow     int    `json:"last7Days"`
	MostCommonMood string `json:"mostCommonMood,omitempty"`
}

// Options returns the tracker moods in display order.
func Options() []Option {
	return []Option{
		{ID: "excellent", Emoji: "😊", Label: "Excellent", Color: "#4CAF50"},
		{ID: "good", Emoji: "😌", Label: "Good", Color: "#8BC34A"},
		{ID: "okay", Emoji: "😐", Label: "Okay", Color: "#FFC107"},
		{ID: "anxious", Emoji: "😰", Label: "Anxious", Color: "#FF9800"},
		{ID: "sad", Emoji: "😢", Label: "Sad", Color: "#2196F3"},
		{ID: "stressed", Emoji: "😤", Label: "Stressed", Color: "#F44336"},
		{ID: "depressed", Emoji: "😔", Label: "Depressed", Color: "#9C27B0"},
		{ID: "angry", Emoji: "😠", Label: "Angry", Color: "#E91E63"},
	}
}

// ValidMood reports whether id is one of Options.
func ValidMood(id string) bool {
	for _, opt := range Options() {
		if opt.ID == id {
			return true
		}
	}
	return false
}
