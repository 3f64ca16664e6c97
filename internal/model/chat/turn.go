package chat

import "time"

const (
	SenderUser = "user"
	SenderBot  = "bot"
)

// Turn is one message of a conversation. Type carries the mood category on bot turns only.
type Turn struct {
	ID        string    `json:"id,omitempty"`
	SessionID string    `json:"sessionId,omitempty"`
	Text      string    `json:"text"`
	Sender    string    `json:"sender"`
	Type      string    `json:"type,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
