package chat

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zhouzirui/solace/backend/internal/model/chat"
)

var (
	ErrSessionNotFound = errors.New("session not found")
)

// Service keeps chat transcripts in memory.
type Service struct {
	mu       sync.RWMutex
	sessions map[string]chat.Session
	turns    map[string][]chat.Turn

	// exchanges serializes Exchange calls per session.
	exchanges map[string]*sync.Mutex
}

// NewService bootstraps the in-memory chat service.
func NewService() *Service {
	return &Service{
		sessions: make(map[string]chat.Session),
		turns:    make(map[string][]chat.Turn),

		exchanges: make(map[string]*sync.Mutex),
	}
}

// CreateSession provisions an anonymous session.
func (s *Service) CreateSession(_ context.Context) (chat.Session, error) {
	session := chat.Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.turns[session.ID] = make([]chat.Turn, 0, 16)
	s.exchanges[session.ID] = &sync.Mutex{}
	s.mu.Unlock()

	return session, nil
}

// SaveTurn appends a turn to the session transcript and returns it with ID and timestamp filled.
func (s *Service) SaveTurn(_ context.Context, turn chat.Turn) (chat.Turn, error) {
	if turn.SessionID == "" {
		return chat.Turn{}, ErrSessionNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[turn.SessionID]; !ok {
		return chat.Turn{}, ErrSessionNotFound
	}

	turn = stamp(turn)
	s.turns[turn.SessionID] = append(s.turns[turn.SessionID], turn)
	return turn, nil
}

// Exchange hands fn a copy of the transcript and appends the turns it returns in one step.
// Exchanges on the same session run one at a time; when fn fails nothing is appended.
func (s *Service) Exchange(ctx context.Context, sessionID string, fn func(transcript []chat.Turn) ([]chat.Turn, error)) ([]chat.Turn, error) {
	s.mu.RLock()
	lock, ok := s.exchanges[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}

	lock.Lock()
	defer lock.Unlock()

	transcript, err := s.LoadTranscript(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	pending, err := fn(transcript)
	if err != nil {
		return nil, err
	}

	saved := make([]chat.Turn, 0, len(pending))
	for _, turn := range pending {
		turn.SessionID = sessionID
		saved = append(saved, stamp(turn))
	}

	s.mu.Lock()
	s.turns[sessionID] = append(s.turns[sessionID], saved...)
	s.mu.Unlock()

	return saved, nil
}

func stamp(turn chat.Turn) chat.Turn {
	turn.ID = uuid.NewString()
	if turn.Timestamp.IsZero() {
		turn.Timestamp = time.Now().UTC()
	}
	return turn
}

// GetSession retrieves a session by identifier.
func (s *Service) GetSession(_ context.Context, sessionID string) (chat.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return chat.Session{}, ErrSessionNotFound
	}
	return session, nil
}

// LoadTranscript returns stored turns for the provided session.
func (s *Service) LoadTranscript(_ context.Context, sessionID string) ([]chat.Turn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	turns, ok := s.turns[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	copied := make([]chat.Turn, len(turns))
	copy(copied, turns)
	return copied, nil
}
