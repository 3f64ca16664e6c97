package mood

import (
	"math/rand/v2"
	"time"

	"github.com/zhouzirui/solace/backend/internal/model/chat"
)

// Source draws the index of the reply variant. Implementations must be safe for concurrent use
// when the Selector is shared.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Result is the reply produced for one message.
type Result struct {
	Mood           Label     `json:"type"`
	SentimentScore int       `json:"sentimentScore"`
	ResponseText   string    `json:"message"`
	Suggestions    []string  `json:"suggestions"`
	Timestamp      time.Time `json:"timestamp"`
}

// Selector 根据情绪类别和最近一轮对话挑选回复。
type Selector struct {
	table  *Table
	source Source
	now    func() time.Time
}

// SelectorOption customizes a Selector.
type SelectorOption func(*Selector)

// WithSource injects the random source, e.g. a seeded *rand.Rand in tests.
func WithSource(src Source) SelectorOption {
	return func(s *Selector) {
		if src != nil {
			s.source = src
		}
	}
}

// WithClock overrides the result timestamp clock.
func WithClock(now func() time.Time) SelectorOption {
	return func(s *Selector) {
		if now != nil {
			s.now = now
		}
	}
}

// NewSelector returns a Selector over table, DefaultTable when nil.
func NewSelector(table *Table, opts ...SelectorOption) *Selector {
	if table == nil {
		table = DefaultTable()
	}
	s := &Selector{
		table:  table,
		source: globalSource{},
		now:    func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Respond builds the reply for c. history is read, never modified.
func (s *Selector) Respond(c Classification, history []chat.Turn) Result {
	label := c.Mood
	if !label.Valid() {
		label = General
	}

	variants := s.table.Responses(label)
	text := variants[s.source.IntN(len(variants))]

	if n := len(history); n > 0 && Label(history[n-1].Type) == Crisis {
		text = CrisisFollowUp
	}

	return Result{
		Mood:           label,
		SentimentScore: c.Score,
		ResponseText:   text,
		Suggestions:    s.table.Suggestions(label),
		Timestamp:      s.now(),
	}
}
