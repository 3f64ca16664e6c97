package mood

import "strings"

const (
	defaultNegativeThreshold = -3
	defaultPositiveThreshold = 3
)

// Scorer 提供文本的情感分值。
type Scorer interface {
	Score(text string) int
}

// Rule maps any of its keywords to a category. Matching is substring containment on lower-cased text.
type Rule struct {
	Label    Label
	Keywords []string
}

// Config 控制分类器的可选策略。The zero value has both thresholds at 0; start from DefaultConfig.
type Config struct {
	// SentimentRefinement re-labels keyword-less text by its sentiment score.
	SentimentRefinement bool
	// Scores strictly below NegativeThreshold become depression, strictly above PositiveThreshold greeting.
	NegativeThreshold int
	PositiveThreshold int
	// CrisisOverridesExplicit lets crisis keywords win over a caller-declared mood.
	CrisisOverridesExplicit bool
}

// DefaultConfig returns refinement off with thresholds of -3 and +3.
func DefaultConfig() Config {
	return Config{
		NegativeThreshold: defaultNegativeThreshold,
		PositiveThreshold: defaultPositiveThreshold,
	}
}

// Classification is the category picked for a message and the sentiment score consulted, if any.
type Classification struct {
	Mood  Label
	Score int
}

// Classifier 按规则顺序匹配关键词，首个命中即返回。
type Classifier struct {
	rules  []Rule
	scorer Scorer
	cfg    Config
}

// DefaultRules returns the keyword rules in precedence order. Crisis must stay first.
func DefaultRules() []Rule {
	return []Rule{
		{Label: Crisis, Keywords: []string{"suicide", "kill myself", "end it all", "not worth living"}},
		{Label: Anxiety, Keywords: []string{"anxious", "anxiety", "worried", "panic"}},
		{Label: Depression, Keywords: []string{"depressed", "depression", "sad", "hopeless", "empty"}},
		{Label: Stress, Keywords: []string{"stressed", "stress", "overwhelmed", "pressure"}},
		{Label: Loneliness, Keywords: []string{"lonely", "alone", "isolated", "disconnected"}},
		{Label: Greeting, Keywords: []string{"hello", "hi", "hey", "start"}},
	}
}

// NewClassifier builds a classifier over DefaultRules. A nil scorer disables refinement.
func NewClassifier(scorer Scorer, cfg Config) *Classifier {
	return NewClassifierWithRules(DefaultRules(), scorer, cfg)
}

// NewClassifierWithRules builds a classifier over a private copy of rules.
func NewClassifierWithRules(rules []Rule, scorer Scorer, cfg Config) *Classifier {
	copied := make([]Rule, 0, len(rules))
	for _, rule := range rules {
		keywords := make([]string, 0, len(rule.Keywords))
		for _, kw := range rule.Keywords {
			if kw = strings.ToLower(strings.TrimSpace(kw)); kw != "" {
				keywords = append(keywords, kw)
			}
		}
		copied = append(copied, Rule{Label: rule.Label, Keywords: keywords})
	}

	return &Classifier{rules: copied, scorer: scorer, cfg: cfg}
}

// SentimentRefinement reports whether the refinement layer is active.
func (c *Classifier) SentimentRefinement() bool {
	return c.cfg.SentimentRefinement && c.scorer != nil
}

// Classify picks the category for text. A valid explicit mood is returned as-is, except that
// crisis keywords take over when CrisisOverridesExplicit is set.
func (c *Classifier) Classify(text string, explicit Label) Classification {
	if explicit.Valid() {
		if c.cfg.CrisisOverridesExplicit && c.Detect(text) == Crisis {
			return Classification{Mood: Crisis}
		}
		return Classification{Mood: explicit}
	}

	detected := c.Detect(text)
	if detected != General || !c.SentimentRefinement() {
		return Classification{Mood: detected}
	}

	score := c.scorer.Score(text)
	switch {
	case score < c.cfg.NegativeThreshold:
		return Classification{Mood: Depression, Score: score}
	case score > c.cfg.PositiveThreshold:
		return Classification{Mood: Greeting, Score: score}
	default:
		return Classification{Mood: General, Score: score}
	}
}

// Detect runs the keyword pass alone.
func (c *Classifier) Detect(text string) Label {
	normalized := strings.ToLower(text)
	for _, rule := range c.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(normalized, kw) {
				return rule.Label
			}
		}
	}
	return General
}
