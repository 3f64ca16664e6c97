package mood

import "strings"

// Label 表示引擎可返回的情绪类别。
type Label string

const (
	Greeting   Label = "greeting"
	Anxiety    Label = "anxiety"
	Depression Label = "depression"
	Stress     Label = "stress"
	Loneliness Label = "loneliness"
	General    Label = "general"
	Crisis     Label = "crisis"
)

// Labels lists every category in classification precedence order, general last.
func Labels() []Label {
	return []Label{Crisis, Anxiety, Depression, Stress, Loneliness, Greeting, General}
}

// Valid reports whether l is one of the closed set of categories.
func (l Label) Valid() bool {
	switch l {
	case Greeting, Anxiety, Depression, Stress, Loneliness, General, Crisis:
		return true
	default:
		return false
	}
}

// 情绪记录页面使用的标签与分类的对应关系。
var trackerAliases = map[string]Label{
	"anxious":   Anxiety,
	"sad":       Depression,
	"depressed": Depression,
	"stressed":  Stress,
	"lonely":    Loneliness,
}

// Parse normalizes a caller-supplied mood. Category names and the tracker labels
// that map onto a category are accepted; anything else reports false.
func Parse(raw string) (Label, bool) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return "", false
	}
	if label := Label(normalized); label.Valid() {
		return label, true
	}
	if label, ok := trackerAliases[normalized]; ok {
		return label, true
	}
	return "", false
}
