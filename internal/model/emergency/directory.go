package emergency

// Directory lists crisis lines. Entries read "<number> - <description>".
type Directory struct {
	US            map[string]string `json:"us"`
	International map[string]string `json:"international"`
	Note          string            `json:"note"`
}

// Clone returns a deep copy so callers cannot alter the shared directory.
func (d Directory) Clone() Directory {
	return Directory{
		US:            cloneMap(d.US),
		International: cloneMap(d.International),
		Note:          d.Note,
	}
}

// Seed returns the built-in directory.
func Seed() Directory {
	return Directory{
		US: map[string]string{
			"suicide": "988 - Suicide & Crisis Lifeline",
			"crisis":  "988 - Crisis Text Line (text HOME to 741741)",
			"general": "211 - Community Resources and Information",
		},
		International: map[string]string{
			"uk":        "116 123 - Samaritans",
			"canada":    "1-833-456-4566 - Crisis Services Canada",
			"australia": "13 11 14 - Lifeline Australia",
		},
		Note: "If you're in immediate danger, please call emergency services (911 in the US) or go to your nearest emergency room.",
	}
}

func cloneMap(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
