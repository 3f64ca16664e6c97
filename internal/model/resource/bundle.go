package resource

// Bundle groups the coping content offered for a mood.
type Bundle struct {
	Title      string   `json:"title"`
	Techniques []string `json:"techniques"`
	Activities []string `json:"activities"`
	Apps       []string `json:"apps"`
}

func (b Bundle) clone() Bundle {
	return Bundle{
		Title:      b.Title,
		Techniques: append([]string(nil), b.Techniques...),
		Activities: append([]string(nil), b.Activities...),
		Apps:       append([]string(nil), b.Apps...),
	}
}

// Seed returns the mood-specific bundles keyed by mood category.
func Seed() map[string]Bundle {
	return map[string]Bundle{
		"anxiety": {
			Title: "Anxiety Support Resources",
			Techniques: []string{
				"4-7-8 Breathing: Inhale for 4, hold for 7, exhale for 8",
				"Progressive Muscle Relaxation",
				"5-4-3-2-1 Grounding Technique",
				"Mindful meditation for 5-10 minutes",
			},
			Activities: []string{
				"Gentle yoga or stretching",
				"Walking in nature",
				"Journaling your thoughts",
				"Listening to calming music",
			},
			Apps: []string{
				"Headspace - Guided meditation",
				"Calm - Sleep and meditation",
				"Insight Timer - Free meditation app",
				"Breathe2Relax - Breathing exercises",
			},
		},
		"depression": {
			Title: "Depression Support Resources",
			Techniques: []string{
				"Behavioral Activation - Do one small positive activity",
				"Gratitude journaling - Write 3 things you're grateful for",
				"Social connection - Reach out to one person",
				"Physical activity - Even a short walk helps",
			},
			Activities: []string{
				"Maintain a regular sleep schedule",
				"Eat regular, nutritious meals",
				"Spend time in sunlight or nature",
				"Engage in creative activities",
			},
			Apps: []string{
				"Moodpath - Depression screening and tracking",
				"Daylio - Mood and activity tracking",
				"Sanvello - Anxiety and depression support",
				"7 Cups - Online therapy and support",
			},
		},
		"stress": {
			Title: "Stress Management Resources",
			Techniques: []string{
				"Time management and prioritization",
				"Setting healthy boundaries",
				"Problem-solving approach",
				"Mindfulness and present-moment awareness",
			},
			Activities: []string{
				"Regular exercise or physical activity",
				"Hobbies and creative outlets",
				"Social support and connection",
				"Adequate rest and relaxation",
			},
			Apps: []string{
				"MyLife - Stress and mood tracking",
				"Ten Percent Happier - Meditation for skeptics",
				"Stop, Breathe & Think - Mindfulness app",
				"Forest - Focus and productivity",
			},
		},
	}
}

// Generic is served for every mood without its own bundle.
func Generic() Bundle {
	return Bundle{
		Title: "General Mental Health Resources",
		Techniques: []string{
			"Practice mindfulness and meditation",
			"Maintain regular sleep schedule",
			"Stay connected with supportive people",
			"Engage in regular physical activity",
		},
		Activities: []string{
			"Journaling your thoughts and feelings",
			"Creative expression through art or music",
			"Spending time in nature",
			"Learning new skills or hobbies",
		},
		Apps: []string{
			"Headspace - Meditation and mindfulness",
			"Moodpath - Mental health tracking",
			"7 Cups - Online therapy and support",
			"Calm - Sleep and meditation",
		},
	}
}
