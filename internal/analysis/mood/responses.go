package mood

// CrisisFollowUp replaces the drawn response when the previous bot turn was a crisis reply.
const CrisisFollowUp = "I'm still here with you. How are you feeling now? Remember, you can always reach out to crisis resources if you need immediate support."

// Table holds the canned replies and suggestions per category. Treat it as read-only once built.
type Table struct {
	responses   map[Label][]string
	suggestions map[Label][]string
}

// Responses returns a copy of the reply variants for l, falling back to general.
func (t *Table) Responses(l Label) []string {
	list, ok := t.responses[l]
	if !ok || len(list) == 0 {
		list = t.responses[General]
	}
	return append([]string(nil), list...)
}

// Suggestions returns a copy of the three suggestions for l, falling back to general.
func (t *Table) Suggestions(l Label) []string {
	list, ok := t.suggestions[l]
	if !ok || len(list) == 0 {
		list = t.suggestions[General]
	}
	return append([]string(nil), list...)
}

// DefaultTable returns the built-in replies.
func DefaultTable() *Table {
	return &Table{
		responses: map[Label][]string{
			Greeting: {
				"Hello! I'm here to listen and support you. How are you feeling today?",
				"Hi there! I'm your mental health companion. What's on your mind?",
				"Welcome! I'm here to help you through whatever you're experiencing. How can I support you today?",
			},
			Anxiety: {
				"I understand that anxiety can feel overwhelming. Let's try some breathing exercises together. Take a deep breath in for 4 counts, hold for 4, and exhale for 6. Would you like to try this?",
				"Anxiety is a natural response, but it doesn't have to control you. What specific thoughts or situations are making you feel anxious right now?",
				"It's okay to feel anxious. Let's focus on what you can control in this moment. Can you name three things you can see around you?",
			},
			Depression: {
				"I hear that you're going through a difficult time. Depression can make everything feel heavy, but you're not alone in this. What's one small thing that brought you even a tiny bit of comfort recently?",
				"Depression can feel like a dark cloud, but remember that feelings are temporary. Have you been able to maintain any routines that help you feel grounded?",
				"It takes courage to talk about depression. What would you like to do today that might help you feel even slightly better?",
			},
			Stress: {
				"Stress can feel overwhelming, but let's break it down. What's the most pressing thing on your mind right now?",
				"When we're stressed, our minds can race. Let's try a grounding technique: name 5 things you can see, 4 you can touch, 3 you can hear, 2 you can smell, and 1 you can taste.",
				"Stress is your body's way of responding to challenges. What are some healthy ways you've coped with stress in the past?",
			},
			Loneliness: {
				"Feeling lonely can be really difficult. Remember that reaching out like this is a positive step. What kind of connection are you looking for right now?",
				"Loneliness is a common human experience, even when we're surrounded by people. What activities or interests make you feel most like yourself?",
				"You're not alone in feeling lonely. Many people experience this. What would help you feel more connected today?",
			},
			General: {
				"Thank you for sharing that with me. How does talking about it make you feel?",
				"I'm listening. Can you tell me more about what's been on your mind?",
				"That sounds really challenging. What would be most helpful for you right now?",
				"I appreciate you opening up. What's one thing that might help you feel better today?",
			},
			Crisis: {
				"I'm concerned about your safety. If you're having thoughts of hurting yourself, please reach out to a crisis helpline immediately. In the US, you can call 988 for the Suicide & Crisis Lifeline. You matter, and there are people who want to help.",
				"Your safety is the most important thing right now. Please contact emergency services (911) or a crisis helpline if you're in immediate danger. You don't have to go through this alone.",
			},
		},
		suggestions: map[Label][]string{
			Anxiety:    {"Try breathing exercises", "Practice grounding techniques", "Take a short walk"},
			Depression: {"Do one small positive activity", "Reach out to someone you trust", "Get some sunlight"},
			Stress:     {"Take a break", "Practice time management", "Try relaxation techniques"},
			Loneliness: {"Connect with a friend", "Join a community activity", "Practice self-compassion"},
			General:    {"Take care of yourself", "Be patient with yourself", "Remember you're not alone"},
		},
	}
}
