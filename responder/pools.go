package responder

// FallbackPersonaID is used for personas that exist in the registry but have
// no dedicated pools. New personas should register their own pools instead of
// leaning on this.
const FallbackPersonaID = "tutor"

// DefaultPools are the canned replies for the built-in personas:
// 3 greeting and 4 general strings each.
func DefaultPools() map[string]Pools {
	return map[string]Pools{
		"tutor": {
			Greeting: []string{
				"Hello! Ready to learn something new today?",
				"Hi there! What subject shall we dig into?",
				"Hey! Great to see you back. What are we studying?",
			},
			General: []string{
				"That's a great question. Let's break it down step by step.",
				"Interesting! Here's how I'd approach that.",
				"Let me put that a simpler way and see if it clicks.",
				"Good thinking. Now try coming at it from the other direction.",
			},
		},
		"spiritual": {
			Greeting: []string{
				"Welcome, friend. I'm glad you've arrived.",
				"Hello. Take a breath and settle in.",
				"Greetings. May this moment bring you some calm.",
			},
			General: []string{
				"Sit with that for a moment. What does it tell you?",
				"The answer you're looking for is often already within you.",
				"Let's explore that with an open mind and see where it leads.",
				"Every question is an invitation to look a little deeper.",
			},
		},
		"gym": {
			Greeting: []string{
				"Hey champ! Ready to crush it today?",
				"What's up! Let's get after it.",
				"Hello! Hope you're warmed up, because we're going hard.",
			},
			General: []string{
				"No excuses. Let's make a plan and stick to it.",
				"Form first, weight second. Always.",
				"Consistency beats intensity. Show up again tomorrow.",
				"Rest is part of training too. Don't skip it.",
			},
		},
	}
}
