package interviews

// fallbackQuestions is the generic question set served when the completion
// call fails or returns malformed output.
func fallbackQuestions() QuestionSet {
	return QuestionSet{
		TechnicalQuestions: []string{
			"Tell me about your technical skills and experience",
			"Describe a challenging technical problem you solved",
			"What technologies are you most comfortable with?",
			"How do you stay updated with new technologies?",
			"Explain a project you're proud of",
		},
		BehavioralQuestions: []string{
			"Describe a time you worked on a team project",
			"Tell me about a challenge you overcame",
			"How do you handle tight deadlines?",
			"Describe a time you had to learn something new quickly",
			"Tell me about a mistake you made and what you learned",
		},
		SituationalQuestions: []string{
			"How would you handle conflicting priorities?",
			"What would you do if you disagreed with your manager?",
			"How would you approach a project with unclear requirements?",
		},
	}
}

// fallbackEvaluation is the generic verdict served when the completion call
// fails or returns malformed output.
func fallbackEvaluation() Evaluation {
	return Evaluation{
		Score:    6,
		Feedback: "Thank you for your answer. Try to provide more specific examples and details.",
		Suggestions: []string{
			"Include concrete examples from your experience",
			"Structure your answer with a clear beginning, middle, and end",
		},
		StrongPoints: []string{"You provided a response to the question"},
	}
}
