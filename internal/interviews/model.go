package interviews

// QuestionSet groups generated interview questions by kind.
type QuestionSet struct {
	TechnicalQuestions   []string `json:"technical_questions"`
	BehavioralQuestions  []string `json:"behavioral_questions"`
	SituationalQuestions []string `json:"situational_questions"`
}

// Evaluation is the structured verdict on one interview answer.
type Evaluation struct {
	Score        float64  `json:"score"`
	Feedback     string   `json:"feedback"`
	Suggestions  []string `json:"suggestions"`
	StrongPoints []string `json:"strong_points"`
}
