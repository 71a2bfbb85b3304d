package analysis

// ResumeAnalysis is the structured feedback produced for one resume. It is
// decoded from model output without key validation; absent keys stay zero.
type ResumeAnalysis struct {
	OverallScore       float64  `json:"overall_score"`
	Strengths          []string `json:"strengths"`
	Weaknesses         []string `json:"weaknesses"`
	Suggestions        []string `json:"suggestions"`
	KeywordsMissing    []string `json:"keywords_missing"`
	FormattingFeedback string   `json:"formatting_feedback"`
	Summary            string   `json:"summary"`
}
