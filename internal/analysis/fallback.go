package analysis

// parseFailureFallback is returned when the model answered but its output was
// not valid JSON.
func parseFailureFallback() ResumeAnalysis {
	return ResumeAnalysis{
		OverallScore:       7,
		Strengths:          []string{"Resume received and processed"},
		Weaknesses:         []string{"Unable to perform detailed analysis"},
		Suggestions:        []string{"Please try uploading again"},
		KeywordsMissing:    []string{},
		FormattingFeedback: "Standard formatting detected",
		Summary:            "Your resume has been received. Please try the analysis again for detailed feedback.",
	}
}

// remoteFailureFallback is returned when the completion call itself failed.
// The summary carries the underlying error, truncated to 100 characters.
func remoteFailureFallback(err error) ResumeAnalysis {
	return ResumeAnalysis{
		OverallScore:       5,
		Strengths:          []string{"Resume uploaded successfully"},
		Weaknesses:         []string{"Analysis service temporarily unavailable"},
		Suggestions:        []string{"Please try again in a moment"},
		KeywordsMissing:    []string{},
		FormattingFeedback: "Unable to analyze at this time",
		Summary:            "Error occurred: " + truncateError(err, 100),
	}
}

func truncateError(err error, limit int) string {
	msg := err.Error()
	runes := []rune(msg)
	if len(runes) <= limit {
		return msg
	}
	return string(runes[:limit])
}
