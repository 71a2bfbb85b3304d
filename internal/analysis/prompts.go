package analysis

import (
	_ "embed"
	"fmt"
)

//go:embed prompts/analyze.txt
var analyzeTemplate string

func analyzePrompt(resumeText string) string {
	return fmt.Sprintf(analyzeTemplate, resumeText)
}
