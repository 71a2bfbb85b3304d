package interviews

import (
	_ "embed"
	"fmt"
)

var (
	//go:embed prompts/questions.txt
	questionsTemplate string
	//go:embed prompts/evaluate.txt
	evaluateTemplate string
)

func questionsPrompt(resumeText string) string {
	return fmt.Sprintf(questionsTemplate, resumeText)
}

func evaluatePrompt(question, answer string) string {
	return fmt.Sprintf(evaluateTemplate, question, answer)
}
