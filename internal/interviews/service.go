package interviews

import (
	"context"
	"time"

	"resume-coach/internal/llm"
	"resume-coach/internal/shared/metrics"
	"resume-coach/internal/shared/telemetry"
)

const (
	questionsTemperature = 0.8
	questionsMaxTokens   = 2000

	evaluateTemperature = 0.7
	evaluateMaxTokens   = 1500
)

// Service generates interview questions and evaluates answers through the
// injected completion client.
type Service struct {
	LLM llm.Client
}

// GenerateQuestions asks the model for a question set tailored to the
// resume. Any failure yields the generic fallback set.
func (s *Service) GenerateQuestions(ctx context.Context, resumeText string) QuestionSet {
	raw, err := s.complete(ctx, llm.CompletionRequest{
		Prompt:      questionsPrompt(resumeText),
		Temperature: questionsTemperature,
		MaxTokens:   questionsMaxTokens,
	})
	if err != nil {
		telemetry.Error("interviews.questions.failed", map[string]any{"err": err.Error()})
		metrics.IncCompletionFallback()
		return fallbackQuestions()
	}

	var out QuestionSet
	if err := llm.DecodeJSON(raw, &out); err != nil {
		telemetry.Error("interviews.questions.parse_failed", map[string]any{
			"err":      err.Error(),
			"raw_size": len(raw),
		})
		metrics.IncCompletionFallback()
		return fallbackQuestions()
	}
	return out
}

// EvaluateAnswer asks the model to score one question/answer pair. Any
// failure yields the generic fallback verdict.
func (s *Service) EvaluateAnswer(ctx context.Context, question, answer string) Evaluation {
	raw, err := s.complete(ctx, llm.CompletionRequest{
		Prompt:      evaluatePrompt(question, answer),
		Temperature: evaluateTemperature,
		MaxTokens:   evaluateMaxTokens,
	})
	if err != nil {
		telemetry.Error("interviews.evaluate.failed", map[string]any{"err": err.Error()})
		metrics.IncCompletionFallback()
		return fallbackEvaluation()
	}

	var out Evaluation
	if err := llm.DecodeJSON(raw, &out); err != nil {
		telemetry.Error("interviews.evaluate.parse_failed", map[string]any{
			"err":      err.Error(),
			"raw_size": len(raw),
		})
		metrics.IncCompletionFallback()
		return fallbackEvaluation()
	}
	return out
}

func (s *Service) complete(ctx context.Context, req llm.CompletionRequest) (string, error) {
	metrics.IncCompletionRequest()
	start := time.Now()
	raw, err := s.LLM.Complete(ctx, req)
	metrics.ObserveCompletionDurationMs(float64(time.Since(start).Milliseconds()))
	return raw, err
}
