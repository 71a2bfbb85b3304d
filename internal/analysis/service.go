package analysis

import (
	"context"
	"time"

	"resume-coach/internal/llm"
	"resume-coach/internal/shared/metrics"
	"resume-coach/internal/shared/telemetry"
)

const (
	analyzeTemperature = 0.7
	analyzeMaxTokens   = 2000
)

// Service produces resume analyses through the injected completion client.
type Service struct {
	LLM llm.Client
}

// Analyze builds the analysis prompt for resumeText, calls the completion
// API once, and decodes the response. It never fails: a transport error or
// malformed model output yields the matching fallback payload instead.
func (s *Service) Analyze(ctx context.Context, resumeText string) ResumeAnalysis {
	metrics.IncCompletionRequest()
	start := time.Now()
	raw, err := s.LLM.Complete(ctx, llm.CompletionRequest{
		Prompt:      analyzePrompt(resumeText),
		Temperature: analyzeTemperature,
		MaxTokens:   analyzeMaxTokens,
	})
	metrics.ObserveCompletionDurationMs(float64(time.Since(start).Milliseconds()))
	if err != nil {
		telemetry.Error("analysis.completion.failed", map[string]any{"err": err.Error()})
		metrics.IncCompletionFallback()
		return remoteFailureFallback(err)
	}

	var out ResumeAnalysis
	if err := llm.DecodeJSON(raw, &out); err != nil {
		telemetry.Error("analysis.parse.failed", map[string]any{
			"err":      err.Error(),
			"raw_size": len(raw),
		})
		metrics.IncCompletionFallback()
		return parseFailureFallback()
	}
	return out
}
