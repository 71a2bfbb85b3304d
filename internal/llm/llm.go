package llm

import "context"

// CompletionRequest carries a prompt and the sampling parameters for one call.
type CompletionRequest struct {
	Prompt      string
	Temperature float32
	MaxTokens   int
}

// Client abstracts the remote completion provider so services can be tested
// with fakes. Implementations return the raw model output text.
type Client interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// CompleteFunc adapts a function to the Client interface.
type CompleteFunc func(ctx context.Context, req CompletionRequest) (string, error)

// Complete calls f.
func (f CompleteFunc) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	return f(ctx, req)
}
