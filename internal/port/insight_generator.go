package port

import "context"

// InsightRequest carries the prompt and an optional per-session API key that
// overrides the provider's configured key.
type InsightRequest struct {
	Prompt string
	APIKey string
}

// InsightOutput is the prose returned by a language model.
type InsightOutput struct {
	Text      string
	ModelUsed string
}

// InsightGenerator abstracts a hosted language model.
type InsightGenerator interface {
	Generate(ctx context.Context, req InsightRequest) (*InsightOutput, error)
}
