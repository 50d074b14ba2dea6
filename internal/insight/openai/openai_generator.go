package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	goopenai "github.com/sashabaranov/go-openai"

	"smartcarbon/internal/config"
	"smartcarbon/internal/domain"
	"smartcarbon/internal/insight"
	"smartcarbon/internal/port"
)

const defaultModel = goopenai.GPT4oMini

func init() {
	insight.RegisterProvider("openai", func(cfg *config.InsightProviderConfig) (port.InsightGenerator, error) {
		return NewGenerator(cfg), nil
	})
}

// Generator implements port.InsightGenerator using the OpenAI Chat Completions API.
type Generator struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewGenerator creates an OpenAI-backed insight generator. BaseURL in the
// config points it at any OpenAI-compatible endpoint.
func NewGenerator(cfg *config.InsightProviderConfig) *Generator {
	model := cfg.DefaultModel
	if model == "" {
		model = defaultModel
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &Generator{
		apiKey:  cfg.APIKey,
		model:   model,
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (g *Generator) Generate(ctx context.Context, in port.InsightRequest) (*port.InsightOutput, error) {
	apiKey := insight.ResolveAPIKey(in.APIKey, g.apiKey)
	if apiKey == "" {
		return nil, fmt.Errorf("openai: %w", domain.ErrMissingCredential)
	}

	clientCfg := goopenai.DefaultConfig(apiKey)
	if g.baseURL != "" {
		clientCfg.BaseURL = g.baseURL
	}
	clientCfg.HTTPClient = g.client
	client := goopenai.NewClientWithConfig(clientCfg)

	resp, err := client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model: g.model,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleUser, Content: in.Prompt},
		},
	})
	if err != nil {
		var apiErr *goopenai.APIError
		if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusTooManyRequests {
			return nil, insight.NewRateLimitError("openai", err, 0)
		}
		return nil, fmt.Errorf("calling openai API: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("empty response from API: no choices")
	}
	text := resp.Choices[0].Message.Content
	if text == "" {
		return nil, fmt.Errorf("empty response from API (finish reason %q)", resp.Choices[0].FinishReason)
	}

	model := resp.Model
	if model == "" {
		model = g.model
	}
	return &port.InsightOutput{Text: text, ModelUsed: model}, nil
}
