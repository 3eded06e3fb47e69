package tts

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
)

// OpenAIProvider is the last-resort paid stage. It is only attempted when an
// API key is configured; without one the stage reports itself unavailable
// and the chain moves on.
type OpenAIProvider struct {
	httpClient *resty.Client
	apiKey     string
}

func NewOpenAIProvider(baseURL, apiKey string) *OpenAIProvider {
	client := resty.New()
	client.SetBaseURL(baseURL)

	return &OpenAIProvider{
		httpClient: client,
		apiKey:     apiKey,
	}
}

func (p *OpenAIProvider) Name() string { return "openai" }

type speechRequest struct {
	Model string `json:"model"`
	Voice string `json:"voice"`
	Input string `json:"input"`
}

func (p *OpenAIProvider) Synthesize(ctx context.Context, req Request) ([]byte, error) {
	if p.apiKey == "" {
		return nil, nil
	}

	voice := ResolveFallbackVoice(req.Accent)

	resp, err := p.httpClient.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+p.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(speechRequest{Model: "tts-1", Voice: voice, Input: req.Text}).
		Post("/audio/speech")
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("returned status %d: %s", resp.StatusCode(), resp.String())
	}
	return resp.Body(), nil
}
