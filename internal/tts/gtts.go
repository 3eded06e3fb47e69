package tts

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
)

const gttsEndpoint = "https://translate.google.com/translate_tts"

// GTTSProvider synthesizes speech through the public Google Translate TTS
// endpoint. It is the generic middle stage of the chain: it takes the
// detected language code directly and needs no credential.
type GTTSProvider struct {
	httpClient *resty.Client
}

func NewGTTSProvider() *GTTSProvider {
	return &GTTSProvider{httpClient: resty.New()}
}

func (p *GTTSProvider) Name() string { return "gtts" }

func (p *GTTSProvider) Synthesize(ctx context.Context, req Request) ([]byte, error) {
	lang := req.LanguageCode
	if lang == "" {
		lang = "en"
	}

	resp, err := p.httpClient.R().
		SetContext(ctx).
		SetQueryParam("ie", "UTF-8").
		SetQueryParam("client", "tw-ob").
		SetQueryParam("tl", lang).
		SetQueryParam("q", req.Text).
		Get(gttsEndpoint)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("returned status %d", resp.StatusCode())
	}
	return resp.Body(), nil
}
