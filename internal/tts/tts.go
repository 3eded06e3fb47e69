package tts

import (
	"context"
	"errors"
	"log"
	"strings"
)

var (
	// ErrNoText is returned before any provider runs when the request text
	// is empty.
	ErrNoText = errors.New("no text provided")

	// ErrNoService is returned when every provider in the chain failed or
	// was unavailable.
	ErrNoService = errors.New("no TTS service available")
)

// Request carries one synthesis request through the provider chain.
type Request struct {
	// Text is the text to speak.
	Text string

	// LanguageCode is the detected ISO 639-1 code of Text.
	LanguageCode string

	// Accent is the caller-supplied locale tag used to pick a voice for the
	// paid fallback provider.
	Accent string
}

// Synthesizer is one speech-synthesis backend. Synthesize returns audio
// bytes, or (nil, nil) when the provider cannot serve this request at all
// (no voice for the language, missing credential).
type Synthesizer interface {
	Name() string
	Synthesize(ctx context.Context, req Request) ([]byte, error)
}

// Chain tries an ordered list of providers until one returns audio. Stage
// failures are logged and swallowed; only exhaustion of the whole chain is
// surfaced to the caller. Nothing is retried.
type Chain struct {
	providers []Synthesizer
}

func NewChain(providers ...Synthesizer) *Chain {
	return &Chain{providers: providers}
}

func (c *Chain) Synthesize(ctx context.Context, req Request) ([]byte, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, ErrNoText
	}

	for _, p := range c.providers {
		audio, err := p.Synthesize(ctx, req)
		if err != nil {
			log.Printf("%s TTS error: %v", p.Name(), err)
			continue
		}
		if len(audio) > 0 {
			return audio, nil
		}
	}

	return nil, ErrNoService
}
