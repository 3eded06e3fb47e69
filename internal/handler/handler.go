// Package handler contains the HTTP endpoint layer. Each handler is a thin
// composition of the llm, dictionary, images, tts and stt components; the
// dependencies are taken as small interfaces so tests can substitute fakes.
package handler

import (
	"context"

	"github.com/epikoding/lexigraph/internal/images"
	"github.com/epikoding/lexigraph/internal/llm"
	"github.com/epikoding/lexigraph/internal/tts"
)

// Completer sends a chat-completion message array and returns the raw reply
// text.
type Completer interface {
	Complete(ctx context.Context, messages []llm.Message) (string, error)
}

// ImageSearcher queries the photo API.
type ImageSearcher interface {
	Search(ctx context.Context, term string) []images.Photo
	SearchRaw(ctx context.Context, term string) ([]byte, error)
}

// SpeechSynthesizer turns text into audio bytes.
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, req tts.Request) ([]byte, error)
}

// LanguageDetector maps free text to a two-letter language code.
type LanguageDetector interface {
	Detect(text string) string
}

// Transcriber is the optional speech-to-text capability.
type Transcriber interface {
	Available() bool
	Transcribe(ctx context.Context, audio []byte) (string, error)
}
