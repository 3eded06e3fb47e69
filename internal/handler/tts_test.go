package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/epikoding/lexigraph/internal/tts"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChain struct {
	audio []byte
	err   error
	last  tts.Request
}

func (f *fakeChain) Synthesize(ctx context.Context, req tts.Request) ([]byte, error) {
	f.last = req
	return f.audio, f.err
}

type fakeDetector struct {
	code string
}

func (f *fakeDetector) Detect(text string) string { return f.code }

func newTTSRouter(detector *fakeDetector, chain *fakeChain) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/tts", NewTTSHandler(detector, chain).Speak)
	return router
}

func TestSpeak(t *testing.T) {
	chain := &fakeChain{audio: []byte("mp3-bytes")}
	router := newTTSRouter(&fakeDetector{code: "hi"}, chain)

	w := postJSON(t, router, "/api/tts", TTSRequest{Text: "नमस्ते", Accent: "hi-IN"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "audio/mpeg", w.Header().Get("Content-Type"))
	assert.Equal(t, "mp3-bytes", w.Body.String())
	assert.Equal(t, "नमस्ते", chain.last.Text)
	assert.Equal(t, "hi", chain.last.LanguageCode)
	assert.Equal(t, "hi-IN", chain.last.Accent)
}

func TestSpeakWordFallbackKey(t *testing.T) {
	chain := &fakeChain{audio: []byte("mp3")}
	router := newTTSRouter(&fakeDetector{code: "en"}, chain)

	w := postJSON(t, router, "/api/tts", TTSRequest{Word: "petrichor"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "petrichor", chain.last.Text)
}

func TestSpeakNoText(t *testing.T) {
	router := newTTSRouter(&fakeDetector{code: "en"}, &fakeChain{})

	w := postJSON(t, router, "/api/tts", TTSRequest{})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "No text provided"}`, w.Body.String())
}

func TestSpeakChainExhausted(t *testing.T) {
	chain := &fakeChain{err: tts.ErrNoService}
	router := newTTSRouter(&fakeDetector{code: "en"}, chain)

	w := postJSON(t, router, "/api/tts", TTSRequest{Text: "hello"})

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "no TTS service available")
}

func TestSpeakChainRejectsText(t *testing.T) {
	chain := &fakeChain{err: tts.ErrNoText}
	router := newTTSRouter(&fakeDetector{code: "en"}, chain)

	w := postJSON(t, router, "/api/tts", TTSRequest{Text: "   "})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "No text provided"}`, w.Body.String())
}

func TestSpeakUnbindableBody(t *testing.T) {
	router := newTTSRouter(&fakeDetector{code: "en"}, &fakeChain{})

	w := postJSON(t, router, "/api/tts", map[string]any{"text": 12})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
