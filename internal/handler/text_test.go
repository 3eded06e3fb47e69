package handler

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze(t *testing.T) {
	gin.SetMode(gin.TestMode)
	completer := &fakeCompleter{reply: `{
		"analysis_paragraphs": ["The text uses the passive voice heavily."],
		"pronunciation_guide": [{"word": "colonel", "ipa": "/ˈkɜːrnəl/"}]
	}`}
	router := gin.New()
	router.POST("/api/analyze", NewAnalyzeHandler(completer).Analyze)

	w := postJSON(t, router, "/api/analyze", AnalyzeRequest{Text: "some prose", Language: "French"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "passive voice")
	assert.Contains(t, w.Body.String(), "colonel")

	require.NotEmpty(t, completer.messages)
	assert.Contains(t, completer.messages[0].Content, `"French"`)
	assert.Equal(t, "Analyze: some prose", completer.messages[1].Content)
}

func TestAnalyzeMissingText(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/analyze", NewAnalyzeHandler(&fakeCompleter{}).Analyze)

	w := postJSON(t, router, "/api/analyze", map[string]string{"language": "French"})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "text is required"}`, w.Body.String())
}

func TestAnalyzeUnparseableReply(t *testing.T) {
	gin.SetMode(gin.TestMode)
	completer := &fakeCompleter{reply: "no structure here"}
	router := gin.New()
	router.POST("/api/analyze", NewAnalyzeHandler(completer).Analyze)

	w := postJSON(t, router, "/api/analyze", AnalyzeRequest{Text: "some prose"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestFixGrammar(t *testing.T) {
	gin.SetMode(gin.TestMode)
	completer := &fakeCompleter{reply: "  I go home.\n"}
	router := gin.New()
	router.POST("/api/fix_grammar", NewGrammarHandler(completer).FixGrammar)

	w := postJSON(t, router, "/api/fix_grammar", GrammarRequest{Text: "me goes home"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"corrected_text": "I go home."}`, w.Body.String())
	assert.Equal(t, "me goes home", completer.messages[1].Content)
}

func TestFixGrammarEmptyText(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/fix_grammar", NewGrammarHandler(&fakeCompleter{}).FixGrammar)

	w := postJSON(t, router, "/api/fix_grammar", GrammarRequest{})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "No text provided"}`, w.Body.String())
}

func TestReaderFormat(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/reader_format", NewReaderHandler().Format)

	w := postJSON(t, router, "/api/reader_format", ReaderRequest{Text: "hello world"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "defineWord")
}

type fakeTranscriber struct {
	available bool
	text      string
	err       error
	audio     []byte
}

func (f *fakeTranscriber) Available() bool { return f.available }

func (f *fakeTranscriber) Transcribe(ctx context.Context, audio []byte) (string, error) {
	f.audio = audio
	return f.text, f.err
}

func postAudioFile(t *testing.T, router *gin.Engine, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/transcribe", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestTranscribe(t *testing.T) {
	gin.SetMode(gin.TestMode)
	transcriber := &fakeTranscriber{available: true, text: "hello world"}
	router := gin.New()
	router.POST("/api/transcribe", NewTranscribeHandler(transcriber).Transcribe)

	w := postAudioFile(t, router, "clip.wav", []byte("RIFF-audio"))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"text": "hello world"}`, w.Body.String())
	assert.Equal(t, []byte("RIFF-audio"), transcriber.audio)
}

func TestTranscribeUnavailable(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/transcribe", NewTranscribeHandler(&fakeTranscriber{}).Transcribe)

	w := postAudioFile(t, router, "clip.wav", []byte("RIFF-audio"))

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "speech recognition")
}

func TestTranscribeNoFile(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/transcribe", NewTranscribeHandler(&fakeTranscriber{available: true}).Transcribe)

	req := httptest.NewRequest(http.MethodPost, "/api/transcribe", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "No file"}`, w.Body.String())
}

func TestTranscribeError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	transcriber := &fakeTranscriber{available: true, err: errors.New("decode failed")}
	router := gin.New()
	router.POST("/api/transcribe", NewTranscribeHandler(transcriber).Transcribe)

	w := postAudioFile(t, router, "clip.wav", []byte("junk"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestImagesSearch(t *testing.T) {
	gin.SetMode(gin.TestMode)
	searcher := &fakeImageSearcher{}
	router := gin.New()
	router.GET("/api/images", NewImagesHandler(searcher).Search)

	req := httptest.NewRequest(http.MethodGet, "/api/images?term=dog", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"photos": []}`, w.Body.String())
}
