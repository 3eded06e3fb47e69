package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/epikoding/lexigraph/internal/images"
	"github.com/epikoding/lexigraph/internal/wordlist"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeImageSearcher struct {
	photos  []images.Photo
	queries []string
}

func (f *fakeImageSearcher) Search(ctx context.Context, term string) []images.Photo {
	f.queries = append(f.queries, term)
	return f.photos
}

func (f *fakeImageSearcher) SearchRaw(ctx context.Context, term string) ([]byte, error) {
	return []byte(`{"photos": []}`), nil
}

const lookupReply = "```json\n" + `{
	"results": [{
		"word": "chein",
		"correction": "chien",
		"translated_word": "dog",
		"language": "French",
		"definition": "animal domestique fidèle",
		"translated_definition": "a loyal domestic animal",
		"synonyms": ["toutou"],
		"antonyms": [],
		"related_words": [{"word": "chiot", "sentence": "Le chiot dort."}]
	}]
}` + "\n```"

func newDictionaryRouter(completer *fakeCompleter, searcher *fakeImageSearcher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewDictionaryHandler(completer, searcher, wordlist.Load("does-not-exist.txt"))
	router := gin.New()
	router.POST("/api/dictionary", h.Lookup)
	router.GET("/api/wotd", h.WordOfDay)
	return router
}

func TestLookup(t *testing.T) {
	completer := &fakeCompleter{reply: lookupReply}
	searcher := &fakeImageSearcher{photos: []images.Photo{
		{Src: images.PhotoSource{Medium: "https://img/m.jpg", Large: "https://img/l.jpg"}},
	}}
	router := newDictionaryRouter(completer, searcher)

	w := postJSON(t, router, "/api/dictionary", LookupRequest{Term: "chein", Language: "French", Theme: "dark"})

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Results []LookupResult `json:"results"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 1)

	result := resp.Results[0]
	assert.Equal(t, "chein", result.Word)
	assert.Equal(t, "chien", result.Correction)
	assert.Contains(t, result.HTML, "dog")
	assert.Contains(t, result.HTML, "https://img/l.jpg")
	assert.NotEmpty(t, result.Graph.Nodes)
	assert.Equal(t, "chein", result.Graph.Nodes[0].Label)

	// Images are fetched for the corrected spelling
	assert.Equal(t, []string{"chien"}, searcher.queries)
	// The request language reaches the prompt
	require.NotEmpty(t, completer.messages)
	assert.Contains(t, completer.messages[0].Content, `Target Language: "French"`)
	assert.Equal(t, "Define: chein", completer.messages[1].Content)
}

func TestLookupMissingTerm(t *testing.T) {
	router := newDictionaryRouter(&fakeCompleter{}, &fakeImageSearcher{})

	w := postJSON(t, router, "/api/dictionary", map[string]string{"language": "French"})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "term is required"}`, w.Body.String())
}

func TestLookupUnparseableReply(t *testing.T) {
	completer := &fakeCompleter{reply: "I am sorry, I cannot help with that."}
	router := newDictionaryRouter(completer, &fakeImageSearcher{})

	w := postJSON(t, router, "/api/dictionary", LookupRequest{Term: "cat"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestWordOfDay(t *testing.T) {
	completer := &fakeCompleter{reply: lookupReply}
	router := newDictionaryRouter(completer, &fakeImageSearcher{})

	req := httptest.NewRequest(http.MethodGet, "/api/wotd?language=Hindi&theme=dark", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Results []LookupResult `json:"results"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 1)

	require.NotEmpty(t, completer.messages)
	assert.Contains(t, completer.messages[0].Content, `Target Language: "Hindi"`)
}

func TestWordOfDayDefaults(t *testing.T) {
	completer := &fakeCompleter{reply: lookupReply}
	router := newDictionaryRouter(completer, &fakeImageSearcher{})

	req := httptest.NewRequest(http.MethodGet, "/api/wotd", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, completer.messages[0].Content, `Target Language: "English"`)
}
