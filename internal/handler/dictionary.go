package handler

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/epikoding/lexigraph/internal/dictionary"
	"github.com/epikoding/lexigraph/internal/images"
	"github.com/epikoding/lexigraph/internal/llm"
	"github.com/epikoding/lexigraph/internal/middleware"
	"github.com/epikoding/lexigraph/internal/wordlist"
	"github.com/gin-gonic/gin"
)

// DictionaryHandler serves dictionary lookups and the word-of-the-day, which
// share the lookup pipeline: prompt, completion, parse, then per-entry
// images, HTML and concept graph.
type DictionaryHandler struct {
	llmClient   Completer
	imageClient ImageSearcher
	words       *wordlist.List
}

func NewDictionaryHandler(llmClient Completer, imageClient ImageSearcher, words *wordlist.List) *DictionaryHandler {
	return &DictionaryHandler{
		llmClient:   llmClient,
		imageClient: imageClient,
		words:       words,
	}
}

type LookupRequest struct {
	Term     string `json:"term" binding:"required"`
	Language string `json:"language"`
	Theme    string `json:"theme"`
}

// LookupResult is one entry enriched with its rendered card and concept
// graph.
type LookupResult struct {
	dictionary.Entry
	HTML  string           `json:"html"`
	Graph dictionary.Graph `json:"graph"`
}

func (h *DictionaryHandler) Lookup(c *gin.Context) {
	var req LookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "term is required"})
		return
	}
	language := req.Language
	if language == "" {
		language = "English"
	}

	messages := llm.DictionaryMessages(language, req.Term)
	results, err := h.runLookup(c.Request.Context(), messages, req.Theme)
	middleware.RecordLookup(language, err == nil)
	if err != nil {
		log.Printf("Dictionary lookup error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}

func (h *DictionaryHandler) WordOfDay(c *gin.Context) {
	language := c.DefaultQuery("language", "English")
	theme := c.DefaultQuery("theme", "light")
	term := h.words.Pick()

	messages := llm.WordOfDayMessages(language, term)
	results, err := h.runLookup(c.Request.Context(), messages, theme)
	middleware.RecordLookup(language, err == nil)
	if err != nil {
		log.Printf("Word of the day error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}

// runLookup runs the completion and builds the enriched result list. A
// failed image fetch degrades to the placeholder; a failed parse or render
// fails the whole request.
func (h *DictionaryHandler) runLookup(ctx context.Context, messages []llm.Message, theme string) ([]LookupResult, error) {
	start := time.Now()
	content, err := h.llmClient.Complete(ctx, messages)
	middleware.RecordLLMCall(time.Since(start))
	if err != nil {
		return nil, err
	}

	entries, err := dictionary.ParseResults(content)
	if err != nil {
		log.Printf("AI response JSON parse error: %v, content: %s", err, content)
		return nil, err
	}

	results := make([]LookupResult, 0, len(entries))
	for _, entry := range entries {
		photos := h.imageClient.Search(ctx, entry.ImageQuery())
		html, err := dictionary.RenderWordCard(entry, toCardImages(photos))
		if err != nil {
			return nil, err
		}
		results = append(results, LookupResult{
			Entry: entry,
			HTML:  html,
			Graph: dictionary.BuildConceptGraph(entry, theme),
		})
	}
	return results, nil
}

func toCardImages(photos []images.Photo) []dictionary.Image {
	cardImages := make([]dictionary.Image, 0, len(photos))
	for _, p := range photos {
		cardImages = append(cardImages, dictionary.Image{
			Medium: p.Src.Medium,
			Large:  p.Src.Large,
		})
	}
	return cardImages
}
