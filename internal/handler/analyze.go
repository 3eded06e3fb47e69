package handler

import (
	"log"
	"net/http"

	"github.com/epikoding/lexigraph/internal/dictionary"
	"github.com/epikoding/lexigraph/internal/llm"
	"github.com/gin-gonic/gin"
)

type AnalyzeHandler struct {
	llmClient Completer
}

func NewAnalyzeHandler(llmClient Completer) *AnalyzeHandler {
	return &AnalyzeHandler{llmClient: llmClient}
}

type AnalyzeRequest struct {
	Text     string `json:"text" binding:"required"`
	Language string `json:"language"`
}

func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}
	language := req.Language
	if language == "" {
		language = "English"
	}

	content, err := h.llmClient.Complete(c.Request.Context(), llm.AnalysisMessages(language, req.Text))
	if err != nil {
		log.Printf("Analyze error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var analysis dictionary.Analysis
	if err := llm.DecodeJSON(content, &analysis); err != nil {
		log.Printf("Analyze JSON parse error: %v, content: %s", err, content)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	html, err := dictionary.RenderAnalysis(analysis)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"html": html})
}
