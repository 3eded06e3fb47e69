package handler

import (
	"log"
	"net/http"
	"strings"

	"github.com/epikoding/lexigraph/internal/llm"
	"github.com/gin-gonic/gin"
)

type GrammarHandler struct {
	llmClient Completer
}

func NewGrammarHandler(llmClient Completer) *GrammarHandler {
	return &GrammarHandler{llmClient: llmClient}
}

type GrammarRequest struct {
	Text string `json:"text"`
}

// FixGrammar is plain text in, plain text out; the reply is not JSON and is
// not parsed.
func (h *GrammarHandler) FixGrammar(c *gin.Context) {
	var req GrammarRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No text provided"})
		return
	}

	corrected, err := h.llmClient.Complete(c.Request.Context(), llm.GrammarMessages(req.Text))
	if err != nil {
		log.Printf("Grammar fix error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"corrected_text": strings.TrimSpace(corrected)})
}
