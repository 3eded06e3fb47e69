package handler

import (
	"net/http"

	"github.com/epikoding/lexigraph/internal/dictionary"
	"github.com/gin-gonic/gin"
)

type ReaderHandler struct{}

func NewReaderHandler() *ReaderHandler {
	return &ReaderHandler{}
}

type ReaderRequest struct {
	Text string `json:"text"`
}

// Format wraps every token of the text in a lookup trigger for reader mode.
func (h *ReaderHandler) Format(c *gin.Context) {
	var req ReaderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"html": string(dictionary.InteractiveText(req.Text))})
}
