package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/epikoding/lexigraph/internal/middleware"
	"github.com/epikoding/lexigraph/internal/tts"
	"github.com/gin-gonic/gin"
)

type TTSHandler struct {
	detector LanguageDetector
	chain    SpeechSynthesizer
}

func NewTTSHandler(detector LanguageDetector, chain SpeechSynthesizer) *TTSHandler {
	return &TTSHandler{detector: detector, chain: chain}
}

// TTSRequest accepts the text under either key; some clients send "word".
type TTSRequest struct {
	Text   string `json:"text"`
	Word   string `json:"word"`
	Accent string `json:"accent"`
}

func (h *TTSHandler) Speak(c *gin.Context) {
	var req TTSRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No text provided"})
		return
	}
	text := req.Text
	if text == "" {
		text = req.Word
	}
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No text provided"})
		return
	}

	detected := h.detector.Detect(text)
	log.Printf("Detected language: %s", detected)

	audio, err := h.chain.Synthesize(c.Request.Context(), tts.Request{
		Text:         text,
		LanguageCode: detected,
		Accent:       req.Accent,
	})
	middleware.RecordTTSSynthesis(err == nil)
	if err != nil {
		if errors.Is(err, tts.ErrNoText) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No text provided"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Data(http.StatusOK, "audio/mpeg", audio)
}
