package handler

import (
	"log"
	"net/http"

	"github.com/epikoding/lexigraph/internal/dictionary"
	"github.com/epikoding/lexigraph/internal/llm"
	"github.com/gin-gonic/gin"
)

// historyWindow bounds how much conversation context is forwarded upstream.
const historyWindow = 6

type ChatHandler struct {
	llmClient Completer
}

func NewChatHandler(llmClient Completer) *ChatHandler {
	return &ChatHandler{llmClient: llmClient}
}

// ChatMessage is one message of the client-held conversation history.
type ChatMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

type ChatRequest struct {
	History []ChatMessage `json:"history"`
	Message string        `json:"message"`
}

func (h *ChatHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	answer, err := h.llmClient.Complete(c.Request.Context(), buildChatMessages(req.History, req.Message))
	if err != nil {
		log.Printf("Chat error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error"})
		return
	}

	html, err := dictionary.RenderChatMessage("assistant", answer)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": answer, "html": html})
}

// buildChatMessages assembles the upstream message array: the fixed persona,
// then the most recent history window, then the new message unless it
// already closes the history.
func buildChatMessages(history []ChatMessage, message string) []llm.Message {
	messages := []llm.Message{{Role: llm.RoleSystem, Content: llm.ChatPersona}}

	window := history
	if len(window) > historyWindow {
		window = window[len(window)-historyWindow:]
	}
	for _, msg := range window {
		role := llm.RoleAssistant
		if msg.Role == "user" {
			role = llm.RoleUser
		}
		messages = append(messages, llm.Message{Role: role, Content: msg.Text})
	}

	if len(history) == 0 || history[len(history)-1].Text != message {
		messages = append(messages, llm.Message{Role: llm.RoleUser, Content: message})
	}
	return messages
}
