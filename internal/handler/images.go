package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ImagesHandler struct {
	imageClient ImageSearcher
}

func NewImagesHandler(imageClient ImageSearcher) *ImagesHandler {
	return &ImagesHandler{imageClient: imageClient}
}

// Search passes the photo API's JSON through untouched.
func (h *ImagesHandler) Search(c *gin.Context) {
	body, err := h.imageClient.SearchRaw(c.Request.Context(), c.Query("term"))
	if err != nil {
		log.Printf("Image search error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Data(http.StatusOK, "application/json", body)
}
