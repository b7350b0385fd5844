package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/musewave/musewave-api/internal/lyrics"
)

type LyricsHandler struct {
	service *lyrics.Service
}

func NewLyricsHandler(service *lyrics.Service) *LyricsHandler {
	return &LyricsHandler{service: service}
}

type LyricsRequest struct {
	Description string   `json:"description"`
	Genres      []string `json:"genres"`
	Languages   []string `json:"languages"`
	Title       string   `json:"title"`
}

// Generate drafts full lyrics for the track. An empty result means no
// provider is configured or generation failed; the client treats it as
// "write your own".
func (h *LyricsHandler) Generate(c *gin.Context) {
	var req LyricsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	text := h.service.Generate(c.Request.Context(), req.Description, req.Genres, req.Languages, req.Title)

	c.JSON(http.StatusOK, gin.H{
		"lyrics":     text,
		"request_id": c.GetString("request_id"),
	})
}
