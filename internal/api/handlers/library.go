package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/musewave/musewave-api/internal/vocab"
)

// LibraryHandler serves the static creative vocabularies the client uses to
// populate pickers and autocomplete.
type LibraryHandler struct{}

func NewLibraryHandler() *LibraryHandler {
	return &LibraryHandler{}
}

func (h *LibraryHandler) Genres(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"genres":     vocab.AllGenres(),
		"categories": vocab.GenreKnowledgeBase,
	})
}

func (h *LibraryHandler) Languages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"languages": vocab.Languages})
}

func (h *LibraryHandler) Artists(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"artists":    vocab.AllArtists(),
		"categories": vocab.ArtistKnowledgeBase,
	})
}
