package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/musewave/musewave-api/internal/assets"
	"github.com/musewave/musewave-api/internal/metrics"
)

type AssetsHandler struct {
	cw     *metrics.Client
	sentry *metrics.SentryMetrics
}

func NewAssetsHandler(cw *metrics.Client) *AssetsHandler {
	return &AssetsHandler{
		cw:     cw,
		sentry: metrics.NewSentryMetrics(),
	}
}

type SelectAssetsRequest struct {
	Genres          []string `json:"genres"`
	DurationSeconds int      `json:"duration_seconds"`
	Context         string   `json:"context"`
	// URLs already handed out this session; selection avoids them until the
	// category pool is exhausted.
	UsedURLs []string `json:"used_urls"`
}

// Select picks an audio asset and a cover image for the track context.
// Selection is deterministic for a given request and never fails: exhausted
// pools fall back to scored reuse.
func (h *AssetsHandler) Select(c *gin.Context) {
	var req SelectAssetsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	used := assets.UsedSet{}
	for _, url := range req.UsedURLs {
		used.Add(url)
	}

	category := assets.CategoryFor(req.Genres)
	audio := assets.SelectAudio(req.Genres, req.DurationSeconds, req.Context, used)
	coverArt := assets.SelectCoverArt(req.Genres, req.Context, used)

	h.cw.RecordAssetSelection("audio", category)
	h.cw.RecordAssetSelection("cover_art", category)
	h.sentry.RecordAssetSelection(c.Request.Context(), "audio", category)

	c.JSON(http.StatusOK, gin.H{
		"category": category,
		"audio": gin.H{
			"url":              audio.URL,
			"title":            audio.Title,
			"duration_seconds": audio.DurationSeconds,
		},
		"cover_art_url": coverArt,
		"request_id":    c.GetString("request_id"),
	})
}
