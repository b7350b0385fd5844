package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/musewave/musewave-api/internal/api/middleware"
	"github.com/musewave/musewave-api/internal/logger"
	"github.com/musewave/musewave-api/internal/metrics"
	"github.com/musewave/musewave-api/internal/suggest"
)

type SuggestHandler struct {
	engine *suggest.Engine
	cw     *metrics.Client
	sentry *metrics.SentryMetrics
}

func NewSuggestHandler(engine *suggest.Engine, cw *metrics.Client) *SuggestHandler {
	return &SuggestHandler{
		engine: engine,
		cw:     cw,
		sentry: metrics.NewSentryMetrics(),
	}
}

type SuggestRequest struct {
	Field        string                  `json:"field" binding:"required"`
	CurrentValue string                  `json:"current_value"`
	Context      suggest.CreativeContext `json:"context"`
}

func (h *SuggestHandler) Suggest(c *gin.Context) {
	var req SuggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	field, ok := suggest.ParseField(req.Field)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unknown field",
			"field": req.Field,
		})
		return
	}

	// Anonymous requests share the global scope
	userID, _ := middleware.GetUserIDFromGateway(c)

	start := time.Now()
	result, err := h.engine.Suggest(c.Request.Context(), field, req.CurrentValue, req.Context, userID)
	duration := time.Since(start)

	if err != nil {
		var exhausted *suggest.ExhaustedError
		if errors.As(err, &exhausted) {
			h.cw.RecordSuggestionExhausted(string(field))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error":      "Could not produce a suggestion",
				"field":      string(exhausted.Field),
				"diagnostic": exhausted.Diagnostic,
				"request_id": c.GetString("request_id"),
			})
			return
		}
		fields := logger.WithContext(c)
		fields["field"] = string(field)
		logger.Error("Suggestion request failed", err, fields)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.cw.RecordSuggestion(string(field), result.Source, result.Attempts, duration)
	h.sentry.RecordSuggestion(c.Request.Context(), string(field), result.Source, result.Attempts, duration)

	c.JSON(http.StatusOK, gin.H{
		"field":      string(field),
		"suggestion": result.Text,
		"source":     result.Source,
		"attempts":   result.Attempts,
		"request_id": c.GetString("request_id"),
	})
}
