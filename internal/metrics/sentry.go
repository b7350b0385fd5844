package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
)

const (
	// HTTP status code threshold for considering a request successful
	successStatusCodeThreshold = http.StatusBadRequest
)

// SentryMetrics handles custom metrics for Sentry
type SentryMetrics struct {
	enabled bool
}

// NewSentryMetrics creates a new Sentry metrics client
func NewSentryMetrics() *SentryMetrics {
	return &SentryMetrics{
		enabled: true, // Always enabled if Sentry is configured
	}
}

// RecordAPIRequest records API request metrics
func (m *SentryMetrics) RecordAPIRequest(ctx context.Context, endpoint string, statusCode int, duration time.Duration) {
	if !m.enabled {
		return
	}

	span := sentry.StartSpan(ctx, "api.request")
	defer span.Finish()

	span.SetTag("endpoint", endpoint)
	span.SetTag("status_code", fmt.Sprintf("%d", statusCode))
	span.SetTag("success", fmt.Sprintf("%t", statusCode < successStatusCodeThreshold))

	span.SetData("duration_ms", duration.Milliseconds())
	span.SetData("endpoint", endpoint)
	span.SetData("status_code", statusCode)

	if statusCode < successStatusCodeThreshold {
		span.Status = sentry.SpanStatusOK
	} else {
		span.Status = sentry.SpanStatusInternalError
	}

	span.Description = fmt.Sprintf("API Request: %s", endpoint)
}

// RecordSuggestion records one suggestion outcome on the active transaction.
func (m *SentryMetrics) RecordSuggestion(ctx context.Context, field, source string, attempts int, duration time.Duration) {
	if !m.enabled {
		return
	}

	if transaction := sentry.TransactionFromContext(ctx); transaction != nil {
		transaction.SetTag("suggest.field", field)
		transaction.SetTag("suggest.source", source)
		transaction.SetData("suggest.attempts", attempts)
	}

	span := sentry.StartSpan(ctx, "suggest.outcome")
	defer span.Finish()

	span.SetTag("field", field)
	span.SetTag("source", source)
	span.SetData("attempts", attempts)
	span.SetData("duration_ms", duration.Milliseconds())
	span.Status = sentry.SpanStatusOK
	span.Description = fmt.Sprintf("Suggestion: %s (%s)", field, source)
}

// RecordAssetSelection records one catalog asset pick.
func (m *SentryMetrics) RecordAssetSelection(ctx context.Context, assetType, category string) {
	if !m.enabled {
		return
	}

	span := sentry.StartSpan(ctx, "assets.select")
	defer span.Finish()

	span.SetTag("asset_type", assetType)
	span.SetTag("category", category)
	span.Status = sentry.SpanStatusOK
	span.Description = fmt.Sprintf("Asset Selection: %s/%s", assetType, category)
}
