package llm

import (
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"google.golang.org/genai"
)

// ErrorKind classifies provider failures for the retry policy.
type ErrorKind string

const (
	// ErrorKindAuth covers invalid or missing credentials.
	ErrorKindAuth ErrorKind = "auth"
	// ErrorKindQuota covers exhausted billing or usage quota.
	ErrorKindQuota ErrorKind = "quota"
	// ErrorKindRateLimit covers hard rate limits.
	ErrorKindRateLimit ErrorKind = "rate_limit"
	// ErrorKindTransient covers timeouts, network failures, and malformed
	// responses; these are worth retrying.
	ErrorKindTransient ErrorKind = "transient"
)

// ProviderError is a classified generation failure.
type ProviderError struct {
	Kind     ErrorKind
	Provider string
	Message  string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", e.Provider, e.Message, e.Kind)
}

// NonRetryable reports whether further attempts against this provider are
// pointless. Auth, quota, and hard rate-limit failures qualify.
func (e *ProviderError) NonRetryable() bool {
	switch e.Kind {
	case ErrorKindAuth, ErrorKindQuota, ErrorKindRateLimit:
		return true
	}
	return false
}

// Classify wraps a raw SDK error into a ProviderError. Already-classified
// errors pass through unchanged.
func Classify(provider string, err error) *ProviderError {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe
	}

	kind := ErrorKindTransient
	msg := err.Error()

	var oaErr *openai.Error
	if errors.As(err, &oaErr) {
		kind = kindFromStatus(oaErr.StatusCode, msg)
	} else {
		var gErr genai.APIError
		if errors.As(err, &gErr) {
			kind = kindFromStatus(gErr.Code, msg)
		} else {
			kind = kindFromMessage(msg)
		}
	}

	return &ProviderError{Kind: kind, Provider: provider, Message: msg}
}

func kindFromStatus(status int, msg string) ErrorKind {
	switch status {
	case 401, 403:
		return ErrorKindAuth
	case 402:
		return ErrorKindQuota
	case 429:
		// providers report exhausted quota as 429 too
		if containsAnyFold(msg, "insufficient_quota", "quota", "billing") {
			return ErrorKindQuota
		}
		return ErrorKindRateLimit
	}
	return kindFromMessage(msg)
}

func kindFromMessage(msg string) ErrorKind {
	switch {
	case containsAnyFold(msg, "invalid_api_key", "invalid api key", "unauthorized", "permission denied", "authentication"):
		return ErrorKindAuth
	case containsAnyFold(msg, "insufficient_quota", "quota exceeded", "billing"):
		return ErrorKindQuota
	case containsAnyFold(msg, "rate limit", "rate_limit", "too many requests"):
		return ErrorKindRateLimit
	}
	return ErrorKindTransient
}

func containsAnyFold(s string, needles ...string) bool {
	lower := strings.ToLower(s)
	for _, n := range needles {
		if strings.Contains(lower, n) {
			return true
		}
	}
	return false
}
