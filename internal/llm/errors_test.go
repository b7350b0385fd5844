package llm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyByMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind ErrorKind
	}{
		{"auth", errors.New("Incorrect API key provided: invalid_api_key"), ErrorKindAuth},
		{"quota", errors.New("You exceeded your current quota, insufficient_quota"), ErrorKindQuota},
		{"rate limit", errors.New("Rate limit reached for requests"), ErrorKindRateLimit},
		{"timeout", errors.New("context deadline exceeded"), ErrorKindTransient},
		{"network", errors.New("connection reset by peer"), ErrorKindTransient},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			perr := Classify("openai", tt.err)
			assert.Equal(t, tt.kind, perr.Kind)
			assert.Equal(t, "openai", perr.Provider)
		})
	}
}

func TestClassifyPassesThroughProviderError(t *testing.T) {
	orig := &ProviderError{Kind: ErrorKindAuth, Provider: "gemini", Message: "bad key"}
	assert.Same(t, orig, Classify("openai", orig))
}

func TestNonRetryable(t *testing.T) {
	assert.True(t, (&ProviderError{Kind: ErrorKindAuth}).NonRetryable())
	assert.True(t, (&ProviderError{Kind: ErrorKindQuota}).NonRetryable())
	assert.True(t, (&ProviderError{Kind: ErrorKindRateLimit}).NonRetryable())
	assert.False(t, (&ProviderError{Kind: ErrorKindTransient}).NonRetryable())
}
