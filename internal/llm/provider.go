// Package llm wraps the external text generators (OpenAI, Gemini) behind a
// single Provider contract with classified errors and ordered fallback.
package llm

import "context"

// Provider is the outbound generation contract: one prompt in, raw text out.
// Errors should be classified (see ProviderError) so callers can tell
// retryable failures from hopeless ones.
type Provider interface {
	// GenerateText runs one bounded generation call.
	GenerateText(ctx context.Context, systemPrompt, userPrompt string) (string, error)

	// Name returns the provider name (e.g. "openai", "gemini")
	Name() string
}
