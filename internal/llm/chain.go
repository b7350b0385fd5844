package llm

import (
	"context"
	"strings"
	"sync"

	"github.com/musewave/musewave-api/internal/logger"
)

// Chain tries providers in configured order and returns the first success.
// A provider that fails non-retryably (bad key, dead quota) is marked dead
// and skipped for the lifetime of the chain; once every provider is dead the
// chain itself fails non-retryably so callers stop asking.
type Chain struct {
	providers []Provider

	mu   sync.Mutex
	dead map[string]*ProviderError
}

// NewChain builds a provider chain. Order matters.
func NewChain(providers ...Provider) *Chain {
	return &Chain{providers: providers, dead: make(map[string]*ProviderError)}
}

// Name returns the chained provider names.
func (c *Chain) Name() string {
	names := make([]string, len(c.providers))
	for i, p := range c.providers {
		names[i] = p.Name()
	}
	return strings.Join(names, "+")
}

// Providers returns how many live providers are configured.
func (c *Chain) Providers() int {
	return len(c.providers)
}

// GenerateText walks the chain. Transient failures fall through to the next
// provider; the last error is returned when every provider fails.
func (c *Chain) GenerateText(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	var lastErr *ProviderError
	for _, p := range c.providers {
		if dead := c.deadErr(p.Name()); dead != nil {
			lastErr = dead
			continue
		}

		text, err := p.GenerateText(ctx, systemPrompt, userPrompt)
		if err == nil {
			return text, nil
		}

		perr := Classify(p.Name(), err)
		lastErr = perr
		if perr.NonRetryable() {
			c.markDead(p.Name(), perr)
			logger.Warn("⚠️ Provider marked dead for this process", logger.Fields{
				"provider": p.Name(),
				"kind":     string(perr.Kind),
			})
		}
	}

	if lastErr == nil {
		lastErr = &ProviderError{Kind: ErrorKindTransient, Provider: c.Name(), Message: "no providers configured"}
	}
	if c.allDead() {
		// keep the kind non-retryable so the attempt loop aborts
		return "", lastErr
	}
	return "", &ProviderError{Kind: ErrorKindTransient, Provider: lastErr.Provider, Message: lastErr.Message}
}

func (c *Chain) deadErr(name string) *ProviderError {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dead[name]
}

func (c *Chain) markDead(name string, perr *ProviderError) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dead[name] = perr
}

func (c *Chain) allDead() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.dead) == len(c.providers) && len(c.providers) > 0
}
