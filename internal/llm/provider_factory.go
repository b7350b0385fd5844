package llm

import (
	"context"
	"strings"

	"github.com/musewave/musewave-api/internal/logger"
	"github.com/musewave/musewave-api/internal/observability"
)

// ProviderFactory assembles the provider chain from configured credentials.
type ProviderFactory struct {
	openaiAPIKey string
	geminiAPIKey string
	openaiModel  string
	geminiModel  string
	langfuse     *observability.LangfuseClient
}

// NewProviderFactory creates a new provider factory
func NewProviderFactory(openaiAPIKey, geminiAPIKey, openaiModel, geminiModel string, langfuse *observability.LangfuseClient) *ProviderFactory {
	return &ProviderFactory{
		openaiAPIKey: openaiAPIKey,
		geminiAPIKey: geminiAPIKey,
		openaiModel:  openaiModel,
		geminiModel:  geminiModel,
		langfuse:     langfuse,
	}
}

// BuildChain constructs the ordered provider chain from a comma-separated
// order string (e.g. "gemini,openai"). Providers without credentials are
// skipped. Returns nil when no provider is configured, which puts the
// suggestion engine into offline fallback mode.
func (f *ProviderFactory) BuildChain(ctx context.Context, order string) *Chain {
	if strings.TrimSpace(order) == "" {
		order = "gemini,openai"
	}

	var providers []Provider
	for _, name := range strings.Split(order, ",") {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case providerNameOpenAI:
			if f.openaiAPIKey == "" {
				logger.Warn("⚠️ OpenAI listed in provider order but OPENAI_API_KEY not set", nil)
				continue
			}
			providers = append(providers, NewOpenAIProvider(f.openaiAPIKey, f.openaiModel, f.langfuse))
		case providerNameGemini:
			if f.geminiAPIKey == "" {
				logger.Warn("⚠️ Gemini listed in provider order but GEMINI_API_KEY not set", nil)
				continue
			}
			gp, err := NewGeminiProvider(ctx, f.geminiAPIKey, f.geminiModel, f.langfuse)
			if err != nil {
				logger.Error("❌ Failed to initialize Gemini provider", err, nil)
				continue
			}
			providers = append(providers, gp)
		case "":
		default:
			logger.Warn("⚠️ Unknown provider in order, skipping", logger.Fields{"provider": name})
		}
	}

	if len(providers) == 0 {
		logger.Warn("⚠️ No generation providers configured, suggestions run offline", nil)
		return nil
	}

	chain := NewChain(providers...)
	logger.Info("✅ Generation provider chain ready", logger.Fields{
		"providers": chain.Name(),
		"count":     chain.Providers(),
	})
	return chain
}
