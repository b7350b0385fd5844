package llm

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/getsentry/sentry-go"
	"google.golang.org/genai"

	"github.com/musewave/musewave-api/internal/logger"
	"github.com/musewave/musewave-api/internal/observability"
)

const (
	providerNameGemini = "gemini"
	defaultGeminiModel = "gemini-2.0-flash"
	mimeTypeJSON       = "application/json"
)

// GeminiProvider implements the Provider interface using Google's Gemini API
type GeminiProvider struct {
	client   *genai.Client
	model    string
	langfuse *observability.LangfuseClient
}

// NewGeminiProvider creates a new Gemini provider. model may be empty.
func NewGeminiProvider(ctx context.Context, apiKey, model string, langfuse *observability.LangfuseClient) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	if model == "" {
		model = defaultGeminiModel
	}
	return &GeminiProvider{client: client, model: model, langfuse: langfuse}, nil
}

// Name returns the provider name
func (p *GeminiProvider) Name() string {
	return providerNameGemini
}

// GenerateText runs one generation call and returns the raw text. The
// response MIME type is pinned to JSON since every suggestion prompt asks
// for a JSON object.
func (p *GeminiProvider) GenerateText(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	span := sentry.StartSpan(ctx, "gemini.generate_text")
	span.SetTag("model", p.model)
	defer span.Finish()

	gen := p.langfuse.StartGeneration(ctx, "gemini.suggestion", p.model, userPrompt)

	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt}},
		},
		ResponseMIMEType: mimeTypeJSON,
	}
	contents := []*genai.Content{
		{Role: genai.RoleUser, Parts: []*genai.Part{{Text: userPrompt}}},
	}

	apiStart := time.Now()
	result, err := p.client.Models.GenerateContent(ctx, p.model, contents, config)
	apiDuration := time.Since(apiStart)

	if err != nil {
		perr := Classify(providerNameGemini, err)
		log.Printf("❌ GEMINI REQUEST FAILED after %v: %v", apiDuration, perr)
		span.SetTag("success", "false")
		gen.End("", perr)
		return "", perr
	}

	text := extractGeminiText(result)
	if text == "" {
		perr := &ProviderError{Kind: ErrorKindTransient, Provider: providerNameGemini, Message: "empty gemini response"}
		span.SetTag("success", "false")
		gen.End("", perr)
		return "", perr
	}

	span.SetTag("success", "true")
	inputTokens, outputTokens := 0, 0
	if result.UsageMetadata != nil {
		inputTokens = int(result.UsageMetadata.PromptTokenCount)
		outputTokens = int(result.UsageMetadata.CandidatesTokenCount)
	}
	logger.LogGenerationRequest(ctx, providerNameGemini, p.model, apiDuration, inputTokens, outputTokens)
	gen.SetUsage(inputTokens, outputTokens)
	gen.End(text, nil)
	return text, nil
}

func extractGeminiText(result *genai.GenerateContentResponse) string {
	if result == nil || len(result.Candidates) == 0 {
		return ""
	}
	content := result.Candidates[0].Content
	if content == nil {
		return ""
	}
	text := ""
	for _, part := range content.Parts {
		if part != nil {
			text += part.Text
		}
	}
	return text
}
