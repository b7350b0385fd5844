package llm

import (
	"context"
	"log"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"github.com/musewave/musewave-api/internal/logger"
	"github.com/musewave/musewave-api/internal/observability"
)

const (
	providerNameOpenAI = "openai"
	defaultOpenAIModel = "gpt-4o-mini"
	openAITemperature  = 0.9
)

// OpenAIProvider implements the Provider interface over OpenAI chat completions.
type OpenAIProvider struct {
	client   *openai.Client
	model    string
	langfuse *observability.LangfuseClient
}

// NewOpenAIProvider creates a new OpenAI provider. model may be empty.
func NewOpenAIProvider(apiKey, model string, langfuse *observability.LangfuseClient) *OpenAIProvider {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	if model == "" {
		model = defaultOpenAIModel
	}
	return &OpenAIProvider{
		client:   &client,
		model:    model,
		langfuse: langfuse,
	}
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string {
	return providerNameOpenAI
}

// GenerateText runs one chat completion and returns the raw text.
func (p *OpenAIProvider) GenerateText(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	span := sentry.StartSpan(ctx, "openai.generate_text")
	span.SetTag("model", p.model)
	defer span.Finish()

	gen := p.langfuse.StartGeneration(ctx, "openai.suggestion", p.model, userPrompt)

	apiStart := time.Now()
	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: shared.ChatModel(p.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
		Temperature: openai.Float(openAITemperature),
	})
	apiDuration := time.Since(apiStart)

	if err != nil {
		perr := Classify(providerNameOpenAI, err)
		log.Printf("❌ OPENAI REQUEST FAILED after %v: %v", apiDuration, perr)
		span.SetTag("success", "false")
		gen.End("", perr)
		return "", perr
	}

	if len(resp.Choices) == 0 {
		perr := &ProviderError{Kind: ErrorKindTransient, Provider: providerNameOpenAI, Message: "empty completion response"}
		span.SetTag("success", "false")
		gen.End("", perr)
		return "", perr
	}

	span.SetTag("success", "true")
	text := resp.Choices[0].Message.Content
	inputTokens := int(resp.Usage.PromptTokens)
	outputTokens := int(resp.Usage.CompletionTokens)
	logger.LogGenerationRequest(ctx, providerNameOpenAI, p.model, apiDuration, inputTokens, outputTokens)
	gen.SetUsage(inputTokens, outputTokens)
	gen.End(text, nil)
	return text, nil
}
