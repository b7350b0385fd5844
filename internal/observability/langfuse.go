// Package observability wraps Langfuse tracing around generator calls so
// every live suggestion attempt is inspectable (prompt, output, latency,
// cost) without touching the engine's control flow.
package observability

import (
	"context"
	"log"
	"time"

	langfuse "github.com/henomis/langfuse-go"
	"github.com/henomis/langfuse-go/model"
)

// LangfuseClient wraps the Langfuse SDK with an enabled flag so callers never
// have to nil-check. A disabled client is a no-op.
type LangfuseClient struct {
	client  *langfuse.Langfuse
	enabled bool
	ctx     context.Context
}

// NewLangfuseClient builds the tracing client. When enabled is false or the
// secret key is missing, tracing is silently disabled.
func NewLangfuseClient(ctx context.Context, enabled bool, secretKey, host string) *LangfuseClient {
	if !enabled || secretKey == "" {
		log.Println("⚠️  Langfuse not configured (LANGFUSE_ENABLED=false or LANGFUSE_SECRET_KEY not set)")
		return &LangfuseClient{enabled: false, ctx: ctx}
	}

	// the henomis SDK reads its keys from the environment
	lf := langfuse.New(ctx)
	log.Printf("✅ Langfuse initialized (host: %s)", host)
	return &LangfuseClient{client: lf, enabled: true, ctx: ctx}
}

// IsEnabled returns whether Langfuse is enabled
func (c *LangfuseClient) IsEnabled() bool {
	return c != nil && c.enabled && c.client != nil
}

// StartGeneration opens a trace with a single generation span for one
// provider call. The returned Generation is always safe to use.
func (c *LangfuseClient) StartGeneration(_ context.Context, name, modelName string, input string) *Generation {
	if !c.IsEnabled() {
		return &Generation{enabled: false}
	}

	trace, err := c.client.Trace(&model.Trace{Name: name})
	if err != nil {
		log.Printf("⚠️  Failed to create Langfuse trace: %v", err)
		return &Generation{enabled: false}
	}

	now := time.Now()
	gen, err := c.client.Generation(&model.Generation{
		TraceID:   trace.ID,
		Name:      name,
		Model:     modelName,
		StartTime: &now,
		Input:     input,
	}, nil)
	if err != nil {
		log.Printf("⚠️  Failed to create Langfuse generation: %v", err)
		return &Generation{enabled: false}
	}

	return &Generation{
		generation: gen,
		enabled:    true,
		client:     c.client,
		lfCtx:      c.ctx,
		modelName:  modelName,
	}
}

// Flush sends all batched events. Call once at shutdown.
func (c *LangfuseClient) Flush() {
	if c.IsEnabled() {
		c.client.Flush(c.ctx)
	}
}

// Generation is one traced provider call.
type Generation struct {
	generation *model.Generation
	enabled    bool
	client     *langfuse.Langfuse
	lfCtx      context.Context
	modelName  string
}

// End records the outcome and queues the generation for sending. err marks
// the span as errored; output is attached on success.
func (g *Generation) End(output string, err error) {
	if !g.enabled || g.generation == nil || g.client == nil {
		return
	}
	now := time.Now()
	g.generation.EndTime = &now
	if err != nil {
		g.generation.Level = model.ObservationLevelError
		g.generation.StatusMessage = err.Error()
	} else {
		g.generation.Output = output
	}
	if _, endErr := g.client.GenerationEnd(g.generation); endErr != nil {
		log.Printf("⚠️  Failed to end Langfuse generation: %v", endErr)
	}
}

// SetUsage attaches token counts and the derived cost estimate.
func (g *Generation) SetUsage(inputTokens, outputTokens int) {
	if !g.enabled || g.generation == nil {
		return
	}
	cost := EstimateCost(g.modelName, inputTokens, outputTokens)
	log.Printf("💰 LLM usage (%s): %d in / %d out tokens, est. %s", g.modelName, inputTokens, outputTokens, FormatCost(cost))
	g.generation.Usage = model.Usage{
		Input:     inputTokens,
		Output:    outputTokens,
		Total:     inputTokens + outputTokens,
		Unit:      model.ModelUsageUnitTokens,
		TotalCost: cost,
	}
}
