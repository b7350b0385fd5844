package suggest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/musewave/musewave-api/internal/logger"
	"github.com/musewave/musewave-api/internal/textutil"
)

const (
	DefaultMaxAttempts = 3
	minAttempts        = 1
	maxAttempts        = 6

	DefaultCallTimeout = 8 * time.Second
	minCallTimeout     = 2 * time.Second
	maxCallTimeout     = 30 * time.Second
)

// Generator is the outbound text-generation contract. A nil generator means
// the engine runs offline on the fallback pools only.
type Generator interface {
	GenerateText(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	Name() string
}

// NonRetryable marks generator errors that make further live attempts
// pointless (bad credentials, exhausted quota, hard rate limits).
type NonRetryable interface {
	NonRetryable() bool
}

// Options tunes the engine. Zero values pick the defaults.
type Options struct {
	MaxAttempts int
	CallTimeout time.Duration
}

func (o Options) normalized() Options {
	if o.MaxAttempts == 0 {
		o.MaxAttempts = DefaultMaxAttempts
	}
	if o.MaxAttempts < minAttempts {
		o.MaxAttempts = minAttempts
	}
	if o.MaxAttempts > maxAttempts {
		o.MaxAttempts = maxAttempts
	}
	if o.CallTimeout == 0 {
		o.CallTimeout = DefaultCallTimeout
	}
	if o.CallTimeout < minCallTimeout {
		o.CallTimeout = minCallTimeout
	}
	if o.CallTimeout > maxCallTimeout {
		o.CallTimeout = maxCallTimeout
	}
	return o
}

// Result is an accepted suggestion plus how it was produced.
type Result struct {
	Text     string
	Source   string // "live" or "fallback"
	Attempts int
}

// Engine drives the suggestion attempt loop: context build, generator call,
// validation, uniqueness check, retry with fresh entropy, offline fallback.
type Engine struct {
	generator Generator
	tracker   *Tracker
	opts      Options
}

// NewEngine builds an engine. generator may be nil (offline mode).
func NewEngine(generator Generator, tracker *Tracker, opts Options) *Engine {
	return &Engine{generator: generator, tracker: tracker, opts: opts.normalized()}
}

// attempt loop outcomes
type loopOutcome int

const (
	outcomePending loopOutcome = iota
	outcomeAccepted
	outcomeAborted
	outcomeExhausted
)

// loopState makes the retry control flow explicit: attempt counter, last
// rejection or error, terminal outcome.
type loopState struct {
	attempt int
	lastErr error
	outcome loopOutcome
	text    string
}

// Suggest produces one accepted suggestion for the field, or an
// *ExhaustedError when neither the generator nor the fallback pools yield a
// candidate that passes validation and uniqueness.
func (e *Engine) Suggest(ctx context.Context, field Field, currentValue string, cctx CreativeContext, userID string) (Result, error) {
	span := sentry.StartSpan(ctx, "suggest.generate")
	span.SetData("field", string(field))
	defer span.Finish()

	scopeKey := ScopeKey(field, cctx, userID)
	turn := e.tracker.NextTurn(field, scopeKey)
	recent := e.tracker.LoadRecent(field, scopeKey)
	currentNorm := textutil.Normalize(currentValue)

	st := e.runLiveLoop(span.Context(), field, cctx, turn, currentNorm, recent)
	if st.outcome == outcomeAccepted {
		e.tracker.Persist(field, scopeKey, st.text, userID)
		logger.Info("✅ Suggestion accepted", logger.Fields{
			"field":    string(field),
			"source":   "live",
			"attempts": st.attempt,
		})
		return Result{Text: st.text, Source: "live", Attempts: st.attempt}, nil
	}

	if text, ok := e.runFallback(field, cctx, currentNorm, recent); ok {
		e.tracker.Persist(field, scopeKey, text, userID)
		logger.Info("✅ Suggestion accepted", logger.Fields{
			"field":    string(field),
			"source":   "fallback",
			"attempts": st.attempt,
		})
		return Result{Text: text, Source: "fallback", Attempts: st.attempt}, nil
	}

	err := newExhaustedError(field, st.lastErr)
	logger.Error("❌ Suggestion exhausted", err, logger.Fields{
		"field":    string(field),
		"attempts": st.attempt,
	})
	return Result{Attempts: st.attempt}, err
}

// runLiveLoop is the BUILD_CONTEXT → CALL_GENERATOR → VALIDATE → CHECK_UNIQUE
// machine over the external generator. It never runs when no generator is
// configured.
func (e *Engine) runLiveLoop(ctx context.Context, field Field, cctx CreativeContext, turn int, currentNorm string, recent map[string]bool) loopState {
	st := loopState{outcome: outcomePending}
	if e.generator == nil {
		st.outcome = outcomeExhausted
		return st
	}

	for st.attempt = 1; st.attempt <= e.opts.MaxAttempts; st.attempt++ {
		seed := newEntropySeed(turn, st.attempt)
		userPrompt := buildContextPrompt(field, cctx, turn, seed)

		callCtx, cancel := context.WithTimeout(ctx, e.opts.CallTimeout)
		raw, err := e.generator.GenerateText(callCtx, contextSystemPrompt, userPrompt)
		cancel()

		if err != nil {
			st.lastErr = err
			var nr NonRetryable
			if errors.As(err, &nr) && nr.NonRetryable() {
				logger.Warn("⚠️ Non-retryable generator error, aborting live attempts", logger.Fields{
					"field":    string(field),
					"provider": e.generator.Name(),
					"attempt":  st.attempt,
					"error":    err.Error(),
				})
				st.outcome = outcomeAborted
				return st
			}
			logger.Debug("Generator attempt failed, retrying", logger.Fields{
				"field":   string(field),
				"attempt": st.attempt,
				"error":   err.Error(),
			})
			continue
		}

		mc, parsed := parseMusicContext(raw)
		if !parsed {
			st.lastErr = fmt.Errorf("generator returned no parseable context")
		}
		mc = coerceMusicContext(mc, cctx, seed)

		cleaned := Validate(field, extractField(field, mc))
		if cleaned == "" {
			st.lastErr = fmt.Errorf("candidate rejected by %s validator", field)
			continue
		}

		norm := textutil.Normalize(cleaned)
		if norm == currentNorm || recent[norm] {
			st.lastErr = fmt.Errorf("candidate duplicates current value or recent history")
			continue
		}

		st.text = cleaned
		st.outcome = outcomeAccepted
		return st
	}

	st.attempt = e.opts.MaxAttempts
	st.outcome = outcomeExhausted
	return st
}

// runFallback walks the offline candidate pool through the same validation
// and uniqueness filters. If every unique candidate has been seen, the first
// validator-passing candidate is reused rather than failing the request.
func (e *Engine) runFallback(field Field, cctx CreativeContext, currentNorm string, recent map[string]bool) (string, bool) {
	pool := fallbackCandidates(field, cctx)
	reuse := ""
	for _, cand := range pool {
		cleaned := Validate(field, cand)
		if cleaned == "" {
			continue
		}
		norm := textutil.Normalize(cleaned)
		if norm == currentNorm {
			continue
		}
		if reuse == "" {
			reuse = cleaned
		}
		if recent[norm] {
			continue
		}
		return cleaned, true
	}
	if reuse != "" {
		return reuse, true
	}
	return "", false
}
