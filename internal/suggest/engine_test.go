package suggest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/musewave/musewave-api/internal/textutil"
)

type fakeStore struct {
	mu      sync.Mutex
	records []Record
	turns   map[string]int
	failAll bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{turns: make(map[string]int)}
}

func (s *fakeStore) FindRecent(field Field, scopeKey string, limit int) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAll {
		return nil, errors.New("store down")
	}
	var out []Record
	for i := len(s.records) - 1; i >= 0 && len(out) < limit; i-- {
		r := s.records[i]
		if r.Field == field && r.ScopeKey == scopeKey {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *fakeStore) Insert(rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAll {
		return errors.New("store down")
	}
	s.records = append(s.records, rec)
	return nil
}

func (s *fakeStore) IncrementTurn(field Field, scopeKey string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAll {
		return 0, errors.New("store down")
	}
	key := string(field) + "|" + scopeKey
	s.turns[key]++
	return s.turns[key], nil
}

type fakeGenerator struct {
	responses []string
	err       error
	calls     int
}

func (g *fakeGenerator) GenerateText(_ context.Context, _, _ string) (string, error) {
	g.calls++
	if g.err != nil {
		return "", g.err
	}
	if len(g.responses) == 0 {
		return "", errors.New("no response scripted")
	}
	resp := g.responses[0]
	if len(g.responses) > 1 {
		g.responses = g.responses[1:]
	}
	return resp, nil
}

func (g *fakeGenerator) Name() string { return "fake" }

type authError struct{}

func (authError) Error() string      { return "invalid api key" }
func (authError) NonRetryable() bool { return true }

func titleJSON(title string) string {
	return fmt.Sprintf(`{"title": %q, "genres": ["Techno", "House", "Ambient"], "mood": "hypnotic", "energy": "driving", "tempo_bpm": 126, "vocal_languages": ["English"], "lyrics_theme": "a night that refuses to end", "production_idea": "rolling bassline under a four-on-the-floor kick with dub delay sends", "visual_style": "neon rain over empty streets shot in slow wide takes with strobing cuts", "duration_seconds": 180}`, title)
}

func TestSuggestAcceptsLiveCandidate(t *testing.T) {
	store := newFakeStore()
	gen := &fakeGenerator{responses: []string{titleJSON("Neon Drive")}}
	eng := NewEngine(gen, NewTracker(store), Options{})

	res, err := eng.Suggest(context.Background(), FieldTitle, "", CreativeContext{}, "user-1")
	if err != nil {
		t.Fatalf("Suggest returned error: %v", err)
	}
	if res.Text != "Neon Drive" || res.Source != "live" {
		t.Errorf("got %+v", res)
	}
	if len(store.records) != 1 {
		t.Errorf("expected one persisted record, got %d", len(store.records))
	}
}

func TestSuggestRejectsCurrentValue(t *testing.T) {
	store := newFakeStore()
	gen := &fakeGenerator{responses: []string{
		titleJSON("Neon Drive"),
		titleJSON("Velvet Motion"),
	}}
	eng := NewEngine(gen, NewTracker(store), Options{})

	res, err := eng.Suggest(context.Background(), FieldTitle, "neon  drive", CreativeContext{}, "user-1")
	if err != nil {
		t.Fatalf("Suggest returned error: %v", err)
	}
	if res.Text != "Velvet Motion" {
		t.Errorf("expected second candidate, got %q", res.Text)
	}
}

func TestSuggestEnforcesScopeUniqueness(t *testing.T) {
	store := newFakeStore()
	tracker := NewTracker(store)
	ctx := CreativeContext{Description: "warehouse techno"}

	gen := &fakeGenerator{responses: []string{titleJSON("Neon Drive")}}
	eng := NewEngine(gen, tracker, Options{})
	first, err := eng.Suggest(context.Background(), FieldTitle, "", ctx, "user-1")
	if err != nil {
		t.Fatalf("first Suggest: %v", err)
	}

	gen2 := &fakeGenerator{responses: []string{
		titleJSON("Neon Drive"),
		titleJSON("Starlit Signal"),
	}}
	eng2 := NewEngine(gen2, tracker, Options{})
	second, err := eng2.Suggest(context.Background(), FieldTitle, "", ctx, "user-1")
	if err != nil {
		t.Fatalf("second Suggest: %v", err)
	}
	if textutil.Normalize(second.Text) == textutil.Normalize(first.Text) {
		t.Errorf("scope served the same suggestion twice: %q", second.Text)
	}
}

func TestSuggestAbortsOnNonRetryableError(t *testing.T) {
	store := newFakeStore()
	gen := &fakeGenerator{err: authError{}}
	eng := NewEngine(gen, NewTracker(store), Options{MaxAttempts: 5})

	res, err := eng.Suggest(context.Background(), FieldTitle, "", CreativeContext{}, "user-1")
	if err != nil {
		t.Fatalf("expected fallback to cover the abort, got error: %v", err)
	}
	if gen.calls != 1 {
		t.Errorf("expected a single live call before aborting, got %d", gen.calls)
	}
	if res.Source != "fallback" {
		t.Errorf("expected fallback source, got %+v", res)
	}
}

func TestSuggestRetriesTransientErrors(t *testing.T) {
	store := newFakeStore()
	gen := &fakeGenerator{err: errors.New("connection reset")}
	eng := NewEngine(gen, NewTracker(store), Options{MaxAttempts: 3})

	res, err := eng.Suggest(context.Background(), FieldTitle, "", CreativeContext{}, "user-1")
	if err != nil {
		t.Fatalf("expected fallback success, got %v", err)
	}
	if gen.calls != 3 {
		t.Errorf("expected all attempts used, got %d", gen.calls)
	}
	if res.Source != "fallback" {
		t.Errorf("expected fallback source, got %+v", res)
	}
}

func TestSuggestOfflineUsesFallback(t *testing.T) {
	eng := NewEngine(nil, NewTracker(newFakeStore()), Options{})
	res, err := eng.Suggest(context.Background(), FieldDuration, "", CreativeContext{DurationSeconds: 180}, "user-1")
	if err != nil {
		t.Fatalf("offline Suggest failed: %v", err)
	}
	if res.Source != "fallback" {
		t.Errorf("expected fallback source, got %+v", res)
	}
	if Validate(FieldDuration, res.Text) != res.Text {
		t.Errorf("fallback result does not validate: %q", res.Text)
	}
}

func TestSuggestSurvivesStoreFailure(t *testing.T) {
	store := newFakeStore()
	store.failAll = true
	gen := &fakeGenerator{responses: []string{titleJSON("Neon Drive")}}
	eng := NewEngine(gen, NewTracker(store), Options{})

	res, err := eng.Suggest(context.Background(), FieldTitle, "", CreativeContext{}, "user-1")
	if err != nil {
		t.Fatalf("store failure leaked out: %v", err)
	}
	if res.Text != "Neon Drive" {
		t.Errorf("got %q", res.Text)
	}
}

func TestSuggestRejectsInvalidCandidateThenAccepts(t *testing.T) {
	store := newFakeStore()
	gen := &fakeGenerator{responses: []string{
		titleJSON("Untitled Demo Song Thing Whatever Extra"),
		titleJSON("Prism Glow"),
	}}
	eng := NewEngine(gen, NewTracker(store), Options{})

	res, err := eng.Suggest(context.Background(), FieldTitle, "", CreativeContext{}, "user-1")
	if err != nil {
		t.Fatalf("Suggest returned error: %v", err)
	}
	if res.Text != "Prism Glow" {
		t.Errorf("expected second candidate after validation rejection, got %q", res.Text)
	}
	if res.Attempts != 2 {
		t.Errorf("expected two attempts, got %d", res.Attempts)
	}
}
