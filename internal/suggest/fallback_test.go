package suggest

import (
	"testing"

	"github.com/musewave/musewave-api/internal/textutil"
)

// Every offline candidate must survive its own field's validator, since the
// fallback path runs through the same acceptance filters as live generation.
func TestFallbackCandidatesValidate(t *testing.T) {
	ctx := CreativeContext{
		Description:     "late night warehouse set",
		Genres:          []string{"Techno"},
		DurationSeconds: 180,
	}
	for _, field := range AllFields() {
		pool := fallbackCandidates(field, ctx)
		if len(pool) == 0 {
			t.Errorf("empty fallback pool for %s", field)
			continue
		}
		accepted := 0
		for _, cand := range pool {
			if Validate(field, cand) != "" {
				accepted++
			}
		}
		if accepted == 0 {
			t.Errorf("no fallback candidate for %s passes validation: %v", field, pool)
		}
	}
}

func TestFallbackPoolsVaryAcrossCalls(t *testing.T) {
	ctx := CreativeContext{Description: "sunset drive"}
	a := fallbackCandidates(FieldTitle, ctx)
	b := fallbackCandidates(FieldTitle, ctx)
	if len(a) == 0 || len(b) == 0 {
		t.Fatal("empty pools")
	}
	same := len(a) == len(b)
	if same {
		for i := range a {
			if a[i] != b[i] {
				same = false
				break
			}
		}
	}
	if same {
		t.Error("fallback pool order identical across calls; fresh randomness missing")
	}
}

func TestFallbackPoolHasUniqueCandidates(t *testing.T) {
	pool := fallbackCandidates(FieldDuration, CreativeContext{DurationSeconds: 300})
	seen := make(map[string]bool)
	for _, cand := range pool {
		norm := textutil.Normalize(cand)
		if seen[norm] {
			t.Errorf("duplicate fallback candidate %q", cand)
		}
		seen[norm] = true
	}
}
