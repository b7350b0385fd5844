package suggest

import "testing"

func TestScopeKeyStable(t *testing.T) {
	ctx := CreativeContext{
		Description: "late night warehouse techno",
		Genres:      []string{"Techno", "House"},
		TrackNumber: 2,
	}
	a := ScopeKey(FieldTitle, ctx, "user-1")
	b := ScopeKey(FieldTitle, ctx, "user-1")
	if a != b {
		t.Errorf("same request produced different keys: %s vs %s", a, b)
	}
	if len(a) != scopeKeyLen {
		t.Errorf("key length = %d, want %d", len(a), scopeKeyLen)
	}
}

func TestScopeKeyDifferentiates(t *testing.T) {
	ctx := CreativeContext{Description: "late night warehouse techno"}
	base := ScopeKey(FieldTitle, ctx, "user-1")

	if got := ScopeKey(FieldProductionPrompt, ctx, "user-1"); got == base {
		t.Error("different fields share a scope key")
	}
	if got := ScopeKey(FieldTitle, ctx, "user-2"); got == base {
		t.Error("different users share a scope key")
	}
	other := ctx
	other.Description = "sunrise ambient set"
	if got := ScopeKey(FieldTitle, other, "user-1"); got == base {
		t.Error("different descriptions share a scope key")
	}
}

func TestScopeKeyIgnoresIrrelevantDifferences(t *testing.T) {
	a := ScopeKey(FieldTitle, CreativeContext{Description: "  Late   Night TECHNO "}, "user-1")
	b := ScopeKey(FieldTitle, CreativeContext{Description: "late night techno"}, "user-1")
	if a != b {
		t.Error("whitespace/case differences changed the scope key")
	}
}

func TestScopeKeyEmptyUserIsGlobal(t *testing.T) {
	a := ScopeKey(FieldTitle, CreativeContext{}, "")
	b := ScopeKey(FieldTitle, CreativeContext{}, "  ")
	if a != b {
		t.Error("blank user ids should collapse to the global scope")
	}
}
