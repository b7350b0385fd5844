package suggest

import (
	"strings"
	"testing"
)

func TestValidateTitle(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Neon Drive", "Neon Drive"},
		{"  \"Midnight Rush\"  ", "Midnight Rush"},
		{"The Sound", ""},                          // short article start
		{"The Long Way Back Home", "The Long Way Back Home"}, // articles fine on longer titles
		{"My Cool Song", ""},                       // generic term
		{"Crystal Cathedral", ""},                  // blacklisted term
		{"One Two Three Four Five Six Seven", ""},  // too many words
		{"Neon: Drive", ""},                        // structural punctuation
		{strings.Repeat("a", 50), ""},              // too long
		{"Untitled", ""},
	}
	for _, c := range cases {
		if got := Validate(FieldTitle, c.in); got != c.want {
			t.Errorf("Validate(title, %q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestValidateProductionPrompt(t *testing.T) {
	ok := "A driving techno groove with a rolling bassline and crisp hihat work"
	if got := Validate(FieldProductionPrompt, ok); got != ok {
		t.Errorf("expected acceptance, got %q", got)
	}
	if got := Validate(FieldProductionPrompt, "something nice and pleasant overall"); got != "" {
		t.Errorf("expected rejection without production vocabulary, got %q", got)
	}
	if got := Validate(FieldProductionPrompt, "hard kick"); got != "" {
		t.Errorf("expected rejection below minimum word count, got %q", got)
	}
	if got := Validate(FieldProductionPrompt, "Once upon a time a kick drum told a story"); got != "" {
		t.Errorf("expected narrative-marker rejection, got %q", got)
	}
}

func TestValidateGenreList(t *testing.T) {
	if got := Validate(FieldGenreList, "techno, house, techno"); got != "Techno, House" {
		t.Errorf("got %q, want %q", got, "Techno, House")
	}
	if got := Validate(FieldGenreList, "dnb / hip hop"); got != "Drum and Bass, Hip-Hop" {
		t.Errorf("got %q", got)
	}
	// cap at four entries
	got := Validate(FieldGenreList, "Techno, House, Trance, Dubstep, Ambient")
	if len(strings.Split(got, ", ")) != 4 {
		t.Errorf("expected four genres, got %q", got)
	}
	if got := Validate(FieldGenreList, "instrumental techno"); got != "Instrumental" {
		t.Errorf("got %q, want Instrumental", got)
	}
}

func TestValidateLanguages(t *testing.T) {
	if got := Validate(FieldVocalLanguages, "english; mandarin"); got != "English, Chinese (Mandarin)" {
		t.Errorf("got %q", got)
	}
	if got := Validate(FieldVocalLanguages, "no vocals, instrumental please"); got != "Instrumental" {
		t.Errorf("got %q", got)
	}
	if got := Validate(FieldVocalLanguages, "klingon"); got != "" {
		t.Errorf("expected rejection for unknown language, got %q", got)
	}
	got := Validate(FieldVocalLanguages, "English, Spanish, French, German")
	if len(strings.Split(got, ", ")) != 3 {
		t.Errorf("expected three languages, got %q", got)
	}
}

func TestValidateDuration(t *testing.T) {
	if got := Validate(FieldDuration, "1:05"); got != "1m5s" {
		t.Errorf("got %q, want 1m5s", got)
	}
	if got := Validate(FieldDuration, "5"); got != "10s" {
		t.Errorf("expected clamp to minimum, got %q", got)
	}
	if got := Validate(FieldDuration, "forever"); got != "" {
		t.Errorf("expected rejection, got %q", got)
	}
}

func TestValidateVisualStyle(t *testing.T) {
	long := "Neon-soaked visuals over rain-slick streets with slow dolly shots and strobing cuts"
	if got := Validate(FieldVisualStyle, long); got != long {
		t.Errorf("expected pass-through, got %q", got)
	}
	if got := Validate(FieldVisualStyle, "dark and moody"); got != "" {
		t.Errorf("expected rejection below minimum words, got %q", got)
	}
}

// Accepted output fed back in must come out unchanged for every field.
func TestValidateIdempotent(t *testing.T) {
	inputs := map[Field][]string{
		FieldTitle:            {"Neon Drive", "Velvet Motion"},
		FieldProductionPrompt: {"A driving techno groove with a rolling bassline and crisp hihat work"},
		FieldGenreList:        {"techno, house", "instrumental"},
		FieldVocalLanguages:   {"english; mandarin", "instrumental"},
		FieldLyricsTheme:      {"A song about letting go of the city"},
		FieldVisualStyle:      {"Neon-soaked visuals over rain-slick streets with slow dolly shots and strobing cuts"},
		FieldDuration:         {"1:05", "95", "2m"},
	}
	for field, texts := range inputs {
		for _, text := range texts {
			first := Validate(field, text)
			if first == "" {
				t.Fatalf("Validate(%s, %q) unexpectedly rejected", field, text)
			}
			second := Validate(field, first)
			if second != first {
				t.Errorf("Validate(%s) not idempotent: %q -> %q", field, first, second)
			}
		}
	}
}
