package textutil

import (
	"testing"
	"unicode/utf8"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"  Midnight   Drive ", "midnight drive"},
		{"TECHNO", "techno"},
		{"\tdeep\nhouse\t", "deep house"},
		{"", ""},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSplitListDedupesCaseInsensitively(t *testing.T) {
	got := SplitList("Techno, house; TECHNO / Lo-fi")
	want := []string{"Techno", "house", "Lo-fi"}
	if len(got) != len(want) {
		t.Fatalf("SplitList returned %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("item %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSplitListStripsMarkersAndQuotes(t *testing.T) {
	got := SplitList("1. \"Ambient\"\n- 'Jazz'\n* Soul")
	want := []string{"Ambient", "Jazz", "Soul"}
	if len(got) != len(want) {
		t.Fatalf("SplitList returned %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("item %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestBestMatch(t *testing.T) {
	choices := []string{"Hip-Hop", "Drum and Bass", "Chinese (Mandarin)", "House"}
	cases := []struct {
		in, want string
	}{
		{"hip hop", "Hip-Hop"},
		{"dnb", "Drum and Bass"},
		{"mandarin", "Chinese (Mandarin)"},
		{"HOUSE", "House"},
		{"deep house", "House"},
		{"polka", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := BestMatch(c.in, choices); got != c.want {
			t.Errorf("BestMatch(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestTokenizeDropsShortTokens(t *testing.T) {
	got := Tokenize("A dark 808 at 3am")
	want := []string{"dark", "808"}
	if len(got) != len(want) {
		t.Fatalf("Tokenize returned %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("abcdef", 3); got != "abc" {
		t.Errorf("Truncate = %q, want %q", got, "abc")
	}
	if got := Truncate("ab", 3); got != "ab" {
		t.Errorf("Truncate = %q, want %q", got, "ab")
	}
}

func TestTruncateKeepsRunesWhole(t *testing.T) {
	// "é" is two bytes; cutting at byte 2 must not split it.
	if got := Truncate("héllo", 2); got != "h" {
		t.Errorf("Truncate = %q, want %q", got, "h")
	}
	for n := 0; n <= 8; n++ {
		got := Truncate("naïveté", n)
		if !utf8.ValidString(got) {
			t.Errorf("Truncate(%d) produced invalid UTF-8: %q", n, got)
		}
	}
}
