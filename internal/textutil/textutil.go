// Package textutil provides the string normalization and matching primitives
// shared by the suggestion validator, uniqueness tracker, and asset scorer.
package textutil

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	whitespaceRe  = regexp.MustCompile(`\s+`)
	listSplitRe   = regexp.MustCompile(`[,;/|\n]+`)
	enumMarkerRe  = regexp.MustCompile(`^\s*(?:[-*•]+|\d+[.)])\s*`)
	wordTokenRe   = regexp.MustCompile(`[a-z0-9]+`)
	quoteTrimmers = "\"'`“”‘’"
)

// aliases maps common shorthand spellings to canonical catalog entries.
// Matching is done on normalized input.
var aliases = map[string]string{
	"mandarin":             "Chinese (Mandarin)",
	"cantonese":            "Chinese (Cantonese)",
	"brazilian portuguese": "Portuguese (Brazil)",
	"latam spanish":        "Spanish (Latin America)",
	"quebec french":        "French (Quebec)",
	"lofi":                 "Lo-fi",
	"lo fi":                "Lo-fi",
	"dnb":                  "Drum and Bass",
	"drum n bass":          "Drum and Bass",
	"hip hop":              "Hip-Hop",
	"hiphop":               "Hip-Hop",
	"rnb":                  "R&B",
	"r and b":              "R&B",
	"edm":                  "EDM",
	"kpop":                 "K-Pop",
	"jpop":                 "J-Pop",
}

// Normalize trims, collapses internal whitespace, and lowercases.
// Two strings that normalize equal are treated as the same suggestion.
func Normalize(s string) string {
	return strings.ToLower(whitespaceRe.ReplaceAllString(strings.TrimSpace(s), " "))
}

// CollapseSpaces trims and collapses runs of whitespace without lowercasing.
func CollapseSpaces(s string) string {
	return whitespaceRe.ReplaceAllString(strings.TrimSpace(s), " ")
}

// SplitList breaks list-like text ("techno, house; lo-fi") into cleaned items.
// Enumeration markers and surrounding quotes are stripped, and duplicates are
// dropped case-insensitively while preserving first-seen order.
func SplitList(s string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, raw := range listSplitRe.Split(s, -1) {
		item := enumMarkerRe.ReplaceAllString(raw, "")
		item = strings.Trim(item, quoteTrimmers)
		item = CollapseSpaces(item)
		if item == "" {
			continue
		}
		key := strings.ToLower(item)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, item)
	}
	return out
}

// BestMatch maps a free-form value onto one of the canonical choices.
// Resolution order: exact case-insensitive match, alias table, then substring
// containment in either direction. Returns "" when nothing matches.
func BestMatch(value string, choices []string) string {
	norm := Normalize(value)
	if norm == "" {
		return ""
	}
	for _, choice := range choices {
		if Normalize(choice) == norm {
			return choice
		}
	}
	if canonical, ok := aliases[norm]; ok {
		for _, choice := range choices {
			if choice == canonical {
				return choice
			}
		}
	}
	for _, choice := range choices {
		cn := Normalize(choice)
		if strings.Contains(cn, norm) || strings.Contains(norm, cn) {
			return choice
		}
	}
	return ""
}

// Tokenize returns lowercase word tokens of length >= 3.
func Tokenize(s string) []string {
	var out []string
	for _, tok := range wordTokenRe.FindAllString(strings.ToLower(s), -1) {
		if len(tok) >= 3 {
			out = append(out, tok)
		}
	}
	return out
}

// ContainsAny reports whether any needle appears as a substring of the
// normalized haystack.
func ContainsAny(haystack string, needles []string) bool {
	norm := Normalize(haystack)
	for _, n := range needles {
		if strings.Contains(norm, n) {
			return true
		}
	}
	return false
}

// Truncate cuts s to at most n bytes, backing up to a rune boundary so the
// result is always valid UTF-8. No marker is appended.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
