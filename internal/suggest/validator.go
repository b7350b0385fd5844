package suggest

import (
	"strings"

	"github.com/musewave/musewave-api/internal/textutil"
	"github.com/musewave/musewave-api/internal/vocab"
)

const (
	maxTitleChars      = 44
	maxTitleWords      = 6
	minPromptWords     = 5
	minVisualWords     = 10
	maxGenres          = 4
	maxLanguages       = 3
	instrumentalMarker = "instrumental"
)

var titleArticles = map[string]bool{"the": true, "a": true, "an": true}

// structural punctuation that marks a title as a sentence or list, not a name
const titleBadPunct = ":;!?\"()[]{}<>"

// Validate applies the per-field acceptance rules to a raw candidate and
// returns the cleaned suggestion, or "" when the candidate is rejected.
// Validate is pure and idempotent: feeding an accepted result back in
// returns it unchanged.
func Validate(field Field, text string) string {
	cleaned := textutil.CollapseSpaces(text)
	if cleaned == "" {
		return ""
	}

	switch field {
	case FieldGenreList:
		return validateGenreList(cleaned)
	case FieldVocalLanguages:
		return validateLanguages(cleaned)
	case FieldDuration:
		return validateDuration(cleaned)
	}

	// free-text fields share the narrative-drift check
	if textutil.ContainsAny(cleaned, vocab.NarrativeMarkers) {
		return ""
	}

	switch field {
	case FieldTitle:
		return validateTitle(cleaned)
	case FieldProductionPrompt:
		return validateProductionPrompt(cleaned)
	case FieldVisualStyle:
		if len(strings.Fields(cleaned)) < minVisualWords {
			return ""
		}
		return cleaned
	case FieldLyricsTheme, FieldArtistInspiration:
		return cleaned
	}
	return ""
}

func validateTitle(text string) string {
	title := strings.Trim(text, "\"'`“”‘’ .")
	title = textutil.CollapseSpaces(title)
	if title == "" || len(title) > maxTitleChars {
		return ""
	}
	if strings.ContainsAny(title, titleBadPunct) {
		return ""
	}
	words := strings.Fields(title)
	if len(words) < 1 || len(words) > maxTitleWords {
		return ""
	}
	for _, w := range words {
		lw := strings.ToLower(strings.Trim(w, ",.-"))
		if vocab.TitleGenericTerms[lw] || vocab.TitleBlacklistTerms[lw] {
			return ""
		}
	}
	// "The Sound" style degenerates: short outputs led by an article
	if len(words) <= 2 && titleArticles[strings.ToLower(words[0])] {
		return ""
	}
	return title
}

func validateProductionPrompt(text string) string {
	if len(strings.Fields(text)) < minPromptWords {
		return ""
	}
	lower := strings.ToLower(text)
	for _, kw := range vocab.ProductionKeywords {
		if strings.Contains(lower, kw) {
			return text
		}
	}
	return ""
}

func validateGenreList(text string) string {
	if strings.Contains(strings.ToLower(text), instrumentalMarker) {
		return "Instrumental"
	}
	canonical := vocab.AllGenres()
	var kept []string
	seen := make(map[string]bool)
	for _, item := range textutil.SplitList(text) {
		entry := textutil.BestMatch(item, canonical)
		if entry == "" {
			// soft fallback: keep plausible raw genres titlecased
			if len(item) < 3 || len(strings.Fields(item)) > 3 {
				continue
			}
			entry = titleCase(item)
		}
		key := strings.ToLower(entry)
		if seen[key] {
			continue
		}
		seen[key] = true
		kept = append(kept, entry)
		if len(kept) == maxGenres {
			break
		}
	}
	if len(kept) == 0 {
		return ""
	}
	return strings.Join(kept, ", ")
}

func validateLanguages(text string) string {
	if strings.Contains(strings.ToLower(text), instrumentalMarker) {
		return "Instrumental"
	}
	var kept []string
	seen := make(map[string]bool)
	for _, item := range textutil.SplitList(text) {
		entry := textutil.BestMatch(item, vocab.Languages)
		if entry == "" {
			continue
		}
		if seen[entry] {
			continue
		}
		seen[entry] = true
		kept = append(kept, entry)
		if len(kept) == maxLanguages {
			break
		}
	}
	if len(kept) == 0 {
		return ""
	}
	return strings.Join(kept, ", ")
}

func validateDuration(text string) string {
	sec, ok := ParseDuration(text)
	if !ok {
		return ""
	}
	return RenderDuration(ClampDuration(sec))
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
