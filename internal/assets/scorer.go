package assets

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/musewave/musewave-api/internal/textutil"
	"github.com/musewave/musewave-api/internal/vocab"
)

const (
	durationWeight = 2.0
	moodWeight     = 1.0
	// tieBreakWeight keeps the hash jitter far below any real scoring factor;
	// it only orders exact ties.
	tieBreakWeight = 0.001
)

// UsedSet tracks asset URLs already chosen recently, to bias selection away
// from immediate repeats. Ephemeral, rebuilt per session.
type UsedSet map[string]bool

// Has reports whether the URL was already selected.
func (u UsedSet) Has(url string) bool { return u != nil && u[url] }

// Add records a selected URL.
func (u UsedSet) Add(url string) {
	if u != nil {
		u[url] = true
	}
}

// SelectAudio picks the best audio asset for the request. It never fails:
// when every asset in the category has been used, the full category pool is
// scored again (graceful reuse).
func SelectAudio(genres []string, durationSec int, contextText string, used UsedSet) Asset {
	category := CategoryFor(genres)
	pool := AudioPool(category)

	candidates := make([]Asset, 0, len(pool))
	for _, a := range pool {
		if !used.Has(a.URL) {
			candidates = append(candidates, a)
		}
	}
	if len(candidates) == 0 {
		candidates = pool
	}

	summary := contextSummary(contextText, genres)
	best := candidates[0]
	bestScore := -1.0
	for _, a := range candidates {
		score := durationWeight*durationCloseness(a.DurationSeconds, durationSec) +
			moodWeight*float64(moodGroupHits(summary, a.Title)) +
			tieBreakWeight*tieBreak(category, summary, a.URL)
		if score > bestScore {
			bestScore = score
			best = a
		}
	}
	used.Add(best.URL)
	return best
}

// SelectCoverArt picks a cover image through the same used-aware, tie-broken
// pathway as audio selection.
func SelectCoverArt(genres []string, contextText string, used UsedSet) string {
	category := CategoryFor(genres)
	pool := CoverArtPool(category)

	candidates := make([]string, 0, len(pool))
	for _, url := range pool {
		if !used.Has(url) {
			candidates = append(candidates, url)
		}
	}
	if len(candidates) == 0 {
		candidates = pool
	}

	summary := contextSummary(contextText, genres)
	best := candidates[0]
	bestScore := -1.0
	for _, url := range candidates {
		score := tieBreak(category, summary, url)
		if score > bestScore {
			bestScore = score
			best = url
		}
	}
	used.Add(best)
	return best
}

// durationCloseness is 1 at an exact match, falling toward 0 as durations
// diverge.
func durationCloseness(assetSec, requestedSec int) float64 {
	if requestedSec <= 0 {
		return 0
	}
	max := assetSec
	if requestedSec > max {
		max = requestedSec
	}
	if max < 1 {
		max = 1
	}
	delta := assetSec - requestedSec
	if delta < 0 {
		delta = -delta
	}
	return 1 - float64(delta)/float64(max)
}

// moodGroupHits counts mood-word groups where both the request text and the
// asset title contain a member as a whole token, so "power" never matches
// inside "powerful".
func moodGroupHits(summary, assetTitle string) int {
	summaryTokens := tokenSet(summary)
	titleTokens := tokenSet(assetTitle)
	hits := 0
	for _, words := range vocab.MoodGroups {
		inSummary, inTitle := false, false
		for _, w := range words {
			if summaryTokens[w] {
				inSummary = true
			}
			if titleTokens[w] {
				inTitle = true
			}
		}
		if inSummary && inTitle {
			hits++
		}
	}
	return hits
}

func tokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range textutil.Tokenize(s) {
		set[tok] = true
	}
	return set
}

// tieBreak hashes (category, context summary, url) into [0, 1). Stable across
// runs, so exact ties resolve reproducibly instead of by insertion order.
func tieBreak(category, summary, url string) float64 {
	sum := sha256.Sum256([]byte(category + "|" + summary + "|" + url))
	n, _ := strconv.ParseUint(hex.EncodeToString(sum[:4]), 16, 64)
	return float64(n) / float64(1<<32)
}

func contextSummary(contextText string, genres []string) string {
	return textutil.Normalize(contextText + " " + strings.Join(genres, " "))
}
