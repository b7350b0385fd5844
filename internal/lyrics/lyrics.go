// Package lyrics generates record-ready lyric sheets through the configured
// text provider. Failures degrade to an empty result, never an error; a song
// without lyrics is still a song.
package lyrics

import (
	"context"
	"fmt"
	"strings"

	"github.com/musewave/musewave-api/internal/llm"
	"github.com/musewave/musewave-api/internal/logger"
	"github.com/musewave/musewave-api/internal/prompt"
	"github.com/musewave/musewave-api/internal/textutil"
)

var lyricsSystemPrompt = prompt.NewPromptLoader().GetLyricsSystemPrompt()

// Service produces lyrics for a track.
type Service struct {
	provider llm.Provider
}

// NewService builds the lyrics service. provider may be nil.
func NewService(provider llm.Provider) *Service {
	return &Service{provider: provider}
}

// Generate writes lyrics for the described track. Returns "" when no
// provider is configured, the track is instrumental, or generation fails.
func (s *Service) Generate(ctx context.Context, description string, genres, languages []string, title string) string {
	if s.provider == nil {
		return ""
	}
	for _, l := range languages {
		if strings.EqualFold(strings.TrimSpace(l), "instrumental") {
			return ""
		}
	}

	var b strings.Builder
	b.WriteString("Write the full lyrics for a new song.\n")
	if title != "" {
		fmt.Fprintf(&b, "Title: %s\n", title)
	}
	if description != "" {
		fmt.Fprintf(&b, "The song is about: %s\n", textutil.Truncate(description, 400))
	}
	if len(genres) > 0 {
		fmt.Fprintf(&b, "Genres: %s\n", strings.Join(genres, ", "))
	}
	if len(languages) > 0 {
		fmt.Fprintf(&b, "Vocal languages: %s\n", strings.Join(languages, ", "))
	}

	text, err := s.provider.GenerateText(ctx, lyricsSystemPrompt, b.String())
	if err != nil {
		logger.Warn("⚠️ Lyrics generation failed, returning empty lyrics", logger.Fields{
			"error": err.Error(),
		})
		return ""
	}
	return strings.TrimSpace(text)
}
