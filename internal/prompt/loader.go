package prompt

import (
	"strings"

	"github.com/musewave/musewave-api/pkg/embedded"
)

// Loader exposes the embedded system prompts. Prompts live in data files
// rather than Go string literals so they can be edited and diffed as text.
type Loader struct{}

func NewPromptLoader() *Loader {
	return &Loader{}
}

// GetMusicContextSystemPrompt loads the system prompt that asks the
// generator for one complete music context as a single JSON object.
func (l *Loader) GetMusicContextSystemPrompt() string {
	return strings.TrimSpace(string(embedded.MusicContextSystemPromptTxt))
}

// GetLyricsSystemPrompt loads the songwriter system prompt.
func (l *Loader) GetLyricsSystemPrompt() string {
	return strings.TrimSpace(string(embedded.LyricsSystemPromptTxt))
}
