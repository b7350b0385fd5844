package embedded

import (
	_ "embed"
)

// Embed all prompt data files
//
//go:embed data/prompts/music_context_system_prompt.txt
var MusicContextSystemPromptTxt []byte

//go:embed data/prompts/lyrics_system_prompt.txt
var LyricsSystemPromptTxt []byte
