// Package suggest implements the suggestion generation engine: per-field
// validation, scope-keyed uniqueness tracking, the generation attempt loop,
// and the deterministic offline fallback.
package suggest

import "strings"

// Field identifies which creative-form field a suggestion is for.
type Field string

const (
	FieldTitle             Field = "title"
	FieldProductionPrompt  Field = "production_prompt"
	FieldGenreList         Field = "genre_list"
	FieldVocalLanguages    Field = "vocal_languages"
	FieldLyricsTheme       Field = "lyrics_theme"
	FieldArtistInspiration Field = "artist_inspiration"
	FieldVisualStyle       Field = "visual_style"
	FieldDuration          Field = "duration"
)

// fieldAliases maps legacy wire names onto canonical fields.
var fieldAliases = map[string]Field{
	"music_prompt": FieldProductionPrompt,
	"prompt":       FieldProductionPrompt,
	"genres":       FieldGenreList,
	"genre":        FieldGenreList,
	"languages":    FieldVocalLanguages,
	"lyrics":       FieldLyricsTheme,
	"artist":       FieldArtistInspiration,
	"video_style":  FieldVisualStyle,
	"visual":       FieldVisualStyle,
}

// ParseField canonicalizes a wire field name. ok is false for unknown fields.
func ParseField(name string) (Field, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	switch Field(key) {
	case FieldTitle, FieldProductionPrompt, FieldGenreList, FieldVocalLanguages,
		FieldLyricsTheme, FieldArtistInspiration, FieldVisualStyle, FieldDuration:
		return Field(key), true
	}
	if f, ok := fieldAliases[key]; ok {
		return f, true
	}
	return "", false
}

// AllFields lists the canonical fields in form order.
func AllFields() []Field {
	return []Field{
		FieldTitle, FieldProductionPrompt, FieldGenreList, FieldVocalLanguages,
		FieldLyricsTheme, FieldArtistInspiration, FieldVisualStyle, FieldDuration,
	}
}

// CreativeContext is the caller-supplied partial form state. The engine only
// reads it; it is never mutated.
type CreativeContext struct {
	Description     string   `json:"description"`
	Genres          []string `json:"genres"`
	Lyrics          string   `json:"lyrics"`
	ArtistReference string   `json:"artist_reference"`
	AlbumContext    string   `json:"album_context"`
	TrackNumber     int      `json:"track_number"`
	DurationSeconds int      `json:"duration_seconds"`
}
