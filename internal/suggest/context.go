package suggest

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/musewave/musewave-api/internal/prompt"
	"github.com/musewave/musewave-api/internal/textutil"
	"github.com/musewave/musewave-api/internal/vocab"
)

// musicContext is one coherent multi-field creative direction, produced fresh
// per generation attempt. Only the requested field is ever extracted from it.
type musicContext struct {
	Title           string   `json:"title"`
	Genres          []string `json:"genres"`
	Mood            string   `json:"mood"`
	Energy          string   `json:"energy"`
	TempoBPM        int      `json:"tempo_bpm"`
	VocalLanguages  []string `json:"vocal_languages"`
	LyricsTheme     string   `json:"lyrics_theme"`
	ProductionIdea  string   `json:"production_idea"`
	VisualStyle     string   `json:"visual_style"`
	DurationSeconds int      `json:"duration_seconds"`
}

var (
	emotionSpace = []string{
		"euphoric", "melancholic", "hypnotic", "restless", "serene",
		"gritty", "nostalgic", "triumphant", "weightless", "feverish",
	}
	energySpace = []string{
		"slow-burning", "driving", "pulsing", "floating", "explosive", "laid-back",
	}
	tempoBase = map[string]int{
		"electronic": 124, "ambient": 70, "rock": 120, "hip_hop": 90,
		"cinematic": 80, "jazz": 110, "pop": 104, "lofi": 78, "classical": 72,
	}
)

// newEntropySeed produces a fresh per-attempt seed from a uuid, wall time,
// and random bytes. Retries with the same context still diverge.
func newEntropySeed(turn, attempt int) string {
	var buf [16]byte
	_, _ = rand.Read(buf[:])
	raw := fmt.Sprintf("%s|%d|%d|%d|%s",
		uuid.NewString(), time.Now().UnixNano(), turn, attempt, hex.EncodeToString(buf[:]))
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// seedPick selects deterministically from a pool using the seed and a salt,
// so one seed yields one coherent set of choices across fields.
func seedPick(seed, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	sum := sha256.Sum256([]byte(seed + "|" + salt))
	return int(binary.BigEndian.Uint32(sum[:4]) % uint32(n))
}

// contextSystemPrompt asks the generator for exactly one JSON object.
var contextSystemPrompt = prompt.NewPromptLoader().GetMusicContextSystemPrompt()

// buildContextPrompt writes the user prompt for one attempt. The seed is
// embedded as a creative direction hint so retries diverge.
func buildContextPrompt(field Field, ctx CreativeContext, turn int, seed string) string {
	var b strings.Builder
	b.WriteString("Invent one complete creative direction for a new piece of music.\n")
	if d := strings.TrimSpace(ctx.Description); d != "" {
		fmt.Fprintf(&b, "The artist describes it as: %q\n", textutil.Truncate(d, 400))
	}
	if len(ctx.Genres) > 0 {
		fmt.Fprintf(&b, "Chosen genres so far: %s\n", strings.Join(ctx.Genres, ", "))
	}
	if a := strings.TrimSpace(ctx.ArtistReference); a != "" {
		fmt.Fprintf(&b, "Artist reference: %s\n", textutil.Truncate(a, 180))
	}
	if l := strings.TrimSpace(ctx.Lyrics); l != "" {
		fmt.Fprintf(&b, "Existing lyric fragment: %q\n", textutil.Truncate(l, 180))
	}
	if ctx.AlbumContext != "" {
		fmt.Fprintf(&b, "Album context: %s (track %d)\n", textutil.Truncate(ctx.AlbumContext, 140), ctx.TrackNumber)
	}
	if ctx.DurationSeconds > 0 {
		fmt.Fprintf(&b, "Target duration: about %d seconds\n", ctx.DurationSeconds)
	}
	fmt.Fprintf(&b, "This is variation %d. Creative direction code: %s. Use it to make this direction unlike earlier ones.\n", turn, seed[:12])
	fmt.Fprintf(&b, "The field the artist actually needs right now is %q; make that one especially strong.", string(field))
	return b.String()
}

// parseMusicContext tolerantly extracts the JSON object from raw generator
// output (which may carry code fences or prose around the object).
func parseMusicContext(raw string) (musicContext, bool) {
	var mc musicContext
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return mc, false
	}
	if err := json.Unmarshal([]byte(raw[start:end+1]), &mc); err != nil {
		return mc, false
	}
	return mc, true
}

// coerceMusicContext fills any missing or unusable field deterministically
// from the entropy seed, so extraction always succeeds even fully offline.
func coerceMusicContext(mc musicContext, ctx CreativeContext, seed string) musicContext {
	if len(mc.Genres) == 0 {
		if len(ctx.Genres) > 0 {
			mc.Genres = append([]string(nil), ctx.Genres...)
		} else {
			all := vocab.AllGenres()
			base := seedPick(seed, "genre", len(all))
			for i := 0; i < 3; i++ {
				mc.Genres = append(mc.Genres, all[(base+i*7)%len(all)])
			}
		}
	}
	if len(mc.Genres) > 3 {
		mc.Genres = mc.Genres[:3]
	}
	if mc.Mood == "" {
		mc.Mood = emotionSpace[seedPick(seed, "mood", len(emotionSpace))]
	}
	if mc.Energy == "" {
		mc.Energy = energySpace[seedPick(seed, "energy", len(energySpace))]
	}
	if mc.TempoBPM <= 0 {
		base := tempoBase[categoryForGenres(mc.Genres)]
		if base == 0 {
			base = 100
		}
		mc.TempoBPM = base + seedPick(seed, "tempo", 17) - 8
	}
	if mc.Title == "" {
		mc.Title = fallbackTitle(mc, seed)
	}
	if len(mc.VocalLanguages) == 0 {
		mc.VocalLanguages = []string{"English"}
	}
	if mc.LyricsTheme == "" {
		mc.LyricsTheme = fallbackLyricsTheme(mc, seed)
	}
	if mc.ProductionIdea == "" {
		mc.ProductionIdea = fallbackProductionPrompt(mc, seed)
	}
	if mc.VisualStyle == "" {
		mc.VisualStyle = fallbackVisualStyle(mc, seed)
	}
	if mc.DurationSeconds <= 0 {
		if ctx.DurationSeconds > 0 {
			mc.DurationSeconds = ctx.DurationSeconds
		} else {
			mc.DurationSeconds = 150 + seedPick(seed, "duration", 8)*15
		}
	}
	mc.DurationSeconds = ClampDuration(mc.DurationSeconds)
	return mc
}

// extractField pulls the requested field's raw text out of a music context.
func extractField(field Field, mc musicContext) string {
	switch field {
	case FieldTitle:
		return mc.Title
	case FieldProductionPrompt:
		return mc.ProductionIdea
	case FieldGenreList:
		return strings.Join(mc.Genres, ", ")
	case FieldVocalLanguages:
		return strings.Join(mc.VocalLanguages, ", ")
	case FieldLyricsTheme:
		return mc.LyricsTheme
	case FieldArtistInspiration:
		return fallbackArtistInspiration(mc)
	case FieldVisualStyle:
		return mc.VisualStyle
	case FieldDuration:
		return RenderDuration(mc.DurationSeconds)
	}
	return ""
}

// categoryForGenres maps a genre list onto one coarse asset/tempo category.
func categoryForGenres(genres []string) string {
	for _, entry := range vocab.GenreCategoryMapping {
		for _, g := range genres {
			gn := textutil.Normalize(g)
			for _, member := range entry.Genres {
				if textutil.Normalize(member) == gn {
					return entry.Category
				}
			}
		}
	}
	return ""
}
