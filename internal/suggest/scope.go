package suggest

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/musewave/musewave-api/internal/textutil"
)

const (
	scopeKeyLen          = 40
	scopeDescriptionCap  = 280
	scopeGenreCap        = 6
	scopeLyricsCap       = 180
	scopeArtistCap       = 180
	scopeAlbumContextCap = 140
)

// scopeProjection is the compact, order-stable view of a context that feeds
// the scope key. Fields marshal in declaration order, so the digest is
// deterministic for the same logical request.
type scopeProjection struct {
	User        string   `json:"u"`
	Field       string   `json:"f"`
	Description string   `json:"d"`
	Genres      []string `json:"g"`
	Lyrics      string   `json:"l"`
	Artist      string   `json:"a"`
	Album       string   `json:"al"`
	Track       int      `json:"t"`
}

// ScopeKey derives the uniqueness scope for (user, field, context). Irrelevant
// context differences do not change the key; the same logical request always
// yields the same key.
func ScopeKey(field Field, ctx CreativeContext, userID string) string {
	user := strings.TrimSpace(userID)
	if user == "" {
		user = "global"
	}

	genres := make([]string, 0, scopeGenreCap)
	for _, g := range ctx.Genres {
		g = textutil.Normalize(g)
		if g == "" {
			continue
		}
		genres = append(genres, g)
		if len(genres) == scopeGenreCap {
			break
		}
	}

	proj := scopeProjection{
		User:        user,
		Field:       string(field),
		Description: textutil.Truncate(textutil.Normalize(ctx.Description), scopeDescriptionCap),
		Genres:      genres,
		Lyrics:      textutil.Truncate(textutil.Normalize(ctx.Lyrics), scopeLyricsCap),
		Artist:      textutil.Truncate(textutil.Normalize(ctx.ArtistReference), scopeArtistCap),
		Album:       textutil.Truncate(textutil.Normalize(ctx.AlbumContext), scopeAlbumContextCap),
		Track:       ctx.TrackNumber,
	}

	raw, err := json.Marshal(proj)
	if err != nil {
		raw = []byte(user + "|" + string(field))
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])[:scopeKeyLen]
}
