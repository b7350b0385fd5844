// Package assets picks the best pre-seeded media asset (audio track, cover
// art) for a request, without any live generation backend: weighted scoring
// over a small per-category catalog with a stable hash tie-break.
package assets

import (
	"github.com/musewave/musewave-api/internal/textutil"
	"github.com/musewave/musewave-api/internal/vocab"
)

// DefaultCategory is used when no requested genre maps to a catalog category.
const DefaultCategory = "default"

// Asset is one catalog entry. Read-only, never created or destroyed here.
type Asset struct {
	URL             string `json:"url"`
	Title           string `json:"title"`
	DurationSeconds int    `json:"duration_seconds"`
}

// audioLibrary is the curated per-category audio pool.
var audioLibrary = map[string][]Asset{
	"electronic": {
		{URL: "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-1.mp3", Title: "Electronic Pulse", DurationSeconds: 30},
		{URL: "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-2.mp3", Title: "Digital Wave", DurationSeconds: 28},
		{URL: "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-3.mp3", Title: "Synth Dreams", DurationSeconds: 25},
		{URL: "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-4.mp3", Title: "Cyber Flow", DurationSeconds: 27},
	},
	"ambient": {
		{URL: "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-5.mp3", Title: "Peaceful Ambient", DurationSeconds: 30},
		{URL: "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-6.mp3", Title: "Ethereal Space", DurationSeconds: 26},
		{URL: "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-7.mp3", Title: "Calm Waters", DurationSeconds: 24},
	},
	"rock": {
		{URL: "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-8.mp3", Title: "Rock Energy", DurationSeconds: 28},
		{URL: "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-9.mp3", Title: "Guitar Riff", DurationSeconds: 25},
		{URL: "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-10.mp3", Title: "Power Chords", DurationSeconds: 30},
	},
	"hip_hop": {
		{URL: "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-11.mp3", Title: "Urban Beat", DurationSeconds: 26},
		{URL: "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-12.mp3", Title: "Street Flow", DurationSeconds: 28},
		{URL: "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-13.mp3", Title: "Boom Bap", DurationSeconds: 24},
	},
	"cinematic": {
		{URL: "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-14.mp3", Title: "Epic Journey", DurationSeconds: 30},
		{URL: "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-15.mp3", Title: "Dramatic Score", DurationSeconds: 28},
		{URL: "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-16.mp3", Title: "Orchestral Rise", DurationSeconds: 25},
	},
	"jazz": {
		{URL: "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-1.mp3", Title: "Smooth Jazz", DurationSeconds: 28},
		{URL: "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-2.mp3", Title: "Jazz Cafe", DurationSeconds: 26},
	},
	"pop": {
		{URL: "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-3.mp3", Title: "Pop Vibes", DurationSeconds: 25},
		{URL: "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-4.mp3", Title: "Feel Good", DurationSeconds: 28},
		{URL: "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-5.mp3", Title: "Summer Hit", DurationSeconds: 24},
	},
	"lofi": {
		{URL: "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-6.mp3", Title: "Lofi Study", DurationSeconds: 30},
		{URL: "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-7.mp3", Title: "Chill Beats", DurationSeconds: 26},
		{URL: "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-8.mp3", Title: "Rainy Day", DurationSeconds: 28},
	},
	"classical": {
		{URL: "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-9.mp3", Title: "Piano Sonata", DurationSeconds: 30},
		{URL: "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-10.mp3", Title: "Strings Ensemble", DurationSeconds: 28},
	},
	DefaultCategory: {
		{URL: "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-11.mp3", Title: "Inspiring", DurationSeconds: 28},
		{URL: "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-12.mp3", Title: "Uplifting", DurationSeconds: 25},
		{URL: "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-13.mp3", Title: "Creative Flow", DurationSeconds: 30},
	},
}

// coverArtLibrary holds curated cover image URLs per category.
var coverArtLibrary = map[string][]string{
	"electronic": {
		"https://images.unsplash.com/photo-1614149162883-504ce4d13909?w=400&h=400&fit=crop",
		"https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=400&h=400&fit=crop",
		"https://images.unsplash.com/photo-1571974599782-87624638275e?w=400&h=400&fit=crop",
	},
	"ambient": {
		"https://images.unsplash.com/photo-1518837695005-2083093ee35b?w=400&h=400&fit=crop",
		"https://images.unsplash.com/photo-1507400492013-162706c8c05e?w=400&h=400&fit=crop",
	},
	"rock": {
		"https://images.unsplash.com/photo-1498038432885-c6f3f1b912ee?w=400&h=400&fit=crop",
		"https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?w=400&h=400&fit=crop",
	},
	"hip_hop": {
		"https://images.unsplash.com/photo-1571609860754-01a63ee4d50c?w=400&h=400&fit=crop",
		"https://images.unsplash.com/photo-1546367791-e07aabff30bc?w=400&h=400&fit=crop",
	},
	"cinematic": {
		"https://images.unsplash.com/photo-1478737270239-2f02b77fc618?w=400&h=400&fit=crop",
		"https://images.unsplash.com/photo-1536440136628-849c177e76a1?w=400&h=400&fit=crop",
	},
	"jazz": {
		"https://images.unsplash.com/photo-1511192336575-5a79af67a629?w=400&h=400&fit=crop",
		"https://images.unsplash.com/photo-1514320291840-2e0a9bf2a9ae?w=400&h=400&fit=crop",
	},
	"pop": {
		"https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?w=400&h=400&fit=crop",
		"https://images.unsplash.com/photo-1506157786151-b8491531f063?w=400&h=400&fit=crop",
	},
	"lofi": {
		"https://images.unsplash.com/photo-1528722828814-77b9b83aafb2?w=400&h=400&fit=crop",
		"https://images.unsplash.com/photo-1515378960530-7c0da6231fb1?w=400&h=400&fit=crop",
	},
	"classical": {
		"https://images.unsplash.com/photo-1507838153414-b4b713384a76?w=400&h=400&fit=crop",
		"https://images.unsplash.com/photo-1520523839897-bd0b52f945a0?w=400&h=400&fit=crop",
	},
	DefaultCategory: {
		"https://images.unsplash.com/photo-1470225620780-dba8ba36b745?w=400&h=400&fit=crop",
		"https://images.unsplash.com/photo-1459749411175-04bf5292ceea?w=400&h=400&fit=crop",
		"https://images.unsplash.com/photo-1511379938547-c1f69419868d?w=400&h=400&fit=crop",
	},
}

// CategoryFor maps requested genres onto one catalog category. The first
// mapping entry containing any requested genre wins; unmapped genres land in
// the default category.
func CategoryFor(genres []string) string {
	for _, entry := range vocab.GenreCategoryMapping {
		for _, g := range genres {
			gn := textutil.Normalize(g)
			if gn == "" {
				continue
			}
			for _, member := range entry.Genres {
				if textutil.Normalize(member) == gn {
					return entry.Category
				}
			}
		}
	}
	return DefaultCategory
}

// AudioPool returns the audio assets for a category (default pool when the
// category has none).
func AudioPool(category string) []Asset {
	if pool, ok := audioLibrary[category]; ok && len(pool) > 0 {
		return pool
	}
	return audioLibrary[DefaultCategory]
}

// CoverArtPool returns the cover URLs for a category (default pool when the
// category has none).
func CoverArtPool(category string) []string {
	if pool, ok := coverArtLibrary[category]; ok && len(pool) > 0 {
		return pool
	}
	return coverArtLibrary[DefaultCategory]
}
