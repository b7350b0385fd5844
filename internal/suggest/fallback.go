package suggest

import (
	crand "crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math/rand"
	"strings"

	"github.com/musewave/musewave-api/internal/textutil"
	"github.com/musewave/musewave-api/internal/vocab"
)

// Offline candidate pools. Small combinatorial pieces; variation comes from
// the seed, not pool size.
var (
	titleLeads = []string{
		"Neon", "Midnight", "Velvet", "Solar", "Lunar", "Echo",
		"Prism", "Pulse", "Afterdark", "Skyline", "Starlit", "Voltage",
	}
	titleTails = []string{
		"Drive", "Rush", "Signal", "Flow", "Reflex", "Motion",
		"Drift", "Tempo", "Glow", "Shift", "Mode", "Wave",
	}
	promptDrums = []string{
		"punchy 808 kick and crisp snare", "swung hihat groove over a tight kick",
		"dusty breakbeat drums", "four-on-the-floor kick with clap layers",
		"half-time drums with ghost-note snare",
	}
	promptBasses = []string{
		"a rolling sub bassline", "warm analog bass stabs", "a sidechained reese bass",
		"a plucked synth bass", "an upright bass groove",
	}
	promptTops = []string{
		"shimmering arp melodies", "detuned pad chords", "a distant piano motif",
		"plucked guitar textures", "airy string layers",
	}
	promptArrangements = []string{
		"build tension into a stripped-back drop", "let the arrangement breathe before the final build",
		"alternate sparse verses with a dense chorus", "ride one hypnotic loop and evolve the filter",
	}
	promptMixes = []string{
		"glue it with gentle bus compression and long reverb tails",
		"keep the mix dry and punchy with tight eq carving",
		"wash the top end in delay while the low end stays mono",
	}
	visualPalettes = []string{
		"Neon-soaked", "Desaturated", "Golden-hour", "Monochrome", "Iridescent",
	}
	visualSettings = []string{
		"rain-slick city streets", "an empty desert highway", "a brutalist rooftop at dusk",
		"a fog-filled forest clearing", "an abandoned industrial hall",
	}
	visualCameras = []string{
		"slow dolly shots and handheld closeups", "wide anamorphic framing",
		"drone passes and whip pans", "long static takes with shallow focus",
	}
	visualEdits = []string{
		"strobing jump cuts synced to the beat", "slow crossfades and film grain",
		"glitch transitions and datamosh bursts", "match cuts on movement",
	}
	lyricEmotions = []string{
		"letting go", "chasing a memory", "starting over", "staying up too late",
		"missing someone in a crowd",
	}
	lyricImagery = []string{
		"city lights through a rain-streaked window", "static on an old radio",
		"headlights on an empty road", "a phone that never rings", "smoke curling under streetlamps",
	}
	lyricHooks = []string{
		"we don't have to go home", "say it like you mean it", "one more night like this",
		"i keep the light on", "nothing here stands still",
	}
)

func fallbackTitle(mc musicContext, seed string) string {
	lead := titleLeads[seedPick(seed, "title-lead", len(titleLeads))]
	tail := titleTails[seedPick(seed, "title-tail", len(titleTails))]
	return lead + " " + tail
}

func fallbackProductionPrompt(mc musicContext, seed string) string {
	genre := "electronic"
	if len(mc.Genres) > 0 {
		genre = strings.ToLower(mc.Genres[0])
	}
	return fmt.Sprintf("A %s %s track around %d bpm: %s, %s, and %s; %s, then %s.",
		mc.Mood, genre, mc.TempoBPM,
		promptDrums[seedPick(seed, "drums", len(promptDrums))],
		promptBasses[seedPick(seed, "bass", len(promptBasses))],
		promptTops[seedPick(seed, "tops", len(promptTops))],
		promptArrangements[seedPick(seed, "arr", len(promptArrangements))],
		promptMixes[seedPick(seed, "mix", len(promptMixes))])
}

func fallbackVisualStyle(mc musicContext, seed string) string {
	return fmt.Sprintf("%s visuals set in %s, using %s, edited with %s.",
		visualPalettes[seedPick(seed, "palette", len(visualPalettes))],
		visualSettings[seedPick(seed, "setting", len(visualSettings))],
		visualCameras[seedPick(seed, "camera", len(visualCameras))],
		visualEdits[seedPick(seed, "edit", len(visualEdits))])
}

func fallbackLyricsTheme(mc musicContext, seed string) string {
	return fmt.Sprintf("A %s song about %s, built on the image of %s, circling back to the line \"%s\".",
		mc.Mood,
		lyricEmotions[seedPick(seed, "emotion", len(lyricEmotions))],
		lyricImagery[seedPick(seed, "imagery", len(lyricImagery))],
		lyricHooks[seedPick(seed, "hook", len(lyricHooks))])
}

func fallbackArtistInspiration(mc musicContext) string {
	category := categoryForGenres(mc.Genres)
	pool := vocab.ArtistKnowledgeBase[category]
	if len(pool) == 0 {
		pool = vocab.ArtistKnowledgeBase["global_icons"]
	}
	n := 3
	if n > len(pool) {
		n = len(pool)
	}
	return strings.Join(pool[:n], ", ")
}

// fallbackRNG seeds variation from the context plus fresh randomness, so the
// same context still produces a different shuffle on each call.
func fallbackRNG(field Field, ctx CreativeContext) *rand.Rand {
	sum := sha256.Sum256([]byte(string(field) + "|" + textutil.Normalize(ctx.Description) + "|" + strings.Join(ctx.Genres, ",")))
	var fresh [8]byte
	_, _ = crand.Read(fresh[:])
	seed := int64(binary.BigEndian.Uint64(sum[:8]) ^ binary.BigEndian.Uint64(fresh[:]))
	return rand.New(rand.NewSource(seed))
}

// fallbackCandidates builds the offline candidate pool for one field. Every
// candidate is expected to pass the field's validator; the caller still runs
// the normal validate + uniqueness path over the pool.
func fallbackCandidates(field Field, ctx CreativeContext) []string {
	rng := fallbackRNG(field, ctx)
	var pool []string
	switch field {
	case FieldTitle:
		leads := shuffled(rng, titleLeads)
		tails := shuffled(rng, titleTails)
		for i := 0; i < len(leads); i++ {
			pool = append(pool, leads[i]+" "+tails[i%len(tails)])
		}
		// context-anchored variants get priority slots
		if len(ctx.Genres) > 0 {
			center := titleCase(ctx.Genres[0])
			pool = append([]string{leads[0] + " " + center + " " + tails[1]}, pool...)
		}
	case FieldProductionPrompt:
		mc := seededContext(ctx, rng)
		for i := 0; i < 8; i++ {
			pool = append(pool, fallbackProductionPrompt(mc, fmt.Sprintf("fb-%d-%d", rng.Int63(), i)))
		}
	case FieldGenreList:
		all := shuffled(rng, vocab.AllGenres())
		for i := 0; i+2 < len(all) && len(pool) < 10; i += 3 {
			pool = append(pool, strings.Join(all[i:i+3], ", "))
		}
	case FieldVocalLanguages:
		langs := shuffled(rng, vocab.Languages)
		for i := 0; i < len(langs) && len(pool) < 10; i++ {
			pool = append(pool, langs[i])
		}
	case FieldLyricsTheme:
		mc := seededContext(ctx, rng)
		for i := 0; i < 8; i++ {
			pool = append(pool, fallbackLyricsTheme(mc, fmt.Sprintf("fb-%d-%d", rng.Int63(), i)))
		}
	case FieldArtistInspiration:
		artists := shuffled(rng, vocab.AllArtists())
		for i := 0; i+2 < len(artists) && len(pool) < 10; i += 3 {
			pool = append(pool, strings.Join(artists[i:i+3], ", "))
		}
	case FieldVisualStyle:
		mc := seededContext(ctx, rng)
		for i := 0; i < 8; i++ {
			pool = append(pool, fallbackVisualStyle(mc, fmt.Sprintf("fb-%d-%d", rng.Int63(), i)))
		}
	case FieldDuration:
		base := ctx.DurationSeconds
		if base <= 0 {
			base = 180
		}
		for _, off := range []int{0, 15, -15, 30, -30, 45, 60, 90} {
			pool = append(pool, RenderDuration(ClampDuration(base+off)))
		}
	}
	return pool
}

func seededContext(ctx CreativeContext, rng *rand.Rand) musicContext {
	return coerceMusicContext(musicContext{}, ctx, fmt.Sprintf("offline-%d", rng.Int63()))
}

func shuffled(rng *rand.Rand, in []string) []string {
	out := append([]string(nil), in...)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
