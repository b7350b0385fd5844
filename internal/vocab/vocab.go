// Package vocab holds the static knowledge bases the suggestion engine and
// asset scorer draw on: canonical genres, artists, vocal languages, visual
// style seeds, and the keyword sets used by validation and scoring.
package vocab

import "sort"

// GenreKnowledgeBase groups canonical genres by scene/region. Categories are
// only an organizational aid; callers usually want AllGenres().
var GenreKnowledgeBase = map[string][]string{
	"mainstream":       {"Pop", "Rock", "Hip-Hop", "R&B", "Electronic", "Jazz", "Classical", "Country", "Reggae", "Blues", "Metal", "Folk", "Indie", "Soul", "Funk", "Disco"},
	"electronic":       {"House", "Techno", "Trance", "Dubstep", "Drum and Bass", "Ambient", "IDM", "Synthwave", "Chillwave", "Future Bass", "Hardstyle", "Deep House", "Progressive House", "EDM"},
	"underground":      {"Lo-fi", "Vaporwave", "Shoegaze", "Post-Punk", "Noise", "Drone", "Dark Ambient", "Industrial", "Chiptune", "Glitch"},
	"regional":         {"Afrobeats", "Reggaeton", "K-Pop", "J-Pop", "Bollywood", "Bossa Nova", "Flamenco", "Cumbia", "Salsa", "Samba", "Dancehall", "Grime"},
	"micro_genres":     {"Trap", "Drill", "Phonk", "Hyperpop", "Bedroom Pop", "Cloud Rap", "Math Rock", "Post-Rock", "Dream Pop"},
	"cinematic":        {"Orchestral", "Cinematic", "Epic", "Film Score", "Video Game", "Ambient Soundscape", "Neo-Classical", "Minimalist"},
	"latin":            {"Latin Pop", "Bachata", "Merengue", "Regional Mexican", "Corridos", "Norteño", "Mariachi", "Dembow", "Latin Trap"},
	"african":          {"Amapiano", "Afro House", "Afro Fusion", "Bongo Flava", "Highlife", "Gqom", "Kuduro", "Afro-Cuban"},
	"south_asian":      {"Indian Classical", "Carnatic", "Qawwali", "Ghazal", "Bollywood", "Bhangra", "Filmi", "Baul"},
	"east_asian":       {"City Pop", "Enka", "Kayokyoku", "Anisong", "Mandopop", "Cantopop", "Trot", "Pansori"},
	"middle_eastern":   {"Arabic Pop", "Maqam", "Dabke", "Rai", "Gnawa", "Persian Traditional", "Turkish Folk", "Tarab"},
	"traditional_folk": {"Bluegrass", "Celtic Folk", "Nordic Folk", "Flamenco", "Fado", "Tango", "Sufi", "Andean Folk"},
	"experimental":     {"Glitch Hop", "Deconstructed Club", "Footwork", "Juke", "Electroacoustic", "Musique Concrete", "Sound Collage", "Generative Ambient"},
}

// ArtistKnowledgeBase groups reference artists by scene.
var ArtistKnowledgeBase = map[string][]string{
	"electronic":         {"Aphex Twin", "Boards of Canada", "Four Tet", "Burial", "Flying Lotus", "Bonobo", "Tycho", "Jon Hopkins", "Caribou"},
	"pop":                {"The Weeknd", "Dua Lipa", "Billie Eilish", "Harry Styles", "Taylor Swift", "Post Malone", "SZA"},
	"rock":               {"Tame Impala", "Arctic Monkeys", "Radiohead", "Muse", "Royal Blood", "Khruangbin"},
	"hip_hop":            {"Kendrick Lamar", "Tyler the Creator", "Frank Ocean", "Travis Scott", "J. Cole"},
	"ambient":            {"Brian Eno", "Stars of the Lid", "Tim Hecker", "Sigur Rós", "Explosions in the Sky"},
	"jazz":               {"Kamasi Washington", "Robert Glasper", "Thundercat", "Snarky Puppy"},
	"latin":              {"Bad Bunny", "Rosalia", "Karol G", "J Balvin", "Peso Pluma", "Shakira", "Rauw Alejandro"},
	"african":            {"Burna Boy", "Wizkid", "Tems", "Rema", "Asake", "Black Coffee", "Sauti Sol"},
	"south_asian":        {"A. R. Rahman", "Shreya Ghoshal", "Arijit Singh", "Divine", "Nucleya", "Prateek Kuhad"},
	"east_asian":         {"BTS", "BLACKPINK", "IU", "YOASOBI", "Ado", "Jay Chou", "Teresa Teng"},
	"middle_eastern":     {"Amr Diab", "Nancy Ajram", "Fairuz", "Umm Kulthum", "Mohsen Namjoo", "Googoosh"},
	"classical_heritage": {"Ludwig van Beethoven", "Johann Sebastian Bach", "Antonio Vivaldi", "Claude Debussy", "Ravi Shankar", "Nusrat Fateh Ali Khan"},
	"global_icons":       {"Daft Punk", "Drake", "Adele", "Beyonce", "Bruno Mars", "Coldplay", "Ed Sheeran", "Hans Zimmer"},
}

// Languages is the canonical vocal-language list. "Instrumental" is a valid
// single-value answer and always wins when the input mentions it.
var Languages = []string{
	"Instrumental", "English", "Spanish", "French", "German", "Italian", "Portuguese",
	"Japanese", "Korean", "Chinese (Mandarin)", "Chinese (Cantonese)", "Hindi", "Urdu",
	"Arabic", "Russian", "Swedish", "Norwegian", "Danish", "Finnish", "Dutch", "Polish",
	"Czech", "Slovak", "Hungarian", "Romanian", "Bulgarian", "Serbian", "Croatian",
	"Slovenian", "Greek", "Turkish", "Hebrew", "Persian", "Kurdish", "Armenian",
	"Azerbaijani", "Georgian", "Kazakh", "Uzbek", "Tajik", "Thai", "Vietnamese",
	"Indonesian", "Malay", "Tagalog", "Tamil", "Telugu", "Kannada", "Malayalam",
	"Punjabi", "Bengali", "Marathi", "Gujarati", "Sinhala", "Nepali", "Swahili",
	"Yoruba", "Igbo", "Hausa", "Amharic", "Somali", "Zulu", "Xhosa", "Afrikaans",
	"Lingala", "Wolof", "Portuguese (Brazil)", "Spanish (Latin America)",
	"French (Quebec)", "Gaelic", "Irish", "Welsh", "Basque", "Catalan", "Galician",
	"Icelandic", "Maltese", "Albanian", "Lithuanian", "Latvian", "Estonian",
	"Khmer", "Lao", "Burmese", "Mongolian",
}

// VisualStyles seeds the visual-direction fallback pool.
var VisualStyles = []string{
	"Cyberpunk cityscape", "Abstract geometric patterns", "Nature cinematography",
	"Psychedelic visuals", "Minimalist motion graphics", "Retro VHS aesthetic",
	"Surreal dreamscape", "Urban street footage", "Space and cosmos", "Neon lights",
}

// TitleBlacklistTerms are overwrought words that make titles feel fantasy-generated.
var TitleBlacklistTerms = map[string]bool{
	"cathedral": true, "labyrinth": true, "monolith": true, "oracle": true,
	"abyss": true, "relic": true, "citadel": true, "sanctuary": true,
	"altar": true, "hymn": true, "epitaph": true, "requiem": true,
	"catacomb": true, "seraph": true, "omen": true,
}

// TitleGenericTerms are bland placeholder words rejected in titles.
var TitleGenericTerms = map[string]bool{
	"song": true, "track": true, "music": true, "untitled": true,
	"demo": true, "test": true, "vibe": true,
}

// ProductionKeywords must appear (at least one) in a production prompt.
var ProductionKeywords = []string{
	"kick", "snare", "hihat", "bassline", "chord", "melody", "arp", "808", "synth",
	"guitar", "piano", "strings", "pad", "pluck", "reverb", "delay", "sidechain",
	"compression", "eq", "groove", "arrangement", "mix", "master", "drop", "build",
	"acoustic", "electronic", "beat", "rhythm", "tempo", "bpm", "echo", "filter",
	"bass", "vocal", "instrumental", "drum", "layer", "texture", "ambient", "lofi",
}

// NarrativeMarkers flag the generator drifting into storytelling.
var NarrativeMarkers = []string{
	"once upon a time", "there was", "a tale", "a story",
	"and they lived", "the end", "dear reader",
	"metaphorically", "symbolically", "in a land",
	"imagine if", "picture yourself", "you walk into",
}

// GenreCategoryMapping maps canonical genres to asset-library categories.
// Order matters: the first category containing a requested genre wins.
var GenreCategoryMapping = []struct {
	Category string
	Genres   []string
}{
	{"electronic", []string{"Electronic", "House", "Techno", "Trance", "Dubstep", "EDM", "Synthwave", "Future Bass", "Deep House"}},
	{"ambient", []string{"Ambient", "Drone", "Dark Ambient", "Chillwave", "IDM", "Minimalist"}},
	{"rock", []string{"Rock", "Metal", "Indie", "Post-Rock", "Shoegaze", "Post-Punk"}},
	{"hip_hop", []string{"Hip-Hop", "Trap", "Drill", "Cloud Rap", "R&B"}},
	{"cinematic", []string{"Cinematic", "Orchestral", "Epic", "Film Score", "Classical", "Neo-Classical"}},
	{"jazz", []string{"Jazz", "Soul", "Funk", "Blues"}},
	{"pop", []string{"Pop", "K-Pop", "J-Pop", "Disco", "Bedroom Pop"}},
	{"lofi", []string{"Lo-fi", "Chillwave", "Vaporwave"}},
	{"classical", []string{"Classical", "Orchestral", "Piano"}},
}

// MoodGroups back the context-overlap factor in asset scoring: a group counts
// when the request text and the asset title both contain one of its tokens.
var MoodGroups = map[string][]string{
	"dark":      {"dark", "night", "midnight", "shadow", "moody"},
	"energy":    {"energy", "power", "drive", "pulse", "rush", "drop"},
	"calm":      {"calm", "ambient", "chill", "lofi", "peaceful", "soft"},
	"cinematic": {"cinematic", "epic", "orchestral", "score", "drama"},
	"urban":     {"street", "urban", "beat", "bass", "flow"},
	"uplift":    {"uplift", "inspire", "summer", "feel", "dream"},
}

// AllGenres returns every canonical genre, sorted and de-duplicated.
func AllGenres() []string {
	return flatten(GenreKnowledgeBase)
}

// AllArtists returns every reference artist, sorted and de-duplicated.
func AllArtists() []string {
	return flatten(ArtistKnowledgeBase)
}

func flatten(kb map[string][]string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, entries := range kb {
		for _, entry := range entries {
			if !seen[entry] {
				seen[entry] = true
				out = append(out, entry)
			}
		}
	}
	sort.Strings(out)
	return out
}
