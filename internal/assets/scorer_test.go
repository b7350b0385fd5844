package assets

import "testing"

func TestCategoryFor(t *testing.T) {
	cases := []struct {
		genres []string
		want   string
	}{
		{[]string{"Electronic"}, "electronic"},
		{[]string{"Techno", "House"}, "electronic"},
		{[]string{"Hip-Hop"}, "hip_hop"},
		{[]string{"Orchestral"}, "cinematic"},
		{[]string{"Polka"}, DefaultCategory},
		{nil, DefaultCategory},
	}
	for _, c := range cases {
		if got := CategoryFor(c.genres); got != c.want {
			t.Errorf("CategoryFor(%v) = %q, want %q", c.genres, got, c.want)
		}
	}
}

func TestSelectAudioElectronicScenario(t *testing.T) {
	used := UsedSet{}
	first := SelectAudio([]string{"Electronic"}, 30, "", used)
	if first.URL == "" {
		t.Fatal("no asset returned")
	}
	inCategory := false
	for _, a := range AudioPool("electronic") {
		if a.URL == first.URL {
			inCategory = true
		}
	}
	if !inCategory {
		t.Errorf("returned asset %q not in electronic pool", first.URL)
	}

	second := SelectAudio([]string{"Electronic"}, 30, "", used)
	if second.URL == first.URL {
		t.Errorf("second selection repeated %q despite used-set", first.URL)
	}
}

func TestSelectAudioGracefulReuse(t *testing.T) {
	used := UsedSet{}
	for _, a := range AudioPool("jazz") {
		used.Add(a.URL)
	}
	got := SelectAudio([]string{"Jazz"}, 25, "", used)
	if got.URL == "" {
		t.Error("exhausted pool must still return an asset")
	}
}

func TestSelectAudioPrefersCloserDuration(t *testing.T) {
	// electronic pool durations: 30, 28, 25, 27
	got := SelectAudio([]string{"Electronic"}, 25, "", UsedSet{})
	if got.DurationSeconds != 25 {
		t.Errorf("expected the 25s asset, got %ds (%s)", got.DurationSeconds, got.Title)
	}
}

func TestSelectAudioMoodOverlap(t *testing.T) {
	// "Urban Beat" shares the urban mood group with the request text.
	got := SelectAudio([]string{"Hip-Hop"}, 26, "gritty street energy with heavy bass", UsedSet{})
	if got.Title != "Urban Beat" {
		t.Errorf("expected mood overlap to win, got %q", got.Title)
	}
}

func TestMoodGroupHitsMatchesWholeTokensOnly(t *testing.T) {
	// "powerful" must not count as the mood word "power".
	if got := moodGroupHits("raw power chords", "Powerful Dreams"); got != 0 {
		t.Errorf("embedded word counted as mood hit: %d", got)
	}
	if got := moodGroupHits("raw power chords", "Power Surge"); got != 1 {
		t.Errorf("exact token should count once, got %d", got)
	}
}

func TestSelectAudioDeterministic(t *testing.T) {
	a := SelectAudio([]string{"Ambient"}, 0, "calm night drift", UsedSet{})
	b := SelectAudio([]string{"Ambient"}, 0, "calm night drift", UsedSet{})
	if a.URL != b.URL {
		t.Errorf("same inputs picked different assets: %q vs %q", a.URL, b.URL)
	}
}

func TestSelectCoverArtAvoidsImmediateRepeat(t *testing.T) {
	used := UsedSet{}
	first := SelectCoverArt([]string{"Rock"}, "", used)
	second := SelectCoverArt([]string{"Rock"}, "", used)
	if first == "" || second == "" {
		t.Fatal("cover selection returned empty url")
	}
	if first == second {
		t.Errorf("cover art repeated %q despite used-set", first)
	}
	// pool of two is now exhausted; selection must still succeed
	third := SelectCoverArt([]string{"Rock"}, "", used)
	if third == "" {
		t.Error("exhausted cover pool must still return a url")
	}
}
