package suggest

import "testing"

func TestParseDuration(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"95", 95, true},
		{"1:05", 65, true},
		{"1:30:00", 5400, true},
		{"2m5s", 125, true},
		{"1h30m", 5400, true},
		{"45s", 45, true},
		{"3m", 180, true},
		{"90 seconds", 90, true},
		{"1:99", 0, false},
		{"soon", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		got, ok := ParseDuration(c.in)
		if ok != c.ok || (ok && got != c.want) {
			t.Errorf("ParseDuration(%q) = (%d, %v), want (%d, %v)", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestDurationRoundTrip(t *testing.T) {
	for _, n := range []int{10, 59, 60, 61, 65, 119, 120, 3599, 3600, 5400, 71999, 72000} {
		got, ok := ParseDuration(RenderDuration(n))
		if !ok || got != n {
			t.Errorf("round trip %d: got (%d, %v)", n, got, ok)
		}
	}
	// exhaustive over the full accepted range
	for n := MinDurationSeconds; n <= MaxDurationSeconds; n++ {
		got, ok := ParseDuration(RenderDuration(n))
		if !ok || got != n {
			t.Fatalf("round trip %d: got (%d, %v)", n, got, ok)
		}
	}
}

func TestClampDuration(t *testing.T) {
	if got := ClampDuration(3); got != MinDurationSeconds {
		t.Errorf("ClampDuration(3) = %d", got)
	}
	if got := ClampDuration(100000); got != MaxDurationSeconds {
		t.Errorf("ClampDuration(100000) = %d", got)
	}
	if got := ClampDuration(300); got != 300 {
		t.Errorf("ClampDuration(300) = %d", got)
	}
}
