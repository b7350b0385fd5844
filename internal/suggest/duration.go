package suggest

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	// MinDurationSeconds and MaxDurationSeconds bound every accepted duration.
	MinDurationSeconds = 10
	MaxDurationSeconds = 72000
)

var (
	bareSecondsRe = regexp.MustCompile(`^\d+$`)
	clockRe       = regexp.MustCompile(`^(?:(\d+):)?(\d{1,2}):(\d{2})$`)
	componentRe   = regexp.MustCompile(`^(?:(\d+)h)?(?:(\d+)m)?(?:(\d+)s)?$`)
)

// ParseDuration reads flexible textual durations: bare seconds ("95"),
// clock form ("1:30:00", "2:05"), or component form ("1h30m", "2m5s", "45s").
// Returns the second count before clamping; ok is false on unparseable input.
func ParseDuration(text string) (int, bool) {
	s := strings.ToLower(strings.TrimSpace(text))
	s = strings.TrimSuffix(s, "seconds")
	s = strings.TrimSuffix(s, "secs")
	s = strings.TrimSuffix(s, "sec")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	if bareSecondsRe.MatchString(s) {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, false
		}
		return n, true
	}

	if m := clockRe.FindStringSubmatch(s); m != nil {
		hours := 0
		if m[1] != "" {
			hours, _ = strconv.Atoi(m[1])
		}
		mins, _ := strconv.Atoi(m[2])
		secs, _ := strconv.Atoi(m[3])
		if secs >= 60 {
			return 0, false
		}
		return hours*3600 + mins*60 + secs, true
	}

	if m := componentRe.FindStringSubmatch(strings.ReplaceAll(s, " ", "")); m != nil {
		if m[1] == "" && m[2] == "" && m[3] == "" {
			return 0, false
		}
		total := 0
		if m[1] != "" {
			h, _ := strconv.Atoi(m[1])
			total += h * 3600
		}
		if m[2] != "" {
			mi, _ := strconv.Atoi(m[2])
			total += mi * 60
		}
		if m[3] != "" {
			sec, _ := strconv.Atoi(m[3])
			total += sec
		}
		return total, true
	}

	return 0, false
}

// ClampDuration forces a second count into the accepted range.
func ClampDuration(sec int) int {
	if sec < MinDurationSeconds {
		return MinDurationSeconds
	}
	if sec > MaxDurationSeconds {
		return MaxDurationSeconds
	}
	return sec
}

// RenderDuration writes a second count in canonical component form:
// "45s", "3m", "2m5s". ParseDuration(RenderDuration(n)) == n for any n
// in the accepted range.
func RenderDuration(sec int) string {
	if sec < 60 {
		return fmt.Sprintf("%ds", sec)
	}
	mins := sec / 60
	rem := sec % 60
	if rem == 0 {
		return fmt.Sprintf("%dm", mins)
	}
	return fmt.Sprintf("%dm%ds", mins, rem)
}
