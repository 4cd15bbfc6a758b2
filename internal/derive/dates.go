package derive

import "time"

// Layouts accepted for dates crossing the API boundary. Day-granularity
// fields arrive as yyyy-mm-dd, rental start/end as full timestamps; older
// records mix both forms so every parser here tolerates all of them.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseFlexibleTime parses a date-only or full ISO timestamp. The boolean is
// false for empty or unparseable input; callers treat that as "no
// constraint" rather than an error.
func ParseFlexibleTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last nanosecond of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// calendarDaysBetween counts whole calendar days from a to b, ignoring the
// time of day. Negative when b is before a.
func calendarDaysBetween(a, b time.Time) int {
	return int(StartOfDay(b).Sub(StartOfDay(a)).Hours() / 24)
}
