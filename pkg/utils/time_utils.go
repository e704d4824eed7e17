package utils

import "time"

// LoadLocation falls back to UTC when the zone database lacks name.
func LoadLocation(name string) *time.Location {
	if loc, err := time.LoadLocation(name); err == nil {
		return loc
	}
	return time.UTC
}

// FormatDisplayIn renders a timestamp for humans, e.g. in notification emails.
func FormatDisplayIn(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	return t.In(loc).Format("Mon, 02 Jan 2006 15:04 MST")
}
