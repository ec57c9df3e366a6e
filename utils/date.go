package utils

import (
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout = "2006-01-02" // yyyy-MM-dd
	TimeLayout = "15:04:05"   // HH:mm:ss
)

// NormalizeTime widens loosely formatted clock strings ("9:5", "14:30", "7")
// into canonical HH:MM:SS. Empty input stays empty. Anything that is not a
// colon-separated run of 1-2 digit numbers is returned unchanged so the
// caller's strict parse can reject it.
func NormalizeTime(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return raw
	}

	out := make([]string, 3)
	for i := 0; i < 3; i++ {
		p := "00"
		if i < len(parts) {
			p = parts[i]
		}
		if len(p) == 0 || len(p) > 2 {
			return raw
		}
		for _, r := range p {
			if r < '0' || r > '9' {
				return raw
			}
		}
		if len(p) == 1 {
			p = "0" + p
		}
		out[i] = p
	}
	return strings.Join(out, ":")
}

// ParseDate accepts exactly yyyy-MM-dd.
func ParseDate(raw string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(raw), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", raw, err)
	}
	return t, nil
}

// ParseTime normalizes first, then requires strict HH:MM:SS. It returns the
// canonical string rather than a time.Time: routine times are clock values
// with no date attached.
func ParseTime(raw string) (string, error) {
	s := NormalizeTime(raw)
	if len(s) != len(TimeLayout) {
		return "", fmt.Errorf("invalid time %q", raw)
	}
	if _, err := time.Parse(TimeLayout, s); err != nil {
		return "", fmt.Errorf("invalid time %q: %w", raw, err)
	}
	return s, nil
}
