package domain

import (
	"errors"
	"strings"
	"time"
)

// TimestampLayout is the canonical form of route timestamps.
const TimestampLayout = "2006-01-02 15:04:05"

var timestampLayouts = [...]string{
	TimestampLayout,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
}

// ErrBadTimestamp is returned for strings no accepted layout matches.
var ErrBadTimestamp = errors.New("unrecognized timestamp")

// ParseTimestamp parses s keeping the written wall clock. Any zone or offset
// in s is dropped without converting the instant.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrBadTimestamp
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return WallClock(t), nil
		}
	}
	return time.Time{}, ErrBadTimestamp
}

// WallClock returns t's wall clock fields in UTC, truncated to seconds.
func WallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
}

// FormatTimestamp renders t in the canonical layout.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}
