package schedule

import (
	"errors"
	"strings"
	"time"
)

// Slot labels are the one string that crosses the form boundary twice: the
// server renders it, the member submits it back, and the server must
// recover the exact timestamp it started from. The delimiter "::" never
// appears in either half, and both halves use fixed layouts, so the
// round-trip is lossless to the minute.
const (
	labelDelim      = "::"
	labelDateLayout = "Monday January 02 2006"
	labelTimeLayout = "15:04"
)

// ErrBadLabel is returned when a submitted label cannot be parsed back
// into a timestamp. Handlers treat it as a validation error, never a
// server fault.
var ErrBadLabel = errors.New("malformed slot label")

// Label renders a slot start time as "Monday January 02 2006::15:04".
func Label(t time.Time) string {
	t = t.UTC()
	return t.Format(labelDateLayout) + labelDelim + t.Format(labelTimeLayout)
}

// ParseLabel inverts Label exactly. Any deviation from the rendered
// format yields ErrBadLabel.
func ParseLabel(s string) (time.Time, error) {
	parts := strings.SplitN(s, labelDelim, 2)
	if len(parts) != 2 {
		return time.Time{}, ErrBadLabel
	}
	day, err := time.Parse(labelDateLayout, parts[0])
	if err != nil {
		return time.Time{}, ErrBadLabel
	}
	clock, err := time.Parse(labelTimeLayout, parts[1])
	if err != nil {
		return time.Time{}, ErrBadLabel
	}
	return time.Date(day.Year(), day.Month(), day.Day(),
		clock.Hour(), clock.Minute(), 0, 0, time.UTC), nil
}
