// Package dateonly normalises birthdates and similar calendar values to
// YYYY-MM-DD tokens without time-of-day or timezone drift.
package dateonly

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

const Layout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date")

var (
	prefixRe = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})`)

	fallbackLayouts = []string{
		time.RFC3339Nano,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		time.RFC1123Z,
		time.RFC1123,
	}
)

// Normalize returns nil for blank input (an explicit clear) and
// ErrInvalidDate when the input cannot be read as a calendar day.
func Normalize(raw string) (*string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, nil
	}

	if m := prefixRe.FindString(s); m != "" && Valid(m) {
		return &m, nil
	}

	for _, layout := range fallbackLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		day := t.UTC().Format(Layout)
		if !Valid(day) {
			break
		}
		return &day, nil
	}

	return nil, ErrInvalidDate
}

// Valid reports whether tok is an exact YYYY-MM-DD token for a real day.
func Valid(tok string) bool {
	t, err := time.Parse(Layout, tok)
	return err == nil && t.Format(Layout) == tok
}

// ToTime converts a token to midnight UTC for storage in DATE columns.
func ToTime(tok *string) (*time.Time, error) {
	if tok == nil {
		return nil, nil
	}
	t, err := time.Parse(Layout, *tok)
	if err != nil {
		return nil, ErrInvalidDate
	}
	return &t, nil
}

func FromTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(Layout)
	return &s
}
