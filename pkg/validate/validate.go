// Package validate holds the field-level predicates and the free-text
// sanitizer used by every create path. Predicates return a bare bool; the
// services map failures onto user-facing messages.
package validate

import (
	"regexp"
	"strings"
	"time"
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex = regexp.MustCompile(`^[+]?[(]?[0-9]{3}[)]?[-\s.]?[0-9]{3}[-\s.]?[0-9]{4,6}$`)
	timeRegex  = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)
)

// dateLayouts are the two forms clients submit dates in.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// IsEmail reports whether s looks like local@domain.tld.
func IsEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// IsPassword reports whether s meets the minimum password length.
func IsPassword(s string) bool {
	return len(s) >= 6
}

// IsPhone reports whether s matches a loose international phone pattern.
func IsPhone(s string) bool {
	return phoneRegex.MatchString(s)
}

// IsTime reports whether s is a 24-hour HH:MM time.
func IsTime(s string) bool {
	return timeRegex.MatchString(s)
}

// IsDate reports whether s parses to a calendar date.
func IsDate(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}

// ParseDate parses s as YYYY-MM-DD or RFC3339.
func ParseDate(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// Sanitize trims surrounding whitespace and strips angle brackets from
// free-text input before storage. Never applied to identifiers, enums,
// numbers, or dates.
func Sanitize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "<", "")
	return strings.ReplaceAll(s, ">", "")
}
