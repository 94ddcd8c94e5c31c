package validation

import (
	"net/url"
	"regexp"
	"strings"
	"time"
)

var (
	// Local part, a single @, domain, a dot, and a final label; no whitespace
	// anywhere. Deliverability is not checked.
	emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// E.164-shaped: optional +, nonzero first digit, up to 15 more digits.
	phoneRegexp = regexp.MustCompile(`^\+?[1-9]\d{0,15}$`)

	hexColorRegexp = regexp.MustCompile(`^#([0-9a-fA-F]{6}|[0-9a-fA-F]{3})$`)

	timeRegexp = regexp.MustCompile(`^([01]?\d|2[0-3]):[0-5]\d$`)

	phoneStripper = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
)

// dateLayouts is the accepted calendar date grammar: plain dates and RFC 3339
// timestamps.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// IsValidEmail reports whether s has localpart@domain.tld shape.
func IsValidEmail(s string) bool {
	return emailRegexp.MatchString(s)
}

// IsValidPhone reports whether s is an E.164-shaped phone number after
// stripping spaces, hyphens, and parentheses.
func IsValidPhone(s string) bool {
	return phoneRegexp.MatchString(phoneStripper.Replace(s))
}

// IsValidURL reports whether s parses as an absolute URL. Any scheme is
// accepted, not just http/https.
func IsValidURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != ""
}

// IsValidHexColor reports whether s is exactly # followed by 6 or 3 hex digits.
func IsValidHexColor(s string) bool {
	return hexColorRegexp.MatchString(s)
}

// IsValidDate reports whether s parses to a valid calendar date.
func IsValidDate(s string) bool {
	_, ok := parseDate(s)
	return ok
}

// IsValidTime reports whether s is H:MM or HH:MM with hour 0-23 and minute 0-59.
func IsValidTime(s string) bool {
	return timeRegexp.MatchString(s)
}

func parseDate(s string) (time.Time, bool) {
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

// timeToMinutes converts an already-validated H:MM / HH:MM string to minutes
// since midnight.
func timeToMinutes(s string) int {
	sep := strings.IndexByte(s, ':')
	hours := 0
	for _, c := range s[:sep] {
		hours = hours*10 + int(c-'0')
	}
	minutes := 0
	for _, c := range s[sep+1:] {
		minutes = minutes*10 + int(c-'0')
	}
	return hours*60 + minutes
}

// dateOnly truncates t to midnight UTC for calendar-date comparison.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
