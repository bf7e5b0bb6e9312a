package helpers

import (
	"strings"
	"time"
)

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseDate accepts the ISO-8601 shapes browsers send for date inputs.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, l := range dateLayouts {
		if t, err := time.Parse(l, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// HumanDate formats an ISO date for e-mails, returning the input unchanged
// when it does not parse.
func HumanDate(s string) string {
	if t, ok := ParseDate(s); ok {
		return t.Format("02 January 2006")
	}
	return s
}
