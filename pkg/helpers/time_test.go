package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	cases := map[string]struct {
		in   string
		want time.Time
		ok   bool
	}{
		"date only":  {"2025-01-10", time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), true},
		"rfc3339":    {"2025-03-01T10:00:00Z", time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC), true},
		"local time": {"2025-03-01T10:00", time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC), true},
		"blank":      {"  ", time.Time{}, false},
		"garbage":    {"next tuesday", time.Time{}, false},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, ok := ParseDate(tc.in)
			assert.Equal(t, tc.ok, ok)
			if ok {
				assert.True(t, tc.want.Equal(got), "got %v", got)
			}
		})
	}
}

func TestHumanDate(t *testing.T) {
	assert.Equal(t, "10 January 2025", HumanDate("2025-01-10"))
	assert.Equal(t, "soon", HumanDate("soon"))
}
