package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	cases := map[string]string{
		"2026-05-14":           "14.05.2026",
		"14.05.2026":           "14.05.2026",
		"2026-05-14T09:30:00Z": "14.05.2026",
		"soon":                 "soon", // unparseable passes through
		"":                     "",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatDate(in), in)
	}
}

func TestFormatDateRange(t *testing.T) {
	assert.Equal(t, "14.05.2026 – 16.05.2026", FormatDateRange("2026-05-14", "2026-05-16"))
	assert.Equal(t, "14.05.2026", FormatDateRange("2026-05-14", "2026-05-14"))
	assert.Equal(t, "14.05.2026", FormatDateRange("2026-05-14", ""))
	assert.Equal(t, "16.05.2026", FormatDateRange("", "2026-05-16"))
	assert.Equal(t, "", FormatDateRange("", ""))
}
