package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatBalance(t *testing.T) {
	tests := []struct {
		input    int64
		expected string
	}{
		{0, "0"},
		{100, "100"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-25000, "-25,000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatBalance(tt.input))
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		input    time.Duration
		expected string
	}{
		{30 * time.Second, "30s"},
		{5 * time.Minute, "5m"},
		{90 * time.Minute, "1h 30m"},
		{23*time.Hour + 59*time.Minute, "23h 59m"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatDuration(tt.input))
	}
}

func TestParseUserMention(t *testing.T) {
	tests := []struct {
		input string
		id    string
		ok    bool
	}{
		{"<@123456>", "123456", true},
		{"<@!123456>", "123456", true},
		{"123456", "123456", true},
		{"<@>", "", false},
		{"@everyone", "", false},
		{"bob", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		id, ok := ParseUserMention(tt.input)
		assert.Equal(t, tt.ok, ok, "input %q", tt.input)
		assert.Equal(t, tt.id, id, "input %q", tt.input)
	}
}

func TestMention(t *testing.T) {
	assert.Equal(t, "<@42>", Mention("42"))
}
