package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTime(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "Already canonical",
			raw:      "14:30:00",
			expected: "14:30:00",
		},
		{
			name:     "Single digit hour and minute",
			raw:      "9:5",
			expected: "09:05:00",
		},
		{
			name:     "Single digit second",
			raw:      "14:30:5",
			expected: "14:30:05",
		},
		{
			name:     "Bare hour",
			raw:      "7",
			expected: "07:00:00",
		},
		{
			name:     "Hour and minute",
			raw:      "23:45",
			expected: "23:45:00",
		},
		{
			name:     "Empty",
			raw:      "",
			expected: "",
		},
		{
			name:     "Whitespace only",
			raw:      "   ",
			expected: "",
		},
		{
			name:     "Non-numeric passes through",
			raw:      "noon",
			expected: "noon",
		},
		{
			name:     "Too many components passes through",
			raw:      "1:2:3:4",
			expected: "1:2:3:4",
		},
		{
			name:     "Wide component passes through",
			raw:      "123:00",
			expected: "123:00",
		},
		{
			name:     "Date shape passes through",
			raw:      "2024-01-05",
			expected: "2024-01-05",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeTime(tt.raw))
		})
	}
}

func TestNormalizeTimeIdempotent(t *testing.T) {
	for _, raw := range []string{"9:5", "14:30:05", "7", "", "garbage"} {
		once := NormalizeTime(raw)
		assert.Equal(t, once, NormalizeTime(once), "raw %q", raw)
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-01-05")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseDate("2024-13-40")
	assert.Error(t, err)

	_, err = ParseDate("05/01/2024")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
		wantErr  bool
	}{
		{name: "Canonical", raw: "14:30:00", expected: "14:30:00"},
		{name: "Loose form", raw: "9:5", expected: "09:05:00"},
		{name: "Hour out of range", raw: "25:00:00", wantErr: true},
		{name: "Minute out of range", raw: "10:75:00", wantErr: true},
		{name: "Garbage", raw: "banana", wantErr: true},
		{name: "Empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTime(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
