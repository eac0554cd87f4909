package moment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/timelocal-cli/internal/core/domain"
)

func TestFormatter_Format_Pattern(t *testing.T) {
	f := New(time.UTC)

	tests := []struct {
		name     string
		value    string
		pattern  string
		expected string
	}{
		{
			name:     "date only",
			value:    "2023-05-01T12:00:00Z",
			pattern:  "YYYY-MM-DD",
			expected: "2023-05-01",
		},
		{
			name:     "date and time",
			value:    "2023-05-01T12:00:00Z",
			pattern:  "YYYY-MM-DD HH:mm",
			expected: "2023-05-01 12:00",
		},
		{
			name:     "weekday and twelve hour clock",
			value:    "2023-05-01T12:00:00Z",
			pattern:  "ddd, MMM D, YYYY, h:mma",
			expected: "Mon, May 1, 2023, 12:00pm",
		},
		{
			name:     "offset token",
			value:    "2023-05-01T12:00:00Z",
			pattern:  "ZZ",
			expected: "+0000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, ok := f.Format(tt.value, tt.pattern)

			require.True(t, ok)
			assert.Equal(t, tt.expected, text)
		})
	}
}

func TestFormatter_Format_Default(t *testing.T) {
	f := New(time.UTC)

	text, ok := f.Format("2023-05-01T12:00:00Z", "")

	require.True(t, ok)
	assert.Equal(t, "Mon May 01 2023 12:00:00 GMT+0000", text)
}

func TestFormatter_Format_Invalid(t *testing.T) {
	f := New(time.UTC)

	tests := []struct {
		name  string
		value string
	}{
		{name: "garbage", value: "not-a-date"},
		{name: "empty", value: ""},
		{name: "whitespace", value: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, ok := f.Format(tt.value, "YYYY-MM-DD")

			assert.False(t, ok)
			assert.Equal(t, domain.InvalidDateText, text)
		})
	}
}

func TestFormatter_Format_FallbackLayouts(t *testing.T) {
	f := New(time.UTC)

	// The MM/DD/YYYY HH:mm TZ shape emitted by server-side templates.
	text, ok := f.Format("05/01/2023 12:00 UTC", "YYYY-MM-DD HH:mm")

	require.True(t, ok)
	assert.Equal(t, "2023-05-01 12:00", text)
}

func TestFormatter_Format_ZoneConversion(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	f := New(berlin)

	// 12:00Z is 14:00 in Berlin during DST.
	text, ok := f.Format("2023-05-01T12:00:00Z", "HH:mm")

	require.True(t, ok)
	assert.Equal(t, "14:00", text)
}

func TestFormatter_Format_NilLocationDefaultsToLocal(t *testing.T) {
	f := New(nil)

	_, ok := f.Format("2023-05-01T12:00:00Z", "YYYY")

	assert.True(t, ok)
}

func TestFormatter_Format_Deterministic(t *testing.T) {
	f := New(time.UTC)

	first, ok := f.Format("2023-05-01T12:00:00Z", "YYYY-MM-DD")
	require.True(t, ok)
	second, ok := f.Format("2023-05-01T12:00:00Z", "YYYY-MM-DD")
	require.True(t, ok)

	// Output is a pure function of the value and pattern.
	assert.Equal(t, first, second)
}
