package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, TimezoneLocal, s.Timezone)
	assert.Empty(t, s.DefaultFormat)
	assert.Equal(t, []string{".html", ".htm"}, s.Extensions)
	assert.NoError(t, s.Validate())
}

func TestSettings_Location(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		expected *time.Location
		wantErr  bool
	}{
		{name: "empty defaults to local", timezone: "", expected: time.Local},
		{name: "local", timezone: TimezoneLocal, expected: time.Local},
		{name: "utc", timezone: TimezoneUTC, expected: time.UTC},
		{name: "unknown zone", timezone: "Nowhere/Invalid", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Settings{Timezone: tt.timezone}

			loc, err := s.Location()

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimezone)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, loc)
		})
	}
}

func TestSettings_Location_IANAName(t *testing.T) {
	s := Settings{Timezone: "Europe/Berlin"}

	loc, err := s.Location()

	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", loc.String())
}

func TestSettings_Validate_BadExtension(t *testing.T) {
	s := DefaultSettings()
	s.Extensions = []string{"html"}

	err := s.Validate()

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSettings_WatchesExtension(t *testing.T) {
	s := DefaultSettings()

	assert.True(t, s.WatchesExtension(".html"))
	assert.True(t, s.WatchesExtension(".HTM"))
	assert.False(t, s.WatchesExtension(".txt"))
}
