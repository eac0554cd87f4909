package domain

import (
	"fmt"
	"strings"
	"time"
)

// Timezone setting values with special handling.
const (
	// TimezoneLocal renders instants in the process-local zone,
	// matching the browser behaviour of rendering in the viewer's zone.
	TimezoneLocal = "Local"

	// TimezoneUTC renders instants in UTC.
	TimezoneUTC = "UTC"
)

// Settings holds the user-configurable behaviour of the localisation pass.
type Settings struct {
	// Timezone is "Local", "UTC", or an IANA zone name (e.g. "Europe/Berlin").
	// It controls the zone instants are rendered in.
	Timezone string

	// DefaultFormat is an optional display pattern applied to stamps
	// lacking a data-format attribute. Empty selects the environment
	// default rendering.
	DefaultFormat string

	// Extensions are the file extensions the watch command processes.
	Extensions []string
}

// DefaultSettings returns the settings used when no configuration exists.
func DefaultSettings() Settings {
	return Settings{
		Timezone:   TimezoneLocal,
		Extensions: []string{".html", ".htm"},
	}
}

// Validate checks the settings for consistency.
func (s Settings) Validate() error {
	if _, err := s.Location(); err != nil {
		return err
	}
	for _, ext := range s.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("%w: extension %q must start with a dot", ErrInvalidInput, ext)
		}
	}
	return nil
}

// Location resolves the timezone setting to a time.Location.
func (s Settings) Location() (*time.Location, error) {
	switch s.Timezone {
	case "", TimezoneLocal:
		return time.Local, nil
	case TimezoneUTC:
		return time.UTC, nil
	default:
		loc, err := time.LoadLocation(s.Timezone)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, s.Timezone)
		}
		return loc, nil
	}
}

// WatchesExtension returns true if the watch command should process
// files with the given extension.
func (s Settings) WatchesExtension(ext string) bool {
	for _, e := range s.Extensions {
		if strings.EqualFold(e, ext) {
			return true
		}
	}
	return false
}
