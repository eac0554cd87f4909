package moment

import (
	"strings"
	"time"

	"github.com/nleeper/goment"

	"github.com/custodia-labs/timelocal-cli/internal/core/domain"
	"github.com/custodia-labs/timelocal-cli/internal/core/ports/driven"
)

// Ensure Formatter implements the interface.
var _ driven.Formatter = (*Formatter)(nil)

// defaultDatePattern matches the JavaScript Date#toString() shape.
// The GMT marker and offset are appended separately to avoid relying
// on literal passthrough inside the pattern.
const defaultDatePattern = "ddd MMM DD YYYY HH:mm:ss"

// offsetPattern renders the zone offset as +hhmm.
const offsetPattern = "ZZ"

// fallbackLayouts cover the non-ISO datetime attribute shapes emitted
// by server-side templating (MM/DD/YYYY HH:mm TZ and friends), which
// JS Date.parse accepted in the browser.
var fallbackLayouts = []string{
	"01/02/2006 15:04 MST",
	"01/02/2006 15:04:05 MST",
	"01/02/2006 15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// Formatter renders datetime strings with moment-style token patterns.
type Formatter struct {
	loc *time.Location
}

// New creates a formatter rendering instants in the given location.
// A nil location defaults to the process-local zone, matching the
// browser behaviour of rendering in the viewer's environment zone.
func New(loc *time.Location) *Formatter {
	if loc == nil {
		loc = time.Local
	}
	return &Formatter{loc: loc}
}

// Format renders value per pattern, or in the environment-default form
// when pattern is empty. An unparseable value yields the invalid-date
// sentinel and false.
func (f *Formatter) Format(value, pattern string) (string, bool) {
	g, ok := f.parse(value)
	if !ok {
		return domain.InvalidDateText, false
	}

	if pattern != "" {
		return g.Format(pattern), true
	}
	return g.Format(defaultDatePattern) + " GMT" + g.Format(offsetPattern), true
}

// parse interprets value as an ISO-8601 string, falling back to the
// legacy layouts, and converts the instant to the configured location.
func (f *Formatter) parse(value string) (*goment.Goment, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, false
	}

	if g, err := goment.New(value); err == nil {
		return f.located(g.ToTime())
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return f.located(t)
		}
	}

	return nil, false
}

// located rebuilds a goment instance in the configured location so
// tokens render wall-clock values for that zone.
func (f *Formatter) located(t time.Time) (*goment.Goment, bool) {
	g, err := goment.New(t.In(f.loc))
	if err != nil {
		return nil, false
	}
	return g, true
}
