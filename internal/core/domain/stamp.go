package domain

// Marker constants identify timestamp holder elements in a document.
// An element is markable when it is a <time> tag carrying the marker
// class and a datetime attribute.
const (
	// MarkerTag is the element tag the localisation pass matches.
	MarkerTag = "time"

	// MarkerClass is the semantic class flagging a machine-readable timestamp.
	MarkerClass = "jstime"

	// DatetimeAttr holds the machine-readable date/time string.
	DatetimeAttr = "datetime"

	// FormatAttr optionally holds a display format pattern.
	FormatAttr = "data-format"
)

// InvalidDateText is the sentinel rendered for unparseable datetime values.
// It matches the JavaScript Date invalid-date string so broken stamps
// degrade the same way they did in the browser.
const InvalidDateText = "Invalid Date"

// Stamp is the per-element configuration read from a markable element.
type Stamp struct {
	// Datetime is the raw datetime attribute value.
	Datetime string

	// Format is the display pattern from the data-format attribute.
	// Empty when the attribute is absent, selecting the default rendering.
	Format string
}

// HasFormat returns true if the stamp carries an explicit display pattern.
func (s Stamp) HasFormat() bool {
	return s.Format != ""
}

// Localization is the outcome of rendering a single stamp.
type Localization struct {
	// Stamp is the element configuration that produced this result.
	Stamp Stamp

	// Text is the rendered text written into the element.
	Text string

	// Valid is false when the datetime could not be parsed and Text
	// holds the invalid-date sentinel.
	Valid bool
}

// PassResult is the outcome of one localisation pass over a document.
type PassResult struct {
	// ID uniquely identifies the pass.
	ID string

	// Output is the rewritten document.
	Output []byte

	// Stamps holds the per-element results in document order.
	Stamps []Localization
}

// Count returns the number of stamps the pass localised.
func (r *PassResult) Count() int {
	return len(r.Stamps)
}

// InvalidCount returns the number of stamps that rendered the sentinel.
func (r *PassResult) InvalidCount() int {
	n := 0
	for _, s := range r.Stamps {
		if !s.Valid {
			n++
		}
	}
	return n
}
