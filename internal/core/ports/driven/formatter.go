package driven

// Formatter renders a machine-readable date/time string for humans.
// Implementations absorb parse failures: an unparseable value yields
// the invalid-date sentinel text rather than an error, so one broken
// stamp never aborts a pass.
type Formatter interface {
	// Format renders value. When pattern is non-empty it is a
	// moment-style token pattern (e.g. "YYYY-MM-DD HH:mm"); when empty
	// the environment-default rendering is used. The second return is
	// false when value could not be parsed and text holds the sentinel.
	Format(value, pattern string) (text string, ok bool)
}
