// Package moment provides a driven.Formatter built on the goment
// library, rendering datetime strings with moment-style token patterns
// (e.g. "YYYY-MM-DD HH:mm") or the environment-default form.
package moment
