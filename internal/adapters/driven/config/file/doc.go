// Package file provides a TOML file-backed implementation of the
// ConfigStore driven port, persisted in the timelocal config directory.
package file
