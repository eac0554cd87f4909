// Package messages defines the messages exchanged between TUI components.
package messages

import (
	"github.com/custodia-labs/timelocal-cli/internal/core/domain"
)

// PassLoaded reports a completed localisation pass over the previewed file.
type PassLoaded struct {
	// Result is the outcome of the pass.
	Result *domain.PassResult
}

// LoadFailed reports that reading or localising the file failed.
type LoadFailed struct {
	// Err is the failure.
	Err error
}
