// Package tui provides an interactive terminal preview for timelocal.
// It implements a driving adapter following hexagonal architecture
// principles.
package tui

import (
	"fmt"

	"github.com/custodia-labs/timelocal-cli/internal/core/domain"
	"github.com/custodia-labs/timelocal-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
type Ports struct {
	// Localizer runs the localisation pass.
	Localizer driving.Localizer
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Localizer == nil {
		return fmt.Errorf("%w: localizer port is required", domain.ErrInvalidInput)
	}
	return nil
}
