// Package mcp exposes the localisation pass over the Model Context
// Protocol so AI assistants can rewrite or inspect timestamp elements
// in HTML they are working with.
package mcp

import (
	"fmt"

	"github.com/custodia-labs/timelocal-cli/internal/core/domain"
	"github.com/custodia-labs/timelocal-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP server.
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
