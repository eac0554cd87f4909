package driving

import (
	"context"

	"github.com/custodia-labs/timelocal-cli/internal/core/domain"
)

// Localizer runs the timestamp localisation pass over a document.
type Localizer interface {
	// Localize rewrites every markable element in src and returns the
	// rewritten document with the per-element results in document order.
	// The pass is stateless and idempotent: attributes are never
	// mutated, so re-running it reproduces the same output.
	Localize(ctx context.Context, src []byte) (*domain.PassResult, error)
}
