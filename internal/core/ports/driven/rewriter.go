package driven

import (
	"context"

	"github.com/custodia-labs/timelocal-cli/internal/core/domain"
)

// RewriteFunc produces the replacement text for one markable element.
// It is called once per element in document order.
type RewriteFunc func(stamp domain.Stamp) string

// Rewriter scans a document for markable elements and rewrites their
// visible text. Only text content is replaced; attributes and document
// structure are left untouched, which makes repeated rewrites idempotent.
type Rewriter interface {
	// Rewrite parses src, applies fn to every markable element in
	// document order, and renders the document back. Elements lacking
	// the marker are never mutated. The error is document-level only
	// (unreadable input); per-element handling is fn's concern.
	Rewrite(ctx context.Context, src []byte, fn RewriteFunc) ([]byte, error)
}
