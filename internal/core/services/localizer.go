// Package services contains the core business logic implementations.
package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/custodia-labs/timelocal-cli/internal/core/domain"
	"github.com/custodia-labs/timelocal-cli/internal/core/ports/driven"
	"github.com/custodia-labs/timelocal-cli/internal/core/ports/driving"
	"github.com/custodia-labs/timelocal-cli/internal/logger"
)

// Ensure Localizer implements the driving port.
var _ driving.Localizer = (*Localizer)(nil)

// Localizer implements the timestamp localisation pass.
// It orchestrates the rewriter (element selection and text replacement)
// and the formatter (datetime rendering).
type Localizer struct {
	formatter driven.Formatter
	rewriter  driven.Rewriter

	// defaultPattern overrides the environment-default rendering for
	// stamps without a data-format attribute. Empty keeps the default.
	defaultPattern string
}

// NewLocalizer creates a localizer service with the given adapters.
func NewLocalizer(formatter driven.Formatter, rewriter driven.Rewriter) *Localizer {
	return &Localizer{
		formatter: formatter,
		rewriter:  rewriter,
	}
}

// WithDefaultPattern sets the pattern applied to stamps lacking an
// explicit data-format attribute.
func (l *Localizer) WithDefaultPattern(pattern string) *Localizer {
	l.defaultPattern = pattern
	return l
}

// Localize runs one pass over src. Per-element parse failures are
// absorbed as invalid-date sentinel text; only document-level failures
// return an error.
func (l *Localizer) Localize(ctx context.Context, src []byte) (*domain.PassResult, error) {
	if src == nil {
		return nil, domain.ErrInvalidInput
	}

	var stamps []domain.Localization

	output, err := l.rewriter.Rewrite(ctx, src, func(stamp domain.Stamp) string {
		pattern := stamp.Format
		if pattern == "" {
			pattern = l.defaultPattern
		}

		text, ok := l.formatter.Format(stamp.Datetime, pattern)
		if !ok {
			logger.Warn("unparseable datetime %q, rendering sentinel", stamp.Datetime)
		}

		stamps = append(stamps, domain.Localization{
			Stamp: stamp,
			Text:  text,
			Valid: ok,
		})
		return text
	})
	if err != nil {
		return nil, fmt.Errorf("rewriting document: %w", err)
	}

	result := &domain.PassResult{
		ID:     uuid.New().String(),
		Output: output,
		Stamps: stamps,
	}

	logger.Debug("localised %d stamp(s), %d invalid", result.Count(), result.InvalidCount())
	return result, nil
}
