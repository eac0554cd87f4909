// Package domain contains the core business entities for timelocal.
// These types have no external dependencies and represent the
// timestamp localisation concepts: stamps, localisations, and settings.
package domain
