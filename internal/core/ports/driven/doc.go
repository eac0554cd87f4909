// Package driven defines the driven (secondary) ports of the hexagonal
// architecture. These interfaces are implemented by infrastructure
// adapters: formatters, document rewriters, and configuration stores.
package driven
