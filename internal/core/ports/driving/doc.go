// Package driving defines the driving (primary) ports of the hexagonal
// architecture. These interfaces are implemented by core services and
// consumed by the CLI, MCP, TUI, and watcher adapters.
package driving
