// Package sdk is the embedding surface: everything needed to resolve a
// tools configuration against the Gcore catalog without running a server.
package sdk

import (
	"gcoremcp/internal/catalog"
	"gcoremcp/internal/selection"
)

// Selection types.
type Mode = selection.Mode

const (
	ModeLocal     = selection.ModeLocal
	ModeNetworked = selection.ModeNetworked
)

type Result = selection.Result

type Diagnostic = selection.Diagnostic

const (
	DiagUnknownToolset  = selection.DiagUnknownToolset
	DiagEmptyResolution = selection.DiagEmptyResolution
)

// Catalog types.
type Tool = catalog.Tool

type Safety = catalog.Safety

const (
	SafetyReadOnly    = catalog.SafetyReadOnly
	SafetyWrite       = catalog.SafetyWrite
	SafetyRiskyWrite  = catalog.SafetyRiskyWrite
	SafetyDestructive = catalog.SafetyDestructive
)

// Catalog returns the full Gcore tool catalog.
func Catalog() []Tool {
	return catalog.Default().Tools()
}

// Resolve expands a comma-separated tools configuration into the ordered
// tool list using the built-in toolsets and catalog. Callers importing this
// package should blank-import gcoremcp/toolsets to populate the registry.
func Resolve(config string, mode Mode) Result {
	return selection.Resolve(config, mode, catalog.Default().Names(), selection.DefaultRegistry())
}

// Toolsets lists the registered toolset names, sorted.
func Toolsets() []string {
	return selection.DefaultRegistry().Names()
}

// ToolsetMembers returns the declared member list of a toolset, in
// declaration order. The second return is false for unknown toolsets.
func ToolsetMembers(name string) ([]string, bool) {
	return selection.DefaultRegistry().Members(name)
}

// ShortName applies the client-facing name shortening used at tool
// registration.
func ShortName(name string) string {
	return catalog.ShortName(name)
}

// MCPName is the underscore-joined client-facing identifier for a tool id.
func MCPName(name string) string {
	return catalog.MCPName(name)
}
