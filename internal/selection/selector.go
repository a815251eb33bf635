// Package selection resolves a comma-separated tool configuration string
// into the ordered, deduplicated list of tool names exposed by the server.
// Tokens are either curated toolset names or patterns over the flat tool
// catalog; toolsets always expand before patterns, so a broad wildcard can
// only add tools a curated set did not already select.
package selection

import (
	"fmt"
	"strings"
)

// Mode selects the default toolsets applied when no configuration is given.
type Mode int

const (
	// ModeLocal is the stdio transport: a single local client.
	ModeLocal Mode = iota
	// ModeNetworked is the streamable HTTP transport.
	ModeNetworked
)

// Diagnostic codes for non-fatal resolution conditions.
const (
	DiagUnknownToolset  = "unknown_toolset"
	DiagEmptyResolution = "empty_resolution"
)

// Diagnostic is a non-fatal condition observed while resolving a
// configuration. Diagnostics are surfaced to the operator as warnings; they
// never abort resolution.
type Diagnostic struct {
	Code    string
	Token   string
	Message string
}

// Result is the outcome of a resolution: the ordered tool list plus any
// diagnostics accumulated along the way.
type Result struct {
	Tools       []string
	Diagnostics []Diagnostic
}

// Resolve computes the exposed tool list for config against catalog and reg.
// It is a pure function of its inputs and never fails: unknown toolsets are
// skipped with a diagnostic, patterns that match nothing contribute nothing,
// and a configuration that selects zero tools produces an empty result with
// an empty-resolution diagnostic. An empty configuration falls back to the
// mode-dependent default toolsets.
func Resolve(config string, mode Mode, catalog []string, reg *Registry) Result {
	tokens := splitTokens(config)
	usingDefaults := false
	if len(tokens) == 0 {
		tokens = defaultTokens(mode)
		usingDefaults = true
	}

	var toolsetTokens, patternTokens []string
	var diags []Diagnostic
	for _, token := range tokens {
		switch {
		case reg.Has(token):
			toolsetTokens = append(toolsetTokens, token)
		case looksLikeToolset(token):
			// A bare word that is not a registered toolset is a typo'd
			// toolset name, not a pattern: a tool name always has at
			// least two dotted segments.
			diags = append(diags, Diagnostic{
				Code:    DiagUnknownToolset,
				Token:   token,
				Message: (&UnknownToolsetError{Name: token}).Error(),
			})
		default:
			patternTokens = append(patternTokens, token)
		}
	}

	seen := map[string]bool{}
	var tools []string
	appendNew := func(names []string) {
		for _, name := range names {
			if seen[name] {
				continue
			}
			seen[name] = true
			tools = append(tools, name)
		}
	}

	// Toolsets first, in configuration order; patterns only ever add.
	for _, token := range toolsetTokens {
		expanded, err := reg.Resolve(token, catalog)
		if err != nil {
			diags = append(diags, Diagnostic{Code: DiagUnknownToolset, Token: token, Message: err.Error()})
			continue
		}
		appendNew(expanded)
	}
	for _, token := range patternTokens {
		appendNew(Match(token, catalog))
	}

	if len(tools) == 0 && !usingDefaults {
		diags = append(diags, Diagnostic{
			Code:    DiagEmptyResolution,
			Message: fmt.Sprintf("configuration %q selected no tools", config),
		})
	}
	return Result{Tools: tools, Diagnostics: diags}
}

func splitTokens(config string) []string {
	var tokens []string
	for _, part := range strings.Split(config, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			tokens = append(tokens, trimmed)
		}
	}
	return tokens
}

func defaultTokens(mode Mode) []string {
	if mode == ModeNetworked {
		return []string{"management", "instances"}
	}
	return []string{"management"}
}

func looksLikeToolset(token string) bool {
	return !strings.Contains(token, ".") && !strings.Contains(token, Wildcard)
}
