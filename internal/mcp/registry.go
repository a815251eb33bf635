package mcp

import (
	"errors"
	"fmt"

	"gcoremcp/internal/catalog"
	"gcoremcp/internal/config"
)

// ToolRegistry holds bound tools in insertion order. Selection order is
// part of the contract: the MCP tool list mirrors the resolution order of
// the tools expression.
type ToolRegistry struct {
	cfg   *config.Config
	order []string
	tools map[string]ToolSpec
}

func NewRegistry(cfg *config.Config) *ToolRegistry {
	return &ToolRegistry{cfg: cfg, tools: map[string]ToolSpec{}}
}

func (r *ToolRegistry) Add(spec ToolSpec) error {
	if spec.Name == "" {
		return errors.New("tool name required")
	}
	if _, exists := r.tools[spec.Name]; exists {
		return fmt.Errorf("duplicate tool %q", spec.Name)
	}
	if !r.allowedBySafety(spec) {
		return nil
	}
	r.order = append(r.order, spec.Name)
	r.tools[spec.Name] = spec
	return nil
}

func (r *ToolRegistry) List() []ToolInfo {
	infos := make([]ToolInfo, 0, len(r.order))
	for _, name := range r.order {
		tool := r.tools[name]
		infos = append(infos, ToolInfo{Name: tool.Name, Description: tool.Description, InputSchema: tool.InputSchema})
	}
	return infos
}

func (r *ToolRegistry) Get(name string) (ToolSpec, bool) {
	spec, ok := r.tools[name]
	return spec, ok
}

func (r *ToolRegistry) Specs() []ToolSpec {
	specs := make([]ToolSpec, 0, len(r.order))
	for _, name := range r.order {
		specs = append(specs, r.tools[name])
	}
	return specs
}

func (r *ToolRegistry) Names() []string {
	return append([]string{}, r.order...)
}

func (r *ToolRegistry) allowedBySafety(spec ToolSpec) bool {
	if r.cfg == nil {
		return true
	}
	if r.cfg.ReadOnly {
		return spec.Safety == catalog.SafetyReadOnly
	}
	if r.cfg.DisableDestructive {
		if spec.Safety == catalog.SafetyDestructive || spec.Safety == catalog.SafetyRiskyWrite {
			for _, allow := range r.cfg.Safety.AllowDestructiveTools {
				if allow == spec.Name || allow == spec.FullName {
					return true
				}
			}
			return false
		}
	}
	return true
}
