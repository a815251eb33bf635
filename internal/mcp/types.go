package mcp

import (
	"context"

	"go.uber.org/zap"

	"gcoremcp/internal/audit"
	"gcoremcp/internal/catalog"
	"gcoremcp/internal/config"
	"gcoremcp/internal/gcore"
	"gcoremcp/internal/redact"
)

type ToolHandler func(ctx context.Context, req ToolRequest) (ToolResult, error)

type ToolSpec struct {
	// Name is the MCP-facing name, shortened and underscore-joined.
	Name string
	// FullName is the dotted catalog id the handler proxies.
	FullName    string
	Description string
	InputSchema map[string]any
	Safety      catalog.Safety
	Handler     ToolHandler
}

type ToolInfo struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

type ToolRequest struct {
	Arguments map[string]any
	Context   ToolContext
}

type ToolResult struct {
	Data any
}

type ToolContext struct {
	Config   *config.Config
	Client   *gcore.Client
	Redactor *redact.Redactor
	Audit    *audit.Logger
	Logger   *zap.Logger
}
