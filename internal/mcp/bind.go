package mcp

import (
	"context"

	"go.uber.org/zap"

	"gcoremcp/internal/catalog"
	"gcoremcp/internal/gcore"
)

// BindTools turns resolved catalog ids into registered tool specs. Ids
// without a REST route are skipped with a warning rather than failing the
// whole registration.
func BindTools(ids []string, cat *catalog.Catalog, reg *ToolRegistry, logger *zap.Logger) []string {
	var skipped []string
	for _, id := range ids {
		tool, ok := cat.Get(id)
		if !ok {
			skipped = append(skipped, id)
			if logger != nil {
				logger.Warn("tool missing from catalog, skipping", zap.String("tool", id))
			}
			continue
		}
		if !gcore.Routable(id) {
			skipped = append(skipped, id)
			if logger != nil {
				logger.Warn("tool has no API route, skipping", zap.String("tool", id))
			}
			continue
		}
		spec := ToolSpec{
			Name:        catalog.MCPName(catalog.ShortName(id)),
			FullName:    id,
			Description: tool.Description,
			InputSchema: inputSchema(id),
			Safety:      tool.Safety,
			Handler:     proxyHandler(id),
		}
		if err := reg.Add(spec); err != nil {
			skipped = append(skipped, id)
			if logger != nil {
				logger.Warn("tool registration failed, skipping", zap.String("tool", id), zap.Error(err))
			}
		}
	}
	return skipped
}

func proxyHandler(fullName string) ToolHandler {
	return func(ctx context.Context, req ToolRequest) (ToolResult, error) {
		result, err := req.Context.Client.Invoke(ctx, fullName, req.Arguments)
		if err != nil {
			return ToolResult{}, err
		}
		if req.Context.Redactor != nil {
			result = req.Context.Redactor.RedactValue(result)
		}
		return ToolResult{Data: result}, nil
	}
}

// Arguments pass through to the API as-is; only the resource id of item
// routes is declared explicitly.
func inputSchema(fullName string) map[string]any {
	schema := map[string]any{
		"type":                 "object",
		"additionalProperties": true,
	}
	if route, ok := gcore.Resolve(fullName); ok && route.Item {
		schema["properties"] = map[string]any{
			"id": map[string]any{
				"type":        "string",
				"description": "Resource identifier.",
			},
		}
		schema["required"] = []string{"id"}
	}
	return schema
}
