package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sdkjsonrpc "github.com/modelcontextprotocol/go-sdk/jsonrpc"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"gcoremcp/internal/audit"
	"gcoremcp/internal/gcore"
)

// RegisterSDKTools adds every registered tool to the SDK server and returns
// the registered names, in registration order, for later removal on reload.
func RegisterSDKTools(server *sdkmcp.Server, reg *ToolRegistry, ctx ToolContext) ([]string, error) {
	if server == nil || reg == nil {
		return nil, fmt.Errorf("server and registry are required")
	}
	toolNames := reg.Names()
	for _, spec := range reg.Specs() {
		schema := spec.InputSchema
		if schema == nil {
			schema = map[string]any{"type": "object"}
		}
		tool := &sdkmcp.Tool{
			Name:        spec.Name,
			Description: spec.Description,
			InputSchema: schema,
		}
		server.AddTool(tool, toolHandler(spec, ctx))
	}
	return toolNames, nil
}

func toolHandler(spec ToolSpec, ctx ToolContext) sdkmcp.ToolHandler {
	return func(callCtx context.Context, req *sdkmcp.CallToolRequest) (*sdkmcp.CallToolResult, error) {
		args := map[string]any{}
		if req != nil && req.Params != nil && len(req.Params.Arguments) > 0 {
			if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
				return nil, &sdkjsonrpc.Error{Code: sdkjsonrpc.CodeInvalidParams, Message: fmt.Sprintf("invalid arguments: %v", err)}
			}
		}

		start := time.Now()
		execCtx, cancel := withToolTimeout(callCtx, ctx.Config, spec)
		result, toolErr := spec.Handler(execCtx, ToolRequest{Arguments: args, Context: ctx})
		cancel()

		outcome := "success"
		if toolErr != nil {
			outcome = "error"
		}
		logAudit(ctx, spec, outcome, time.Since(start), toolErr)

		return buildCallToolResult(result, toolErr), nil
	}
}

func buildCallToolResult(result ToolResult, toolErr error) *sdkmcp.CallToolResult {
	res := &sdkmcp.CallToolResult{}
	if toolErr != nil {
		res.IsError = true
		res.StructuredContent = BuildErrorEnvelope(toolErr, result.Data)
		res.Content = []sdkmcp.Content{&sdkmcp.TextContent{Text: toolErr.Error()}}
		return res
	}

	if result.Data != nil {
		res.StructuredContent = result.Data
		dataJSON, err := json.Marshal(result.Data)
		if err != nil {
			res.Content = []sdkmcp.Content{&sdkmcp.TextContent{Text: fmt.Sprintf("%v", result.Data)}}
		} else {
			res.Content = []sdkmcp.Content{&sdkmcp.TextContent{Text: string(dataJSON)}}
		}
	} else {
		res.Content = []sdkmcp.Content{&sdkmcp.TextContent{Text: "{}"}}
	}
	return res
}

func logAudit(ctx ToolContext, spec ToolSpec, outcome string, elapsed time.Duration, err error) {
	if ctx.Audit == nil {
		return
	}
	event := audit.Event{
		Tool:       spec.FullName,
		Outcome:    outcome,
		DurationMS: elapsed.Milliseconds(),
	}
	if route, ok := gcore.Resolve(spec.FullName); ok {
		event.Method = route.Method
	}
	if err != nil {
		event.Error = err.Error()
	}
	ctx.Audit.Log(event)
}
