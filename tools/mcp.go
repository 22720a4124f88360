package tools

import (
	"context"
	"encoding/json"

	"github.com/effective-security/transend-mcp/pkg/jsonutils"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterMCP registers all tools with the MCP server
func (r *Registry) RegisterMCP(s *server.MCPServer) {
	for _, t := range r.list {
		s.AddTool(MCPTool(t), r.mcpHandler(t.Name()))
	}
}

// MCPTool returns the MCP definition of the tool
func MCPTool(t ITool) mcp.Tool {
	params, _ := json.Marshal(t.Parameters())
	tool := mcp.NewToolWithRawSchema(t.Name(), t.Description(), params)
	tool.Annotations = mcp.ToolAnnotation{
		ReadOnlyHint:    mcp.ToBoolPtr(!t.Mutating()),
		DestructiveHint: mcp.ToBoolPtr(t.Destructive()),
		IdempotentHint:  mcp.ToBoolPtr(!t.Mutating()),
		OpenWorldHint:   mcp.ToBoolPtr(true),
	}
	return tool
}

func (r *Registry) mcpHandler(name string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, err := rawArguments(req)
		if err != nil {
			return mcp.NewToolResultError(invalidArguments(name, err.Error()).Error()), nil
		}

		res, err := r.Call(ctx, name, args)
		if err != nil {
			// unknown tool or arguments rejected before the call
			return mcp.NewToolResultError(err.Error()), nil
		}
		return NewMCPResult(res), nil
	}
}

// NewMCPResult renders the tool result as JSON text,
// object results are also returned as structured content.
// The envelopes are data, not MCP errors.
func NewMCPResult(res any) *mcp.CallToolResult {
	text := jsonutils.ToJSON(res)
	switch v := res.(type) {
	case map[string]any:
		if v != nil {
			return mcp.NewToolResultStructured(v, text)
		}
	case ErrorEnvelope, SuccessEnvelope:
		return mcp.NewToolResultStructured(v, text)
	}
	return mcp.NewToolResultText(text)
}

func rawArguments(req mcp.CallToolRequest) (json.RawMessage, error) {
	switch v := req.GetRawArguments().(type) {
	case nil:
		return nil, nil
	case json.RawMessage:
		return v, nil
	case []byte:
		return v, nil
	default:
		return json.Marshal(v)
	}
}
