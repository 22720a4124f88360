// Package mcpserver exposes the tool registry as an MCP server over stdio.
package mcpserver

import (
	"context"
	"io"
	"log"
	"strings"

	"github.com/effective-security/transend-mcp/config"
	"github.com/effective-security/transend-mcp/tools"
	"github.com/effective-security/xlog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

var logger = xlog.NewPackageLogger("github.com/effective-security/transend-mcp", "mcpserver")

// New returns MCP server with all tools of the registry
func New(cfg config.Server, reg *tools.Registry, opts ...server.ServerOption) *server.MCPServer {
	hooks := &server.Hooks{}
	hooks.AddAfterInitialize(func(ctx context.Context, id any, req *mcp.InitializeRequest, res *mcp.InitializeResult) {
		logger.ContextKV(ctx, xlog.INFO,
			"status", "initialized",
			"client", req.Params.ClientInfo.Name,
			"client_version", req.Params.ClientInfo.Version,
			"protocol", res.ProtocolVersion,
		)
	})
	hooks.AddOnError(func(ctx context.Context, id any, method mcp.MCPMethod, message any, err error) {
		logger.ContextKV(ctx, xlog.WARNING,
			"status", "request_failed",
			"method", method,
			"err", err.Error(),
		)
	})

	options := []server.ServerOption{
		server.WithToolCapabilities(false),
		server.WithRecovery(),
		server.WithHooks(hooks),
	}
	if cfg.Instructions != "" {
		options = append(options, server.WithInstructions(cfg.Instructions))
	}
	options = append(options, opts...)

	s := server.NewMCPServer(cfg.Name, cfg.Version, options...)
	reg.RegisterMCP(s)
	return s
}

// ServeStdio serves JSON-RPC messages from in to out,
// until in is closed or ctx is cancelled.
func ServeStdio(ctx context.Context, s *server.MCPServer, in io.Reader, out io.Writer) error {
	stdio := server.NewStdioServer(s)
	stdio.SetErrorLogger(log.New(logWriter{}, "", 0))

	logger.ContextKV(ctx, xlog.INFO, "status", "serving", "transport", "stdio")
	err := stdio.Listen(ctx, in, out)
	if err != nil && ctx.Err() == nil {
		return err
	}
	logger.ContextKV(ctx, xlog.INFO, "status", "stopped")
	return nil
}

// logWriter routes the stdio server errors to the package logger
type logWriter struct{}

func (logWriter) Write(p []byte) (int, error) {
	logger.KV(xlog.ERROR, "source", "stdio", "err", strings.TrimSpace(string(p)))
	return len(p), nil
}
