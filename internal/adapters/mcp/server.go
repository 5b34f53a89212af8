// Package mcp exposes every registered action as a Model Context Protocol
// tool over stdio, using the official Go SDK. Tool input schemas are the
// actions' own argument schemas, so MCP callers see exactly what the HTTP
// catalog advertises.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/cmsbridge/cmsbridge/internal/ports"
)

// Server adapts the dispatcher to an MCP stdio server.
type Server struct {
	server *mcp.Server
	logger *slog.Logger
}

// NewServer builds an MCP server advertising one tool per registered
// action, named "{domain}_{action}".
func NewServer(dispatcher ports.Dispatcher, version string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	srv := mcp.NewServer(&mcp.Implementation{
		Name:    "cmsbridge",
		Version: version,
	}, nil)

	for _, domainName := range dispatcher.Domains() {
		for _, info := range dispatcher.Actions(domainName) {
			srv.AddTool(&mcp.Tool{
				Name:        toolName(info.Domain, info.Name),
				Description: info.Description,
				InputSchema: info.Schema,
				Annotations: &mcp.ToolAnnotations{
					ReadOnlyHint: info.ReadOnly,
				},
			}, toolHandler(dispatcher, info.Domain, info.Name))
		}
	}

	return &Server{server: srv, logger: logger}
}

// Run serves MCP over stdio until ctx is canceled or the peer disconnects.
func (s *Server) Run(ctx context.Context) error {
	s.logger.InfoContext(ctx, "mcp server starting", slog.String("transport", "stdio"))
	if err := s.server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}

// toolName joins domain and action into a protocol-safe tool identifier.
func toolName(domainName, actionName string) string {
	return domainName + "_" + actionName
}

// toolHandler binds one action to the MCP tool contract. The tool result is
// the response envelope rendered as JSON text; IsError mirrors the
// envelope's success flag so MCP clients can branch without parsing.
func toolHandler(dispatcher ports.Dispatcher, domainName, actionName string) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := map[string]any{}
		if raw := req.Params.Arguments; len(raw) > 0 {
			if err := json.Unmarshal(raw, &args); err != nil {
				return nil, fmt.Errorf("tool arguments must be a JSON object: %w", err)
			}
		}

		env := dispatcher.Dispatch(ctx, domainName, actionName, args)

		payload, err := json.Marshal(env)
		if err != nil {
			return nil, fmt.Errorf("marshal envelope: %w", err)
		}

		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: string(payload)}},
			IsError: !env.Success,
		}, nil
	}
}
