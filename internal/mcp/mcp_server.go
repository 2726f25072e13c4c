// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/pulseboard/pulseboard/internal/contract"
)

// NewMCPServer initializes and configures the Pulseboard MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.CacheManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Pulseboard Metrics Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: get_scope_summary ---
	s.AddTool(mcp.NewTool("get_scope_summary",
		mcp.WithDescription("Load every metric category for a team or collaborator scope and return the full summary."),
		mcp.WithString("team", mcp.Description("Team id to scope to (defaults to the configured team).")),
		mcp.WithString("collaborator", mcp.Description("Collaborator id to narrow the scope to one member.")),
		mcp.WithNumber("window", mcp.Description("Trailing window size in days.")),
	), h.handleGetScopeSummary)

	// --- 2. Tool: get_productivity_series ---
	s.AddTool(mcp.NewTool("get_productivity_series",
		mcp.WithDescription("Return the day-by-day productivity series for a team or collaborator scope."),
		mcp.WithString("team", mcp.Description("Team id to scope to.")),
		mcp.WithString("collaborator", mcp.Description("Collaborator id to narrow the scope to one member.")),
		mcp.WithNumber("window", mcp.Description("Trailing window size in days.")),
		mcp.WithNumber("month", mcp.Description("Calendar month view: how many months before now (0 = current month).")),
	), h.handleGetProductivitySeries)

	// --- 3. Tool: get_kpis ---
	s.AddTool(mcp.NewTool("get_kpis",
		mcp.WithDescription("Return KPI values with targets and health labels for a team or collaborator scope."),
		mcp.WithString("team", mcp.Description("Team id to scope to.")),
		mcp.WithString("collaborator", mcp.Description("Collaborator id to narrow the scope to one member.")),
		mcp.WithNumber("window", mcp.Description("Trailing window size in days.")),
	), h.handleGetKPIs)

	return s
}

// StartMCPServer starts the Pulseboard MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.CacheManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
