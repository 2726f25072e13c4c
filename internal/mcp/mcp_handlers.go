package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/pulseboard/pulseboard/core"
	"github.com/pulseboard/pulseboard/internal/contract"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.CacheManager
}

// applyScopeOverrides copies per-request scope and window overrides onto a
// cloned config.
func (h *toolHandler) applyScopeOverrides(request mcp.CallToolRequest) *contract.Config {
	cfg := h.baseCfg.Clone()
	if t := request.GetString("team", ""); t != "" {
		cfg.TeamID = t
	}
	if c := request.GetString("collaborator", ""); c != "" {
		cfg.CollaboratorID = c
	}
	if w := request.GetInt("window", 0); w > 0 && w <= contract.MaxWindowDays {
		cfg.WindowDays = w
		cfg.MonthView = false
	}
	return cfg
}

func (h *toolHandler) handleGetScopeSummary(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.applyScopeOverrides(request)

	metrics, err := core.GetScopeMetrics(core.WithSuppressHeader(ctx), cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scope load failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(metrics, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetProductivitySeries(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.applyScopeOverrides(request)
	if m := request.GetInt("month", -1); m >= 0 && m <= contract.MaxMonthsAgo {
		cfg.MonthView = true
		cfg.MonthsAgo = m
	}

	metrics, err := core.GetScopeMetrics(core.WithSuppressHeader(ctx), cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scope load failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(metrics.Productivity, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetKPIs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.applyScopeOverrides(request)

	metrics, err := core.GetScopeMetrics(core.WithSuppressHeader(ctx), cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scope load failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(metrics.KPIs, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
