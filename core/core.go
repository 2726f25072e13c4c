// Package core has the scoped metrics aggregation logic for pulseboard.
package core

import (
	"context"
	"fmt"
	"time"

	"github.com/pulseboard/pulseboard/core/timeline"
	"github.com/pulseboard/pulseboard/internal/apiclient"
	"github.com/pulseboard/pulseboard/internal/contract"
	"github.com/pulseboard/pulseboard/internal/outwriter"
	"github.com/pulseboard/pulseboard/schema"
)

// ExecutorFunc defines the function signature for executing different
// dashboard commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error

// ExecuteSummary loads every metric category for the configured scope and
// prints the full summary. It serves as the main entry point for the
// 'summary' command.
func ExecuteSummary(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	metrics, err := GetScopeMetrics(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	if !shouldSuppressHeader(ctx) {
		outwriter.LogScopeHeader(cfg, metrics.Scope, metrics.Window)
	}
	return outwriter.WriteSummaryResults(metrics, cfg)
}

// ExecuteSeries loads the configured scope and prints the day-by-day
// productivity series. It serves as the main entry point for the 'series'
// command.
func ExecuteSeries(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	metrics, err := GetScopeMetrics(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	if err := categoryError(metrics, schema.ProductivityCategory); err != nil {
		return err
	}
	if !shouldSuppressHeader(ctx) {
		outwriter.LogScopeHeader(cfg, metrics.Scope, metrics.Window)
	}
	return outwriter.WriteSeriesResults(metrics.Productivity, cfg)
}

// ExecuteKPIs loads the configured scope and prints KPI values with health
// labels. It serves as the main entry point for the 'kpis' command.
func ExecuteKPIs(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	metrics, err := GetScopeMetrics(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	if err := categoryError(metrics, schema.KPIsCategory); err != nil {
		return err
	}
	if !shouldSuppressHeader(ctx) {
		outwriter.LogScopeHeader(cfg, metrics.Scope, metrics.Window)
	}
	return outwriter.WriteKPIResults(metrics.KPIs, cfg)
}

// ExecutePoints loads the configured scope and prints the point totals. It
// serves as the main entry point for the 'points' command.
func ExecutePoints(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	metrics, err := GetScopeMetrics(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	if err := categoryError(metrics, schema.PointsCategory); err != nil {
		return err
	}
	if !shouldSuppressHeader(ctx) {
		outwriter.LogScopeHeader(cfg, metrics.Scope, metrics.Window)
	}
	return outwriter.WritePointsResults(metrics.Points, cfg)
}

// ExecuteProgress loads the configured scope and prints the task progress
// split. It serves as the main entry point for the 'progress' command.
func ExecuteProgress(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	metrics, err := GetScopeMetrics(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	if err := categoryError(metrics, schema.ProgressCategory); err != nil {
		return err
	}
	if !shouldSuppressHeader(ctx) {
		outwriter.LogScopeHeader(cfg, metrics.Scope, metrics.Window)
	}
	return outwriter.WriteProgressResults(metrics.Progress, cfg)
}

// ExecutePortfolio loads the configured scope and prints per-status
// portfolio counts. It serves as the main entry point for the 'portfolio'
// command.
func ExecutePortfolio(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	metrics, err := GetScopeMetrics(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	if err := categoryError(metrics, schema.PortfolioCategory); err != nil {
		return err
	}
	if !shouldSuppressHeader(ctx) {
		outwriter.LogScopeHeader(cfg, metrics.Scope, metrics.Window)
	}
	return outwriter.WritePortfolioResults(metrics.Portfolio, cfg)
}

// ExecuteRefresh bypasses the record cache, reloads every category and
// prints the refreshed summary. It serves as the main entry point for the
// 'refresh' command.
func ExecuteRefresh(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	return ExecuteSummary(withBypassCache(ctx), cfg, mgr)
}

// GetScopeMetrics builds an aggregator from the config, selects the
// configured scope and window, and returns the loaded metrics without
// printing anything. The MCP server calls this directly.
func GetScopeMetrics(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) (schema.ScopeMetrics, error) {
	client := apiclient.NewClient(cfg.APIBaseURL, cfg.APIToken)
	agg := NewAggregator(client, client, client, mgr, outwriter.NewCLIDiagnostics(cfg), cfg.BatchSize)

	window, err := resolveWindow(ctx, cfg, client)
	if err != nil {
		return schema.ScopeMetrics{}, err
	}

	// SelectTeam already triggers a full load; set the window first so the
	// initial load runs against the configured range instead of reloading.
	agg.ChangeDateWindow(ctx, window)
	metrics := agg.SelectTeam(ctx, cfg.TeamID)
	if cfg.CollaboratorID != "" {
		metrics = agg.SelectCollaborator(ctx, cfg.CollaboratorID)
	}
	return metrics, nil
}

// resolveWindow computes the reporting window from the config: a trailing
// window of days by default, or a calendar month clamped to the season
// floor when month view is requested.
func resolveWindow(ctx context.Context, cfg *contract.Config, seasons contract.SeasonSource) (schema.DateRange, error) {
	now := time.Now()
	if !cfg.MonthView {
		return timeline.RangeForTrailingDays(now, cfg.WindowDays), nil
	}

	season, err := seasons.CurrentSeason(ctx)
	if err != nil {
		return schema.DateRange{}, fmt.Errorf("failed to resolve season for month view: %w", err)
	}
	return timeline.RangeForCalendarMonth(cfg.MonthsAgo, now, season.Start), nil
}

// categoryError surfaces a category load failure as a command error for
// commands that print only that category.
func categoryError(metrics schema.ScopeMetrics, category schema.MetricCategory) error {
	if state, ok := metrics.States[category]; ok && state.HasError {
		return fmt.Errorf("%s load failed: %s", category, state.ErrorMessage)
	}
	return nil
}
