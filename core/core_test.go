package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pulseboard/pulseboard/core/timeline"
	"github.com/pulseboard/pulseboard/internal/contract"
	"github.com/pulseboard/pulseboard/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveWindowTrailingDays(t *testing.T) {
	ctx := context.Background()
	cfg := &contract.Config{WindowDays: 7}

	window, err := resolveWindow(ctx, cfg, nil)
	require.NoError(t, err)

	expected := timeline.RangeForTrailingDays(time.Now(), 7)
	assert.Equal(t, expected, window)
	assert.Equal(t, 7, window.Days())
}

func TestResolveWindowMonthView(t *testing.T) {
	ctx := context.Background()
	floor := time.Date(2026, time.January, 20, 0, 0, 0, 0, time.UTC)

	seasons := &contract.MockSeasonSource{}
	seasons.On("CurrentSeason", ctx).Return(schema.Season{Start: floor}, nil)

	cfg := &contract.Config{MonthView: true, MonthsAgo: 0}
	window, err := resolveWindow(ctx, cfg, seasons)
	require.NoError(t, err)

	expected := timeline.RangeForCalendarMonth(0, time.Now(), floor)
	assert.Equal(t, expected, window)
	seasons.AssertExpectations(t)
}

func TestResolveWindowMonthViewSeasonFailure(t *testing.T) {
	ctx := context.Background()

	seasons := &contract.MockSeasonSource{}
	seasons.On("CurrentSeason", ctx).Return(schema.Season{}, errors.New("boom"))

	cfg := &contract.Config{MonthView: true}
	_, err := resolveWindow(ctx, cfg, seasons)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to resolve season")
}

func TestCategoryError(t *testing.T) {
	metrics := schema.ScopeMetrics{
		States: map[schema.MetricCategory]schema.CategoryState{
			schema.KPIsCategory: {
				HasError:     true,
				ErrorMessage: "Could not load key indicators",
			},
			schema.PointsCategory: {},
		},
	}

	err := categoryError(metrics, schema.KPIsCategory)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kpis load failed")
	assert.Contains(t, err.Error(), "Could not load key indicators")

	assert.NoError(t, categoryError(metrics, schema.PointsCategory))
	assert.NoError(t, categoryError(metrics, schema.ProgressCategory))
}

// TestExecuteSummarySeasonFailure exercises the executor error path without
// a live metrics API. Month view resolution fails fast against a dead
// endpoint, so the command surfaces an error instead of printing.
func TestExecuteSummarySeasonFailure(t *testing.T) {
	ctx := context.Background()
	cfg := &contract.Config{
		APIBaseURL: "http://127.0.0.1:1",
		TeamID:     "platform",
		MonthView:  true,
		BatchSize:  100,
	}

	err := ExecuteSummary(ctx, cfg, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to resolve season")
}
