// Package apiclient implements the record, roster and season sources
// against the pulseboard dashboard HTTP API.
package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pulseboard/pulseboard/internal/contract"
	"github.com/pulseboard/pulseboard/schema"
)

// requestTimeout bounds a single API round trip. Page loops issue many
// requests, so each one stays short.
const requestTimeout = 30 * time.Second

// Client talks to the dashboard API. It implements RecordSource,
// RosterSource and SeasonSource so the aggregation logic can run against a
// live backend or a mock interchangeably.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Compile-time checks
var (
	_ contract.RecordSource = &Client{}
	_ contract.RosterSource = &Client{}
	_ contract.SeasonSource = &Client{}
)

// NewClient creates an API client for the given base URL. The token may be
// empty for unauthenticated deployments.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// ActivityPage implements the RecordSource interface.
func (c *Client) ActivityPage(ctx context.Context, q contract.RecordQuery, offset, limit int) ([]schema.RawDatedRecord, error) {
	return c.recordPage(ctx, "activity", q, offset, limit)
}

// PointsPage implements the RecordSource interface.
func (c *Client) PointsPage(ctx context.Context, q contract.RecordQuery, offset, limit int) ([]schema.RawDatedRecord, error) {
	return c.recordPage(ctx, "points", q, offset, limit)
}

// TasksPage implements the RecordSource interface.
func (c *Client) TasksPage(ctx context.Context, q contract.RecordQuery, offset, limit int) ([]schema.RawDatedRecord, error) {
	return c.recordPage(ctx, "tasks", q, offset, limit)
}

// PortfolioPage implements the RecordSource interface.
func (c *Client) PortfolioPage(ctx context.Context, q contract.RecordQuery, offset, limit int) ([]schema.PortfolioItem, error) {
	var items []schema.PortfolioItem
	if err := c.getPage(ctx, c.scopedURL("portfolio", q), offset, limit, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// TeamPointsAggregate implements the RecordSource interface.
func (c *Client) TeamPointsAggregate(ctx context.Context, q contract.RecordQuery) (float64, error) {
	var payload struct {
		Total float64 `json:"total"`
	}
	u := c.scopedURL("points/aggregate", contract.RecordQuery{TeamID: q.TeamID, Window: q.Window})
	if err := c.getJSON(ctx, u, nil, &payload); err != nil {
		return 0, err
	}
	return payload.Total, nil
}

// KPIValues implements the RecordSource interface.
func (c *Client) KPIValues(ctx context.Context, q contract.RecordQuery) ([]schema.KPIValue, error) {
	var kpis []schema.KPIValue
	if err := c.getJSON(ctx, c.scopedURL("kpis", q), nil, &kpis); err != nil {
		return nil, err
	}
	return kpis, nil
}

// ListMembers implements the RosterSource interface.
func (c *Client) ListMembers(ctx context.Context, teamID string) ([]schema.Member, error) {
	var members []schema.Member
	u := fmt.Sprintf("%s/teams/%s/members", c.baseURL, url.PathEscape(teamID))
	if err := c.getJSON(ctx, u, nil, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// CurrentSeason implements the SeasonSource interface.
func (c *Client) CurrentSeason(ctx context.Context) (schema.Season, error) {
	var season schema.Season
	u := c.baseURL + "/seasons/current"
	if err := c.getJSON(ctx, u, nil, &season); err != nil {
		return schema.Season{}, err
	}
	return season, nil
}

// recordPage fetches one page of a dated record feed.
func (c *Client) recordPage(ctx context.Context, feed string, q contract.RecordQuery, offset, limit int) ([]schema.RawDatedRecord, error) {
	var records []schema.RawDatedRecord
	if err := c.getPage(ctx, c.scopedURL(feed, q), offset, limit, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// scopedURL builds the feed URL for a query. Team feeds live under the team
// resource; a collaborator id narrows them via a query parameter.
func (c *Client) scopedURL(feed string, q contract.RecordQuery) string {
	params := url.Values{}
	params.Set("from", q.Window.Start.Format(contract.DateKeyFormat))
	params.Set("to", q.Window.End.Format(contract.DateKeyFormat))
	if q.CollaboratorID != "" {
		params.Set("collaborator", q.CollaboratorID)
	}
	return fmt.Sprintf("%s/teams/%s/%s?%s", c.baseURL, url.PathEscape(q.TeamID), feed, params.Encode())
}

// getPage performs a ranged GET. The server honors the Range header with
// items units and replies with at most limit entries; fewer entries than
// requested means the feed is exhausted.
func (c *Client) getPage(ctx context.Context, u string, offset, limit int, out any) error {
	headers := map[string]string{
		"Range": fmt.Sprintf("items=%d-%d", offset, offset+limit),
	}
	return c.getJSON(ctx, u, headers, out)
}

// getJSON performs a GET against the API and decodes the JSON response.
func (c *Client) getJSON(ctx context.Context, u string, headers map[string]string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", u, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("dashboard API request failed: %w. Check that the API is reachable and base-url is correct", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("dashboard API returned %d for %s: %s", resp.StatusCode, u, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode API response from %s: %w", u, err)
	}
	return nil
}
