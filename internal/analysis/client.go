// Package analysis talks to an optional external analysis service that
// scores floor plans (traffic flow, sellable ratio benchmarks). The
// editor works fully without it; a missing or unreachable service
// degrades to a local summary.
package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/expofloor/boothplan/internal/geometry"
	"github.com/expofloor/boothplan/internal/model"
)

// DefaultTimeout bounds a single analysis request.
const DefaultTimeout = 10 * time.Second

// Request is the plan snapshot posted to the analysis service.
type Request struct {
	PlanName   string           `json:"plan_name"`
	ScaleRatio float64          `json:"scale_ratio"`
	Zones      []model.Zone     `json:"zones"`
	Summary    geometry.Summary `json:"summary"`
}

// Report is the service's verdict on a plan. Local holds true when the
// report was computed locally because the service was unavailable.
type Report struct {
	Score       float64  `json:"score"`
	Suggestions []string `json:"suggestions"`
	Summary     geometry.Summary
	Local       bool `json:"-"`
}

// Client posts plan snapshots to an analysis endpoint.
type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient returns a client for the given endpoint. An empty endpoint
// yields a client that always reports locally.
func NewClient(endpoint string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: timeout},
	}
}

// Analyze submits the plan and returns the service's report. If no
// endpoint is configured or the service cannot be reached, a locally
// computed report is returned instead of an error: analysis is advisory
// and must never block the editor.
func (c *Client) Analyze(ctx context.Context, plan model.Plan) (Report, error) {
	summary := geometry.Summarize(plan)
	if c.endpoint == "" {
		return localReport(summary), nil
	}

	body, err := json.Marshal(Request{
		PlanName:   plan.Name,
		ScaleRatio: plan.ScaleRatio,
		Zones:      plan.Items,
		Summary:    summary,
	})
	if err != nil {
		return Report{}, fmt.Errorf("failed to marshal analysis request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return Report{}, fmt.Errorf("failed to build analysis request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return localReport(summary), nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return localReport(summary), nil
	}

	var report Report
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		return Report{}, fmt.Errorf("failed to parse analysis response: %w", err)
	}
	report.Summary = summary
	return report, nil
}

// localReport derives a basic report from the geometric summary alone.
func localReport(summary geometry.Summary) Report {
	report := Report{
		Score:   summary.SellableRatio(),
		Summary: summary,
		Local:   true,
	}
	if summary.BoothCount == 0 {
		report.Suggestions = append(report.Suggestions, "Plan has no booths yet")
	}
	if summary.SellableRatio() < 80 && summary.BoothCount > 0 {
		report.Suggestions = append(report.Suggestions,
			"Pillar intrusions consume over 20% of gross booth area; consider moving booths off columns")
	}
	return report
}
