package sdk

import (
	"context"
	"fmt"
	"net/http"

	"github.com/caselink/caselink-go/routes"
)

// DashboardsClient fetches the summary data behind the role dashboards.
type DashboardsClient struct {
	client *Client
}

func (c *DashboardsClient) ensureInitialized() error {
	if c == nil || c.client == nil {
		return fmt.Errorf("sdk: dashboards client not initialized")
	}
	return nil
}

// DashboardCase is the condensed case card shown on a dashboard. Status is a
// free-form display string here, not a CaseStatus.
type DashboardCase struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Status string `json:"status"`
}

// DashboardSummary is the payload behind either role dashboard.
type DashboardSummary struct {
	Message string          `json:"message"`
	Cases   []DashboardCase `json:"cases"`
}

// Client returns the client dashboard summary. The server rejects callers
// without the client role with a 403.
func (c *DashboardsClient) Client(ctx context.Context) (DashboardSummary, error) {
	return c.fetch(ctx, routes.ClientDashboard)
}

// Lawyer returns the lawyer dashboard summary. The server rejects callers
// without the lawyer role with a 403.
func (c *DashboardsClient) Lawyer(ctx context.Context) (DashboardSummary, error) {
	return c.fetch(ctx, routes.LawyerDashboard)
}

func (c *DashboardsClient) fetch(ctx context.Context, route string) (DashboardSummary, error) {
	if err := c.ensureInitialized(); err != nil {
		return DashboardSummary{}, err
	}
	var resp DashboardSummary
	if err := c.client.sendAndDecode(ctx, http.MethodGet, route, nil, &resp); err != nil {
		return DashboardSummary{}, err
	}
	return resp, nil
}
