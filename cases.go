package sdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/caselink/caselink-go/routes"
)

// CasesClient provides the client-side case operations: filing a case,
// listing the client's cases, and commenting.
type CasesClient struct {
	client *Client
}

// ensureInitialized returns an error if the client is not properly initialized.
func (c *CasesClient) ensureInitialized() error {
	if c == nil || c.client == nil {
		return fmt.Errorf("sdk: cases client not initialized")
	}
	return nil
}

// ReportCaseRequest contains the intake form fields for a new case.
type ReportCaseRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	// Category left blank lets the server classify the case from the description.
	Category            string `json:"category,omitempty"`
	UrgencyLevel        string `json:"urgencyLevel,omitempty"`
	CommunicationMethod string `json:"communicationMethod,omitempty"`
	SpecialRequirements string `json:"specialRequirements,omitempty"`
}

// ReportCaseResponse is returned when a case is filed.
type ReportCaseResponse struct {
	Message      string `json:"message"`
	CaseID       string `json:"caseId"`
	Category     string `json:"category"`
	AIClassified bool   `json:"aiClassified"`
}

// Report files a new case for the authenticated client.
func (c *CasesClient) Report(ctx context.Context, req ReportCaseRequest) (ReportCaseResponse, error) {
	if err := c.ensureInitialized(); err != nil {
		return ReportCaseResponse{}, err
	}
	if strings.TrimSpace(req.Title) == "" {
		return ReportCaseResponse{}, fmt.Errorf("sdk: title is required")
	}
	if strings.TrimSpace(req.Description) == "" {
		return ReportCaseResponse{}, fmt.Errorf("sdk: description is required")
	}
	var resp ReportCaseResponse
	if err := c.client.sendAndDecode(ctx, http.MethodPost, routes.CaseReport, req, &resp); err != nil {
		return ReportCaseResponse{}, err
	}
	return resp, nil
}

type caseListResponse struct {
	Cases []Case `json:"cases"`
}

// List returns the authenticated client's cases.
func (c *CasesClient) List(ctx context.Context) ([]Case, error) {
	if err := c.ensureInitialized(); err != nil {
		return nil, err
	}
	var resp caseListResponse
	if err := c.client.sendAndDecode(ctx, http.MethodGet, routes.ClientCases, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Cases, nil
}

// Get retrieves full details for a single case the user is a party to.
func (c *CasesClient) Get(ctx context.Context, caseID string) (Case, error) {
	if err := c.ensureInitialized(); err != nil {
		return Case{}, err
	}
	if strings.TrimSpace(caseID) == "" {
		return Case{}, fmt.Errorf("sdk: case_id is required")
	}
	var resp Case
	if err := c.client.sendAndDecode(ctx, http.MethodGet, casePath(routes.CaseByID, caseID), nil, &resp); err != nil {
		return Case{}, err
	}
	return resp, nil
}

type caseEnvelope struct {
	Message string `json:"message"`
	Case    Case   `json:"case"`
}

// AddComment appends a comment to a case and returns the updated case.
func (c *CasesClient) AddComment(ctx context.Context, caseID, text string) (Case, error) {
	if err := c.ensureInitialized(); err != nil {
		return Case{}, err
	}
	if strings.TrimSpace(caseID) == "" {
		return Case{}, fmt.Errorf("sdk: case_id is required")
	}
	if strings.TrimSpace(text) == "" {
		return Case{}, fmt.Errorf("sdk: comment cannot be empty")
	}
	payload := map[string]string{"comment": strings.TrimSpace(text)}
	var resp caseEnvelope
	if err := c.client.sendAndDecode(ctx, http.MethodPost, casePath(routes.CaseAddComment, caseID), payload, &resp); err != nil {
		return Case{}, err
	}
	return resp.Case, nil
}

// LawyerCasesClient provides the lawyer-side case operations: browsing
// available cases, listing assignments, accepting, and progressing status.
type LawyerCasesClient struct {
	client *Client
}

func (c *LawyerCasesClient) ensureInitialized() error {
	if c == nil || c.client == nil {
		return fmt.Errorf("sdk: lawyer cases client not initialized")
	}
	return nil
}

// Available lists unassigned cases the lawyer may accept.
func (c *LawyerCasesClient) Available(ctx context.Context) ([]Case, error) {
	if err := c.ensureInitialized(); err != nil {
		return nil, err
	}
	var resp caseListResponse
	if err := c.client.sendAndDecode(ctx, http.MethodGet, routes.LawyerAvailableCases, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Cases, nil
}

// Assigned lists cases currently assigned to the lawyer.
func (c *LawyerCasesClient) Assigned(ctx context.Context) ([]Case, error) {
	if err := c.ensureInitialized(); err != nil {
		return nil, err
	}
	var resp caseListResponse
	if err := c.client.sendAndDecode(ctx, http.MethodGet, routes.LawyerAssignedCases, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Cases, nil
}

// Accept assigns an available case to the authenticated lawyer. The server
// rejects cases already taken by another lawyer; that surfaces as an APIError.
func (c *LawyerCasesClient) Accept(ctx context.Context, caseID string) (Case, error) {
	if err := c.ensureInitialized(); err != nil {
		return Case{}, err
	}
	if strings.TrimSpace(caseID) == "" {
		return Case{}, fmt.Errorf("sdk: case_id is required")
	}
	var resp caseEnvelope
	if err := c.client.sendAndDecode(ctx, http.MethodPost, casePath(routes.LawyerAcceptCase, caseID), struct{}{}, &resp); err != nil {
		return Case{}, err
	}
	return resp.Case, nil
}

// UpdateStatus moves an assigned case to a new status with an optional note.
func (c *LawyerCasesClient) UpdateStatus(ctx context.Context, caseID string, status CaseStatus, comment string) error {
	if err := c.ensureInitialized(); err != nil {
		return err
	}
	if strings.TrimSpace(caseID) == "" {
		return fmt.Errorf("sdk: case_id is required")
	}
	switch status {
	case CaseStatusInProgress, CaseStatusOnHold, CaseStatusClosed:
		// valid
	default:
		return fmt.Errorf("sdk: invalid status %q (must be InProgress, OnHold, or Closed)", status)
	}
	payload := map[string]string{"status": status.String()}
	if strings.TrimSpace(comment) != "" {
		payload["comment"] = strings.TrimSpace(comment)
	}
	return c.client.sendAndDecode(ctx, http.MethodPost, casePath(routes.CaseUpdateStatus, caseID), payload, nil)
}

func casePath(route, caseID string) string {
	return strings.Replace(route, "{case_id}", url.PathEscape(caseID), 1)
}
