package sdk

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/caselink/caselink-go/routes"
)

// LawyersClient provides the lawyer directory and the authenticated lawyer's
// own profile.
type LawyersClient struct {
	client *Client
}

func (c *LawyersClient) ensureInitialized() error {
	if c == nil || c.client == nil {
		return fmt.Errorf("sdk: lawyers client not initialized")
	}
	return nil
}

// LawyerListing is one entry in the directory clients browse.
type LawyerListing struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Specialization string  `json:"specialization"`
	Rating         float64 `json:"rating"`
	CasesHandled   int     `json:"cases_handled"`
}

type lawyerListResponse struct {
	Lawyers []LawyerListing `json:"lawyers"`
}

// Find lists lawyers the authenticated client can browse.
func (c *LawyersClient) Find(ctx context.Context) ([]LawyerListing, error) {
	if err := c.ensureInitialized(); err != nil {
		return nil, err
	}
	var resp lawyerListResponse
	if err := c.client.sendAndDecode(ctx, http.MethodGet, routes.ClientFindLawyers, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Lawyers, nil
}

// LawyerProfile is the lawyer's public profile as served by the API.
type LawyerProfile struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	BarNumber       string   `json:"barNumber"`
	Specializations []string `json:"specializations"`
	Bio             string   `json:"bio"`
	Experience      string   `json:"experience"`
	Rating          float64  `json:"rating"`
}

// Profile returns the authenticated lawyer's own profile.
func (c *LawyersClient) Profile(ctx context.Context) (LawyerProfile, error) {
	if err := c.ensureInitialized(); err != nil {
		return LawyerProfile{}, err
	}
	var resp LawyerProfile
	if err := c.client.sendAndDecode(ctx, http.MethodGet, routes.LawyerProfile, nil, &resp); err != nil {
		return LawyerProfile{}, err
	}
	return resp, nil
}

// LawyerProfileUpdate carries the editable profile fields. Zero-valued
// fields are omitted so partial updates leave the rest untouched.
type LawyerProfileUpdate struct {
	Specializations []string `json:"specializations,omitempty"`
	Bio             string   `json:"bio,omitempty"`
	Experience      string   `json:"experience,omitempty"`
}

// UpdateProfile saves the authenticated lawyer's editable profile fields.
func (c *LawyersClient) UpdateProfile(ctx context.Context, update LawyerProfileUpdate) error {
	if err := c.ensureInitialized(); err != nil {
		return err
	}
	if len(update.Specializations) == 0 && strings.TrimSpace(update.Bio) == "" &&
		strings.TrimSpace(update.Experience) == "" {
		return fmt.Errorf("sdk: profile update is empty")
	}
	return c.client.sendAndDecode(ctx, http.MethodPut, routes.LawyerProfile, update, nil)
}
