// Package auth provides the unauthenticated authentication endpoints of the
// CaseLink API: login, signup, refresh, logout, and password reset.
//
// This client sits outside the SDK's 401 recovery path, which is what makes
// refresh recursion structurally impossible.
package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	sdk "github.com/caselink/caselink-go"
	"github.com/caselink/caselink-go/routes"
)

const defaultUserAgent = "caselink-sdk/auth"

// Config controls how the auth client talks to the CaseLink API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	UserAgent  string
}

// Client issues authentication requests against the CaseLink API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
}

// Credentials encapsulates email/password inputs for login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse mirrors the login response body.
type LoginResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	User         sdk.UserProfile `json:"user"`
}

// RefreshResponse mirrors the refresh response body. Only the access token
// rotates; the refresh token is reused until it expires.
type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}

// SignupRequest contains the account creation form fields.
type SignupRequest struct {
	FirstName string       `json:"firstName"`
	LastName  string       `json:"lastName"`
	Email     string       `json:"email"`
	Password  string       `json:"password"`
	UserType  sdk.UserType `json:"userType"`
	BarNumber string       `json:"barNumber,omitempty"`
}

// SignupResponse mirrors the signup response body. Signup does not
// authenticate; the user logs in afterwards.
type SignupResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

// Error conveys HTTP failures from the CaseLink API.
type Error struct {
	Status  int
	Message string
}

func (e Error) Error() string {
	return fmt.Sprintf("sdk/auth: http %d: %s", e.Status, strings.TrimSpace(e.Message))
}

// IsInvalidCredentials reports whether the error is a login rejection
// (unknown email or bad password) suitable for inline form display.
func IsInvalidCredentials(err error) bool {
	var apiErr Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// IsEmailTaken reports whether signup failed because the email is registered.
func IsEmailTaken(err error) bool {
	var apiErr Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusConflict
}

// NewClient constructs a Client with sane defaults.
func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		return nil, errors.New("sdk/auth: base url required")
	}
	client := cfg.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	return &Client{
		baseURL:    strings.TrimSuffix(base, "/"),
		httpClient: client,
		userAgent:  ua,
	}, nil
}

// Login exchanges user credentials for a token pair and profile.
func (c *Client) Login(ctx context.Context, creds Credentials) (LoginResponse, error) {
	if strings.TrimSpace(creds.Email) == "" || strings.TrimSpace(creds.Password) == "" {
		return LoginResponse{}, errors.New("sdk/auth: email and password required")
	}
	var resp LoginResponse
	if err := c.post(ctx, routes.AuthLogin, creds, "", &resp); err != nil {
		return LoginResponse{}, err
	}
	return resp, nil
}

// Signup creates a new account. Lawyers must supply a bar number.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (SignupResponse, error) {
	if strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Password) == "" {
		return SignupResponse{}, errors.New("sdk/auth: email and password required")
	}
	if req.UserType == sdk.UserTypeLawyer && strings.TrimSpace(req.BarNumber) == "" {
		return SignupResponse{}, errors.New("sdk/auth: bar number required for lawyer accounts")
	}
	var resp SignupResponse
	if err := c.post(ctx, routes.AuthSignup, req, "", &resp); err != nil {
		return SignupResponse{}, err
	}
	return resp, nil
}

// Refresh swaps a refresh token for a new access token. The refresh token is
// presented as the bearer credential, matching the server contract.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (RefreshResponse, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return RefreshResponse{}, errors.New("sdk/auth: refresh token required")
	}
	var resp RefreshResponse
	if err := c.post(ctx, routes.AuthRefresh, struct{}{}, refreshToken, &resp); err != nil {
		return RefreshResponse{}, err
	}
	return resp, nil
}

// Logout revokes the access token server-side. Callers treat failures as
// non-fatal; local logout proceeds regardless.
func (c *Client) Logout(ctx context.Context, accessToken string) error {
	if strings.TrimSpace(accessToken) == "" {
		return errors.New("sdk/auth: access token required")
	}
	return c.post(ctx, routes.AuthLogout, struct{}{}, accessToken, nil)
}

// ForgotPassword triggers a password reset email.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	if strings.TrimSpace(email) == "" {
		return errors.New("sdk/auth: email required")
	}
	payload := map[string]string{"email": strings.TrimSpace(email)}
	return c.post(ctx, routes.AuthForgotPassword, payload, "", nil)
}

// GoogleAuthURL returns the server redirect URL that starts a Google OAuth
// login or signup. The flow completes server-side.
func (c *Client) GoogleAuthURL(authType string) string {
	return c.baseURL + "/auth/google?auth_type=" + url.QueryEscape(authType)
}

func (c *Client) post(ctx context.Context, path string, payload any, bearer string, out any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	//nolint:errcheck // best-effort cleanup on return
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return Error{Status: resp.StatusCode, Message: errorMessage(body, resp.Status)}
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(body, out)
}

func errorMessage(body []byte, fallback string) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	if len(body) > 0 {
		return string(body)
	}
	return fallback
}
