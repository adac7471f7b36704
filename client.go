package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"

	"github.com/caselink/caselink-go/headers"
	"github.com/caselink/caselink-go/routes"
)

const defaultBaseURL = "https://api.caselink.law/api"
const defaultUserAgent = "caselink-sdk/" + Version

const (
	defaultConnectTO = 10 * time.Second
	defaultRequestTO = 30 * time.Second
)

// RefreshFunc exchanges a refresh token for a new access token. The session
// layer supplies one backed by the standalone auth endpoints client so the
// refresh call itself never passes through the 401 recovery path.
type RefreshFunc func(ctx context.Context, refreshToken string) (string, error)

// Config wires authentication, base URL, and telemetry for the API client.
type Config struct {
	BaseURL      string
	AccessToken  string
	RefreshToken string
	HTTPClient   *http.Client
	Telemetry    TelemetryHooks
	UserAgent    string
	Retry        RetryConfig
}

// Client provides high-level helpers for interacting with the CaseLink API.
// It attaches the current bearer token to every request and recovers from a
// 401 with exactly one refresh-and-retry per original request.
type Client struct {
	baseURL    string
	httpClient *http.Client
	telemetry  TelemetryHooks
	userAgent  string
	retry      RetryConfig

	tokens           tokenPair
	refreshFn        RefreshFunc
	onSessionExpired func()
	refreshGroup     singleflight.Group

	// Grouped service clients.
	Cases       *CasesClient
	LawyerCases *LawyerCasesClient
	Lawyers     *LawyersClient
	Dashboards  *DashboardsClient
}

// NewClient validates the configuration and returns a ready-to-use Client.
// Tokens may be absent; unauthenticated requests simply carry no bearer
// header and surface the server's 401.
func NewClient(cfg Config) (*Client, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = newHTTPClient(defaultConnectTO, defaultRequestTO)
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	client := &Client{
		baseURL:    normalized,
		httpClient: httpClient,
		telemetry:  cfg.Telemetry,
		userAgent:  ua,
		retry:      cfg.Retry,
	}
	client.tokens.set(cfg.AccessToken, cfg.RefreshToken)
	client.Cases = &CasesClient{client: client}
	client.LawyerCases = &LawyerCasesClient{client: client}
	client.Lawyers = &LawyersClient{client: client}
	client.Dashboards = &DashboardsClient{client: client}
	return client, nil
}

func newHTTPClient(connectTO, requestTO time.Duration) *http.Client {
	return &http.Client{
		Timeout: requestTO,
		Transport: &http.Transport{
			DialContext:         (&net.Dialer{Timeout: connectTO}).DialContext,
			TLSHandshakeTimeout: connectTO,
		},
	}
}

func normalizeBaseURL(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", errors.New("sdk: base URL required")
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("sdk: invalid base URL: %w", err)
	}
	if u.Scheme == "" {
		return "", errors.New("sdk: base URL missing scheme (http/https)")
	}
	if u.Host == "" {
		return "", errors.New("sdk: base URL missing host")
	}
	u.Path = strings.TrimSuffix(u.Path, "/")
	return strings.TrimSuffix(u.String(), "/"), nil
}

// UseRefresh installs the refresh function and the session-expiry callback
// invoked when a refresh fails. Install before issuing requests.
func (c *Client) UseRefresh(fn RefreshFunc, onExpired func()) {
	c.refreshFn = fn
	c.onSessionExpired = onExpired
}

// SetTokens replaces the access/refresh token pair, e.g. after login or boot.
func (c *Client) SetTokens(access, refresh string) {
	c.tokens.set(access, refresh)
}

// ClearTokens drops both tokens; subsequent requests go out unauthenticated.
func (c *Client) ClearTokens() {
	c.tokens.clear()
}

// AccessToken returns the access token currently attached to requests.
func (c *Client) AccessToken() string {
	return c.tokens.accessToken()
}

// BaseURL returns the normalized API base URL the client targets.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) newJSONRequest(ctx context.Context, method, path string, payload any) (*http.Request, error) {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(encoded)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.buildURL(path), body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}
	if req.Header.Get(headers.RequestID) == "" {
		req.Header.Set(headers.RequestID, uuid.NewString())
	}
	injectTraceparent(ctx, req)
	return req, nil
}

func (c *Client) prepare(req *http.Request, token string) {
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	bearerAuth{token: token}.Apply(req)
}

func (c *Client) send(req *http.Request) (*http.Response, error) {
	cfg := c.retry.normalized()
	var lastErr error
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		if delay := cfg.backoffDelay(attempt); delay > 0 {
			select {
			case <-req.Context().Done():
				return nil, req.Context().Err()
			case <-time.After(delay):
			}
		}
		resp, err := c.sendOnce(req)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		if !cfg.retryable(req.Method, err) {
			break
		}
	}
	return nil, lastErr
}

// sendOnce runs one request cycle: a transport attempt plus at most one
// refresh-and-retry when the first attempt returns 401. A 401 from the
// retried request propagates as a failure without another refresh.
func (c *Client) sendOnce(req *http.Request) (*http.Response, error) {
	resp, err := c.roundTrip(req, c.tokens.accessToken())
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 400 {
		return resp, nil
	}
	apiErr := decodeAPIError(resp)
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized || c.refreshFn == nil {
		return nil, apiErr
	}
	token, refreshErr := c.refreshAccessToken(req.Context())
	if refreshErr != nil {
		// The session is gone; the caller sees the original 401.
		return nil, apiErr
	}
	retry, err := c.roundTrip(req, token)
	if err != nil {
		return nil, err
	}
	if retry.StatusCode >= 400 {
		retryErr := decodeAPIError(retry)
		_ = retry.Body.Close()
		return nil, retryErr
	}
	return retry, nil
}

// roundTrip clones the request so its body can be replayed, attaches the
// bearer token, and performs a single HTTP exchange with telemetry.
func (c *Client) roundTrip(req *http.Request, token string) (*http.Response, error) {
	attempt := req.Clone(req.Context())
	if req.Body != nil && req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, err
		}
		attempt.Body = body
	}
	c.prepare(attempt, token)
	if c.telemetry.OnHTTPRequest != nil {
		c.telemetry.OnHTTPRequest(attempt.Context(), attempt)
	}
	c.telemetry.log(attempt.Context(), LogLevelInfo, "http_request", map[string]any{
		"method": attempt.Method,
		"url":    attempt.URL.String(),
	})
	start := time.Now()
	resp, err := c.httpClient.Do(attempt)
	if c.telemetry.OnHTTPResponse != nil {
		c.telemetry.OnHTTPResponse(attempt.Context(), attempt, resp, err, time.Since(start))
	}
	c.telemetry.metric(attempt.Context(), "sdk_http_request_latency_ms", float64(time.Since(start).Milliseconds()), map[string]string{
		"path": attempt.URL.Path,
	})
	return resp, err
}

// refreshAccessToken funnels concurrent 401 recoveries through one in-flight
// refresh call; every waiter retries with the shared result.
func (c *Client) refreshAccessToken(ctx context.Context) (string, error) {
	token, err, _ := c.refreshGroup.Do("refresh", func() (any, error) {
		refresh := c.tokens.refreshToken()
		if refresh == "" {
			c.expireSession(ctx)
			return nil, errors.New("sdk: no refresh token available")
		}
		access, err := c.refreshFn(ctx, refresh)
		if err != nil {
			c.expireSession(ctx)
			return nil, err
		}
		c.tokens.setAccess(access)
		c.telemetry.log(ctx, LogLevelInfo, "access_token_refreshed", nil)
		return trimBearer(access), nil
	})
	if err != nil {
		return "", err
	}
	return token.(string), nil
}

func (c *Client) expireSession(ctx context.Context) {
	c.tokens.clear()
	c.telemetry.log(ctx, LogLevelError, "session_expired", nil)
	if c.onSessionExpired != nil {
		c.onSessionExpired()
	}
}

func (c *Client) sendAndDecode(ctx context.Context, method, path string, payload, out any) error {
	req, err := c.newJSONRequest(ctx, method, path, payload)
	if err != nil {
		return err
	}
	resp, err := c.send(req)
	if err != nil {
		return err
	}
	//nolint:errcheck // best-effort cleanup on return
	defer func() { _ = resp.Body.Close() }()
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Me verifies the current access token and returns the server's view of the
// authenticated user.
func (c *Client) Me(ctx context.Context) (UserProfile, error) {
	var profile UserProfile
	if err := c.sendAndDecode(ctx, http.MethodGet, routes.AuthMe, nil, &profile); err != nil {
		return UserProfile{}, err
	}
	return profile, nil
}

// injectTraceparent stamps the W3C traceparent header when the context
// carries an active otel span, linking SDK requests to the caller's trace.
func injectTraceparent(ctx context.Context, req *http.Request) {
	sc := trace.SpanFromContext(ctx).SpanContext()
	if !sc.IsValid() {
		return
	}
	req.Header.Set("Traceparent", fmt.Sprintf("00-%s-%s-01", sc.TraceID(), sc.SpanID()))
}

func (c *Client) buildURL(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}
