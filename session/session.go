// Package session owns the authentication lifecycle of a CaseLink frontend:
// boot-time reconciliation between persisted credentials and server-verified
// identity, login/logout, and the in-memory session state consumed by route
// guards.
//
// All state mutations are serialized behind one mutex, so a manual logout
// racing a background refresh failure resolves deterministically instead of
// last-writer-wins.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	sdk "github.com/caselink/caselink-go"
	"github.com/caselink/caselink-go/auth"
	"github.com/caselink/caselink-go/credstore"
	"github.com/caselink/caselink-go/guard"
	"github.com/caselink/caselink-go/routes"
)

// Status is the session lifecycle state.
type Status string

const (
	// StatusBooting means boot reconciliation has not finished.
	StatusBooting Status = "booting"
	// StatusAuthenticated means a verified user is attached to the session.
	StatusAuthenticated Status = "authenticated"
	// StatusUnauthenticated means no session exists.
	StatusUnauthenticated Status = "unauthenticated"
)

// Snapshot is a point-in-time copy of the session state. While IsLoading is
// true, guard decisions are suppressed and callers must wait.
type Snapshot struct {
	Status    Status
	User      *sdk.UserProfile
	IsLoading bool
}

// IsAuthenticated reports whether the snapshot carries a verified user.
func (s Snapshot) IsAuthenticated() bool {
	return s.Status == StatusAuthenticated
}

// Config wires the manager's collaborators. Store, API, and Auth are
// required; Navigator defaults to a no-op for headless use.
type Config struct {
	Store     credstore.Store
	API       *sdk.Client
	Auth      *auth.Client
	Navigator guard.Navigator
	Logger    zerolog.Logger
}

// Manager is the single owner of session state. It installs itself as the
// API client's refresh hook, so a failed background refresh and an explicit
// logout funnel through the same terminal path.
type Manager struct {
	mu      sync.Mutex
	status  Status
	user    *sdk.UserProfile
	loading bool
	booting bool
	origin  string

	store credstore.Store
	api   *sdk.Client
	authc *auth.Client
	nav   guard.Navigator
	log   zerolog.Logger
}

type nopNavigator struct{}

func (nopNavigator) Navigate(string) {}

// NewManager validates the configuration and wires the manager into the API
// client's 401 recovery path.
func NewManager(cfg Config) (*Manager, error) {
	if cfg.Store == nil {
		return nil, errors.New("session: credential store required")
	}
	if cfg.API == nil {
		return nil, errors.New("session: api client required")
	}
	if cfg.Auth == nil {
		return nil, errors.New("session: auth client required")
	}
	nav := cfg.Navigator
	if nav == nil {
		nav = nopNavigator{}
	}
	m := &Manager{
		status:  StatusBooting,
		loading: true,
		store:   cfg.Store,
		api:     cfg.API,
		authc:   cfg.Auth,
		nav:     nav,
		log:     cfg.Logger,
	}
	cfg.API.UseRefresh(m.refreshAccess, m.handleExpired)
	return m, nil
}

// Routes where an already-authenticated visitor is bounced to their
// dashboard after boot. Deliberately narrower than the public-only guard:
// services/contact stay viewable while signed in.
var bootRedirectRoutes = map[string]struct{}{
	routes.AppHome:   {},
	routes.AppLogin:  {},
	routes.AppSignup: {},
}

// Boot reconciles persisted credentials with server-verified identity. It
// runs once per application load and is idempotent: with a valid record and
// a responsive verify endpoint it always lands on StatusAuthenticated with
// the server's profile.
func (m *Manager) Boot(ctx context.Context, currentRoute string) Snapshot {
	m.mu.Lock()
	m.status = StatusBooting
	m.loading = true
	m.booting = true
	m.mu.Unlock()

	rec, err := m.store.Load()
	switch {
	case errors.Is(err, credstore.ErrNotFound):
		m.log.Debug().Msg("no stored credentials")
		m.toUnauthenticated()
	case err != nil:
		m.log.Warn().Err(err).Msg("credential store unreadable, treating as absent")
		m.toUnauthenticated()
	default:
		m.reconcile(ctx, rec)
	}

	m.mu.Lock()
	m.loading = false
	m.booting = false
	m.mu.Unlock()

	snap := m.Snapshot()
	if snap.IsAuthenticated() {
		if _, ok := bootRedirectRoutes[currentRoute]; ok {
			m.nav.Navigate(defaultRoute(*snap.User))
		}
	}
	return snap
}

func (m *Manager) reconcile(ctx context.Context, rec credstore.Record) {
	m.api.SetTokens(rec.AccessToken, rec.RefreshToken)
	if claims, err := auth.ParseClaims(rec.AccessToken); err == nil {
		m.log.Debug().
			Str("user_id", claims.Subject).
			Dur("expires_in", claims.ExpiresIn(time.Now())).
			Msg("found stored credentials")
	}

	profile, err := m.api.Me(ctx)
	if err == nil {
		// The server's profile is authoritative; rewrite the cache when it
		// has drifted from the stored copy.
		if !profile.Equal(rec.User) {
			rec.User = profile
			rec.AccessToken = m.api.AccessToken()
			if serr := m.store.Save(rec); serr != nil {
				m.log.Warn().Err(serr).Msg("failed to update cached profile")
			}
		}
		m.toAuthenticated(profile)
		m.log.Info().Str("user_id", profile.ID).Msg("session restored")
		return
	}

	if sdk.IsUnauthorized(err) {
		// The API client already spent the single refresh attempt inside
		// its 401 recovery; a surviving 401 means the session is dead.
		m.log.Info().Err(err).Msg("stored session rejected, clearing")
		if cerr := m.store.Clear(); cerr != nil {
			m.log.Warn().Err(cerr).Msg("failed to clear credential store")
		}
		m.api.ClearTokens()
		m.toUnauthenticated()
		return
	}

	// Verification was unreachable rather than rejected; spend the one
	// refresh attempt here.
	m.log.Info().Err(err).Msg("identity verification unavailable, attempting refresh")
	resp, rerr := m.authc.Refresh(ctx, rec.RefreshToken)
	if rerr != nil {
		m.log.Info().Err(rerr).Msg("refresh failed, clearing stored session")
		if cerr := m.store.Clear(); cerr != nil {
			m.log.Warn().Err(cerr).Msg("failed to clear credential store")
		}
		m.api.ClearTokens()
		m.toUnauthenticated()
		return
	}

	// Refresh succeeded: trust the cached profile without re-verification.
	m.api.SetTokens(resp.AccessToken, rec.RefreshToken)
	rec.AccessToken = resp.AccessToken
	if serr := m.store.Save(rec); serr != nil {
		m.log.Warn().Err(serr).Msg("failed to persist refreshed token")
	}
	m.toAuthenticated(rec.User)
	m.log.Info().Str("user_id", rec.User.ID).Msg("session restored via refresh")
}

// Login exchanges credentials for a session. On success it persists the
// credential record, installs the tokens, and navigates to the captured
// origin route or the role default. On failure the session state is
// untouched and the error is returned for inline display.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	resp, err := m.authc.Login(ctx, auth.Credentials{Email: email, Password: password})
	if err != nil {
		m.log.Info().Str("email", email).Err(err).Msg("login rejected")
		return err
	}

	rec := credstore.Record{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		User:         resp.User,
	}
	if serr := m.store.Save(rec); serr != nil {
		m.log.Warn().Err(serr).Msg("failed to persist credentials")
	}
	m.api.SetTokens(resp.AccessToken, resp.RefreshToken)
	m.toAuthenticated(resp.User)

	m.mu.Lock()
	target := m.origin
	m.origin = ""
	m.mu.Unlock()
	if target == "" {
		target = defaultRoute(resp.User)
	}
	m.nav.Navigate(target)
	m.log.Info().Str("user_id", resp.User.ID).Msg("login succeeded")
	return nil
}

// Signup creates an account. It does not authenticate; the caller directs
// the user to log in afterwards.
func (m *Manager) Signup(ctx context.Context, req auth.SignupRequest) (auth.SignupResponse, error) {
	return m.authc.Signup(ctx, req)
}

// ForgotPassword triggers a password reset email.
func (m *Manager) ForgotPassword(ctx context.Context, email string) error {
	return m.authc.ForgotPassword(ctx, email)
}

// Logout ends the session. The server call is best-effort: a flaky network
// never leaves the UI stuck looking authenticated.
func (m *Manager) Logout(ctx context.Context) {
	m.setLoading(true)
	if token := m.api.AccessToken(); token != "" {
		if err := m.authc.Logout(ctx, token); err != nil {
			m.log.Warn().Err(err).Msg("server logout failed, continuing local logout")
		}
	}
	m.clearLocal()
	m.nav.Navigate(routes.AppLogin)
	m.setLoading(false)
	m.log.Info().Msg("logged out")
}

// CaptureOrigin records the route a redirected visitor originally requested
// so a successful login can return to it.
func (m *Manager) CaptureOrigin(route string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.origin = route
}

// Snapshot returns a copy of the current session state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	snap := Snapshot{Status: m.status, IsLoading: m.loading}
	if m.user != nil {
		u := *m.user
		u.Roles = append([]string(nil), m.user.Roles...)
		snap.User = &u
	}
	return snap
}

// GuardState projects the session into the shape guard decisions consume.
func (m *Manager) GuardState() guard.State {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := guard.State{
		IsLoading:       m.loading,
		IsAuthenticated: m.status == StatusAuthenticated,
	}
	if m.user != nil {
		s.Roles = append([]string(nil), m.user.Roles...)
	}
	return s
}

// refreshAccess is the RefreshFunc installed on the API client. A rotated
// access token is persisted before any dependent request goes out.
func (m *Manager) refreshAccess(ctx context.Context, refreshToken string) (string, error) {
	resp, err := m.authc.Refresh(ctx, refreshToken)
	if err != nil {
		return "", err
	}
	if rec, lerr := m.store.Load(); lerr == nil {
		rec.AccessToken = resp.AccessToken
		if serr := m.store.Save(rec); serr != nil {
			m.log.Warn().Err(serr).Msg("failed to persist refreshed token")
		}
	}
	return resp.AccessToken, nil
}

// handleExpired is invoked by the API client when a refresh fails. It shares
// the logout terminal path minus the server call. During boot reconciliation
// no navigation happens; Boot decides where the user lands once it finishes.
func (m *Manager) handleExpired() {
	m.log.Info().Msg("session expired")
	m.clearLocal()
	m.mu.Lock()
	booting := m.booting
	m.mu.Unlock()
	if !booting {
		m.nav.Navigate(routes.AppLogin)
	}
}

func (m *Manager) clearLocal() {
	if err := m.store.Clear(); err != nil {
		m.log.Warn().Err(err).Msg("failed to clear credential store")
	}
	m.api.ClearTokens()
	m.toUnauthenticated()
}

func (m *Manager) toAuthenticated(user sdk.UserProfile) {
	// Roles drive access decisions; accounts predating role lists get one
	// seeded from their user type.
	if len(user.Roles) == 0 && user.UserType != "" {
		user.Roles = []string{user.UserType.String()}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	u := user
	m.user = &u
	m.status = StatusAuthenticated
}

func (m *Manager) toUnauthenticated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = nil
	m.status = StatusUnauthenticated
}

func (m *Manager) setLoading(v bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loading = v
}

// defaultRoute picks the post-login landing page. The role list decides;
// the user type only seeds the choice when no roles are present.
func defaultRoute(user sdk.UserProfile) string {
	if len(user.Roles) > 0 {
		return guard.DefaultDashboard(user.Roles)
	}
	if user.UserType == sdk.UserTypeLawyer {
		return routes.AppLawyerRoot
	}
	return routes.AppClientRoot
}
