package guard

import (
	"testing"

	"github.com/stretchr/testify/require"

	sdk "github.com/caselink/caselink-go"
	"github.com/caselink/caselink-go/routes"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		name    string
		state   State
		allowed []string
		want    Decision
	}{
		{
			name:  "loading suppresses the decision",
			state: State{IsLoading: true},
			want:  Decision{Action: ActionPending},
		},
		{
			name:  "loading wins even when authenticated",
			state: State{IsLoading: true, IsAuthenticated: true, Roles: []string{sdk.RoleClient}},
			want:  Decision{Action: ActionPending},
		},
		{
			name:    "anonymous is sent to login with origin capture",
			state:   State{},
			allowed: []string{sdk.RoleClient},
			want:    Decision{Action: ActionRedirect, Target: routes.AppLogin, CaptureOrigin: true},
		},
		{
			name:    "matching role renders",
			state:   State{IsAuthenticated: true, Roles: []string{sdk.RoleClient}},
			allowed: []string{sdk.RoleClient},
			want:    Decision{Action: ActionAllow},
		},
		{
			name:    "client on a lawyer route lands on the client dashboard",
			state:   State{IsAuthenticated: true, Roles: []string{sdk.RoleClient}},
			allowed: []string{sdk.RoleLawyer},
			want:    Decision{Action: ActionRedirect, Target: routes.AppClientRoot},
		},
		{
			name:    "lawyer on a client route lands on the lawyer dashboard",
			state:   State{IsAuthenticated: true, Roles: []string{sdk.RoleLawyer}},
			allowed: []string{sdk.RoleClient},
			want:    Decision{Action: ActionRedirect, Target: routes.AppLawyerRoot},
		},
		{
			name:    "any shared role suffices",
			state:   State{IsAuthenticated: true, Roles: []string{sdk.RoleClient, sdk.RoleLawyer}},
			allowed: []string{sdk.RoleLawyer},
			want:    Decision{Action: ActionAllow},
		},
		{
			name:  "empty allow list admits any authenticated user",
			state: State{IsAuthenticated: true, Roles: []string{sdk.RoleClient}},
			want:  Decision{Action: ActionAllow},
		},
		{
			name:    "authenticated user with no roles is redirected",
			state:   State{IsAuthenticated: true},
			allowed: []string{sdk.RoleClient},
			want:    Decision{Action: ActionRedirect, Target: routes.AppClientRoot},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Decide(tc.state, tc.allowed))
		})
	}
}

func TestDecidePublicOnly(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  Decision
	}{
		{
			name:  "loading suppresses the decision",
			state: State{IsLoading: true},
			want:  Decision{Action: ActionPending},
		},
		{
			name:  "anonymous renders",
			state: State{},
			want:  Decision{Action: ActionAllow},
		},
		{
			name:  "authenticated client is bounced to the client dashboard",
			state: State{IsAuthenticated: true, Roles: []string{sdk.RoleClient}},
			want:  Decision{Action: ActionRedirect, Target: routes.AppClientRoot},
		},
		{
			name:  "authenticated lawyer is bounced to the lawyer dashboard",
			state: State{IsAuthenticated: true, Roles: []string{sdk.RoleLawyer}},
			want:  Decision{Action: ActionRedirect, Target: routes.AppLawyerRoot},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, DecidePublicOnly(tc.state))
		})
	}
}

func TestDecideUnmatched(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  Decision
	}{
		{
			name:  "anonymous on an unknown link is sent to signup, not login",
			state: State{},
			want:  Decision{Action: ActionRedirect, Target: routes.AppSignup},
		},
		{
			name:  "authenticated client lands on their dashboard",
			state: State{IsAuthenticated: true, Roles: []string{sdk.RoleClient}},
			want:  Decision{Action: ActionRedirect, Target: routes.AppClientRoot},
		},
		{
			name:  "authenticated lawyer lands on their dashboard",
			state: State{IsAuthenticated: true, Roles: []string{sdk.RoleLawyer}},
			want:  Decision{Action: ActionRedirect, Target: routes.AppLawyerRoot},
		},
		{
			name:  "authenticated without roles falls back to signup",
			state: State{IsAuthenticated: true},
			want:  Decision{Action: ActionRedirect, Target: routes.AppSignup},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, DecideUnmatched(tc.state))
		})
	}
}

func TestDefaultDashboard(t *testing.T) {
	require.Equal(t, routes.AppLawyerRoot, DefaultDashboard([]string{sdk.RoleLawyer}))
	require.Equal(t, routes.AppLawyerRoot, DefaultDashboard([]string{sdk.RoleClient, sdk.RoleLawyer}))
	require.Equal(t, routes.AppClientRoot, DefaultDashboard([]string{sdk.RoleClient}))
	require.Equal(t, routes.AppClientRoot, DefaultDashboard(nil))
}

func TestNavigatorFunc(t *testing.T) {
	var got string
	nav := NavigatorFunc(func(route string) { got = route })
	nav.Navigate(routes.AppLogin)
	require.Equal(t, routes.AppLogin, got)
}
