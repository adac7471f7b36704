// Package guard holds the pure route-access decisions for the CaseLink
// frontend. Deciding and navigating are separate: functions here return a
// Decision, and the caller performs the effect through a Navigator.
package guard

import (
	sdk "github.com/caselink/caselink-go"
	"github.com/caselink/caselink-go/routes"
)

// Action is the outcome kind of a guard decision.
type Action string

const (
	// ActionPending means session boot has not finished; render a neutral
	// loading indicator and decide again once loading completes.
	ActionPending Action = "pending"
	// ActionAllow means the requested content may render.
	ActionAllow Action = "allow"
	// ActionRedirect means navigation must go to Decision.Target instead.
	ActionRedirect Action = "redirect"
)

// State is the session snapshot a guard decision consumes.
type State struct {
	IsLoading       bool
	IsAuthenticated bool
	Roles           []string
}

// Decision is the result of evaluating a guard for one route.
type Decision struct {
	Action Action
	// Target is the route to navigate to when Action is ActionRedirect.
	Target string
	// CaptureOrigin marks a login redirect that should remember the
	// requested route so login can return to it.
	CaptureOrigin bool
}

// DefaultDashboard returns the landing route for the user's primary role:
// the lawyer dashboard when the lawyer role is present, else the client one.
func DefaultDashboard(userRoles []string) string {
	for _, role := range userRoles {
		if role == sdk.RoleLawyer {
			return routes.AppLawyerRoot
		}
	}
	return routes.AppClientRoot
}

// Decide evaluates a protected route. Rendering is allowed iff the user is
// authenticated and shares at least one role with allowedRoles; an empty
// allowedRoles admits any authenticated user.
func Decide(s State, allowedRoles []string) Decision {
	if s.IsLoading {
		return Decision{Action: ActionPending}
	}
	if !s.IsAuthenticated {
		return Decision{Action: ActionRedirect, Target: routes.AppLogin, CaptureOrigin: true}
	}
	if len(allowedRoles) > 0 && !hasAny(s.Roles, allowedRoles) {
		return Decision{Action: ActionRedirect, Target: DefaultDashboard(s.Roles)}
	}
	return Decision{Action: ActionAllow}
}

// DecidePublicOnly evaluates a public-only route (login, signup, marketing
// pages): authenticated users are sent to their dashboard instead.
func DecidePublicOnly(s State) Decision {
	if s.IsLoading {
		return Decision{Action: ActionPending}
	}
	if s.IsAuthenticated {
		return Decision{Action: ActionRedirect, Target: DefaultDashboard(s.Roles)}
	}
	return Decision{Action: ActionAllow}
}

// DecideUnmatched evaluates the catch-all route. Authenticated users land on
// their dashboard; everyone else is sent to signup rather than login, so an
// unknown link converts a visitor instead of assuming an account exists.
func DecideUnmatched(s State) Decision {
	if s.IsAuthenticated && len(s.Roles) > 0 {
		return Decision{Action: ActionRedirect, Target: DefaultDashboard(s.Roles)}
	}
	return Decision{Action: ActionRedirect, Target: routes.AppSignup}
}

func hasAny(userRoles, allowed []string) bool {
	for _, role := range userRoles {
		for _, a := range allowed {
			if role == a {
				return true
			}
		}
	}
	return false
}
