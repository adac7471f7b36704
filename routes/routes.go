// Package routes provides shared route constants used by both
// the API server and frontend clients to prevent path mismatches.
package routes

// API route paths - these constants are shared between server and clients
// to ensure compile-time safety and prevent endpoint mismatches.
const (
	// AuthLogin exchanges email/password for an access/refresh token pair.
	AuthLogin = "/auth/login"

	// AuthSignup creates a new client or lawyer account.
	AuthSignup = "/auth/signup"

	// AuthRefresh rotates the access token. The refresh token is presented
	// as the bearer credential.
	AuthRefresh = "/auth/refresh" // #nosec G101 -- route path, not a credential

	// AuthMe returns the current authenticated user's profile.
	AuthMe = "/auth/me"

	// AuthLogout revokes the presented access token server-side.
	AuthLogout = "/auth/logout"

	// AuthForgotPassword triggers a password reset email.
	AuthForgotPassword = "/auth/forgot-password" // #nosec G101 -- route path, not a credential

	// CaseReport files a new case for the authenticated client.
	CaseReport = "/report"

	// ClientCases lists the authenticated client's cases.
	ClientCases = "/client/cases"

	// CaseByID returns full details for a single case.
	CaseByID = "/case/{case_id}"

	// CaseAddComment appends a comment to a case.
	CaseAddComment = "/add-comment/{case_id}"

	// CaseUpdateStatus updates the status of a case assigned to the lawyer.
	CaseUpdateStatus = "/update-case-status/{case_id}"

	// LawyerAvailableCases lists unassigned cases a lawyer may accept.
	LawyerAvailableCases = "/available-cases"

	// LawyerAssignedCases lists cases assigned to the authenticated lawyer.
	LawyerAssignedCases = "/assigned-cases"

	// LawyerAcceptCase assigns an available case to the authenticated lawyer.
	LawyerAcceptCase = "/accept-case/{case_id}"

	// ClientDashboard returns summary data for the client dashboard.
	ClientDashboard = "/client/dashboard"

	// ClientFindLawyers lists lawyers a client can browse and contact.
	ClientFindLawyers = "/client/find-lawyers"

	// LawyerDashboard returns summary data for the lawyer dashboard.
	LawyerDashboard = "/lawyer/dashboard"

	// LawyerProfile reads (GET) or updates (PUT) the authenticated lawyer's
	// public profile.
	LawyerProfile = "/lawyer/profile"
)

// Application route paths - the navigable surface of the frontend. Guard
// decisions and session redirects target these.
const (
	// AppHome is the public landing page.
	AppHome = "/"

	// AppServices is the public services page.
	AppServices = "/services"

	// AppContact is the public contact page.
	AppContact = "/contact"

	// AppLogin is the login form.
	AppLogin = "/login"

	// AppSignup is the account creation form.
	AppSignup = "/signup"

	// AppForgotPassword is the password reset request form.
	AppForgotPassword = "/forgot-password" // #nosec G101 -- route path, not a credential

	// AppClientRoot is the client dashboard root (default client landing).
	AppClientRoot = "/client"

	// AppClientCases lists the client's active cases.
	AppClientCases = "/client/cases"

	// AppClientReport is the case intake form.
	AppClientReport = "/client/report"

	// AppClientFindLawyer is the lawyer directory page.
	AppClientFindLawyer = "/client/find-lawyer"

	// AppLawyerRoot is the lawyer dashboard root (default lawyer landing).
	AppLawyerRoot = "/lawyer"

	// AppLawyerAssigned lists cases assigned to the lawyer.
	AppLawyerAssigned = "/lawyer/assigned"

	// AppLawyerAvailable lists cases the lawyer may accept.
	AppLawyerAvailable = "/lawyer/available"
)
