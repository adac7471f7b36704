// Package headers defines HTTP header constants used across the CaseLink platform.
// This is the single source of truth for header names used in API requests/responses.
package headers

const (
	// RequestID is the header for request correlation / idempotency.
	// Clients can supply this header for idempotency on retries.
	RequestID = "X-CaseLink-Request-Id"
)
