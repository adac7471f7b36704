package sdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/caselink/caselink-go/headers"
)

// APIError captures structured CaseLink API error metadata.
type APIError struct {
	Status    int
	Message   string
	RequestID string
}

// Error implements the error interface.
func (e APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("sdk: http %d", e.Status)
	}
	return fmt.Sprintf("sdk: http %d: %s", e.Status, e.Message)
}

func decodeAPIError(resp *http.Response) error {
	data, _ := io.ReadAll(resp.Body)
	apiErr := APIError{
		Status:    resp.StatusCode,
		RequestID: resp.Header.Get(headers.RequestID),
	}
	if len(data) == 0 {
		apiErr.Message = resp.Status
		return apiErr
	}
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &payload); err != nil || payload.Message == "" {
		apiErr.Message = string(data)
		return apiErr
	}
	apiErr.Message = payload.Message
	return apiErr
}

func statusIs(err error, status int) bool {
	var apiErr APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

// IsUnauthorized reports whether the error is an HTTP 401 from the API.
// After the client's single refresh-and-retry this means the session is gone.
func IsUnauthorized(err error) bool {
	return statusIs(err, http.StatusUnauthorized)
}

// IsForbidden reports whether the error is an HTTP 403 (role mismatch).
func IsForbidden(err error) bool {
	return statusIs(err, http.StatusForbidden)
}

// IsNotFound reports whether the error is an HTTP 404.
func IsNotFound(err error) bool {
	return statusIs(err, http.StatusNotFound)
}

// IsConflict reports whether the error is an HTTP 409, e.g. signing up
// with an email that is already registered.
func IsConflict(err error) bool {
	return statusIs(err, http.StatusConflict)
}
