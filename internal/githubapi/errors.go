package githubapi

import (
	"fmt"
	"net/http"
)

// APIError represents a failed call against the code-hosting API.
type APIError struct {
	Path       string
	StatusCode int
	Message    string
	Cause      error
}

func (e *APIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("github api error for %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("github api error for %s: %s", e.Path, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Cause
}

// IsNotFound reports whether the error is a 404 for an unknown user or repo.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsRateLimited reports whether the API rejected the call for quota reasons.
func (e *APIError) IsRateLimited() bool {
	return e.StatusCode == http.StatusForbidden || e.StatusCode == http.StatusTooManyRequests
}
