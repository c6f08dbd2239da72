package services

import (
	"errors"

	"ovhtui/internal/ovh"
)

// Standard service errors surfaced by the account data layer
var (
	// Network and connectivity errors
	ErrNetworkUnavailable = errors.New("network unavailable")
	ErrTimeout            = errors.New("operation timed out")
	ErrUnauthorized       = errors.New("unauthorized access")

	// Data errors
	ErrNotFound      = errors.New("resource not found")
	ErrInvalidInput  = errors.New("invalid input provided")
	ErrInvalidFormat = errors.New("invalid format")

	// Upstream errors
	ErrServiceUnavailable = errors.New("service unavailable")
	ErrUpstreamRejected   = errors.New("upstream rejected request")
)

// IsRetryableError determines if an error is worth a manual refresh
func IsRetryableError(err error) bool {
	return errors.Is(err, ErrNetworkUnavailable) ||
		errors.Is(err, ErrTimeout) ||
		errors.Is(err, ErrServiceUnavailable)
}

// IsPermanentError determines if an error will not recover on retry
func IsPermanentError(err error) bool {
	return errors.Is(err, ErrUnauthorized) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrInvalidFormat)
}

// UserMessage extracts the best available detail for the status line:
// the upstream-provided message when present, generic transport text
// otherwise.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *ovh.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return "request to account proxy failed"
}
