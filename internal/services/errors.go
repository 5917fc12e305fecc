package services

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used across services. Handlers map them onto HTTP statuses
// with errors.Is instead of matching message strings.
var (
	// ErrNotFound means a business, place, product or order could not be resolved.
	ErrNotFound = errors.New("not found")
	// ErrUpstream means a third-party API call failed or returned a non-success status.
	ErrUpstream = errors.New("upstream service failure")
	// ErrPaymentIncomplete means a checkout session exists but was not paid.
	ErrPaymentIncomplete = errors.New("payment not completed")
	// ErrConfig means a required credential is not configured.
	ErrConfig = errors.New("missing configuration")
	// ErrForbidden means the caller does not own the resource being modified.
	ErrForbidden = errors.New("forbidden")
)

// ValidationError reports the request fields that are missing or invalid.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: missing or invalid fields: %s", strings.Join(e.Fields, ", "))
}
