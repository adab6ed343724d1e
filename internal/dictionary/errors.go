package dictionary

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the API has no entry for the word
	ErrNotFound = errors.New("no definitions found")

	// ErrUnexpectedStatus is returned for non-2xx responses other than 404
	ErrUnexpectedStatus = errors.New("unexpected status")

	// ErrMalformedResponse is returned when the body is not the expected shape
	ErrMalformedResponse = errors.New("malformed response")

	// ErrUnavailable is returned while the circuit breaker is open
	ErrUnavailable = errors.New("dictionary service unavailable")
)

// APIError is the error body the API sends with non-2xx responses
type APIError struct {
	StatusCode int    `json:"-"`
	Title      string `json:"title"`
	Message    string `json:"message"`
	Resolution string `json:"resolution"`
}

func (e *APIError) Error() string {
	if e.Title != "" {
		return fmt.Sprintf("dictionary api: %d %s", e.StatusCode, e.Title)
	}
	return fmt.Sprintf("dictionary api: status %d", e.StatusCode)
}

// Unwrap maps the status code onto the package sentinels
func (e *APIError) Unwrap() error {
	if e.StatusCode == 404 {
		return ErrNotFound
	}
	return ErrUnexpectedStatus
}
