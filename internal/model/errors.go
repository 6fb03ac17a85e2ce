package model

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound is returned when a resource is not found.
	ErrNotFound = errors.New("not found")
	// ErrNotValid is returned when a resource is not valid.
	ErrNotValid = errors.New("not valid")
)

// APIError is an error returned by the backend API on a non-2xx response.
// Detail carries the server provided message when present.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e APIError) Error() string {
	return fmt.Sprintf("api error (HTTP %d): %s", e.StatusCode, e.Detail)
}

// Is makes 404 API errors match ErrNotFound so callers can check with
// errors.Is without caring about the transport.
func (e APIError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}
