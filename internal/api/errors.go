package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrAPIKeyMissing is returned before any network call when no credential is
// configured
var ErrAPIKeyMissing = errors.New("OpenWeatherMap API key is not configured.")

// CityNotFoundError means the upstream API returned 404 for the requested city
type CityNotFoundError struct {
	City string
}

func (e *CityNotFoundError) Error() string {
	return fmt.Sprintf("Could not find weather data for '%s'. Please check the spelling.", e.City)
}

// APIError covers any other non-2xx response from the upstream API
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("An API error occurred: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// NetworkError covers transport-level failures (DNS, connection refused)
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("A network error occurred: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
