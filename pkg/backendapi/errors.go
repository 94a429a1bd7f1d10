package backendapi

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a backend response with a non-success status code, carrying
// the backend's detail message verbatim so callers can surface it as-is.
type APIError struct {
	StatusCode int    `json:"status_code"`
	Detail     string `json:"detail"`
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	switch {
	case e.StatusCode == http.StatusUnauthorized:
		return "authentication required: please log in to continue"
	case e.StatusCode == http.StatusNotFound:
		return "not found: the requested resource does not exist"
	case e.StatusCode == http.StatusBadRequest || e.StatusCode == http.StatusUnprocessableEntity:
		return "bad request: the server could not process your request"
	case e.StatusCode >= 500:
		return "server error: something went wrong on the server"
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// IsAuthRequired reports whether err means the caller must (re)login.
func IsAuthRequired(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// IsValidation reports whether err is a malformed-request rejection.
func IsValidation(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) &&
		(apiErr.StatusCode == http.StatusBadRequest || apiErr.StatusCode == http.StatusUnprocessableEntity)
}

func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

func IsServerError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode >= 500
}
