package admin

import (
	"errors"
	"net/http"
)

var (
	// ErrUpstream indicates the admin API answered with an unexpected status
	// or an unreadable body.
	ErrUpstream = errors.New("admin: upstream error")

	// ErrUnauthorized indicates the admin token was missing or rejected.
	ErrUnauthorized = errors.New("admin: unauthorized")
)

// MapHTTPStatus maps source errors to the status a console page should use.
func MapHTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusBadGateway
	}
}
