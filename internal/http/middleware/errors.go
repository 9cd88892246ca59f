package middleware

import "errors"

var (
	errNotAuthenticated = errors.New("Not authenticated")
	errInternal         = errors.New("Internal server error")
)
