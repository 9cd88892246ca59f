package handlers

import "errors"

var errNotAuthenticated = errors.New("Not authenticated")
