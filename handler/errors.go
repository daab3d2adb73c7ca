package handler

import (
	"errors"
	"net/http"
)

var (
	// ErrNilResponse indicates a handler returned nil instead of a Response
	ErrNilResponse = errors.New("handler returned nil response")
	// ErrBinderNotApplicable lets a binder skip requests it does not handle
	ErrBinderNotApplicable = errors.New("binder not applicable")
	// ErrInvalidCallback indicates a JSONP callback that is not a plain identifier
	ErrInvalidCallback = errors.New("invalid JSONP callback name")
)

// HTTPError is an error carrying an HTTP status code and a stable key
// suitable for clients and translation lookups.
type HTTPError struct {
	Code int
	Key  string
}

func (e HTTPError) Error() string {
	return e.Key
}

var (
	ErrBadRequest           = HTTPError{Code: http.StatusBadRequest, Key: "bad_request"}
	ErrUnauthorized         = HTTPError{Code: http.StatusUnauthorized, Key: "unauthorized"}
	ErrForbidden            = HTTPError{Code: http.StatusForbidden, Key: "forbidden"}
	ErrNotFound             = HTTPError{Code: http.StatusNotFound, Key: "not_found"}
	ErrMethodNotAllowed     = HTTPError{Code: http.StatusMethodNotAllowed, Key: "method_not_allowed"}
	ErrUnsupportedMediaType = HTTPError{Code: http.StatusUnsupportedMediaType, Key: "unsupported_media_type"}
	ErrInternalServerError  = HTTPError{Code: http.StatusInternalServerError, Key: "internal_server_error"}
)
