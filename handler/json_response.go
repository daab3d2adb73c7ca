package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
)

// Envelope is the body written by JSON and JSONError.
type Envelope struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail describes a failed request.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type jsonResponse struct {
	status int
	body   Envelope
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSON wraps v in an Envelope and renders it with status 200.
func JSON(v any) Response {
	return jsonResponse{status: http.StatusOK, body: Envelope{Data: v}}
}

// JSONWithStatus is JSON with a custom status code.
func JSONWithStatus(v any, status int) Response {
	return jsonResponse{status: status, body: Envelope{Data: v}}
}

// JSONError renders err as an ErrorDetail. HTTPError values keep their
// status and key; anything else becomes a 500 without leaking its text.
func JSONError(err error) Response {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return jsonResponse{
			status: httpErr.Code,
			body: Envelope{Error: &ErrorDetail{
				Code:    httpErr.Key,
				Message: http.StatusText(httpErr.Code),
			}},
		}
	}
	return jsonResponse{
		status: http.StatusInternalServerError,
		body: Envelope{Error: &ErrorDetail{
			Code:    ErrInternalServerError.Key,
			Message: http.StatusText(http.StatusInternalServerError),
		}},
	}
}

var callbackPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*(\.[A-Za-z_$][A-Za-z0-9_$]*)*$`)

type jsonpResponse struct {
	callback string
	v        any
}

func (j jsonpResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !callbackPattern.MatchString(j.callback) {
		return errors.Join(ErrBadRequest, ErrInvalidCallback)
	}
	body, err := json.Marshal(j.v)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	_, err = fmt.Fprintf(w, "/**/%s(%s);", j.callback, body)
	return err
}

// JSONP renders v as a call to callback. Callbacks must be dotted
// JavaScript identifiers; anything else fails with ErrBadRequest.
func JSONP(callback string, v any) Response {
	return jsonpResponse{callback: callback, v: v}
}
