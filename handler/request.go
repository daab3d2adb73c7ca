package handler

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strconv"
	"strings"
)

// ParamString returns the first value of query or form parameter name.
// ok is false when the parameter is absent.
func ParamString(r *http.Request, name string) (string, bool) {
	if err := r.ParseForm(); err != nil {
		return "", false
	}
	values, ok := r.Form[name]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// ParamInt parses parameter name as a base-10 int. ok is false when the
// parameter is absent or not a valid integer.
func ParamInt(r *http.Request, name string) (int, bool) {
	s, ok := ParamString(r, name)
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParamInt64 is ParamInt for int64.
func ParamInt64(r *http.Request, name string) (int64, bool) {
	s, ok := ParamString(r, name)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// BindJSON decodes a JSON request body into v. Requests without a JSON
// content type return ErrBinderNotApplicable so other binders can run.
func BindJSON(r *http.Request, v any) error {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		return ErrBinderNotApplicable
	}
	if r.Body == nil || r.Body == http.NoBody {
		return errors.Join(ErrBadRequest, errors.New("empty request body"))
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Join(ErrBadRequest, err)
	}
	return nil
}

// HTTPMethod is the coarse method class handlers switch on.
type HTTPMethod int

const (
	MethodOther HTTPMethod = iota
	MethodGet
	MethodPost
	MethodOptions
)

func (m HTTPMethod) String() string {
	switch m {
	case MethodGet:
		return "GET"
	case MethodPost:
		return "POST"
	case MethodOptions:
		return "OPTIONS"
	default:
		return "OTHER"
	}
}

// Method classifies the request method, ignoring case.
func Method(r *http.Request) HTTPMethod {
	switch {
	case strings.EqualFold(r.Method, http.MethodGet):
		return MethodGet
	case strings.EqualFold(r.Method, http.MethodPost):
		return MethodPost
	case strings.EqualFold(r.Method, http.MethodOptions):
		return MethodOptions
	default:
		return MethodOther
	}
}
