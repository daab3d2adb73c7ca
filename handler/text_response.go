package handler

import (
	"encoding/xml"
	"io"
	"net/http"
)

type xmlResponse struct {
	status int
	v      any
}

func (x xmlResponse) Render(w http.ResponseWriter, r *http.Request) error {
	body, err := xml.Marshal(x.v)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.WriteHeader(x.status)
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	_, err = w.Write(body)
	return err
}

// XML renders v with encoding/xml, prefixed by the standard XML header.
func XML(v any) Response {
	return xmlResponse{status: http.StatusOK, v: v}
}

type textResponse struct {
	status int
	body   string
}

func (t textResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(t.status)
	_, err := io.WriteString(w, t.body)
	return err
}

// Text renders s as text/plain with status 200.
func Text(s string) Response {
	return textResponse{status: http.StatusOK, body: s}
}

// TextWithStatus is Text with a custom status code.
func TextWithStatus(s string, status int) Response {
	return textResponse{status: status, body: s}
}

type emptyResponse struct {
	status int
}

func (e emptyResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.WriteHeader(e.status)
	return nil
}

// Empty writes 204 No Content.
func Empty() Response {
	return emptyResponse{status: http.StatusNoContent}
}

// EmptyWithStatus writes status without a body.
func EmptyWithStatus(status int) Response {
	return emptyResponse{status: status}
}

type redirectResponse struct {
	url  string
	code int
}

func (rr redirectResponse) Render(w http.ResponseWriter, r *http.Request) error {
	http.Redirect(w, r, rr.url, rr.code)
	return nil
}

// Redirect responds with 303 See Other.
//
//	return handler.Redirect("/login")
func Redirect(url string) Response {
	return redirectResponse{url: url, code: http.StatusSeeOther}
}

// RedirectWithCode responds with the given 3xx code.
func RedirectWithCode(url string, code int) Response {
	return redirectResponse{url: url, code: code}
}
