package handler_test

import (
	"encoding/xml"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cookiekit/handler"
)

func render(t *testing.T, resp handler.Response) (*httptest.ResponseRecorder, error) {
	t.Helper()
	rec := httptest.NewRecorder()
	err := resp.Render(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	return rec, err
}

func TestJSON(t *testing.T) {
	t.Parallel()

	rec, err := render(t, handler.JSON(map[string]string{"a": "b"}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"data":{"a":"b"}}`, rec.Body.String())

	rec, err = render(t, handler.JSONWithStatus("ok", http.StatusCreated))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestJSONError(t *testing.T) {
	t.Parallel()

	rec, err := render(t, handler.JSONError(handler.ErrNotFound))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":{"code":"not_found","message":"Not Found"}}`, rec.Body.String())

	rec, err = render(t, handler.JSONError(errors.New("db password is hunter2")))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "hunter2")
}

func TestJSONP(t *testing.T) {
	t.Parallel()

	rec, err := render(t, handler.JSONP("app.onData", []int{1, 2}))
	require.NoError(t, err)
	assert.Equal(t, "application/javascript; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "/**/app.onData([1,2]);", rec.Body.String())

	for _, bad := range []string{"", "alert(1)//", "a b", "1abc", "a..b"} {
		_, err := render(t, handler.JSONP(bad, nil))
		assert.ErrorIs(t, err, handler.ErrInvalidCallback, bad)
		assert.ErrorIs(t, err, handler.ErrBadRequest, bad)
	}
}

type item struct {
	XMLName xml.Name `xml:"item"`
	ID      int      `xml:"id,attr"`
	Name    string   `xml:"name"`
}

func TestXML(t *testing.T) {
	t.Parallel()

	rec, err := render(t, handler.XML(item{ID: 7, Name: "seven"}))
	require.NoError(t, err)
	assert.Equal(t, "application/xml; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, xml.Header+`<item id="7"><name>seven</name></item>`, rec.Body.String())
}

func TestTextEmptyRedirect(t *testing.T) {
	t.Parallel()

	rec, err := render(t, handler.Text("hi"))
	require.NoError(t, err)
	assert.Equal(t, "hi", rec.Body.String())
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))

	rec, err = render(t, handler.TextWithStatus("nope", http.StatusTeapot))
	require.NoError(t, err)
	assert.Equal(t, http.StatusTeapot, rec.Code)

	rec, err = render(t, handler.Empty())
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec, err = render(t, handler.EmptyWithStatus(http.StatusAccepted))
	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, rec.Code)

	rec, err = render(t, handler.Redirect("/login"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	rec, err = render(t, handler.RedirectWithCode("/moved", http.StatusMovedPermanently))
	require.NoError(t, err)
	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
}
