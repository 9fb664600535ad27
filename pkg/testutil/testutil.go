// Package testutil is the harness collaborator tests use to drive a built
// service in memory, without opening a socket.
package testutil

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

// Get submits a synthetic GET request for path against h.
func Get(h http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// AssertStatus fails the test unless a GET of path answers want.
func AssertStatus(t *testing.T, h http.Handler, path string, want int) {
	t.Helper()
	rec := Get(h, path)
	require.Equal(t, want, rec.Code, "GET %s", path)
}

// BodyString returns the raw body of a GET of path.
func BodyString(h http.Handler, path string) string {
	return Get(h, path).Body.String()
}

// BodyJSON parses the body of a GET of path, failing the test when the
// body is not valid JSON.
func BodyJSON(t *testing.T, h http.Handler, path string) gjson.Result {
	t.Helper()
	body := Get(h, path).Body.Bytes()
	require.True(t, gjson.ValidBytes(body), "GET %s: body is not valid JSON: %s", path, body)
	return gjson.ParseBytes(body)
}

// Field returns the dotted-path key from the JSON body of a GET of path.
func Field(t *testing.T, h http.Handler, path, key string) gjson.Result {
	t.Helper()
	return BodyJSON(t, h, path).Get(key)
}
