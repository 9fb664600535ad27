package respond

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText(t *testing.T) {
	resp, err := Text("hello")(context.Background())
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.Equal(t, []byte("hello"), resp.Body)
	assert.Contains(t, resp.ContentType, "text/plain")
}

func TestJSONRoundTrip(t *testing.T) {
	resp, err := JSON(map[string]int{"a": 1})(context.Background())
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.Contains(t, resp.ContentType, "application/json")

	var got map[string]int
	require.NoError(t, json.Unmarshal(resp.Body, &got))
	assert.Equal(t, map[string]int{"a": 1}, got)
}

func TestJSONMarshalsPerInvocation(t *testing.T) {
	v := map[string]int{"n": 1}
	h := JSON(v)

	resp, err := h(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, `{"n":1}`, string(resp.Body))

	v["n"] = 2
	resp, err = h(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, `{"n":2}`, string(resp.Body))
}

func TestJSONUnserializableValueFailsAtInvocation(t *testing.T) {
	resp, err := JSON(func() {})(context.Background())
	assert.Error(t, err)
	assert.Nil(t, resp)
}

func TestHealthCheck(t *testing.T) {
	resp, err := HealthCheck()(context.Background())
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Status)

	var got struct {
		Status    string `json:"status"`
		Timestamp string `json:"timestamp"`
	}
	require.NoError(t, json.Unmarshal(resp.Body, &got))
	assert.Equal(t, "healthy", got.Status)

	_, err = time.Parse(time.RFC3339, got.Timestamp)
	assert.NoError(t, err)
}

func TestError(t *testing.T) {
	resp, err := Error("boom")(context.Background())
	assert.Nil(t, resp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestNotImplemented(t *testing.T) {
	resp, err := NotImplemented()(context.Background())
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotImplemented, resp.Status)
	assert.JSONEq(t, `{"error":"not implemented"}`, string(resp.Body))
}
