// Package respond holds canned handler factories for the common response
// shapes services register against the route table.
package respond

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ranorsolutions/route-common-go/pkg/route"
)

// Text returns a handler that always succeeds with a 200 text/plain body.
func Text(body string) route.HandlerFunc {
	return func(ctx context.Context) (*route.Response, error) {
		return &route.Response{
			Status:      http.StatusOK,
			ContentType: "text/plain; charset=utf-8",
			Body:        []byte(body),
		}, nil
	}
}

// JSON returns a handler that succeeds with a 200 application/json body,
// marshaling v on every invocation. Passing a non-serializable value is a
// programmer error; when it happens anyway the marshal failure surfaces as
// a handler error rather than a panic.
func JSON(v any) route.HandlerFunc {
	return func(ctx context.Context) (*route.Response, error) {
		body, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("marshal response body: %w", err)
		}
		return &route.Response{
			Status:      http.StatusOK,
			ContentType: "application/json; charset=utf-8",
			Body:        body,
		}, nil
	}
}

type health struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// HealthCheck returns a handler reporting service liveness with the current
// wall-clock time in RFC 3339 form.
func HealthCheck() route.HandlerFunc {
	return func(ctx context.Context) (*route.Response, error) {
		body, err := json.Marshal(health{
			Status:    "healthy",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
		if err != nil {
			return nil, err
		}
		return &route.Response{
			Status:      http.StatusOK,
			ContentType: "application/json; charset=utf-8",
			Body:        body,
		}, nil
	}
}

// Error returns a handler that always fails with message. The dispatcher
// renders the failure as an HTTP 500 carrying the message.
func Error(message string) route.HandlerFunc {
	return func(ctx context.Context) (*route.Response, error) {
		return nil, errors.New(message)
	}
}

// NotImplemented returns a handler answering 501, for routes declared
// before their implementation lands.
func NotImplemented() route.HandlerFunc {
	return func(ctx context.Context) (*route.Response, error) {
		return &route.Response{
			Status:      http.StatusNotImplemented,
			ContentType: "application/json; charset=utf-8",
			Body:        []byte(`{"error":"not implemented"}`),
		}, nil
	}
}
