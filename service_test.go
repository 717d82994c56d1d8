package gtasks

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestService spins up an httptest server and a Service pointed at it
// with a static token.
func newTestService(t *testing.T, handler http.HandlerFunc) *Service {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	svc, err := NewWithToken("test-token", WithBaseURL(srv.URL))
	require.NoError(t, err)
	return svc
}

func TestNew_NilProvider(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)
}

func TestNewWithTokenFunc_NilFunc(t *testing.T) {
	_, err := NewWithTokenFunc(nil)
	assert.Error(t, err)
}

func TestNewWithTokenSource_NilSource(t *testing.T) {
	_, err := NewWithTokenSource(nil)
	assert.Error(t, err)
}

func TestService_AuthorizationHeader(t *testing.T) {
	var got []string
	handler := func(w http.ResponseWriter, r *http.Request) {
		got = append(got, r.Header.Get("Authorization"))
		fmt.Fprint(w, `{}`)
	}

	srv := httptest.NewServer(http.HandlerFunc(handler))
	defer srv.Close()

	svc, err := NewWithToken("T", WithBaseURL(srv.URL))
	require.NoError(t, err)

	ctx := context.Background()
	_, err = svc.ListTaskLists(ctx, nil)
	require.NoError(t, err)
	_, err = svc.GetTask(ctx, "l", "t")
	require.NoError(t, err)
	require.NoError(t, svc.DeleteTask(ctx, "l", "t"))

	require.Len(t, got, 3)
	for _, header := range got {
		assert.Equal(t, "Bearer T", header)
	}
}

func TestService_AuthErrorBeforeRequest(t *testing.T) {
	requests := 0
	handler := func(w http.ResponseWriter, r *http.Request) {
		requests++
		fmt.Fprint(w, `{}`)
	}

	srv := httptest.NewServer(http.HandlerFunc(handler))
	defer srv.Close()

	svc, err := NewWithTokenFunc(func() (string, error) {
		return "", errors.New("refresh failed")
	}, WithBaseURL(srv.URL))
	require.NoError(t, err)

	_, err = svc.ListTasks(context.Background(), "list-1", nil)

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.ErrorContains(t, authErr, "refresh failed")
	assert.Zero(t, requests, "no network request may be issued when the provider fails")
}

func TestService_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	svc, err := NewWithToken("T", WithBaseURL(srv.URL))
	require.NoError(t, err)

	_, err = svc.GetTaskList(context.Background(), "list-1")

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, "tasklists.get", transportErr.Op)
}

func TestService_ContextCancellation(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{}`)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.ListTaskLists(ctx, nil)

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestService_DecodeError(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"items": "not-an-array"}`)
	})

	_, err := svc.ListTasks(context.Background(), "list-1", nil)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
}

func TestService_EmptySuccessBody(t *testing.T) {
	// A 2xx with no body decodes to the zero result, not an error.
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	got, err := svc.GetTask(context.Background(), "list-1", "task-1")
	require.NoError(t, err)
	assert.Equal(t, &Task{}, got)
}

func TestService_APIErrorEnvelope(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{
			name:        "google error envelope",
			status:      404,
			body:        `{"error":{"code":404,"message":"not found"}}`,
			wantMessage: "not found",
		},
		{
			name:        "plain text body",
			status:      500,
			body:        "backend exploded",
			wantMessage: "backend exploded",
		},
		{
			name:        "json body without envelope",
			status:      400,
			body:        `{"reason":"bad"}`,
			wantMessage: `{"reason":"bad"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			})

			_, err := svc.GetTask(context.Background(), "list-1", "task-1")

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
			assert.Equal(t, tt.body, string(apiErr.Body))
		})
	}
}

func TestWithLogger_DebugOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{}`)
	}))
	defer srv.Close()

	svc, err := NewWithToken("T", WithBaseURL(srv.URL), WithLogger(logger))
	require.NoError(t, err)

	_, err = svc.ListTaskLists(context.Background(), nil)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "tasks api call")
	assert.Contains(t, out, "op=tasklists.list")
	assert.Contains(t, out, "status=200")
}

func TestWithBaseURL_TrailingSlash(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/@me/lists", r.URL.Path)
		fmt.Fprint(w, `{}`)
	}))
	defer srv.Close()

	svc, err := NewWithToken("T", WithBaseURL(srv.URL+"/"))
	require.NoError(t, err)

	_, err = svc.ListTaskLists(context.Background(), nil)
	require.NoError(t, err)
}
