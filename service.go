package gtasks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/oauth2"

	"github.com/teemow/gtasks/internal/instrumentation"
	"github.com/teemow/gtasks/internal/logging"
)

// BaseURL is the root of the Google Tasks API v1.
const BaseURL = "https://www.googleapis.com/tasks/v1"

// Service issues requests against the Google Tasks API. It is immutable
// after construction and safe for concurrent use; each method performs a
// single network round trip with no retries and no caching.
type Service struct {
	httpClient *http.Client
	baseURL    string
	provider   TokenProvider
	log        logging.Logger
	tracer     trace.Tracer
}

// Option customizes a Service at construction time.
type Option func(*Service)

// WithHTTPClient sets the HTTP client used for all requests. The client
// must be safe for concurrent use; http.DefaultClient semantics apply to
// timeouts and redirects.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Service) {
		if client != nil {
			s.httpClient = client
		}
	}
}

// WithBaseURL overrides the API base URL. Intended for tests and proxies.
func WithBaseURL(baseURL string) Option {
	return func(s *Service) {
		if baseURL != "" {
			s.baseURL = strings.TrimSuffix(baseURL, "/")
		}
	}
}

// WithLogger enables debug logging of API calls through the given
// slog.Logger. Without it the Service logs nothing.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.log = logging.NewSlogAdapter(logger)
		}
	}
}

// WithTracerProvider sets the OpenTelemetry tracer provider used for
// per-call spans. The default is the global provider, which is a no-op
// unless the caller installed one.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *Service) {
		if tp != nil {
			s.tracer = tp.Tracer(instrumentation.TracerName)
		}
	}
}

// New creates a Service that obtains a bearer token from provider on
// every request.
func New(provider TokenProvider, opts ...Option) (*Service, error) {
	if provider == nil {
		return nil, fmt.Errorf("gtasks: token provider must not be nil")
	}

	s := &Service{
		httpClient: http.DefaultClient,
		baseURL:    BaseURL,
		provider:   provider,
		log:        logging.Discard(),
		tracer:     otel.Tracer(instrumentation.TracerName),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// NewWithToken creates a Service from a pre-fetched bearer token.
func NewWithToken(token string, opts ...Option) (*Service, error) {
	return New(StaticToken(token), opts...)
}

// NewWithTokenFunc creates a Service from a token-producing callable,
// invoked fresh on every request. The callable may be invoked concurrently
// by in-flight calls and must be safe for that.
func NewWithTokenFunc(fn func() (string, error), opts ...Option) (*Service, error) {
	if fn == nil {
		return nil, fmt.Errorf("gtasks: token func must not be nil")
	}
	return New(TokenProviderFunc(fn), opts...)
}

// NewWithTokenSource creates a Service from an oauth2.TokenSource, e.g. one
// built from an oauth2.Config with a refresh token.
func NewWithTokenSource(ts oauth2.TokenSource, opts ...Option) (*Service, error) {
	if ts == nil {
		return nil, fmt.Errorf("gtasks: token source must not be nil")
	}
	return New(TokenSource(ts), opts...)
}

// call describes one API request.
type call struct {
	// op names the remote operation, e.g. "tasks.list".
	op string

	// method is the HTTP verb.
	method string

	// path is the URL path below the base URL, starting with "/".
	// Path parameters must already be escaped.
	path string

	// query holds the encoded option record, may be empty.
	query url.Values

	// body is marshaled as the JSON request body when non-nil.
	body any

	// taskListID and taskID annotate the call's span.
	taskListID string
	taskID     string
}

// do runs one API call: obtain token, build request, single round trip,
// decode into out. A nil out discards the response body (used for DELETE
// and clear, which return 204 No Content).
func (s *Service) do(ctx context.Context, c call, out any) (err error) {
	ctx, span := s.tracer.Start(ctx, c.op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(instrumentation.CallAttributes(c.op, c.method, c.taskListID, c.taskID)...))
	defer func() { instrumentation.EndSpan(span, err) }()

	token, err := s.provider.Token(ctx)
	if err != nil {
		return &AuthError{Err: err}
	}

	u := s.baseURL + c.path
	if len(c.query) > 0 {
		u += "?" + c.query.Encode()
	}

	var body io.Reader
	if c.body != nil {
		data, err := json.Marshal(c.body)
		if err != nil {
			return fmt.Errorf("gtasks: encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, c.method, u, body)
	if err != nil {
		return fmt.Errorf("gtasks: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if c.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return &TransportError{Op: c.op, URL: u, Err: err}
	}
	defer resp.Body.Close()

	instrumentation.RecordStatus(span, resp.StatusCode)
	s.log.Debug("tasks api call",
		"op", c.op,
		"method", c.method,
		"url", u,
		"status", resp.StatusCode,
		"duration", time.Since(start))

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Op: c.op, URL: u, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, data)
	}

	// 204 and other bodiless successes decode to the zero result.
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return &DecodeError{Err: err}
	}
	return nil
}
