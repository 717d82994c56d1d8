package gtasks

import (
	"encoding/json"
	"fmt"
	"strings"
)

// AuthError reports that the token provider failed to produce a token.
// It is returned before any network request is issued.
type AuthError struct {
	// Err is the underlying provider error.
	Err error
}

// Error implements the error interface
func (e *AuthError) Error() string {
	return fmt.Sprintf("gtasks: obtain token: %v", e.Err)
}

// Unwrap implements the errors.Unwrap interface
func (e *AuthError) Unwrap() error {
	return e.Err
}

// TransportError reports a network-level failure (DNS, TLS, timeout,
// cancelled context) before a response was obtained.
type TransportError struct {
	// Op is the operation that failed, e.g. "tasks.list".
	Op string

	// URL is the request URL.
	URL string

	// Err is the underlying transport error.
	Err error
}

// Error implements the error interface
func (e *TransportError) Error() string {
	return fmt.Sprintf("gtasks: %s %s: %v", e.Op, e.URL, e.Err)
}

// Unwrap implements the errors.Unwrap interface
func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError reports a non-2xx response from the Tasks API.
type APIError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int

	// Message is the server-provided error message if the body carried
	// the standard Google error envelope, otherwise the raw body text.
	Message string

	// Body is the raw response body.
	Body []byte
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("gtasks: server returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("gtasks: server returned %d", e.StatusCode)
}

// DecodeError reports a 2xx response whose body did not match the
// expected schema.
type DecodeError struct {
	// Err is the underlying JSON error.
	Err error
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	return fmt.Sprintf("gtasks: decode response: %v", e.Err)
}

// Unwrap implements the errors.Unwrap interface
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// errorEnvelope is the standard Google API error body:
// {"error": {"code": 404, "message": "not found", ...}}
type errorEnvelope struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// newAPIError builds an APIError from a non-2xx response body, preferring
// the message from the Google error envelope when the body parses as one.
func newAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: statusCode,
		Body:       body,
	}

	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		apiErr.Message = envelope.Error.Message
		return apiErr
	}

	apiErr.Message = strings.TrimSpace(string(body))
	return apiErr
}
