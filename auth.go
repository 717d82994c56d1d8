package gtasks

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
)

// TokenProvider supplies a bearer token for each API request.
//
// The Service invokes the provider fresh on every call and never caches the
// result, so short-lived tokens stay valid for the duration of a request.
// Providers may be invoked concurrently by multiple in-flight calls; a
// provider backed by user code must be safe for concurrent use.
type TokenProvider interface {
	// Token returns a bearer token, without the "Bearer " prefix.
	Token(ctx context.Context) (string, error)
}

// StaticToken is a TokenProvider wrapping a fixed, pre-fetched token.
type StaticToken string

// Token returns the wrapped token.
func (t StaticToken) Token(ctx context.Context) (string, error) {
	if t == "" {
		return "", fmt.Errorf("static token is empty")
	}
	return string(t), nil
}

// TokenProviderFunc adapts a zero-argument callable to the TokenProvider
// interface. The callable is invoked once per request, which supports
// refreshable and short-lived tokens.
type TokenProviderFunc func() (string, error)

// Token invokes the callable.
func (f TokenProviderFunc) Token(ctx context.Context) (string, error) {
	return f()
}

// TokenSource adapts an oauth2.TokenSource to the TokenProvider interface,
// so auto-refreshing sources built from oauth2.Config plug in directly.
func TokenSource(ts oauth2.TokenSource) TokenProvider {
	return &tokenSourceProvider{ts: ts}
}

type tokenSourceProvider struct {
	ts oauth2.TokenSource
}

func (p *tokenSourceProvider) Token(ctx context.Context) (string, error) {
	tok, err := p.ts.Token()
	if err != nil {
		return "", fmt.Errorf("token source: %w", err)
	}
	if !tok.Valid() {
		return "", fmt.Errorf("token source returned an invalid token")
	}
	return tok.AccessToken, nil
}
