// Package gtasks is a thin client for the Google Tasks REST API v1.
//
// The package exposes one method per remote operation for the two Tasks
// resources:
//   - Task lists: list, get, insert, update, patch, delete
//   - Tasks: list, get, insert, update, patch, delete, clear, move
//
// Every call performs exactly one round trip: there are no retries, no
// backoff, no caching and no automatic pagination. List responses carry an
// opaque NextPageToken which callers pass back verbatim to fetch the next
// page. Callers wanting retry policies layer them on top.
//
// # Authentication
//
// Every request carries an "Authorization: Bearer <token>" header. The
// token comes from a TokenProvider, chosen at construction:
//
//	// From a pre-fetched token.
//	svc, err := gtasks.NewWithToken("ya29....")
//
//	// From a callable invoked fresh on every request, e.g. for
//	// short-lived tokens refreshed elsewhere.
//	svc, err := gtasks.NewWithTokenFunc(func() (string, error) {
//	    return fetchToken()
//	})
//
//	// From an auto-refreshing oauth2.TokenSource.
//	svc, err := gtasks.NewWithTokenSource(conf.TokenSource(ctx, tok))
//
// # Example Usage
//
//	svc, err := gtasks.NewWithToken(token)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	lists, err := svc.ListTaskLists(ctx, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	task, err := svc.InsertTask(ctx, *lists.Items[0].ID, &gtasks.Task{
//	    Title: gtasks.String("Buy milk"),
//	    Due:   gtasks.Time(time.Now().AddDate(0, 0, 7)),
//	}, nil)
//
// # Errors
//
// Failures are typed: *AuthError when the token provider fails (raised
// before any network I/O), *TransportError for network-level failures,
// *APIError for non-2xx responses (carrying the status code and the
// server's error message) and *DecodeError for 2xx responses that do not
// match the expected schema. Use errors.As to branch on them.
package gtasks
