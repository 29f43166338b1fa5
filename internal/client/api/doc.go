// Package api contains the HTTP access layer for the lost-and-found backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface) with one
//     method per backend operation: auth, items, claim requests and user
//     administration.
//  2. A concrete JSON/HTTP implementation (see HTTPClient) that attaches the
//     bearer token from the session store to every request, tags calls with a
//     correlation id, maps failures to sentinel errors, and on any 401
//     response clears the session and notifies an injected handler so the UI
//     can navigate to the login view.
//
// Each method performs exactly one HTTP request: no retries, no caching, no
// deduplication. Concurrent calls are independent and unordered.
//
// # Error Handling
//
// Callers match conditions with errors.Is / errors.As:
//
//   - ErrUnavailable — no response was received (network failure, timeout).
//   - ErrUnauthorized — the backend answered 401; the session has already
//     been cleared as a side effect.
//   - *BackendError — any other non-2xx status, carrying the status code and
//     the backend-provided message when present.
//
// Failures are always propagated; the forced logout on 401 happens in
// addition to, never instead of, the returned error.
package api
