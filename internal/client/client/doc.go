// Package client talks to the case management REST backend.
//
// # Overview
//
// Client is the transport-agnostic contract (auth plus case CRUD and the
// test trigger); HTTPClient implements it over net/http with JSON bodies.
// Every call attaches the session credential as the "token" cookie and an
// X-Request-ID header that also appears in the debug log.
//
// There are no retries and no client-side timeouts: a call lasts as long
// as the caller's context allows.
//
// # Error Handling
//
// Non-2xx responses are returned as *APIError. It matches the sentinels
// ErrUnauthorized (401/403), ErrNotFound (404) and ErrUnavailable
// (502/503/504) with errors.Is. Transport failures wrap ErrUnavailable.
// ErrorMessage extracts the user-facing text.
package client
