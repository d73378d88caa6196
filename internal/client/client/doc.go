// Package client is the console's transport layer.
//
// # Overview
//
// The package provides:
//  1. The Client interface: login, registration, own profile read and
//     partial update, password change, account listing and deletion.
//  2. HTTPClient, a JSON-over-HTTP implementation that adds the bearer
//     token and an X-Request-ID header to each call and, with
//     WithRateLimit, throttles outgoing requests.
//  3. Envelope normalization: both failure shapes the server emits
//     ({"success":false,"error":{...}} and {"status":"error","errors":[...]})
//     become a single *APIError.
//  4. Local state bootstrap (InitDatabase, RunMigrations) for the SQLite
//     file behind the durable session lifetime.
//
// # Error Handling
//
// Every *APIError unwraps to one sentinel: ErrUnauthorized,
// ErrPermissionDenied, ErrValidation or ErrTransport. ErrSessionAbsent is
// returned by the session guard before any request is made.
package client
