// Package client contains the transport to the certificate backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     authentication, certificates, renewals, notifications, insights and
//     the admin/export endpoints.
//  2. A concrete JSON-over-HTTP implementation (see HTTPClient). Every
//     request carries an X-Request-ID; authentication is the backend's
//     session cookie, which the client stores but never inspects.
//  3. A cookie jar (see PersistentJar) that keeps the session cookie in a
//     local SQLite database so the CLI stays logged in across runs, plus the
//     bootstrap helpers InitDatabase and RunMigrations.
//
// # Error Handling
//
// Non-2xx responses become *APIError, which unwraps to the sentinels
// ErrUnauthorized, ErrNotFound and ErrUnavailable. Transport failures are
// reported as ErrUnavailable. UserMessage extracts the backend's message
// for display.
//
// # Concurrency & Contexts
//
// HTTPClient and PersistentJar are safe for concurrent use. All operations
// accept context.Context and honor cancellation. No request timeout is set.
package client
