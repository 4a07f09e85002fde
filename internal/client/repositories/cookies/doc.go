// Package cookies persists the backend session cookie in the local sqlite
// database so that the startup session check can succeed across runs, the
// way a browser keeps its cookie store between page loads.
//
// Rows are keyed by cookie name; the store belongs to a single backend
// origin. Expires is stored as Unix seconds, 0 meaning a session cookie.
package cookies
