// Package common contains shared constants, sentinel errors and small
// helpers used across certkeeper layers.
package common

// RequestIDHeaderName is the HTTP header carrying a per-request correlation
// id on every outbound backend call.
const RequestIDHeaderName = "X-Request-ID"

// AdminUserName is the account name for which admin affordances are shown.
// Authorization itself is enforced by the backend only.
const AdminUserName = "admin"
