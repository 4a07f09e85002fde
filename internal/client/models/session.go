package models

// Credentials is the body of /api/login and /api/register.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SessionInfo is the body of a successful /api/check_session call.
type SessionInfo struct {
	User string `json:"user"`
}
