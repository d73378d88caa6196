// Package common contains constants shared by the console's storage and
// transport layers.
package common

// Keys under which a session is persisted in every storage lifetime.
const (
	TokenKey = "token"
	UserKey  = "user"
)

// HTTP header names used on outbound API requests.
const (
	AuthorizationHeaderName = "Authorization"
	RequestIDHeaderName     = "X-Request-ID"
	BearerPrefix            = "Bearer "
)
