// Package common contains shared constants and sentinel errors used across
// TaskKeeper components.
package common

// AuthHeaderName is the HTTP header that carries the session token on
// protected requests.
const AuthHeaderName = "Authorization"

// BearerPrefix is the expected scheme prefix of the auth header value.
const BearerPrefix = "Bearer "
