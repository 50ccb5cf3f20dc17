// Package common contains shared constants and small helpers used across
// authclient components.
package common

// RequestIDHeaderName is the HTTP header carrying the per-request correlation ID
// on outbound calls to the authentication service.
const RequestIDHeaderName = "X-Request-ID"

// RefreshTokenKey is the secure storage key the refresh token is kept under
// after a successful sign-in.
const RefreshTokenKey = "refreshToken"
