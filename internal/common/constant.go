// Package common contains shared constants and sentinel errors used across
// MediaVault components.
package common

// AuthCookieName is the cookie that carries the session token between the
// browser and the API.
const AuthCookieName = "mv_token"
