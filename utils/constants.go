// File: utils/constants.go
package utils

import "time"

// SessionPrefix is the prefix used for Redis admin session keys.
const SessionPrefix = "adminSession:"

// DefaultSessionTTL applies when SESSION_TTL is unset or invalid.
const DefaultSessionTTL = 12 * time.Hour

// SessionHeader carries the caller's session id on HTTP requests.
const SessionHeader = "X-Session-ID"
