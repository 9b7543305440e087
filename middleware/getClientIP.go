package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// getClientIP keys the rate limiter. Proxy headers win over the socket address;
// only the left-most X-Forwarded-For entry is the original client.
func getClientIP(c *gin.Context) string {
	for _, candidate := range []string{
		firstForwarded(c.GetHeader("X-Forwarded-For")),
		strings.TrimSpace(c.GetHeader("X-Real-IP")),
	} {
		if net.ParseIP(candidate) != nil {
			return candidate
		}
	}

	host, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.Request.RemoteAddr
	}
	return host
}

func firstForwarded(header string) string {
	first, _, _ := strings.Cut(header, ",")
	return strings.TrimSpace(first)
}
