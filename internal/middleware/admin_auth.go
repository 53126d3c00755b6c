package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/wb-go/wbf/ginext"
)

// AdminAuth gates the operator console behind a shared bearer token.
// Session-based auth lives outside this service; with no token configured
// the console is closed rather than open.
func AdminAuth(token string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if token == "" {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable,
				ginext.H{"error": "admin access is not configured"},
			)
			return
		}

		presented := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "unauthorized"},
			)
			return
		}

		c.Next()
	}
}
