package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
)

// Security sets common HTTP security headers on every response. HSTS is
// forced outside development because TLS terminates at the proxy.
func Security(isDevelopment bool) gin.HandlerFunc {
	s := secure.New(secure.Options{
		FrameDeny:            true,
		ContentTypeNosniff:   true,
		ReferrerPolicy:       "strict-origin-when-cross-origin",
		PermissionsPolicy:    "camera=(), microphone=(), geolocation=()",
		STSSeconds:           63072000,
		STSIncludeSubdomains: true,
		ForceSTSHeader:       !isDevelopment,
		IsDevelopment:        isDevelopment,
	})

	return func(c *gin.Context) {
		if err := s.Process(c.Writer, c.Request); err != nil {
			c.Abort()
			return
		}
		c.Next()
	}
}
