package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/ErlanBelekov/accounts/internal/domain"
	"github.com/ErlanBelekov/accounts/internal/metrics"
	"github.com/ErlanBelekov/accounts/internal/reqctx"
	"github.com/ErlanBelekov/accounts/internal/token"
	"github.com/gin-gonic/gin"
)

const (
	userIDKey = "userID"

	errMissingToken = "User unauthorized"
	errInvalidToken = "Invalid access token"
)

// TokenVerifier is the part of token.Service the middleware needs.
type TokenVerifier interface {
	Verify(raw string) (token.Claims, error)
}

// Auth validates a Bearer token and sets "userID" in the gin context and the
// request context. Every failure is a terminal 401; the reason is only logged.
func Auth(verifier TokenVerifier, logger *slog.Logger) gin.HandlerFunc {
	logger = logger.With("component", "auth_middleware")

	return func(c *gin.Context) {
		ctx := c.Request.Context()

		raw := bearerToken(c.GetHeader("Authorization"))
		if raw == "" {
			metrics.TokenVerificationsTotal.WithLabelValues("missing").Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errMissingToken})
			return
		}

		claims, err := verifier.Verify(raw)
		if err != nil {
			reason := rejectReason(err)
			metrics.TokenVerificationsTotal.WithLabelValues(reason).Inc()
			logger.InfoContext(ctx, "token rejected", "reason", reason, "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errInvalidToken})
			return
		}
		metrics.TokenVerificationsTotal.WithLabelValues("valid").Inc()

		c.Set(userIDKey, claims.UserID)
		c.Request = c.Request.WithContext(reqctx.WithUserID(ctx, claims.UserID))
		c.Next()
	}
}

// UserID returns the subject set by Auth. ok is false on routes Auth does not guard.
func UserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(userIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

// bearerToken returns the credential of an "Authorization: Bearer <token>"
// header, or "" when the header is absent or uses another scheme.
func bearerToken(header string) string {
	fields := strings.Fields(header)
	if len(fields) != 2 || !strings.EqualFold(fields[0], "Bearer") {
		return ""
	}
	return fields[1]
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrTokenExpired):
		return "expired"
	case errors.Is(err, domain.ErrMissingSubject):
		return "missing_subject"
	default:
		return "invalid"
	}
}
