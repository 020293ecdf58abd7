package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/voicedoc/clinic-api/internal/auth"
	"github.com/voicedoc/clinic-api/internal/httperr"
)

const ContextIdentity = "identity"

// TokenParser verifies a raw session token.
type TokenParser interface {
	Parse(token string) (auth.Identity, error)
}

// RevocationChecker reports whether a token id was signed out.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// UserChecker reports whether the account behind a token still exists.
type UserChecker interface {
	UserExists(ctx context.Context, id uint) (bool, error)
}

// AuthMiddleware accepts "Bearer <token>" or the bare token in the
// Authorization header. revoked may be nil.
func AuthMiddleware(
	tokens TokenParser,
	revoked RevocationChecker,
	users UserChecker,
	logger zerolog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := tokenFromHeader(c.GetHeader("Authorization"))
		if raw == "" {
			abortUnauthorized(c, "missing_authorization_header", "authorization header required")
			return
		}

		id, err := tokens.Parse(raw)
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				abortUnauthorized(c, "token_expired", "signin time expired")
				return
			}
			abortUnauthorized(c, "invalid_token", "signin time expired")
			return
		}

		if revoked != nil {
			isRevoked, err := revoked.IsRevoked(c.Request.Context(), id.TokenID)
			if err != nil {
				logger.Error().Err(err).Msg("revocation lookup failed")
				c.Abort()
				httperr.Internal(c, "internal_error", "internal server error")
				return
			}
			if isRevoked {
				abortUnauthorized(c, "token_revoked", "signin time expired")
				return
			}
		}

		exists, err := users.UserExists(c.Request.Context(), id.UserID)
		if err != nil {
			logger.Error().Err(err).Uint("user_id", id.UserID).Msg("user lookup failed")
			c.Abort()
			httperr.Internal(c, "internal_error", "internal server error")
			return
		}
		if !exists {
			abortUnauthorized(c, "invalid_user", "invalid user")
			return
		}

		c.Set(ContextIdentity, id)
		c.Next()
	}
}

func tokenFromHeader(h string) string {
	h = strings.TrimSpace(h)
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return h
}

func abortUnauthorized(c *gin.Context, code, message string) {
	c.Abort()
	httperr.Unauthorized(c, code, message)
}

// IdentityFrom returns the caller set by AuthMiddleware.
func IdentityFrom(c *gin.Context) (auth.Identity, bool) {
	v, ok := c.Get(ContextIdentity)
	if !ok {
		return auth.Identity{}, false
	}
	id, ok := v.(auth.Identity)
	return id, ok
}

// RequirePatient rejects doctors from patient-only routes.
func RequirePatient() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := IdentityFrom(c)
		if !ok {
			abortUnauthorized(c, "missing_identity", "signin required")
			return
		}
		if id.IsDoctor() {
			c.Abort()
			httperr.Write(c, http.StatusForbidden, "patient_only", "doctor can't access to patient menu")
			return
		}
		c.Next()
	}
}
