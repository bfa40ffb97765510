package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"runway.app/api/common/logger"
	"runway.app/api/internal/model"
	"runway.app/api/internal/service"
)

type contextKey string

const principalContextKey contextKey = "principal"

// TokenResolver turns a bearer token into a principal.
type TokenResolver interface {
	Resolve(ctx context.Context, rawToken string) (*model.Principal, error)
}

// RequireAuth rejects requests without a valid bearer token. The resolved
// principal is stored on the request context; the organization id for every
// tenant-scoped call comes from it.
func RequireAuth(resolver TokenResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		raw, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}

		principal, err := resolver.Resolve(ctx, raw)
		if err != nil {
			if errors.Is(err, service.ErrUnauthorized) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
				return
			}
			slog.ErrorContext(ctx, "failed to resolve token", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to validate token"})
			return
		}

		ctx = WithPrincipal(ctx, *principal)
		ctx = logger.WithLogFields(ctx, logger.LogFields{
			OrganizationID: &principal.OrganizationID,
			UserID:         &principal.UserID,
		})
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetPrincipal returns the principal stored by RequireAuth.
func GetPrincipal(ctx context.Context) (model.Principal, bool) {
	principal, ok := ctx.Value(principalContextKey).(model.Principal)
	return principal, ok
}

// WithPrincipal stores principal on ctx the way RequireAuth does.
func WithPrincipal(ctx context.Context, principal model.Principal) context.Context {
	return context.WithValue(ctx, principalContextKey, principal)
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
