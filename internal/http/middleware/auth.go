package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	types "github.com/yungbote/learnify-backend/internal/domain"
	"github.com/yungbote/learnify-backend/internal/http/response"
	"github.com/yungbote/learnify-backend/internal/platform/apierr"
	"github.com/yungbote/learnify-backend/internal/platform/ctxutil"
	"github.com/yungbote/learnify-backend/internal/platform/logger"
)

// ActorResolver turns a bearer token into the live caller.
type ActorResolver interface {
	ResolveActor(ctx context.Context, token string) (*types.Actor, error)
}

type AuthMiddleware struct {
	log      *logger.Logger
	resolver ActorResolver
}

func NewAuthMiddleware(log *logger.Logger, resolver ActorResolver) *AuthMiddleware {
	middlewareLogger := log.With("middleware", "AuthMiddleware")
	return &AuthMiddleware{log: middlewareLogger, resolver: resolver}
}

func (am *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractBearerToken(c)
		if tokenString == "" {
			response.AbortError(c, http.StatusUnauthorized, "unauthorized", errNotAuthenticated)
			return
		}
		actor, err := am.resolver.ResolveActor(c.Request.Context(), tokenString)
		if err != nil {
			if ae, ok := apierr.As(err); ok {
				response.AbortError(c, ae.Status, ae.Code, ae.Err)
				return
			}
			am.log.Error("Resolve actor failed", "error", err)
			response.AbortError(c, http.StatusInternalServerError, "internal_error", errInternal)
			return
		}
		c.Request = c.Request.WithContext(ctxutil.WithActor(c.Request.Context(), actor))
		c.Next()
	}
}

// Actor returns the caller attached by RequireAuth, or nil.
func Actor(c *gin.Context) *types.Actor {
	return ctxutil.GetActor(c.Request.Context())
}

func extractBearerToken(c *gin.Context) string {
	authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return ""
}
