package middleware

import (
	"net/http"
	"strings"

	"go-jobboard-api/internal/delivery/http/response"
	"go-jobboard-api/internal/domain"
	"go-jobboard-api/pkg/token"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token, rejects blacklisted tokens and
// loads the fresh user from the database. The role claim inside the token is
// never trusted; authorization always runs against the stored role. The
// resulting Actor is set on the context for handlers to pass down explicitly.
func AuthMiddleware(tokens *token.Provider, blacklist token.Blacklist, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if authHeader == "" || tokenString == authHeader {
			response.Error(c, http.StatusUnauthorized, "Authorization header required", nil)
			c.Abort()
			return
		}

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		revoked, err := blacklist.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil || revoked {
			response.Error(c, http.StatusUnauthorized, "Token has been revoked", nil)
			c.Abort()
			return
		}

		user, err := authUC.GetUserByID(c.Request.Context(), claims.UserID)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "User not found", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyActor), user.Actor())
		c.Set("RawToken", tokenString)

		c.Next()
	}
}

// ActorFromContext extracts the authenticated Actor set by AuthMiddleware.
func ActorFromContext(c *gin.Context) (domain.Actor, bool) {
	v, ok := c.Get(string(domain.KeyActor))
	if !ok {
		return domain.Actor{}, false
	}
	actor, ok := v.(domain.Actor)
	return actor, ok
}
